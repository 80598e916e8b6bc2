package luamod

import (
	lua "github.com/yuin/gopher-lua"

	"github.com/dshills/upcase/internal/command"
	"github.com/dshills/upcase/internal/editor"
	"github.com/dshills/upcase/internal/extension"
)

// GlobalName is the name the module table is installed under.
const GlobalName = "upcase"

// Module implements the upcase Lua API.
type Module struct {
	buffer   editor.BufferProvider
	registry *command.Registry
	ext      *extension.Extension
}

// NewModule creates a Lua module bound to a buffer and command registry.
func NewModule(buffer editor.BufferProvider, registry *command.Registry) *Module {
	return &Module{
		buffer:   buffer,
		registry: registry,
	}
}

// Name returns the module name.
func (m *Module) Name() string {
	return GlobalName
}

// Register installs the module into the Lua state.
func (m *Module) Register(L *lua.LState) error {
	mod := L.NewTable()

	L.SetField(mod, "to_uppercase", L.NewFunction(m.toUppercase))
	L.SetField(mod, "setup", L.NewFunction(m.setup))
	L.SetField(mod, "apply", L.NewFunction(m.apply))
	L.SetField(mod, "line_count", L.NewFunction(m.lineCount))

	L.SetGlobal(GlobalName, mod)
	return nil
}

// Teardown unregisters any commands registered through setup.
func (m *Module) Teardown() {
	if m.ext != nil {
		m.ext.Teardown()
		m.ext = nil
	}
}

// to_uppercase(s) -> string
// Converts s to uppercase. Raises an error for non-string arguments.
func (m *Module) toUppercase(L *lua.LState) int {
	result, err := textConvert(L.Get(1))
	if err != nil {
		L.RaiseError("to_uppercase: %v", err)
		return 0
	}

	L.Push(lua.LString(result))
	return 1
}

// setup() -> nil
// Registers the text.to_uppercase command with the host registry.
func (m *Module) setup(L *lua.LState) int {
	if m.registry == nil {
		L.RaiseError("setup: no command registry available")
		return 0
	}
	if m.ext != nil {
		// Already set up; registering twice would fail on the duplicate ID.
		return 0
	}

	ext := extension.New(m.buffer, m.registry)
	if err := ext.Setup(); err != nil {
		L.RaiseError("setup: %v", err)
		return 0
	}

	m.ext = ext
	return 0
}

// apply() -> nil
// Executes the text.to_uppercase command against the bound buffer.
func (m *Module) apply(L *lua.LState) int {
	if m.registry == nil || m.ext == nil {
		L.RaiseError("apply: command not registered (call setup first)")
		return 0
	}

	if err := m.registry.Execute(extension.CommandID, nil); err != nil {
		L.RaiseError("apply: %v", err)
		return 0
	}
	return 0
}

// line_count() -> number
// Returns the number of lines in the bound buffer.
func (m *Module) lineCount(L *lua.LState) int {
	if m.buffer == nil {
		L.Push(lua.LNumber(0))
		return 1
	}

	L.Push(lua.LNumber(m.buffer.LineCount()))
	return 1
}
