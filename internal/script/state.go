package script

import (
	"errors"
	"fmt"
	"sync"

	lua "github.com/yuin/gopher-lua"
)

// ErrStateClosed is returned when using a closed state.
var ErrStateClosed = errors.New("script state is closed")

// Module is an API surface that can be installed into a Lua state.
type Module interface {
	// Name returns the module's global name.
	Name() string

	// Register installs the module into the Lua state.
	Register(L *lua.LState) error
}

// State wraps gopher-lua with sandbox restrictions for host scripts.
//
// gopher-lua's LState is not goroutine-safe; the mutex serializes access
// from Go code, and Lua execution itself is single-threaded.
type State struct {
	mu     sync.Mutex
	L      *lua.LState
	closed bool
}

// NewState creates a new sandboxed Lua state.
func NewState() *State {
	L := lua.NewState(lua.Options{
		SkipOpenLibs: true, // opened selectively below
	})

	openSafeLibraries(L)
	removeUnsafeFunctions(L)

	return &State{L: L}
}

// openSafeLibraries opens only safe Lua standard libraries.
func openSafeLibraries(L *lua.LState) {
	lua.OpenBase(L)
	lua.OpenTable(L)
	lua.OpenString(L)
	lua.OpenMath(L)

	// Intentionally not opened: io, os, debug, package.
}

// removeUnsafeFunctions strips base-library functions that could bypass the
// sandbox by loading arbitrary code.
func removeUnsafeFunctions(L *lua.LState) {
	for _, name := range []string{"dofile", "loadfile", "load", "loadstring"} {
		L.SetGlobal(name, lua.LNil)
	}
}

// Install registers a module into the state.
func (s *State) Install(m Module) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return ErrStateClosed
	}
	if err := m.Register(s.L); err != nil {
		return fmt.Errorf("installing %s: %w", m.Name(), err)
	}
	return nil
}

// DoFile executes a Lua file. The call blocks until completion or error.
func (s *State) DoFile(path string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return ErrStateClosed
	}
	return s.L.DoFile(path)
}

// DoString executes Lua source code.
func (s *State) DoString(source string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return ErrStateClosed
	}
	return s.L.DoString(source)
}

// Close releases the underlying Lua state.
func (s *State) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return
	}
	s.closed = true
	s.L.Close()
}
