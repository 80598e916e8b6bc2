package extension

import (
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/dshills/upcase/internal/command"
	"github.com/dshills/upcase/internal/editor"
	"github.com/dshills/upcase/internal/textcase"
)

// CommandID is the identifier the uppercase command is registered under.
const CommandID = "text.to_uppercase"

// Extension errors.
var (
	// ErrNoBuffer is returned when the command runs without a buffer.
	ErrNoBuffer = errors.New("no buffer available")

	// ErrNoRegistry is returned when setting up without a registry.
	ErrNoRegistry = errors.New("no command registry available")
)

// Extension converts the active document's lines to uppercase.
type Extension struct {
	id       string
	buffer   editor.BufferProvider
	registry *command.Registry
}

// New creates the extension bound to a buffer provider and command registry.
func New(buffer editor.BufferProvider, registry *command.Registry) *Extension {
	return &Extension{
		id:       uuid.NewString(),
		buffer:   buffer,
		registry: registry,
	}
}

// ID returns the extension instance identifier.
func (e *Extension) ID() string {
	return e.id
}

// Source returns the tag this instance registers commands under.
func (e *Extension) Source() string {
	return "extension:" + e.id
}

// Setup registers the text.to_uppercase command with the registry.
func (e *Extension) Setup() error {
	if e.registry == nil {
		return ErrNoRegistry
	}

	return e.registry.Register(&command.Command{
		ID:          CommandID,
		Title:       "Convert Lines To Uppercase",
		Description: "Convert every line of the current document to uppercase",
		Category:    "Text",
		Source:      e.Source(),
		Handler:     e.handle,
	})
}

// Teardown unregisters everything this instance registered.
func (e *Extension) Teardown() {
	if e.registry != nil {
		e.registry.UnregisterBySource(e.Source())
	}
}

// handle executes the command against the bound buffer.
func (e *Extension) handle(_ map[string]any) error {
	if e.buffer == nil {
		return ErrNoBuffer
	}
	return Apply(e.buffer)
}

// Apply converts every line of buf to uppercase, in ascending index order
// with one write per line. Each line is independent, so a failure leaves
// earlier lines converted and later lines untouched.
func Apply(buf editor.BufferProvider) error {
	count := buf.LineCount()
	for i := 0; i < count; i++ {
		line, err := buf.Line(i)
		if err != nil {
			return fmt.Errorf("reading line %d: %w", i, err)
		}
		if err := buf.SetLine(i, textcase.ToUpper(line)); err != nil {
			return fmt.Errorf("writing line %d: %w", i, err)
		}
	}
	return nil
}
