package command

import (
	"errors"
	"fmt"
	"sort"
	"sync"
)

// Registry errors.
var (
	// ErrNilCommand is returned when registering a nil command.
	ErrNilCommand = errors.New("command is nil")

	// ErrMissingID is returned when registering a command without an ID.
	ErrMissingID = errors.New("command id is required")

	// ErrNilHandler is returned when registering a command without a handler.
	ErrNilHandler = errors.New("command handler is required")

	// ErrDuplicateCommand is returned when a command ID is already taken.
	ErrDuplicateCommand = errors.New("command already registered")

	// ErrCommandNotFound is returned when executing an unknown command.
	ErrCommandNotFound = errors.New("command not found")
)

// Registry manages command registration by exact command ID.
type Registry struct {
	mu       sync.RWMutex
	commands map[string]*Command
}

// NewRegistry creates a new empty command registry.
func NewRegistry() *Registry {
	return &Registry{
		commands: make(map[string]*Command),
	}
}

// Register adds a command to the registry.
// Registering an ID that already exists fails with ErrDuplicateCommand.
func (r *Registry) Register(cmd *Command) error {
	if cmd == nil {
		return ErrNilCommand
	}
	if cmd.ID == "" {
		return ErrMissingID
	}
	if cmd.Handler == nil {
		return fmt.Errorf("%w: %s", ErrNilHandler, cmd.ID)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.commands[cmd.ID]; exists {
		return fmt.Errorf("%w: %s", ErrDuplicateCommand, cmd.ID)
	}

	r.commands[cmd.ID] = cmd
	return nil
}

// Unregister removes a command by ID.
// Returns true if the command existed.
func (r *Registry) Unregister(id string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	_, exists := r.commands[id]
	if exists {
		delete(r.commands, id)
	}
	return exists
}

// UnregisterBySource removes all commands registered by a source.
// Returns the number of commands removed.
func (r *Registry) UnregisterBySource(source string) int {
	r.mu.Lock()
	defer r.mu.Unlock()

	count := 0
	for id, cmd := range r.commands {
		if cmd.Source == source {
			delete(r.commands, id)
			count++
		}
	}
	return count
}

// Get retrieves a command by ID.
// Returns nil if no command is registered under the ID.
func (r *Registry) Get(id string) *Command {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.commands[id]
}

// Has checks if a command exists.
func (r *Registry) Has(id string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, exists := r.commands[id]
	return exists
}

// Execute runs a command by ID with arguments.
// Handler errors propagate to the caller unrecovered.
func (r *Registry) Execute(id string, args map[string]any) error {
	r.mu.RLock()
	cmd := r.commands[id]
	r.mu.RUnlock()

	if cmd == nil {
		return fmt.Errorf("%w: %s", ErrCommandNotFound, id)
	}

	return cmd.Handler(args)
}

// All returns all registered commands sorted by ID.
func (r *Registry) All() []*Command {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]*Command, 0, len(r.commands))
	for _, cmd := range r.commands {
		result = append(result, cmd)
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})
	return result
}
