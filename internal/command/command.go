package command

// Handler is a function that executes a command.
type Handler func(args map[string]any) error

// Command represents a registered, user-invocable command.
type Command struct {
	// ID is the unique command identifier (e.g., "text.to_uppercase").
	ID string

	// Title is the display name shown to the user.
	Title string

	// Description provides additional context about the command.
	Description string

	// Category groups related commands (e.g., "Text").
	Category string

	// Source identifies who registered the command (e.g., "extension:<id>").
	// Used for bulk cleanup when an extension is torn down.
	Source string

	// Handler executes the command.
	Handler Handler
}
