package cqrs

// Command represents a message that changes the state of the system.
// Commands are named with verbs in imperative form (e.g., "CreateApp").
type Command interface {
	NameProvider
}

// CommandHandler defines the interface for handling commands.
type CommandHandler[C Command] interface {
	// Handle executes the command and returns an error if the command fails.
	Handle(cmd C) error
}

// CommandBus dispatches commands to their handlers.
type CommandBus interface {
	// Dispatch sends a command to its registered handler.
	Dispatch(cmd Command) error

	// Register registers a command handler for a specific command type.
	Register(handler interface{}) error

	// Shutdown initiates a graceful shutdown: new commands are rejected
	// while in-flight commands are allowed to complete.
	Shutdown()

	// WaitForCompletion blocks until all active commands have finished.
	WaitForCompletion()
}
