package rename_app

// RenameAppCommand represents a command to rename an existing application.
// The new name must be unique among all other applications; renaming an
// application to its own current name is accepted.
type RenameAppCommand struct {
	AppID   string
	AppName string
}

// Name returns a unique identifier of the command used by the CQRS bus.
func (c RenameAppCommand) Name() string {
	return "RenameApp"
}
