package update_app

import "applens-agent/internal/domain/model"

// UpdateAppCommand sends a partial field set for a server-side merge.
// Mode only changes the user-visible side effects (feedback, draft clearing,
// navigation); the backend write is identical for every mode.
type UpdateAppCommand struct {
	AppID  string
	Update model.ApplicationUpdate
	Mode   string
}

// Name returns a unique identifier of the command used by the CQRS bus.
func (c UpdateAppCommand) Name() string {
	return "UpdateApp"
}
