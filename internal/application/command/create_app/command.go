package create_app

import "applens-agent/internal/domain/model"

// CreateAppCommand creates a new application together with its companion
// operational panel. Mode is the routing hint handed to the navigator once
// the panel reference lands: plain creation or creation that jumps straight
// into the availability setup flow.
type CreateAppCommand struct {
	Request model.CreateApplicationRequest
	Mode    string
}

// Name returns a unique identifier of the command used by the CQRS bus.
func (c CreateAppCommand) Name() string {
	return "CreateApp"
}
