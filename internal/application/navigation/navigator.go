// Package navigation records where the external UI should go after a
// lifecycle operation completes. The actual routing is an external
// collaborator; the handlers only hand it a hint.
package navigation

import (
	"sync"

	"applens-agent/internal/domain/model"
)

// Navigator receives routing hints from the lifecycle handlers.
type Navigator interface {
	// MoveToApp points the UI at the application with the given ID. mode
	// distinguishes plain navigation from creation-with-follow-up, where the
	// next view should jump straight into the availability setup flow.
	MoveToApp(appID string, mode string)
}

// availabilitySetupTriggers is how many pending view switches a
// creation-with-follow-up arms. The target view consumes them one by one.
const availabilitySetupTriggers = 2

// Recorder is an in-memory Navigator.
type Recorder struct {
	mu       sync.Mutex
	current  string
	triggers int
}

// NewRecorder creates a Recorder with no current application.
func NewRecorder() *Recorder {
	return &Recorder{}
}

func (r *Recorder) MoveToApp(appID string, mode string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.current = appID
	if mode == model.ModeCreateSetAvailability {
		r.triggers = availabilitySetupTriggers
	}
}

// CurrentApp returns the application the UI was last pointed at.
func (r *Recorder) CurrentApp() string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.current
}

// ConsumeTrigger reports whether an availability-setup switch is pending and
// consumes one if so.
func (r *Recorder) ConsumeTrigger() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.triggers == 0 {
		return false
	}
	r.triggers--
	return true
}
