// Package notification carries user-visible feedback and cross-cutting
// lifecycle events out of the orchestrator without coupling it to any UI or
// adjacent subsystem state.
package notification

import (
	"sync"

	"github.com/google/uuid"

	"applens-agent/internal/domain/model"
)

// Toast is a single user-visible notification.
type Toast struct {
	ID    string
	Title string
	Text  string
	Color model.Severity
}

// Notifier publishes user-visible feedback for lifecycle operations.
type Notifier interface {
	// Success reports a completed operation.
	Success(title string)

	// Danger reports a failure. text is optional supporting content, such as
	// a documentation link.
	Danger(title string, text string)
}

// ToastList is an in-memory Notifier. The observing UI is an external
// collaborator; it reads and dismisses toasts through this list.
type ToastList struct {
	mu     sync.Mutex
	toasts []Toast
}

// NewToastList creates an empty toast list.
func NewToastList() *ToastList {
	return &ToastList{}
}

func (l *ToastList) Success(title string) {
	l.push(Toast{Title: title, Color: model.SeveritySuccess})
}

func (l *ToastList) Danger(title string, text string) {
	l.push(Toast{Title: title, Text: text, Color: model.SeverityDanger})
}

func (l *ToastList) push(t Toast) {
	t.ID = uuid.New().String()
	l.mu.Lock()
	defer l.mu.Unlock()
	l.toasts = append(l.toasts, t)
}

// Toasts returns a snapshot of the pending toasts.
func (l *ToastList) Toasts() []Toast {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]Toast, len(l.toasts))
	copy(out, l.toasts)
	return out
}

// Dismiss removes the toast with the given ID.
func (l *ToastList) Dismiss(toastID string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	kept := l.toasts[:0]
	for _, t := range l.toasts {
		if t.ID != toastID {
			kept = append(kept, t)
		}
	}
	l.toasts = kept
}
