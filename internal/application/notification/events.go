package notification

import (
	"sync"

	"applens-agent/pkg/log"
)

// subscriberBuffer bounds how many undelivered events a slow subscriber may
// accumulate before further events are dropped for it.
const subscriberBuffer = 16

// Events is a small pub/sub channel for entity lifecycle events. Subsystems
// that track per-tab state subscribe here instead of being called directly by
// the lifecycle handlers. Delivery is best effort: publishing never blocks,
// and a dropped delivery is not an error.
type Events struct {
	mu   sync.RWMutex
	subs []chan string
}

// NewEvents creates an event channel with no subscribers.
func NewEvents() *Events {
	return &Events{}
}

// Subscribe registers a new subscriber and returns its delivery channel.
func (e *Events) Subscribe() <-chan string {
	ch := make(chan string, subscriberBuffer)
	e.mu.Lock()
	defer e.mu.Unlock()
	e.subs = append(e.subs, ch)
	return ch
}

// EntityDeleted announces that the application with the given ID has been
// deleted on the backend. Failures to deliver are not retried and never
// surface to the user.
func (e *Events) EntityDeleted(appID string) {
	e.mu.RLock()
	defer e.mu.RUnlock()
	for _, ch := range e.subs {
		select {
		case ch <- appID:
		default:
			log.Debug("Dropped entity deleted event for slow subscriber", "app_id", appID)
		}
	}
}
