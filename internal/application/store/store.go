// Package store holds the in-memory ordered collection of applications that
// is the single source of truth for observers. Every mutation swaps in a
// freshly built slice so readers always see a fully-formed snapshot.
package store

import (
	"sync"

	"applens-agent/internal/domain/model"
)

// ApplicationStore is an ordered, mutex-guarded application collection.
// The lifecycle handlers are the only writers; observers read snapshots.
type ApplicationStore struct {
	mu   sync.RWMutex
	apps []model.Application
}

// NewApplicationStore creates an empty store.
func NewApplicationStore() *ApplicationStore {
	return &ApplicationStore{}
}

// Snapshot returns a copy of the current collection in order.
func (s *ApplicationStore) Snapshot() []model.Application {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]model.Application, len(s.apps))
	copy(out, s.apps)
	return out
}

// Len returns the number of stored applications.
func (s *ApplicationStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.apps)
}

// Get returns the application with the given ID.
func (s *ApplicationStore) Get(appID string) (model.Application, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, app := range s.apps {
		if app.ID == appID {
			return app, true
		}
	}
	return model.Application{}, false
}

// Names returns every stored application name except the one belonging to
// excludeID. Pass an empty excludeID to get all names.
func (s *ApplicationStore) Names(excludeID string) []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	names := make([]string, 0, len(s.apps))
	for _, app := range s.apps {
		if excludeID != "" && app.ID == excludeID {
			continue
		}
		names = append(names, app.Name)
	}
	return names
}

// ReplaceAll replaces the whole collection with a copy of apps.
func (s *ApplicationStore) ReplaceAll(apps []model.Application) {
	next := make([]model.Application, len(apps))
	copy(next, apps)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.apps = next
}

// Add appends an application to the end of the collection.
func (s *ApplicationStore) Add(app model.Application) {
	s.mu.Lock()
	defer s.mu.Unlock()
	next := make([]model.Application, len(s.apps), len(s.apps)+1)
	copy(next, s.apps)
	s.apps = append(next, app)
}

// Rename mutates only the name of the matching application and leaves every
// other field and every other application untouched.
func (s *ApplicationStore) Rename(appID string, name string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.replaceLocked(appID, func(app *model.Application) {
		app.Name = name
	})
}

// Merge applies a partial update to the matching application.
func (s *ApplicationStore) Merge(appID string, update model.ApplicationUpdate) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.replaceLocked(appID, func(app *model.Application) {
		update.Apply(app)
	})
}

// SetAvailability swaps in the newly computed availability of the matching
// application. The replace is keyed by ID against the current snapshot, so
// out-of-order score completions never clobber fields changed in between.
func (s *ApplicationStore) SetAvailability(appID string, availability model.Availability) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.replaceLocked(appID, func(app *model.Application) {
		app.Availability = availability
	})
}

// RemoveMany drops all applications whose ID is listed and reports how many
// were removed. Order of the survivors is preserved.
func (s *ApplicationStore) RemoveMany(appIDs []string) int {
	drop := make(map[string]struct{}, len(appIDs))
	for _, id := range appIDs {
		drop[id] = struct{}{}
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	next := make([]model.Application, 0, len(s.apps))
	removed := 0
	for _, app := range s.apps {
		if _, ok := drop[app.ID]; ok {
			removed++
			continue
		}
		next = append(next, app)
	}
	s.apps = next
	return removed
}

// replaceLocked rebuilds the collection with mutate applied to the matching
// entry. Callers must hold the write lock.
func (s *ApplicationStore) replaceLocked(appID string, mutate func(*model.Application)) bool {
	found := false
	next := make([]model.Application, len(s.apps))
	copy(next, s.apps)
	for i := range next {
		if next[i].ID == appID {
			mutate(&next[i])
			found = true
			break
		}
	}
	if !found {
		return false
	}
	s.apps = next
	return true
}
