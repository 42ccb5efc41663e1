// Package availability recomputes application availability without blocking
// the first publish of the application list.
package availability

import (
	"context"

	"applens-agent/internal/application/store"
	"applens-agent/internal/domain/model"
	"applens-agent/internal/domain/repository"
	"applens-agent/pkg/log"
)

// Refresher publishes a freshly fetched application list with loading
// placeholders, then resolves each application's availability one at a time.
type Refresher struct {
	store  *store.ApplicationStore
	scorer repository.AvailabilityScorer
}

// NewRefresher creates a Refresher writing to the given store.
func NewRefresher(s *store.ApplicationStore, scorer repository.AvailabilityScorer) *Refresher {
	return &Refresher{store: s, scorer: scorer}
}

// Refresh replaces the store with apps carrying the loading placeholder and
// then scores them in reverse list order, awaiting each request before the
// next. Every completed score is published with a targeted, ID-keyed replace
// against the current snapshot, so a late completion never clobbers a field
// changed in between. One application's failure does not block the others;
// it resolves to a terminal danger color for that entry only.
func (r *Refresher) Refresh(ctx context.Context, apps []model.Application) {
	visIDs := make(map[string]string, len(apps))
	for i := range apps {
		visIDs[apps[i].ID] = apps[i].Availability.AvailabilityVisID
		apps[i].Availability = model.LoadingAvailability()
	}
	r.store.ReplaceAll(apps)

	// Reverse order front-loads the most recently added applications.
	for i := len(apps) - 1; i >= 0; i-- {
		select {
		case <-ctx.Done():
			log.Debug("Availability refresh cancelled", "remaining", i+1)
			return
		default:
		}

		app := apps[i]
		availability, err := r.scorer.Score(ctx, app, visIDs[app.ID])
		if err != nil {
			log.Error("Availability scoring failed", "app_id", app.ID, "error", err)
			availability = model.Availability{Color: model.SeverityDanger, AvailabilityVisID: visIDs[app.ID]}
		}
		if !r.store.SetAvailability(app.ID, availability) {
			// Deleted while the score was in flight.
			log.Debug("Skipping availability for removed application", "app_id", app.ID)
		}
	}
}
