package repository

import (
	"context"

	"applens-agent/internal/domain/model"
)

// AvailabilityScorer computes the availability status of an application by
// evaluating its query definition against an external evaluator. The query
// language is opaque to the rest of the system.
type AvailabilityScorer interface {
	// Score returns the availability for app. availabilityVisID identifies
	// the configured availability visualization; when it is empty the scorer
	// resolves to a subdued status without issuing a request.
	Score(ctx context.Context, app model.Application, availabilityVisID string) (model.Availability, error)
}
