package repository

import (
	"context"

	"applens-agent/internal/domain/model"
)

// ApplicationRepository is the backend contract for Application CRUD.
// Every method performs exactly one request; failures surface as
// *model.BackendError without interpretation and are never retried here.
type ApplicationRepository interface {
	// ListApplications returns all applications known to the backend.
	ListApplications(ctx context.Context) ([]model.Application, error)

	// CreateApplication creates a new application and returns its ID.
	CreateApplication(ctx context.Context, req model.CreateApplicationRequest) (string, error)

	// RenameApplication renames the application identified by appID.
	RenameApplication(ctx context.Context, appID string, name string) error

	// UpdateApplication sends a partial field set for a server-side merge and
	// returns the ID of the updated application.
	UpdateApplication(ctx context.Context, appID string, update model.ApplicationUpdate) (string, error)

	// DeleteApplications deletes all listed applications in one batched call.
	DeleteApplications(ctx context.Context, appIDs []string) error
}
