package get_apps

import (
	"context"
	"fmt"

	"applens-agent/internal/application/availability"
	"applens-agent/internal/application/notification"
	"applens-agent/internal/application/store"
	"applens-agent/internal/domain/model"
	"applens-agent/internal/domain/repository"
	"applens-agent/pkg/log"
)

// GetAppsResult carries the application list after the refresh resolved.
type GetAppsResult struct {
	Apps []model.Application
}

// GetAppsQueryHandler handles the GetAppsQuery.
type GetAppsQueryHandler struct {
	apps      repository.ApplicationRepository
	store     *store.ApplicationStore
	refresher *availability.Refresher
	notifier  notification.Notifier
}

// Handle executes the GetAppsQuery. The fetched list is visible in the store
// with loading placeholders before any availability score resolves; Handle
// itself returns once every score has settled to a terminal color.
func (h *GetAppsQueryHandler) Handle(query GetAppsQuery) (*GetAppsResult, error) {
	log.Debug("Processing get apps request")

	ctx := context.Background()
	apps, err := h.apps.ListApplications(ctx)
	if err != nil {
		log.Error("Error fetching applications", "error", err)
		h.notifier.Danger("Error occurred while fetching applications", "")
		return nil, fmt.Errorf("failed to fetch applications: %w", err)
	}

	h.refresher.Refresh(ctx, apps)

	log.Info("Fetched applications", "apps_count", len(apps))
	return &GetAppsResult{Apps: h.store.Snapshot()}, nil
}

// NewGetAppsQueryHandler creates a new GetAppsQueryHandler.
func NewGetAppsQueryHandler(
	apps repository.ApplicationRepository,
	s *store.ApplicationStore,
	refresher *availability.Refresher,
	notifier notification.Notifier,
) *GetAppsQueryHandler {
	return &GetAppsQueryHandler{
		apps:      apps,
		store:     s,
		refresher: refresher,
		notifier:  notifier,
	}
}
