package update_app

import (
	"context"
	"fmt"
	"strings"

	"applens-agent/internal/application/navigation"
	"applens-agent/internal/application/notification"
	"applens-agent/internal/application/session"
	"applens-agent/internal/application/store"
	"applens-agent/internal/domain/model"
	"applens-agent/internal/domain/repository"
	"applens-agent/pkg/log"
)

// UpdateAppHandler handles the UpdateAppCommand.
type UpdateAppHandler struct {
	apps      repository.ApplicationRepository
	store     *store.ApplicationStore
	drafts    session.Drafts
	notifier  notification.Notifier
	navigator navigation.Navigator
}

// Handle executes the UpdateAppCommand.
func (h *UpdateAppHandler) Handle(cmd UpdateAppCommand) error {
	appID := strings.TrimSpace(cmd.AppID)
	log.Debug("Processing update app request", "app_id", appID, "mode", cmd.Mode)

	if appID == "" {
		return log.Errorf("app ID is required for update app command")
	}

	ctx := context.Background()
	updatedID, err := h.apps.UpdateApplication(ctx, appID, cmd.Update)
	if err != nil {
		log.Error("Error updating application", "app_id", appID, "error", err)
		h.notifier.Danger("Error occurred while updating application", "")
		return fmt.Errorf("failed to update application %s: %w", appID, err)
	}

	// Mirror the server-side merge locally.
	h.store.Merge(appID, cmd.Update)

	switch {
	case cmd.Mode == model.ModeUpdate:
		h.notifier.Success("Application successfully updated.")
		if err := h.drafts.Clear(); err != nil {
			log.Warn("Failed to clear drafts after update", "error", err)
		}
		h.navigator.MoveToApp(updatedID, cmd.Mode)
	case strings.HasPrefix(cmd.Mode, "create"):
		// Creation already reported success; navigate only.
		h.navigator.MoveToApp(updatedID, cmd.Mode)
	}

	log.Info("Successfully updated app", "app_id", updatedID, "mode", cmd.Mode)
	return nil
}

// NewUpdateAppHandler creates a new UpdateAppHandler.
func NewUpdateAppHandler(
	apps repository.ApplicationRepository,
	s *store.ApplicationStore,
	drafts session.Drafts,
	notifier notification.Notifier,
	navigator navigation.Navigator,
) *UpdateAppHandler {
	return &UpdateAppHandler{
		apps:      apps,
		store:     s,
		drafts:    drafts,
		notifier:  notifier,
		navigator: navigator,
	}
}
