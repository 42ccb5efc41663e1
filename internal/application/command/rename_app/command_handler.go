package rename_app

import (
	"context"
	"fmt"
	"strings"

	"applens-agent/internal/application/notification"
	"applens-agent/internal/application/store"
	"applens-agent/internal/domain/model"
	"applens-agent/internal/domain/repository"
	"applens-agent/pkg/log"
)

// RenameAppHandler handles the RenameAppCommand.
type RenameAppHandler struct {
	apps     repository.ApplicationRepository
	store    *store.ApplicationStore
	notifier notification.Notifier
}

// Handle executes the RenameAppCommand.
func (h *RenameAppHandler) Handle(cmd RenameAppCommand) error {
	appID := strings.TrimSpace(cmd.AppID)
	newName := cmd.AppName
	log.Debug("Processing rename app request", "app_id", appID, "new_name", newName)

	if appID == "" {
		return log.Errorf("app ID is required for rename app command")
	}

	// Uniqueness is checked against every application except the one being
	// renamed, so a self-rename never collides with itself.
	if violations := model.ValidateApplicationName(newName, h.store.Names(appID)); len(violations) > 0 {
		verr := &model.ValidationError{Violations: violations}
		h.notifier.Danger(verr.Error(), "")
		return verr
	}

	ctx := context.Background()
	if err := h.apps.RenameApplication(ctx, appID, newName); err != nil {
		log.Error("Error renaming application", "app_id", appID, "error", err)
		h.notifier.Danger("Error occurred while renaming application", "")
		return fmt.Errorf("failed to rename application %s: %w", appID, err)
	}

	// Partial merge: only the name of the matching entry changes.
	h.store.Rename(appID, newName)
	h.notifier.Success(fmt.Sprintf("Application successfully renamed to %q", newName))

	log.Info("Successfully renamed app", "app_id", appID, "new_name", newName)
	return nil
}

// NewRenameAppHandler creates a new RenameAppHandler.
func NewRenameAppHandler(
	apps repository.ApplicationRepository,
	s *store.ApplicationStore,
	notifier notification.Notifier,
) *RenameAppHandler {
	return &RenameAppHandler{
		apps:     apps,
		store:    s,
		notifier: notifier,
	}
}
