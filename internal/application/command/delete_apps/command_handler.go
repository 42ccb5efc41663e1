package delete_apps

import (
	"context"
	"fmt"
	"sync"

	"applens-agent/internal/application/notification"
	"applens-agent/internal/application/store"
	"applens-agent/internal/domain/model"
	"applens-agent/internal/domain/repository"
	"applens-agent/pkg/log"
)

// DeleteAppsHandler handles the DeleteAppsCommand.
//
// The batched application delete is the unit of atomicity: if it fails,
// nothing else runs and the store is left unchanged. Once it succeeds, the
// store entries are removed immediately and the tail cascade (tab cleanup,
// visualization and panel deletion) runs per resource with no ordering
// guarantee between resources; a cascade failure never rolls back the
// already-confirmed delete.
type DeleteAppsHandler struct {
	apps           repository.ApplicationRepository
	panels         repository.PanelRepository
	visualizations repository.VisualizationRepository
	store          *store.ApplicationStore
	notifier       notification.Notifier
	events         *notification.Events
	docsURL        string

	cascade sync.WaitGroup
}

// Handle executes the DeleteAppsCommand.
func (h *DeleteAppsHandler) Handle(cmd DeleteAppsCommand) error {
	log.Debug("Processing delete apps request", "app_count", len(cmd.AppIDs), "panel_count", len(cmd.PanelIDs))

	if len(cmd.AppIDs) == 0 {
		return log.Errorf("at least one application ID is required for delete apps command")
	}

	ctx := context.Background()
	if err := h.apps.DeleteApplications(ctx, cmd.AppIDs); err != nil {
		log.Error("Error deleting applications", "app_ids", cmd.AppIDs, "error", err)
		h.notifier.Danger("Error occurred while deleting application", "")
		return fmt.Errorf("failed to delete applications: %w", err)
	}

	// Primary delete is confirmed; release the per-tab associations.
	// Delivery is best effort and never surfaces to the user.
	for _, appID := range cmd.AppIDs {
		h.events.EntityDeleted(appID)
	}

	for _, panelID := range cmd.PanelIDs {
		h.cascade.Add(1)
		go func(panelID string) {
			defer h.cascade.Done()
			h.cleanupPanel(context.Background(), panelID)
		}(panelID)
	}

	removed := h.store.RemoveMany(cmd.AppIDs)

	message := cmd.SuccessMessage
	if message == "" {
		plural := ""
		if len(cmd.AppIDs) > 1 {
			plural = "s"
		}
		message = fmt.Sprintf("Application%s successfully deleted!", plural)
	}
	h.notifier.Success(message)

	log.Info("Successfully deleted apps", "requested", len(cmd.AppIDs), "removed", removed)
	return nil
}

// cleanupPanel deletes a panel's saved visualizations and then the panel
// itself. A panel without visualizations is left alone, matching the
// long-standing behavior of the original flow. Each failure is isolated to
// its own step and reported as a separate notification.
func (h *DeleteAppsHandler) cleanupPanel(ctx context.Context, panelID string) {
	vizIDs, err := h.panels.ListVisualizationIDs(ctx, panelID)
	if err != nil {
		cerr := &model.PartialCascadeError{Step: "list visualizations", Err: err}
		log.Error("Cascade step failed", "panel_id", panelID, "error", cerr)
		h.notifier.Danger("Error occurred while deleting Saved Visualizations", "")
		return
	}
	if len(vizIDs) == 0 {
		log.Debug("Panel has no visualizations, leaving panel in place", "panel_id", panelID)
		return
	}

	if err := h.visualizations.DeleteVisualizations(ctx, vizIDs); err != nil {
		cerr := &model.PartialCascadeError{Step: "delete visualizations", Err: err}
		log.Error("Cascade step failed", "panel_id", panelID, "error", cerr)
		h.notifier.Danger("Error occurred while deleting Saved Visualizations", "")
		return
	}

	if err := h.panels.DeletePanels(ctx, []string{panelID}); err != nil {
		cerr := &model.PartialCascadeError{Step: "delete panel", Err: err}
		log.Error("Cascade step failed", "panel_id", panelID, "error", cerr)
		h.notifier.Danger(
			"Error occurred while deleting Operational Panels, please make sure you have the correct permission.",
			h.docsURL,
		)
		return
	}

	log.Debug("Panel cascade completed", "panel_id", panelID, "visualizations", len(vizIDs))
}

// WaitForCascade blocks until every in-flight tail cascade has finished.
// Call it on shutdown, after the command bus has drained.
func (h *DeleteAppsHandler) WaitForCascade() {
	h.cascade.Wait()
}

// NewDeleteAppsHandler creates a new DeleteAppsHandler. docsURL is linked
// from panel permission failures.
func NewDeleteAppsHandler(
	apps repository.ApplicationRepository,
	panels repository.PanelRepository,
	visualizations repository.VisualizationRepository,
	s *store.ApplicationStore,
	notifier notification.Notifier,
	events *notification.Events,
	docsURL string,
) *DeleteAppsHandler {
	return &DeleteAppsHandler{
		apps:           apps,
		panels:         panels,
		visualizations: visualizations,
		store:          s,
		notifier:       notifier,
		events:         events,
		docsURL:        docsURL,
	}
}
