package create_app

import (
	"context"
	"fmt"

	"applens-agent/internal/application/command/update_app"
	"applens-agent/internal/application/notification"
	"applens-agent/internal/application/session"
	"applens-agent/internal/application/store"
	"applens-agent/internal/domain/model"
	"applens-agent/internal/domain/repository"
	"applens-agent/pkg/cqrs"
	"applens-agent/pkg/log"
)

// CreateAppHandler handles the CreateAppCommand.
type CreateAppHandler struct {
	apps                 repository.ApplicationRepository
	panels               repository.PanelRepository
	store                *store.ApplicationStore
	drafts               session.Drafts
	notifier             notification.Notifier
	bus                  cqrs.CommandBus
	docsURL              string
	provisioningDisabled bool
}

// Handle executes the CreateAppCommand.
func (h *CreateAppHandler) Handle(cmd CreateAppCommand) error {
	req := cmd.Request
	log.Debug("Processing create app request", "app_name", req.Name, "mode", cmd.Mode)

	// Validation is pre-flight: a failure never reaches the network, and the
	// report lists every violated rule at once.
	if violations := model.ValidateApplicationName(req.Name, h.store.Names("")); len(violations) > 0 {
		verr := &model.ValidationError{Violations: violations}
		h.notifier.Danger(verr.Error(), "")
		return verr
	}

	ctx := context.Background()
	appID, err := h.apps.CreateApplication(ctx, req)
	if err != nil {
		log.Error("Error creating application", "app_name", req.Name, "error", err)
		h.notifier.Danger(fmt.Sprintf("Error occurred while creating new application %q", req.Name), "")
		return fmt.Errorf("failed to create application %q: %w", req.Name, err)
	}

	// The store entry appears with the submitted fields and no panel
	// reference; the reference lands only after the backend confirms the
	// panel exists.
	h.store.Add(model.Application{
		ID:               appID,
		Name:             req.Name,
		Description:      req.Description,
		BaseQuery:        req.BaseQuery,
		ServicesEntities: req.ServicesEntities,
		TraceGroups:      req.TraceGroups,
	})

	h.notifier.Success(fmt.Sprintf("Application %q successfully created!", req.Name))
	if err := h.drafts.Clear(); err != nil {
		log.Warn("Failed to clear drafts after create", "error", err)
	}

	h.provisionPanel(ctx, appID, req.Name, cmd.Mode)

	log.Info("Successfully created app", "app_id", appID, "app_name", req.Name)
	return nil
}

// provisionPanel creates the companion panel and hands its reference back
// through an update. Panel failure is non-fatal: the application stays
// created and the failure is reported as its own warning.
func (h *CreateAppHandler) provisionPanel(ctx context.Context, appID, appName, mode string) {
	if h.provisioningDisabled {
		log.Debug("Panel provisioning disabled, skipping", "app_id", appID)
		return
	}

	panelID, err := h.panels.CreatePanel(ctx, appID, appName+"'s Panel")
	if err != nil {
		log.Error("Error creating panel for application", "app_id", appID, "error", err)
		h.notifier.Danger(
			"Please ask your administrator to enable Operational Panels for you.",
			h.docsURL,
		)
		return
	}

	update := update_app.UpdateAppCommand{
		AppID:  appID,
		Update: model.ApplicationUpdate{PanelID: &panelID},
		Mode:   mode,
	}
	if err := h.bus.Dispatch(update); err != nil {
		log.Error("Error attaching panel to application", "app_id", appID, "panel_id", panelID, "error", err)
	}
}

// NewCreateAppHandler creates a new CreateAppHandler. docsURL is linked from
// panel permission failures; provisioningDisabled skips panel creation
// entirely.
func NewCreateAppHandler(
	apps repository.ApplicationRepository,
	panels repository.PanelRepository,
	s *store.ApplicationStore,
	drafts session.Drafts,
	notifier notification.Notifier,
	bus cqrs.CommandBus,
	docsURL string,
	provisioningDisabled bool,
) *CreateAppHandler {
	return &CreateAppHandler{
		apps:                 apps,
		panels:               panels,
		store:                s,
		drafts:               drafts,
		notifier:             notifier,
		bus:                  bus,
		docsURL:              docsURL,
		provisioningDisabled: provisioningDisabled,
	}
}
