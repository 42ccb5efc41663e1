package agent

import (
	"applens-agent/internal/application/availability"
	"applens-agent/internal/application/command/create_app"
	"applens-agent/internal/application/command/delete_apps"
	"applens-agent/internal/application/command/rename_app"
	"applens-agent/internal/application/command/update_app"
	"applens-agent/internal/application/query/get_apps"
	"applens-agent/internal/config"
	"applens-agent/internal/infra/api"
	"applens-agent/pkg/log"
)

// registerHandlers registers every command and query handler on the agent's
// buses. It returns the delete handler so the agent can wait for its tail
// cascades on shutdown.
func registerHandlers(a *Agent, client *api.Client, refresher *availability.Refresher) (*delete_apps.DeleteAppsHandler, error) {
	docsURL := a.config.PanelsDocumentationURL
	provisioningDisabled := a.config.IsFeatureEnabled(config.FeaturePanelProvisioningDisabled)

	createHandler := create_app.NewCreateAppHandler(
		client, client, a.store, a.drafts, a.toasts, a.commandBus, docsURL, provisioningDisabled,
	)
	if err := a.commandBus.Register(createHandler); err != nil {
		return nil, log.Errorf("failed to register create app handler", "error", err)
	}

	renameHandler := rename_app.NewRenameAppHandler(client, a.store, a.toasts)
	if err := a.commandBus.Register(renameHandler); err != nil {
		return nil, log.Errorf("failed to register rename app handler", "error", err)
	}

	updateHandler := update_app.NewUpdateAppHandler(client, a.store, a.drafts, a.toasts, a.navigator)
	if err := a.commandBus.Register(updateHandler); err != nil {
		return nil, log.Errorf("failed to register update app handler", "error", err)
	}

	deleteHandler := delete_apps.NewDeleteAppsHandler(
		client, client, client, a.store, a.toasts, a.events, docsURL,
	)
	if err := a.commandBus.Register(deleteHandler); err != nil {
		return nil, log.Errorf("failed to register delete apps handler", "error", err)
	}

	getAppsHandler := get_apps.NewGetAppsQueryHandler(client, a.store, refresher, a.toasts)
	if err := a.queryBus.Register(getAppsHandler); err != nil {
		return nil, log.Errorf("failed to register get apps query handler", "error", err)
	}

	return deleteHandler, nil
}
