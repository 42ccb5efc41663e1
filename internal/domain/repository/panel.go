package repository

import "context"

// PanelRepository manages the operational panels owned by applications.
type PanelRepository interface {
	// CreatePanel provisions a panel for the given application and returns
	// the new panel ID.
	CreatePanel(ctx context.Context, appID string, panelName string) (string, error)

	// DeletePanels deletes the listed panels in one batched call.
	DeletePanels(ctx context.Context, panelIDs []string) error

	// ListVisualizationIDs returns the IDs of the saved visualizations owned
	// by the given panel.
	ListVisualizationIDs(ctx context.Context, panelID string) ([]string, error)
}

// VisualizationRepository is the saved-object service contract for
// visualizations owned by panels.
type VisualizationRepository interface {
	// DeleteVisualizations bulk-deletes the listed saved visualizations.
	DeleteVisualizations(ctx context.Context, visualizationIDs []string) error
}
