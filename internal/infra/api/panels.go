package api

import (
	"context"
	"fmt"
	"net/http"
	"strings"
)

const panelsPath = "/panels"

// createPanelRequest provisions a companion panel for an application.
type createPanelRequest struct {
	PanelName     string `json:"panelName"`
	ApplicationID string `json:"applicationId"`
}

type createPanelResponse struct {
	NewPanelID string `json:"newPanelId"`
}

type panelVisualization struct {
	SavedVisualizationID string `json:"savedVisualizationId"`
}

type getPanelResponse struct {
	Visualizations []panelVisualization `json:"visualizations"`
}

// CreatePanel provisions a panel for the given application and returns the
// new panel ID.
func (c *Client) CreatePanel(ctx context.Context, appID string, panelName string) (string, error) {
	body := createPanelRequest{PanelName: panelName, ApplicationID: appID}
	var resp createPanelResponse
	if err := c.do(ctx, http.MethodPost, panelsPath+"/panels", body, &resp); err != nil {
		return "", err
	}
	if resp.NewPanelID == "" {
		return "", fmt.Errorf("backend returned no panel id")
	}
	return resp.NewPanelID, nil
}

// DeletePanels deletes the listed panels in one batched call.
func (c *Client) DeletePanels(ctx context.Context, panelIDs []string) error {
	path := panelsPath + "/panelList/" + strings.Join(panelIDs, ",")
	return c.do(ctx, http.MethodDelete, path, nil, nil)
}

// ListVisualizationIDs returns the IDs of the saved visualizations owned by
// the given panel.
func (c *Client) ListVisualizationIDs(ctx context.Context, panelID string) ([]string, error) {
	var resp getPanelResponse
	if err := c.do(ctx, http.MethodGet, panelsPath+"/panels/"+panelID, nil, &resp); err != nil {
		return nil, err
	}
	ids := make([]string, 0, len(resp.Visualizations))
	for _, viz := range resp.Visualizations {
		if viz.SavedVisualizationID != "" {
			ids = append(ids, viz.SavedVisualizationID)
		}
	}
	return ids, nil
}
