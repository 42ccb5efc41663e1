package api

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"applens-agent/internal/domain/model"
)

const applicationsPath = "/applications"

// listApplicationsResponse wraps the application list returned by the backend.
type listApplicationsResponse struct {
	Data []model.Application `json:"data"`
}

// createApplicationResponse carries the ID of a freshly created application.
type createApplicationResponse struct {
	NewAppID string `json:"newAppId"`
}

// updateApplicationResponse carries the ID of an updated application.
type updateApplicationResponse struct {
	UpdatedAppID string `json:"updatedAppId"`
}

// renameApplicationRequest is the body of a rename call.
type renameApplicationRequest struct {
	AppID string `json:"appId"`
	Name  string `json:"name"`
}

// updateApplicationRequest wraps the partial field set for a server-side merge.
type updateApplicationRequest struct {
	AppID      string                  `json:"appId"`
	UpdateBody model.ApplicationUpdate `json:"updateBody"`
}

// ListApplications returns all applications known to the backend.
func (c *Client) ListApplications(ctx context.Context) ([]model.Application, error) {
	var resp listApplicationsResponse
	if err := c.do(ctx, http.MethodGet, applicationsPath+"/", nil, &resp); err != nil {
		return nil, err
	}
	return resp.Data, nil
}

// CreateApplication creates a new application and returns its ID.
func (c *Client) CreateApplication(ctx context.Context, req model.CreateApplicationRequest) (string, error) {
	body := struct {
		model.CreateApplicationRequest
		AvailabilityVisID string `json:"availabilityVisId"`
	}{CreateApplicationRequest: req, AvailabilityVisID: ""}

	var resp createApplicationResponse
	if err := c.do(ctx, http.MethodPost, applicationsPath+"/", body, &resp); err != nil {
		return "", err
	}
	if resp.NewAppID == "" {
		return "", fmt.Errorf("backend returned no application id")
	}
	return resp.NewAppID, nil
}

// RenameApplication renames the application identified by appID.
func (c *Client) RenameApplication(ctx context.Context, appID string, name string) error {
	body := renameApplicationRequest{AppID: appID, Name: name}
	return c.do(ctx, http.MethodPut, applicationsPath+"/rename", body, nil)
}

// UpdateApplication sends a partial field set for a server-side merge.
func (c *Client) UpdateApplication(ctx context.Context, appID string, update model.ApplicationUpdate) (string, error) {
	body := updateApplicationRequest{AppID: appID, UpdateBody: update}
	var resp updateApplicationResponse
	if err := c.do(ctx, http.MethodPut, applicationsPath+"/", body, &resp); err != nil {
		return "", err
	}
	if resp.UpdatedAppID == "" {
		resp.UpdatedAppID = appID
	}
	return resp.UpdatedAppID, nil
}

// DeleteApplications deletes all listed applications in one batched call.
func (c *Client) DeleteApplications(ctx context.Context, appIDs []string) error {
	path := applicationsPath + "/" + strings.Join(appIDs, ",")
	return c.do(ctx, http.MethodDelete, path, nil, nil)
}
