package api

import (
	"context"
	"net/http"
)

const savedObjectsPath = "/saved_objects"

// bulkDeleteRequest is the saved-object service's batched delete body.
type bulkDeleteRequest struct {
	ObjectIDList []string `json:"objectIdList"`
}

// DeleteVisualizations bulk-deletes the listed saved visualizations through
// the saved-object service.
func (c *Client) DeleteVisualizations(ctx context.Context, visualizationIDs []string) error {
	body := bulkDeleteRequest{ObjectIDList: visualizationIDs}
	return c.do(ctx, http.MethodPost, savedObjectsPath+"/_bulk_delete", body, nil)
}
