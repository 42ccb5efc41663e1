// Package query evaluates application availability through an external query
// evaluator. The query language itself is opaque to the agent.
package query

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"applens-agent/internal/domain/model"
	"applens-agent/pkg/log"
)

const scoreTimeout = 30 * time.Second

// Scorer computes availability statuses by posting an application's query
// definition to the evaluator endpoint.
type Scorer struct {
	baseURL    string
	httpClient *http.Client
}

// NewScorer creates a Scorer for the evaluator at baseURL.
func NewScorer(baseURL string) *Scorer {
	return &Scorer{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: scoreTimeout,
		},
	}
}

type scoreRequest struct {
	Query             string `json:"query"`
	AvailabilityVisID string `json:"availabilityVisId"`
}

type scoreResponse struct {
	Name  string `json:"name"`
	Color string `json:"color"`
}

// Score returns the availability for app. Applications without a configured
// availability visualization resolve to subdued without a request.
func (s *Scorer) Score(ctx context.Context, app model.Application, availabilityVisID string) (model.Availability, error) {
	if availabilityVisID == "" {
		return model.Availability{Color: model.SeveritySubdued}, nil
	}

	body, err := json.Marshal(scoreRequest{
		Query:             app.BaseQuery,
		AvailabilityVisID: availabilityVisID,
	})
	if err != nil {
		return model.Availability{}, fmt.Errorf("failed to marshal score request: %w", err)
	}

	url := s.baseURL + "/availability"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewBuffer(body))
	if err != nil {
		return model.Availability{}, fmt.Errorf("failed to create score request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	log.Debug("Scoring application availability", "app_id", app.ID, "url", url)
	resp, err := s.httpClient.Do(req)
	if err != nil {
		return model.Availability{}, fmt.Errorf("failed to send score request: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return model.Availability{}, fmt.Errorf("failed to read score response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return model.Availability{}, &model.BackendError{
			StatusCode: resp.StatusCode,
			Body:       string(respBody),
		}
	}

	var result scoreResponse
	if err := json.Unmarshal(respBody, &result); err != nil {
		return model.Availability{}, fmt.Errorf("failed to decode score response: %w", err)
	}

	color := model.Severity(result.Color)
	switch color {
	case model.SeveritySuccess, model.SeverityWarning, model.SeverityDanger:
	default:
		// Evaluator had no verdict for this application.
		color = model.SeveritySubdued
	}

	return model.Availability{
		Name:              result.Name,
		Color:             color,
		AvailabilityVisID: availabilityVisID,
	}, nil
}
