package model

import (
	"fmt"
	"net/http"
	"strings"
)

// ValidationError reports pre-flight rule violations. It never reaches the
// network; the message lists every violated rule in one user-visible report.
type ValidationError struct {
	Violations []string
}

func (e *ValidationError) Error() string {
	return strings.Join(e.Violations, ", ")
}

// BackendError represents a non-2xx or transport failure from a backend
// request. Callers decide retry/fallback policy; none is applied here.
type BackendError struct {
	StatusCode int
	Body       string
}

func (e *BackendError) Error() string {
	if e.StatusCode == http.StatusBadRequest {
		return fmt.Sprintf("bad_request:%s", e.Body)
	}
	return fmt.Sprintf("request_failed:%d", e.StatusCode)
}

// PartialCascadeError marks a tail cascade step that failed after the primary
// delete already succeeded. It is reported separately and never rolls back or
// retries the primary operation.
type PartialCascadeError struct {
	Step string
	Err  error
}

func (e *PartialCascadeError) Error() string {
	return fmt.Sprintf("cascade step %s failed: %v", e.Step, e.Err)
}

func (e *PartialCascadeError) Unwrap() error {
	return e.Err
}
