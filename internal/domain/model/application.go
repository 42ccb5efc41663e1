package model

// Severity is a color-coded status used for availability and health indicators.
type Severity string

const (
	SeverityLoading Severity = "loading"
	SeveritySuccess Severity = "success"
	SeverityWarning Severity = "warning"
	SeverityDanger  Severity = "danger"
	SeveritySubdued Severity = "subdued"
)

// Availability is the computed health indicator of an Application.
// SeverityLoading is a transient placeholder used while a score is being
// recomputed; it is never persisted to the backend and never the terminal
// state of a finished refresh.
type Availability struct {
	Name              string   `json:"name"`
	Color             Severity `json:"color"`
	AvailabilityVisID string   `json:"availabilityVisId"`
}

// LoadingAvailability returns the placeholder shown while a score is pending.
func LoadingAvailability() Availability {
	return Availability{Name: "", Color: SeverityLoading, AvailabilityVisID: ""}
}

// Application is the primary entity: a named collection of query definitions
// plus a derived availability indicator. The query-definition fields are
// owned by the caller and passed through untouched.
type Application struct {
	ID               string       `json:"id"`
	Name             string       `json:"name"`
	Description      string       `json:"description"`
	BaseQuery        string       `json:"baseQuery"`
	ServicesEntities []string     `json:"servicesEntities"`
	TraceGroups      []string     `json:"traceGroups"`
	PanelID          string       `json:"panelId,omitempty"`
	Availability     Availability `json:"availability"`
}

// CreateApplicationRequest carries the caller-owned fields for a new Application.
type CreateApplicationRequest struct {
	Name             string   `json:"name"`
	Description      string   `json:"description"`
	BaseQuery        string   `json:"baseQuery"`
	ServicesEntities []string `json:"servicesEntities"`
	TraceGroups      []string `json:"traceGroups"`
}

// ApplicationUpdate is a partial field set. Nil pointers mean "leave as is";
// the backend performs the authoritative server-side merge, and the in-memory
// store applies the same merge locally.
type ApplicationUpdate struct {
	Name              *string   `json:"name,omitempty"`
	Description       *string   `json:"description,omitempty"`
	BaseQuery         *string   `json:"baseQuery,omitempty"`
	ServicesEntities  *[]string `json:"servicesEntities,omitempty"`
	TraceGroups       *[]string `json:"traceGroups,omitempty"`
	PanelID           *string   `json:"panelId,omitempty"`
	AvailabilityVisID *string   `json:"availabilityVisId,omitempty"`
}

// Apply merges the set fields of the update into app.
func (u ApplicationUpdate) Apply(app *Application) {
	if u.Name != nil {
		app.Name = *u.Name
	}
	if u.Description != nil {
		app.Description = *u.Description
	}
	if u.BaseQuery != nil {
		app.BaseQuery = *u.BaseQuery
	}
	if u.ServicesEntities != nil {
		app.ServicesEntities = *u.ServicesEntities
	}
	if u.TraceGroups != nil {
		app.TraceGroups = *u.TraceGroups
	}
	if u.PanelID != nil {
		app.PanelID = *u.PanelID
	}
	if u.AvailabilityVisID != nil {
		app.Availability.AvailabilityVisID = *u.AvailabilityVisID
	}
}

// Update modes. They distinguish the user-visible side effects of an update;
// the backend write is identical for all of them.
const (
	// ModeUpdate shows success feedback, clears drafts and navigates.
	ModeUpdate = "update"
	// ModeCreate navigates without extra feedback; creation already reported.
	ModeCreate = "create"
	// ModeCreateSetAvailability navigates and arms the availability setup flow.
	ModeCreateSetAvailability = "createSetAvailability"
)
