package get_apps

// GetAppsQuery fetches all applications from the backend, publishes them to
// the store and refreshes their availability.
type GetAppsQuery struct{}

// Name returns the name of the query.
func (q GetAppsQuery) Name() string {
	return "GetApps"
}
