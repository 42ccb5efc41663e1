package delete_apps

// DeleteAppsCommand deletes a batch of applications and cascades to their
// panels and the panels' saved visualizations. SuccessMessage, when set,
// overrides the default pluralized success report.
type DeleteAppsCommand struct {
	AppIDs         []string
	PanelIDs       []string
	SuccessMessage string
}

// Name returns a unique identifier of the command used by the CQRS bus.
func (c DeleteAppsCommand) Name() string {
	return "DeleteApps"
}
