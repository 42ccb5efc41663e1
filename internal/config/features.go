package config

const (
	// FeatureAvailabilityRefreshDisabled turns off the periodic availability
	// refresh loop; applications keep whatever availability they last had.
	FeatureAvailabilityRefreshDisabled = "availability_refresh_disabled"
	// FeaturePanelProvisioningDisabled skips companion panel creation for new
	// applications.
	FeaturePanelProvisioningDisabled = "panel_provisioning_disabled"
)

const (
	FeatureDefaultValue = false
)

// DefaultFeatureValues defines the default values for each feature.
var DefaultFeatureValues = map[string]bool{
	FeatureAvailabilityRefreshDisabled: FeatureDefaultValue,
	FeaturePanelProvisioningDisabled:   FeatureDefaultValue,
}

// IsFeatureEnabled checks if a feature is enabled in the configuration.
func (c *Config) IsFeatureEnabled(feature string) bool {
	value, exists := c.Features[feature]
	if !exists {
		return FeatureDefaultValue
	}
	return value
}
