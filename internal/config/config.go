package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/goccy/go-yaml"
)

const (
	// DefaultAPIBaseURL is the default base URL of the application analytics backend.
	DefaultAPIBaseURL = "http://localhost:5601/api/observability"
	// DefaultQueryBaseURL is the default base URL of the availability query evaluator.
	DefaultQueryBaseURL = "http://localhost:5601/api/query"
	// DefaultPanelsDocumentationURL is linked from panel permission errors.
	DefaultPanelsDocumentationURL = "https://opensearch.org/docs/latest/observability-plugin/operational-panels/"
	// DefaultRefreshInterval is how often the availability refresh loop runs.
	DefaultRefreshInterval = "5m"
	// DefaultDraftsPath is where draft form fields are persisted.
	DefaultDraftsPath = "drafts.session"
)

// Config holds the agent configuration.
type Config struct {
	// APIBaseURL is the base URL for the application, panel and saved-object backends.
	APIBaseURL string `yaml:"api_base_url,omitempty"`
	// QueryBaseURL is the base URL for the availability query evaluator.
	QueryBaseURL string `yaml:"query_base_url,omitempty"`
	// PanelsDocumentationURL is surfaced with panel permission failures.
	PanelsDocumentationURL string `yaml:"panels_documentation_url,omitempty"`
	// RefreshInterval is the availability refresh period, in time.ParseDuration form.
	RefreshInterval string `yaml:"refresh_interval,omitempty"`
	// DraftsPath is where the session draft store keeps its file.
	DraftsPath string `yaml:"drafts_path,omitempty"`
	// LogLevel is one of debug, info, warn, error.
	LogLevel string          `yaml:"log_level,omitempty"`
	Features map[string]bool `yaml:"features,omitempty"`
}

// validateAndMergeFeatures ensures only supported features are used and
// merges them with defaults.
func validateAndMergeFeatures(configFeatures map[string]bool) map[string]bool {
	merged := make(map[string]bool, len(DefaultFeatureValues))
	for feature, defaultValue := range DefaultFeatureValues {
		if value, exists := configFeatures[feature]; exists {
			merged[feature] = value
		} else {
			merged[feature] = defaultValue
		}
	}
	return merged
}

func defaultConfig() *Config {
	return &Config{
		APIBaseURL:             DefaultAPIBaseURL,
		QueryBaseURL:           DefaultQueryBaseURL,
		PanelsDocumentationURL: DefaultPanelsDocumentationURL,
		RefreshInterval:        DefaultRefreshInterval,
		DraftsPath:             DefaultDraftsPath,
		LogLevel:               "info",
		Features:               validateAndMergeFeatures(nil),
	}
}

// LoadConfig loads the configuration from a YAML file. A missing file yields
// the defaults; a present but invalid file is an error.
func LoadConfig(configPath string) (*Config, error) {
	config := defaultConfig()

	data, err := os.ReadFile(configPath)
	if err != nil {
		if os.IsNotExist(err) {
			return config, nil
		}
		return nil, fmt.Errorf("failed to read config file %s: %w", configPath, err)
	}

	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", configPath, err)
	}

	config.Features = validateAndMergeFeatures(config.Features)
	if config.APIBaseURL == "" {
		config.APIBaseURL = DefaultAPIBaseURL
	}
	if config.QueryBaseURL == "" {
		config.QueryBaseURL = DefaultQueryBaseURL
	}
	if config.PanelsDocumentationURL == "" {
		config.PanelsDocumentationURL = DefaultPanelsDocumentationURL
	}
	if config.RefreshInterval == "" {
		config.RefreshInterval = DefaultRefreshInterval
	}
	return config, nil
}

// SaveConfig saves the configuration to a YAML file.
func SaveConfig(config *Config, configPath string) error {
	dir := filepath.Dir(configPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(configPath, data, 0o644); err != nil {
		return fmt.Errorf("failed to write config file %s: %w", configPath, err)
	}
	return nil
}

// RefreshEvery returns the parsed refresh interval, falling back to the
// default when the configured value does not parse.
func (c *Config) RefreshEvery() time.Duration {
	d, err := time.ParseDuration(c.RefreshInterval)
	if err != nil || d <= 0 {
		d, _ = time.ParseDuration(DefaultRefreshInterval)
	}
	return d
}
