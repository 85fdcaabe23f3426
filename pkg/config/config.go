package config

// Config is the umbrella configuration object returned by Initialize()
// and used throughout the application.
type Config struct {
	configDir string

	// System-wide defaults
	Defaults *Defaults

	// Reasoning-engine settings
	Reasoner *ReasonerConfig

	// Merge resolver tuning
	Merge *MergeSettings

	// Data retention and cleanup
	Retention *RetentionConfig

	// Dashboard origin settings
	DashboardURL     string
	AllowedWSOrigins []string

	// Business-system target catalog
	Targets *TargetRegistry
}

// Stats contains statistics about loaded configuration
type Stats struct {
	Targets int
}

// Stats returns configuration statistics for logging/monitoring
func (c *Config) Stats() Stats {
	s := Stats{}
	if c.Targets != nil {
		s.Targets = c.Targets.Len()
	}
	return s
}

// ConfigDir returns the configuration directory path
func (c *Config) ConfigDir() string {
	return c.configDir
}

// GetTarget retrieves a target configuration by ID.
// This is a convenience method that wraps Targets.Get().
func (c *Config) GetTarget(id string) (*TargetConfig, error) {
	return c.Targets.Get(id)
}
