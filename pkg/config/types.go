package config

import "time"

// TargetConfig describes one business-system endpoint the orchestrator may
// call during a turn. Targets are the closed catalog handed to the reasoning
// engine; a decision naming an unknown target fails the turn.
type TargetConfig struct {
	// Description is shown to the reasoning engine in the tool catalog.
	Description string `yaml:"description"`

	// BaseURL is the endpoint root, e.g. https://erp.internal/api/v1.
	BaseURL string `yaml:"base_url"`

	// Method is the HTTP method, default GET.
	Method string `yaml:"method,omitempty"`

	// TokenEnv names the environment variable holding the bearer token.
	// Empty means unauthenticated.
	TokenEnv string `yaml:"token_env,omitempty"`

	// Timeout bounds one call to the target.
	Timeout time.Duration `yaml:"timeout,omitempty"`

	// CacheTTL enables response caching when positive. Only safe for
	// read-only targets.
	CacheTTL time.Duration `yaml:"cache_ttl,omitempty"`

	// Parameters documents the accepted parameters for the catalog.
	Parameters map[string]string `yaml:"parameters,omitempty"`
}

// ReasonerConfig holds reasoning-engine settings.
type ReasonerConfig struct {
	// Model is the generative model identifier, e.g. gemini-2.5-flash.
	Model string `yaml:"model"`

	// TitleModel generates session titles; defaults to Model when empty.
	TitleModel string `yaml:"title_model,omitempty"`

	// APIKeyEnv names the environment variable holding the API key.
	APIKeyEnv string `yaml:"api_key_env,omitempty"`

	// MaxOutputTokens caps one decision's size.
	MaxOutputTokens int `yaml:"max_output_tokens,omitempty"`

	// Timeout bounds one reasoning call, tool round-trips included.
	Timeout time.Duration `yaml:"timeout,omitempty"`
}

// MergeSettings tunes the merge resolver.
type MergeSettings struct {
	// AmbiguityDefault is the action applied when the resolver cannot
	// confidently classify the relation: "replace" or "add".
	AmbiguityDefault string `yaml:"ambiguity_default,omitempty"`

	// ModifyThreshold is the overlap ratio at and above which a partial
	// overlap is treated as a modify. 1.0 requires full containment.
	ModifyThreshold float64 `yaml:"modify_threshold,omitempty"`
}

// SystemYAMLConfig groups system-wide infrastructure settings.
type SystemYAMLConfig struct {
	DashboardURL     string           `yaml:"dashboard_url"`
	AllowedWSOrigins []string         `yaml:"allowed_ws_origins"`
	Retention        *RetentionConfig `yaml:"retention"`
}

// LoomYAMLConfig represents the complete loom.yaml file structure
type LoomYAMLConfig struct {
	System   *SystemYAMLConfig       `yaml:"system"`
	Reasoner *ReasonerConfig         `yaml:"reasoner"`
	Merge    *MergeSettings          `yaml:"merge"`
	Targets  map[string]TargetConfig `yaml:"targets"`
	Defaults *Defaults               `yaml:"defaults"`
}
