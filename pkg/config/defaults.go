package config

import "time"

// Defaults contains system-wide default values applied when loom.yaml
// leaves them unset.
type Defaults struct {
	// BranchSoftLimit is the per-branch snapshot count past which a
	// warning is logged. Appends are never rejected for depth.
	BranchSoftLimit int `yaml:"branch_soft_limit,omitempty"`

	// TurnTimeout bounds one full orchestration turn.
	TurnTimeout time.Duration `yaml:"turn_timeout,omitempty"`

	// MaxConcurrentTurns caps in-flight turns across all sessions.
	MaxConcurrentTurns int `yaml:"max_concurrent_turns,omitempty"`
}

// DefaultDefaults returns the built-in defaults.
func DefaultDefaults() *Defaults {
	return &Defaults{
		BranchSoftLimit:    50,
		TurnTimeout:        5 * time.Minute,
		MaxConcurrentTurns: 32,
	}
}

// DefaultReasonerConfig returns the built-in reasoning-engine settings.
func DefaultReasonerConfig() *ReasonerConfig {
	return &ReasonerConfig{
		Model:           "gemini-2.5-flash",
		APIKeyEnv:       "GOOGLE_API_KEY",
		MaxOutputTokens: 8192,
		Timeout:         90 * time.Second,
	}
}

// DefaultMergeSettings returns the built-in merge resolver tuning.
func DefaultMergeSettings() *MergeSettings {
	return &MergeSettings{
		AmbiguityDefault: "replace",
		ModifyThreshold:  1.0,
	}
}
