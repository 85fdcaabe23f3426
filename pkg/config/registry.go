package config

import (
	"fmt"
	"sort"
)

// TargetRegistry provides lookup of business-system targets by ID.
// Built once at startup, read-only afterwards.
type TargetRegistry struct {
	targets map[string]*TargetConfig
}

// NewTargetRegistry creates a registry from merged target configurations.
func NewTargetRegistry(targets map[string]*TargetConfig) *TargetRegistry {
	return &TargetRegistry{targets: targets}
}

// Get retrieves a target configuration by ID.
func (r *TargetRegistry) Get(id string) (*TargetConfig, error) {
	t, ok := r.targets[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrTargetNotFound, id)
	}
	return t, nil
}

// Has reports whether a target ID is configured.
func (r *TargetRegistry) Has(id string) bool {
	_, ok := r.targets[id]
	return ok
}

// Len returns the number of configured targets.
func (r *TargetRegistry) Len() int {
	return len(r.targets)
}

// IDs returns all target IDs, sorted for stable catalog output.
func (r *TargetRegistry) IDs() []string {
	ids := make([]string, 0, len(r.targets))
	for id := range r.targets {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}
