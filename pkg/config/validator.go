package config

import (
	"fmt"
	"net/url"
	"time"
)

// DefaultTargetTimeout bounds a business-system call when the target does
// not set its own.
const DefaultTargetTimeout = 15 * time.Second

// Validator checks a loaded Config for internal consistency.
type Validator struct {
	cfg *Config
}

// NewValidator creates a validator for the given configuration.
func NewValidator(cfg *Config) *Validator {
	return &Validator{cfg: cfg}
}

// ValidateAll validates every configuration section. All errors found are
// joined so the operator sees the full list at once.
func (v *Validator) ValidateAll() error {
	var errs []error
	errs = append(errs, v.validateReasoner()...)
	errs = append(errs, v.validateMerge()...)
	errs = append(errs, v.validateTargets()...)
	errs = append(errs, v.validateDefaults()...)
	if len(errs) == 0 {
		return nil
	}
	return fmt.Errorf("%w: %v", ErrValidationFailed, joinErrors(errs))
}

func (v *Validator) validateReasoner() []error {
	var errs []error
	r := v.cfg.Reasoner
	if r.Model == "" {
		errs = append(errs, NewValidationError("reasoner", "reasoner", "model", ErrMissingRequiredField))
	}
	if r.MaxOutputTokens < 0 {
		errs = append(errs, NewValidationError("reasoner", "reasoner", "max_output_tokens", ErrInvalidValue))
	}
	return errs
}

func (v *Validator) validateMerge() []error {
	var errs []error
	m := v.cfg.Merge
	switch m.AmbiguityDefault {
	case "replace", "add":
	default:
		errs = append(errs, NewValidationError("merge", "merge", "ambiguity_default",
			fmt.Errorf("%w: %q (must be 'replace' or 'add')", ErrInvalidValue, m.AmbiguityDefault)))
	}
	if m.ModifyThreshold <= 0 || m.ModifyThreshold > 1 {
		errs = append(errs, NewValidationError("merge", "merge", "modify_threshold",
			fmt.Errorf("%w: %v (must be in (0, 1])", ErrInvalidValue, m.ModifyThreshold)))
	}
	return errs
}

func (v *Validator) validateTargets() []error {
	var errs []error
	for _, id := range v.cfg.Targets.IDs() {
		t, _ := v.cfg.Targets.Get(id)
		if t.BaseURL == "" {
			errs = append(errs, NewValidationError("target", id, "base_url", ErrMissingRequiredField))
			continue
		}
		if _, err := url.ParseRequestURI(t.BaseURL); err != nil {
			errs = append(errs, NewValidationError("target", id, "base_url",
				fmt.Errorf("%w: %v", ErrInvalidValue, err)))
		}
		if t.Description == "" {
			errs = append(errs, NewValidationError("target", id, "description", ErrMissingRequiredField))
		}
	}
	return errs
}

func (v *Validator) validateDefaults() []error {
	var errs []error
	d := v.cfg.Defaults
	if d.BranchSoftLimit < 1 {
		errs = append(errs, NewValidationError("defaults", "defaults", "branch_soft_limit", ErrInvalidValue))
	}
	if d.MaxConcurrentTurns < 1 {
		errs = append(errs, NewValidationError("defaults", "defaults", "max_concurrent_turns", ErrInvalidValue))
	}
	return errs
}

func joinErrors(errs []error) string {
	out := ""
	for i, err := range errs {
		if i > 0 {
			out += "; "
		}
		out += err.Error()
	}
	return out
}
