package config

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "loom.yaml"), []byte(content), 0o644))
	return dir
}

func TestInitialize_AppliesDefaults(t *testing.T) {
	dir := writeConfig(t, `
reasoner:
  model: gemini-2.5-flash
`)
	cfg, err := Initialize(context.Background(), dir)
	require.NoError(t, err)

	assert.Equal(t, "gemini-2.5-flash", cfg.Reasoner.Model)
	assert.Equal(t, "gemini-2.5-flash", cfg.Reasoner.TitleModel)
	assert.Equal(t, 50, cfg.Defaults.BranchSoftLimit)
	assert.Equal(t, "replace", cfg.Merge.AmbiguityDefault)
	assert.Equal(t, 1.0, cfg.Merge.ModifyThreshold)
	assert.Equal(t, 365, cfg.Retention.SessionRetentionDays)
	assert.Equal(t, 0, cfg.Targets.Len())
}

func TestInitialize_UserValuesOverrideDefaults(t *testing.T) {
	dir := writeConfig(t, `
system:
  dashboard_url: https://loom.example.com
  allowed_ws_origins:
    - https://loom.example.com
  retention:
    session_retention_days: 30
reasoner:
  model: gemini-2.5-pro
  title_model: gemini-2.5-flash
  timeout: 2m
merge:
  ambiguity_default: add
  modify_threshold: 0.6
defaults:
  branch_soft_limit: 20
targets:
  erp_orders:
    description: Order lookup in the ERP
    base_url: https://erp.internal/api/v1/orders
    token_env: ERP_TOKEN
    cache_ttl: 5m
`)
	cfg, err := Initialize(context.Background(), dir)
	require.NoError(t, err)

	assert.Equal(t, "https://loom.example.com", cfg.DashboardURL)
	assert.Equal(t, 30, cfg.Retention.SessionRetentionDays)
	assert.Equal(t, "gemini-2.5-pro", cfg.Reasoner.Model)
	assert.Equal(t, "gemini-2.5-flash", cfg.Reasoner.TitleModel)
	assert.Equal(t, 2*time.Minute, cfg.Reasoner.Timeout)
	assert.Equal(t, "add", cfg.Merge.AmbiguityDefault)
	assert.Equal(t, 0.6, cfg.Merge.ModifyThreshold)
	assert.Equal(t, 20, cfg.Defaults.BranchSoftLimit)

	target, err := cfg.GetTarget("erp_orders")
	require.NoError(t, err)
	assert.Equal(t, "GET", target.Method)
	assert.Equal(t, DefaultTargetTimeout, target.Timeout)
	assert.Equal(t, 5*time.Minute, target.CacheTTL)

	_, err = cfg.GetTarget("nope")
	assert.ErrorIs(t, err, ErrTargetNotFound)
}

func TestInitialize_ExpandsEnvironmentVariables(t *testing.T) {
	t.Setenv("TEST_ERP_HOST", "erp.test.internal")
	dir := writeConfig(t, `
reasoner:
  model: gemini-2.5-flash
targets:
  erp_orders:
    description: Order lookup
    base_url: https://{{.TEST_ERP_HOST}}/api/v1/orders
`)
	cfg, err := Initialize(context.Background(), dir)
	require.NoError(t, err)

	target, err := cfg.GetTarget("erp_orders")
	require.NoError(t, err)
	assert.Equal(t, "https://erp.test.internal/api/v1/orders", target.BaseURL)
}

func TestInitialize_MissingFile(t *testing.T) {
	_, err := Initialize(context.Background(), t.TempDir())
	assert.ErrorIs(t, err, ErrConfigNotFound)
}

func TestInitialize_ValidationFailures(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{
			name: "target without base_url",
			yaml: `
reasoner:
  model: gemini-2.5-flash
targets:
  broken:
    description: no url
`,
		},
		{
			name: "bad ambiguity default",
			yaml: `
reasoner:
  model: gemini-2.5-flash
merge:
  ambiguity_default: panic
`,
		},
		{
			name: "modify threshold out of range",
			yaml: `
reasoner:
  model: gemini-2.5-flash
merge:
  modify_threshold: 1.5
`,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := writeConfig(t, tt.yaml)
			_, err := Initialize(context.Background(), dir)
			assert.ErrorIs(t, err, ErrValidationFailed)
		})
	}
}
