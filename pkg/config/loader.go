package config

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"

	"dario.cat/mergo"
	"gopkg.in/yaml.v3"
)

// Initialize loads, validates, and returns ready-to-use configuration.
// This is the primary entry point for configuration loading.
//
// Steps performed:
//  1. Load loom.yaml from configDir
//  2. Expand environment variables
//  3. Merge user-defined values over built-in defaults
//  4. Build the target registry
//  5. Validate everything
func Initialize(ctx context.Context, configDir string) (*Config, error) {
	log := slog.With("config_dir", configDir)
	log.Info("Initializing configuration")

	cfg, err := load(ctx, configDir)
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	if err := validate(cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	log.Info("Configuration initialized successfully",
		"targets", cfg.Stats().Targets,
		"model", cfg.Reasoner.Model)

	return cfg, nil
}

func load(_ context.Context, configDir string) (*Config, error) {
	loader := &configLoader{configDir: configDir}

	var yamlCfg LoomYAMLConfig
	if err := loader.loadYAML("loom.yaml", &yamlCfg); err != nil {
		return nil, NewLoadError("loom.yaml", err)
	}

	// Merge user YAML over built-in defaults; unset fields keep defaults.
	defaults := DefaultDefaults()
	if yamlCfg.Defaults != nil {
		if err := mergo.Merge(defaults, yamlCfg.Defaults, mergo.WithOverride); err != nil {
			return nil, fmt.Errorf("failed to merge defaults: %w", err)
		}
	}

	reasoner := DefaultReasonerConfig()
	if yamlCfg.Reasoner != nil {
		if err := mergo.Merge(reasoner, yamlCfg.Reasoner, mergo.WithOverride); err != nil {
			return nil, fmt.Errorf("failed to merge reasoner config: %w", err)
		}
	}
	if reasoner.TitleModel == "" {
		reasoner.TitleModel = reasoner.Model
	}

	mergeSettings := DefaultMergeSettings()
	if yamlCfg.Merge != nil {
		if err := mergo.Merge(mergeSettings, yamlCfg.Merge, mergo.WithOverride); err != nil {
			return nil, fmt.Errorf("failed to merge resolver settings: %w", err)
		}
	}

	targets := make(map[string]*TargetConfig, len(yamlCfg.Targets))
	for id, t := range yamlCfg.Targets {
		targetCopy := t
		if targetCopy.Method == "" {
			targetCopy.Method = http.MethodGet
		}
		if targetCopy.Timeout == 0 {
			targetCopy.Timeout = DefaultTargetTimeout
		}
		targets[id] = &targetCopy
	}

	retention := resolveRetentionConfig(yamlCfg.System)
	dashboardURL := ""
	var wsOrigins []string
	if yamlCfg.System != nil {
		dashboardURL = yamlCfg.System.DashboardURL
		wsOrigins = yamlCfg.System.AllowedWSOrigins
	}

	return &Config{
		configDir:        configDir,
		Defaults:         defaults,
		Reasoner:         reasoner,
		Merge:            mergeSettings,
		Retention:        retention,
		DashboardURL:     dashboardURL,
		AllowedWSOrigins: wsOrigins,
		Targets:          NewTargetRegistry(targets),
	}, nil
}

func resolveRetentionConfig(system *SystemYAMLConfig) *RetentionConfig {
	retention := DefaultRetentionConfig()
	if system == nil || system.Retention == nil {
		return retention
	}
	if system.Retention.SessionRetentionDays > 0 {
		retention.SessionRetentionDays = system.Retention.SessionRetentionDays
	}
	if system.Retention.EventTTL > 0 {
		retention.EventTTL = system.Retention.EventTTL
	}
	if system.Retention.CleanupInterval > 0 {
		retention.CleanupInterval = system.Retention.CleanupInterval
	}
	return retention
}

// validate performs comprehensive validation on loaded configuration
func validate(cfg *Config) error {
	validator := NewValidator(cfg)
	return validator.ValidateAll()
}

type configLoader struct {
	configDir string
}

func (l *configLoader) loadYAML(filename string, target any) error {
	path := filepath.Join(l.configDir, filename)

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("%w: %s", ErrConfigNotFound, path)
		}
		return err
	}

	// Expand environment variables using {{.VAR}} template syntax.
	// ExpandEnv passes through original data on parse/execution errors,
	// letting the YAML parser produce the clearer error message.
	data = ExpandEnv(data)

	if err := yaml.Unmarshal(data, target); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidYAML, err)
	}
	return nil
}
