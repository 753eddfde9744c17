package config

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// LoadConfig loads configuration from a YAML file at the specified path.
// It applies default values, validates the configuration, and returns any
// errors. A missing file is not an error: wallsweep works out of the box
// without one, so the defaults are returned instead. The configuration is
// not modified by environment variables; use LoadConfigWithEnvOverrides for
// that functionality.
func LoadConfig(path string) (*Config, error) {
	var cfg Config

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("failed to parse configuration file %q: %w", path, err)
		}
	case os.IsNotExist(err):
		// Defaults only.
	default:
		return nil, fmt.Errorf("failed to read configuration file %q: %w", path, err)
	}

	ApplyDefaults(&cfg)

	if err := Validate(&cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return &cfg, nil
}

// LoadConfigWithEnvOverrides loads configuration from a YAML file and applies
// environment variable overrides. Environment variables follow the naming
// convention WALLSWEEP_SECTION_FIELD (e.g. WALLSWEEP_CLEANUP_MAX_AGE_DAYS).
// Environment variables always take precedence over file-based configuration.
//
// The loading sequence is:
//  1. Load YAML from file (missing file: defaults)
//  2. Apply default values
//  3. Apply environment variable overrides
//  4. Validate final configuration
func LoadConfigWithEnvOverrides(path string) (*Config, error) {
	cfg, err := LoadConfig(path)
	if err != nil {
		return nil, err
	}

	applyEnvOverrides(cfg)

	if err := Validate(cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed after environment overrides: %w", err)
	}

	return cfg, nil
}

// applyEnvOverrides applies environment variable overrides to the
// configuration. Environment variables use the format WALLSWEEP_SECTION_FIELD.
func applyEnvOverrides(cfg *Config) {
	// Cleanup overrides
	if val := os.Getenv("WALLSWEEP_CLEANUP_MAX_AGE_DAYS"); val != "" {
		if i, err := strconv.Atoi(val); err == nil {
			cfg.Cleanup.MaxAgeDays = i
		}
	}
	if val := os.Getenv("WALLSWEEP_CLEANUP_DIRECTORY"); val != "" {
		cfg.Cleanup.Directory = val
	}
	if val := os.Getenv("WALLSWEEP_CLEANUP_DRY_RUN"); val != "" {
		if b, err := strconv.ParseBool(val); err == nil {
			cfg.Cleanup.DryRun = b
		}
	}
	if val := os.Getenv("WALLSWEEP_CLEANUP_QUIET"); val != "" {
		if b, err := strconv.ParseBool(val); err == nil {
			cfg.Cleanup.Quiet = b
		}
	}

	// Logging overrides
	if val := os.Getenv("WALLSWEEP_LOGGING_LEVEL"); val != "" {
		cfg.Telemetry.Logging.Level = val
	}
	if val := os.Getenv("WALLSWEEP_LOGGING_FORMAT"); val != "" {
		cfg.Telemetry.Logging.Format = val
	}

	// Metrics overrides
	if val := os.Getenv("WALLSWEEP_METRICS_ENABLED"); val != "" {
		if b, err := strconv.ParseBool(val); err == nil {
			cfg.Telemetry.Metrics.Enabled = b
		}
	}
	if val := os.Getenv("WALLSWEEP_METRICS_PUSH_GATEWAY"); val != "" {
		cfg.Telemetry.Metrics.PushGateway = val
	}
	if val := os.Getenv("WALLSWEEP_METRICS_JOB_NAME"); val != "" {
		cfg.Telemetry.Metrics.JobName = val
	}
}
