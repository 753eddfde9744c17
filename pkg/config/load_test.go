package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadConfig_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "absent.yaml"))
	if err != nil {
		t.Fatalf("LoadConfig() with missing file failed: %v", err)
	}

	if cfg.Cleanup.MaxAgeDays != DefaultMaxAgeDays {
		t.Errorf("MaxAgeDays = %d, want %d", cfg.Cleanup.MaxAgeDays, DefaultMaxAgeDays)
	}
	if cfg.Cleanup.Directory != "" {
		t.Errorf("Directory = %q, want empty (current directory)", cfg.Cleanup.Directory)
	}
	if cfg.Telemetry.Logging.Level != DefaultLogLevel {
		t.Errorf("Logging.Level = %q, want %q", cfg.Telemetry.Logging.Level, DefaultLogLevel)
	}
	if cfg.Telemetry.Logging.Format != DefaultLogFormat {
		t.Errorf("Logging.Format = %q, want %q", cfg.Telemetry.Logging.Format, DefaultLogFormat)
	}
	if cfg.Telemetry.Metrics.JobName != DefaultMetricsJobName {
		t.Errorf("Metrics.JobName = %q, want %q", cfg.Telemetry.Metrics.JobName, DefaultMetricsJobName)
	}
}

func TestLoadConfig_FromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "wallsweep.yaml")
	content := `
cleanup:
  max_age_days: 7
  directory: /tmp/wallpapers
  dry_run: true
telemetry:
  logging:
    level: debug
    format: json
  metrics:
    enabled: true
    push_gateway: http://localhost:9091
    job_name: nightly
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write config file: %v", err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig() failed: %v", err)
	}

	if cfg.Cleanup.MaxAgeDays != 7 {
		t.Errorf("MaxAgeDays = %d, want 7", cfg.Cleanup.MaxAgeDays)
	}
	if cfg.Cleanup.Directory != "/tmp/wallpapers" {
		t.Errorf("Directory = %q, want /tmp/wallpapers", cfg.Cleanup.Directory)
	}
	if !cfg.Cleanup.DryRun {
		t.Error("DryRun should be true")
	}
	if cfg.Telemetry.Logging.Level != "debug" {
		t.Errorf("Logging.Level = %q, want debug", cfg.Telemetry.Logging.Level)
	}
	if cfg.Telemetry.Metrics.JobName != "nightly" {
		t.Errorf("Metrics.JobName = %q, want nightly", cfg.Telemetry.Metrics.JobName)
	}
}

func TestLoadConfig_MalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "wallsweep.yaml")
	if err := os.WriteFile(path, []byte("cleanup: ["), 0644); err != nil {
		t.Fatalf("failed to write config file: %v", err)
	}

	if _, err := LoadConfig(path); err == nil {
		t.Error("LoadConfig() with malformed YAML should return error")
	}
}

func TestLoadConfigWithEnvOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "wallsweep.yaml")
	content := `
cleanup:
  max_age_days: 7
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write config file: %v", err)
	}

	t.Setenv("WALLSWEEP_CLEANUP_MAX_AGE_DAYS", "14")
	t.Setenv("WALLSWEEP_CLEANUP_DRY_RUN", "true")
	t.Setenv("WALLSWEEP_LOGGING_LEVEL", "warn")

	cfg, err := LoadConfigWithEnvOverrides(path)
	if err != nil {
		t.Fatalf("LoadConfigWithEnvOverrides() failed: %v", err)
	}

	if cfg.Cleanup.MaxAgeDays != 14 {
		t.Errorf("MaxAgeDays = %d, want env override 14", cfg.Cleanup.MaxAgeDays)
	}
	if !cfg.Cleanup.DryRun {
		t.Error("DryRun should be true from env override")
	}
	if cfg.Telemetry.Logging.Level != "warn" {
		t.Errorf("Logging.Level = %q, want warn", cfg.Telemetry.Logging.Level)
	}
}

func TestLoadConfigWithEnvOverrides_InvalidValueRejected(t *testing.T) {
	t.Setenv("WALLSWEEP_LOGGING_LEVEL", "loud")

	if _, err := LoadConfigWithEnvOverrides(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Error("invalid env override should fail validation")
	}
}
