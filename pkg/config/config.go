package config

// Config is the root configuration structure for wallsweep.
type Config struct {
	// Cleanup contains the cleanup run settings: retention window, target
	// directory, and output mode.
	Cleanup CleanupConfig `yaml:"cleanup"`

	// Telemetry contains observability settings: logging and metrics.
	Telemetry TelemetryConfig `yaml:"telemetry"`
}

// CleanupConfig contains settings for a cleanup run.
type CleanupConfig struct {
	// MaxAgeDays is the retention window in days. Wallpaper files dated
	// strictly earlier than now minus MaxAgeDays are deleted.
	// Default: 30
	MaxAgeDays int `yaml:"max_age_days"`

	// Directory is the directory to scan (non-recursive). Empty means the
	// current working directory. A non-empty directory must exist.
	Directory string `yaml:"directory"`

	// DryRun reports what would be deleted without deleting anything.
	// Default: false
	DryRun bool `yaml:"dry_run"`

	// Quiet suppresses narrative output; only the final count is printed.
	// Default: false
	Quiet bool `yaml:"quiet"`
}

// TelemetryConfig contains observability configuration.
type TelemetryConfig struct {
	// Logging configures the structured logger.
	Logging LoggingConfig `yaml:"logging"`

	// Metrics configures Prometheus run metrics.
	Metrics MetricsConfig `yaml:"metrics"`
}

// LoggingConfig contains structured logging configuration.
type LoggingConfig struct {
	// Level is the minimum log level: "debug", "info", "warn", "error".
	// Default: "info"
	Level string `yaml:"level"`

	// Format is the log output format: "text", "json".
	// Default: "text"
	Format string `yaml:"format"`
}

// MetricsConfig contains Prometheus metrics configuration.
type MetricsConfig struct {
	// Enabled turns run metrics collection on.
	// Default: false
	Enabled bool `yaml:"enabled"`

	// PushGateway is the base URL of a Prometheus Pushgateway to push run
	// metrics to after the run. Empty disables pushing.
	PushGateway string `yaml:"push_gateway"`

	// JobName is the Pushgateway job label.
	// Default: "wallsweep"
	JobName string `yaml:"job_name"`
}
