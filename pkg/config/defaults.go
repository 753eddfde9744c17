package config

// Default values for configuration fields.
const (
	// Cleanup defaults
	DefaultMaxAgeDays = 30

	// Logging defaults
	DefaultLogLevel  = "info"
	DefaultLogFormat = "text"

	// Metrics defaults
	DefaultMetricsJobName = "wallsweep"
)

// ApplyDefaults fills in default values for unset configuration fields.
// A MaxAgeDays of zero is treated as unset here; a zero-day retention window
// can still be requested explicitly via the --max-age flag.
func ApplyDefaults(cfg *Config) {
	if cfg.Cleanup.MaxAgeDays == 0 {
		cfg.Cleanup.MaxAgeDays = DefaultMaxAgeDays
	}
	if cfg.Telemetry.Logging.Level == "" {
		cfg.Telemetry.Logging.Level = DefaultLogLevel
	}
	if cfg.Telemetry.Logging.Format == "" {
		cfg.Telemetry.Logging.Format = DefaultLogFormat
	}
	if cfg.Telemetry.Metrics.JobName == "" {
		cfg.Telemetry.Metrics.JobName = DefaultMetricsJobName
	}
}
