package config

import (
	"fmt"
	"net/url"
)

// validLogLevels are the accepted logging levels.
var validLogLevels = map[string]bool{
	"debug": true,
	"info":  true,
	"warn":  true,
	"error": true,
}

// validLogFormats are the accepted logging formats.
var validLogFormats = map[string]bool{
	"text": true,
	"json": true,
}

// Validate checks the configuration for invalid values. It is called after
// defaults are applied, so zero values for defaulted fields never reach it.
func Validate(cfg *Config) error {
	if cfg.Cleanup.MaxAgeDays < 0 {
		return fmt.Errorf("cleanup.max_age_days must not be negative, got %d", cfg.Cleanup.MaxAgeDays)
	}

	if !validLogLevels[cfg.Telemetry.Logging.Level] {
		return fmt.Errorf("telemetry.logging.level must be one of debug, info, warn, error; got %q", cfg.Telemetry.Logging.Level)
	}
	if !validLogFormats[cfg.Telemetry.Logging.Format] {
		return fmt.Errorf("telemetry.logging.format must be one of text, json; got %q", cfg.Telemetry.Logging.Format)
	}

	if cfg.Telemetry.Metrics.Enabled && cfg.Telemetry.Metrics.PushGateway != "" {
		u, err := url.Parse(cfg.Telemetry.Metrics.PushGateway)
		if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
			return fmt.Errorf("telemetry.metrics.push_gateway must be an http(s) URL, got %q", cfg.Telemetry.Metrics.PushGateway)
		}
	}

	return nil
}
