package config

import "testing"

// validConfig returns a configuration that passes validation.
func validConfig() *Config {
	cfg := &Config{}
	ApplyDefaults(cfg)
	return cfg
}

func TestValidate_Defaults(t *testing.T) {
	if err := Validate(validConfig()); err != nil {
		t.Errorf("Validate() on defaults failed: %v", err)
	}
}

func TestValidate_NegativeMaxAge(t *testing.T) {
	cfg := validConfig()
	cfg.Cleanup.MaxAgeDays = -1

	if err := Validate(cfg); err == nil {
		t.Error("Validate() should reject negative max_age_days")
	}
}

func TestValidate_ZeroMaxAgeAllowed(t *testing.T) {
	cfg := validConfig()
	cfg.Cleanup.MaxAgeDays = 0

	if err := Validate(cfg); err != nil {
		t.Errorf("Validate() should allow zero max_age_days: %v", err)
	}
}

func TestValidate_LogLevel(t *testing.T) {
	cfg := validConfig()
	cfg.Telemetry.Logging.Level = "loud"

	if err := Validate(cfg); err == nil {
		t.Error("Validate() should reject unknown log level")
	}
}

func TestValidate_LogFormat(t *testing.T) {
	cfg := validConfig()
	cfg.Telemetry.Logging.Format = "xml"

	if err := Validate(cfg); err == nil {
		t.Error("Validate() should reject unknown log format")
	}
}

func TestValidate_PushGateway(t *testing.T) {
	tests := []struct {
		name    string
		url     string
		enabled bool
		wantErr bool
	}{
		{"valid http", "http://localhost:9091", true, false},
		{"valid https", "https://push.example.com", true, false},
		{"empty is allowed", "", true, false},
		{"missing scheme", "localhost:9091", true, true},
		{"bad scheme", "ftp://localhost:9091", true, true},
		{"ignored when disabled", "not a url", false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			cfg.Telemetry.Metrics.Enabled = tt.enabled
			cfg.Telemetry.Metrics.PushGateway = tt.url

			err := Validate(cfg)
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
