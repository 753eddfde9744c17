// Package config provides configuration loading for wallsweep.
//
// # Sources and Precedence
//
// Configuration is resolved from three sources, later sources winning:
//
//  1. Defaults (see defaults.go)
//  2. A YAML config file (wallsweep.yaml by default; a missing file is not
//     an error, the defaults apply)
//  3. Environment variables (WALLSWEEP_SECTION_FIELD, e.g.
//     WALLSWEEP_CLEANUP_MAX_AGE_DAYS)
//
// Command-line flags are applied on top by the command itself and take
// precedence over all of the above.
//
// # Example File
//
//	cleanup:
//	  max_age_days: 30
//	  directory: /home/user/Pictures
//	  dry_run: false
//	  quiet: false
//	telemetry:
//	  logging:
//	    level: info
//	    format: text
//	  metrics:
//	    enabled: true
//	    push_gateway: http://pushgateway:9091
//	    job_name: wallsweep
package config
