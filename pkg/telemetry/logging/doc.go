// Package logging provides structured logging setup for wallsweep.
//
// Diagnostics (deletion failure warnings, debug traces) go through slog;
// user-facing narrative output is written separately to stdout by the
// cleaner. Logs therefore default to stderr so the two streams do not mix.
//
// Usage:
//
//	logger, err := logging.New(logging.Config{Level: "info", Format: "text"})
//	if err != nil {
//	    return err
//	}
//	slog.SetDefault(logger)
package logging
