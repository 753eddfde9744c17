// Package telemetry groups the observability packages for wallsweep.
//
// # Components
//
//   - logging: structured logging via log/slog
//   - metrics: Prometheus run metrics with optional Pushgateway delivery
//
// wallsweep is a one-shot tool, so there are no long-lived endpoints: logs
// go to stderr for the duration of the run, and metrics are pushed once
// after the run completes (when a Pushgateway is configured).
package telemetry
