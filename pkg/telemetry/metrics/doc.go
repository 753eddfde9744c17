// Package metrics provides Prometheus metrics for wallsweep cleanup runs.
//
// # Overview
//
// wallsweep is a one-shot process, so there is no HTTP endpoint to scrape.
// Metrics are collected on a private registry during the run and, when a
// Pushgateway address is configured, pushed once after the run completes.
// This is the standard Prometheus pattern for batch jobs.
//
// # Metrics
//
//   - wallsweep_files_matched_total: candidates older than the cutoff
//   - wallsweep_files_deleted_total: files successfully deleted
//   - wallsweep_delete_failures_total: per-file deletion failures
//   - wallsweep_run_duration_seconds: histogram of run durations
//   - wallsweep_last_run_timestamp_seconds: completion time of the last run
//
// # Usage
//
//	collector := metrics.NewCollector(metrics.Config{
//	    Enabled:     true,
//	    PushGateway: "http://pushgateway:9091",
//	    JobName:     "wallsweep",
//	    RunID:       runID,
//	}, nil)
//
//	// ... record during the run ...
//
//	if err := collector.Push(ctx); err != nil {
//	    logger.Warn("failed to push run metrics", "error", err)
//	}
//
// A nil *Collector is valid: all record methods are no-ops and Push returns
// nil. The same holds when Enabled is false.
package metrics
