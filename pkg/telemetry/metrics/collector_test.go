package metrics

import (
	"context"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestCollector_RecordCounters(t *testing.T) {
	registry := prometheus.NewRegistry()
	collector := NewCollector(Config{Enabled: true}, registry)

	collector.RecordMatched(3)
	collector.RecordDeleted()
	collector.RecordDeleted()
	collector.RecordDeleteFailure()

	if got := testutil.ToFloat64(collector.filesMatched); got != 3 {
		t.Errorf("files_matched_total = %v, want 3", got)
	}
	if got := testutil.ToFloat64(collector.filesDeleted); got != 2 {
		t.Errorf("files_deleted_total = %v, want 2", got)
	}
	if got := testutil.ToFloat64(collector.deleteFailures); got != 1 {
		t.Errorf("delete_failures_total = %v, want 1", got)
	}
}

func TestCollector_DisabledIsNoop(t *testing.T) {
	registry := prometheus.NewRegistry()
	collector := NewCollector(Config{Enabled: false}, registry)

	collector.RecordMatched(5)
	collector.RecordDeleted()
	collector.RecordDeleteFailure()
	collector.ObserveRunDuration(time.Second)

	if got := testutil.ToFloat64(collector.filesMatched); got != 0 {
		t.Errorf("files_matched_total = %v, want 0 when disabled", got)
	}
	if got := testutil.ToFloat64(collector.filesDeleted); got != 0 {
		t.Errorf("files_deleted_total = %v, want 0 when disabled", got)
	}
}

func TestCollector_NilIsSafe(t *testing.T) {
	var collector *Collector

	// None of these should panic.
	collector.RecordMatched(1)
	collector.RecordDeleted()
	collector.RecordDeleteFailure()
	collector.ObserveRunDuration(time.Second)

	if err := collector.Push(context.Background()); err != nil {
		t.Errorf("Push() on nil collector = %v, want nil", err)
	}
}

func TestCollector_PushWithoutGateway(t *testing.T) {
	collector := NewCollector(Config{Enabled: true}, nil)

	if err := collector.Push(context.Background()); err != nil {
		t.Errorf("Push() without gateway = %v, want nil", err)
	}
}

func TestCollector_ObserveRunDuration(t *testing.T) {
	registry := prometheus.NewRegistry()
	collector := NewCollector(Config{Enabled: true}, registry)

	collector.ObserveRunDuration(250 * time.Millisecond)

	if got := testutil.CollectAndCount(collector.runDuration); got != 1 {
		t.Errorf("run_duration_seconds metric count = %d, want 1", got)
	}
	if got := testutil.ToFloat64(collector.lastRun); got == 0 {
		t.Error("last_run_timestamp_seconds should be set after a run")
	}
}
