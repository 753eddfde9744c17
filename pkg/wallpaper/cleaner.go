package wallpaper

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"halcyon-hq/wallsweep/pkg/telemetry/metrics"
)

// Config contains configuration for a cleanup run.
type Config struct {
	// Directory is the directory to scan. Empty means the current working
	// directory.
	Directory string

	// MaxAgeDays is the retention window in days. Files dated strictly
	// earlier than now minus MaxAgeDays are deleted.
	MaxAgeDays int

	// DryRun reports what would be deleted without touching the filesystem.
	DryRun bool
}

// Cleaner deletes wallpaper files older than the retention window.
//
// The zero value is not usable; construct with NewCleaner, then override the
// collaborator fields as needed (tests typically inject Clock and Out).
type Cleaner struct {
	// Config is the run configuration.
	Config Config

	// Clock supplies "now" for cutoff and age computation.
	Clock Clock

	// Logger receives diagnostics (per-file deletion failures, debug traces).
	Logger *slog.Logger

	// Out receives the human-readable narrative. Defaults to os.Stdout.
	Out io.Writer

	// Metrics records run counters. Nil disables metrics recording.
	Metrics *metrics.Collector
}

// deleteResult is the per-candidate outcome of one run. A nil err means the
// file was deleted (or counted, in dry-run mode).
type deleteResult struct {
	candidate Candidate
	err       error
}

// NewCleaner creates a Cleaner with the given configuration and default
// collaborators: the system clock, the default slog logger, and os.Stdout.
func NewCleaner(cfg Config) *Cleaner {
	return &Cleaner{
		Config: cfg,
		Clock:  SystemClock{},
		Logger: slog.Default().With("component", "wallpaper.cleaner"),
		Out:    os.Stdout,
	}
}

// Run scans the configured directory and deletes (or, in dry-run mode,
// reports) every wallpaper file older than the retention window. It returns
// the number of files deleted, or that would be deleted in dry-run mode.
//
// Per-file deletion failures are logged as warnings and skipped; they do not
// abort the run and are excluded from the returned count. Run stops early
// only when ctx is canceled, returning the count so far and ctx.Err().
func (c *Cleaner) Run(ctx context.Context) (int, error) {
	dir := c.Config.Directory
	if dir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return 0, fmt.Errorf("failed to resolve working directory: %w", err)
		}
		dir = wd
	}

	old, err := FindOld(dir, c.Config.MaxAgeDays, c.Clock)
	if err != nil {
		return 0, err
	}
	c.Metrics.RecordMatched(len(old))

	if len(old) == 0 {
		fmt.Fprintf(c.Out, "No wallpaper files older than %d days found.\n", c.Config.MaxAgeDays)
		return 0, nil
	}

	// Recomputed for display only; the selection cutoff was taken when the
	// scan began and the microsecond skew between the two is accepted.
	cutoff := c.Clock.Now().Add(-time.Duration(c.Config.MaxAgeDays) * 24 * time.Hour)

	action := "Deleting"
	if c.Config.DryRun {
		action = "Would delete"
	}
	fmt.Fprintf(c.Out, "%s %d wallpaper files older than %s:\n", action, len(old), cutoff.Format(DateLayout))

	results := make([]deleteResult, 0, len(old))
	for _, cand := range old {
		select {
		case <-ctx.Done():
			return countDeleted(results), ctx.Err()
		default:
		}

		fmt.Fprintf(c.Out, "  - %s (from %s, %d days old)\n",
			filepath.Base(cand.Path), cand.Date.Format(DateLayout), cand.Age(c.Clock.Now()))

		if c.Config.DryRun {
			results = append(results, deleteResult{candidate: cand})
			continue
		}

		if err := os.Remove(cand.Path); err != nil {
			c.Logger.Warn("failed to delete wallpaper",
				"file", filepath.Base(cand.Path),
				"error", err,
			)
			c.Metrics.RecordDeleteFailure()
			results = append(results, deleteResult{candidate: cand, err: err})
			continue
		}

		c.Logger.Debug("deleted wallpaper", "file", filepath.Base(cand.Path))
		c.Metrics.RecordDeleted()
		results = append(results, deleteResult{candidate: cand})
	}

	deleted := countDeleted(results)
	if c.Config.DryRun {
		fmt.Fprintf(c.Out, "Dry run complete. %d files would be deleted.\n", deleted)
	} else if deleted > 0 {
		fmt.Fprintf(c.Out, "Successfully deleted %d old wallpaper files.\n", deleted)
	}

	return deleted, nil
}

// countDeleted counts the successful outcomes.
func countDeleted(results []deleteResult) int {
	n := 0
	for _, r := range results {
		if r.err == nil {
			n++
		}
	}
	return n
}
