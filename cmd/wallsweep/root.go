package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"halcyon-hq/wallsweep/pkg/cli"
	"halcyon-hq/wallsweep/pkg/config"
	"halcyon-hq/wallsweep/pkg/telemetry/logging"
	"halcyon-hq/wallsweep/pkg/telemetry/metrics"
	"halcyon-hq/wallsweep/pkg/wallpaper"
)

var (
	// Global flags
	cfgFile string
	verbose bool
)

var cleanFlags struct {
	maxAge    int
	directory string
	dryRun    bool
	quiet     bool
}

var rootCmd = &cobra.Command{
	Use:   "wallsweep",
	Short: "Delete wallpaper images older than a retention window",
	Long: `Wallsweep deletes wallpaper images whose filenames encode a creation date
(wallpaper-<device>-<YYYY-MM-DD>.png) once that date is older than the
retention window.

The scan is non-recursive and the tool runs once and exits; schedule it
externally (cron, systemd timer) for periodic cleanup.

Examples:
  # Delete wallpapers older than 30 days in the current directory
  wallsweep

  # Scan a specific directory with a 7-day window
  wallsweep --directory ~/Pictures/wallpapers --max-age 7

  # Show what would be deleted without deleting
  wallsweep --dry-run

  # Print only the number of deleted files
  wallsweep --quiet`,
	Version:       Version,
	Args:          cobra.NoArgs,
	RunE:          runCleanup,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "wallsweep.yaml", "config file path")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose logging")

	rootCmd.Flags().IntVar(&cleanFlags.maxAge, "max-age", config.DefaultMaxAgeDays, "maximum age in days before deletion")
	rootCmd.Flags().StringVar(&cleanFlags.directory, "directory", "", "directory to scan (default: current directory)")
	rootCmd.Flags().BoolVar(&cleanFlags.dryRun, "dry-run", false, "show what would be deleted without deleting")
	rootCmd.Flags().BoolVar(&cleanFlags.quiet, "quiet", false, "print only the number of deleted files")
}

func runCleanup(cmd *cobra.Command, args []string) error {
	cfg, err := config.LoadConfigWithEnvOverrides(cfgFile)
	if err != nil {
		return cli.NewConfigError("", fmt.Sprintf("failed to load config: %v", err))
	}

	// Flags override config file and environment.
	if cmd.Flags().Changed("max-age") {
		cfg.Cleanup.MaxAgeDays = cleanFlags.maxAge
	}
	if cmd.Flags().Changed("directory") {
		cfg.Cleanup.Directory = cleanFlags.directory
	}
	if cleanFlags.dryRun {
		cfg.Cleanup.DryRun = true
	}
	if cleanFlags.quiet {
		cfg.Cleanup.Quiet = true
	}

	if err := config.Validate(cfg); err != nil {
		return cli.NewConfigError("", err.Error())
	}

	// An explicitly requested directory must exist; the scan is never
	// attempted otherwise. The current-directory default always exists.
	if cfg.Cleanup.Directory != "" {
		info, err := os.Stat(cfg.Cleanup.Directory)
		if err != nil || !info.IsDir() {
			return &cli.DirectoryError{Path: cfg.Cleanup.Directory}
		}
	}

	level := cfg.Telemetry.Logging.Level
	if verbose {
		level = "debug"
	}
	logger, err := logging.New(logging.Config{
		Level:  level,
		Format: cfg.Telemetry.Logging.Format,
	})
	if err != nil {
		return cli.NewConfigError("telemetry.logging", err.Error())
	}

	runID := uuid.NewString()
	logger = logger.With("run_id", runID)
	slog.SetDefault(logger)

	collector := metrics.NewCollector(metrics.Config{
		Enabled:     cfg.Telemetry.Metrics.Enabled,
		PushGateway: cfg.Telemetry.Metrics.PushGateway,
		JobName:     cfg.Telemetry.Metrics.JobName,
		RunID:       runID,
	}, nil)

	out := cmd.OutOrStdout()
	if cfg.Cleanup.Quiet {
		out = io.Discard
	}

	cleaner := wallpaper.NewCleaner(wallpaper.Config{
		Directory:  cfg.Cleanup.Directory,
		MaxAgeDays: cfg.Cleanup.MaxAgeDays,
		DryRun:     cfg.Cleanup.DryRun,
	})
	cleaner.Logger = logger.With("component", "wallpaper.cleaner")
	cleaner.Out = out
	cleaner.Metrics = collector

	ctx := cli.SetupSignalHandler()

	start := time.Now()
	deleted, runErr := cleaner.Run(ctx)
	collector.ObserveRunDuration(time.Since(start))

	// Push with a fresh context: an interrupt that aborted the run should
	// not also drop its metrics.
	if err := collector.Push(context.Background()); err != nil {
		logger.Warn("failed to push run metrics", "error", err)
	}

	if runErr != nil {
		if errors.Is(runErr, context.Canceled) {
			return errors.New("cleanup interrupted")
		}
		return cli.NewCommandError("cleanup", runErr)
	}

	if cfg.Cleanup.Quiet {
		fmt.Fprintln(cmd.OutOrStdout(), deleted)
	}

	return nil
}
