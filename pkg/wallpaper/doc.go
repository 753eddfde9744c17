// Package wallpaper implements retention cleanup for dated wallpaper images.
//
// # Filename Convention
//
// Wallpaper files encode their creation date in the filename:
//
//	wallpaper-<device>-<YYYY-MM-DD>.png
//
// where <device> is a device or profile identifier containing no hyphens
// (e.g. "laptop", "phone"). The date is the last three hyphen-delimited
// fields before the .png extension.
//
// # Selection
//
// Candidate files are selected in two stages, and both stages are load-bearing:
//
//  1. A glob match on wallpaper-*.png narrows the directory listing.
//  2. ParseDate applies the stricter anchored pattern and validates the
//     captured substring as a real calendar date.
//
// A file that passes the glob but fails date extraction (for example
// "wallpaper-2020-01-01.png", which has no device token) is silently
// skipped; it is not a wallpaper file, not an error.
//
// # Cleanup
//
//	cleaner := wallpaper.NewCleaner(wallpaper.Config{
//	    Directory:  "/home/user/Pictures",
//	    MaxAgeDays: 30,
//	    DryRun:     false,
//	})
//	deleted, err := cleaner.Run(ctx)
//
// Run reports each candidate, deletes it (or counts it in dry-run mode), and
// returns the number of files deleted. Per-file deletion failures are logged
// and skipped; they never abort the run.
//
// # Determinism
//
// All age comparisons go through the Clock interface so tests can pin "now"
// to a fixed instant. Production code uses SystemClock.
package wallpaper
