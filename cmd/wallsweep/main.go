// Wallsweep deletes wallpaper images whose filenames encode a creation date
// once that date falls outside a configurable retention window.
//
// It is a single-shot tool: it scans one directory (non-recursively) for
// files named wallpaper-<device>-<YYYY-MM-DD>.png, reports the ones older
// than the retention window, deletes them unless --dry-run is given, and
// exits.
//
// Usage:
//
//	# Delete wallpapers older than 30 days in the current directory
//	wallsweep
//
//	# Scan a specific directory with a 7-day window
//	wallsweep --directory ~/Pictures/wallpapers --max-age 7
//
//	# Show what would be deleted without deleting
//	wallsweep --dry-run
//
//	# Print only the number of deleted files
//	wallsweep --quiet
//
// Exit status is 0 when the run completes (even with zero deletions or
// per-file failures) and 1 when the target directory does not exist, the
// run is interrupted, or an unexpected error occurs.
package main

func main() {
	Execute()
}
