package wallpaper

import (
	"fmt"
	"path/filepath"
	"sort"
	"time"
)

// Candidate pairs a wallpaper file path with its parsed date. Candidates are
// transient: they exist only for the duration of one cleanup run.
type Candidate struct {
	// Path is the full path to the wallpaper file.
	Path string

	// Date is the creation date parsed from the filename.
	Date time.Time
}

// Age returns the candidate's age in whole days relative to now.
func (c Candidate) Age(now time.Time) int {
	return int(now.Sub(c.Date).Hours() / 24)
}

// FindOld returns the wallpaper files in dir (non-recursive) whose embedded
// date is strictly earlier than now minus maxAgeDays, sorted oldest first.
//
// The cutoff is computed once from clock.Now() when the scan begins. Files
// matching the wallpaper-*.png glob but failing date extraction are silently
// excluded. An empty directory, a directory with no matching names, or a
// missing directory all yield an empty result, not an error.
func FindOld(dir string, maxAgeDays int, clock Clock) ([]Candidate, error) {
	cutoff := clock.Now().Add(-time.Duration(maxAgeDays) * 24 * time.Hour)

	matches, err := filepath.Glob(filepath.Join(dir, "wallpaper-*.png"))
	if err != nil {
		return nil, fmt.Errorf("failed to scan %s: %w", dir, err)
	}

	var old []Candidate
	for _, path := range matches {
		date, ok := ParseDate(filepath.Base(path))
		if !ok {
			continue
		}
		if date.Before(cutoff) {
			old = append(old, Candidate{Path: path, Date: date})
		}
	}

	// Glob returns names in lexical order; the stable sort keeps that order
	// for candidates sharing a date.
	sort.SliceStable(old, func(i, j int) bool {
		return old[i].Date.Before(old[j].Date)
	})

	return old, nil
}
