package wallpaper

import "time"

// Clock abstracts wall-clock time so retention cutoffs are deterministic in
// tests. Production code uses SystemClock.
type Clock interface {
	// Now returns the current wall-clock time.
	Now() time.Time
}

// SystemClock reads the real system clock.
type SystemClock struct{}

// Now returns time.Now().
func (SystemClock) Now() time.Time {
	return time.Now()
}
