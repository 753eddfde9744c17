package wallpaper

import (
	"regexp"
	"time"
)

// DateLayout is the date format embedded in wallpaper filenames.
const DateLayout = "2006-01-02"

// namePattern matches wallpaper filenames at the start of the string. The
// device segment excludes hyphens, which forces the captured date to be the
// last three hyphen-delimited fields before .png. There is deliberately no
// end anchor: trailing characters after ".png" are tolerated here and
// excluded by the glob stage in FindOld instead.
var namePattern = regexp.MustCompile(`^wallpaper-[^-]+-(\d{4}-\d{2}-\d{2})\.png`)

// ParseDate extracts the embedded date from a wallpaper filename.
//
// The second return value is false when the name does not match the
// wallpaper-<device>-<YYYY-MM-DD>.png shape, or when the captured substring
// is not a valid calendar date (e.g. "2019-02-29"). Neither case is an
// error; the name is simply not a wallpaper file.
//
// Dates carry no time-of-day component and are parsed in the local time
// zone, since ages are compared against local wall-clock time.
func ParseDate(filename string) (time.Time, bool) {
	m := namePattern.FindStringSubmatch(filename)
	if m == nil {
		return time.Time{}, false
	}

	date, err := time.ParseInLocation(DateLayout, m[1], time.Local)
	if err != nil {
		return time.Time{}, false
	}

	return date, true
}
