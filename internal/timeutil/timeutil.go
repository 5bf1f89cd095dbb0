package timeutil

import (
	"fmt"
	"strings"
	"time"
)

// NaiveLayout is how reservation timestamps are stored and returned:
// ISO-8601 with no timezone offset.
const NaiveLayout = "2006-01-02T15:04:05"

// DayOfWeek maps a timestamp to the availability model's day index,
// 0=Sunday..6=Saturday. time.Weekday already starts at Sunday=0.
func DayOfWeek(t time.Time) int {
	return int(t.Weekday())
}

// TimeOfDay returns a zero-padded 24h "HH:MM" string. Window matching
// compares these lexicographically, which is only valid because both
// sides are always zero-padded.
func TimeOfDay(t time.Time) string {
	return t.Format("15:04")
}

// CalendarDate returns the "YYYY-MM-DD" date used by specific-date windows.
func CalendarDate(t time.Time) string {
	return t.Format("2006-01-02")
}

// ParseNaive parses an ISO-8601 timestamp, discarding any trailing "Z" or
// UTC offset and treating the clock values as local time. Timezone-correct
// scheduling is out of scope; every timestamp in the system is naive.
func ParseNaive(s string) (time.Time, error) {
	s = stripOffset(strings.TrimSpace(s))

	for _, layout := range []string{NaiveLayout, "2006-01-02T15:04"} {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}

	return time.Time{}, fmt.Errorf("invalid timestamp %q", s)
}

// FormatNaive is the inverse of ParseNaive.
func FormatNaive(t time.Time) string {
	return t.Format(NaiveLayout)
}

func stripOffset(s string) string {
	s = strings.TrimSuffix(s, "Z")

	// An offset sign can only appear after the time part ("...T15:04..."),
	// so anything past index 10 is an offset, not a date separator.
	if i := strings.LastIndex(s, "+"); i > 10 {
		return s[:i]
	}
	if i := strings.LastIndex(s, "-"); i > 10 {
		return s[:i]
	}
	return s
}
