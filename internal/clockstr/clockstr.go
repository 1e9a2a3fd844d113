// Package clockstr parses user-entered "HH:MM" clock strings and does minute
// arithmetic across midnight. Inputs come straight from free-form text fields,
// so parsing is permissive: out-of-range components are clamped, not rejected.
package clockstr

import (
	"strconv"
	"strings"
)

// Clock is a parsed wall-clock time.
type Clock struct {
	Hour         int
	Minute       int
	TotalMinutes int
}

// Parse parses "H:MM" or "HH:MM". Returns ok=false when the string is not two
// numeric colon-separated fields. Hour is clamped to [0,23] and minute to
// [0,59] rather than rejected — matching how the entry form treats sloppy input.
func Parse(s string) (Clock, bool) {
	parts := strings.SplitN(strings.TrimSpace(s), ":", 2)
	if len(parts) != 2 {
		return Clock{}, false
	}
	hour, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return Clock{}, false
	}
	minute, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return Clock{}, false
	}
	hour = clamp(hour, 0, 23)
	minute = clamp(minute, 0, 59)
	return Clock{Hour: hour, Minute: minute, TotalMinutes: hour*60 + minute}, true
}

// DiffMinutes returns the minutes from start to end. A negative raw difference
// is treated as crossing midnight and wraps by adding 1440. Returns ok=false
// if either input fails to parse.
func DiffMinutes(start, end string) (int, bool) {
	s, ok := Parse(start)
	if !ok {
		return 0, false
	}
	e, ok := Parse(end)
	if !ok {
		return 0, false
	}
	diff := e.TotalMinutes - s.TotalMinutes
	if diff < 0 {
		diff += 24 * 60
	}
	return diff, true
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
