// file: internals/helpers/timefmt.go
package helper

import (
	"fmt"
	"time"
)

const (
	DateLayout     = "2006-01-02"
	ClockLayout    = "15:04"
	DateTimeLayout = "2006-01-02T15:04"
)

// MinutesBetween returns the whole minutes between two "HH:MM" clock strings.
// Malformed or empty input counts as 0, matching the ticket form behaviour.
func MinutesBetween(start, end string) int {
	if start == "" || end == "" {
		return 0
	}
	t1, err1 := time.Parse(ClockLayout, clip(start))
	t2, err2 := time.Parse(ClockLayout, clip(end))
	if err1 != nil || err2 != nil {
		return 0
	}
	return int(t2.Sub(t1).Minutes())
}

func clip(s string) string {
	if len(s) > 5 {
		return s[:5]
	}
	return s
}

// FormatMinutes renders a minute count as "2h 15m" / "45m".
func FormatMinutes(m int) string {
	if m <= 0 {
		return "0m"
	}
	h := m / 60
	mn := m % 60
	if h > 0 {
		return fmt.Sprintf("%dh %dm", h, mn)
	}
	return fmt.Sprintf("%dm", mn)
}

// FormatResponseMinutes renders wait time; anything at or below zero is "Instant".
func FormatResponseMinutes(m int) string {
	if m <= 0 {
		return "Instant"
	}
	return FormatMinutes(m)
}

// ParseDateOr parses "YYYY-MM-DD", falling back to def on failure.
func ParseDateOr(s string, def time.Time) time.Time {
	if s == "" {
		return def
	}
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return def
	}
	return t
}

// DayBounds returns [00:00:00, 23:59:59.999999999] of the given day.
func DayBounds(day time.Time) (time.Time, time.Time) {
	start := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, day.Location())
	end := start.Add(24*time.Hour - time.Nanosecond)
	return start, end
}
