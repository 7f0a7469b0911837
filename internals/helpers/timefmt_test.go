package helper

import (
	"testing"
	"time"
)

func TestMinutesBetween(t *testing.T) {
	cases := []struct {
		start, end string
		want       int
	}{
		{"09:00", "10:30", 90},
		{"09:00", "09:00", 0},
		{"10:00", "09:15", -45},
		{"09:00:00", "09:30:00", 30}, // seconds are clipped off
		{"", "10:00", 0},
		{"bogus", "10:00", 0},
	}
	for _, tc := range cases {
		if got := MinutesBetween(tc.start, tc.end); got != tc.want {
			t.Errorf("MinutesBetween(%q, %q) = %d, want %d", tc.start, tc.end, got, tc.want)
		}
	}
}

func TestFormatMinutes(t *testing.T) {
	cases := []struct {
		in   int
		want string
	}{
		{0, "0m"},
		{-10, "0m"},
		{45, "45m"},
		{60, "1h 0m"},
		{135, "2h 15m"},
	}
	for _, tc := range cases {
		if got := FormatMinutes(tc.in); got != tc.want {
			t.Errorf("FormatMinutes(%d) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestFormatResponseMinutes(t *testing.T) {
	if got := FormatResponseMinutes(0); got != "Instant" {
		t.Errorf("FormatResponseMinutes(0) = %q, want Instant", got)
	}
	if got := FormatResponseMinutes(-5); got != "Instant" {
		t.Errorf("FormatResponseMinutes(-5) = %q, want Instant", got)
	}
	if got := FormatResponseMinutes(75); got != "1h 15m" {
		t.Errorf("FormatResponseMinutes(75) = %q, want 1h 15m", got)
	}
}

func TestDayBounds(t *testing.T) {
	day := time.Date(2024, 5, 14, 13, 45, 0, 0, time.UTC)
	start, end := DayBounds(day)
	if start.Hour() != 0 || start.Minute() != 0 || start.Day() != 14 {
		t.Errorf("unexpected start of day: %v", start)
	}
	if end.Before(start) || end.Day() != 14 || end.Hour() != 23 {
		t.Errorf("unexpected end of day: %v", end)
	}
}
