package core

import (
	"strings"
	"time"
)

// DateFormat is the calendar date layout used everywhere dates cross the API
// or the store. Lexicographic comparison of two such strings orders them
// chronologically.
const DateFormat = "2006-01-02"

// CleanString trims all leading and trailing whitespace in `s` and optionally lowers it.
func CleanString(s string, lower ...bool) string {
	s = strings.TrimSpace(s)
	if len(lower) > 0 && lower[0] {
		return strings.ToLower(s)
	}
	return s
}

// FormatDate renders t as a calendar date string.
func FormatDate(t time.Time) string {
	return t.Format(DateFormat)
}

// ParseDate parses a calendar date string to midnight UTC.
func ParseDate(date string) (time.Time, error) {
	return time.Parse(DateFormat, date)
}

// DaysSince returns the number of whole calendar days elapsed from date to now.
// Time-of-day components of now are discarded; the result is negative when
// date is in the future.
func DaysSince(date string, now time.Time) (int, error) {
	d, err := ParseDate(date)
	if err != nil {
		return 0, err
	}
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	return int(today.Sub(d).Hours() / 24), nil
}
