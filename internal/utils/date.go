package utils

import (
	"fmt"
	"time"
)

// ISODateLayout is the calendar date format used across the API.
const ISODateLayout = "2006-01-02"

// ParseISODate parses a YYYY-MM-DD date at local midnight in loc.
// A full RFC 3339 timestamp is also accepted; its calendar date in loc is used.
func ParseISODate(s string, loc *time.Location) (time.Time, error) {
	if loc == nil {
		loc = time.Local
	}
	if d, err := time.ParseInLocation(ISODateLayout, s, loc); err == nil {
		return d, nil
	}
	ts, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q, expected YYYY-MM-DD", s)
	}
	return StartOfDay(ts.In(loc)), nil
}

// IsValidISODate reports whether s parses as a YYYY-MM-DD date.
func IsValidISODate(s string) bool {
	_, err := time.Parse(ISODateLayout, s)
	return err == nil
}

// StartOfDay returns local midnight of t's calendar day.
func StartOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// EndOfDay returns the last nanosecond of t's calendar day.
func EndOfDay(t time.Time) time.Time {
	return StartOfDay(t).AddDate(0, 0, 1).Add(-time.Nanosecond)
}

// NoonOf returns 12:00:00 local time of t's calendar day.
func NoonOf(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 12, 0, 0, 0, t.Location())
}

// SameCalendarDay compares the calendar dates of a and b, with b read in a's location.
func SameCalendarDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.In(a.Location()).Date()
	return ay == by && am == bm && ad == bd
}
