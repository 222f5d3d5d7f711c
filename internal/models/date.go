package models

import "time"

// DateLayout is the wire format for calendar dates.
const DateLayout = "2006-01-02"

// NormalizeDate truncates t to UTC midnight. Every completion read and
// write goes through this so date equality never depends on time-of-day
// or timezone of the caller.
func NormalizeDate(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// ParseDate parses a YYYY-MM-DD string into a normalized date.
func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return time.Time{}, err
	}
	return NormalizeDate(t), nil
}

// Today returns the current calendar date, normalized.
func Today() time.Time {
	return NormalizeDate(time.Now())
}

// FormatDate renders a date in the wire format.
func FormatDate(t time.Time) string {
	return NormalizeDate(t).Format(DateLayout)
}
