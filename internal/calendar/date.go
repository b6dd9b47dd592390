package calendar

import "fmt"

// Dates are persisted as strings; these helpers are the only producers of
// that form, so writes and month queries can never disagree on padding.

// DateString returns the canonical zero-padded YYYY-MM-DD form.
func DateString(year, month, day int) string {
	return fmt.Sprintf("%04d-%02d-%02d", year, month, day)
}

// MonthPrefix returns the canonical YYYY-MM prefix used for month queries.
func MonthPrefix(year, month int) string {
	return fmt.Sprintf("%04d-%02d", year, month)
}

// DayKey returns the two-digit day-of-month key events are grouped under.
func DayKey(day int) string {
	return fmt.Sprintf("%02d", day)
}
