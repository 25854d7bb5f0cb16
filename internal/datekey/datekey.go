// Package datekey converts between calendar dates and the canonical
// YYYY-MM-DD / HH:MM string keys used everywhere else in daygrid.
package datekey

import (
	"fmt"
	"regexp"
	"time"
)

const Layout = "2006-01-02"

var (
	dateKeyPattern = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
	timeKeyPattern = regexp.MustCompile(`^([01]\d|2[0-3]):([0-5]\d)$`)
)

// StartOfDay truncates t to the local calendar day.
func StartOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// Format renders the local calendar fields of t as a zero-padded date key.
func Format(t time.Time) string {
	return fmt.Sprintf("%04d-%02d-%02d", t.Year(), int(t.Month()), t.Day())
}

// Parse is the inverse of Format. Callers must validate with IsValidDateKey
// first; a key that matches the pattern but names an impossible day
// (e.g. 2024-02-30) rolls forward into the following month, which is the
// accepted behavior for such keys.
func Parse(key string) time.Time {
	var y, m, d int
	fmt.Sscanf(key, "%d-%d-%d", &y, &m, &d)
	return time.Date(y, time.Month(m), d, 0, 0, 0, 0, time.Local)
}

// IsValidDateKey reports whether value matches the YYYY-MM-DD pattern.
// It does not check calendar validity; see Parse.
func IsValidDateKey(value string) bool {
	return dateKeyPattern.MatchString(value)
}

// IsValidTimeKey reports whether value is a zero-padded 24-hour HH:MM key.
func IsValidTimeKey(value string) bool {
	return timeKeyPattern.MatchString(value)
}

// FormatHuman renders a date key as a short display label, e.g. "Mar 5, Tue".
func FormatHuman(key string) string {
	d := Parse(key)
	return fmt.Sprintf("%s %d, %s", d.Month().String()[:3], d.Day(), d.Weekday().String()[:3])
}

// MonthStart returns the first day of the month containing t.
func MonthStart(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
}

// GridStart returns the Sunday on or before the first day of the given month.
// It is the first cell of the 6x7 calendar grid.
func GridStart(year int, month time.Month) time.Time {
	first := time.Date(year, month, 1, 0, 0, 0, 0, time.Local)
	return first.AddDate(0, 0, -int(first.Weekday()))
}

// AddMonths shifts a (year, month) pair by delta calendar months, handling
// year rollover in both directions.
func AddMonths(year int, month time.Month, delta int) (int, time.Month) {
	shifted := time.Date(year, month, 1, 0, 0, 0, 0, time.Local).AddDate(0, delta, 0)
	return shifted.Year(), shifted.Month()
}
