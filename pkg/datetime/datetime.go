// Package datetime provides date utility functions for the calculators.
//
// All calculator dates travel as YYYY-MM-DD strings; this package is the
// single place they are parsed, compared, and offset.
package datetime

import (
	"time"

	"github.com/mkaraduman/legal-calculators/pkg/constants"
)

const (
	// DayLayout is the format expected for calculator input dates and is
	// also the output date format.
	DayLayout = constants.DayLayout

	// MonthLayout is the format used for month-keyed lookups.
	MonthLayout = constants.MonthLayout
)

// ParseDay parses a YYYY-MM-DD date string.
func ParseDay(date string) (time.Time, error) {
	return time.Parse(DayLayout, date)
}

// MustParseDay parses a YYYY-MM-DD date string and panics on error. Intended
// for dates that already passed validation; a panic here is programmer error.
func MustParseDay(date string) time.Time {
	t, err := time.Parse(DayLayout, date)
	if err != nil {
		panic(err)
	}
	return t
}

// FormatDay returns the YYYY-MM-DD representation of a time.
func FormatDay(t time.Time) string {
	return t.Format(DayLayout)
}

// MonthKey returns the YYYY-MM key of a time, as used by the price index
// series.
func MonthKey(t time.Time) string {
	return t.Format(MonthLayout)
}

// DaysBetween returns the number of whole calendar days from first to second.
// Negative when second precedes first.
func DaysBetween(first, second time.Time) int {
	return int(second.Sub(first).Hours() / 24)
}

// AddDays returns the date offset by the given number of days.
func AddDays(t time.Time, days int) time.Time {
	return t.AddDate(0, 0, days)
}

// WholeMonthsBetween returns the number of full calendar months from first to
// second. A partial trailing month does not count, so 15 Jan to 14 Feb is 0
// months and 15 Jan to 15 Feb is 1 month. Negative spans return negative
// counts.
func WholeMonthsBetween(first, second time.Time) int {
	months := (second.Year()-first.Year())*constants.MonthsPerYear + int(second.Month()) - int(first.Month())
	if second.Day() < first.Day() {
		months--
	}
	return months
}

// CalendarSplit breaks the span from first to second into whole years, whole
// months past those years, and leftover days. Used for displaying work
// durations. Both bounds are treated as dates, not instants.
func CalendarSplit(first, second time.Time) (years, months, days int) {
	if second.Before(first) {
		return 0, 0, 0
	}

	years = second.Year() - first.Year()
	anniversary := first.AddDate(years, 0, 0)
	if anniversary.After(second) {
		years--
		anniversary = first.AddDate(years, 0, 0)
	}

	months = WholeMonthsBetween(anniversary, second)
	afterMonths := anniversary.AddDate(0, months, 0)

	days = DaysBetween(afterMonths, second)
	if days < 0 {
		days = 0
	}
	return years, months, days
}

// DayBeforeDay returns true if first is strictly before second, where both
// are YYYY-MM-DD strings.
func DayBeforeDay(first, second string) (bool, error) {
	firstT, err := ParseDay(first)
	if err != nil {
		return false, err
	}
	secondT, err := ParseDay(second)
	if err != nil {
		return false, err
	}
	return firstT.Before(secondT), nil
}
