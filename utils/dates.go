package utils

import (
	"fmt"
	"time"
)

const dateLayout = "2006-01-02"

// Date returns the UTC midnight time for the given calendar date.
func Date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// Normalize drops the clock and location from t, keeping its calendar date.
func Normalize(t time.Time) time.Time {
	return Date(t.Year(), t.Month(), t.Day())
}

// ParseDate parses a YYYY-MM-DD string.
func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse date %q: %w", s, err)
	}
	return t, nil
}

// FormatDate renders t as YYYY-MM-DD.
func FormatDate(t time.Time) string {
	return t.Format(dateLayout)
}

// Days returns the number of calendar days from start to end.
func Days(start, end time.Time) int {
	return int(dayNumber(end) - dayNumber(start))
}

func dayNumber(t time.Time) int64 {
	return Date(t.Year(), t.Month(), t.Day()).Unix() / 86400
}

// AddMonths behaves like Excel's EDATE: the day of month is clamped to the
// length of the target month instead of overflowing into the next one.
func AddMonths(t time.Time, months int) time.Time {
	m := int(t.Month()) - 1 + months
	y := t.Year() + floorDiv(m, 12)
	m = m - 12*floorDiv(m, 12) + 1
	day := t.Day()
	if dim := DaysInMonth(y, time.Month(m)); day > dim {
		day = dim
	}
	return Date(y, time.Month(m), day)
}

// WithDayOfMonth moves t to the given day of its month, clamped to the month
// length. A day of 31 therefore always means the last day of the month.
func WithDayOfMonth(t time.Time, day int) time.Time {
	if dim := DaysInMonth(t.Year(), t.Month()); day > dim {
		day = dim
	}
	return Date(t.Year(), t.Month(), day)
}

// DaysInMonth returns the length of the month.
func DaysInMonth(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// IsEndOfMonth reports whether t is the last day of its month.
func IsEndOfMonth(t time.Time) bool {
	return t.Day() == DaysInMonth(t.Year(), t.Month())
}

// IsLeapYear reports whether year is a Gregorian leap year.
func IsLeapYear(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}

// MaxDate returns the later of a and b.
func MaxDate(a, b time.Time) time.Time {
	if a.After(b) {
		return a
	}
	return b
}

func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}
