package utils

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// DayCount names a year fraction convention.
type DayCount string

const (
	Act360     DayCount = "ACT/360"
	Act365F    DayCount = "ACT/365F"
	Thirty360U DayCount = "30U/360"
	Thirty360E DayCount = "30E/360"
	ActActISDA DayCount = "ACT/ACT ISDA"
)

// ErrUnknownDayCount is returned for an unrecognised day count name.
var ErrUnknownDayCount = errors.New("unknown day count")

// ParseDayCount accepts the canonical names plus the common aliases.
func ParseDayCount(s string) (DayCount, error) {
	key := strings.ToUpper(strings.TrimSpace(s))
	key = strings.NewReplacer(" ", "", "_", "", "/", "").Replace(key)
	switch key {
	case "ACT360", "A360":
		return Act360, nil
	case "ACT365F", "ACT365FIXED", "A365F", "ACT365":
		return Act365F, nil
	case "30U360", "30360US", "30360", "30U", "BONDBASIS":
		return Thirty360U, nil
	case "30E360", "30E", "EUROBOND":
		return Thirty360E, nil
	case "ACTACTISDA", "ACTACT":
		return ActActISDA, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownDayCount, s)
}

// Validate reports whether dc is a known convention.
func (dc DayCount) Validate() error {
	switch dc {
	case Act360, Act365F, Thirty360U, Thirty360E, ActActISDA:
		return nil
	}
	return fmt.Errorf("%w: %q", ErrUnknownDayCount, string(dc))
}

// YearFraction computes the year fraction between two dates using dc.
// Only the calendar date of start and end is used.
func YearFraction(start, end time.Time, dc DayCount) (float64, error) {
	switch dc {
	case Act360:
		return float64(Days(start, end)) / 360.0, nil
	case Act365F:
		return float64(Days(start, end)) / 365.0, nil
	case Thirty360U:
		// US bond basis without the February end-of-month rule.
		d1, d2 := start.Day(), end.Day()
		if d2 == 31 && d1 >= 30 {
			d2 = 30
		}
		if d1 == 31 {
			d1 = 30
		}
		return thirty360(start, end, d1, d2), nil
	case Thirty360E:
		d1, d2 := start.Day(), end.Day()
		if d1 > 30 {
			d1 = 30
		}
		if d2 > 30 {
			d2 = 30
		}
		return thirty360(start, end, d1, d2), nil
	case ActActISDA:
		return actActISDA(start, end), nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownDayCount, string(dc))
}

// Act365 is ACT/365F without the error return, used for curve times.
func Act365(start, end time.Time) float64 {
	return float64(Days(start, end)) / 365.0
}

func thirty360(start, end time.Time, d1, d2 int) float64 {
	y1, m1 := start.Year(), int(start.Month())
	y2, m2 := end.Year(), int(end.Month())
	return float64(360*(y2-y1)+30*(m2-m1)+(d2-d1)) / 360.0
}

func actActISDA(start, end time.Time) float64 {
	if Days(start, end) == 0 {
		return 0
	}
	if end.Before(start) {
		return -actActISDA(end, start)
	}
	y1, y2 := start.Year(), end.Year()
	if y1 == y2 {
		return float64(Days(start, end)) / yearLength(y1)
	}
	frac := float64(Days(start, Date(y1+1, time.January, 1))) / yearLength(y1)
	frac += float64(y2 - y1 - 1)
	frac += float64(Days(Date(y2, time.January, 1), end)) / yearLength(y2)
	return frac
}

func yearLength(y int) float64 {
	if IsLeapYear(y) {
		return 366
	}
	return 365
}
