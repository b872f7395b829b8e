package calendar

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"
)

// CalendarID identifies a holiday calendar.
type CalendarID string

const (
	// SatSun treats every Saturday and Sunday as a holiday and nothing else.
	SatSun CalendarID = "SAT_SUN"
	// TARGET is the euro settlement calendar (weekends, New Year, Good Friday,
	// Easter Monday, Labour Day, Christmas and Boxing Day).
	TARGET CalendarID = "TARGET"
)

var (
	// ErrUnknownCalendar is returned when a calendar id is neither built in nor registered.
	ErrUnknownCalendar = errors.New("unknown calendar")
	// ErrUnknownConvention is returned for an unrecognised business day convention.
	ErrUnknownConvention = errors.New("unknown business day convention")
	// ErrCalendarConflict is returned when a registered id is redefined with other holidays.
	ErrCalendarConflict = errors.New("calendar redefined")
)

var (
	registryMu sync.RWMutex
	registered = map[CalendarID]map[string]struct{}{}
)

const dateKey = "2006-01-02"

// Register installs a weekend-plus-holidays calendar under id. An id is
// registered once per process: registering it again with the same holidays
// is a no-op, with different holidays an ErrCalendarConflict. Built-in ids
// cannot be replaced.
func Register(id CalendarID, holidays []time.Time) error {
	id = CalendarID(strings.ToUpper(strings.TrimSpace(string(id))))
	if id == "" {
		return fmt.Errorf("%w: empty id", ErrUnknownCalendar)
	}
	if id == SatSun || id == TARGET {
		return fmt.Errorf("calendar %s is built in and cannot be replaced", id)
	}
	set := make(map[string]struct{}, len(holidays))
	for _, h := range holidays {
		set[h.Format(dateKey)] = struct{}{}
	}
	registryMu.Lock()
	defer registryMu.Unlock()
	if prev, ok := registered[id]; ok {
		if !sameSet(prev, set) {
			return fmt.Errorf("%w: %s already has a different holiday set", ErrCalendarConflict, id)
		}
		return nil
	}
	registered[id] = set
	return nil
}

func sameSet(a, b map[string]struct{}) bool {
	if len(a) != len(b) {
		return false
	}
	for k := range a {
		if _, ok := b[k]; !ok {
			return false
		}
	}
	return true
}

// Parse resolves a calendar name.
func Parse(name string) (CalendarID, error) {
	id := CalendarID(strings.ToUpper(strings.TrimSpace(name)))
	switch id {
	case SatSun, TARGET:
		return id, nil
	case "":
		return SatSun, nil
	}
	registryMu.RLock()
	_, ok := registered[id]
	registryMu.RUnlock()
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownCalendar, name)
	}
	return id, nil
}

// Registered lists the user-registered calendar ids in sorted order.
func Registered() []CalendarID {
	registryMu.RLock()
	defer registryMu.RUnlock()
	out := make([]CalendarID, 0, len(registered))
	for id := range registered {
		out = append(out, id)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

func isHoliday(cal CalendarID, t time.Time) bool {
	switch cal {
	case SatSun:
		return false
	case TARGET:
		return isTargetHoliday(t)
	default:
		registryMu.RLock()
		set := registered[cal]
		registryMu.RUnlock()
		_, ok := set[t.Format(dateKey)]
		return ok
	}
}

// IsBusinessDay checks weekends and holiday sets.
func IsBusinessDay(cal CalendarID, t time.Time) bool {
	if t.Weekday() == time.Saturday || t.Weekday() == time.Sunday {
		return false
	}
	return !isHoliday(cal, t)
}

// NextOrSame returns t if it is a business day, otherwise the following business day.
func NextOrSame(cal CalendarID, t time.Time) time.Time {
	for !IsBusinessDay(cal, t) {
		t = t.AddDate(0, 0, 1)
	}
	return t
}

// PreviousOrSame returns t if it is a business day, otherwise the preceding business day.
func PreviousOrSame(cal CalendarID, t time.Time) time.Time {
	for !IsBusinessDay(cal, t) {
		t = t.AddDate(0, 0, -1)
	}
	return t
}

// AddBusinessDays advances n business days (n can be negative).
// A zero shift rolls a holiday forward to the next business day.
func AddBusinessDays(cal CalendarID, t time.Time, n int) time.Time {
	if n == 0 {
		return NextOrSame(cal, t)
	}
	step := 1
	if n < 0 {
		step = -1
	}
	for n != 0 {
		t = t.AddDate(0, 0, step)
		if IsBusinessDay(cal, t) {
			n -= step
		}
	}
	return t
}

// isTargetHoliday covers the TARGET2 closing days in force since 2002.
func isTargetHoliday(t time.Time) bool {
	d, m := t.Day(), t.Month()
	switch {
	case m == time.January && d == 1:
		return true
	case m == time.May && d == 1:
		return true
	case m == time.December && (d == 25 || d == 26):
		return true
	}
	easter := easterSunday(t.Year())
	return sameDay(t, easter.AddDate(0, 0, -2)) || sameDay(t, easter.AddDate(0, 0, 1))
}

func sameDay(a, b time.Time) bool {
	return a.Year() == b.Year() && a.YearDay() == b.YearDay()
}

// easterSunday uses the anonymous Gregorian algorithm.
func easterSunday(year int) time.Time {
	a := year % 19
	b := year / 100
	c := year % 100
	d := b / 4
	e := b % 4
	f := (b + 8) / 25
	g := (b - f + 1) / 3
	h := (19*a + b - d - g + 15) % 30
	i := c / 4
	k := c % 4
	l := (32 + 2*e + 2*i - h - k) % 7
	m := (a + 11*h + 22*l) / 451
	month := (h + l - 7*m + 114) / 31
	day := (h+l-7*m+114)%31 + 1
	return time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
}
