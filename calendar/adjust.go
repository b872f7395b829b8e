package calendar

import (
	"fmt"
	"strings"
	"time"
)

// BusinessDayConvention decides how a non-business day is moved onto a business day.
type BusinessDayConvention string

const (
	Following         BusinessDayConvention = "FOLLOWING"
	ModifiedFollowing BusinessDayConvention = "MODIFIED_FOLLOWING"
	Preceding         BusinessDayConvention = "PRECEDING"
	ModifiedPreceding BusinessDayConvention = "MODIFIED_PRECEDING"
	NoAdjust          BusinessDayConvention = "NONE"
)

// ParseConvention accepts the long names and the usual short forms (F, MF, P, MP).
func ParseConvention(s string) (BusinessDayConvention, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "FOLLOWING", "F":
		return Following, nil
	case "MODIFIED_FOLLOWING", "MODFOLLOWING", "MF":
		return ModifiedFollowing, nil
	case "PRECEDING", "P":
		return Preceding, nil
	case "MODIFIED_PRECEDING", "MP":
		return ModifiedPreceding, nil
	case "NONE", "UNADJUSTED", "":
		return NoAdjust, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownConvention, s)
}

// Validate reports whether c is a known convention.
func (c BusinessDayConvention) Validate() error {
	switch c {
	case Following, ModifiedFollowing, Preceding, ModifiedPreceding, NoAdjust:
		return nil
	}
	return fmt.Errorf("%w: %q", ErrUnknownConvention, string(c))
}

// Adjust moves t onto a business day of cal according to conv.
func Adjust(cal CalendarID, t time.Time, conv BusinessDayConvention) (time.Time, error) {
	switch conv {
	case NoAdjust:
		return t, nil
	case Following:
		return NextOrSame(cal, t), nil
	case Preceding:
		return PreviousOrSame(cal, t), nil
	case ModifiedFollowing:
		adj := NextOrSame(cal, t)
		if adj.Month() != t.Month() {
			adj = PreviousOrSame(cal, t)
		}
		return adj, nil
	case ModifiedPreceding:
		adj := PreviousOrSame(cal, t)
		if adj.Month() != t.Month() {
			adj = NextOrSame(cal, t)
		}
		return adj, nil
	}
	return time.Time{}, fmt.Errorf("%w: %q", ErrUnknownConvention, string(conv))
}
