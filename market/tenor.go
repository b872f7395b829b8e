package market

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/meenmo/isdacurve/utils"
)

// Tenor is a whole number of months. Year tenors are stored as 12*n months.
type Tenor struct {
	Months int
}

// Months returns a tenor of n months.
func Months(n int) Tenor { return Tenor{Months: n} }

// Years returns a tenor of n years.
func Years(n int) Tenor { return Tenor{Months: 12 * n} }

// ParseTenor converts tenor strings like "3M", "10Y" or "P6M".
func ParseTenor(s string) (Tenor, error) {
	tenor := strings.TrimPrefix(strings.TrimSpace(strings.ToUpper(s)), "P")
	if len(tenor) < 2 {
		return Tenor{}, fmt.Errorf("%w: tenor %q", ErrInvalidNode, s)
	}
	unit := tenor[len(tenor)-1]
	v, err := strconv.Atoi(tenor[:len(tenor)-1])
	if err != nil || v <= 0 {
		return Tenor{}, fmt.Errorf("%w: tenor %q", ErrInvalidNode, s)
	}
	switch unit {
	case 'M':
		return Months(v), nil
	case 'Y':
		return Years(v), nil
	}
	return Tenor{}, fmt.Errorf("%w: tenor %q must be in months or years", ErrInvalidNode, s)
}

// AddTo shifts date by the tenor with end-of-month clamping.
func (t Tenor) AddTo(date time.Time) time.Time {
	return utils.AddMonths(date, t.Months)
}

// String renders the tenor as "nY" when it is a whole number of years.
func (t Tenor) String() string {
	if t.Months%12 == 0 {
		return strconv.Itoa(t.Months/12) + "Y"
	}
	return strconv.Itoa(t.Months) + "M"
}

// MarshalText implements encoding.TextMarshaler.
func (t Tenor) MarshalText() ([]byte, error) { return []byte(t.String()), nil }

// UnmarshalText implements encoding.TextUnmarshaler.
func (t *Tenor) UnmarshalText(b []byte) error {
	v, err := ParseTenor(string(b))
	if err != nil {
		return err
	}
	*t = v
	return nil
}
