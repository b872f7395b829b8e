package market

import (
	"errors"
	"fmt"
	"strings"

	"github.com/meenmo/isdacurve/calendar"
	"github.com/meenmo/isdacurve/utils"
)

// Frequency enumerates payment frequencies in months.
type Frequency int

const (
	FreqAnnual     Frequency = 12
	FreqSemiAnnual Frequency = 6
	FreqQuarterly  Frequency = 3
	FreqMonthly    Frequency = 1
)

// ParseFrequency accepts "12M", "P6M", "1Y", "ANNUAL", "QUARTERLY" and friends.
func ParseFrequency(s string) (Frequency, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "ANNUAL":
		return FreqAnnual, nil
	case "SEMI_ANNUAL", "SEMIANNUAL":
		return FreqSemiAnnual, nil
	case "QUARTERLY":
		return FreqQuarterly, nil
	case "MONTHLY":
		return FreqMonthly, nil
	}
	t, err := ParseTenor(s)
	if err != nil {
		return 0, fmt.Errorf("frequency: %w", err)
	}
	return Frequency(t.Months), nil
}

func (f Frequency) validate() error {
	if f <= 0 || 12%int(f) != 0 && int(f)%12 != 0 {
		return fmt.Errorf("%w: frequency of %d months", ErrInvalidConvention, int(f))
	}
	return nil
}

// StubConvention decides how an irregular first period is formed.
type StubConvention string

const (
	// SmartInitial merges a first period shorter than a week into the next one.
	SmartInitial StubConvention = "SMART_INITIAL"
	ShortInitial StubConvention = "SHORT_INITIAL"
	LongInitial  StubConvention = "LONG_INITIAL"
)

// ParseStub resolves a stub convention name; empty means SMART_INITIAL.
func ParseStub(s string) (StubConvention, error) {
	switch StubConvention(strings.ToUpper(strings.TrimSpace(s))) {
	case "", SmartInitial:
		return SmartInitial, nil
	case ShortInitial:
		return ShortInitial, nil
	case LongInitial:
		return LongInitial, nil
	}
	return "", fmt.Errorf("%w: stub %q", ErrInvalidConvention, s)
}

// ErrInvalidConvention is returned for inconsistent convention fields.
var ErrInvalidConvention = errors.New("invalid convention")

// TermDepositConvention describes a money-market deposit.
type TermDepositConvention struct {
	Name        string
	SpotDays    int
	Calendar    calendar.CalendarID
	BusinessDay calendar.BusinessDayConvention
	DayCount    utils.DayCount
}

// Validate checks every field.
func (c TermDepositConvention) Validate() error {
	if c.SpotDays < 0 {
		return fmt.Errorf("%w: %s spot days %d", ErrInvalidConvention, c.Name, c.SpotDays)
	}
	return errors.Join(c.BusinessDay.Validate(), c.DayCount.Validate(), checkCalendar(c.Calendar))
}

// SwapConvention describes the fixed leg of a fixed-vs-floating swap. The
// floating leg is assumed to price at par and is not modelled.
type SwapConvention struct {
	Name           string
	SpotDays       int
	Calendar       calendar.CalendarID
	BusinessDay    calendar.BusinessDayConvention
	DayCount       utils.DayCount
	FixedFrequency Frequency
}

// Validate checks every field.
func (c SwapConvention) Validate() error {
	if c.SpotDays < 0 {
		return fmt.Errorf("%w: %s spot days %d", ErrInvalidConvention, c.Name, c.SpotDays)
	}
	return errors.Join(c.BusinessDay.Validate(), c.DayCount.Validate(), checkCalendar(c.Calendar), c.FixedFrequency.validate())
}

// CdsConvention describes a single-name CDS premium leg.
type CdsConvention struct {
	Name             string
	Calendar         calendar.CalendarID
	BusinessDay      calendar.BusinessDayConvention
	DayCount         utils.DayCount
	PaymentFrequency Frequency
	Stub             StubConvention
	// AdjustStartDate applies the business day convention to the accrual start.
	AdjustStartDate bool
	// StepinDays is the calendar-day offset from valuation to step-in.
	StepinDays int
	// SettlementDays is the business-day offset from valuation to cash settlement.
	SettlementDays int
}

// StandardCdsConvention returns the ISDA standard: quarterly ACT/360
// coupons, FOLLOWING on weekends, step-in T+1 and settlement T+3.
func StandardCdsConvention() CdsConvention {
	return CdsConvention{
		Name:             "ISDA_STANDARD",
		Calendar:         calendar.SatSun,
		BusinessDay:      calendar.Following,
		DayCount:         utils.Act360,
		PaymentFrequency: FreqQuarterly,
		Stub:             SmartInitial,
		StepinDays:       1,
		SettlementDays:   3,
	}
}

// Validate checks every field.
func (c CdsConvention) Validate() error {
	var errs []error
	if c.StepinDays < 0 || c.SettlementDays < 0 {
		errs = append(errs, fmt.Errorf("%w: %s negative date offset", ErrInvalidConvention, c.Name))
	}
	if _, err := ParseStub(string(c.Stub)); err != nil {
		errs = append(errs, err)
	}
	errs = append(errs, c.BusinessDay.Validate(), c.DayCount.Validate(), checkCalendar(c.Calendar), c.PaymentFrequency.validate())
	return errors.Join(errs...)
}

func checkCalendar(id calendar.CalendarID) error {
	_, err := calendar.Parse(string(id))
	return err
}
