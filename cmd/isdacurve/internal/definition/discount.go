package definition

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"cloud.google.com/go/civil"

	"github.com/meenmo/isdacurve/calendar"
	"github.com/meenmo/isdacurve/discount"
	"github.com/meenmo/isdacurve/market"
	"github.com/meenmo/isdacurve/utils"
)

// DiscountCurve is a discount curve document.
//
//	kind: discount
//	name: EUR-ISDA
//	currency: EUR
//	snapshot: 2011-06-19
//	deposit_convention: {spot_days: 2, calendar: TARGET, business_day: MF, day_count: ACT/360}
//	swap_convention: {spot_days: 2, calendar: TARGET, business_day: MF, day_count: 30U/360, fixed_frequency: 12M}
//	nodes:
//	  - {label: 1M, type: deposit, tenor: 1M, quote: 0.0129}
//	  - {label: 2Y, type: swap, tenor: 2Y, quote: 0.0168}
type DiscountCurve struct {
	Kind     Kind   `yaml:"kind"`
	Name     string `yaml:"name" validate:"required"`
	Currency string `yaml:"currency" validate:"required,len=3,uppercase"`
	Snapshot civil.Date `yaml:"snapshot"`
	// Valuation defaults to Snapshot.
	Valuation civil.Date        `yaml:"valuation"`
	Deposit   DepositConvention `yaml:"deposit_convention"`
	Swap      SwapConvention    `yaml:"swap_convention"`
	Calendars []Calendar        `yaml:"calendars" validate:"dive"`
	Nodes     []RateNode        `yaml:"nodes" validate:"required,min=1,dive"`
	// SampleTimes are year fractions from valuation reported in the output.
	SampleTimes []float64 `yaml:"sample_times" validate:"dive,gte=0"`
}

// DepositConvention is the term deposit convention of a document.
type DepositConvention struct {
	SpotDays    int    `yaml:"spot_days" validate:"gte=0,lte=10"`
	Calendar    string `yaml:"calendar"`
	BusinessDay string `yaml:"business_day"`
	DayCount    string `yaml:"day_count"`
}

// SwapConvention is the swap fixed-leg convention of a document.
type SwapConvention struct {
	SpotDays       int    `yaml:"spot_days" validate:"gte=0,lte=10"`
	Calendar       string `yaml:"calendar"`
	BusinessDay    string `yaml:"business_day"`
	DayCount       string `yaml:"day_count"`
	FixedFrequency string `yaml:"fixed_frequency"`
}

// RateNode is one deposit or swap with its quote. QuoteID defaults to Label.
type RateNode struct {
	Label   string   `yaml:"label" validate:"required"`
	Type    string   `yaml:"type" validate:"required,oneof=deposit swap"`
	Tenor   string   `yaml:"tenor" validate:"required"`
	QuoteID string   `yaml:"quote_id"`
	Quote   *float64 `yaml:"quote" validate:"required"`
}

func (n RateNode) quoteID() market.QuoteID {
	if n.QuoteID != "" {
		return market.QuoteID(n.QuoteID)
	}
	return market.QuoteID(n.Label)
}

// Validate checks the document structure. Convention names are checked
// when the document is converted to a request.
func (d *DiscountCurve) Validate() error {
	if err := validateStruct(d); err != nil {
		return err
	}
	if err := checkDate("snapshot", d.Snapshot); err != nil {
		return err
	}
	if !d.Valuation.IsZero() {
		if err := checkDate("valuation", d.Valuation); err != nil {
			return err
		}
		if d.Valuation.Before(d.Snapshot) {
			return fmt.Errorf("%w: valuation %s before snapshot %s", ErrInvalidDefinition, d.Valuation, d.Snapshot)
		}
	}
	ids := make(map[market.QuoteID]string, len(d.Nodes))
	for _, n := range d.Nodes {
		if prev, ok := ids[n.quoteID()]; ok {
			return fmt.Errorf("%w: nodes %s and %s share quote id %s", ErrInvalidDefinition, prev, n.Label, n.quoteID())
		}
		ids[n.quoteID()] = n.Label
	}
	return nil
}

// RegisterCalendars installs the document's holiday calendars.
func (d *DiscountCurve) RegisterCalendars() error {
	var errs []error
	for _, c := range d.Calendars {
		errs = append(errs, c.Register())
	}
	return errors.Join(errs...)
}

// SnapshotDate returns the quote snapshot date.
func (d *DiscountCurve) SnapshotDate() time.Time { return toTime(d.Snapshot) }

// ValuationDate returns the valuation date, defaulting to the snapshot.
func (d *DiscountCurve) ValuationDate() time.Time {
	if d.Valuation.IsZero() {
		return d.SnapshotDate()
	}
	return toTime(d.Valuation)
}

// Request converts the document into a discount calibration request.
// Calendars must be registered first.
func (d *DiscountCurve) Request() (discount.Request, error) {
	dep, err := d.Deposit.convention(d.Name)
	if err != nil {
		return discount.Request{}, err
	}
	swp, err := d.Swap.convention(d.Name)
	if err != nil {
		return discount.Request{}, err
	}
	nodes := make([]market.RateNode, len(d.Nodes))
	values := make(map[market.QuoteID]float64, len(d.Nodes))
	for i, n := range d.Nodes {
		tenor, err := market.ParseTenor(n.Tenor)
		if err != nil {
			return discount.Request{}, fmt.Errorf("node %s: %w", n.Label, err)
		}
		switch n.Type {
		case "deposit":
			nodes[i] = market.DepositNode(n.Label, n.quoteID(), tenor, dep)
		default:
			nodes[i] = market.SwapNode(n.Label, n.quoteID(), tenor, swp)
		}
		values[n.quoteID()] = *n.Quote
	}
	return discount.Request{
		Name:      d.Name,
		Nodes:     nodes,
		Quotes:    market.NewQuoteSet(d.SnapshotDate(), values),
		Valuation: d.ValuationDate(),
	}, nil
}

func (c DepositConvention) convention(name string) (market.TermDepositConvention, error) {
	cal, bdc, dc, err := parseCommon(c.Calendar, c.BusinessDay, c.DayCount, utils.Act360)
	if err != nil {
		return market.TermDepositConvention{}, fmt.Errorf("deposit_convention: %w", err)
	}
	conv := market.TermDepositConvention{
		Name:        name + "-DEPOSIT",
		SpotDays:    c.SpotDays,
		Calendar:    cal,
		BusinessDay: bdc,
		DayCount:    dc,
	}
	return conv, conv.Validate()
}

func (c SwapConvention) convention(name string) (market.SwapConvention, error) {
	cal, bdc, dc, err := parseCommon(c.Calendar, c.BusinessDay, c.DayCount, utils.Thirty360U)
	if err != nil {
		return market.SwapConvention{}, fmt.Errorf("swap_convention: %w", err)
	}
	freq := market.FreqSemiAnnual
	if strings.TrimSpace(c.FixedFrequency) != "" {
		if freq, err = market.ParseFrequency(c.FixedFrequency); err != nil {
			return market.SwapConvention{}, fmt.Errorf("swap_convention: %w", err)
		}
	}
	conv := market.SwapConvention{
		Name:           name + "-SWAP",
		SpotDays:       c.SpotDays,
		Calendar:       cal,
		BusinessDay:    bdc,
		DayCount:       dc,
		FixedFrequency: freq,
	}
	return conv, conv.Validate()
}

// parseCommon resolves the calendar, business day convention and day count
// names shared by every convention block. An empty business day convention
// means MODIFIED_FOLLOWING and an empty day count means def.
func parseCommon(cal, bdc, dc string, def utils.DayCount) (calendar.CalendarID, calendar.BusinessDayConvention, utils.DayCount, error) {
	id, err := calendar.Parse(cal)
	if err != nil {
		return "", "", "", err
	}
	conv := calendar.ModifiedFollowing
	if strings.TrimSpace(bdc) != "" {
		if conv, err = calendar.ParseConvention(bdc); err != nil {
			return "", "", "", err
		}
	}
	count := def
	if strings.TrimSpace(dc) != "" {
		if count, err = utils.ParseDayCount(dc); err != nil {
			return "", "", "", err
		}
	}
	return id, conv, count, nil
}
