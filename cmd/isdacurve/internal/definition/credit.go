package definition

import (
	"fmt"
	"strings"

	"cloud.google.com/go/civil"

	"github.com/meenmo/isdacurve/cds"
	"github.com/meenmo/isdacurve/market"
	"github.com/meenmo/isdacurve/provider"
)

// CreditCurve is a credit curve document. The discount curve is given
// inline under discount or by path under discount_file.
//
//	kind: credit
//	name: ACME-EUR
//	entity: ACME
//	currency: EUR
//	recovery_rate: 0.4
//	discount_file: eur.yaml
//	nodes:
//	  - {label: 5Y, start: 2011-03-20, maturity: 2016-06-20, quote: 0.0125}
type CreditCurve struct {
	Kind         Kind    `yaml:"kind"`
	Name         string  `yaml:"name" validate:"required"`
	Entity       string  `yaml:"entity" validate:"required"`
	Currency     string  `yaml:"currency" validate:"required,len=3,uppercase"`
	RecoveryRate float64 `yaml:"recovery_rate" validate:"gte=0,lt=1"`
	// Formula overrides the configured accrual-on-default formula.
	Formula      string         `yaml:"formula" validate:"omitempty,oneof=ORIGINAL_ISDA MARKIT_FIX CORRECT"`
	Discount     *DiscountCurve `yaml:"discount"`
	DiscountFile string         `yaml:"discount_file"`
	Convention   CdsConvention  `yaml:"convention"`
	Nodes        []CdsNode      `yaml:"nodes" validate:"required,min=1,dive"`
	SampleTimes  []float64      `yaml:"sample_times" validate:"dive,gte=0"`
}

// CdsConvention overrides fields of the ISDA standard convention. Unset
// fields keep their standard values.
type CdsConvention struct {
	Calendar         string `yaml:"calendar"`
	BusinessDay      string `yaml:"business_day"`
	DayCount         string `yaml:"day_count"`
	PaymentFrequency string `yaml:"payment_frequency"`
	Stub             string `yaml:"stub" validate:"omitempty,oneof=SMART_INITIAL SHORT_INITIAL LONG_INITIAL"`
	AdjustStartDate  bool   `yaml:"adjust_start_date"`
	StepinDays       *int   `yaml:"stepin_days" validate:"omitempty,gte=0"`
	SettlementDays   *int   `yaml:"settlement_days" validate:"omitempty,gte=0"`
}

// CdsNode is one CDS with its quote. QuoteConvention defaults to PAR_SPREAD.
type CdsNode struct {
	Label           string     `yaml:"label" validate:"required"`
	QuoteID         string     `yaml:"quote_id"`
	Start           civil.Date `yaml:"start"`
	Maturity        civil.Date `yaml:"maturity"`
	QuoteConvention string     `yaml:"quote_convention" validate:"omitempty,oneof=PAR_SPREAD POINTS_UPFRONT QUOTED_SPREAD"`
	FixedCoupon     float64    `yaml:"fixed_coupon" validate:"gte=0"`
	Quote           *float64   `yaml:"quote" validate:"required"`
}

func (n CdsNode) quoteID() market.QuoteID {
	if n.QuoteID != "" {
		return market.QuoteID(n.QuoteID)
	}
	return market.QuoteID(n.Label)
}

// Validate checks the document structure. An inline discount curve is
// validated with it.
func (c *CreditCurve) Validate() error {
	if err := validateStruct(c); err != nil {
		return err
	}
	if c.Discount == nil && c.DiscountFile == "" {
		return fmt.Errorf("%w: one of discount and discount_file is required", ErrInvalidDefinition)
	}
	if c.Discount != nil && c.DiscountFile != "" {
		return fmt.Errorf("%w: discount and discount_file are exclusive", ErrInvalidDefinition)
	}
	for _, n := range c.Nodes {
		if err := checkDate("node "+n.Label+" start", n.Start); err != nil {
			return err
		}
		if err := checkDate("node "+n.Label+" maturity", n.Maturity); err != nil {
			return err
		}
		if !n.Start.Before(n.Maturity) {
			return fmt.Errorf("%w: node %s matures on or before its start", ErrInvalidDefinition, n.Label)
		}
		if market.CdsQuoteConvention(n.QuoteConvention) != market.ParSpread && n.QuoteConvention != "" && n.FixedCoupon == 0 {
			return fmt.Errorf("%w: node %s needs a fixed_coupon for %s quotes", ErrInvalidDefinition, n.Label, n.QuoteConvention)
		}
	}
	if c.Discount != nil {
		if err := c.Discount.Validate(); err != nil {
			return fmt.Errorf("discount: %w", err)
		}
		return c.check()
	}
	return nil
}

// check relates the credit document to its discount curve.
func (c *CreditCurve) check() error {
	if c.Discount.Currency != c.Currency {
		return fmt.Errorf("%w: credit currency %s, discount currency %s", ErrInvalidDefinition, c.Currency, c.Discount.Currency)
	}
	return nil
}

// Key returns the provider key of the curve.
func (c *CreditCurve) Key() provider.CreditKey {
	return provider.CreditKey{Entity: provider.LegalEntityID(c.Entity), Currency: provider.Currency(c.Currency)}
}

// AccrualFormula returns the formula override, or "" when none is set.
func (c *CreditCurve) AccrualFormula() (cds.AccrualOnDefaultFormula, error) {
	if c.Formula == "" {
		return "", nil
	}
	return cds.ParseFormula(c.Formula)
}

// CdsNodes converts the nodes and their quotes. Quotes are stamped with
// the discount curve's snapshot date.
func (c *CreditCurve) CdsNodes() ([]market.CdsNode, market.QuoteSet, error) {
	conv, err := c.Convention.convention()
	if err != nil {
		return nil, market.QuoteSet{}, err
	}
	nodes := make([]market.CdsNode, len(c.Nodes))
	values := make(map[market.QuoteID]float64, len(c.Nodes))
	for i, n := range c.Nodes {
		qc := market.ParSpread
		if n.QuoteConvention != "" {
			qc = market.CdsQuoteConvention(n.QuoteConvention)
		}
		nodes[i] = market.CdsNode{
			Label:           n.Label,
			QuoteID:         n.quoteID(),
			Start:           toTime(n.Start),
			End:             toTime(n.Maturity),
			Convention:      conv,
			QuoteConvention: qc,
			FixedCoupon:     n.FixedCoupon,
		}
		if _, dup := values[n.quoteID()]; dup {
			return nil, market.QuoteSet{}, fmt.Errorf("%w: quote id %s used twice", ErrInvalidDefinition, n.quoteID())
		}
		values[n.quoteID()] = *n.Quote
	}
	return nodes, market.NewQuoteSet(c.Discount.SnapshotDate(), values), nil
}

func (c CdsConvention) convention() (market.CdsConvention, error) {
	conv := market.StandardCdsConvention()
	if strings.TrimSpace(c.Calendar) != "" || strings.TrimSpace(c.BusinessDay) != "" || strings.TrimSpace(c.DayCount) != "" {
		bdc := c.BusinessDay
		if strings.TrimSpace(bdc) == "" {
			bdc = string(conv.BusinessDay)
		}
		cal, b, dc, err := parseCommon(c.Calendar, bdc, c.DayCount, conv.DayCount)
		if err != nil {
			return market.CdsConvention{}, fmt.Errorf("convention: %w", err)
		}
		conv.Name = "CUSTOM"
		conv.Calendar, conv.BusinessDay, conv.DayCount = cal, b, dc
	}
	if strings.TrimSpace(c.PaymentFrequency) != "" {
		f, err := market.ParseFrequency(c.PaymentFrequency)
		if err != nil {
			return market.CdsConvention{}, fmt.Errorf("convention: %w", err)
		}
		conv.PaymentFrequency = f
	}
	if c.Stub != "" {
		conv.Stub = market.StubConvention(c.Stub)
	}
	conv.AdjustStartDate = c.AdjustStartDate
	if c.StepinDays != nil {
		conv.StepinDays = *c.StepinDays
	}
	if c.SettlementDays != nil {
		conv.SettlementDays = *c.SettlementDays
	}
	return conv, conv.Validate()
}
