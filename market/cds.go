package market

import (
	"fmt"
	"time"

	"github.com/meenmo/isdacurve/calendar"
	"github.com/meenmo/isdacurve/utils"
)

// CdsQuoteConvention says how a CDS node's quote is read.
type CdsQuoteConvention string

const (
	// ParSpread quotes the coupon that makes the clean price zero.
	ParSpread CdsQuoteConvention = "PAR_SPREAD"
	// PointsUpfront quotes the clean price of a CDS paying FixedCoupon.
	PointsUpfront CdsQuoteConvention = "POINTS_UPFRONT"
	// QuotedSpread quotes the flat-curve spread equivalent to the upfront
	// of a CDS paying FixedCoupon.
	QuotedSpread CdsQuoteConvention = "QUOTED_SPREAD"
)

// Validate reports whether q is a known convention.
func (q CdsQuoteConvention) Validate() error {
	switch q {
	case ParSpread, PointsUpfront, QuotedSpread:
		return nil
	}
	return fmt.Errorf("%w: quote convention %q", ErrInvalidConvention, string(q))
}

// CdsNode is one credit-curve calibration instrument.
type CdsNode struct {
	Label           string
	QuoteID         QuoteID
	Start           time.Time
	End             time.Time
	Convention      CdsConvention
	QuoteConvention CdsQuoteConvention
	// FixedCoupon is the running coupon for upfront and quoted-spread quotes.
	FixedCoupon float64
}

// ParSpreadNode builds a node quoted by par spread.
func ParSpreadNode(label string, quote QuoteID, start, end time.Time, conv CdsConvention) CdsNode {
	return CdsNode{Label: label, QuoteID: quote, Start: start, End: end, Convention: conv, QuoteConvention: ParSpread}
}

// UpfrontNode builds a node quoted in points upfront against coupon.
func UpfrontNode(label string, quote QuoteID, start, end time.Time, conv CdsConvention, coupon float64) CdsNode {
	return CdsNode{Label: label, QuoteID: quote, Start: start, End: end, Convention: conv, QuoteConvention: PointsUpfront, FixedCoupon: coupon}
}

// QuotedSpreadNode builds a node quoted by quoted spread against coupon.
func QuotedSpreadNode(label string, quote QuoteID, start, end time.Time, conv CdsConvention, coupon float64) CdsNode {
	return CdsNode{Label: label, QuoteID: quote, Start: start, End: end, Convention: conv, QuoteConvention: QuotedSpread, FixedCoupon: coupon}
}

// CdsPeriod is one premium period. Effective dates are one day earlier than
// the accrual dates because protection starts at the beginning of a day.
type CdsPeriod struct {
	Start, End       time.Time
	EffStart, EffEnd time.Time
	Payment          time.Time
	YearFraction     float64
}

// ResolvedCds is a CDS turned into its premium schedule.
type ResolvedCds struct {
	Node    CdsNode
	Periods []CdsPeriod
	// AccrualStart is the start of the first period.
	AccrualStart time.Time
	// AccrualEnd is the end of the last period, the day after maturity.
	AccrualEnd time.Time
	// ProtectionEnd is the maturity.
	ProtectionEnd time.Time
}

// Resolve builds the premium schedule.
func (n CdsNode) Resolve() (ResolvedCds, error) {
	c := n.Convention
	if err := c.Validate(); err != nil {
		return ResolvedCds{}, fmt.Errorf("%s: %w", n.Label, err)
	}
	if err := n.QuoteConvention.Validate(); err != nil {
		return ResolvedCds{}, fmt.Errorf("%s: %w", n.Label, err)
	}
	start, end := utils.Normalize(n.Start), utils.Normalize(n.End)
	if !end.After(start) {
		return ResolvedCds{}, fmt.Errorf("%w: %s ends %s, not after start %s", ErrInvalidNode, n.Label, utils.FormatDate(end), utils.FormatDate(start))
	}
	stub, _ := ParseStub(string(c.Stub))
	dates := cdsDates(start, end, int(c.PaymentFrequency), stub)

	adj := make([]time.Time, len(dates))
	adj[0] = start
	if c.AdjustStartDate {
		a, err := calendar.Adjust(c.Calendar, start, c.BusinessDay)
		if err != nil {
			return ResolvedCds{}, err
		}
		adj[0] = a
	}
	adj[len(adj)-1] = end
	for i := 1; i < len(dates)-1; i++ {
		a, err := calendar.Adjust(c.Calendar, dates[i], c.BusinessDay)
		if err != nil {
			return ResolvedCds{}, err
		}
		adj[i] = a
	}

	periods := make([]CdsPeriod, len(adj)-1)
	for i := range periods {
		s, e := adj[i], adj[i+1]
		pay, err := calendar.Adjust(c.Calendar, e, c.BusinessDay)
		if err != nil {
			return ResolvedCds{}, err
		}
		p := CdsPeriod{Start: s, End: e, EffStart: s.AddDate(0, 0, -1), EffEnd: e.AddDate(0, 0, -1), Payment: pay}
		if i == len(periods)-1 {
			// protection runs to the end of the maturity date
			p.End = e.AddDate(0, 0, 1)
			p.EffEnd = e
		}
		if p.YearFraction, err = utils.YearFraction(p.Start, p.End, c.DayCount); err != nil {
			return ResolvedCds{}, err
		}
		periods[i] = p
	}
	last := periods[len(periods)-1]
	return ResolvedCds{
		Node:          n,
		Periods:       periods,
		AccrualStart:  periods[0].Start,
		AccrualEnd:    last.End,
		ProtectionEnd: last.EffEnd,
	}, nil
}

// cdsDates generates unadjusted dates backward from the maturity using the
// maturity's day of month as the roll day.
func cdsDates(start, end time.Time, months int, stub StubConvention) []time.Time {
	roll := end.Day()
	rev := []time.Time{end}
	cur := utils.WithDayOfMonth(utils.AddMonths(end, -months), roll)
	for cur.After(start) {
		rev = append(rev, cur)
		cur = utils.WithDayOfMonth(utils.AddMonths(cur, -months), roll)
	}
	if !cur.Equal(start) && len(rev) > 1 {
		first := rev[len(rev)-1]
		if stub == LongInitial || (stub == SmartInitial && utils.Days(start, first) < 7) {
			rev = rev[:len(rev)-1]
		}
	}
	rev = append(rev, start)
	out := make([]time.Time, len(rev))
	for i, d := range rev {
		out[len(rev)-1-i] = d
	}
	return out
}

// StepinDate is the date protection is deemed to start for a trade done on valuation.
func (r ResolvedCds) StepinDate(valuation time.Time) time.Time {
	return utils.Normalize(valuation).AddDate(0, 0, r.Node.Convention.StepinDays)
}

// SettlementDate is the cash settlement date for a trade done on valuation.
func (r ResolvedCds) SettlementDate(valuation time.Time) time.Time {
	c := r.Node.Convention
	return calendar.AddBusinessDays(c.Calendar, utils.Normalize(valuation), c.SettlementDays)
}

// AccruedYearFraction is the premium accrued at the step-in date.
func (r ResolvedCds) AccruedYearFraction(stepin time.Time) (float64, error) {
	if stepin.Before(r.AccrualStart) || stepin.Equal(r.AccrualEnd) {
		return 0, nil
	}
	for _, p := range r.Periods {
		if !stepin.Before(p.Start) && stepin.Before(p.End) {
			return utils.YearFraction(p.Start, stepin, r.Node.Convention.DayCount)
		}
	}
	return 0, fmt.Errorf("%w: step-in %s is after the accrual end of %s", ErrInvalidNode, utils.FormatDate(stepin), r.Node.Label)
}
