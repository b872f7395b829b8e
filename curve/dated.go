package curve

import (
	"time"

	"github.com/meenmo/isdacurve/utils"
)

// DiscountFactors anchors a zero-rate curve at a valuation date. Times are
// ACT/365F year fractions from that date.
type DiscountFactors struct {
	valuation time.Time
	curve     *ZeroRateCurve
}

// NewDiscountFactors wraps c at the given valuation date.
func NewDiscountFactors(valuation time.Time, c *ZeroRateCurve) DiscountFactors {
	return DiscountFactors{valuation: utils.Normalize(valuation), curve: c}
}

// ValuationDate returns the anchor date.
func (d DiscountFactors) ValuationDate() time.Time { return d.valuation }

// Curve returns the underlying curve.
func (d DiscountFactors) Curve() *ZeroRateCurve { return d.curve }

// RelativeYearFraction is ACT/365F from the valuation date.
func (d DiscountFactors) RelativeYearFraction(date time.Time) float64 {
	return utils.Act365(d.valuation, date)
}

// DiscountFactor returns the discount factor to date.
func (d DiscountFactors) DiscountFactor(date time.Time) float64 {
	return d.curve.DiscountFactor(d.RelativeYearFraction(date))
}

// ZeroRate returns the zero rate to date.
func (d DiscountFactors) ZeroRate(date time.Time) float64 {
	return d.curve.ZeroRate(d.RelativeYearFraction(date))
}

// SurvivalProbabilities anchors a survival curve at a valuation date.
type SurvivalProbabilities struct {
	valuation time.Time
	curve     *SurvivalCurve
}

// NewSurvivalProbabilities wraps c at the given valuation date.
func NewSurvivalProbabilities(valuation time.Time, c *SurvivalCurve) SurvivalProbabilities {
	return SurvivalProbabilities{valuation: utils.Normalize(valuation), curve: c}
}

// ValuationDate returns the anchor date.
func (s SurvivalProbabilities) ValuationDate() time.Time { return s.valuation }

// Curve returns the underlying curve.
func (s SurvivalProbabilities) Curve() *SurvivalCurve { return s.curve }

// RelativeYearFraction is ACT/365F from the valuation date.
func (s SurvivalProbabilities) RelativeYearFraction(date time.Time) float64 {
	return utils.Act365(s.valuation, date)
}

// SurvivalProbability returns the probability of no default before date.
func (s SurvivalProbabilities) SurvivalProbability(date time.Time) float64 {
	return s.curve.SurvivalProbability(s.RelativeYearFraction(date))
}
