package curve

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// SurvivalCurve stores a credit curve as hazard-rate knots: the survival
// probability to t is exp(-h(t)*t), with h(t)*t interpolated exactly as a
// zero-rate curve interpolates r(t)*t.
type SurvivalCurve struct {
	hazard *ZeroRateCurve
}

// NewSurvivalCurve builds a survival curve from knot times and hazard rates.
func NewSurvivalCurve(name string, times, hazardRates []float64) (*SurvivalCurve, error) {
	h, err := NewZeroRateCurve(name, times, hazardRates)
	if err != nil {
		return nil, err
	}
	return &SurvivalCurve{hazard: h}, nil
}

// SurvivalFromHazard wraps an existing hazard curve.
func SurvivalFromHazard(h *ZeroRateCurve) *SurvivalCurve {
	return &SurvivalCurve{hazard: h}
}

// Name returns the curve name.
func (c *SurvivalCurve) Name() string { return c.hazard.name }

// Hazard exposes the underlying hazard-rate curve.
func (c *SurvivalCurve) Hazard() *ZeroRateCurve { return c.hazard }

// ParameterCount is the number of knots.
func (c *SurvivalCurve) ParameterCount() int { return c.hazard.ParameterCount() }

// Times returns a copy of the knot times.
func (c *SurvivalCurve) Times() []float64 { return c.hazard.Times() }

// HazardRates returns a copy of the knot hazard rates.
func (c *SurvivalCurve) HazardRates() []float64 { return c.hazard.Rates() }

// HT returns h(t)*t.
func (c *SurvivalCurve) HT(t float64) float64 { return c.hazard.RT(t) }

// HazardRate returns the average hazard rate to t.
func (c *SurvivalCurve) HazardRate(t float64) float64 { return c.hazard.ZeroRate(t) }

// SurvivalProbability returns exp(-h(t)*t).
func (c *SurvivalCurve) SurvivalProbability(t float64) float64 {
	return math.Exp(-c.hazard.RT(t))
}

// WithHazardRate returns a copy with knot i set to h.
func (c *SurvivalCurve) WithHazardRate(i int, h float64) *SurvivalCurve {
	return &SurvivalCurve{hazard: c.hazard.WithRate(i, h)}
}

// WithJacobian returns a copy carrying d(hazard knot)/d(quote).
func (c *SurvivalCurve) WithJacobian(jac *mat.Dense) (*SurvivalCurve, error) {
	h, err := c.hazard.WithJacobian(jac)
	if err != nil {
		return nil, err
	}
	return &SurvivalCurve{hazard: h}, nil
}

// Jacobian returns a copy of the attached Jacobian, or nil.
func (c *SurvivalCurve) Jacobian() *mat.Dense { return c.hazard.Jacobian() }

// Equal compares the underlying hazard curves.
func (c *SurvivalCurve) Equal(o *SurvivalCurve) bool {
	if c == nil || o == nil {
		return c == o
	}
	return c.hazard.Equal(o.hazard)
}
