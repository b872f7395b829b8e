// Package curve provides the immutable curve value objects produced by the
// calibrators: zero-rate curves interpolated linearly in r*t (log-linear in
// discount factor), survival curves built on the same scheme, and dated
// wrappers that measure time from a valuation date.
package curve

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

// ErrInvalidCurve is returned for malformed knots or a Jacobian of the wrong shape.
var ErrInvalidCurve = errors.New("invalid curve")

// ZeroRateCurve is an ordered set of (time, zero rate) knots.
//
// Between knots r*t is linear in t. Before the first knot the zero rate is
// flat at the first rate; after the last knot r*t is extrapolated linearly
// from the last two knots, i.e. at the last forward rate. A single-knot curve
// is flat everywhere.
type ZeroRateCurve struct {
	name  string
	times []float64
	rates []float64
	rt    []float64
	// rows are knots, columns are the input quotes; nil when not calibrated
	jacobian *mat.Dense
}

// NewZeroRateCurve builds a curve from strictly increasing times and rates.
func NewZeroRateCurve(name string, times, rates []float64) (*ZeroRateCurve, error) {
	if len(times) == 0 {
		return nil, fmt.Errorf("%w: %s has no knots", ErrInvalidCurve, name)
	}
	if len(times) != len(rates) {
		return nil, fmt.Errorf("%w: %s has %d times and %d rates", ErrInvalidCurve, name, len(times), len(rates))
	}
	if !strictlyIncreasing(times) {
		return nil, fmt.Errorf("%w: %s times must be finite and strictly increasing", ErrInvalidCurve, name)
	}
	if !finite(rates) {
		return nil, fmt.Errorf("%w: %s has a non-finite rate", ErrInvalidCurve, name)
	}
	c := &ZeroRateCurve{
		name:  name,
		times: append([]float64(nil), times...),
		rates: append([]float64(nil), rates...),
	}
	c.rt = make([]float64, len(times))
	for i := range times {
		c.rt[i] = times[i] * rates[i]
	}
	return c, nil
}

// Name returns the curve name.
func (c *ZeroRateCurve) Name() string { return c.name }

// ParameterCount is the number of knots.
func (c *ZeroRateCurve) ParameterCount() int { return len(c.times) }

// Time returns the time of knot i.
func (c *ZeroRateCurve) Time(i int) float64 { return c.times[i] }

// Rate returns the zero rate at knot i.
func (c *ZeroRateCurve) Rate(i int) float64 { return c.rates[i] }

// Times returns a copy of the knot times.
func (c *ZeroRateCurve) Times() []float64 { return append([]float64(nil), c.times...) }

// Rates returns a copy of the knot rates.
func (c *ZeroRateCurve) Rates() []float64 { return append([]float64(nil), c.rates...) }

// RT returns r(t)*t, the negative log discount factor.
func (c *ZeroRateCurve) RT(t float64) float64 {
	n := len(c.times)
	if n == 1 || t <= c.times[0] {
		return c.rates[0] * t
	}
	i, exact := findBracket(c.times, t)
	if exact {
		return c.rt[i]
	}
	t1, t2 := c.times[i-1], c.times[i]
	return ((t2-t)*c.rt[i-1] + (t-t1)*c.rt[i]) / (t2 - t1)
}

// ZeroRate returns the continuously compounded zero rate at t.
// On a knot, before the first knot and on a single-knot curve it returns the
// stored rate exactly.
func (c *ZeroRateCurve) ZeroRate(t float64) float64 {
	if len(c.times) == 1 || t <= c.times[0] {
		return c.rates[0]
	}
	i, exact := findBracket(c.times, t)
	if exact {
		return c.rates[i]
	}
	return c.RT(t) / t
}

// DiscountFactor returns exp(-r(t)*t).
func (c *ZeroRateCurve) DiscountFactor(t float64) float64 {
	return math.Exp(-c.RT(t))
}

// Weight is the sensitivity of r(t)*t to one knot rate.
type Weight struct {
	Index int
	Value float64
}

// RTSensitivity returns d(r(t)*t)/d(r_i) for the (at most two) knots that
// r(t)*t depends on.
func (c *ZeroRateCurve) RTSensitivity(t float64) []Weight {
	n := len(c.times)
	if n == 1 || t <= c.times[0] {
		return []Weight{{Index: 0, Value: t}}
	}
	i, exact := findBracket(c.times, t)
	if exact {
		return []Weight{{Index: i, Value: c.times[i]}}
	}
	t1, t2 := c.times[i-1], c.times[i]
	dt := t2 - t1
	return []Weight{
		{Index: i - 1, Value: (t2 - t) / dt * t1},
		{Index: i, Value: (t - t1) / dt * t2},
	}
}

// WithRate returns a copy with knot i set to rate. The Jacobian is dropped.
func (c *ZeroRateCurve) WithRate(i int, rate float64) *ZeroRateCurve {
	out := &ZeroRateCurve{
		name:  c.name,
		times: c.times,
		rates: append([]float64(nil), c.rates...),
		rt:    append([]float64(nil), c.rt...),
	}
	out.rates[i] = rate
	out.rt[i] = rate * c.times[i]
	return out
}

// WithJacobian returns a copy carrying jac, whose rows must match the knots.
func (c *ZeroRateCurve) WithJacobian(jac *mat.Dense) (*ZeroRateCurve, error) {
	if jac != nil {
		if r, _ := jac.Dims(); r != len(c.times) {
			return nil, fmt.Errorf("%w: %s jacobian has %d rows for %d knots", ErrInvalidCurve, c.name, r, len(c.times))
		}
		jac = mat.DenseCopyOf(jac)
	}
	out := *c
	out.jacobian = jac
	return &out, nil
}

// Jacobian returns a copy of d(knot rate)/d(quote), or nil if none is attached.
func (c *ZeroRateCurve) Jacobian() *mat.Dense {
	if c.jacobian == nil {
		return nil
	}
	return mat.DenseCopyOf(c.jacobian)
}

// Equal compares names, knots and Jacobians exactly.
func (c *ZeroRateCurve) Equal(o *ZeroRateCurve) bool {
	if c == nil || o == nil {
		return c == o
	}
	if c.name != o.name || len(c.times) != len(o.times) {
		return false
	}
	for i := range c.times {
		if c.times[i] != o.times[i] || c.rates[i] != o.rates[i] {
			return false
		}
	}
	if (c.jacobian == nil) != (o.jacobian == nil) {
		return false
	}
	return c.jacobian == nil || mat.Equal(c.jacobian, o.jacobian)
}
