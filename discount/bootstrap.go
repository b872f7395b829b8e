package discount

import (
	"math"
	"time"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"

	"github.com/meenmo/isdacurve/curve"
	"github.com/meenmo/isdacurve/market"
	"github.com/meenmo/isdacurve/utils"
)

// bootstrap is the working state of one calibration. Knots not yet solved
// hold zero and are never read by earlier nodes.
type bootstrap struct {
	nodes  []market.ResolvedRateNode
	times  []float64
	quotes []float64
	legs   []fixedLeg
	curve  *curve.ZeroRateCurve
}

func newBootstrap(name string, o market.OrderedRateNodes, quotes []float64) (*bootstrap, error) {
	n := len(o.Nodes)
	c, err := curve.NewZeroRateCurve(name, o.Times, make([]float64, n))
	if err != nil {
		return nil, err
	}
	b := &bootstrap{nodes: o.Nodes, times: o.Times, quotes: quotes, legs: make([]fixedLeg, n), curve: c}
	for i, node := range o.Nodes {
		if node.Node.Kind == market.KindSwap {
			b.legs[i] = newFixedLeg(o.Spot, node.Coupons)
		}
	}
	return b, nil
}

// fixedLeg is a swap fixed leg in curve time.
type fixedLeg struct {
	times []float64
	yfs   []float64
}

func newFixedLeg(spot time.Time, coupons []market.Coupon) fixedLeg {
	l := fixedLeg{times: make([]float64, len(coupons)), yfs: make([]float64, len(coupons))}
	for i, cp := range coupons {
		l.times[i] = utils.Act365(spot, cp.Payment)
		l.yfs[i] = cp.YearFraction
	}
	return l
}

func (l fixedLeg) annuity(c *curve.ZeroRateCurve) float64 {
	a := 0.0
	for i, t := range l.times {
		a += l.yfs[i] * c.DiscountFactor(t)
	}
	return a
}

// pv is the value at spot of receiving the fixed rate q against par
// floating, per unit notional.
func (l fixedLeg) pv(c *curve.ZeroRateCurve, q float64) float64 {
	// DF - 1 as expm1 keeps precision when r t is tiny
	return q*l.annuity(c) + math.Expm1(-c.RT(l.times[len(l.times)-1]))
}

// rateSensitivity is d(pv)/d(knot rate) for every knot of c.
func (l fixedLeg) rateSensitivity(c *curve.ZeroRateCurve, q float64) []float64 {
	out := make([]float64, c.ParameterCount())
	last := len(l.times) - 1
	for i, t := range l.times {
		coef := q * l.yfs[i]
		if i == last {
			coef++
		}
		df := c.DiscountFactor(t)
		for _, w := range c.RTSensitivity(t) {
			out[w.Index] -= coef * df * w.Value
		}
	}
	return out
}

// jacobian differentiates each node's pricing equation implicitly: row k is
// d(rate k)/d(quotes), given the rows of every earlier knot. Columns follow
// node order.
func (b *bootstrap) jacobian() *mat.Dense {
	n := len(b.nodes)
	jac := mat.NewDense(n, n, nil)
	row := make([]float64, n)
	for k, node := range b.nodes {
		q := b.quotes[k]
		if node.Node.Kind == market.KindTermDeposit {
			yf := node.YearFraction
			jac.Set(k, k, yf/((1+q*yf)*b.times[k]))
			continue
		}
		leg := b.legs[k]
		dF := leg.rateSensitivity(b.curve, q)
		for i := range row {
			row[i] = 0
		}
		row[k] = leg.annuity(b.curve)
		for m := 0; m < k; m++ {
			if dF[m] != 0 {
				floats.AddScaled(row, dF[m], jac.RawRowView(m))
			}
		}
		floats.Scale(-1/dF[k], row)
		jac.SetRow(k, row)
	}
	return jac
}

// toRequestOrder permutes the columns of jac from node order back to the
// caller's node order.
func toRequestOrder(jac *mat.Dense, index []int) *mat.Dense {
	r, c := jac.Dims()
	out := mat.NewDense(r, c, nil)
	col := make([]float64, r)
	for pos, i := range index {
		mat.Col(col, pos, jac)
		out.SetCol(i, col)
	}
	return out
}
