package credit

import (
	"fmt"
	"time"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"

	"github.com/meenmo/isdacurve/cds"
	"github.com/meenmo/isdacurve/curve"
	"github.com/meenmo/isdacurve/market"
	"github.com/meenmo/isdacurve/solver"
)

// target is what a node is repriced to: a clean price equal to upfront at
// the given coupon. dCoupon and dUpfront are their derivatives with respect
// to the node's quote.
type target struct {
	coupon, upfront   float64
	dCoupon, dUpfront float64
}

type bootstrap struct {
	pricer    cds.Pricer
	valuation time.Time
	discount  curve.DiscountFactors
	recovery  float64
	nodes     []market.ResolvedCds
	times     []float64
	quotes    []float64
	targets   []target
	hazard    *curve.ZeroRateCurve
}

func (b *bootstrap) curves(hazard *curve.ZeroRateCurve) cds.Curves {
	return cds.Curves{
		Discount:     b.discount,
		Survival:     curve.NewSurvivalProbabilities(b.valuation, curve.SurvivalFromHazard(hazard)),
		RecoveryRate: b.recovery,
	}
}

type flatSolver func(b *bootstrap, pos int, spread float64) (*curve.ZeroRateCurve, float64, error)

// target converts the quote of node pos into a coupon and an upfront.
// Quoted spreads go through a flat curve calibrated at the quoted spread
// and repriced at the node's fixed coupon.
func (b *bootstrap) target(pos int, flat flatSolver) (target, error) {
	node := b.nodes[pos].Node
	q := b.quotes[pos]
	switch node.QuoteConvention {
	case market.ParSpread:
		return target{coupon: q, dCoupon: 1}, nil
	case market.PointsUpfront:
		return target{coupon: node.FixedCoupon, upfront: q, dUpfront: 1}, nil
	case market.QuotedSpread:
		haz, dhdq, err := flat(b, pos, q)
		if err != nil {
			return target{}, err
		}
		sens, err := b.pricer.PriceSensitivity(b.nodes[pos], b.curves(haz), node.FixedCoupon)
		if err != nil {
			return target{}, err
		}
		return target{coupon: node.FixedCoupon, upfront: sens.Price, dUpfront: sens.Gradient[0] * dhdq}, nil
	}
	return target{}, fmt.Errorf("%w: quote convention %q", market.ErrInvalidNode, node.QuoteConvention)
}

// jacobian differentiates each node's pricing equation implicitly: row k is
// d(hazard k)/d(quotes), given the rows of every earlier knot. Columns
// follow node order.
func (b *bootstrap) jacobian() (*mat.Dense, error) {
	n := len(b.nodes)
	jac := mat.NewDense(n, n, nil)
	m := b.curves(b.hazard)
	row := make([]float64, n)
	for k, node := range b.nodes {
		tg := b.targets[k]
		sens, err := b.pricer.PriceSensitivity(node, m, tg.coupon)
		if err != nil {
			return nil, err
		}
		g := sens.Gradient
		if g[k] == 0 {
			return nil, fmt.Errorf("%w: %s price is insensitive to its hazard rate", solver.ErrNoConvergence, node.Node.Label)
		}
		for i := range row {
			row[i] = 0
		}
		row[k] = -(tg.dCoupon*sens.RiskyAnnuity + tg.dUpfront)
		for j := 0; j < k; j++ {
			if g[j] != 0 {
				floats.AddScaled(row, g[j], jac.RawRowView(j))
			}
		}
		floats.Scale(-1/g[k], row)
		jac.SetRow(k, row)
	}
	return jac, nil
}

// permuteColumns moves the columns of jac from node order back to the
// caller's node order.
func permuteColumns(jac *mat.Dense, index []int) *mat.Dense {
	r, c := jac.Dims()
	out := mat.NewDense(r, c, nil)
	col := make([]float64, r)
	for pos, i := range index {
		mat.Col(col, pos, jac)
		out.SetCol(i, col)
	}
	return out
}
