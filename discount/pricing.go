package discount

import (
	"fmt"

	"github.com/meenmo/isdacurve/curve"
	"github.com/meenmo/isdacurve/market"
)

// PresentValue values a calibration instrument struck at quote, per unit
// notional, at its spot date.
func PresentValue(n market.ResolvedRateNode, quote float64, dfs curve.DiscountFactors) float64 {
	spot := dfs.DiscountFactor(n.Spot)
	if n.Node.Kind == market.KindTermDeposit {
		return (1+quote*n.YearFraction)*dfs.DiscountFactor(n.Pillar)/spot - 1
	}
	annuity := 0.0
	for _, c := range n.Coupons {
		annuity += c.YearFraction * dfs.DiscountFactor(c.Payment)
	}
	return (quote*annuity+dfs.DiscountFactor(n.Pillar))/spot - 1
}

// ParRate is the quote at which the instrument is worth zero.
func ParRate(n market.ResolvedRateNode, dfs curve.DiscountFactors) (float64, error) {
	spot := dfs.DiscountFactor(n.Spot)
	end := dfs.DiscountFactor(n.Pillar)
	if n.Node.Kind == market.KindTermDeposit {
		if n.YearFraction == 0 {
			return 0, fmt.Errorf("%w: %s has zero accrual", market.ErrInvalidNode, n.Node.Label)
		}
		return (spot/end - 1) / n.YearFraction, nil
	}
	annuity := 0.0
	for _, c := range n.Coupons {
		annuity += c.YearFraction * dfs.DiscountFactor(c.Payment)
	}
	if annuity == 0 {
		return 0, fmt.Errorf("%w: %s has zero annuity", market.ErrInvalidNode, n.Node.Label)
	}
	return (spot - end) / annuity, nil
}
