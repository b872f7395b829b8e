//go:build ignore

package main

import (
	"fmt"
	"math"

	"github.com/meenmo/isdacurve/calendar"
	"github.com/meenmo/isdacurve/config"
	"github.com/meenmo/isdacurve/credit"
	"github.com/meenmo/isdacurve/discount"
	"github.com/meenmo/isdacurve/market"
	"github.com/meenmo/isdacurve/utils"
)

// Diagnosis: analytic credit curve Jacobian against central differences.
// Each quote is bumped by +/- bump, the curve recalibrated, and the
// difference quotient compared entry by entry with the attached Jacobian.
const bump = 1e-7

func main() {
	snap := utils.Date(2011, 6, 19)
	dep := market.TermDepositConvention{Name: "DEP", SpotDays: 2, Calendar: calendar.SatSun, BusinessDay: calendar.ModifiedFollowing, DayCount: utils.Act360}
	swp := market.SwapConvention{Name: "SWP", SpotDays: 2, Calendar: calendar.SatSun, BusinessDay: calendar.ModifiedFollowing, DayCount: utils.Thirty360U, FixedFrequency: market.FreqSemiAnnual}
	dcal, err := discount.NewCalibrator(config.DefaultConfig)
	if err != nil {
		panic(err)
	}
	dres, err := dcal.CalibrateDetailed(discount.Request{
		Name: "EUR",
		Nodes: []market.RateNode{
			market.DepositNode("6M", "6M", market.Months(6), dep),
			market.SwapNode("3Y", "3Y", market.Years(3), swp),
			market.SwapNode("10Y", "10Y", market.Years(10), swp),
		},
		Quotes: market.NewQuoteSet(snap, map[market.QuoteID]float64{"6M": 0.015, "3Y": 0.02, "10Y": 0.03}),
	})
	if err != nil {
		panic(err)
	}

	conv := market.StandardCdsConvention()
	start := utils.Date(2011, 3, 20)
	nodes := []market.CdsNode{
		market.ParSpreadNode("1Y", "1Y", start, utils.Date(2012, 6, 20), conv),
		market.UpfrontNode("3Y", "3Y", start, utils.Date(2014, 6, 20), conv, 0.05),
		market.QuotedSpreadNode("5Y", "5Y", start, utils.Date(2016, 6, 20), conv, 0.01),
		market.ParSpreadNode("10Y", "10Y", start, utils.Date(2021, 6, 20), conv),
	}
	base := map[market.QuoteID]float64{"1Y": 0.01, "3Y": -0.02, "5Y": 0.015, "10Y": 0.02}

	ccal, err := credit.NewCalibrator(config.DefaultConfig)
	if err != nil {
		panic(err)
	}
	calibrate := func(q map[market.QuoteID]float64) credit.Result {
		res, err := ccal.CalibrateDetailed(credit.Request{
			Name: "ACME", Nodes: nodes, Quotes: market.NewQuoteSet(snap, q),
			Discount: dres.DiscountFactors(), RecoveryRate: 0.4,
		})
		if err != nil {
			panic(err)
		}
		return res
	}

	res := calibrate(base)
	jac := res.Curve.Jacobian()
	worst := 0.0
	fmt.Printf("%-4s %-4s %14s %14s %10s\n", "knot", "quote", "analytic", "numeric", "rel err")
	for j, n := range nodes {
		up, dn := copyQuotes(base), copyQuotes(base)
		up[n.QuoteID] += bump
		dn[n.QuoteID] -= bump
		hu := calibrate(up).Curve.HazardRates()
		hd := calibrate(dn).Curve.HazardRates()
		for i := range hu {
			fd := (hu[i] - hd[i]) / (2 * bump)
			an := jac.At(i, j)
			rel := math.Abs(an-fd) / math.Max(math.Abs(fd), 1e-12)
			worst = math.Max(worst, rel)
			fmt.Printf("%-4d %-4s %14.8f %14.8f %10.2e\n", i, n.Label, an, fd, rel)
		}
	}
	fmt.Printf("\nworst relative error %.2e\n", worst)
}

func copyQuotes(q map[market.QuoteID]float64) map[market.QuoteID]float64 {
	out := make(map[market.QuoteID]float64, len(q))
	for k, v := range q {
		out[k] = v
	}
	return out
}
