// Package cds prices single-name CDS under the ISDA standard model, as far
// as curve calibration needs: protection leg, risky annuity with accrual on
// default, clean and dirty prices, par spreads and the sensitivity of the
// price to each credit-curve knot.
package cds

import (
	"errors"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/meenmo/isdacurve/curve"
	"github.com/meenmo/isdacurve/market"
	"github.com/meenmo/isdacurve/utils"
)

// AccrualOnDefaultFormula selects how the premium accrued up to a default
// is integrated over each coupon period.
type AccrualOnDefaultFormula string

const (
	// OriginalISDA is the ISDA model formula, with its half-day bias.
	OriginalISDA AccrualOnDefaultFormula = "ORIGINAL_ISDA"
	// MarkitFix is the Markit correction of the original formula.
	MarkitFix AccrualOnDefaultFormula = "MARKIT_FIX"
	// Correct is the original formula without the half-day bias.
	Correct AccrualOnDefaultFormula = "CORRECT"
)

// ParseFormula resolves a formula name; empty means ORIGINAL_ISDA.
func ParseFormula(s string) (AccrualOnDefaultFormula, error) {
	switch f := AccrualOnDefaultFormula(strings.ToUpper(strings.TrimSpace(s))); f {
	case "", OriginalISDA:
		return OriginalISDA, nil
	case MarkitFix, Correct:
		return f, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownFormula, s)
}

// PriceType selects whether accrued premium is subtracted.
type PriceType string

const (
	Clean PriceType = "CLEAN"
	Dirty PriceType = "DIRTY"
)

var (
	// ErrUnknownFormula is returned for an unrecognised accrual-on-default formula.
	ErrUnknownFormula = errors.New("unknown accrual-on-default formula")
	// ErrInvalidMarket is returned for inconsistent pricing inputs.
	ErrInvalidMarket = errors.New("invalid cds market")
)

// halfDay is the accrual bias of the original ISDA formula, in years.
const halfDay = 1.0 / 730

// Curves bundles what a CDS price depends on. Both curves must be anchored
// at the same valuation date.
type Curves struct {
	Discount     curve.DiscountFactors
	Survival     curve.SurvivalProbabilities
	RecoveryRate float64
}

func (c Curves) validate() error {
	switch {
	case c.Discount.Curve() == nil || c.Survival.Curve() == nil:
		return fmt.Errorf("%w: missing curve", ErrInvalidMarket)
	case !c.Discount.ValuationDate().Equal(c.Survival.ValuationDate()):
		return fmt.Errorf("%w: discount valued %s, survival valued %s", ErrInvalidMarket,
			utils.FormatDate(c.Discount.ValuationDate()), utils.FormatDate(c.Survival.ValuationDate()))
	case c.RecoveryRate < 0 || c.RecoveryRate >= 1 || math.IsNaN(c.RecoveryRate):
		return fmt.Errorf("%w: recovery rate %g", ErrInvalidMarket, c.RecoveryRate)
	}
	return nil
}

// Pricer is an ISDA standard model CDS pricer for one accrual-on-default
// formula. The zero value is not usable; call NewPricer.
type Pricer struct {
	formula AccrualOnDefaultFormula
	omega   float64
	small   float64
}

// NewPricer builds a pricer. smallExponent is the exponent increment under
// which segment integrals switch to series expansions.
func NewPricer(formula AccrualOnDefaultFormula, smallExponent float64) (Pricer, error) {
	f, err := ParseFormula(string(formula))
	if err != nil {
		return Pricer{}, err
	}
	if !(smallExponent > 0) {
		return Pricer{}, fmt.Errorf("%w: small exponent %g", ErrInvalidMarket, smallExponent)
	}
	p := Pricer{formula: f, small: smallExponent}
	if f == OriginalISDA {
		p.omega = halfDay
	}
	return p, nil
}

// Formula returns the accrual-on-default formula.
func (p Pricer) Formula() AccrualOnDefaultFormula { return p.formula }

// Price is the protection leg less coupon times the risky annuity, per unit
// notional, valued at the cash settlement date.
func (p Pricer) Price(c market.ResolvedCds, m Curves, coupon float64, pt PriceType) (float64, error) {
	lv, err := p.legs(c, m, false)
	if err != nil {
		return 0, err
	}
	return lv.protection - coupon*lv.annuity(pt), nil
}

// ProtectionLeg values the contingent leg.
func (p Pricer) ProtectionLeg(c market.ResolvedCds, m Curves) (float64, error) {
	lv, err := p.legs(c, m, false)
	if err != nil {
		return 0, err
	}
	return lv.protection, nil
}

// RiskyAnnuity values the premium leg per unit coupon.
func (p Pricer) RiskyAnnuity(c market.ResolvedCds, m Curves, pt PriceType) (float64, error) {
	lv, err := p.legs(c, m, false)
	if err != nil {
		return 0, err
	}
	return lv.annuity(pt), nil
}

// ParSpread is the coupon that makes the clean price zero.
func (p Pricer) ParSpread(c market.ResolvedCds, m Curves) (float64, error) {
	lv, err := p.legs(c, m, false)
	if err != nil {
		return 0, err
	}
	ra := lv.annuity(Clean)
	if ra == 0 {
		return 0, fmt.Errorf("%w: %s has zero risky annuity", ErrInvalidMarket, c.Node.Label)
	}
	return lv.protection / ra, nil
}

// Sensitivity is a clean price together with its gradient.
type Sensitivity struct {
	Price        float64
	RiskyAnnuity float64
	// Gradient is d(clean price)/d(hazard rate) for each survival curve knot.
	Gradient []float64
}

// PriceSensitivity returns the clean price, the clean risky annuity and the
// derivative of the price with respect to every hazard-rate knot.
func (p Pricer) PriceSensitivity(c market.ResolvedCds, m Curves, coupon float64) (Sensitivity, error) {
	lv, err := p.legs(c, m, true)
	if err != nil {
		return Sensitivity{}, err
	}
	grad := make([]float64, len(lv.protectionGrad))
	for i := range grad {
		grad[i] = lv.protectionGrad[i] - coupon*lv.annuityGrad[i]
	}
	ra := lv.annuity(Clean)
	return Sensitivity{Price: lv.protection - coupon*ra, RiskyAnnuity: ra, Gradient: grad}, nil
}

type legValues struct {
	protection     float64
	dirtyAnnuity   float64
	accrued        float64
	protectionGrad []float64
	annuityGrad    []float64
}

func (lv legValues) annuity(pt PriceType) float64 {
	if pt == Dirty {
		return lv.dirtyAnnuity
	}
	return lv.dirtyAnnuity - lv.accrued
}

// legs values both legs at the settlement date, optionally with their
// gradients to the hazard knots.
func (p Pricer) legs(c market.ResolvedCds, m Curves, withGrad bool) (legValues, error) {
	if err := m.validate(); err != nil {
		return legValues{}, err
	}
	if len(c.Periods) == 0 {
		return legValues{}, fmt.Errorf("%w: %s has no premium periods", ErrInvalidMarket, c.Node.Label)
	}
	val := m.Discount.ValuationDate()
	e := evaluator{
		p:     p,
		disc:  m.Discount.Curve(),
		haz:   m.Survival.Curve().Hazard(),
		val:   val,
		rTime: m.Discount.Curve().Times(),
		hTime: m.Survival.Curve().Hazard().Times(),
	}
	if withGrad {
		n := e.haz.ParameterCount()
		e.protGrad = make([]float64, n)
		e.annGrad = make([]float64, n)
	}

	stepin := c.StepinDate(val)
	settle := c.SettlementDate(val)
	effStart := utils.MaxDate(stepin, c.AccrualStart).AddDate(0, 0, -1)
	dfSettle := e.disc.DiscountFactor(e.yf(settle))

	lv := legValues{}
	lv.protection = e.protection(c, effStart, (1-m.RecoveryRate)/dfSettle)
	lv.dirtyAnnuity = e.premium(c, stepin, effStart, 1/dfSettle)
	accrued, err := c.AccruedYearFraction(stepin)
	if err != nil {
		return legValues{}, err
	}
	lv.accrued = accrued
	lv.protectionGrad, lv.annuityGrad = e.protGrad, e.annGrad
	return lv, nil
}

type evaluator struct {
	p            Pricer
	disc         *curve.ZeroRateCurve
	haz          *curve.ZeroRateCurve
	val          time.Time
	rTime, hTime []float64
	protGrad     []float64
	annGrad      []float64
}

func (e *evaluator) yf(d time.Time) float64 { return utils.Act365(e.val, d) }

// node returns h*t, r*t and the combined discount-survival factor at t.
func (e *evaluator) node(t float64) (ht, rt, b float64) {
	ht = e.haz.RT(t)
	rt = e.disc.RT(t)
	return ht, rt, math.Exp(-ht - rt)
}

func (e *evaluator) addGrad(g []float64, t, coef float64) {
	if g == nil {
		return
	}
	for _, w := range e.haz.RTSensitivity(t) {
		g[w.Index] += coef * w.Value
	}
}

func (e *evaluator) protection(c market.ResolvedCds, effStart time.Time, scale float64) float64 {
	if !c.ProtectionEnd.After(effStart) {
		return 0
	}
	knots := integrationPoints(e.yf(effStart), e.yf(c.ProtectionEnd), e.rTime, e.hTime)
	ht0, rt0, b0 := e.node(knots[0])
	pv := 0.0
	for j := 1; j < len(knots); j++ {
		ht1, rt1, b1 := e.node(knots[j])
		v, d0, d1 := e.p.protectionSegment(b0, b1, ht1-ht0, rt1-rt0)
		pv += v
		e.addGrad(e.protGrad, knots[j-1], scale*d0)
		e.addGrad(e.protGrad, knots[j], scale*d1)
		ht0, rt0, b0 = ht1, rt1, b1
	}
	return pv * scale
}

// premium is the dirty risky annuity: coupons paid on survival plus the
// accrual paid on default.
func (e *evaluator) premium(c market.ResolvedCds, stepin, effStart time.Time, scale float64) float64 {
	pv := 0.0
	for _, per := range c.Periods {
		if !stepin.Before(per.End) {
			continue
		}
		te := e.yf(per.EffEnd)
		v := per.YearFraction * e.disc.DiscountFactor(e.yf(per.Payment)) * math.Exp(-e.haz.RT(te))
		pv += v
		e.addGrad(e.annGrad, te, -v*scale)
	}

	start := c.AccrualStart
	if len(c.Periods) == 1 {
		start = effStart
	}
	sched := integrationPoints(e.yf(start), e.yf(c.ProtectionEnd), e.rTime, e.hTime)
	for _, per := range c.Periods {
		pv += e.accrualOnDefault(per, effStart, sched, scale)
	}
	return pv * scale
}

func (e *evaluator) accrualOnDefault(per market.CdsPeriod, effStart time.Time, sched []float64, scale float64) float64 {
	start := utils.MaxDate(per.EffStart, effStart)
	if !start.Before(per.EffEnd) {
		return 0
	}
	knots := truncateInclusive(e.yf(start), e.yf(per.EffEnd), sched)
	// accrual per year of the period, on ACT/365F
	ratio := per.YearFraction / utils.Act365(per.Start, per.End)
	accStart := e.yf(per.EffStart)

	ht0, rt0, b0 := e.node(knots[0])
	s0 := knots[0] - accStart + e.p.omega
	pv := 0.0
	for j := 1; j < len(knots); j++ {
		ht1, rt1, b1 := e.node(knots[j])
		s1 := knots[j] - accStart + e.p.omega
		v, d0, d1 := e.p.accrualSegment(b0, b1, ht1-ht0, rt1-rt0, knots[j]-knots[j-1], s0, s1)
		pv += v
		e.addGrad(e.annGrad, knots[j-1], ratio*scale*d0)
		e.addGrad(e.annGrad, knots[j], ratio*scale*d1)
		s0 = s1
		ht0, rt0, b0 = ht1, rt1, b1
	}
	return ratio * pv
}
