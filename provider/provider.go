// Package provider bundles calibrated curves for pricing: discount curves
// per currency, recovery rates per legal entity and credit curves per
// legal entity and currency.
package provider

import (
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/meenmo/isdacurve/cds"
	"github.com/meenmo/isdacurve/curve"
	"github.com/meenmo/isdacurve/utils"
)

var (
	// ErrMissingCurve is returned when a lookup has no curve.
	ErrMissingCurve = errors.New("missing curve")
	// ErrValuationMismatch is returned when a curve is anchored at another date.
	ErrValuationMismatch = errors.New("valuation date mismatch")
	// ErrInvalidRecovery is returned for a recovery rate outside [0, 1).
	ErrInvalidRecovery = errors.New("invalid recovery rate")
)

// Currency is an ISO currency code.
type Currency string

// LegalEntityID identifies a reference entity.
type LegalEntityID string

// CreditKey identifies one credit curve.
type CreditKey struct {
	Entity   LegalEntityID
	Currency Currency
}

func (k CreditKey) String() string { return string(k.Entity) + "/" + string(k.Currency) }

// ConstantRecoveryRates is a flat recovery assumption for one entity.
type ConstantRecoveryRates struct {
	Entity    LegalEntityID
	Valuation time.Time
	Rate      float64
}

// NewConstantRecoveryRates validates rate.
func NewConstantRecoveryRates(entity LegalEntityID, valuation time.Time, rate float64) (ConstantRecoveryRates, error) {
	if !(rate >= 0 && rate < 1) {
		return ConstantRecoveryRates{}, fmt.Errorf("%w: %s %g", ErrInvalidRecovery, entity, rate)
	}
	return ConstantRecoveryRates{Entity: entity, Valuation: utils.Normalize(valuation), Rate: rate}, nil
}

// RecoveryRate is the same at every date.
func (r ConstantRecoveryRates) RecoveryRate(time.Time) float64 { return r.Rate }

// CreditRatesProvider is an immutable set of curves sharing one valuation
// date. Modifications return a new provider.
type CreditRatesProvider struct {
	valuation time.Time
	discount  map[Currency]curve.DiscountFactors
	recovery  map[LegalEntityID]ConstantRecoveryRates
	credit    map[CreditKey]curve.SurvivalProbabilities
}

// Builder accumulates curves for a CreditRatesProvider.
type Builder struct {
	p    CreditRatesProvider
	errs []error
}

// NewBuilder starts an empty provider at valuation.
func NewBuilder(valuation time.Time) *Builder {
	return &Builder{p: CreditRatesProvider{
		valuation: utils.Normalize(valuation),
		discount:  map[Currency]curve.DiscountFactors{},
		recovery:  map[LegalEntityID]ConstantRecoveryRates{},
		credit:    map[CreditKey]curve.SurvivalProbabilities{},
	}}
}

func (b *Builder) check(what string, d time.Time) {
	if !utils.Normalize(d).Equal(b.p.valuation) {
		b.errs = append(b.errs, fmt.Errorf("%w: %s valued %s, provider valued %s", ErrValuationMismatch,
			what, utils.FormatDate(d), utils.FormatDate(b.p.valuation)))
	}
}

// DiscountCurve sets the discount curve of ccy.
func (b *Builder) DiscountCurve(ccy Currency, dfs curve.DiscountFactors) *Builder {
	b.check("discount curve "+string(ccy), dfs.ValuationDate())
	b.p.discount[ccy] = dfs
	return b
}

// RecoveryRates sets the recovery assumption of an entity.
func (b *Builder) RecoveryRates(r ConstantRecoveryRates) *Builder {
	b.check("recovery rates "+string(r.Entity), r.Valuation)
	b.p.recovery[r.Entity] = r
	return b
}

// CreditCurve sets the credit curve of key.
func (b *Builder) CreditCurve(key CreditKey, sp curve.SurvivalProbabilities) *Builder {
	b.check("credit curve "+key.String(), sp.ValuationDate())
	b.p.credit[key] = sp
	return b
}

// Build returns the provider, or every date mismatch found.
func (b *Builder) Build() (CreditRatesProvider, error) {
	if len(b.errs) > 0 {
		return CreditRatesProvider{}, errors.Join(b.errs...)
	}
	return b.p.clone(), nil
}

// ToBuilder returns a builder seeded with a copy of p.
func (p CreditRatesProvider) ToBuilder() *Builder {
	return &Builder{p: p.clone()}
}

func (p CreditRatesProvider) clone() CreditRatesProvider {
	out := CreditRatesProvider{
		valuation: p.valuation,
		discount:  make(map[Currency]curve.DiscountFactors, len(p.discount)),
		recovery:  make(map[LegalEntityID]ConstantRecoveryRates, len(p.recovery)),
		credit:    make(map[CreditKey]curve.SurvivalProbabilities, len(p.credit)),
	}
	for k, v := range p.discount {
		out.discount[k] = v
	}
	for k, v := range p.recovery {
		out.recovery[k] = v
	}
	for k, v := range p.credit {
		out.credit[k] = v
	}
	return out
}

// WithCreditCurve returns a copy of p holding sp under key.
func (p CreditRatesProvider) WithCreditCurve(key CreditKey, sp curve.SurvivalProbabilities) (CreditRatesProvider, error) {
	return p.ToBuilder().CreditCurve(key, sp).Build()
}

// ValuationDate returns the common valuation date.
func (p CreditRatesProvider) ValuationDate() time.Time { return p.valuation }

// DiscountFactors looks up the discount curve of ccy.
func (p CreditRatesProvider) DiscountFactors(ccy Currency) (curve.DiscountFactors, error) {
	d, ok := p.discount[ccy]
	if !ok {
		return curve.DiscountFactors{}, fmt.Errorf("%w: discount curve for %s", ErrMissingCurve, ccy)
	}
	return d, nil
}

// RecoveryRates looks up the recovery assumption of entity.
func (p CreditRatesProvider) RecoveryRates(entity LegalEntityID) (ConstantRecoveryRates, error) {
	r, ok := p.recovery[entity]
	if !ok {
		return ConstantRecoveryRates{}, fmt.Errorf("%w: recovery rates for %s", ErrMissingCurve, entity)
	}
	return r, nil
}

// SurvivalProbabilities looks up the credit curve of key.
func (p CreditRatesProvider) SurvivalProbabilities(key CreditKey) (curve.SurvivalProbabilities, error) {
	s, ok := p.credit[key]
	if !ok {
		return curve.SurvivalProbabilities{}, fmt.Errorf("%w: credit curve for %s", ErrMissingCurve, key)
	}
	return s, nil
}

// CdsCurves collects the curves a CDS on key is priced with.
func (p CreditRatesProvider) CdsCurves(key CreditKey) (cds.Curves, error) {
	d, err := p.DiscountFactors(key.Currency)
	if err != nil {
		return cds.Curves{}, err
	}
	r, err := p.RecoveryRates(key.Entity)
	if err != nil {
		return cds.Curves{}, err
	}
	s, err := p.SurvivalProbabilities(key)
	if err != nil {
		return cds.Curves{}, err
	}
	return cds.Curves{Discount: d, Survival: s, RecoveryRate: r.RecoveryRate(p.valuation)}, nil
}

// Currencies lists the currencies with a discount curve, sorted.
func (p CreditRatesProvider) Currencies() []Currency {
	out := make([]Currency, 0, len(p.discount))
	for c := range p.discount {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// CreditKeys lists the credit curve keys, sorted.
func (p CreditRatesProvider) CreditKeys() []CreditKey {
	out := make([]CreditKey, 0, len(p.credit))
	for k := range p.credit {
		out = append(out, k)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].String() < out[j].String() })
	return out
}

// Equal compares valuation dates and every curve.
func (p CreditRatesProvider) Equal(o CreditRatesProvider) bool {
	if !p.valuation.Equal(o.valuation) ||
		len(p.discount) != len(o.discount) || len(p.recovery) != len(o.recovery) || len(p.credit) != len(o.credit) {
		return false
	}
	for k, v := range p.discount {
		w, ok := o.discount[k]
		if !ok || !v.ValuationDate().Equal(w.ValuationDate()) || !v.Curve().Equal(w.Curve()) {
			return false
		}
	}
	for k, v := range p.recovery {
		w, ok := o.recovery[k]
		if !ok || v.Rate != w.Rate || !v.Valuation.Equal(w.Valuation) {
			return false
		}
	}
	for k, v := range p.credit {
		w, ok := o.credit[k]
		if !ok || !v.ValuationDate().Equal(w.ValuationDate()) || !v.Curve().Equal(w.Curve()) {
			return false
		}
	}
	return true
}
