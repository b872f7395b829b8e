// Package credit bootstraps ISDA credit curves, piecewise hazard rates
// linear in h*t, from CDS quotes given a discount curve and a constant
// recovery rate.
package credit

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math"
	"time"

	"github.com/meenmo/isdacurve/cds"
	"github.com/meenmo/isdacurve/config"
	"github.com/meenmo/isdacurve/curve"
	"github.com/meenmo/isdacurve/market"
	"github.com/meenmo/isdacurve/provider"
	"github.com/meenmo/isdacurve/solver"
	"github.com/meenmo/isdacurve/utils"
)

// ErrInvalidRequest is returned for missing or inconsistent calibration inputs.
var ErrInvalidRequest = errors.New("invalid credit calibration request")

// NodeError ties a calibration failure to the node that caused it.
type NodeError struct {
	// Index is the node position in the request.
	Index   int
	Label   string
	QuoteID market.QuoteID
	Err     error
}

func (e *NodeError) Error() string {
	return fmt.Sprintf("node %d (%s, quote %s): %v", e.Index, e.Label, e.QuoteID, e.Err)
}

func (e *NodeError) Unwrap() error { return e.Err }

// Calibrator builds credit curves with one accrual-on-default formula.
type Calibrator struct {
	cfg     config.Config
	formula cds.AccrualOnDefaultFormula
	pricer  cds.Pricer
	logger  *slog.Logger
}

// Option configures a Calibrator.
type Option func(*Calibrator)

// WithLogger sets the logger used for per-node and per-curve records.
func WithLogger(l *slog.Logger) Option {
	return func(c *Calibrator) {
		if l != nil {
			c.logger = l
		}
	}
}

// WithFormula overrides the accrual-on-default formula named in the config.
func WithFormula(f cds.AccrualOnDefaultFormula) Option {
	return func(c *Calibrator) { c.formula = f }
}

// NewCalibrator validates cfg and returns a calibrator.
func NewCalibrator(cfg config.Config, opts ...Option) (*Calibrator, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	c := &Calibrator{
		cfg:     cfg,
		formula: cds.AccrualOnDefaultFormula(cfg.AccrualOnDefault),
		logger:  slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(c)
	}
	p, err := cds.NewPricer(c.formula, cfg.SmallExponent)
	if err != nil {
		return nil, err
	}
	c.pricer = p
	c.formula = p.Formula()
	return c, nil
}

// Formula returns the accrual-on-default formula in use.
func (c *Calibrator) Formula() cds.AccrualOnDefaultFormula { return c.formula }

// Pricer returns the CDS pricer the calibrator reprices nodes with.
func (c *Calibrator) Pricer() cds.Pricer { return c.pricer }

// Request describes one credit curve calibration. The curve is anchored at
// the discount curve's valuation date.
type Request struct {
	Name         string
	Nodes        []market.CdsNode
	Quotes       market.QuoteSet
	Discount     curve.DiscountFactors
	RecoveryRate float64
}

// NodeReport is the per-node outcome of a calibration.
type NodeReport struct {
	Label           string
	QuoteID         market.QuoteID
	QuoteConvention market.CdsQuoteConvention
	Maturity        time.Time
	// Time is ACT/365F from valuation to the protection end.
	Time  float64
	Quote float64
	// Coupon and Upfront are what the node is repriced with.
	Coupon     float64
	Upfront    float64
	Hazard     float64
	Iterations int
}

// Result is a calibrated curve with the intermediate objects behind it.
type Result struct {
	// Curve carries the Jacobian against the quotes in request order.
	Curve     *curve.SurvivalCurve
	Valuation time.Time
	Nodes     market.OrderedCdsNodes
	// Quotes are in node order.
	Quotes []float64
	Report []NodeReport
}

// SurvivalProbabilities wraps the curve, anchored at the valuation date.
func (r Result) SurvivalProbabilities() curve.SurvivalProbabilities {
	return curve.NewSurvivalProbabilities(r.Valuation, r.Curve)
}

// Calibrate returns the calibrated survival curve.
func (c *Calibrator) Calibrate(req Request) (*curve.SurvivalCurve, error) {
	res, err := c.CalibrateDetailed(req)
	if err != nil {
		return nil, err
	}
	return res.Curve, nil
}

// CalibrateInto calibrates the credit curve of key from the discount curve
// and recovery rates held by p and returns a copy of p holding it.
func (c *Calibrator) CalibrateInto(p provider.CreditRatesProvider, key provider.CreditKey, nodes []market.CdsNode, quotes market.QuoteSet) (provider.CreditRatesProvider, Result, error) {
	dfs, err := p.DiscountFactors(key.Currency)
	if err != nil {
		return provider.CreditRatesProvider{}, Result{}, err
	}
	rr, err := p.RecoveryRates(key.Entity)
	if err != nil {
		return provider.CreditRatesProvider{}, Result{}, err
	}
	res, err := c.CalibrateDetailed(Request{
		Name:         key.String(),
		Nodes:        nodes,
		Quotes:       quotes,
		Discount:     dfs,
		RecoveryRate: rr.RecoveryRate(p.ValuationDate()),
	})
	if err != nil {
		return provider.CreditRatesProvider{}, Result{}, err
	}
	out, err := p.WithCreditCurve(key, res.SurvivalProbabilities())
	if err != nil {
		return provider.CreditRatesProvider{}, Result{}, err
	}
	return out, res, nil
}

// CalibrateDetailed bootstraps the hazard rates node by node and attaches
// the analytic Jacobian. Node definitions are checked before any solve.
func (c *Calibrator) CalibrateDetailed(req Request) (Result, error) {
	if req.Discount.Curve() == nil {
		return Result{}, fmt.Errorf("%w: %s has no discount curve", ErrInvalidRequest, req.Name)
	}
	if !(req.RecoveryRate >= 0 && req.RecoveryRate < 1) {
		return Result{}, fmt.Errorf("%w: %s recovery rate %g", ErrInvalidRequest, req.Name, req.RecoveryRate)
	}
	valuation := req.Discount.ValuationDate()
	ordered, err := market.OrderCdsNodes(req.Nodes, valuation)
	if err != nil {
		return Result{}, fmt.Errorf("calibrate %s: %w", req.Name, err)
	}
	n := len(ordered.Nodes)
	quotes := make([]float64, n)
	for pos, node := range ordered.Nodes {
		q, err := req.Quotes.Value(node.Node.QuoteID)
		if err != nil {
			return Result{}, c.nodeError(req, ordered, pos, err)
		}
		quotes[pos] = q
	}

	b := &bootstrap{
		pricer:    c.pricer,
		valuation: valuation,
		discount:  req.Discount,
		recovery:  req.RecoveryRate,
		nodes:     ordered.Nodes,
		times:     ordered.Times,
		quotes:    quotes,
		targets:   make([]target, n),
	}
	guesses := make([]float64, n)
	for pos := range ordered.Nodes {
		tg, err := b.target(pos, c.solveFlat)
		if err != nil {
			return Result{}, c.nodeError(req, ordered, pos, err)
		}
		b.targets[pos] = tg
		guesses[pos] = c.guess(tg, ordered.Times[pos], req.RecoveryRate)
	}
	b.hazard, err = curve.NewZeroRateCurve(req.Name, ordered.Times, guesses)
	if err != nil {
		return Result{}, fmt.Errorf("calibrate %s: %w", req.Name, err)
	}

	report := make([]NodeReport, n)
	for pos, node := range ordered.Nodes {
		res, err := c.solve(b, pos, guesses[pos])
		if err != nil {
			return Result{}, c.nodeError(req, ordered, pos, err)
		}
		tg := b.targets[pos]
		report[pos] = NodeReport{
			Label:           node.Node.Label,
			QuoteID:         node.Node.QuoteID,
			QuoteConvention: node.Node.QuoteConvention,
			Maturity:        node.ProtectionEnd,
			Time:            ordered.Times[pos],
			Quote:           quotes[pos],
			Coupon:          tg.coupon,
			Upfront:         tg.upfront,
			Hazard:          res.Root,
			Iterations:      res.Iterations,
		}
		c.logger.Debug("solved credit node",
			"curve", req.Name, "index", pos, "label", node.Node.Label, "time", ordered.Times[pos],
			"hazard", res.Root, "iterations", res.Iterations, "quote_convention", node.Node.QuoteConvention)
	}

	jac, err := b.jacobian()
	if err != nil {
		return Result{}, fmt.Errorf("calibrate %s: %w", req.Name, err)
	}
	sc, err := curve.SurvivalFromHazard(b.hazard).WithJacobian(permuteColumns(jac, ordered.Index))
	if err != nil {
		return Result{}, fmt.Errorf("calibrate %s: %w", req.Name, err)
	}
	c.logger.Info("calibrated credit curve",
		"curve", req.Name, "nodes", n, "formula", c.formula,
		"valuation", utils.FormatDate(valuation), "recovery", req.RecoveryRate)

	return Result{Curve: sc, Valuation: valuation, Nodes: ordered, Quotes: quotes, Report: report}, nil
}

// ParSpreads reprices every calibrated node at par against res.
func (c *Calibrator) ParSpreads(res Result, discount curve.DiscountFactors, recovery float64) ([]float64, error) {
	m := cds.Curves{Discount: discount, Survival: res.SurvivalProbabilities(), RecoveryRate: recovery}
	out := make([]float64, len(res.Nodes.Nodes))
	for i, node := range res.Nodes.Nodes {
		s, err := c.pricer.ParSpread(node, m)
		if err != nil {
			return nil, err
		}
		out[i] = s
	}
	return out, nil
}

func (c *Calibrator) nodeError(req Request, o market.OrderedCdsNodes, pos int, err error) error {
	n := o.Nodes[pos].Node
	return fmt.Errorf("calibrate %s: %w", req.Name,
		&NodeError{Index: o.Index[pos], Label: n.Label, QuoteID: n.QuoteID, Err: err})
}

// guess is the credit triangle hazard rate, floored at MinHazardGuess.
func (c *Calibrator) guess(tg target, t, recovery float64) float64 {
	g := (tg.coupon + tg.upfront/t) / (1 - recovery)
	if !(g > 0) {
		return c.cfg.MinHazardGuess
	}
	return g
}

// solve fixes knot pos of b.hazard so the node's clean price matches its
// upfront, with every earlier knot held fixed.
func (c *Calibrator) solve(b *bootstrap, pos int, guess float64) (solver.Result, error) {
	tg := b.targets[pos]
	node := b.nodes[pos]
	var perr error
	f := func(h float64) float64 {
		p, err := b.pricer.Price(node, b.curves(b.hazard.WithRate(pos, h)), tg.coupon, cds.Clean)
		if err != nil {
			perr = err
			return math.NaN()
		}
		return p - tg.upfront
	}
	res, err := solver.Solve(f, 0.8*guess, 1.25*guess, 0, math.Inf(1), c.cfg.SolverSettings())
	if perr != nil {
		return res, perr
	}
	if err != nil {
		return res, err
	}
	b.hazard = b.hazard.WithRate(pos, res.Root)
	return res, nil
}

// solveFlat calibrates a single-knot curve to node pos quoted at spread,
// returning the hazard rate and d(hazard)/d(spread).
func (c *Calibrator) solveFlat(b *bootstrap, pos int, spread float64) (*curve.ZeroRateCurve, float64, error) {
	t := b.times[pos]
	flat, err := curve.NewZeroRateCurve("flat", []float64{t}, []float64{0})
	if err != nil {
		return nil, 0, err
	}
	fb := &bootstrap{
		pricer:    b.pricer,
		valuation: b.valuation,
		discount:  b.discount,
		recovery:  b.recovery,
		nodes:     []market.ResolvedCds{b.nodes[pos]},
		times:     []float64{t},
		targets:   []target{{coupon: spread}},
		hazard:    flat,
	}
	if _, err := c.solve(fb, 0, c.guess(fb.targets[0], t, b.recovery)); err != nil {
		return nil, 0, fmt.Errorf("flat curve at quoted spread %g: %w", spread, err)
	}
	sens, err := b.pricer.PriceSensitivity(b.nodes[pos], fb.curves(fb.hazard), spread)
	if err != nil {
		return nil, 0, err
	}
	if sens.Gradient[0] == 0 {
		return nil, 0, fmt.Errorf("%w: flat curve price is insensitive to hazard", solver.ErrNoConvergence)
	}
	return fb.hazard, sens.RiskyAnnuity / sens.Gradient[0], nil
}
