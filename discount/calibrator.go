// Package discount bootstraps ISDA zero-rate curves from deposit and swap
// quotes and computes the analytic sensitivity of the calibrated rates to
// those quotes.
package discount

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math"
	"time"

	"github.com/meenmo/isdacurve/config"
	"github.com/meenmo/isdacurve/curve"
	"github.com/meenmo/isdacurve/market"
	"github.com/meenmo/isdacurve/solver"
	"github.com/meenmo/isdacurve/utils"
)

// ErrInvalidQuote is returned for a quote the instrument cannot be priced at.
var ErrInvalidQuote = errors.New("invalid quote")

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

// Calibrator builds discount curves. It holds no per-call state and can be
// shared between goroutines.
type Calibrator struct {
	cfg    config.Config
	logger *slog.Logger
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

// NewCalibrator validates cfg and returns a calibrator.
func NewCalibrator(cfg config.Config, opts ...Option) (*Calibrator, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	c := &Calibrator{cfg: cfg, logger: slog.New(slog.NewTextHandler(io.Discard, nil))}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// Request describes one discount curve calibration. Instruments are
// resolved from the quote snapshot date; the curve is returned relative to
// Valuation, which defaults to the snapshot date.
type Request struct {
	Name      string
	Nodes     []market.RateNode
	Quotes    market.QuoteSet
	Valuation time.Time
}

func (r Request) valuation() time.Time {
	if r.Valuation.IsZero() {
		return utils.Normalize(r.Quotes.Snapshot())
	}
	return utils.Normalize(r.Valuation)
}

// NodeReport is the per-node outcome of a calibration.
type NodeReport struct {
	Label   string
	QuoteID market.QuoteID
	Kind    market.NodeKind
	Pillar  time.Time
	// Time is ACT/365F from spot to the pillar.
	Time       float64
	Quote      float64
	Rate       float64
	Iterations int
	LowRate    bool
}

// Result is a calibrated curve with the intermediate objects behind it.
type Result struct {
	// Curve is relative to the valuation date and carries the Jacobian
	// against the quotes in request order.
	Curve *curve.ZeroRateCurve
	// Unshifted is the curve relative to the spot date, one knot per node.
	Unshifted *curve.ZeroRateCurve
	Valuation time.Time
	Nodes     market.OrderedRateNodes
	// Quotes are in node order.
	Quotes []float64
	Report []NodeReport
}

// SpotDiscountFactors wraps the unshifted curve, anchored at spot.
func (r Result) SpotDiscountFactors() curve.DiscountFactors {
	return curve.NewDiscountFactors(r.Nodes.Spot, r.Unshifted)
}

// DiscountFactors wraps the shifted curve, anchored at the valuation date.
func (r Result) DiscountFactors() curve.DiscountFactors {
	return curve.NewDiscountFactors(r.Valuation, r.Curve)
}

// Calibrate returns the curve relative to the valuation date.
func (c *Calibrator) Calibrate(req Request) (*curve.ZeroRateCurve, error) {
	res, err := c.CalibrateDetailed(req)
	if err != nil {
		return nil, err
	}
	return res.Curve, nil
}

// CalibrateDetailed bootstraps the curve node by node and attaches the
// analytic Jacobian. Node definitions are checked before any solve.
func (c *Calibrator) CalibrateDetailed(req Request) (Result, error) {
	ordered, err := market.OrderRateNodes(req.Nodes, req.Quotes.Snapshot())
	if err != nil {
		return Result{}, fmt.Errorf("calibrate %s: %w", req.Name, err)
	}
	quotes := make([]float64, len(ordered.Nodes))
	for pos, n := range ordered.Nodes {
		q, err := req.Quotes.Value(n.Node.QuoteID)
		if err != nil {
			return Result{}, c.nodeError(req, ordered, pos, err)
		}
		quotes[pos] = q
	}

	b, err := newBootstrap(req.Name, ordered, quotes)
	if err != nil {
		return Result{}, fmt.Errorf("calibrate %s: %w", req.Name, err)
	}
	report := make([]NodeReport, len(quotes))
	for pos, n := range ordered.Nodes {
		rep, err := c.solveNode(b, pos)
		if err != nil {
			return Result{}, c.nodeError(req, ordered, pos, err)
		}
		rep.Label, rep.QuoteID, rep.Kind, rep.Pillar = n.Node.Label, n.Node.QuoteID, n.Node.Kind, n.Pillar
		report[pos] = rep
		c.logger.Debug("solved discount node",
			"curve", req.Name, "index", pos, "label", n.Node.Label, "time", rep.Time,
			"rate", rep.Rate, "iterations", rep.Iterations, "low_rate", rep.LowRate)
	}

	jac := b.jacobian()
	unshifted, err := b.curve.WithJacobian(toRequestOrder(jac, ordered.Index))
	if err != nil {
		return Result{}, fmt.Errorf("calibrate %s: %w", req.Name, err)
	}
	valuation := req.valuation()
	shifted, err := unshifted.Shift(utils.Act365(ordered.Spot, valuation))
	if err != nil {
		return Result{}, fmt.Errorf("calibrate %s: %w", req.Name, err)
	}
	c.logger.Info("calibrated discount curve",
		"curve", req.Name, "nodes", len(quotes), "knots", shifted.ParameterCount(),
		"spot", utils.FormatDate(ordered.Spot), "valuation", utils.FormatDate(valuation))

	return Result{
		Curve:     shifted,
		Unshifted: unshifted,
		Valuation: valuation,
		Nodes:     ordered,
		Quotes:    quotes,
		Report:    report,
	}, nil
}

func (c *Calibrator) nodeError(req Request, o market.OrderedRateNodes, pos int, err error) error {
	n := o.Nodes[pos].Node
	return fmt.Errorf("calibrate %s: %w", req.Name,
		&NodeError{Index: o.Index[pos], Label: n.Label, QuoteID: n.QuoteID, Err: err})
}

// solveNode fixes knot pos of b.curve. Deposits are closed form; swaps are
// root-found with every earlier knot held fixed.
func (c *Calibrator) solveNode(b *bootstrap, pos int) (NodeReport, error) {
	q := b.quotes[pos]
	t := b.times[pos]
	rep := NodeReport{Time: t, Quote: q}

	if b.nodes[pos].Node.Kind == market.KindTermDeposit {
		x := q * b.nodes[pos].YearFraction
		if !(x > -1) {
			return rep, fmt.Errorf("%w: deposit growth factor %g", ErrInvalidQuote, 1+x)
		}
		rep.Rate = math.Log1p(x) / t
		b.curve = b.curve.WithRate(pos, rep.Rate)
		return rep, nil
	}

	leg := b.legs[pos]
	f := func(x float64) float64 {
		return leg.pv(b.curve.WithRate(pos, x), q)
	}
	lo, hi := 0.8*q, 1.25*q
	if math.Abs(q) < c.cfg.LowRateThreshold {
		// 0.8q and 1.25q collapse for tiny quotes; start from a Newton step
		// off the previous knot instead.
		rep.LowRate = true
		x0 := 0.0
		if pos > 0 {
			x0 = b.curve.Rate(pos - 1)
		}
		cur := b.curve.WithRate(pos, x0)
		d := leg.rateSensitivity(cur, q)[pos]
		guess := x0
		if d != 0 {
			guess = x0 - leg.pv(cur, q)/d
		}
		lo, hi = guess-c.cfg.LowRateBracketWidth, guess+c.cfg.LowRateBracketWidth
	}
	res, err := solver.Solve(f, lo, hi, math.Inf(-1), math.Inf(1), c.cfg.SolverSettings())
	if err != nil {
		return rep, err
	}
	rep.Rate, rep.Iterations = res.Root, res.Iterations
	b.curve = b.curve.WithRate(pos, res.Root)
	return rep, nil
}
