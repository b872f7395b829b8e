// Package runner turns curve definitions into calibrations and renders
// their results.
package runner

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/meenmo/isdacurve/cmd/isdacurve/internal/definition"
	"github.com/meenmo/isdacurve/cmd/isdacurve/internal/metrics"
	"github.com/meenmo/isdacurve/config"
	"github.com/meenmo/isdacurve/credit"
	"github.com/meenmo/isdacurve/discount"
	"github.com/meenmo/isdacurve/provider"
	"github.com/meenmo/isdacurve/utils"
)

// Runner calibrates definitions with one configuration. It is safe for
// concurrent use.
type Runner struct {
	cfg     config.Config
	logger  *slog.Logger
	metrics *metrics.Recorder
	runID   uuid.UUID
}

// Option configures a Runner.
type Option func(*Runner)

// WithLogger sets the logger. Every record carries the run id.
func WithLogger(l *slog.Logger) Option {
	return func(r *Runner) {
		if l != nil {
			r.logger = l
		}
	}
}

// WithMetrics records every calibration on m.
func WithMetrics(m *metrics.Recorder) Option {
	return func(r *Runner) { r.metrics = m }
}

// WithRunID replaces the generated run id.
func WithRunID(id uuid.UUID) Option {
	return func(r *Runner) { r.runID = id }
}

// New validates cfg and returns a runner with a fresh run id.
func New(cfg config.Config, opts ...Option) (*Runner, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	r := &Runner{
		cfg:    cfg,
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
		runID:  uuid.New(),
	}
	for _, opt := range opts {
		opt(r)
	}
	r.logger = r.logger.With("run_id", r.runID.String())
	return r, nil
}

// RunID identifies the runner in logs and batch output.
func (r *Runner) RunID() uuid.UUID { return r.runID }

// Discount calibrates one discount curve document.
func (r *Runner) Discount(doc *definition.DiscountCurve) (DiscountOutput, error) {
	_, out, err := r.discount(doc)
	return out, err
}

func (r *Runner) discount(doc *definition.DiscountCurve) (discount.Result, DiscountOutput, error) {
	start := time.Now()
	res, err := r.calibrateDiscount(doc)
	if err != nil {
		r.metrics.Failure(string(definition.KindDiscount), time.Since(start))
		return discount.Result{}, DiscountOutput{}, err
	}
	out, err := renderDiscount(doc, res)
	if err != nil {
		r.metrics.Failure(string(definition.KindDiscount), time.Since(start))
		return discount.Result{}, DiscountOutput{}, err
	}
	iters := make([]int, len(res.Report))
	for i, rep := range res.Report {
		iters[i] = rep.Iterations
	}
	r.metrics.Calibration(string(definition.KindDiscount), doc.Name, time.Since(start), iters)
	return res, out, nil
}

func (r *Runner) calibrateDiscount(doc *definition.DiscountCurve) (discount.Result, error) {
	if err := doc.RegisterCalendars(); err != nil {
		return discount.Result{}, err
	}
	req, err := doc.Request()
	if err != nil {
		return discount.Result{}, fmt.Errorf("%s: %w", doc.Name, err)
	}
	cal, err := discount.NewCalibrator(r.cfg, discount.WithLogger(r.logger))
	if err != nil {
		return discount.Result{}, err
	}
	return cal.CalibrateDetailed(req)
}

func renderDiscount(doc *definition.DiscountCurve, res discount.Result) (DiscountOutput, error) {
	c := res.Curve
	out := DiscountOutput{
		Kind:      string(definition.KindDiscount),
		Name:      doc.Name,
		Currency:  doc.Currency,
		Snapshot:  utils.FormatDate(doc.SnapshotDate()),
		Spot:      utils.FormatDate(res.Nodes.Spot),
		Valuation: utils.FormatDate(res.Valuation),
		Knots:     knots(c.Times(), c.Rates()),
		Nodes:     make([]RateNodeOutput, len(res.Report)),
		QuoteIDs:  make([]string, len(doc.Nodes)),
		Jacobian:  rows(c.Jacobian()),
	}
	spot := res.SpotDiscountFactors()
	for pos, rep := range res.Report {
		par, err := discount.ParRate(res.Nodes.Nodes[pos], spot)
		if err != nil {
			return DiscountOutput{}, err
		}
		out.Nodes[pos] = RateNodeOutput{
			Label:      rep.Label,
			QuoteID:    string(rep.QuoteID),
			Kind:       string(rep.Kind),
			Pillar:     utils.FormatDate(rep.Pillar),
			Time:       rep.Time,
			Quote:      rep.Quote,
			Rate:       rep.Rate,
			ParRate:    par,
			Iterations: rep.Iterations,
			LowRate:    rep.LowRate,
		}
	}
	for pos, i := range res.Nodes.Index {
		out.QuoteIDs[i] = string(res.Nodes.Nodes[pos].Node.QuoteID)
	}
	for _, t := range sampleTimes(doc.SampleTimes, c.Times()) {
		out.Samples = append(out.Samples, DiscountSample{Time: t, ZeroRate: c.ZeroRate(t), DiscountFactor: c.DiscountFactor(t)})
	}
	return out, nil
}

// Credit calibrates the discount curve of doc and then its credit curve.
func (r *Runner) Credit(doc *definition.CreditCurve) (CreditOutput, error) {
	if doc.Discount == nil {
		return CreditOutput{}, fmt.Errorf("%w: %s has no resolved discount curve", definition.ErrInvalidDefinition, doc.Name)
	}
	dres, dout, err := r.discount(doc.Discount)
	if err != nil {
		return CreditOutput{}, err
	}

	start := time.Now()
	res, p, cal, err := r.calibrateCredit(doc, dres)
	if err != nil {
		r.metrics.Failure(string(definition.KindCredit), time.Since(start))
		return CreditOutput{}, err
	}
	out, err := renderCredit(doc, dout, res, p, cal)
	if err != nil {
		r.metrics.Failure(string(definition.KindCredit), time.Since(start))
		return CreditOutput{}, err
	}
	iters := make([]int, len(res.Report))
	for i, rep := range res.Report {
		iters[i] = rep.Iterations
	}
	r.metrics.Calibration(string(definition.KindCredit), doc.Name, time.Since(start), iters)
	return out, nil
}

func (r *Runner) calibrateCredit(doc *definition.CreditCurve, dres discount.Result) (credit.Result, provider.CreditRatesProvider, *credit.Calibrator, error) {
	key := doc.Key()
	rr, err := provider.NewConstantRecoveryRates(key.Entity, dres.Valuation, doc.RecoveryRate)
	if err != nil {
		return credit.Result{}, provider.CreditRatesProvider{}, nil, err
	}
	p, err := provider.NewBuilder(dres.Valuation).
		DiscountCurve(key.Currency, dres.DiscountFactors()).
		RecoveryRates(rr).
		Build()
	if err != nil {
		return credit.Result{}, provider.CreditRatesProvider{}, nil, err
	}

	opts := []credit.Option{credit.WithLogger(r.logger)}
	formula, err := doc.AccrualFormula()
	if err != nil {
		return credit.Result{}, provider.CreditRatesProvider{}, nil, err
	}
	if formula != "" {
		opts = append(opts, credit.WithFormula(formula))
	}
	cal, err := credit.NewCalibrator(r.cfg, opts...)
	if err != nil {
		return credit.Result{}, provider.CreditRatesProvider{}, nil, err
	}
	nodes, quotes, err := doc.CdsNodes()
	if err != nil {
		return credit.Result{}, provider.CreditRatesProvider{}, nil, fmt.Errorf("%s: %w", doc.Name, err)
	}
	p, res, err := cal.CalibrateInto(p, key, nodes, quotes)
	if err != nil {
		return credit.Result{}, provider.CreditRatesProvider{}, nil, err
	}
	return res, p, cal, nil
}

func renderCredit(doc *definition.CreditCurve, dout DiscountOutput, res credit.Result, p provider.CreditRatesProvider, cal *credit.Calibrator) (CreditOutput, error) {
	key := doc.Key()
	m, err := p.CdsCurves(key)
	if err != nil {
		return CreditOutput{}, err
	}
	par, err := cal.ParSpreads(res, m.Discount, m.RecoveryRate)
	if err != nil {
		return CreditOutput{}, err
	}
	sc := m.Survival.Curve()
	out := CreditOutput{
		Kind:         string(definition.KindCredit),
		Name:         doc.Name,
		Entity:       doc.Entity,
		Currency:     doc.Currency,
		Valuation:    utils.FormatDate(res.Valuation),
		Formula:      string(cal.Formula()),
		RecoveryRate: m.RecoveryRate,
		Discount:     dout,
		Knots:        knots(sc.Times(), sc.HazardRates()),
		Nodes:        make([]CdsNodeOutput, len(res.Report)),
		QuoteIDs:     make([]string, len(doc.Nodes)),
		Jacobian:     rows(sc.Jacobian()),
	}
	for pos, rep := range res.Report {
		out.Nodes[pos] = CdsNodeOutput{
			Label:           rep.Label,
			QuoteID:         string(rep.QuoteID),
			QuoteConvention: string(rep.QuoteConvention),
			Maturity:        utils.FormatDate(rep.Maturity),
			Time:            rep.Time,
			Quote:           rep.Quote,
			Coupon:          rep.Coupon,
			Upfront:         rep.Upfront,
			Hazard:          rep.Hazard,
			ParSpread:       par[pos],
			Iterations:      rep.Iterations,
		}
	}
	for pos, i := range res.Nodes.Index {
		out.QuoteIDs[i] = string(res.Nodes.Nodes[pos].Node.QuoteID)
	}
	for _, t := range sampleTimes(doc.SampleTimes, sc.Times()) {
		out.Samples = append(out.Samples, CreditSample{Time: t, HazardRate: sc.HazardRate(t), SurvivalProbability: sc.SurvivalProbability(t)})
	}
	return out, nil
}

// Document calibrates whichever curve doc describes.
func (r *Runner) Document(doc definition.Document) (DocumentOutput, error) {
	out := DocumentOutput{Path: doc.Path}
	switch {
	case doc.Credit != nil:
		c, err := r.Credit(doc.Credit)
		if err != nil {
			return DocumentOutput{}, err
		}
		out.Credit = &c
	case doc.Discount != nil:
		d, err := r.Discount(doc.Discount)
		if err != nil {
			return DocumentOutput{}, err
		}
		out.Discount = &d
	default:
		return DocumentOutput{}, fmt.Errorf("%w: empty document %s", definition.ErrInvalidDefinition, doc.Path)
	}
	return out, nil
}

// Batch calibrates docs concurrently, at most parallel at a time (no limit
// when parallel < 1). Calendars of all documents are registered first, in
// order. The first failure cancels the documents not yet started and is
// returned.
func (r *Runner) Batch(ctx context.Context, docs []definition.Document, parallel int) (BatchOutput, error) {
	if err := definition.RegisterCalendars(docs); err != nil {
		r.logger.Error("batch failed", "documents", len(docs), "error", err)
		return BatchOutput{}, err
	}
	g, ctx := errgroup.WithContext(ctx)
	if parallel > 0 {
		g.SetLimit(parallel)
	}
	results := make([]DocumentOutput, len(docs))
	for i, doc := range docs {
		i, doc := i, doc
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			out, err := r.Document(doc)
			if err != nil {
				return fmt.Errorf("%s: %w", label(doc), err)
			}
			results[i] = out
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		r.logger.Error("batch failed", "documents", len(docs), "error", err)
		return BatchOutput{}, err
	}
	r.logger.Info("batch calibrated", "documents", len(docs), "parallel", parallel)
	return BatchOutput{RunID: r.runID.String(), Results: results}, nil
}

func label(doc definition.Document) string {
	if doc.Path != "" {
		return doc.Path
	}
	return doc.Name()
}

// sampleTimes falls back to the knot times when a document names none.
func sampleTimes(requested, knots []float64) []float64 {
	if len(requested) > 0 {
		return requested
	}
	return knots
}
