// Package market describes calibration instruments: node templates, their
// conventions, quote sets, the resolution of nodes into dated cash flows,
// and the ordering rules both bootstrappers rely on.
package market

import (
	"errors"
	"fmt"
	"time"

	"github.com/meenmo/isdacurve/calendar"
	"github.com/meenmo/isdacurve/utils"
)

var (
	// ErrNoNodes is returned when a calibration is requested without nodes.
	ErrNoNodes = errors.New("no curve nodes")
	// ErrInvalidNode is returned for a node that cannot be resolved.
	ErrInvalidNode = errors.New("invalid curve node")
	// ErrDuplicatePillar is returned when two nodes share a pillar date.
	ErrDuplicatePillar = errors.New("duplicate pillar date")
	// ErrUnorderedNodes is returned when nodes cannot be put in a strictly
	// increasing order, e.g. a deposit maturing after a swap.
	ErrUnorderedNodes = errors.New("curve nodes out of order")
	// ErrMissingQuote is returned when a node's quote is absent.
	ErrMissingQuote = errors.New("missing market quote")
)

// NodeKind tags the instrument a rate node stands for.
type NodeKind string

const (
	KindTermDeposit NodeKind = "TERM_DEPOSIT"
	KindSwap        NodeKind = "SWAP"
)

// RateNode is one discount-curve calibration instrument: a deposit or a
// fixed-vs-floating swap of the given tenor, quoted by QuoteID.
type RateNode struct {
	Label   string
	Kind    NodeKind
	QuoteID QuoteID
	Tenor   Tenor
	Deposit TermDepositConvention
	Swap    SwapConvention
}

// DepositNode builds a term deposit node.
func DepositNode(label string, quote QuoteID, tenor Tenor, conv TermDepositConvention) RateNode {
	return RateNode{Label: label, Kind: KindTermDeposit, QuoteID: quote, Tenor: tenor, Deposit: conv}
}

// SwapNode builds a swap node.
func SwapNode(label string, quote QuoteID, tenor Tenor, conv SwapConvention) RateNode {
	return RateNode{Label: label, Kind: KindSwap, QuoteID: quote, Tenor: tenor, Swap: conv}
}

// Coupon is one fixed-leg payment.
type Coupon struct {
	Start, End   time.Time
	Payment      time.Time
	YearFraction float64
}

// ResolvedRateNode is a rate node turned into dates and year fractions.
type ResolvedRateNode struct {
	Node RateNode
	Spot time.Time
	// Pillar is the deposit end or the last swap payment date.
	Pillar time.Time
	// YearFraction is the deposit accrual; zero for swaps.
	YearFraction float64
	// Coupons is the swap fixed leg; nil for deposits.
	Coupons []Coupon
}

// Resolve generates the node's dates from the quote snapshot date.
func (n RateNode) Resolve(snap time.Time) (ResolvedRateNode, error) {
	if n.Tenor.Months <= 0 {
		return ResolvedRateNode{}, fmt.Errorf("%w: %s has no tenor", ErrInvalidNode, n.Label)
	}
	snap = utils.Normalize(snap)
	switch n.Kind {
	case KindTermDeposit:
		return n.resolveDeposit(snap)
	case KindSwap:
		return n.resolveSwap(snap)
	}
	return ResolvedRateNode{}, fmt.Errorf("%w: %s has unknown kind %q", ErrInvalidNode, n.Label, n.Kind)
}

func (n RateNode) resolveDeposit(snap time.Time) (ResolvedRateNode, error) {
	c := n.Deposit
	if err := c.Validate(); err != nil {
		return ResolvedRateNode{}, fmt.Errorf("%s: %w", n.Label, err)
	}
	spot := calendar.AddBusinessDays(c.Calendar, snap, c.SpotDays)
	end, err := calendar.Adjust(c.Calendar, n.Tenor.AddTo(spot), c.BusinessDay)
	if err != nil {
		return ResolvedRateNode{}, err
	}
	yf, err := utils.YearFraction(spot, end, c.DayCount)
	if err != nil {
		return ResolvedRateNode{}, err
	}
	return ResolvedRateNode{Node: n, Spot: spot, Pillar: end, YearFraction: yf}, nil
}

func (n RateNode) resolveSwap(snap time.Time) (ResolvedRateNode, error) {
	c := n.Swap
	if err := c.Validate(); err != nil {
		return ResolvedRateNode{}, fmt.Errorf("%s: %w", n.Label, err)
	}
	spot := calendar.AddBusinessDays(c.Calendar, snap, c.SpotDays)
	dates := swapDates(spot, n.Tenor.AddTo(spot), int(c.FixedFrequency))

	adj := make([]time.Time, len(dates))
	for i, d := range dates {
		a, err := calendar.Adjust(c.Calendar, d, c.BusinessDay)
		if err != nil {
			return ResolvedRateNode{}, err
		}
		adj[i] = a
	}
	coupons := make([]Coupon, len(adj)-1)
	for i := range coupons {
		yf, err := utils.YearFraction(adj[i], adj[i+1], c.DayCount)
		if err != nil {
			return ResolvedRateNode{}, err
		}
		coupons[i] = Coupon{Start: adj[i], End: adj[i+1], Payment: adj[i+1], YearFraction: yf}
	}
	return ResolvedRateNode{Node: n, Spot: spot, Pillar: coupons[len(coupons)-1].Payment, Coupons: coupons}, nil
}

// swapDates rolls backward from the unadjusted maturity, keeping the
// maturity's day of month (or the month end when spot is a month end).
// Any irregular period ends up first.
func swapDates(start, end time.Time, months int) []time.Time {
	day := end.Day()
	if utils.IsEndOfMonth(start) {
		day = 31
	}
	rev := []time.Time{end}
	for cur := end; ; {
		cur = utils.WithDayOfMonth(utils.AddMonths(cur, -months), day)
		if !cur.After(start) {
			break
		}
		rev = append(rev, cur)
	}
	rev = append(rev, start)
	out := make([]time.Time, len(rev))
	for i, d := range rev {
		out[len(rev)-1-i] = d
	}
	return out
}
