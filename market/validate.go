package market

import (
	"fmt"
	"sort"
	"time"

	"github.com/meenmo/isdacurve/utils"
)

// OrderedRateNodes is the canonical node order used by the discount bootstrapper.
type OrderedRateNodes struct {
	// Spot is the common start date of every instrument; node times are
	// ACT/365F from it.
	Spot  time.Time
	Nodes []ResolvedRateNode
	Times []float64
	// Index maps each ordered position back to the caller's slice.
	Index []int
}

// OrderRateNodes resolves nodes from the snapshot date, puts deposits before
// swaps and sorts each group by pillar date. It rejects empty node lists,
// instruments starting on different spot dates, pillars on or before spot,
// repeated pillar dates and deposits maturing after a swap.
func OrderRateNodes(nodes []RateNode, snap time.Time) (OrderedRateNodes, error) {
	if len(nodes) == 0 {
		return OrderedRateNodes{}, ErrNoNodes
	}
	resolved := make([]ResolvedRateNode, len(nodes))
	for i, n := range nodes {
		r, err := n.Resolve(snap)
		if err != nil {
			return OrderedRateNodes{}, fmt.Errorf("node %d (%s): %w", i, n.Label, err)
		}
		if i > 0 && !r.Spot.Equal(resolved[0].Spot) {
			return OrderedRateNodes{}, fmt.Errorf("%w: %s starts %s, %s starts %s", ErrInvalidNode,
				n.Label, utils.FormatDate(r.Spot), nodes[0].Label, utils.FormatDate(resolved[0].Spot))
		}
		resolved[i] = r
	}

	index := make([]int, len(nodes))
	for i := range index {
		index[i] = i
	}
	bucket := func(k NodeKind) int {
		if k == KindTermDeposit {
			return 0
		}
		return 1
	}
	sort.SliceStable(index, func(a, b int) bool {
		ra, rb := resolved[index[a]], resolved[index[b]]
		if ba, bb := bucket(ra.Node.Kind), bucket(rb.Node.Kind); ba != bb {
			return ba < bb
		}
		return ra.Pillar.Before(rb.Pillar)
	})

	out := OrderedRateNodes{
		Spot:  resolved[0].Spot,
		Nodes: make([]ResolvedRateNode, len(nodes)),
		Times: make([]float64, len(nodes)),
		Index: index,
	}
	for pos, i := range index {
		r := resolved[i]
		out.Nodes[pos] = r
		out.Times[pos] = utils.Act365(out.Spot, r.Pillar)
		if out.Times[pos] <= 0 {
			return OrderedRateNodes{}, fmt.Errorf("%w: %s matures %s, not after spot %s", ErrInvalidNode,
				r.Node.Label, utils.FormatDate(r.Pillar), utils.FormatDate(out.Spot))
		}
		if pos == 0 {
			continue
		}
		prev := out.Nodes[pos-1]
		switch {
		case r.Pillar.Equal(prev.Pillar):
			return OrderedRateNodes{}, fmt.Errorf("%w: %s and %s both mature %s", ErrDuplicatePillar,
				prev.Node.Label, r.Node.Label, utils.FormatDate(r.Pillar))
		case r.Pillar.Before(prev.Pillar):
			return OrderedRateNodes{}, fmt.Errorf("%w: %s (%s) matures after %s (%s)", ErrUnorderedNodes,
				prev.Node.Label, utils.FormatDate(prev.Pillar), r.Node.Label, utils.FormatDate(r.Pillar))
		}
	}
	return out, nil
}

// OrderedCdsNodes is the canonical node order used by the credit bootstrapper.
type OrderedCdsNodes struct {
	Nodes []ResolvedCds
	// Times are ACT/365F from the valuation date to each protection end.
	Times []float64
	Index []int
}

// OrderCdsNodes resolves CDS nodes and sorts them by protection end date.
// Protection must end after the valuation date and no two nodes may share
// a protection end date.
func OrderCdsNodes(nodes []CdsNode, valuation time.Time) (OrderedCdsNodes, error) {
	if len(nodes) == 0 {
		return OrderedCdsNodes{}, ErrNoNodes
	}
	valuation = utils.Normalize(valuation)
	resolved := make([]ResolvedCds, len(nodes))
	for i, n := range nodes {
		r, err := n.Resolve()
		if err != nil {
			return OrderedCdsNodes{}, fmt.Errorf("node %d (%s): %w", i, n.Label, err)
		}
		resolved[i] = r
	}
	index := make([]int, len(nodes))
	for i := range index {
		index[i] = i
	}
	sort.SliceStable(index, func(a, b int) bool {
		return resolved[index[a]].ProtectionEnd.Before(resolved[index[b]].ProtectionEnd)
	})

	out := OrderedCdsNodes{
		Nodes: make([]ResolvedCds, len(nodes)),
		Times: make([]float64, len(nodes)),
		Index: index,
	}
	for pos, i := range index {
		r := resolved[i]
		out.Nodes[pos] = r
		out.Times[pos] = utils.Act365(valuation, r.ProtectionEnd)
		if out.Times[pos] <= 0 {
			return OrderedCdsNodes{}, fmt.Errorf("%w: %s protection ended %s, on or before valuation %s", ErrInvalidNode,
				r.Node.Label, utils.FormatDate(r.ProtectionEnd), utils.FormatDate(valuation))
		}
		if pos > 0 && r.ProtectionEnd.Equal(out.Nodes[pos-1].ProtectionEnd) {
			return OrderedCdsNodes{}, fmt.Errorf("%w: %s and %s both end %s", ErrDuplicatePillar,
				out.Nodes[pos-1].Node.Label, r.Node.Label, utils.FormatDate(r.ProtectionEnd))
		}
	}
	return out, nil
}
