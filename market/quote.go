package market

import (
	"fmt"
	"sort"
	"time"

	"github.com/meenmo/isdacurve/utils"
)

// QuoteID identifies one market observable.
type QuoteID string

// QuoteSet maps quote identifiers to values observed on a snapshot date.
// It is immutable: With returns a modified copy.
type QuoteSet struct {
	snapshot time.Time
	values   map[QuoteID]float64
}

// NewQuoteSet copies values into a new set.
func NewQuoteSet(snapshot time.Time, values map[QuoteID]float64) QuoteSet {
	cp := make(map[QuoteID]float64, len(values))
	for k, v := range values {
		cp[k] = v
	}
	return QuoteSet{snapshot: utils.Normalize(snapshot), values: cp}
}

// Snapshot returns the observation date.
func (q QuoteSet) Snapshot() time.Time { return q.snapshot }

// Len returns the number of quotes.
func (q QuoteSet) Len() int { return len(q.values) }

// Value looks up a quote.
func (q QuoteSet) Value(id QuoteID) (float64, error) {
	v, ok := q.values[id]
	if !ok {
		return 0, fmt.Errorf("%w: %s", ErrMissingQuote, id)
	}
	return v, nil
}

// IDs lists the identifiers in sorted order.
func (q QuoteSet) IDs() []QuoteID {
	out := make([]QuoteID, 0, len(q.values))
	for id := range q.values {
		out = append(out, id)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// With returns a copy with id set to v.
func (q QuoteSet) With(id QuoteID, v float64) QuoteSet {
	out := NewQuoteSet(q.snapshot, q.values)
	out.values[id] = v
	return out
}

// Equal compares snapshot dates and every quote.
func (q QuoteSet) Equal(o QuoteSet) bool {
	if !q.snapshot.Equal(o.snapshot) || len(q.values) != len(o.values) {
		return false
	}
	for k, v := range q.values {
		if w, ok := o.values[k]; !ok || w != v {
			return false
		}
	}
	return true
}
