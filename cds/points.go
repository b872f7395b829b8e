package cds

import (
	"math"
	"sort"
)

// pointTolerance merges integration points closer than half a day.
const pointTolerance = 1.0 / 730

func different(a, b float64) bool {
	return math.Abs(a-b) > pointTolerance
}

// integrationPoints returns start, end and every knot of either curve
// strictly between them, dropping points within half a day of the
// previous one. The end point always survives.
func integrationPoints(start, end float64, a, b []float64) []float64 {
	inner := append(between(start, end, a), between(start, end, b)...)
	sort.Float64s(inner)
	out := make([]float64, 1, len(inner)+2)
	out[0] = start
	for _, x := range inner {
		if different(out[len(out)-1], x) {
			out = append(out, x)
		}
	}
	if different(out[len(out)-1], end) {
		out = append(out, end)
	} else {
		out[len(out)-1] = end
	}
	return out
}

// truncateInclusive restricts a sorted schedule to [lo, hi], replacing the
// nearest interior points by lo and hi when they are within half a day.
func truncateInclusive(lo, hi float64, sched []float64) []float64 {
	inner := between(lo, hi, sched)
	if len(inner) == 0 {
		return []float64{lo, hi}
	}
	out := make([]float64, 0, len(inner)+2)
	if different(lo, inner[0]) {
		out = append(out, lo)
	}
	out = append(out, inner...)
	if different(hi, inner[len(inner)-1]) {
		out = append(out, hi)
	}
	out[0] = lo
	out[len(out)-1] = hi
	return out
}

// between returns the values strictly inside (lo, hi), keeping their order.
func between(lo, hi float64, xs []float64) []float64 {
	var out []float64
	for _, x := range xs {
		if x > lo && x < hi {
			out = append(out, x)
		}
	}
	return out
}
