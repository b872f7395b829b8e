package curve

import (
	"math"
	"sort"
)

// findBracket locates t among the sorted knot times.
//
// It returns (i, true) when t equals knot i exactly. Otherwise it returns the
// index of the upper knot of the interpolation interval, clamped to
// [1, len(times)-1] so the last interval is reused for extrapolation.
// Callers handle t <= times[0] and single-knot curves themselves.
func findBracket(times []float64, t float64) (idx int, exact bool) {
	// Binary search for first knot >= t
	idx = sort.SearchFloat64s(times, t)
	if idx < len(times) && times[idx] == t {
		return idx, true
	}
	if idx >= len(times) {
		idx = len(times) - 1
	}
	if idx < 1 {
		idx = 1
	}
	return idx, false
}

// strictlyIncreasing reports whether xs is sorted with no repeats and holds
// only finite values.
func strictlyIncreasing(xs []float64) bool {
	for i, x := range xs {
		if math.IsNaN(x) || math.IsInf(x, 0) {
			return false
		}
		if i > 0 && x <= xs[i-1] {
			return false
		}
	}
	return true
}

func finite(xs []float64) bool {
	for _, x := range xs {
		if math.IsNaN(x) || math.IsInf(x, 0) {
			return false
		}
	}
	return true
}
