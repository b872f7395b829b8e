package curve

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// Shift re-bases the curve so that time s becomes time zero, keeping
// discount factors between any two times after s unchanged.
//
//   - s before the first knot: every knot moves to t-s.
//   - s on or after the last knot: the curve collapses to a single knot at
//     t = 1 holding the last forward rate.
//   - otherwise knots at or before s are dropped and the rest are re-based
//     against the interpolated r*t at s.
//
// An attached Jacobian is mapped through the same linear transform, so the
// result may have fewer rows than quotes.
func (c *ZeroRateCurve) Shift(s float64) (*ZeroRateCurve, error) {
	if s == 0 {
		return c, nil
	}
	times, rates, transform := c.shifted(s)
	out, err := NewZeroRateCurve(c.name, times, rates)
	if err != nil {
		return nil, fmt.Errorf("shift %s by %g: %w", c.name, s, err)
	}
	if c.jacobian == nil {
		return out, nil
	}
	var jac mat.Dense
	jac.Mul(transform, c.jacobian)
	return out.WithJacobian(&jac)
}

// shifted returns the new knots and d(new rate)/d(old rate).
func (c *ZeroRateCurve) shifted(s float64) ([]float64, []float64, *mat.Dense) {
	t, r := c.times, c.rates
	n := len(t)

	switch {
	case s < t[0]:
		eta := r[0] * s
		times := make([]float64, n)
		rates := make([]float64, n)
		tr := mat.NewDense(n, n, nil)
		for i := range t {
			times[i] = t[i] - s
			rates[i] = (c.rt[i] - eta) / times[i]
			tr.Set(i, i, t[i]/times[i])
			tr.Set(i, 0, tr.At(i, 0)-s/times[i])
		}
		return times, rates, tr

	case s >= t[n-1]:
		tr := mat.NewDense(1, n, nil)
		if n == 1 {
			tr.Set(0, 0, 1)
			return []float64{1}, []float64{r[0]}, tr
		}
		dt := t[n-1] - t[n-2]
		tr.Set(0, n-2, -t[n-2]/dt)
		tr.Set(0, n-1, t[n-1]/dt)
		return []float64{1}, []float64{(c.rt[n-1] - c.rt[n-2]) / dt}, tr
	}

	idx, exact := findBracket(t, s)
	if exact {
		idx++
	}
	dt := t[idx] - t[idx-1]
	wLo := t[idx-1] * (t[idx] - s) / dt
	wHi := t[idx] * (s - t[idx-1]) / dt
	eta := r[idx-1]*wLo + r[idx]*wHi

	m := n - idx
	times := make([]float64, m)
	rates := make([]float64, m)
	tr := mat.NewDense(m, n, nil)
	for k := 0; k < m; k++ {
		i := idx + k
		times[k] = t[i] - s
		rates[k] = (c.rt[i] - eta) / times[k]
		tr.Set(k, i, tr.At(k, i)+t[i]/times[k])
		tr.Set(k, idx-1, tr.At(k, idx-1)-wLo/times[k])
		tr.Set(k, idx, tr.At(k, idx)-wHi/times[k])
	}
	return times, rates, tr
}
