// Package solver holds the one-dimensional root finding used by the curve
// bootstrappers: bracket expansion followed by Brent's method.
package solver

import (
	"errors"
	"fmt"
	"math"
)

var (
	// ErrNotBracketed is returned when no sign change can be found.
	ErrNotBracketed = errors.New("root not bracketed")
	// ErrNoConvergence is returned when the iteration budget is exhausted.
	ErrNoConvergence = errors.New("root finder did not converge")
	// ErrNaN is returned when the objective evaluates to NaN.
	ErrNaN = errors.New("objective returned NaN")
)

// Func is a scalar objective.
type Func func(x float64) float64

// Settings bounds the work done by Bracket and Brent.
type Settings struct {
	// AbsTolerance is added to the relative machine-precision tolerance.
	AbsTolerance float64
	// MaxIterations caps Brent iterations.
	MaxIterations int
	// MaxExpansions caps bracket expansion steps.
	MaxExpansions int
	// ExpansionFactor is the geometric growth of the bracket per step.
	ExpansionFactor float64
}

// DefaultSettings returns settings that solve to machine precision.
func DefaultSettings() Settings {
	return Settings{
		AbsTolerance:    1e-18,
		MaxIterations:   200,
		MaxExpansions:   50,
		ExpansionFactor: 1.6,
	}
}

// Result reports a solved root.
type Result struct {
	Root        float64
	Iterations  int
	Evaluations int
}

// Solve brackets a root starting from [lo, hi] inside [lower, upper] and
// refines it with Brent's method.
func Solve(f Func, lo, hi, lower, upper float64, s Settings) (Result, error) {
	counted, evals := counting(f)
	a, b, err := Bracket(counted, lo, hi, lower, upper, s)
	if err != nil {
		return Result{Evaluations: *evals}, err
	}
	res, err := Brent(counted, a, b, s)
	res.Evaluations = *evals
	return res, err
}

func counting(f Func) (Func, *int) {
	n := 0
	return func(x float64) float64 {
		n++
		return f(x)
	}, &n
}

// Bracket grows [lo, hi] geometrically, moving the side with the smaller
// |f| outward, until f changes sign. The interval never leaves [lower, upper].
func Bracket(f Func, lo, hi, lower, upper float64, s Settings) (float64, float64, error) {
	if lo > hi {
		lo, hi = hi, lo
	}
	lo = math.Max(lo, lower)
	hi = math.Min(hi, upper)
	if lo == hi {
		return 0, 0, fmt.Errorf("%w: empty start interval at %g", ErrNotBracketed, lo)
	}
	flo, fhi := f(lo), f(hi)
	for i := 0; ; i++ {
		if math.IsNaN(flo) || math.IsNaN(fhi) {
			return 0, 0, fmt.Errorf("%w: bracket [%g, %g]", ErrNaN, lo, hi)
		}
		if flo*fhi <= 0 {
			return lo, hi, nil
		}
		if i >= s.MaxExpansions {
			break
		}
		if math.Abs(flo) < math.Abs(fhi) {
			next := math.Max(lower, lo+s.ExpansionFactor*(lo-hi))
			if next == lo {
				break
			}
			lo, flo = next, f(next)
		} else {
			next := math.Min(upper, hi+s.ExpansionFactor*(hi-lo))
			if next == hi {
				break
			}
			hi, fhi = next, f(next)
		}
	}
	return 0, 0, fmt.Errorf("%w: last interval [%g, %g]", ErrNotBracketed, lo, hi)
}

// Brent finds a root of f inside [a, b], where f(a) and f(b) differ in sign.
func Brent(f Func, a, b float64, s Settings) (Result, error) {
	fa, fb := f(a), f(b)
	if math.IsNaN(fa) || math.IsNaN(fb) {
		return Result{}, fmt.Errorf("%w: [%g, %g]", ErrNaN, a, b)
	}
	switch {
	case fa == 0:
		return Result{Root: a}, nil
	case fb == 0:
		return Result{Root: b}, nil
	case fa*fb > 0:
		return Result{}, fmt.Errorf("%w: f(%g)=%g f(%g)=%g", ErrNotBracketed, a, fa, b, fb)
	}

	c, fc := b, fb
	d := b - a
	e := d
	for iter := 1; iter <= s.MaxIterations; iter++ {
		if (fb > 0 && fc > 0) || (fb < 0 && fc < 0) {
			c, fc = a, fa
			d = b - a
			e = d
		}
		if math.Abs(fc) < math.Abs(fb) {
			a, b, c = b, c, b
			fa, fb, fc = fb, fc, fb
		}
		tol := 2*epsilon*math.Abs(b) + 0.5*s.AbsTolerance
		xm := 0.5 * (c - b)
		if math.Abs(xm) <= tol || fb == 0 {
			return Result{Root: b, Iterations: iter}, nil
		}
		if math.Abs(e) >= tol && math.Abs(fa) > math.Abs(fb) {
			// inverse quadratic interpolation, or secant when a == c
			var p, q float64
			sr := fb / fa
			if a == c {
				p = 2 * xm * sr
				q = 1 - sr
			} else {
				qa := fa / fc
				r := fb / fc
				p = sr * (2*xm*qa*(qa-r) - (b-a)*(r-1))
				q = (qa - 1) * (r - 1) * (sr - 1)
			}
			if p > 0 {
				q = -q
			}
			p = math.Abs(p)
			if 2*p < math.Min(3*xm*q-math.Abs(tol*q), math.Abs(e*q)) {
				e = d
				d = p / q
			} else {
				d = xm
				e = d
			}
		} else {
			d = xm
			e = d
		}
		a, fa = b, fb
		if math.Abs(d) > tol {
			b += d
		} else {
			b += math.Copysign(tol, xm)
		}
		fb = f(b)
		if math.IsNaN(fb) {
			return Result{}, fmt.Errorf("%w: at %g", ErrNaN, b)
		}
	}
	return Result{Root: b, Iterations: s.MaxIterations}, fmt.Errorf("%w after %d iterations (last %g)", ErrNoConvergence, s.MaxIterations, b)
}

const epsilon = 2.220446049250313e-16
