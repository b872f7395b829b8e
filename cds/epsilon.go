package cds

import "math"

// epsilon is (e^x - 1)/x, with a series near zero.
func epsilon(x float64) float64 {
	if math.Abs(x) > 1e-5 {
		return math.Expm1(x) / x
	}
	sum, term := 0.0, 1.0
	for k := 0; k < 8; k++ {
		term /= float64(k + 1)
		sum += term
		term *= x
	}
	return sum
}

// epsilonP is the derivative of epsilon: ((x-1)e^x + 1)/x^2.
func epsilonP(x float64) float64 {
	if math.Abs(x) > 1e-3 {
		return ((x-1)*math.Expm1(x) + x) / (x * x)
	}
	// sum (k+1) x^k / (k+2)!
	sum, pow, fact := 0.0, 1.0, 2.0
	for k := 0; k < 10; k++ {
		sum += float64(k+1) * pow / fact
		pow *= x
		fact *= float64(k + 3)
	}
	return sum
}

// epsilonPP is the second derivative of epsilon: ((x^2-2x+2)e^x - 2)/x^3.
func epsilonPP(x float64) float64 {
	if math.Abs(x) > 0.1 {
		return ((x*x-2*x+2)*math.Exp(x) - 2) / (x * x * x)
	}
	// sum (k+2)(k+1) x^k / (k+3)!
	sum, pow, fact := 0.0, 1.0, 6.0
	for k := 0; k < 16; k++ {
		sum += float64((k+2)*(k+1)) * pow / fact
		pow *= x
		fact *= float64(k + 4)
	}
	return sum
}
