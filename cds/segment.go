package cds

import "math"

// Each segment function integrates over one interval [t0, t1] on which both
// h(t)*t and r(t)*t are linear. b0 and b1 are exp(-(h t + r t)) at the ends,
// dht and drt are the increments of h*t and r*t. Besides the value they
// return the derivatives with respect to h*t at t0 and at t1.

// protectionSegment integrates the default density times the discount factor.
func (p Pricer) protectionSegment(b0, b1, dht, drt float64) (v, d0, d1 float64) {
	dhrt := dht + drt
	if math.Abs(dhrt) < p.small {
		k := epsilon(-dhrt)
		kp := epsilonP(-dhrt)
		v = dht * b0 * k
		d1 = b0*k - dht*b0*kp
		d0 = -b0*k - dht*b0*k + dht*b0*kp
		return v, d0, d1
	}
	r := dht / dhrt
	dr := drt / (dhrt * dhrt)
	v = (b0 - b1) * r
	d1 = dr*(b0-b1) + r*b1
	d0 = -dr*(b0-b1) - r*b0
	return v, d0, d1
}

// accrualSegment integrates the accrued premium paid on default over the
// segment. dt is the segment length; s0 and s1 are the accrual times at the
// segment ends (already including any half-day bias).
func (p Pricer) accrualSegment(b0, b1, dht, drt, dt, s0, s1 float64) (v, d0, d1 float64) {
	dhrt := dht + drt
	if math.Abs(dhrt) < p.small {
		x := -dhrt
		var k, kp float64
		if p.formula == MarkitFix {
			k, kp = dt*epsilonP(x), dt*epsilonPP(x)
		} else {
			k = s0*epsilon(x) + dt*epsilonP(x)
			kp = s0*epsilonP(x) + dt*epsilonPP(x)
		}
		v = dht * b0 * k
		d1 = b0*k - dht*b0*kp
		d0 = -b0*k - dht*b0*k + dht*b0*kp
		return v, d0, d1
	}

	r := dht / dhrt
	dr1 := drt / (dhrt * dhrt)
	dr0 := -dr1
	diff := (b0 - b1) / dhrt
	if p.formula == MarkitFix {
		h := diff - b1
		h1 := b1/dhrt - diff/dhrt + b1
		h0 := -b0/dhrt + diff/dhrt
		return dt * r * h, dt * (dr0*h + r*h0), dt * (dr1*h + r*h1)
	}
	g := s0*b0 - s1*b1 + dt*diff
	g1 := s1*b1 + dt*b1/dhrt - dt*diff/dhrt
	g0 := -s0*b0 - dt*b0/dhrt + dt*diff/dhrt
	return r * g, dr0*g + r*g0, dr1*g + r*g1
}
