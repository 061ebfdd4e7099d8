package carlson

import "github.com/notargets/gospecial/field"

// generalRg orders the arguments as x ≤ z ≤ y by real part, so that the
// (x-z)(y-z) factor in front of R_D is non-positive and cancellations are
// avoided.
func generalRg[T field.Element[T]](x, y, z T, policy nanPolicy) (T, error) {
	var (
		xR = x.RealPart()
		yR = y.RealPart()
		zR = z.RealPart()
	)
	switch {
	case xR <= yR && yR <= zR: // x ≤ y ≤ z
		return permutedRg(x, z, y, policy)
	case xR <= yR && xR <= zR: // x ≤ z < y
		return permutedRg(x, y, z, policy)
	case xR <= yR: // z < x ≤ y
		return permutedRg(z, y, x, policy)
	case xR <= zR: // y < x ≤ z
		return permutedRg(y, z, x, policy)
	case yR <= zR: // y ≤ z < x
		return permutedRg(y, x, z, policy)
	default: // z < y < x
		return permutedRg(z, x, y, policy)
	}
}

// permutedRg sends a single zero argument to the AGM, z must not be zero in
// safeRg.
func permutedRg[T field.Element[T]](x, y, z T, policy nanPolicy) (T, error) {
	switch {
	case x.IsZero() && z.IsZero():
		// R_G(0, 0, y) = √y / 2, DLMF 19.20.4
		return y.Sqrt().Scale(0.5), nil
	case x.IsZero():
		return completeRg(z, y, policy)
	case z.IsZero():
		return completeRg(x, y, policy)
	}
	return safeRg(x, y, z, policy)
}

// safeRg evaluates equation 19.21.10 in DLMF, z must be non-zero.
func safeRg[T field.Element[T]](x, y, z T, policy nanPolicy) (result T, err error) {
	var f, d T
	if f, err = rf(x, y, z, policy); err != nil {
		return
	}
	if d, err = rd(x, y, z, policy); err != nil {
		return
	}
	termF := f.Mul(z)
	termD := x.Sub(z).Mul(y.Sub(z)).Mul(d).Scale(1. / 3)

	// BEWARE: this term MUST be √x·√y/√z with every root taken with
	// non-negative real part. The single root √(xy/z) lands on the wrong
	// branch for a large share of complex arguments.
	termS := x.Sqrt().Mul(y.Sqrt()).Div(z.Sqrt())

	result = termF.Sub(termD).Add(termS).Scale(0.5)
	return
}

// alternateRg evaluates equation 19.21.11 in DLMF, which only involves R_D.
func alternateRg[T field.Element[T]](x, y, z T, policy nanPolicy) (result T, err error) {
	term := func(u, v, w T) (T, error) {
		if u.IsZero() {
			return u, nil
		}
		d, err := rd(v, w, u, policy)
		return u.Mul(v.Add(w)).Mul(d), err
	}
	var dx, dy, dz T
	if dx, err = term(x, y, z); err != nil {
		return
	}
	if dy, err = term(y, z, x); err != nil {
		return
	}
	if dz, err = term(z, x, y); err != nil {
		return
	}
	result = dx.Add(dy).Add(dz).Scale(1. / 6)
	return
}
