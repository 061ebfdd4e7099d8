// Package carlson computes the Carlson symmetric elliptic integrals
//
//	R_F(x,y,z)   = ½∫₀^∞ dt / √((t+x)(t+y)(t+z))
//	R_C(x,y)     = R_F(x,y,y)
//	R_J(x,y,z,p) = 3/2 ∫₀^∞ dt / ((t+p)√((t+x)(t+y)(t+z)))
//	R_D(x,y,z)   = R_J(x,y,z,z)
//	R_G(x,y,z)   = ¼∫₀^∞ (x/(t+x) + y/(t+y) + z/(t+z)) t dt / √((t+x)(t+y)(t+z))
//
// using the duplication algorithm of B. C. Carlson, "Numerical computation of
// real or complex elliptic integrals", Numerical Algorithms 10 (1995), with
// the R_J improvements of Carlson's 2000 appendix, and the polynomial
// coefficients of DLMF 19.36.1.
//
// Three flavours of every integral are provided:
//
//   - float64 functions (RF, RC, ...) return an error wrapping
//     ErrConvergenceFailed when the iteration does not converge, which is
//     what happens for NaN arguments;
//   - generic functions (FieldRF, FieldRC, ...) accept any field.Element and
//     silently propagate NaN into the result;
//   - complex128 functions (ComplexRF, ...) are thin wrappers over the
//     generic ones.
//
// All functions work on local state only and may be called concurrently.
package carlson

import "github.com/notargets/gospecial/field"

func rf[T field.Element[T]](x, y, z T, policy nanPolicy) (T, error) {
	// complete integral, AGM is much faster than duplication
	switch {
	case x.IsZero():
		return completeRf(y, z, policy)
	case y.IsZero():
		return completeRf(x, z, policy)
	case z.IsZero():
		return completeRf(x, y, policy)
	}
	return integral[T](newRfDuplication(x, y, z), policy)
}

func rc[T field.Element[T]](x, y T, policy nanPolicy) (T, error) {
	if onBranchCut(y) {
		// Cauchy principal value, equation 2.14 in Carlson[1995]
		xMy := x.Sub(y)
		v, err := integral[T](newRcDuplication(xMy, y.Neg()), policy)
		return x.Div(xMy).Sqrt().Mul(v), err
	}
	return integral[T](newRcDuplication(x, y), policy)
}

// onBranchCut reports whether y lies on the negative real axis. Elements with
// an imaginary part must have it exactly zero; other elements only look at
// their real part.
func onBranchCut[T field.Element[T]](y T) bool {
	if c, ok := any(y).(interface{ ImagPart() float64 }); ok {
		return c.ImagPart() == 0 && y.RealPart() < 0
	}
	return y.RealPart() < 0
}

func rj[T field.Element[T]](x, y, z, p, delta T, policy nanPolicy) (T, error) {
	return integral[T](newRjDuplication(x, y, z, p, delta, policy), policy)
}

func rd[T field.Element[T]](x, y, z T, policy nanPolicy) (T, error) {
	return integral[T](newRdDuplication(x, y, z), policy)
}

func delta[T field.Element[T]](x, y, z, p T) T {
	return p.Sub(x).Mul(p.Sub(y)).Mul(p.Sub(z))
}

// RF computes R_F(x, y, z).
func RF(x, y, z float64) (float64, error) {
	v, err := rf(field.Real(x), field.Real(y), field.Real(z), failOnNaN)
	return float64(v), err
}

// RC computes R_C(x, y). For y < 0 the Cauchy principal value is returned.
func RC(x, y float64) (float64, error) {
	v, err := rc(field.Real(x), field.Real(y), failOnNaN)
	return float64(v), err
}

// RJ computes R_J(x, y, z, p).
func RJ(x, y, z, p float64) (float64, error) {
	return RJDelta(x, y, z, p, (p-x)*(p-y)*(p-z))
}

// RJDelta computes R_J(x, y, z, p) given a precomputed δ = (p-x)(p-y)(p-z),
// which saves work when several integrals share their arguments.
func RJDelta(x, y, z, p, delta float64) (float64, error) {
	v, err := rj(field.Real(x), field.Real(y), field.Real(z), field.Real(p), field.Real(delta), failOnNaN)
	return float64(v), err
}

// RD computes R_D(x, y, z).
func RD(x, y, z float64) (float64, error) {
	v, err := rd(field.Real(x), field.Real(y), field.Real(z), failOnNaN)
	return float64(v), err
}

// RG computes R_G(x, y, z).
func RG(x, y, z float64) (float64, error) {
	v, err := generalRg(field.Real(x), field.Real(y), field.Real(z), failOnNaN)
	return float64(v), err
}

// CompleteRG computes R_G(0, y, z) with the arithmetic-geometric mean.
func CompleteRG(y, z float64) (float64, error) {
	v, err := completeRg(field.Real(y), field.Real(z), failOnNaN)
	return float64(v), err
}

// FieldRF computes R_F(x, y, z) for any element type.
func FieldRF[T field.Element[T]](x, y, z T) (T, error) {
	return rf(x, y, z, propagateNaN)
}

// FieldRC computes R_C(x, y) for any element type. The principal value
// transform is applied when y lies on the negative real axis.
func FieldRC[T field.Element[T]](x, y T) (T, error) {
	return rc(x, y, propagateNaN)
}

// FieldRJ computes R_J(x, y, z, p) for any element type.
func FieldRJ[T field.Element[T]](x, y, z, p T) (T, error) {
	return rj(x, y, z, p, delta(x, y, z, p), propagateNaN)
}

// FieldRJDelta computes R_J(x, y, z, p) with a precomputed δ = (p-x)(p-y)(p-z).
func FieldRJDelta[T field.Element[T]](x, y, z, p, delta T) (T, error) {
	return rj(x, y, z, p, delta, propagateNaN)
}

// FieldRD computes R_D(x, y, z) for any element type.
func FieldRD[T field.Element[T]](x, y, z T) (T, error) {
	return rd(x, y, z, propagateNaN)
}

// FieldRG computes R_G(x, y, z) for any element type.
func FieldRG[T field.Element[T]](x, y, z T) (T, error) {
	return generalRg(x, y, z, propagateNaN)
}

// FieldCompleteRG computes R_G(0, y, z) for any element type.
func FieldCompleteRG[T field.Element[T]](y, z T) (T, error) {
	return completeRg(y, z, propagateNaN)
}

// FieldRGAlternate computes R_G from R_D alone (DLMF 19.21.11). It is slower
// than FieldRG and mainly serves as an independent check.
func FieldRGAlternate[T field.Element[T]](x, y, z T) (T, error) {
	return alternateRg(x, y, z, propagateNaN)
}

// ComplexRF is FieldRF on complex128 arguments, NaN inputs give a NaN result.
func ComplexRF(x, y, z complex128) (complex128, error) {
	v, err := FieldRF(field.Complex(x), field.Complex(y), field.Complex(z))
	return complex128(v), err
}

// ComplexRC is FieldRC on complex128 arguments.
func ComplexRC(x, y complex128) (complex128, error) {
	v, err := FieldRC(field.Complex(x), field.Complex(y))
	return complex128(v), err
}

// ComplexRJ is FieldRJ on complex128 arguments.
func ComplexRJ(x, y, z, p complex128) (complex128, error) {
	v, err := FieldRJ(field.Complex(x), field.Complex(y), field.Complex(z), field.Complex(p))
	return complex128(v), err
}

// ComplexRD is FieldRD on complex128 arguments.
func ComplexRD(x, y, z complex128) (complex128, error) {
	v, err := FieldRD(field.Complex(x), field.Complex(y), field.Complex(z))
	return complex128(v), err
}

// ComplexRG is FieldRG on complex128 arguments.
func ComplexRG(x, y, z complex128) (complex128, error) {
	v, err := FieldRG(field.Complex(x), field.Complex(y), field.Complex(z))
	return complex128(v), err
}
