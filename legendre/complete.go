// Package legendre computes the Legendre forms of elliptic integrals in terms
// of the Carlson symmetric integrals. Everything is expressed with the
// parameter m = k², as in DLMF chapter 19.
package legendre

import (
	"math"

	"github.com/notargets/gospecial/carlson"
	"github.com/notargets/gospecial/field"
)

// below this parameter the first terms of the series are used
const smallParameter = 1.0e-8

// Nome returns q = exp(-π K'(m) / K(m)).
func Nome(m float64) (float64, error) {
	if m < smallParameter {
		// first terms of infinite series in Abramowitz and Stegun 17.3.21
		m16 := m * 0.0625
		return m16 * (1 + 8*m16), nil
	}
	kPrime, err := BigKPrime(m)
	if err != nil {
		return 0, err
	}
	k, err := BigK(m)
	if err != nil {
		return 0, err
	}
	return math.Exp(-math.Pi * kPrime / k), nil
}

// BigK returns the complete elliptic integral of the first kind K(m).
func BigK(m float64) (float64, error) {
	if m < smallParameter {
		// first terms of infinite series in Abramowitz and Stegun 17.3.11
		return (1 + 0.25*m) * 0.5 * math.Pi, nil
	}
	return carlson.RF(0, 1-m, 1)
}

// BigKPrime returns K'(m) = K(1-m).
func BigKPrime(m float64) (float64, error) {
	return carlson.RF(0, m, 1)
}

// BigE returns the complete elliptic integral of the second kind E(m).
func BigE(m float64) (float64, error) {
	if m == 1 {
		return 1, nil
	}
	rg, err := carlson.CompleteRG(1-m, 1)
	return 2 * rg, err
}

// BigD returns D(m) = (K(m) - E(m)) / m.
func BigD(m float64) (float64, error) {
	rd, err := carlson.RD(0, 1-m, 1)
	return rd / 3, err
}

// BigPi returns the complete elliptic integral of the third kind Π(n, m).
func BigPi(n, m float64) (float64, error) {
	mPrime := 1 - m
	rf, err := carlson.RF(0, mPrime, 1)
	if err != nil {
		return 0, err
	}
	rj, err := carlson.RJ(0, mPrime, 1, 1-n)
	if err != nil {
		return 0, err
	}
	return rf + rj*n/3, nil
}

// FieldBigK returns K(m) for any element type.
func FieldBigK[T field.Element[T]](m T) (T, error) {
	f := field.Of[T]()
	if m.Norm() < smallParameter {
		return m.Scale(0.25).AddReal(1).Scale(0.5 * math.Pi), nil
	}
	return carlson.FieldRF(f.Zero(), f.One().Sub(m), f.One())
}

// FieldBigKPrime returns K'(m) for any element type.
func FieldBigKPrime[T field.Element[T]](m T) (T, error) {
	f := field.Of[T]()
	return carlson.FieldRF(f.Zero(), m, f.One())
}

// FieldBigE returns E(m) for any element type.
func FieldBigE[T field.Element[T]](m T) (T, error) {
	f := field.Of[T]()
	mPrime := f.One().Sub(m)
	if mPrime.IsZero() {
		return f.One(), nil
	}
	rg, err := carlson.FieldCompleteRG(mPrime, f.One())
	return rg.Scale(2), err
}

// FieldBigD returns D(m) for any element type.
func FieldBigD[T field.Element[T]](m T) (T, error) {
	f := field.Of[T]()
	rd, err := carlson.FieldRD(f.Zero(), f.One().Sub(m), f.One())
	return rd.Scale(1. / 3), err
}

// FieldBigPi returns Π(n, m) for any element type.
func FieldBigPi[T field.Element[T]](n, m T) (result T, err error) {
	var (
		f      = field.Of[T]()
		mPrime = f.One().Sub(m)
		rf, rj T
	)
	if rf, err = carlson.FieldRF(f.Zero(), mPrime, f.One()); err != nil {
		return
	}
	if rj, err = carlson.FieldRJ(f.Zero(), mPrime, f.One(), f.One().Sub(n)); err != nil {
		return
	}
	result = rf.Add(rj.Mul(n).Scale(1. / 3))
	return
}
