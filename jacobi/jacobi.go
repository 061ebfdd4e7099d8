// Package jacobi evaluates the Jacobi elliptic functions for a real
// parameter m fixed at construction, together with their inverses.
//
// The parameter range is split between dedicated schemes: series expansions
// near m = 0 and m = 1, the descending Landen transformation in between, and
// reciprocal or imaginary-modulus transforms that map m > 1 and m < 0 back
// into [0, 1].
package jacobi

import (
	"math"

	"github.com/notargets/gospecial/carlson"
	"github.com/notargets/gospecial/legendre"
)

// Elliptic evaluates the Jacobi elliptic functions for one parameter.
// It is immutable and safe for concurrent use.
type Elliptic struct {
	m         float64
	algorithm algorithm
}

// Build returns an evaluator for parameter m = k².
func Build(m float64) *Elliptic {
	return &Elliptic{m: m, algorithm: selectAlgorithm(m)}
}

func (je *Elliptic) M() float64 { return je.m }

// ValuesN returns sn(u|m), cn(u|m), dn(u|m).
func (je *Elliptic) ValuesN(u float64) CopolarN {
	return je.algorithm.values(u)
}

// ValuesS returns cs(u|m), ds(u|m), ns(u|m).
func (je *Elliptic) ValuesS(u float64) CopolarS {
	return je.ValuesN(u).S()
}

// ValuesC returns dc(u|m), nc(u|m), sc(u|m).
func (je *Elliptic) ValuesC(u float64) CopolarC {
	return je.ValuesN(u).C()
}

// ValuesD returns nd(u|m), sd(u|m), cd(u|m).
func (je *Elliptic) ValuesD(u float64) CopolarD {
	return je.ValuesN(u).D()
}

// The inverse functions follow DLMF 19.25.29 to 19.25.34, with p, q, r a
// permutation of the letters s, c, d, n and Δ(p, q) the differences listed
// in 19.25.29.

func (je *Elliptic) Arcsn(x float64) (float64, error) {
	// p = n, q = c, r = d
	return arcsp(x, -1, -je.m)
}

func (je *Elliptic) Arccn(x float64) (float64, error) {
	// p = c, q = n, r = d
	return je.arcpq(x, 1, -je.m)
}

func (je *Elliptic) Arcdn(x float64) (float64, error) {
	// p = d, q = n, r = c
	return je.arcpq(x, je.m, -1)
}

func (je *Elliptic) Arccs(x float64) (float64, error) {
	// p = c, q = n, r = d
	return arcps(x, 1, 1-je.m)
}

func (je *Elliptic) Arcds(x float64) (float64, error) {
	// p = d, q = c, r = n
	return arcps(x, je.m-1, je.m)
}

func (je *Elliptic) Arcns(x float64) (float64, error) {
	// p = n, q = c, r = d
	return arcps(x, -1, -je.m)
}

func (je *Elliptic) Arcdc(x float64) (float64, error) {
	// p = d, q = c, r = n
	return je.arcpq(x, je.m-1, 1)
}

func (je *Elliptic) Arcnc(x float64) (float64, error) {
	// p = n, q = c, r = d
	return je.arcpq(x, -1, 1-je.m)
}

func (je *Elliptic) Arcsc(x float64) (float64, error) {
	// p = c, q = n, r = d
	return arcsp(x, 1, 1-je.m)
}

func (je *Elliptic) Arcnd(x float64) (float64, error) {
	// p = n, q = d, r = c
	return je.arcpq(x, -je.m, je.m-1)
}

func (je *Elliptic) Arcsd(x float64) (float64, error) {
	// p = d, q = n, r = c
	return arcsp(x, je.m, je.m-1)
}

func (je *Elliptic) Arccd(x float64) (float64, error) {
	// p = c, q = d, r = n
	return je.arcpq(x, 1-je.m, je.m)
}

// arcps inverts ps, DLMF 19.25.32.
func arcps(x, deltaQP, deltaRP float64) (float64, error) {
	x2 := x * x
	rf, err := carlson.RF(x2, x2+deltaQP, x2+deltaRP)
	return math.Copysign(rf, x), err
}

// arcsp inverts sp, DLMF 19.25.33.
func arcsp(x, deltaQP, deltaRP float64) (float64, error) {
	x2 := x * x
	rf, err := carlson.RF(1, 1+deltaQP*x2, 1+deltaRP*x2)
	return x * rf, err
}

// arcpq inverts pq, DLMF 19.25.34. Negative arguments are reflected about K.
func (je *Elliptic) arcpq(x, deltaQP, deltaRQ float64) (float64, error) {
	var (
		x2 = x * x
		w  = (1 - x2) / deltaQP
	)
	rf, err := carlson.RF(x2, 1, 1+deltaRQ*w)
	if err != nil {
		return 0, err
	}
	positive := math.Sqrt(w) * rf
	if x >= 0 {
		return positive, nil
	}
	k, err := legendre.BigK(je.m)
	if err != nil {
		return 0, err
	}
	return 2*k - positive, nil
}
