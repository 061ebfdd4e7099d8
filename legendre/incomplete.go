package legendre

import (
	"math"

	"github.com/notargets/gospecial/carlson"
)

// amplitude splits φ into φ = r + kπ with |r| ≤ π/2 and returns sin r, cos² r
// and k. The incomplete integrals are odd in r and grow by twice the
// complete integral every half period.
func amplitude(phi float64) (s, c2 float64, k int) {
	k = int(math.Round(phi / math.Pi))
	r := phi - float64(k)*math.Pi
	s, c := math.Sincos(r)
	c2 = c * c
	return
}

// BigF returns the incomplete elliptic integral of the first kind F(φ, m),
// DLMF 19.25.5.
func BigF(phi, m float64) (float64, error) {
	s, c2, k := amplitude(phi)
	rf, err := carlson.RF(c2, 1-m*s*s, 1)
	if err != nil {
		return 0, err
	}
	return periodic(s*rf, k, func() (float64, error) { return BigK(m) })
}

// BigEIncomplete returns the incomplete elliptic integral of the second kind
// E(φ, m), DLMF 19.25.9.
func BigEIncomplete(phi, m float64) (float64, error) {
	s, c2, k := amplitude(phi)
	delta2 := 1 - m*s*s
	rf, err := carlson.RF(c2, delta2, 1)
	if err != nil {
		return 0, err
	}
	rd, err := carlson.RD(c2, delta2, 1)
	if err != nil {
		return 0, err
	}
	return periodic(s*rf-m*s*s*s*rd/3, k, func() (float64, error) { return BigE(m) })
}

// BigDIncomplete returns D(φ, m) = (F(φ, m) - E(φ, m)) / m, DLMF 19.25.13.
func BigDIncomplete(phi, m float64) (float64, error) {
	s, c2, k := amplitude(phi)
	rd, err := carlson.RD(c2, 1-m*s*s, 1)
	if err != nil {
		return 0, err
	}
	return periodic(s*s*s*rd/3, k, func() (float64, error) { return BigD(m) })
}

// BigPiIncomplete returns the incomplete elliptic integral of the third kind
// Π(φ, n, m), DLMF 19.25.14.
func BigPiIncomplete(phi, n, m float64) (float64, error) {
	s, c2, k := amplitude(phi)
	delta2 := 1 - m*s*s
	rf, err := carlson.RF(c2, delta2, 1)
	if err != nil {
		return 0, err
	}
	rj, err := carlson.RJ(c2, delta2, 1, 1-n*s*s)
	if err != nil {
		return 0, err
	}
	return periodic(s*rf+n*s*s*s*rj/3, k, func() (float64, error) { return BigPi(n, m) })
}

func periodic(reduced float64, k int, complete func() (float64, error)) (float64, error) {
	if k == 0 {
		return reduced, nil
	}
	c, err := complete()
	if err != nil {
		return 0, err
	}
	return reduced + 2*float64(k)*c, nil
}
