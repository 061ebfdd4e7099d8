package jacobi

import (
	"math"
)

const (
	nearZero = 1.0e-9
	nearOne  = 1.0 - nearZero
	// descending Landen steps, the AGM converges quadratically
	maxLanden = 16
	// the 16.15 truncation error grows like (m1 cosh²u)²
	nearOneSeriesLimit = 1.0e-6
)

type algorithm interface {
	values(u float64) CopolarN
}

// selectAlgorithm picks the evaluation scheme for parameter m. Negative and
// big parameters are mapped back into [0, 1].
func selectAlgorithm(m float64) algorithm {
	switch {
	case m < 0:
		return newNegative(m)
	case m > 1:
		return newBig(m)
	case m < nearZero:
		return nearZeroParameter{m: m}
	case m > nearOne:
		return nearOneParameter{m1: 1 - m, landen: newBounded(m)}
	default:
		return newBounded(m)
	}
}

// bounded uses the descending Landen transformation, Abramowitz and Stegun 16.4.
type bounded struct {
	m, b0, c0 float64
}

func newBounded(m float64) bounded {
	return bounded{m: m, b0: math.Sqrt(1 - m), c0: math.Sqrt(m)}
}

func (b bounded) values(u float64) CopolarN {
	var (
		a, c [maxLanden]float64
		bi   = b.b0
		phi  = u
	)
	a[0], c[0] = 1, b.c0
	for i := 1; i < maxLanden; i++ {
		phi += phi
		c[i] = 0.5 * (a[i-1] - bi)
		a[i] = 0.5 * (a[i-1] + bi)
		bi = math.Sqrt(a[i-1] * bi)
		// non-negative by the AM-GM inequality
		if c[i] <= ulp(a[i]) {
			phi *= a[i]
			for j := i; j > 0; j-- {
				// equation 16.4.3 in Abramowitz and Stegun
				phi = 0.5 * (phi + math.Asin(c[j]*math.Sin(phi)/a[j]))
			}
			// 16.1.5 rather than 16.4.4 avoids another cosine
			s, co := math.Sincos(phi)
			return CopolarN{Sn: s, Cn: co, Dn: math.Sqrt(1 - b.m*s*s)}
		}
	}
	// only reached for NaN parameters
	return CopolarN{Sn: math.NaN(), Cn: math.NaN(), Dn: math.NaN()}
}

// nearZeroParameter, Abramowitz and Stegun 16.13
type nearZeroParameter struct {
	m float64
}

func (nz nearZeroParameter) values(u float64) CopolarN {
	s, c := math.Sincos(u)
	factor := 0.25 * nz.m * (u - s*c)
	return CopolarN{
		Sn: s - factor*c,     // 16.13.1
		Cn: c + factor*s,     // 16.13.2
		Dn: 1 - 0.5*nz.m*s*s, // 16.13.3
	}
}

// nearOneParameter, Abramowitz and Stegun 16.15. Past the range of the
// series it falls back to Landen, which converges for any m < 1.
type nearOneParameter struct {
	m1     float64
	landen bounded
}

func (no nearOneParameter) values(u float64) CopolarN {
	c := math.Cosh(u)
	if no.m1 == 0 {
		sech := 1 / c
		return CopolarN{Sn: math.Tanh(u), Cn: sech, Dn: sech}
	}
	if no.m1*c*c > nearOneSeriesLimit {
		return no.landen.values(u)
	}
	var (
		s    = math.Sinh(u)
		sech = 1 / c
		t    = s * sech
		// sn and cn share (sinh u cosh u - u), dn has a plus sign
		minus = 0.25 * no.m1 * (s*c - u) * sech
		plus  = 0.25 * no.m1 * (s*c + u) * sech
	)
	return CopolarN{
		Sn: t + minus*sech, // 16.15.1
		Cn: sech - minus*t, // 16.15.2
		Dn: sech + plus*t,  // 16.15.3
	}
}

// negative maps m < 0 to -m/(1-m) ∈ (0, 1), Abramowitz and Stegun 16.10.
type negative struct {
	algorithm   algorithm
	inputScale  float64
	outputScale float64
}

func newNegative(m float64) negative {
	omM := 1 - m
	scale := math.Sqrt(omM)
	return negative{
		algorithm:   selectAlgorithm(-m / omM),
		inputScale:  scale,
		outputScale: 1 / scale,
	}
}

func (n negative) values(u float64) CopolarN {
	trioD := n.algorithm.values(u * n.inputScale).D()
	return CopolarN{Sn: n.outputScale * trioD.Sd, Cn: trioD.Cd, Dn: trioD.Nd}
}

// big maps m > 1 to 1/m, Abramowitz and Stegun 16.11.
type big struct {
	algorithm   algorithm
	inputScale  float64
	outputScale float64
}

func newBig(m float64) big {
	scale := math.Sqrt(m)
	return big{
		algorithm:   selectAlgorithm(1 / m),
		inputScale:  scale,
		outputScale: 1 / scale,
	}
}

func (b big) values(u float64) CopolarN {
	trioN := b.algorithm.values(u * b.inputScale)
	return CopolarN{Sn: b.outputScale * trioN.Sn, Cn: trioN.Dn, Dn: trioN.Cn}
}

func ulp(x float64) float64 {
	x = math.Abs(x)
	return math.Nextafter(x, math.Inf(1)) - x
}
