package legendre

import (
	"math"
	"testing"

	"github.com/notargets/gospecial/field"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mathext"
)

// mustFor returns a helper that unwraps (value, error) pairs.
func mustFor(t *testing.T) func(float64, error) float64 {
	return func(v float64, err error) float64 {
		t.Helper()
		require.NoError(t, err)
		return v
	}
}

func TestCompleteAgainstGonum(t *testing.T) {
	must := mustFor(t)
	for _, m := range []float64{0, 1e-10, 1e-3, 0.1, 0.3, 0.5, 0.7, 0.9, 0.99, 0.999999} {
		k := must(BigK(m))
		e := must(BigE(m))
		assert.InEpsilon(t, mathext.CompleteK(m), k, 1e-12, "K(%g)", m)
		assert.InEpsilon(t, mathext.CompleteE(m), e, 1e-12, "E(%g)", m)
		assert.InEpsilon(t, k, must(BigKPrime(1-m)), 1e-13)
		assert.InEpsilon(t, k, must(BigPi(0, m)), 1e-13)
		if m > 1e-3 {
			assert.InEpsilon(t, (k-e)/m, must(BigD(m)), 1e-11)
		}
	}
	assert.Equal(t, 1., must(BigE(1)))
	assert.Equal(t, math.Pi/2, must(BigK(0)))
}

func TestLegendreRelation(t *testing.T) {
	must := mustFor(t)
	// E K' + E' K - K K' = π/2
	for _, m := range []float64{0.05, 0.25, 0.5, 0.8} {
		k, kp := must(BigK(m)), must(BigK(1-m))
		e, ep := must(BigE(m)), must(BigE(1-m))
		assert.InDelta(t, math.Pi/2, e*kp+ep*k-k*kp, 1e-14)
	}
}

func TestBigPi(t *testing.T) {
	must := mustFor(t)
	// Π(m, m) = E(m)/(1-m), DLMF 19.6.1
	for _, m := range []float64{0.1, 0.4, 0.75} {
		assert.InEpsilon(t, must(BigE(m))/(1-m), must(BigPi(m, m)), 1e-13)
	}
}

func TestNome(t *testing.T) {
	must := mustFor(t)
	assert.InEpsilon(t, math.Exp(-math.Pi), must(Nome(0.5)), 1e-14)
	assert.InEpsilon(t, 1e-9/16, must(Nome(1e-9)), 1e-9)
	assert.Equal(t, 0., must(Nome(0)))
	// both branches agree at the switch
	below := must(Nome(0.999999 * smallParameter))
	above := must(Nome(1.000001 * smallParameter))
	assert.InEpsilon(t, below, above, 1e-5)
}

func TestIncompleteAgainstGonum(t *testing.T) {
	must := mustFor(t)
	for _, m := range []float64{0, 0.2, 0.5, 0.9, 0.999} {
		for _, phi := range []float64{0, 0.1, 0.5, 1, 1.3, math.Pi / 2} {
			assert.InDelta(t, mathext.EllipticF(phi, m), must(BigF(phi, m)), 1e-12, "F(%g,%g)", phi, m)
			assert.InDelta(t, mathext.EllipticE(phi, m), must(BigEIncomplete(phi, m)), 1e-12, "E(%g,%g)", phi, m)
		}
	}
}

func TestIncompleteIdentities(t *testing.T) {
	must := mustFor(t)
	for _, m := range []float64{0.2, 0.5, 0.9} {
		for _, phi := range []float64{0.3, 0.9, 1.4} {
			f := must(BigF(phi, m))
			e := must(BigEIncomplete(phi, m))
			assert.InDelta(t, (f-e)/m, must(BigDIncomplete(phi, m)), 1e-13)
			assert.InDelta(t, f, must(BigPiIncomplete(phi, 0, m)), 1e-14)
		}
		assert.InEpsilon(t, must(BigK(m)), must(BigF(math.Pi/2, m)), 1e-14)
		assert.InEpsilon(t, must(BigE(m)), must(BigEIncomplete(math.Pi/2, m)), 1e-14)
	}
	// m = 0: F(φ, 0) = φ
	assert.InDelta(t, 1.2, must(BigF(1.2, 0)), 1e-15)
}

func TestQuasiPeriodicity(t *testing.T) {
	must := mustFor(t)
	m, phi := 0.6, 0.7
	k, e := must(BigK(m)), must(BigE(m))
	for _, n := range []int{-2, -1, 1, 3} {
		shifted := phi + float64(n)*math.Pi
		assert.InDelta(t, must(BigF(phi, m))+2*float64(n)*k, must(BigF(shifted, m)), 1e-13)
		assert.InDelta(t, must(BigEIncomplete(phi, m))+2*float64(n)*e, must(BigEIncomplete(shifted, m)), 1e-13)
	}
	// odd in φ
	assert.InDelta(t, -must(BigF(phi, m)), must(BigF(-phi, m)), 1e-15)
}

func TestFieldComplete(t *testing.T) {
	must := mustFor(t)
	for _, m := range []float64{0, 0.25, 0.5, 0.95} {
		k, err := FieldBigK(field.Real(m))
		require.NoError(t, err)
		assert.InEpsilon(t, must(BigK(m)), float64(k), 1e-15)
		e, err := FieldBigE(field.Real(m))
		require.NoError(t, err)
		assert.InEpsilon(t, must(BigE(m)), float64(e), 1e-15)
	}
	for _, m := range []float64{0.25, 0.5, 0.95} {
		kp, err := FieldBigKPrime(field.Complex(complex(m, 0)))
		require.NoError(t, err)
		assert.InEpsilon(t, must(BigKPrime(m)), real(kp), 1e-14)
		assert.Equal(t, 0., imag(kp))
	}
	e, err := FieldBigE(field.Real(1))
	require.NoError(t, err)
	assert.Equal(t, field.Real(1), e)

	d, err := FieldBigD(field.Real(0.5))
	require.NoError(t, err)
	assert.InEpsilon(t, must(BigD(0.5)), float64(d), 1e-15)
	p, err := FieldBigPi(field.Real(0.3), field.Real(0.5))
	require.NoError(t, err)
	assert.InEpsilon(t, must(BigPi(0.3, 0.5)), float64(p), 1e-15)
}

func TestFieldDerivative(t *testing.T) {
	must := mustFor(t)
	// dK/dm = (E - (1-m)K) / (2m(1-m)), DLMF 19.4.1
	m := 0.4
	k, err := FieldBigK(field.NewDual(m, 1))
	require.NoError(t, err)
	expected := (must(BigE(m)) - (1-m)*must(BigK(m))) / (2 * m * (1 - m))
	assert.InEpsilon(t, expected, k.Derivative(), 1e-10)
}

func TestFieldDerivativeZeroArgument(t *testing.T) {
	must := mustFor(t)
	m, n, h := 0.5, 0.3, 1e-5

	d, err := FieldBigD(field.NewDual(m, 1))
	require.NoError(t, err)
	assert.InEpsilon(t, must(BigD(m)), d.RealPart(), 1e-14)
	assert.InEpsilon(t, (must(BigD(m+h))-must(BigD(m-h)))/(2*h), d.Derivative(), 1e-8)

	p, err := FieldBigPi(field.NewDual(n, 0), field.NewDual(m, 1))
	require.NoError(t, err)
	assert.InEpsilon(t, must(BigPi(n, m)), p.RealPart(), 1e-14)
	assert.InEpsilon(t, (must(BigPi(n, m+h))-must(BigPi(n, m-h)))/(2*h), p.Derivative(), 1e-8)

	p, err = FieldBigPi(field.NewDual(n, 1), field.NewDual(m, 0))
	require.NoError(t, err)
	assert.InEpsilon(t, (must(BigPi(n+h, m))-must(BigPi(n-h, m)))/(2*h), p.Derivative(), 1e-8)
}
