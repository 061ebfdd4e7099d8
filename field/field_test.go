package field

import (
	"math"
	"math/cmplx"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRegistry(t *testing.T) {
	var (
		wg    sync.WaitGroup
		reals = make([]*Field[Real], 32)
		duals = make([]*Field[Dual], 32)
	)
	for i := range reals {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			reals[i] = Of[Real]()
			duals[i] = Of[Dual]()
		}(i)
	}
	wg.Wait()
	for i := range reals {
		assert.Same(t, reals[0], reals[i])
		assert.Same(t, duals[0], duals[i])
	}
	assert.Equal(t, Real(0), reals[0].Zero())
	assert.Equal(t, Real(1), reals[0].One())
	assert.Equal(t, Dual{Real: 1}, duals[0].One())
	assert.Contains(t, reals[0].Name, "Real")
	assert.Contains(t, Of[Complex]().Name, "Complex")
	assert.NotEqual(t, reals[0].Name, duals[0].Name)
}

func TestLinearCombination(t *testing.T) {
	assert.Equal(t, Real(7), LinearCombination([]float64{1, 2}, []Real{1, 3}))
	assert.Equal(t, Complex(complex(2, 1)),
		LinearCombination([]float64{2, 1}, []Complex{1, complex(0, 1)}))
	assert.Equal(t, Real(0), LinearCombination[Real](nil, nil))
	assert.Panics(t, func() { LinearCombination([]float64{1}, []Real{1, 2}) })
}

func TestReal(t *testing.T) {
	x := Real(4)
	assert.Equal(t, Real(2), x.Sqrt())
	assert.Equal(t, Real(.25), x.Reciprocal())
	assert.Equal(t, Real(12), x.Scale(3))
	assert.Equal(t, Real(5), x.AddReal(1))
	assert.Equal(t, 4., x.Neg().Norm())
	assert.True(t, Real(-1).Sqrt().IsNaN())
	assert.True(t, Real(0).IsZero())
	assert.False(t, x.IsZero())
}

func TestComplex(t *testing.T) {
	// principal branch on both sides of the cut
	above := Complex(complex(-4, 0)).Sqrt()
	below := Complex(complex(-4, math.Copysign(0, -1))).Sqrt()
	assert.Equal(t, complex(0, 2), complex128(above))
	assert.Equal(t, complex(0, -2), complex128(below))
	for _, z := range []complex128{complex(3, 4), complex(-3, 4), complex(-3, -4), complex(0, -1)} {
		r := Complex(z).Sqrt()
		assert.GreaterOrEqual(t, r.RealPart(), 0.)
		assert.InDelta(t, 0, cmplx.Abs(complex128(r.Mul(r))-z), 1e-15)
	}
	z := Complex(complex(3, 4))
	assert.Equal(t, 5., z.Norm())
	assert.Equal(t, 4., z.ImagPart())
	assert.True(t, Complex(cmplx.NaN()).IsNaN())
	assert.Equal(t, Complex(complex(4, 4)), z.AddReal(1))
}

func TestDual(t *testing.T) {
	// d/dx √x = 1/(2√x)
	x := NewDual(4, 1)
	r := x.Sqrt()
	assert.Equal(t, 2., r.RealPart())
	assert.InDelta(t, 0.25, r.Derivative(), 1e-15)

	// d/dx 1/((x-3)²+1) at x = 4
	q := x.Sub(NewDual(3, 0)).Mul(x.AddReal(-3)).AddReal(1).Reciprocal()
	assert.InDelta(t, 0.5, q.RealPart(), 1e-15)
	assert.InDelta(t, -0.5, q.Derivative(), 1e-15)

	assert.Equal(t, NewDual(-8, -2), x.Scale(-2))
	assert.False(t, NewDual(0, 1).IsZero())
	assert.True(t, NewDual(0, 0).IsZero())
	assert.True(t, NewDual(1, math.NaN()).IsNaN())
	assert.Equal(t, 3., NewDual(-3, 7).Norm())
	assert.Equal(t, NewDual(1, 0), x.Div(x))
}

func TestSqrtConstantZero(t *testing.T) {
	assert.Equal(t, Dual{}, NewDual(0, 0).Sqrt())
	assert.Equal(t, HyperDual{}, NewHyperDual(0, 0, 0).Sqrt())
	// a seeded zero still carries its infinite slope
	assert.True(t, math.IsInf(NewDual(0, 1).Sqrt().Derivative(), 1))
}

func TestHyperDual(t *testing.T) {
	// f(x) = x^(3/2): f' = 1.5√x, f'' = 0.75/√x
	x := NewHyperDual(4, 1, 1)
	f := x.Mul(x.Sqrt())
	assert.InDelta(t, 8, f.RealPart(), 1e-15)
	assert.InDelta(t, 3, f.E1mag, 1e-15)
	assert.InDelta(t, 3, f.E2mag, 1e-15)
	assert.InDelta(t, 0.375, f.E1E2mag, 1e-15)

	g := x.Div(x.AddReal(1)).Sub(x.One()).Neg()
	assert.InDelta(t, 0.2, g.RealPart(), 1e-15)
	assert.InDelta(t, -0.04, g.E1mag, 1e-15)
	assert.True(t, HyperDual{}.IsZero())
	assert.Equal(t, HyperDual{Real: 2, E1mag: 0.5, E2mag: 0.5}, x.Scale(0.5))
	assert.Equal(t, 1., x.Reciprocal().Mul(x).Real)
}
