package carlson

import (
	"fmt"
	"math"

	"github.com/notargets/gospecial/field"
)

// The arithmetic-geometric mean converges quadratically, this bound is only
// reached for degenerate arguments (two zeros, NaN).
const maxAGM = 32

// agm iterates the arithmetic-geometric mean of √y and √z, calling visit
// with the current pair before each step. It returns the converged mean.
func agm[T field.Element[T]](y, z T, policy nanPolicy, visit func(a, g T)) (T, error) {
	var (
		a        = y.Sqrt()
		g        = z.Sqrt()
		prevDiff = math.Inf(1)
	)
	for i := 0; i < maxAGM; i++ {
		diff := a.Sub(g).Norm()
		if policy == propagateNaN && (a.IsNaN() || g.IsNaN()) {
			return a, nil
		}
		// once at the rounding floor the difference stops shrinking
		if diff <= 4*ulp(a.Norm()) || diff >= prevDiff {
			return a, nil
		}
		prevDiff = diff
		visit(a, g)
		aNext := a.Add(g).Scale(0.5)
		g = geometricMean(aNext, a, g)
		a = aNext
	}
	var zero T
	return zero, fmt.Errorf("AGM: no convergence after %d steps: %w", maxAGM, ErrConvergenceFailed)
}

// geometricMean returns √(ag) with the sign for which |aNext - g| ≤ |aNext + g|,
// so complex iterates converge to the principal value.
func geometricMean[T field.Element[T]](aNext, a, g T) T {
	gNext := a.Mul(g).Sqrt()
	if aNext.Sub(gNext).Norm() > aNext.Add(gNext).Norm() {
		return gNext.Neg()
	}
	return gNext
}

// completeRf computes R_F(0, y, z) = π / (2 M(√y, √z)), DLMF 19.22.1.
func completeRf[T field.Element[T]](y, z T, policy nanPolicy) (T, error) {
	m, err := agm(y, z, policy, func(a, g T) {})
	if err != nil {
		return m, err
	}
	return m.Reciprocal().Scale(0.5 * math.Pi), nil
}

// completeRg computes R_G(0, y, z) = π/(4 M) (a₀² - Σ 2ⁿ⁻¹ cₙ²), DLMF 19.22.6.
func completeRg[T field.Element[T]](y, z T, policy nanPolicy) (T, error) {
	var (
		// a₀² - c₀²/2
		sum    = y.Add(z).Scale(0.5)
		weight = 0.5
	)
	m, err := agm(y, z, policy, func(a, g T) {
		c := a.Sub(g).Scale(0.5)
		weight *= 2
		sum = sum.Sub(c.Mul(c).Scale(weight))
	})
	if err != nil {
		return m, err
	}
	return sum.Div(m).Scale(0.25 * math.Pi), nil
}

func ulp(x float64) float64 {
	x = math.Abs(x)
	if math.IsInf(x, 0) || math.IsNaN(x) {
		return x
	}
	return math.Nextafter(x, math.Inf(1)) - x
}
