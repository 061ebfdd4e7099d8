package carlson

import (
	"errors"
	"fmt"
	"math"

	"github.com/notargets/gospecial/field"
)

// ErrConvergenceFailed is returned (wrapped) when an iteration exhausts its
// step budget. On the real-valued path this is how NaN arguments surface.
var ErrConvergenceFailed = errors.New("convergence failed")

const (
	maxDuplications = 16
	// ulp of one
	unitRoundoff = 0x1p-52
)

// nanPolicy selects how a NaN convergence metric is treated.
type nanPolicy uint8

const (
	// failOnNaN never accepts a NaN metric, the loop runs out and an error
	// is returned. Used for float64 arguments.
	failOnNaN nanPolicy = iota
	// propagateNaN stops at the first NaN metric and lets the NaN flow
	// through the final evaluation. Used for generic and complex arguments.
	propagateNaN
)

func (p nanPolicy) converged(q, scaledMean float64) bool {
	if p == propagateNaN && (math.IsNaN(q) || math.IsNaN(scaledMean)) {
		return true
	}
	return q < scaledMean
}

// duplicator is the per-integral part of Carlson's duplication algorithm.
// Implementations hold both the immutable initial variables and the working
// copies updated at each step.
type duplicator[T field.Element[T]] interface {
	name() string
	initialMeanPoint() T
	maxDeviation(a0 T) float64
	convergenceCriterion(r, dev float64) float64
	// update applies one duplication step to the working variables and
	// returns λₘ.
	update(m int, fourM float64) T
	evaluate(a0, aM T, fourM float64) (T, error)
}

// integral runs the duplication loop until q < 4ᵐ|aₘ|, then hands over to
// the integral specific polynomial evaluation.
func integral[T field.Element[T]](d duplicator[T], policy nanPolicy) (result T, err error) {
	var (
		a0    = d.initialMeanPoint()
		q     = d.convergenceCriterion(unitRoundoff, d.maxDeviation(a0))
		aM    = a0
		fourM = 1.0
	)
	for m := 0; m < maxDuplications; m++ {
		if m > 0 && policy.converged(q, fourM*aM.Norm()) {
			return d.evaluate(a0, aM, fourM)
		}
		lambda := d.update(m, fourM)
		aM = aM.Add(lambda).Scale(0.25)
		fourM *= 4
	}
	err = fmt.Errorf("%s: no convergence after %d duplications: %w",
		d.name(), maxDuplications, ErrConvergenceFailed)
	return
}

// maxDeviation returns max |a0 - vᵢ|, NaN if any deviation is NaN.
func maxDeviation[T field.Element[T]](a0 T, v ...T) (dev float64) {
	for _, vi := range v {
		dev = math.Max(dev, a0.Sub(vi).Norm())
	}
	return
}

// eighthRoot is the 1/8 power used by every convergence criterion.
func eighthRoot(x float64) float64 {
	return math.Sqrt(math.Sqrt(math.Sqrt(x)))
}
