// Package field holds the arithmetic contract the elliptic algorithms are
// written against, together with the concrete element types shipped with
// the library.
package field

// Element is satisfied by any numeric type the duplication and AGM
// algorithms can run on. T is the implementing type itself.
//
// Sqrt must return the principal root, the one with non-negative real part.
type Element[T any] interface {
	Add(T) T
	Sub(T) T
	Mul(T) T
	Div(T) T
	Neg() T
	Reciprocal() T
	Sqrt() T
	Scale(float64) T
	AddReal(float64) T
	Zero() T
	One() T
	Norm() float64
	RealPart() float64
	IsZero() bool
	IsNaN() bool
}

// LinearCombination returns Σ weights[i]·values[i].
func LinearCombination[T Element[T]](weights []float64, values []T) (sum T) {
	if len(weights) != len(values) {
		panic("linear combination: mismatched lengths")
	}
	sum = Of[T]().Zero()
	for i, v := range values {
		sum = sum.Add(v.Scale(weights[i]))
	}
	return
}
