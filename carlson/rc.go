package carlson

import "github.com/notargets/gospecial/field"

// R_C polynomial, equation 2.13 in Carlson[1995]; the s¹ term vanishes
const (
	rc0           = 80080
	rc2           = 24024
	rc3           = 11440
	rc4           = 30030
	rc5           = 32760
	rc6           = 61215
	rc7           = 90090
	rcDenominator = 80080
)

type rcDuplication[T field.Element[T]] struct {
	x, y   T
	xM, yM T
}

func newRcDuplication[T field.Element[T]](x, y T) *rcDuplication[T] {
	return &rcDuplication[T]{x: x, y: y, xM: x, yM: y}
}

func (d *rcDuplication[T]) name() string { return "R_C" }

func (d *rcDuplication[T]) initialMeanPoint() T {
	return field.LinearCombination([]float64{1. / 3, 2. / 3}, []T{d.x, d.y})
}

func (d *rcDuplication[T]) maxDeviation(a0 T) float64 {
	return maxDeviation(a0, d.x, d.y)
}

func (d *rcDuplication[T]) convergenceCriterion(r, dev float64) float64 {
	return dev / eighthRoot(3*r)
}

func (d *rcDuplication[T]) update(m int, fourM float64) (lambda T) {
	lambda = d.xM.Sqrt().Mul(d.yM.Sqrt()).Scale(2).Add(d.yM)
	d.xM = d.xM.Add(lambda).Scale(0.25)
	d.yM = d.yM.Add(lambda).Scale(0.25)
	return
}

func (d *rcDuplication[T]) evaluate(a0, aM T, fourM float64) (T, error) {
	s := d.y.Sub(a0).Div(aM.Scale(fourM))
	poly := s.Scale(rc7).
		AddReal(rc6).Mul(s).
		AddReal(rc5).Mul(s).
		AddReal(rc4).Mul(s).
		AddReal(rc3).Mul(s).
		AddReal(rc2).Mul(s).
		Mul(s).
		AddReal(rc0).
		Scale(1. / rcDenominator)
	return poly.Div(aM.Sqrt()), nil
}
