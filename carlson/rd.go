package carlson

import "github.com/notargets/gospecial/field"

type rdDuplication[T field.Element[T]] struct {
	x, y, z    T
	xM, yM, zM T
	// Σ 1/(4ᵐ √zₘ (zₘ + λₘ)), R_D cannot be recovered from the final mean
	// point alone
	sum T
}

func newRdDuplication[T field.Element[T]](x, y, z T) *rdDuplication[T] {
	return &rdDuplication[T]{
		x: x, y: y, z: z,
		xM: x, yM: y, zM: z,
		sum: field.Of[T]().Zero(),
	}
}

func (d *rdDuplication[T]) name() string { return "R_D" }

func (d *rdDuplication[T]) initialMeanPoint() T {
	return field.LinearCombination([]float64{0.2, 0.2, 0.6}, []T{d.x, d.y, d.z})
}

func (d *rdDuplication[T]) maxDeviation(a0 T) float64 {
	return maxDeviation(a0, d.x, d.y, d.z)
}

func (d *rdDuplication[T]) convergenceCriterion(r, dev float64) float64 {
	return dev / eighthRoot(0.25*r)
}

func (d *rdDuplication[T]) update(m int, fourM float64) (lambda T) {
	var (
		sqrtX = d.xM.Sqrt()
		sqrtY = d.yM.Sqrt()
		sqrtZ = d.zM.Sqrt()
	)
	lambda = sqrtX.Mul(sqrtY.Add(sqrtZ)).Add(sqrtY.Mul(sqrtZ))
	d.sum = d.sum.Add(d.zM.Add(lambda).Mul(sqrtZ).Scale(fourM).Reciprocal())
	d.xM = d.xM.Add(lambda).Scale(0.25)
	d.yM = d.yM.Add(lambda).Scale(0.25)
	d.zM = d.zM.Add(lambda).Scale(0.25)
	return
}

func (d *rdDuplication[T]) evaluate(a0, aM T, fourM float64) (T, error) {
	var (
		inv   = aM.Scale(fourM).Reciprocal()
		bigX  = a0.Sub(d.x).Mul(inv)
		bigY  = a0.Sub(d.y).Mul(inv)
		bigZ  = bigX.Add(bigY).Scale(-1. / 3)
		bigXY = bigX.Mul(bigY)
		bigZ2 = bigZ.Mul(bigZ)
	)
	e2 := bigXY.Sub(bigZ2.Scale(6))
	e3 := bigXY.Scale(3).Sub(bigZ2.Scale(8)).Mul(bigZ)
	e4 := bigXY.Sub(bigZ2).Scale(3).Mul(bigZ2)
	e5 := bigXY.Mul(bigZ2).Mul(bigZ)

	polyTerm := rjdPolynomial(e2, e3, e4, e5).Div(aM.Mul(aM.Sqrt()).Scale(fourM))
	return polyTerm.Add(d.sum.Scale(3)), nil
}
