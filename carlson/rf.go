package carlson

import "github.com/notargets/gospecial/field"

// R_F polynomial, equation 19.36.1 in DLMF
const (
	rf1           = 240240
	rfE2          = -24024
	rfE3          = 17160
	rfE2E2        = 10010
	rfE2E3        = -16380
	rfE3E3        = 6930
	rfE2E2E2      = -5775
	rfDenominator = 240240
)

type rfDuplication[T field.Element[T]] struct {
	x, y, z    T
	xM, yM, zM T
}

func newRfDuplication[T field.Element[T]](x, y, z T) *rfDuplication[T] {
	return &rfDuplication[T]{x: x, y: y, z: z, xM: x, yM: y, zM: z}
}

func (d *rfDuplication[T]) name() string { return "R_F" }

func (d *rfDuplication[T]) initialMeanPoint() T {
	return field.LinearCombination([]float64{1. / 3, 1. / 3, 1. / 3}, []T{d.x, d.y, d.z})
}

func (d *rfDuplication[T]) maxDeviation(a0 T) float64 {
	return maxDeviation(a0, d.x, d.y, d.z)
}

func (d *rfDuplication[T]) convergenceCriterion(r, dev float64) float64 {
	return dev / eighthRoot(3*r)
}

func (d *rfDuplication[T]) update(m int, fourM float64) (lambda T) {
	var (
		sqrtX = d.xM.Sqrt()
		sqrtY = d.yM.Sqrt()
		sqrtZ = d.zM.Sqrt()
	)
	lambda = sqrtX.Mul(sqrtY.Add(sqrtZ)).Add(sqrtY.Mul(sqrtZ))
	d.xM = d.xM.Add(lambda).Scale(0.25)
	d.yM = d.yM.Add(lambda).Scale(0.25)
	d.zM = d.zM.Add(lambda).Scale(0.25)
	return
}

func (d *rfDuplication[T]) evaluate(a0, aM T, fourM float64) (T, error) {
	// symmetric differences, e1 = 0 by construction
	var (
		inv  = aM.Scale(fourM).Reciprocal()
		bigX = a0.Sub(d.x).Mul(inv)
		bigY = a0.Sub(d.y).Mul(inv)
		bigZ = bigX.Add(bigY).Neg()
	)
	e2 := bigX.Mul(bigY).Sub(bigZ.Mul(bigZ))
	e3 := bigX.Mul(bigY).Mul(bigZ)

	e2e2 := e2.Mul(e2)
	e2e3 := e2.Mul(e3)
	e3e3 := e3.Mul(e3)
	e2e2e2 := e2e2.Mul(e2)

	poly := e2e2e2.Scale(rfE2E2E2).
		Add(e3e3.Scale(rfE3E3)).
		Add(e2e3.Scale(rfE2E3)).
		Add(e2e2.Scale(rfE2E2)).
		Add(e3.Scale(rfE3)).
		Add(e2.Scale(rfE2)).
		AddReal(rf1).
		Scale(1. / rfDenominator)
	return poly.Div(aM.Sqrt()), nil
}
