package carlson

import "github.com/notargets/gospecial/field"

// R_J and R_D polynomial, equation 19.36.1 in DLMF
const (
	rjd1           = 4084080
	rjdE2          = -875160
	rjdE3          = 680680
	rjdE2E2        = 417690
	rjdE4          = -556920
	rjdE2E3        = -706860
	rjdE5          = 471240
	rjdE2E2E2      = -255255
	rjdE3E3        = 306306
	rjdE2E4        = 612612
	rjdE2E2E3      = 675675
	rjdE3E4PE2E5   = -540540
	rjdDenominator = 4084080
)

func rjdPolynomial[T field.Element[T]](e2, e3, e4, e5 T) T {
	var (
		e2e2   = e2.Mul(e2)
		e2e3   = e2.Mul(e3)
		e2e4   = e2.Mul(e4)
		e2e5   = e2.Mul(e5)
		e3e3   = e3.Mul(e3)
		e3e4   = e3.Mul(e4)
		e2e2e2 = e2e2.Mul(e2)
		e2e2e3 = e2e2.Mul(e3)
	)
	return e3e4.Add(e2e5).Scale(rjdE3E4PE2E5).
		Add(e2e2e3.Scale(rjdE2E2E3)).
		Add(e2e4.Scale(rjdE2E4)).
		Add(e3e3.Scale(rjdE3E3)).
		Add(e2e2e2.Scale(rjdE2E2E2)).
		Add(e5.Scale(rjdE5)).
		Add(e2e3.Scale(rjdE2E3)).
		Add(e4.Scale(rjdE4)).
		Add(e2e2.Scale(rjdE2E2)).
		Add(e3.Scale(rjdE3)).
		Add(e2.Scale(rjdE2)).
		AddReal(rjd1).
		Scale(1. / rjdDenominator)
}

type rjDuplication[T field.Element[T]] struct {
	x, y, z, p     T
	delta          T // (p-x)(p-y)(p-z)
	xM, yM, zM, pM T
	// sₘ from the appendix of Carlson[2000]
	sM     T
	policy nanPolicy
}

func newRjDuplication[T field.Element[T]](x, y, z, p, delta T, policy nanPolicy) *rjDuplication[T] {
	return &rjDuplication[T]{
		x: x, y: y, z: z, p: p,
		xM: x, yM: y, zM: z, pM: p,
		delta:  delta,
		policy: policy,
	}
}

func (d *rjDuplication[T]) name() string { return "R_J" }

func (d *rjDuplication[T]) initialMeanPoint() T {
	return field.LinearCombination([]float64{0.2, 0.2, 0.2, 0.4}, []T{d.x, d.y, d.z, d.p})
}

func (d *rjDuplication[T]) maxDeviation(a0 T) float64 {
	return maxDeviation(a0, d.x, d.y, d.z, d.p)
}

func (d *rjDuplication[T]) convergenceCriterion(r, dev float64) float64 {
	return dev / eighthRoot(0.25*r)
}

func (d *rjDuplication[T]) update(m int, fourM float64) (lambda T) {
	var (
		sqrtX = d.xM.Sqrt()
		sqrtY = d.yM.Sqrt()
		sqrtZ = d.zM.Sqrt()
		sqrtP = d.pM.Sqrt()
	)
	dM := sqrtP.Add(sqrtX).Mul(sqrtP.Add(sqrtY)).Mul(sqrtP.Add(sqrtZ))
	if m == 0 {
		d.sM = dM.Scale(0.5)
	} else {
		// equation A.3 in Carlson[2000]
		rM := d.sM.Mul(d.delta.Div(d.sM.Mul(d.sM).Scale(fourM)).AddReal(1).Sqrt().AddReal(1))
		d.sM = dM.Mul(rM).Sub(d.delta.Scale(1 / (fourM * fourM))).
			Div(dM.Add(rM.Scale(1 / fourM)).Scale(2))
	}

	lambda = sqrtX.Mul(sqrtY.Add(sqrtZ)).Add(sqrtY.Mul(sqrtZ))
	d.xM = d.xM.Add(lambda).Scale(0.25)
	d.yM = d.yM.Add(lambda).Scale(0.25)
	d.zM = d.zM.Add(lambda).Scale(0.25)
	d.pM = d.pM.Add(lambda).Scale(0.25)
	return
}

func (d *rjDuplication[T]) evaluate(a0, aM T, fourM float64) (T, error) {
	var (
		inv   = aM.Scale(fourM).Reciprocal()
		bigX  = a0.Sub(d.x).Mul(inv)
		bigY  = a0.Sub(d.y).Mul(inv)
		bigZ  = a0.Sub(d.z).Mul(inv)
		bigP  = bigX.Add(bigY).Add(bigZ).Scale(-0.5)
		bigP2 = bigP.Mul(bigP)
		xyz   = bigX.Mul(bigY).Mul(bigZ)
	)
	e2 := bigX.Mul(bigY.Add(bigZ)).Add(bigY.Mul(bigZ)).Sub(bigP2.Scale(3))
	e3 := xyz.Add(bigP.Scale(2).Mul(e2.Add(bigP2.Scale(2))))
	e4 := xyz.Scale(2).Add(bigP.Mul(e2.Add(bigP2.Scale(3)))).Mul(bigP)
	e5 := xyz.Mul(bigP2)

	polyTerm := rjdPolynomial(e2, e3, e4, e5).Div(aM.Mul(aM.Sqrt()).Scale(fourM))

	// single R_C term replacing the running sum of Carlson[1995]
	one := field.Of[T]().One()
	rcTerm, err := rc(one, d.delta.Div(d.sM.Mul(d.sM).Scale(fourM)).AddReal(1), d.policy)
	if err != nil {
		return rcTerm, err
	}
	return polyTerm.Add(rcTerm.Scale(3).Div(d.sM)), nil
}
