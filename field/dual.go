package field

import (
	"math"

	"gonum.org/v1/gonum/num/dual"
	"gonum.org/v1/gonum/num/hyperdual"
)

// Dual carries a value and its first derivative along one direction. Feeding
// Dual arguments through the elliptic integrals yields the derivative of the
// integral in the Emag part.
type Dual dual.Number

// NewDual returns the dual number value + slope·ϵ.
func NewDual(value, slope float64) Dual {
	return Dual{Real: value, Emag: slope}
}

func (d Dual) n() dual.Number { return dual.Number(d) }

func (d Dual) Add(o Dual) Dual {
	return Dual{Real: d.Real + o.Real, Emag: d.Emag + o.Emag}
}

func (d Dual) Sub(o Dual) Dual {
	return Dual{Real: d.Real - o.Real, Emag: d.Emag - o.Emag}
}

func (d Dual) Mul(o Dual) Dual        { return Dual(dual.Mul(d.n(), o.n())) }
func (d Dual) Div(o Dual) Dual        { return Dual(dual.Mul(d.n(), dual.Inv(o.n()))) }
func (d Dual) Neg() Dual              { return Dual{Real: -d.Real, Emag: -d.Emag} }
func (d Dual) Reciprocal() Dual       { return Dual(dual.Inv(d.n())) }
func (d Dual) Scale(f float64) Dual   { return Dual(dual.Scale(f, d.n())) }
func (d Dual) AddReal(f float64) Dual { return Dual{Real: d.Real + f, Emag: d.Emag} }
func (Dual) Zero() Dual               { return Dual{} }
func (Dual) One() Dual                { return Dual{Real: 1} }
func (d Dual) Norm() float64          { return math.Abs(d.Real) }
func (d Dual) RealPart() float64      { return d.Real }
func (d Dual) IsZero() bool           { return d.Real == 0 && d.Emag == 0 }
func (d Dual) IsNaN() bool            { return math.IsNaN(d.Real) || math.IsNaN(d.Emag) }

// Derivative returns the ϵ coefficient.
func (d Dual) Derivative() float64 { return d.Emag }

// Sqrt of a constant zero is zero, the derivative of √x at 0 would be infinite.
func (d Dual) Sqrt() Dual {
	if d.IsZero() {
		return Dual{}
	}
	return Dual(dual.Sqrt(d.n()))
}

// HyperDual carries a value, two first derivatives and the mixed second
// derivative. Seeding both directions with the same slope gives the second
// derivative in E1E2mag.
type HyperDual hyperdual.Number

// NewHyperDual returns value + e1·ϵ₁ + e2·ϵ₂.
func NewHyperDual(value, e1, e2 float64) HyperDual {
	return HyperDual{Real: value, E1mag: e1, E2mag: e2}
}

func (h HyperDual) n() hyperdual.Number { return hyperdual.Number(h) }

func (h HyperDual) Add(o HyperDual) HyperDual {
	return HyperDual{
		Real:    h.Real + o.Real,
		E1mag:   h.E1mag + o.E1mag,
		E2mag:   h.E2mag + o.E2mag,
		E1E2mag: h.E1E2mag + o.E1E2mag,
	}
}

func (h HyperDual) Sub(o HyperDual) HyperDual { return h.Add(o.Neg()) }

func (h HyperDual) Mul(o HyperDual) HyperDual {
	return HyperDual(hyperdual.Mul(h.n(), o.n()))
}

func (h HyperDual) Div(o HyperDual) HyperDual {
	return HyperDual(hyperdual.Mul(h.n(), hyperdual.Inv(o.n())))
}

func (h HyperDual) Neg() HyperDual {
	return HyperDual{Real: -h.Real, E1mag: -h.E1mag, E2mag: -h.E2mag, E1E2mag: -h.E1E2mag}
}

func (h HyperDual) Reciprocal() HyperDual     { return HyperDual(hyperdual.Inv(h.n())) }
func (h HyperDual) Scale(f float64) HyperDual { return HyperDual(hyperdual.Scale(f, h.n())) }
func (h HyperDual) AddReal(f float64) HyperDual {
	o := h
	o.Real += f
	return o
}
func (HyperDual) Zero() HyperDual     { return HyperDual{} }
func (HyperDual) One() HyperDual      { return HyperDual{Real: 1} }
func (h HyperDual) Norm() float64     { return math.Abs(h.Real) }
func (h HyperDual) RealPart() float64 { return h.Real }
func (h HyperDual) IsZero() bool {
	return h.Real == 0 && h.E1mag == 0 && h.E2mag == 0 && h.E1E2mag == 0
}
func (h HyperDual) IsNaN() bool {
	return math.IsNaN(h.Real) || math.IsNaN(h.E1mag) || math.IsNaN(h.E2mag) || math.IsNaN(h.E1E2mag)
}

func (h HyperDual) Sqrt() HyperDual {
	if h.IsZero() {
		return HyperDual{}
	}
	return HyperDual(hyperdual.Sqrt(h.n()))
}
