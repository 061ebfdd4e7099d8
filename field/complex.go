package field

import (
	"math/cmplx"
)

// Complex is a complex128 element. Square roots are taken on the principal
// branch, so the cut lies along the negative real axis.
type Complex complex128

func (c Complex) Add(o Complex) Complex     { return c + o }
func (c Complex) Sub(o Complex) Complex     { return c - o }
func (c Complex) Mul(o Complex) Complex     { return c * o }
func (c Complex) Div(o Complex) Complex     { return c / o }
func (c Complex) Neg() Complex              { return -c }
func (c Complex) Reciprocal() Complex       { return 1 / c }
func (c Complex) Sqrt() Complex             { return Complex(cmplx.Sqrt(complex128(c))) }
func (c Complex) Scale(f float64) Complex   { return c * Complex(complex(f, 0)) }
func (c Complex) AddReal(f float64) Complex { return c + Complex(complex(f, 0)) }
func (Complex) Zero() Complex               { return 0 }
func (Complex) One() Complex                { return 1 }
func (c Complex) Norm() float64             { return cmplx.Abs(complex128(c)) }
func (c Complex) RealPart() float64         { return real(c) }
func (c Complex) ImagPart() float64         { return imag(c) }
func (c Complex) IsZero() bool              { return c == 0 }
func (c Complex) IsNaN() bool               { return cmplx.IsNaN(complex128(c)) }
