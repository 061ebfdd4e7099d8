package field

import "math"

// Real is a float64 element.
type Real float64

func (r Real) Add(o Real) Real        { return r + o }
func (r Real) Sub(o Real) Real        { return r - o }
func (r Real) Mul(o Real) Real        { return r * o }
func (r Real) Div(o Real) Real        { return r / o }
func (r Real) Neg() Real              { return -r }
func (r Real) Reciprocal() Real       { return 1 / r }
func (r Real) Sqrt() Real             { return Real(math.Sqrt(float64(r))) }
func (r Real) Scale(f float64) Real   { return r * Real(f) }
func (r Real) AddReal(f float64) Real { return r + Real(f) }
func (Real) Zero() Real               { return 0 }
func (Real) One() Real                { return 1 }
func (r Real) Norm() float64          { return math.Abs(float64(r)) }
func (r Real) RealPart() float64      { return float64(r) }
func (r Real) IsZero() bool           { return r == 0 }
func (r Real) IsNaN() bool            { return math.IsNaN(float64(r)) }
