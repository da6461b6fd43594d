package numeric

import "math"

// Real is the reference scalar domain: ordinary float64 arithmetic wrapped
// up to satisfy Value[Real]. Grounded on the thin math.* wrappers in
// internal/nn/functions.go and internal/nn/derivatives.go, generalized from
// free functions on float64 to methods on a value type.
type Real float64

func (r Real) Add(o Real) Real { return r + o }
func (r Real) Sub(o Real) Real { return r - o }
func (r Real) Mul(o Real) Real { return r * o }
func (r Real) Div(o Real) Real { return r / o }
func (r Real) Neg() Real       { return -r }

func (r Real) Exp() Real  { return Real(math.Exp(float64(r))) }
func (r Real) Log() Real  { return Real(math.Log(float64(r))) }
func (r Real) Sin() Real  { return Real(math.Sin(float64(r))) }
func (r Real) Cos() Real  { return Real(math.Cos(float64(r))) }
func (r Real) Tanh() Real { return Real(math.Tanh(float64(r))) }
func (r Real) Sqrt() Real { return Real(math.Sqrt(float64(r))) }

func (r Real) IsFinite() bool {
	f := float64(r)
	return !math.IsInf(f, 0) && !math.IsNaN(f)
}

func (r Real) Less(o Real) bool { return r < o }

func (r Real) Zero() Real { return 0 }
func (r Real) One() Real  { return 1 }

// FromFloat64 lifts a float64 into the Real domain.
func FromFloat64(f float64) Real { return Real(f) }

// Float64 lowers a Real back to float64, for reporting and tests.
func (r Real) Float64() float64 { return float64(r) }
