package dyadic

import "github.com/trippwill/go-numform/xint"

// Real is the capability surface every number format in this module
// exposes to the rounding kernel (spec §6, "Real capability"). A value
// need only satisfy this interface to be rounded through any context.
type Real interface {
	Radix() int
	Sign() bool
	Exp() (int, bool)
	E() (int, bool)
	N() (int, bool)
	C() (xint.Int, bool)
	M() (xint.Int, bool)
	Prec() (int, bool)
	IsZero() bool
	IsFinite() bool
	IsInfinite() bool
	IsNaN() bool
	IsNumerical() bool
	IsNegative() bool
}

var _ Real = Float{}

// Radix is always 2 for every type in this system.
func (f Float) Radix() int { return 2 }

// Prec reports the precision of f: E() - N(), or (0, false) when f
// has no well-defined digit positions (zero, infinite, NaN).
func (f Float) Prec() (int, bool) {
	e, ok1 := f.E()
	n, ok2 := f.N()
	if !ok1 || !ok2 {
		return 0, false
	}
	return e - n, true
}

// FromReal lowers any Real-capable value to its canonical dyadic-float
// representation, dispatching on class exactly as spec §4.1 describes.
func FromReal(val Real) Float {
	if !val.IsNumerical() {
		return NaN()
	}
	if val.IsInfinite() {
		return Inf(val.Sign())
	}
	if val.IsZero() {
		return Zero()
	}
	c, _ := val.C()
	exp, _ := val.Exp()
	return NewFinite(val.Sign(), exp, c)
}
