package ieee754

import (
	"github.com/trippwill/go-numform/dyadic"
	"github.com/trippwill/go-numform/xint"
)

// ToDyadic converts f's numerical value to a dyadic.Float, dropping
// the Exceptions and Context. NaN payload/quiet information is not
// representable in dyadic.Float and is lost; callers that need to
// preserve a NaN payload across rounding must not go through this
// conversion (see Context.Round, which special-cases NaN directly).
//
// Grounded on original_source/src/ieee754/types.rs's Number impl for
// IEEE754 (sign/exp/e/n/c/m/p).
func (f Float) ToDyadic() dyadic.Float {
	switch f.Num.Class() {
	case ClassZero:
		return dyadic.Zero()
	case ClassSubnormal:
		exp := f.Ctx.ExpMin()
		return dyadic.NewFinite(f.Num.sign, exp, f.Num.c)
	case ClassNormal:
		return dyadic.NewFinite(f.Num.sign, f.Num.exp, f.Num.c)
	case ClassInfinity:
		return dyadic.Inf(f.Num.sign)
	default: // ClassNaN
		return dyadic.NaN()
	}
}

// Sign, Exp, E, N, C, M, P, Prec and the predicates implement the same
// read-only views dyadic.Float exposes, letting Float participate
// anywhere a Real is expected (spec.md §6) without losing its
// Context/Exceptions.
func (f Float) Exp() (int, bool) { return f.ToDyadic().Exp() }
func (f Float) E() (int, bool) { return f.ToDyadic().E() }
func (f Float) N() (int, bool) { return f.ToDyadic().N() }
func (f Float) C() (xint.Int, bool) { return f.ToDyadic().C() }
func (f Float) M() (xint.Int, bool) { return f.ToDyadic().M() }
func (f Float) P() (int, bool) { return f.ToDyadic().P() }
func (f Float) Prec() (int, bool) { return f.ToDyadic().Prec() }
func (f Float) Radix() int { return 2 }
func (f Float) IsNumerical() bool { return !f.Num.IsNaN() }
func (f Float) IsNegative() bool { return f.ToDyadic().IsNegative() }
