package posit

import (
	"github.com/trippwill/go-numform/dyadic"
	"github.com/trippwill/go-numform/xint"
)

// ToDyadic converts p's numerical value to a dyadic.Float. NaR maps to
// NaN (posits have no signed infinity to distinguish it from), since
// spec.md's Real capability surface only has IsNumerical to mark the
// non-real case.
func (p Posit) ToDyadic() dyadic.Float {
	switch p.Num.class {
	case ClassZero:
		return dyadic.Zero()
	case ClassNaR:
		return dyadic.NaN()
	default:
		exp := p.Num.regime*p.Ctx.RScale() + p.Num.exp
		return dyadic.NewFinite(p.Num.sign, exp, p.Num.c).Canonicalize()
	}
}

func (p Posit) Sign() bool       { return p.Num.sign }
func (p Posit) IsFinite() bool   { return p.Num.class != ClassNaR }
func (p Posit) IsInfinite() bool { return false }
func (p Posit) IsNumerical() bool { return p.Num.class != ClassNaR }

func (p Posit) E() (int, bool) { return p.ToDyadic().E() }
func (p Posit) N() (int, bool) { return p.ToDyadic().N() }
func (p Posit) C() (xint.Int, bool) { return p.ToDyadic().C() }
func (p Posit) Prec() (int, bool) {
	if p.Num.class != ClassNonZero {
		return 0, false
	}
	return p.Num.c.BitLen(), true
}
