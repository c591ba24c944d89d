package numeric

import (
	"github.com/trippwill/go-numform/dyadic"
	"github.com/trippwill/go-numform/ieee754"
	"github.com/trippwill/go-numform/oracle"
	"github.com/trippwill/go-numform/xint"
)

// workingPrec is the round-to-odd intermediate precision used before
// re-rounding into a format with the given maximum precision. Two
// guard bits above the target's own precision are enough for any of
// the eight rounding modes to recover the correctly rounded result
// from a round-to-odd value (the standard double-rounding argument
// for round-to-odd as an intermediate rounding).
func workingPrec(maxP int) int { return maxP + 2 }

func ieeeRound(c ieee754.Context) RoundFunc[ieee754.Float] { return c.RoundReal }

// subnormalOperand reports whether x is an ieee754.Float in the
// subnormal class; operands from other formats are never subnormal in
// this sense.
func subnormalOperand(x dyadic.Real) bool {
	f, ok := x.(ieee754.Float)
	return ok && f.Num.IsSubnormal()
}

// daz substitutes a subnormal ieee754.Float operand with a signed zero
// when c's DTZ flag requests it. Grounded on
// original_source/src/ieee754/ops.rs's rounded_Nary_impl, which
// rewrites each subnormal argument to src.ctx.zero(src.sign()) before
// computing.
func daz(c ieee754.Context, x dyadic.Real) dyadic.Real {
	if !c.DTZ() || !subnormalOperand(x) {
		return x
	}
	return dyadic.NewFinite(x.Sign(), 0, xint.Zero())
}

// nanOperand short-circuits an operation whose operand is NaN: the NaN
// is rounded into c (forcing it quiet) and Invalid is set, without
// invoking the oracle at all. Grounded on the same file's `if
// src.is_nan() { ... result.flags.invalid = true; result }` branch.
func nanOperand(c ieee754.Context, x dyadic.Real) (ieee754.Float, oracle.Flags, bool) {
	if !x.IsNaN() {
		return ieee754.Float{}, oracle.Flags{}, false
	}
	r := c.RoundReal(x)
	r.Flags.Invalid = true
	return r, oracle.Flags{Invalid: true}, true
}

// finishIEEE folds the oracle's invalid/divzero side channel onto r's
// own Exceptions, sets Denorm when any operand was subnormal before
// DAZ substitution, and forces a NaN result to the canonical quiet NaN
// rather than whatever payload the oracle/rounding happened to
// produce. Grounded on the same rounded_Nary_impl macro's
// post-processing (the "override NaNs" step and the flags.denorm /
// flags.invalid / flags.divzero assignments).
func finishIEEE(c ieee754.Context, r ieee754.Float, flags oracle.Flags, denorm bool) (ieee754.Float, oracle.Flags) {
	if r.IsNaN() {
		qnan := c.QNaN()
		qnan.Flags = r.Flags
		r = qnan
	}
	r.Flags.Invalid = r.Flags.Invalid || flags.Invalid
	r.Flags.DivZero = r.Flags.DivZero || flags.DivZero
	r.Flags.Denorm = denorm
	return r, flags
}

func ieeeApply1(o oracle.Oracle, op string, c ieee754.Context, x dyadic.Real) (ieee754.Float, oracle.Flags) {
	if r, flags, short := nanOperand(c, x); short {
		return r, flags
	}
	denorm := subnormalOperand(x)
	r, flags := Apply1(o, op, daz(c, x), workingPrec(c.MaxP()), ieeeRound(c))
	return finishIEEE(c, r, flags, denorm)
}

func ieeeApply2(o oracle.Oracle, op string, c ieee754.Context, x, y dyadic.Real) (ieee754.Float, oracle.Flags) {
	if r, flags, short := nanOperand(c, x); short {
		return r, flags
	}
	if r, flags, short := nanOperand(c, y); short {
		return r, flags
	}
	denorm := subnormalOperand(x) || subnormalOperand(y)
	r, flags := Apply2(o, op, daz(c, x), daz(c, y), workingPrec(c.MaxP()), ieeeRound(c))
	return finishIEEE(c, r, flags, denorm)
}

func ieeeApply3(o oracle.Oracle, op string, c ieee754.Context, x, y, z dyadic.Real) (ieee754.Float, oracle.Flags) {
	for _, v := range [...]dyadic.Real{x, y, z} {
		if r, flags, short := nanOperand(c, v); short {
			return r, flags
		}
	}
	denorm := subnormalOperand(x) || subnormalOperand(y) || subnormalOperand(z)
	r, flags := Apply3(o, op, daz(c, x), daz(c, y), daz(c, z), workingPrec(c.MaxP()), ieeeRound(c))
	return finishIEEE(c, r, flags, denorm)
}

func Add(o oracle.Oracle, c ieee754.Context, x, y dyadic.Real) (ieee754.Float, oracle.Flags) {
	return ieeeApply2(o, "add", c, x, y)
}

func Sub(o oracle.Oracle, c ieee754.Context, x, y dyadic.Real) (ieee754.Float, oracle.Flags) {
	return ieeeApply2(o, "sub", c, x, y)
}

func Mul(o oracle.Oracle, c ieee754.Context, x, y dyadic.Real) (ieee754.Float, oracle.Flags) {
	return ieeeApply2(o, "mul", c, x, y)
}

func Div(o oracle.Oracle, c ieee754.Context, x, y dyadic.Real) (ieee754.Float, oracle.Flags) {
	return ieeeApply2(o, "div", c, x, y)
}

func Hypot(o oracle.Oracle, c ieee754.Context, x, y dyadic.Real) (ieee754.Float, oracle.Flags) {
	return ieeeApply2(o, "hypot", c, x, y)
}

func Sqrt(o oracle.Oracle, c ieee754.Context, x dyadic.Real) (ieee754.Float, oracle.Flags) {
	return ieeeApply1(o, "sqrt", c, x)
}

func Neg(o oracle.Oracle, c ieee754.Context, x dyadic.Real) (ieee754.Float, oracle.Flags) {
	return ieeeApply1(o, "neg", c, x)
}

func Abs(o oracle.Oracle, c ieee754.Context, x dyadic.Real) (ieee754.Float, oracle.Flags) {
	return ieeeApply1(o, "abs", c, x)
}

func Recip(o oracle.Oracle, c ieee754.Context, x dyadic.Real) (ieee754.Float, oracle.Flags) {
	return ieeeApply1(o, "recip", c, x)
}

func FMA(o oracle.Oracle, c ieee754.Context, x, y, z dyadic.Real) (ieee754.Float, oracle.Flags) {
	return ieeeApply3(o, "fma", c, x, y, z)
}
