package fixedpoint

import (
	"github.com/trippwill/go-numform/dyadic"
	"github.com/trippwill/go-numform/rounding"
	"github.com/trippwill/go-numform/xint"
)

// Context is an immutable fixed-point format descriptor: signedness,
// scale (position of the least-significant digit), total bitwidth,
// rounding mode, and overflow behavior. The default mode is ToZero and
// the default overflow behavior is Saturate, matching
// original_source/src/fixed/round.rs's FixedContext::new.
type Context struct {
	signed   bool
	scale    int
	nbits    int
	mode     rounding.Mode
	overflow Overflow
}

// NewContext constructs a context for a signed-or-unsigned, nbits-wide
// format whose least-significant stored digit has weight 2^scale.
func NewContext(signed bool, scale, nbits int) Context {
	return Context{signed: signed, scale: scale, nbits: nbits, mode: rounding.ToZero, overflow: Saturate}
}

func (c Context) WithRoundingMode(m rounding.Mode) Context {
	c.mode = m
	return c
}

func (c Context) WithOverflow(o Overflow) Context {
	c.overflow = o
	return c
}

func (c Context) Signed() bool         { return c.signed }
func (c Context) Scale() int           { return c.scale }
func (c Context) NBits() int           { return c.nbits }
func (c Context) Mode() rounding.Mode  { return c.mode }
func (c Context) OverflowMode() Overflow { return c.overflow }

// MaxVal is the largest representable value in this format.
// Grounded on FixedContext::maxval.
func (c Context) MaxVal() Value {
	var bits int
	if c.signed {
		bits = c.nbits - 1
	} else {
		bits = c.nbits
	}
	cc := xint.One().Lsh(uint(bits)).Sub(xint.One())
	return Value{Sign: false, C: cc, Ctx: c}
}

// MinVal is the smallest representable value in this format.
// Grounded on FixedContext::minval.
func (c Context) MinVal() Value {
	if c.signed {
		cc := xint.One().Lsh(uint(c.nbits - 1))
		return Value{Sign: true, C: cc, Ctx: c}
	}
	return Value{Sign: false, C: xint.Zero(), Ctx: c}
}

func (v Value) toDyadic() dyadic.Float {
	return dyadic.NewFinite(v.Sign, v.Ctx.scale, v.C).Canonicalize()
}

// ToDyadic exposes v's exact numerical value as a dyadic.Float.
func (v Value) ToDyadic() dyadic.Float { return v.toDyadic() }

// roundWrap implements two's-complement-style wraparound, grounded on
// FixedContext::round_wrap.
func (c Context) roundWrap(val dyadic.Float) Value {
	exp, _ := val.Exp()
	cv, _ := val.C()
	offset := uint(exp - c.scale)
	shifted := cv.Lsh(offset)
	div := xint.One().Lsh(uint(c.nbits))

	if c.signed {
		m := shifted
		if val.Sign() {
			m = m.Neg()
		}
		// m mod 2^nbits in [0, 2^nbits), re-read as a signed nbits-wide value.
		_, wrapped := m.DivModPow2(uint(c.nbits))
		if wrapped.Cmp(xint.One().Lsh(uint(c.nbits-1))) >= 0 {
			wrapped = wrapped.Sub(div)
		}
		return Value{Sign: wrapped.IsNegative(), C: wrapped.Abs(), Ctx: c}
	}
	_, wrapped := shifted.QuoRem(div)
	return Value{Sign: false, C: wrapped, Ctx: c}
}

// roundFinite rounds a finite, non-zero, non-infinite Real value into
// this context's representable range, handling overflow/underflow per
// c.overflow. Grounded on FixedContext::round_finite.
func (c Context) roundFinite(val dyadic.Real) Value {
	p := rounding.WithMinN(c.scale - 1)
	x := dyadic.FromReal(val)
	e, eOk := x.E()
	_, _, n := rounding.SplitPosition(p, e, eOk)

	prep := rounding.Prepare(x, n, false)
	inexact := prep.HalfwayBit || prep.StickyBit

	rounded, _ := rounding.Finalize(prep, 0, false, c.mode)

	maxval := c.MaxVal()
	minval := c.MinVal()

	// Exceeding a bound always replaces the rounded value with a
	// different one (the clamped or wrapped value), so inexact is
	// forced true here even when the kernel itself lost no bits
	// rounding to min_n.
	ord, ok := dyadic.Compare(rounded, maxval.toDyadic())
	if ok && ord == dyadic.Greater {
		var num Value
		if c.overflow == Wrap {
			num = c.roundWrap(rounded)
		} else {
			num = maxval
		}
		num.Flags = Exceptions{Inexact: true, Overflow: true}
		return num
	}

	ord, ok = dyadic.Compare(rounded, minval.toDyadic())
	if ok && ord == dyadic.Less {
		var num Value
		if c.overflow == Wrap {
			num = c.roundWrap(rounded)
		} else {
			num = minval
		}
		// Corrected per the below-minval branch: the original source sets
		// underflow false here even though the symmetric overflow branch
		// sets overflow true; this context always sets underflow true.
		num.Flags = Exceptions{Inexact: true, Underflow: true}
		return num
	}

	sign := rounded.Sign()
	cc, ok := rounded.C()
	if !ok {
		cc = xint.Zero()
	} else {
		// rounded's exponent is at or above scale; re-base c onto 2^scale.
		rexp, _ := rounded.Exp()
		cc = cc.Lsh(uint(rexp - c.scale))
	}
	return Value{Sign: sign, C: cc, Ctx: c, Flags: Exceptions{Inexact: inexact}}
}

// Round rounds any Real value into this context, per
// original_source/src/fixed/round.rs's `impl RoundingContext for
// FixedContext`. Zero is always representable; +Inf saturates to
// MaxVal, -Inf to MinVal; NaN rounds to zero with Invalid set.
func (c Context) Round(val dyadic.Real) Value {
	switch {
	case val.IsZero():
		return Value{Sign: false, C: xint.Zero(), Ctx: c}
	case val.IsInfinite():
		if val.Sign() {
			return c.MinVal()
		}
		return c.MaxVal()
	case !val.IsNumerical():
		return Value{Sign: false, C: xint.Zero(), Ctx: c, Flags: Exceptions{Invalid: true}}
	default:
		return c.roundFinite(val)
	}
}
