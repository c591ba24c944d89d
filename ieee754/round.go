package ieee754

import (
	"github.com/trippwill/go-numform/dyadic"
	"github.com/trippwill/go-numform/rounding"
	"github.com/trippwill/go-numform/xint"
)

// overflowToInfinity reports whether an overflowing result should
// round to infinity rather than clamp to the largest finite magnitude.
// Grounded on original_source/src/ieee754/round.rs's overflow_to_infinity.
func overflowToInfinity(sign bool, mode rounding.Mode) bool {
	isNearest, dir := mode.ToDirection(sign)
	if isNearest {
		return true
	}
	switch dir {
	case rounding.DirToZero:
		return false
	case rounding.DirAwayZero:
		return true
	case rounding.DirToEven:
		return true // MaxFloat has an odd low bit
	default: // DirToOdd
		return false // MaxFloat has an odd low bit
	}
}

// roundTiny reports whether the rounded result would be tiny: smaller
// in magnitude than the smallest normal, even though rounding already
// happened at the finite, bounded precision this context allows. A value
// whose truncation is zero is reported as not tiny.
// Grounded on original_source/src/ieee754/round.rs's round_tiny.
func (c Context) roundTiny(trunc dyadic.Float, prep rounding.PrepareResult) bool {
	inexact := prep.HalfwayBit || prep.QuarterBit || prep.StickyBit

	if trunc.IsZero() && inexact {
		return false
	}

	eTrunc, ok := trunc.E()
	if !ok {
		return false
	}

	switch {
	case eTrunc+1 < c.Emin():
		return true
	case eTrunc+1 > c.Emin():
		return false
	}

	tinyVal := bitmask(c.MaxP() - 1)
	cTrunc, _ := trunc.C()
	if cTrunc.Cmp(tinyVal) < 0 {
		return true
	}

	lowBits := prep.QuarterBit || prep.StickyBit
	isNearest, dir := c.mode.ToDirection(trunc.Sign())
	if isNearest {
		return !prep.HalfwayBit || !prep.QuarterBit
	}
	switch dir {
	case rounding.DirToZero:
		return true
	case rounding.DirAwayZero, rounding.DirToEven:
		return !prep.HalfwayBit || !lowBits
	default: // DirToOdd
		return true
	}
}

// roundFinalize applies the overflow/FTZ/subnormal/normal case split to
// an unbounded-exponent rounded result, producing the final bounded
// Float and its Exceptions. Grounded on
// original_source/src/ieee754/round.rs's round_finalize.
func (c Context) roundFinalize(unbounded dyadic.Float, tinyPre, tinyPost, inexact, carry bool) Float {
	if unbounded.IsZero() {
		return Float{
			Num: ZeroValue(unbounded.Sign()),
			Flags: Exceptions{
				UnderflowPre:  tinyPre && inexact,
				UnderflowPost: tinyPost && inexact,
				Inexact:       inexact,
				TinyPre:       tinyPre,
				TinyPost:      tinyPost,
			},
			Ctx: c,
		}
	}

	e, _ := unbounded.E()
	if e > c.Emax() {
		sign := unbounded.Sign()
		if overflowToInfinity(sign, c.mode) {
			return Float{
				Num:   InfinityValue(sign),
				Flags: Exceptions{Overflow: true, Inexact: true},
				Ctx:   c,
			}
		}
		mf := c.MaxFloat(sign)
		mf.Flags.Overflow = true
		mf.Flags.Inexact = true
		return mf
	}

	if c.ftz && tinyPost {
		return Float{
			Num: ZeroValue(unbounded.Sign()),
			Flags: Exceptions{
				UnderflowPre:  true,
				UnderflowPost: true,
				Inexact:       true,
				TinyPre:       true,
				TinyPost:      true,
			},
			Ctx: c,
		}
	}

	sign := unbounded.Sign()
	c0, _ := unbounded.C()
	if e < c.Emin() {
		return Float{
			Num: SubnormalValue(sign, c0),
			Flags: Exceptions{
				UnderflowPre:  tinyPre && inexact,
				UnderflowPost: tinyPost && inexact,
				Inexact:       inexact,
				TinyPre:       tinyPre,
				TinyPost:      tinyPost,
			},
			Ctx: c,
		}
	}

	exp, _ := unbounded.Exp()
	return Float{
		Num: NormalValue(sign, exp, c0),
		Flags: Exceptions{
			UnderflowPre:  tinyPre && inexact,
			UnderflowPost: tinyPost && inexact,
			Inexact:       inexact,
			Carry:         carry,
			TinyPre:       tinyPre,
			TinyPost:      tinyPost,
		},
		Ctx: c,
	}
}

// roundFinite rounds a finite, non-zero dyadic value into this context.
// Grounded on original_source/src/ieee754/round.rs's round_finite.
func (c Context) roundFinite(x dyadic.Float) Float {
	p := rounding.WithMaxP(c.MaxP()).And(rounding.WithMinN(c.ExpMin() - 1))
	e, eOk := x.E()
	_, hasMaxP, n := rounding.SplitPosition(p, e, eOk)
	_ = hasMaxP

	prep := rounding.Prepare(x, n, true)
	inexact := prep.HalfwayBit || prep.QuarterBit || prep.StickyBit

	var tinyPre, tinyPost bool
	if x.IsZero() {
		tinyPre, tinyPost = false, false
	} else {
		tinyPre = e < c.Emin()
		tinyPost = c.roundTiny(prep.High, prep)
	}

	unbounded, _ := rounding.Finalize(prep, c.MaxP(), true, c.mode)
	// Carry: rounding moved the value up into the next binade.
	eRounded, eRoundedOk := unbounded.E()
	carry := eOk && eRoundedOk && eRounded > e
	return c.roundFinalize(unbounded, tinyPre, tinyPost, inexact, carry)
}

// Round rounds an already-encoded Float val (possibly from a different
// Context) into this context. Zero, infinity, and NaN are preserved by
// class; NaN payloads are truncated or zero-padded to this context's
// width and the result is always forced quiet. Finite, non-zero values
// go through roundFinite.
//
// Grounded on original_source/src/ieee754/round.rs's
// `impl RoundingContext for Context`'s round method.
func (c Context) Round(val Float) Float {
	switch val.Num.Class() {
	case ClassZero:
		return Float{Num: ZeroValue(val.Num.Sign()), Ctx: c}
	case ClassInfinity:
		return Float{Num: InfinityValue(val.Num.Sign()), Ctx: c}
	case ClassNaN:
		offset := c.MaxP() - val.Ctx.MaxP()
		payload := val.Num.payload
		switch {
		case offset < 0:
			payload, _ = payload.DivModPow2(uint(-offset))
		case offset > 0:
			payload = payload.Lsh(uint(offset))
		}
		return Float{Num: NaNValue(val.Num.Sign(), true, payload), Ctx: c}
	default:
		return c.roundFinite(val.ToDyadic())
	}
}

// RoundReal rounds any Real value (spec.md §6) into this context,
// dispatching by class exactly as Round does for an already-encoded
// Float. This is the entry point used when rounding the output of an
// arithmetic operation rather than re-rounding an existing Float.
func (c Context) RoundReal(val dyadic.Real) Float {
	switch {
	case val.IsZero():
		return Float{Num: ZeroValue(val.Sign()), Ctx: c}
	case val.IsInfinite():
		return Float{Num: InfinityValue(val.Sign()), Ctx: c}
	case !val.IsNumerical():
		return Float{Num: NaNValue(val.Sign(), true, xint.Zero()), Ctx: c}
	default:
		return c.roundFinite(dyadic.FromReal(val))
	}
}
