package rounding

import (
	"fmt"

	"github.com/trippwill/go-numform/dyadic"
	"github.com/trippwill/go-numform/xint"
)

// Params bundles the two optional bounds every rounding context is
// parameterized by (spec.md §3, "Rounding context (generic)"). At
// least one of MaxP, MinN must be set, or rounding is a programming
// error.
type Params struct {
	MaxP   int
	HasMaxP bool
	MinN   int
	HasMinN bool
}

// WithMaxP returns Params with the maximum precision bound set.
func WithMaxP(p int) Params { return Params{MaxP: p, HasMaxP: true} }

// WithMinN returns Params with the minimum absolute digit bound set.
func WithMinN(n int) Params { return Params{MinN: n, HasMinN: true} }

// And combines a MaxP bound with a MinN bound (the subnormalization-capable case).
func (p Params) And(other Params) Params {
	r := p
	if other.HasMaxP {
		r.MaxP, r.HasMaxP = other.MaxP, true
	}
	if other.HasMinN {
		r.MinN, r.HasMinN = other.MinN, true
	}
	return r
}

// SplitPosition computes n, the absolute digit position at which x
// will be split, from the input's e (if defined) and the bounds in p.
// Grounded on original_source/src/rfloat/round.rs's round_params.
func SplitPosition(p Params, e int, eDefined bool) (maxP int, hasMaxP bool, n int) {
	switch {
	case !p.HasMaxP && !p.HasMinN:
		panic("rounding: at least one of MaxP, MinN must be specified")
	case !p.HasMaxP:
		// fixed-point rounding: bounded by n, unbounded precision
		return 0, false, p.MinN
	case !p.HasMinN:
		// floating-point rounding: bounded by precision, unbounded exponent
		if !eDefined {
			return p.MaxP, true, 0
		}
		return p.MaxP, true, e - p.MaxP
	default:
		// floating-point rounding with subnormalization
		if !eDefined {
			return p.MaxP, true, 0
		}
		unboundedN := e - p.MaxP
		return p.MaxP, true, xint.Max(p.MinN, unboundedN)
	}
}

// PrepareResult is the output of Prepare: the truncated high part plus
// the rounding bits needed to decide whether to increment it.
type PrepareResult struct {
	High       dyadic.Float
	HalfwayBit bool
	QuarterBit bool
	HasQuarter bool
	StickyBit  bool
}

// Prepare splits x at absolute digit n, returning the truncated high
// part and the guard (halfway) and sticky bits. When withQuarter is
// true (the IEEE case), the quarter bit (the bit just below halfway)
// is also extracted, and sticky is redefined to be the OR strictly
// below that quarter bit.
//
// Grounded on original_source/src/rfloat/round.rs's round_prepare and
// split.rs's rgs()/rs().
func Prepare(x dyadic.Float, n int, withQuarter bool) PrepareResult {
	high, low := dyadic.Split(x, n)

	if !withQuarter {
		half, rest := dyadic.Split(low, n-1)
		return PrepareResult{
			High:       high,
			HalfwayBit: half.GetBit(n),
			StickyBit:  !rest.IsZero(),
		}
	}

	half, rest := dyadic.Split(low, n-1)
	quarter, rest2 := dyadic.Split(rest, n-2)
	return PrepareResult{
		High:       high,
		HalfwayBit: half.GetBit(n),
		QuarterBit: quarter.GetBit(n - 1),
		HasQuarter: true,
		StickyBit:  !rest2.IsZero(),
	}
}

// Increment decides whether the truncated significand cTrunc should be
// incremented by one, per the table in spec.md §4.3.
func Increment(cTrunc xint.Int, half, sticky bool, mode Mode, sign bool) bool {
	if !half && !sticky {
		return false // exact
	}

	isNearest, dir := mode.ToDirection(sign)

	if isNearest {
		if !half {
			return false
		}
		if sticky {
			return true
		}
		// exact tie
		switch dir {
		case DirToZero:
			return false
		case DirAwayZero:
			return true
		case DirToEven:
			return cTrunc.IsOdd()
		case DirToOdd:
			return cTrunc.IsEven()
		default:
			panic(fmt.Sprintf("rounding: unhandled direction %v", dir))
		}
	}

	// directed
	switch dir {
	case DirToZero:
		return false
	case DirAwayZero:
		return true
	case DirToEven:
		return cTrunc.IsOdd()
	case DirToOdd:
		return cTrunc.IsEven()
	default:
		panic(fmt.Sprintf("rounding: unhandled direction %v", dir))
	}
}

// Finalize completes the rounding procedure: increments the truncated
// significand if Increment says so, then carries into the next binade
// if the result's bit length would exceed p (when p is bounded).
// Returns the rounded Float and whether a carry occurred.
//
// Grounded on original_source/src/rfloat/round.rs's round_finalize.
func Finalize(prep PrepareResult, maxP int, hasMaxP bool, mode Mode) (dyadic.Float, bool) {
	sign := prep.High.Sign()
	exp, expOk := prep.High.Exp()
	c, cOk := prep.High.C()
	if !expOk || !cOk {
		// high is zero: nothing to round, no carry possible.
		return prep.High, false
	}

	// With a quarter-bit split the quarter bit is also a lost bit below
	// the halfway bit, so it counts toward sticky here.
	sticky := prep.StickyBit || (prep.HasQuarter && prep.QuarterBit)

	carry := false
	if Increment(c, prep.HalfwayBit, sticky, mode, sign) {
		c = c.Add(xint.One())
		if hasMaxP && c.BitLen() > maxP {
			c = c.Rsh(1)
			exp++
			carry = true
		}
	}

	return dyadic.NewFinite(sign, exp, c), carry
}

// FiniteResult bundles everything a format context needs after rounding
// a finite, non-zero real through the kernel: the rounded value
// (unbounded exponent), the rounding bits that produced it, and whether
// a final carry occurred.
type FiniteResult struct {
	Rounded    dyadic.Float
	HalfwayBit bool
	QuarterBit bool
	HasQuarter bool
	StickyBit  bool
	Carry      bool
	// MaxP/HasMaxP and N record the parameters actually used, so
	// callers (e.g. the IEEE tininess logic) can recompute further
	// derived quantities without re-deriving round_params.
	MaxP    int
	HasMaxP bool
	N       int
}

// RoundFinite runs the full split -> prepare -> finalize pipeline for a
// finite, non-zero x (spec.md §4.3, round_finite). A result that
// rounds to zero is returned as the canonical zero.
func RoundFinite(x dyadic.Float, p Params, mode Mode, withQuarter bool) FiniteResult {
	e, eOk := x.E()
	maxP, hasMaxP, n := SplitPosition(p, e, eOk)

	prep := Prepare(x, n, withQuarter)
	rounded, carry := Finalize(prep, maxP, hasMaxP, mode)

	return FiniteResult{
		Rounded:    rounded.Canonicalize(),
		HalfwayBit: prep.HalfwayBit,
		QuarterBit: prep.QuarterBit,
		HasQuarter: prep.HasQuarter,
		StickyBit:  prep.StickyBit,
		Carry:      carry,
		MaxP:       maxP,
		HasMaxP:    hasMaxP,
		N:          n,
	}
}

// Inexact reports whether any lost bit was non-zero: the IEEE inexact
// condition (spec.md §4.4).
func (r FiniteResult) Inexact() bool {
	return r.HalfwayBit || (r.HasQuarter && r.QuarterBit) || r.StickyBit
}

// Round dispatches a Real value by class (zero/infinite/NaN/finite) and
// rounds finite values through the kernel, mirroring
// original_source/src/rfloat/round.rs's `impl RoundingContext for
// RFloatContext`. Formats with their own notion of infinity/NaN build
// their own classification wrapper around RoundFinite instead of this
// helper; this one is the context-agnostic, unbounded-exponent case
// (spec.md §4.3's "Classification wrapper" specialized to the plain
// rational/dyadic format).
func Round(x dyadic.Float, p Params, mode Mode) dyadic.Float {
	if x.IsZero() {
		return dyadic.Zero()
	}
	if x.IsInfinite() {
		return dyadic.Inf(x.Sign())
	}
	if x.IsNaN() {
		return dyadic.NaN()
	}
	return RoundFinite(x, p, mode, false).Rounded
}
