// Package posit implements posit numbers per the general shape of the
// 2022 Posit Standard: (-1)^s * c * 2^e * useed^r, where useed = 2^2^es
// and the split between regime bits r, exponent bits e, and
// significand bits c is dynamic (large r leaves little room for e/c).
//
// This package is intentionally more approximate than ieee754 or
// fixedpoint: original_source/src/posit/round.rs left PositContext's
// RoundingContext::round as `todo!()` entirely, and spec.md §4.6 flags
// posit rounding as an explicit open question deferred to a future
// cross-check against the Posit 2022 standard. What's implemented here
// (bit codec, classification, a nearest-ties-even round through the
// dynamic-precision encoding) is enough to round-trip and to round
// ordinary values, without claiming conformance on every edge case the
// standard defines.
package posit

import "github.com/trippwill/go-numform/xint"

// Context describes a posit format: es, the maximum exponent field
// width, and nbits, the total encoding width.
type Context struct {
	es    int
	nbits int
}

const (
	ESMax  = 32
	PadMin = 3
)

// NewContext constructs a posit format descriptor.
func NewContext(es, nbits int) Context {
	if es > ESMax {
		panic("posit: exponent width exceeds implementation limit")
	}
	if nbits < es+PadMin {
		panic("posit: total bitwidth too small for this exponent width")
	}
	return Context{es: es, nbits: nbits}
}

func (c Context) ES() int    { return c.es }
func (c Context) NBits() int { return c.nbits }

// MaxP is the maximum significand width allowed (the widest c can be,
// achieved at regime 0).
func (c Context) MaxP() int { return c.nbits - c.es - 2 }

// Useed is 2^2^es, the posit scale factor for one regime step.
func (c Context) Useed() int { return 1 << (1 << uint(c.es)) }

// RScale is 2^es, the exponent field's scale.
func (c Context) RScale() int { return 1 << uint(c.es) }

// RMax is the largest representable regime value.
func (c Context) RMax() int { return c.nbits - 2 }

// Class distinguishes the three posit value classes.
type Class uint8

const (
	ClassZero Class = iota
	ClassNonZero
	ClassNaR
)

// Value is the numerical payload of a posit: zero, not-a-real (NaR),
// or a finite non-zero value (-1)^sign * c * 2^exp * useed^regime.
type Value struct {
	class   Class
	sign    bool
	regime  int
	exp     int
	c       xint.Int
}

func ZeroValue() Value                { return Value{class: ClassZero} }
func NaRValue() Value                 { return Value{class: ClassNaR} }
func NonZeroValue(sign bool, regime, exp int, c xint.Int) Value {
	return Value{class: ClassNonZero, sign: sign, regime: regime, exp: exp, c: c}
}

func (v Value) Class() Class { return v.class }
func (v Value) IsZero() bool { return v.class == ClassZero }
func (v Value) IsNaR() bool  { return v.class == ClassNaR }

// Posit is a rounded posit value together with the Context that
// produced it.
type Posit struct {
	Num Value
	Ctx Context
}

func (p Posit) IsZero() bool { return p.Num.IsZero() }
func (p Posit) IsNaR() bool  { return p.Num.IsNaR() }

// MaxVal is the largest representable finite magnitude.
func (c Context) MaxVal() Posit {
	return Posit{Num: NonZeroValue(false, c.RMax(), 0, xint.One()), Ctx: c}
}

// MinVal is the most negative representable finite value (-MaxVal).
func (c Context) MinVal() Posit {
	return Posit{Num: NonZeroValue(true, c.RMax(), 0, xint.One()), Ctx: c}
}

// Zero constructs exact zero.
func (c Context) Zero() Posit { return Posit{Num: ZeroValue(), Ctx: c} }

// NaR constructs not-a-real.
func (c Context) NaR() Posit { return Posit{Num: NaRValue(), Ctx: c} }
