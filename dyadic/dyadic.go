// Package dyadic implements the canonical dyadic-float value model that
// every rounding context in this module is built on: an arbitrary-precision,
// unbounded-exponent real of the form (-1)^sign * c * 2^exp, plus signed
// infinities and an unsigned, payload-less NaN.
//
// Grounded on original_source/src/rfloat/number.rs (the "RFloat" type in
// the distilled mpmfnum crate this module's spec was taken from).
package dyadic

import "github.com/trippwill/go-numform/xint"

// Kind distinguishes the three cases a Float can hold.
type Kind uint8

const (
	// KindFinite is (-1)^s * c * 2^exp for c >= 0.
	KindFinite Kind = iota
	// KindInfinite is a signed infinity.
	KindInfinite
	// KindNaN is the unsigned, payload-less non-number.
	KindNaN
)

// Float is the canonical carrier value used throughout the rounding
// kernel. It is immutable: every operation that "changes" a Float
// returns a fresh value.
type Float struct {
	kind Kind
	sign bool
	exp  int
	c    xint.Int
}

// Zero is the canonical zero: sign is erased, exp is 0.
func Zero() Float {
	return Float{kind: KindFinite}
}

// One is the canonical +1.
func One() Float {
	return Float{kind: KindFinite, c: xint.One()}
}

// NegOne is the canonical -1.
func NegOne() Float {
	return Float{kind: KindFinite, sign: true, c: xint.One()}
}

// NaN is the unique non-number value.
func NaN() Float {
	return Float{kind: KindNaN}
}

// Inf returns a signed infinity.
func Inf(sign bool) Float {
	return Float{kind: KindInfinite, sign: sign}
}

// NewFinite constructs (-1)^sign * c * 2^exp. c must be non-negative; a
// negative c is a programming error caught here rather than silently
// misinterpreted, since sign lives in the sign field, not in c.
func NewFinite(sign bool, exp int, c xint.Int) Float {
	if c.IsNegative() {
		panic("dyadic: NewFinite: c must be non-negative")
	}
	return Float{kind: KindFinite, sign: sign, exp: exp, c: c}
}

// IsZero reports whether f is the (canonical or non-canonical) zero.
func (f Float) IsZero() bool {
	return f.kind == KindFinite && f.c.IsZero()
}

// IsFinite reports whether f is a finite real (possibly zero).
func (f Float) IsFinite() bool { return f.kind == KindFinite }

// IsInfinite reports whether f is +/- infinity.
func (f Float) IsInfinite() bool { return f.kind == KindInfinite }

// IsNaN reports whether f is NaN.
func (f Float) IsNaN() bool { return f.kind == KindNaN }

// IsNumerical reports whether f represents an actual numerical value:
// finite or infinite, but not NaN.
func (f Float) IsNumerical() bool { return f.kind != KindNaN }

// Sign reports the sign bit. It is always false for NaN (which carries
// no sign), matching spec semantics for sign-less encodings.
func (f Float) Sign() bool {
	if f.kind == KindNaN {
		return false
	}
	return f.sign
}

// IsNegative reports whether f is negative. For zero this returns
// false always (zero's sign is erased); for NaN it returns false since
// negativity is not well-defined there.
func (f Float) IsNegative() bool {
	switch f.kind {
	case KindFinite:
		return !f.c.IsZero() && f.sign
	case KindInfinite:
		return f.sign
	default:
		return false
	}
}

// Exp returns the absolute position of the LSB of c (the "exp" view).
// Defined only for finite, non-zero values; ok is false otherwise.
func (f Float) Exp() (exp int, ok bool) {
	if f.kind != KindFinite || f.c.IsZero() {
		return 0, false
	}
	return f.exp, true
}

// C returns the non-negative integer significand. Defined only for
// finite, non-zero values.
func (f Float) C() (c xint.Int, ok bool) {
	if f.kind != KindFinite || f.c.IsZero() {
		return xint.Zero(), false
	}
	return f.c, true
}

// M returns the signed integer significand ((-1)^sign * c). Defined
// only for finite, non-zero values.
func (f Float) M() (m xint.Int, ok bool) {
	c, ok := f.C()
	if !ok {
		return xint.Zero(), false
	}
	if f.sign {
		return c.Neg(), true
	}
	return c, true
}

// P returns bitlen(c), the precision of the significand. Defined only
// for finite, non-zero values.
func (f Float) P() (p int, ok bool) {
	c, ok := f.C()
	if !ok {
		return 0, false
	}
	return c.BitLen(), true
}

// E returns the IEEE-style normalized exponent, exp - 1 + bitlen(c).
// Defined only for finite, non-zero values.
func (f Float) E() (e int, ok bool) {
	exp, ok := f.Exp()
	if !ok {
		return 0, false
	}
	p, _ := f.P()
	return exp - 1 + p, true
}

// N returns the absolute position just below the LSB, exp - 1. Defined
// only for finite, non-zero values.
func (f Float) N() (n int, ok bool) {
	exp, ok := f.Exp()
	if !ok {
		return 0, false
	}
	return exp - 1, true
}

// Canonicalize maps any zero (regardless of sign) to the canonical
// zero. Non-zero finites, infinities, and NaN are returned unchanged.
func (f Float) Canonicalize() Float {
	if f.IsZero() {
		return Zero()
	}
	return f
}

// GetBit returns the value of the absolute bit at position k: false
// when k is below exp or above e, or when f is not a finite, non-zero
// value.
func (f Float) GetBit(k int) bool {
	if f.kind != KindFinite || f.c.IsZero() {
		return false
	}
	e, _ := f.E()
	if k < f.exp || k > e {
		return false
	}
	return f.c.Bit(k-f.exp) == 1
}
