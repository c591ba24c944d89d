// Package fixedpoint implements binary fixed-point numbers:
// (-1)^s * c * 2^scale for a fixed-width integer c and a fixed
// exponent scale, with either wraparound or saturating overflow.
//
// Grounded on original_source/src/fixed/{round,number}.rs, following
// the Context/Value/Exceptions/builder-pattern shape of
// github.com/trippwill/go-currency's fixedpoint package (the teacher
// this module descends from), now generalized to a binary base-2
// scale instead of decimal.
package fixedpoint

import "github.com/trippwill/go-numform/xint"

// Overflow selects what happens to a value that rounds outside the
// representable range.
type Overflow uint8

const (
	// Wrap preserves only the low nbits bits of the two's-complement
	// (signed) or plain (unsigned) representation.
	Wrap Overflow = iota
	// Saturate clamps to the nearest representable boundary value.
	Saturate
)

func (o Overflow) String() string {
	switch o {
	case Wrap:
		return "Wrap"
	case Saturate:
		return "Saturate"
	default:
		return "Overflow(?)"
	}
}

// Exceptions records the condition flags raised while rounding a
// Value. Grounded on original_source/src/fixed/number.rs's Exceptions.
type Exceptions struct {
	Invalid   bool
	Overflow  bool
	Underflow bool
	Inexact   bool
}

// Value is a rounded fixed-point number together with the Exceptions
// raised producing it and the Context that produced it.
type Value struct {
	Sign bool
	C    xint.Int
	Flags Exceptions
	Ctx  Context
}

func (v Value) IsZero() bool { return v.C.IsZero() }
