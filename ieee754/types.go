package ieee754

import "github.com/trippwill/go-numform/xint"

// Exceptions records the condition flags raised while producing a
// Float. The five IEEE-754-standard flags (invalid, divzero, overflow,
// underflow, inexact; underflow is kept in two forms, underflow_pre and
// underflow_post) plus the four non-standard
// bookkeeping flags (carry, denorm, tiny_pre, tiny_post) this module
// additionally tracks; grounded on
// original_source/src/ieee754/types.rs's Exceptions struct.
type Exceptions struct {
	Invalid       bool
	DivZero       bool
	Overflow      bool
	UnderflowPre  bool
	UnderflowPost bool
	Inexact       bool

	Carry    bool
	Denorm   bool
	TinyPre  bool
	TinyPost bool
}

// Class distinguishes the five bitpattern classes an IEEE 754 value
// may fall into.
type Class uint8

const (
	ClassZero Class = iota
	ClassSubnormal
	ClassNormal
	ClassInfinity
	ClassNaN
)

// Value is the numerical payload of a Float, independent of its
// context. Grounded on original_source/src/ieee754/types.rs's Float
// enum.
type Value struct {
	class   Class
	sign    bool
	exp     int     // valid for ClassNormal only
	c       xint.Int // significand; valid for Subnormal/Normal
	quiet   bool     // valid for ClassNaN only
	payload xint.Int // valid for ClassNaN only
}

func ZeroValue(sign bool) Value { return Value{class: ClassZero, sign: sign} }

func SubnormalValue(sign bool, c xint.Int) Value {
	return Value{class: ClassSubnormal, sign: sign, c: c}
}

func NormalValue(sign bool, exp int, c xint.Int) Value {
	return Value{class: ClassNormal, sign: sign, exp: exp, c: c}
}

func InfinityValue(sign bool) Value { return Value{class: ClassInfinity, sign: sign} }

func NaNValue(sign, quiet bool, payload xint.Int) Value {
	return Value{class: ClassNaN, sign: sign, quiet: quiet, payload: payload}
}

func (v Value) Class() Class   { return v.class }
func (v Value) Sign() bool     { return v.sign }
func (v Value) IsZero() bool   { return v.class == ClassZero }
func (v Value) IsSubnormal() bool { return v.class == ClassSubnormal }
func (v Value) IsNormal() bool { return v.class == ClassNormal }
func (v Value) IsInfinite() bool { return v.class == ClassInfinity }
func (v Value) IsNaN() bool    { return v.class == ClassNaN }
func (v Value) IsFinite() bool { return v.class == ClassZero || v.class == ClassSubnormal || v.class == ClassNormal }

// Quiet reports the NaN's quiet bit; only meaningful when IsNaN.
func (v Value) Quiet() bool { return v.quiet }

// Payload reports the NaN's payload bits; only meaningful when IsNaN.
func (v Value) Payload() xint.Int { return v.payload }

// Float is an IEEE 754 floating-point number: a Value together with
// the Exceptions raised while producing it and the Context that
// produced it. Grounded on original_source/src/ieee754/types.rs's
// IEEE754 struct.
type Float struct {
	Num   Value
	Flags Exceptions
	Ctx   Context
}

func (f Float) Sign() bool       { return f.Num.Sign() }
func (f Float) IsZero() bool     { return f.Num.IsZero() }
func (f Float) IsInfinite() bool { return f.Num.IsInfinite() }
func (f Float) IsNaN() bool      { return f.Num.IsNaN() }
func (f Float) IsFinite() bool   { return f.Num.IsFinite() }
