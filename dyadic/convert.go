package dyadic

import (
	"math"
	"math/big"

	"github.com/trippwill/go-numform/xint"
)

// FromBigFloat converts a *big.Float to a Float exactly: this never
// rounds, since a big.Float's mantissa and exponent already describe a
// dyadic number. Grounded on original_source/src/rfloat/number.rs's
// `impl From<Float> for RFloat` (the rug::Float counterpart).
func FromBigFloat(v *big.Float) Float {
	if v.IsInf() {
		return Inf(v.Signbit())
	}
	if v.Sign() == 0 {
		return Zero()
	}

	mant := new(big.Float).SetPrec(v.Prec())
	exp2 := v.MantExp(mant) // v == mant * 2^exp2, 0.5 <= |mant| < 1

	// Shift mant left by the full precision, which always yields an
	// integer, giving an exact (sign, exp, c) triple. c is not reduced
	// to an odd integer, so trailing zero bits may remain.
	prec := v.Prec()
	if prec == 0 {
		prec = 53
	}
	scaled := new(big.Float).SetPrec(prec + 64)
	scaled.SetMantExp(mant, int(prec))

	i, _ := scaled.Int(nil)
	c := xint.FromBigInt(i)
	sign := c.IsNegative()
	c = c.Abs()

	exp := exp2 - int(prec)
	return NewFinite(sign, exp, c).Canonicalize()
}

// ToBigFloat converts a finite Float to a *big.Float at the precision
// needed to hold it exactly (never rounds). Infinities and NaN map to
// the corresponding big.Float special values.
func (f Float) ToBigFloat() *big.Float {
	switch f.kind {
	case KindNaN:
		r := new(big.Float)
		return r.SetInf(false) // math/big has no NaN; callers check IsNaN first
	case KindInfinite:
		r := new(big.Float)
		return r.SetInf(f.sign)
	default:
		if f.IsZero() {
			r := new(big.Float)
			if f.sign {
				r.Neg(r)
			}
			return r
		}
		c, _ := f.C()
		exp, _ := f.Exp()
		prec := uint(c.BitLen())
		if prec == 0 {
			prec = 1
		}
		r := new(big.Float).SetPrec(prec)
		r.SetInt(c.BigInt())
		r.SetMantExp(r, exp)
		if f.sign {
			r.Neg(r)
		}
		return r
	}
}

// FromFloat64 converts a float64 to a Float exactly (float64 is always
// dyadic, so this never rounds); NaN and +/-Inf map to their Float
// counterparts.
func FromFloat64(x float64) Float {
	if math.IsNaN(x) {
		return NaN()
	}
	if math.IsInf(x, 0) {
		return Inf(math.Signbit(x))
	}
	if x == 0 {
		return Zero()
	}
	bits := math.Float64bits(x)
	sign := bits>>63 == 1
	rawExp := int((bits >> 52) & 0x7ff)
	frac := bits & ((1 << 52) - 1)

	var c xint.Int
	var exp int
	if rawExp == 0 {
		// subnormal float64
		c = xint.FromUint64(frac)
		exp = -1074
	} else {
		c = xint.FromUint64(frac | (1 << 52))
		exp = rawExp - 1075
	}
	return NewFinite(sign, exp, c).Canonicalize()
}

// ToFloat64 converts f to the nearest float64 (ties to even), via
// math/big.Float's correctly-rounded conversion. This is the one
// conversion in this file permitted to round, since float64 has a
// bounded exponent and precision that most Floats cannot fit exactly.
func (f Float) ToFloat64() float64 {
	if f.IsNaN() {
		return math.NaN()
	}
	if f.IsInfinite() {
		if f.sign {
			return math.Inf(-1)
		}
		return math.Inf(1)
	}
	v, _ := f.ToBigFloat().Float64()
	return v
}
