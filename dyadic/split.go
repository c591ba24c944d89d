package dyadic

import "github.com/trippwill/go-numform/xint"

// Split divides f exactly at absolute binary digit n into (high, low)
// such that high + low == f bit-for-bit: high holds every bit strictly
// above position n (re-based to exponent n+1), low holds every bit at
// or below position n (at f's original exponent). f must not be
// infinite or NaN.
//
// Grounded on original_source/src/rfloat/round.rs's RFloatContext::split_at.
func Split(f Float, n int) (high, low Float) {
	if !f.IsFinite() {
		panic("dyadic: Split: must be a finite value")
	}

	if f.IsZero() {
		s := f.Sign()
		return NewFinite(s, n+1, xint.Zero()), NewFinite(s, n, xint.Zero())
	}

	s := f.Sign()
	e, _ := f.E()
	exp, _ := f.Exp()
	c, _ := f.C()

	switch {
	case n >= e:
		// split point above all significant digits
		return NewFinite(s, n+1, xint.Zero()), NewFinite(s, exp, c)
	case n < exp:
		// split point below all significant digits
		return NewFinite(s, exp, c), NewFinite(s, n, xint.Zero())
	default:
		// split point within the significand
		offset := uint(n - (exp - 1))
		cHigh, cLow := c.DivModPow2(offset)
		return NewFinite(s, n+1, cHigh), NewFinite(s, exp, cLow)
	}
}
