// Package numeric wraps the oracle package's correctly-rounded
// evaluator with the round-to-odd protocol spec.md §4.7 describes:
// an operation is computed at p-1 bits with round-to-zero, the result
// is upgraded to a p-bit round-to-odd value by folding the oracle's
// ternary flag into the last bit, and the caller then re-rounds that
// p-bit value through its own format context (ieee754, fixedpoint, or
// posit) to get a result that is correct under every rounding mode
// the target format supports, without re-invoking the oracle per mode.
//
// Grounded on original_source/src/math.rs's Rational::with_ternary and
// its mpfr_1ary!/mpfr_2ary!/mpfr_3ary! macros, which build every
// wrapped operation out of exactly this correction.
package numeric

import (
	"github.com/trippwill/go-numform/dyadic"
	"github.com/trippwill/go-numform/xint"
)

// withTernary upgrades a (p-1)-bit round-to-zero result x to a p-bit
// round-to-odd result by shifting in a sticky bit derived from the
// oracle's ternary value t. Applied only to non-zero finite values;
// zero, infinities, and NaN pass through unchanged.
func withTernary(x dyadic.Float, t int) dyadic.Float {
	if !x.IsFinite() || x.IsZero() {
		return x
	}
	c, _ := x.C()
	exp, _ := x.Exp()

	c = c.Lsh(1)
	exp--
	if t != 0 {
		c = c.Add(xint.One())
	}
	return dyadic.NewFinite(x.Sign(), exp, c)
}
