//go:build mpfr

package oracle

import (
	"math/big"

	"github.com/mexicantexan/go-mpfr"
	"github.com/trippwill/go-numform/dyadic"
)

// MPFROracle is the cgo-backed Oracle over github.com/mexicantexan/go-mpfr,
// gated behind the "mpfr" build tag since it links against libmpfr/libgmp.
// Grounded on original_source/src/mpfr.rs, whose mpfr_1ary!/mpfr_2ary!/
// mpfr_3ary! macros wrap the same underlying C library this binding calls.
//
// go-mpfr's Float methods (Add, Sub, Mul, ...) don't surface MPFR's ternary
// return value, so ternary here is derived the way mpfr.rs's with_ternary
// helper ultimately only needs a sign of the rounding error: compute the
// same operation at a few guard bits above p with the same direction, and
// compare it against the p-bit result.
type MPFROracle struct{}

func mpfrRnd(dir Direction) mpfr.Rnd {
	switch dir {
	case RNDN:
		return mpfr.RoundToNearest
	case RNDU:
		return mpfr.RoundUp
	case RNDD:
		return mpfr.RoundDown
	case RNDA:
		return mpfr.RoundAway
	default:
		return mpfr.RoundToward0
	}
}

func toMPFR(x dyadic.Float, prec uint) *mpfr.Float {
	f := mpfr.NewFloatWithPrec(prec)
	f.SetBigFloat(x.ToBigFloat())
	return f
}

func fromMPFR(f *mpfr.Float, prec uint) dyadic.Float {
	var bf big.Float
	bf.SetPrec(prec)
	f.BigFloat(&bf)
	return dyadic.FromBigFloat(&bf)
}

// ternarySign compares a result computed at p bits against a reference
// computed a few bits wider in the same direction, returning -1/0/+1.
func ternarySign(lo, hi *mpfr.Float) int {
	c := lo.Cmp(hi)
	if c < 0 {
		return -1
	}
	if c > 0 {
		return 1
	}
	return 0
}

const guardBits = 8

func (MPFROracle) Eval1(op string, x dyadic.Float, p int, dir Direction) Result {
	rnd := mpfrRnd(dir)
	xLo := toMPFR(x, uint(p))
	xLo.SetRoundMode(rnd)
	xHi := toMPFR(x, uint(p+guardBits))
	xHi.SetRoundMode(rnd)

	lo := mpfr.NewFloatWithPrec(uint(p))
	lo.SetRoundMode(rnd)
	hi := mpfr.NewFloatWithPrec(uint(p + guardBits))
	hi.SetRoundMode(rnd)

	switch op {
	case "neg":
		lo.Neg(xLo)
		hi.Neg(xHi)
	case "abs":
		lo.Abs(xLo)
		hi.Abs(xHi)
	case "sqrt":
		if x.Sign() {
			return Result{Flags: Flags{Invalid: true}, Num: dyadic.NaN()}
		}
		lo.Sqrt(xLo)
		hi.Sqrt(xHi)
	case "recip":
		if x.IsZero() {
			return Result{Flags: Flags{DivZero: true}, Num: dyadic.Inf(false)}
		}
		one := mpfr.NewFloatWithPrec(uint(p))
		one.SetInt(1)
		lo.Quo(one, xLo)
		oneHi := mpfr.NewFloatWithPrec(uint(p + guardBits))
		oneHi.SetInt(1)
		hi.Quo(oneHi, xHi)
	default:
		return invalidResult()
	}

	return Result{Num: fromMPFR(lo, uint(p)), Ternary: ternarySign(lo, hi)}
}

func (MPFROracle) Eval2(op string, x, y dyadic.Float, p int, dir Direction) Result {
	rnd := mpfrRnd(dir)
	xLo, yLo := toMPFR(x, uint(p)), toMPFR(y, uint(p))
	xHi, yHi := toMPFR(x, uint(p+guardBits)), toMPFR(y, uint(p+guardBits))
	xLo.SetRoundMode(rnd)
	yLo.SetRoundMode(rnd)
	xHi.SetRoundMode(rnd)
	yHi.SetRoundMode(rnd)

	lo := mpfr.NewFloatWithPrec(uint(p))
	lo.SetRoundMode(rnd)
	hi := mpfr.NewFloatWithPrec(uint(p + guardBits))
	hi.SetRoundMode(rnd)

	switch op {
	case "add":
		lo.Add(xLo, yLo)
		hi.Add(xHi, yHi)
	case "sub":
		lo.Sub(xLo, yLo)
		hi.Sub(xHi, yHi)
	case "mul":
		lo.Mul(xLo, yLo)
		hi.Mul(xHi, yHi)
	case "div":
		if y.IsZero() {
			return Result{Flags: Flags{DivZero: true}, Num: dyadic.Inf(x.Sign() != y.Sign())}
		}
		lo.Div(xLo, yLo)
		hi.Div(xHi, yHi)
	case "hypot":
		lo.Hypot(xLo, yLo)
		hi.Hypot(xHi, yHi)
	default:
		return invalidResult()
	}

	return Result{Num: fromMPFR(lo, uint(p)), Ternary: ternarySign(lo, hi)}
}

func (MPFROracle) Eval3(op string, x, y, z dyadic.Float, p int, dir Direction) Result {
	if op != "fma" {
		return invalidResult()
	}
	rnd := mpfrRnd(dir)
	xLo, yLo, zLo := toMPFR(x, uint(p)), toMPFR(y, uint(p)), toMPFR(z, uint(p))
	xHi, yHi, zHi := toMPFR(x, uint(p+guardBits)), toMPFR(y, uint(p+guardBits)), toMPFR(z, uint(p+guardBits))
	xLo.SetRoundMode(rnd)
	yLo.SetRoundMode(rnd)
	zLo.SetRoundMode(rnd)
	xHi.SetRoundMode(rnd)
	yHi.SetRoundMode(rnd)
	zHi.SetRoundMode(rnd)

	lo := mpfr.NewFloatWithPrec(uint(p))
	lo.SetRoundMode(rnd)
	hi := mpfr.NewFloatWithPrec(uint(p + guardBits))
	hi.SetRoundMode(rnd)

	lo.Fma(xLo, yLo, zLo)
	hi.Fma(xHi, yHi, zHi)

	return Result{Num: fromMPFR(lo, uint(p)), Ternary: ternarySign(lo, hi)}
}
