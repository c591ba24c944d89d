package oracle

import (
	"math"
	"math/big"

	"github.com/trippwill/go-numform/dyadic"
)

// BigFloatOracle is the default Oracle, built on math/big.Float. It is
// correctly-rounded for the arithmetic-closed operations it supports
// (add, sub, mul, div, sqrt, neg, abs, recip, fma, hypot), since
// big.Float's own Add/Sub/Mul/Quo/Sqrt are correctly-rounded and
// report their rounding Accuracy directly as our ternary value.
//
// The transcendental families (exp, log, trig, hyperbolic, erf,
// gamma, ...) have no big.Float-native evaluator, so this backend
// approximates them through float64's math package and reports
// Ternary 0 with Inexact forced true: it is an honest best effort,
// not a correctly-rounded result, since a correctly-rounded
// transcendental evaluator (MPFR's actual job) is out of scope here.
// Calling Eval1/Eval2/Eval3 with a name outside both the
// arithmetic-closed subset and the known transcendental names sets
// Invalid in the returned Flags and returns NaN.
type BigFloatOracle struct{}

func directionToMode(dir Direction) big.RoundingMode {
	switch dir {
	case RNDN:
		return big.ToNearestEven
	case RNDU:
		return big.ToPositiveInf
	case RNDD:
		return big.ToNegativeInf
	case RNDA:
		return big.AwayFromZero
	default: // RNDZ
		return big.ToZero
	}
}

func ternaryOf(acc big.Accuracy) int {
	switch acc {
	case big.Below:
		return -1
	case big.Above:
		return 1
	default:
		return 0
	}
}

func invalidResult() Result {
	return Result{Num: dyadic.NaN(), Flags: Flags{Invalid: true}}
}

// transcendental1 is the float64-backed fallback for the unary
// transcendental operations math/big.Float has no native support for.
// It is not correctly rounded (float64 only carries ~53 bits), so the
// oracle catalogue's correct-rounding guarantee does not extend to
// these ops; callers get a best-effort value with Ternary always 0
// (treated as inexact-but-unordered) and Inexact forced true.
var transcendental1 = map[string]func(float64) float64{
	"exp": math.Exp, "log": math.Log, "log2": math.Log2, "log10": math.Log10,
	"sin": math.Sin, "cos": math.Cos, "tan": math.Tan,
	"asin": math.Asin, "acos": math.Acos, "atan": math.Atan,
	"sinh": math.Sinh, "cosh": math.Cosh, "tanh": math.Tanh,
	"asinh": math.Asinh, "acosh": math.Acosh, "atanh": math.Atanh,
	"erf": math.Erf, "erfc": math.Erfc,
	"gamma": math.Gamma,
	"lgamma": func(x float64) float64 { v, _ := math.Lgamma(x); return v },
	"cbrt":   math.Cbrt,
}

var transcendental2 = map[string]func(x, y float64) float64{
	"pow":   math.Pow,
	"atan2": math.Atan2,
}

func evalTranscendental1(op string, x dyadic.Float, p int) (Result, bool) {
	fn, ok := transcendental1[op]
	if !ok {
		return Result{}, false
	}
	xf, _ := x.ToBigFloat().Float64()
	y := fn(xf)
	bf := new(big.Float).SetPrec(uint(p)).SetFloat64(y)
	return Result{Num: dyadic.FromBigFloat(bf), Ternary: 0, Flags: Flags{Inexact: true}}, true
}

func evalTranscendental2(op string, x, y dyadic.Float, p int) (Result, bool) {
	fn, ok := transcendental2[op]
	if !ok {
		return Result{}, false
	}
	xf, _ := x.ToBigFloat().Float64()
	yf, _ := y.ToBigFloat().Float64()
	z := fn(xf, yf)
	bf := new(big.Float).SetPrec(uint(p)).SetFloat64(z)
	return Result{Num: dyadic.FromBigFloat(bf), Ternary: 0, Flags: Flags{Inexact: true}}, true
}

func newScratch(p int, dir Direction) *big.Float {
	f := new(big.Float).SetPrec(uint(p))
	f.SetMode(directionToMode(dir))
	return f
}

func (BigFloatOracle) Eval1(op string, x dyadic.Float, p int, dir Direction) Result {
	xf := x.ToBigFloat()
	dst := newScratch(p, dir)

	var acc big.Accuracy
	switch op {
	case "neg":
		acc = dst.Neg(xf).Acc()
	case "abs":
		acc = dst.Abs(xf).Acc()
	case "sqrt":
		if xf.Sign() < 0 {
			return Result{Flags: Flags{Invalid: true}, Num: dyadic.NaN()}
		}
		dst.Sqrt(xf)
		// big.Float.Sqrt leaves Acc undefined, so the ternary value comes
		// from comparing the exactly squared result against x.
		sq := new(big.Float).SetPrec(2 * dst.Prec()).Mul(dst, dst)
		acc = big.Accuracy(sq.Cmp(xf))
	case "recip":
		if xf.Sign() == 0 {
			return Result{Flags: Flags{DivZero: true}, Num: dyadic.Inf(false)}
		}
		one := new(big.Float).SetPrec(uint(p) + 2).SetInt64(1)
		acc = dst.Quo(one, xf).Acc()
	default:
		if res, ok := evalTranscendental1(op, x, p); ok {
			return res
		}
		return invalidResult()
	}

	return Result{Num: dyadic.FromBigFloat(dst), Ternary: ternaryOf(acc)}
}

func (BigFloatOracle) Eval2(op string, x, y dyadic.Float, p int, dir Direction) Result {
	xf, yf := x.ToBigFloat(), y.ToBigFloat()
	dst := newScratch(p, dir)

	var acc big.Accuracy
	switch op {
	case "add":
		acc = dst.Add(xf, yf).Acc()
	case "sub":
		acc = dst.Sub(xf, yf).Acc()
	case "mul":
		acc = dst.Mul(xf, yf).Acc()
	case "div":
		if yf.Sign() == 0 {
			sign := xf.Sign() < 0
			if yf.Signbit() {
				sign = !sign
			}
			return Result{Flags: Flags{DivZero: true}, Num: dyadic.Inf(sign)}
		}
		acc = dst.Quo(xf, yf).Acc()
	case "hypot":
		if xf.IsInf() || yf.IsInf() {
			dst.SetInf(false)
			break
		}
		// x^2 + y^2 is formed exactly, so only the square root rounds.
		xr, _ := xf.Rat(nil)
		yr, _ := yf.Rat(nil)
		sumR := new(big.Rat).Add(new(big.Rat).Mul(xr, xr), new(big.Rat).Mul(yr, yr))
		sum := new(big.Float).SetPrec(uint(sumR.Num().BitLen()) + 1).SetRat(sumR)
		dst.Sqrt(sum)
		sq := new(big.Float).SetPrec(2 * dst.Prec()).Mul(dst, dst)
		acc = big.Accuracy(sq.Cmp(sum))
	default:
		if res, ok := evalTranscendental2(op, x, y, p); ok {
			return res
		}
		return invalidResult()
	}

	return Result{Num: dyadic.FromBigFloat(dst), Ternary: ternaryOf(acc)}
}

func (BigFloatOracle) Eval3(op string, x, y, z dyadic.Float, p int, dir Direction) Result {
	if op != "fma" {
		return invalidResult()
	}
	xf, yf, zf := x.ToBigFloat(), y.ToBigFloat(), z.ToBigFloat()
	prod := new(big.Float).SetPrec(xf.Prec() + yf.Prec()).Mul(xf, yf) // exact
	dst := newScratch(p, dir)
	acc := dst.Add(prod, zf).Acc()
	return Result{Num: dyadic.FromBigFloat(dst), Ternary: ternaryOf(acc)}
}
