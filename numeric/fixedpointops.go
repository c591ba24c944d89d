package numeric

import (
	"github.com/trippwill/go-numform/dyadic"
	"github.com/trippwill/go-numform/fixedpoint"
	"github.com/trippwill/go-numform/oracle"
)

func fixedRound(c fixedpoint.Context) RoundFunc[fixedpoint.Value] { return c.Round }

func fixedWorkingPrec(c fixedpoint.Context) int {
	// nbits already bounds the magnitude of the representable integer
	// part; two guard bits give the re-rounder enough to resolve ties
	// under any of its rounding modes.
	return c.NBits() + 2
}

func FixedAdd(o oracle.Oracle, c fixedpoint.Context, x, y dyadic.Real) (fixedpoint.Value, oracle.Flags) {
	return Apply2(o, "add", x, y, fixedWorkingPrec(c), fixedRound(c))
}

func FixedSub(o oracle.Oracle, c fixedpoint.Context, x, y dyadic.Real) (fixedpoint.Value, oracle.Flags) {
	return Apply2(o, "sub", x, y, fixedWorkingPrec(c), fixedRound(c))
}

func FixedMul(o oracle.Oracle, c fixedpoint.Context, x, y dyadic.Real) (fixedpoint.Value, oracle.Flags) {
	return Apply2(o, "mul", x, y, fixedWorkingPrec(c), fixedRound(c))
}

func FixedDiv(o oracle.Oracle, c fixedpoint.Context, x, y dyadic.Real) (fixedpoint.Value, oracle.Flags) {
	return Apply2(o, "div", x, y, fixedWorkingPrec(c), fixedRound(c))
}

func FixedHypot(o oracle.Oracle, c fixedpoint.Context, x, y dyadic.Real) (fixedpoint.Value, oracle.Flags) {
	return Apply2(o, "hypot", x, y, fixedWorkingPrec(c), fixedRound(c))
}

func FixedSqrt(o oracle.Oracle, c fixedpoint.Context, x dyadic.Real) (fixedpoint.Value, oracle.Flags) {
	return Apply1(o, "sqrt", x, fixedWorkingPrec(c), fixedRound(c))
}

func FixedNeg(o oracle.Oracle, c fixedpoint.Context, x dyadic.Real) (fixedpoint.Value, oracle.Flags) {
	return Apply1(o, "neg", x, fixedWorkingPrec(c), fixedRound(c))
}

func FixedAbs(o oracle.Oracle, c fixedpoint.Context, x dyadic.Real) (fixedpoint.Value, oracle.Flags) {
	return Apply1(o, "abs", x, fixedWorkingPrec(c), fixedRound(c))
}

func FixedRecip(o oracle.Oracle, c fixedpoint.Context, x dyadic.Real) (fixedpoint.Value, oracle.Flags) {
	return Apply1(o, "recip", x, fixedWorkingPrec(c), fixedRound(c))
}

func FixedFMA(o oracle.Oracle, c fixedpoint.Context, x, y, z dyadic.Real) (fixedpoint.Value, oracle.Flags) {
	return Apply3(o, "fma", x, y, z, fixedWorkingPrec(c), fixedRound(c))
}
