package numeric

import (
	"github.com/trippwill/go-numform/dyadic"
	"github.com/trippwill/go-numform/oracle"
	"github.com/trippwill/go-numform/posit"
)

func positRound(c posit.Context) RoundFunc[posit.Posit] { return c.Round }

func positWorkingPrec(c posit.Context) int { return c.MaxP() + 2 }

func PositAdd(o oracle.Oracle, c posit.Context, x, y dyadic.Real) (posit.Posit, oracle.Flags) {
	return Apply2(o, "add", x, y, positWorkingPrec(c), positRound(c))
}

func PositSub(o oracle.Oracle, c posit.Context, x, y dyadic.Real) (posit.Posit, oracle.Flags) {
	return Apply2(o, "sub", x, y, positWorkingPrec(c), positRound(c))
}

func PositMul(o oracle.Oracle, c posit.Context, x, y dyadic.Real) (posit.Posit, oracle.Flags) {
	return Apply2(o, "mul", x, y, positWorkingPrec(c), positRound(c))
}

func PositDiv(o oracle.Oracle, c posit.Context, x, y dyadic.Real) (posit.Posit, oracle.Flags) {
	return Apply2(o, "div", x, y, positWorkingPrec(c), positRound(c))
}

func PositHypot(o oracle.Oracle, c posit.Context, x, y dyadic.Real) (posit.Posit, oracle.Flags) {
	return Apply2(o, "hypot", x, y, positWorkingPrec(c), positRound(c))
}

func PositSqrt(o oracle.Oracle, c posit.Context, x dyadic.Real) (posit.Posit, oracle.Flags) {
	return Apply1(o, "sqrt", x, positWorkingPrec(c), positRound(c))
}

func PositNeg(o oracle.Oracle, c posit.Context, x dyadic.Real) (posit.Posit, oracle.Flags) {
	return Apply1(o, "neg", x, positWorkingPrec(c), positRound(c))
}

func PositAbs(o oracle.Oracle, c posit.Context, x dyadic.Real) (posit.Posit, oracle.Flags) {
	return Apply1(o, "abs", x, positWorkingPrec(c), positRound(c))
}

func PositRecip(o oracle.Oracle, c posit.Context, x dyadic.Real) (posit.Posit, oracle.Flags) {
	return Apply1(o, "recip", x, positWorkingPrec(c), positRound(c))
}

func PositFMA(o oracle.Oracle, c posit.Context, x, y, z dyadic.Real) (posit.Posit, oracle.Flags) {
	return Apply3(o, "fma", x, y, z, positWorkingPrec(c), positRound(c))
}
