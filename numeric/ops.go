package numeric

import (
	"github.com/trippwill/go-numform/dyadic"
	"github.com/trippwill/go-numform/oracle"
)

// RoundFunc re-rounds an RTO-corrected dyadic.Real into a concrete
// target format. ieee754.Context.RoundReal, fixedpoint.Context.Round,
// and posit.Context.Round all satisfy this shape.
type RoundFunc[T any] func(dyadic.Real) T

// Apply1 runs a unary operation through the round-to-odd protocol:
// the oracle computes op(x) at p-1 bits with round-to-zero, the
// result is upgraded to a p-bit round-to-odd value, and round lowers
// that value into the caller's target format. p must be at least 2.
func Apply1[T any](o oracle.Oracle, op string, x dyadic.Real, p int, round RoundFunc[T]) (T, oracle.Flags) {
	res := o.Eval1(op, dyadic.FromReal(x), p-1, oracle.RNDZ)
	rto := withTernary(res.Num, res.Ternary)
	return round(rto), res.Flags
}

// Apply2 is Apply1 for binary operations.
func Apply2[T any](o oracle.Oracle, op string, x, y dyadic.Real, p int, round RoundFunc[T]) (T, oracle.Flags) {
	res := o.Eval2(op, dyadic.FromReal(x), dyadic.FromReal(y), p-1, oracle.RNDZ)
	rto := withTernary(res.Num, res.Ternary)
	return round(rto), res.Flags
}

// Apply3 is Apply1 for ternary operations (presently only fused
// multiply-add).
func Apply3[T any](o oracle.Oracle, op string, x, y, z dyadic.Real, p int, round RoundFunc[T]) (T, oracle.Flags) {
	res := o.Eval3(op, dyadic.FromReal(x), dyadic.FromReal(y), dyadic.FromReal(z), p-1, oracle.RNDZ)
	rto := withTernary(res.Num, res.Ternary)
	return round(rto), res.Flags
}
