// Package oracle defines the correctly-rounded evaluator interface
// the numeric package's round-to-odd wrappers call into, and ships two
// implementations: a pure-Go backend over math/big.Float (the default,
// and the one the test suite links against), and an optional cgo
// backend over github.com/mexicantexan/go-mpfr (build tag "mpfr").
//
// Grounded on original_source/src/mpfr.rs, which plays the same role
// for the original crate (a thin correctly-rounded layer the
// round-to-odd combinators are built on top of) via gmp_mpfr_sys/rug.
package oracle

import "github.com/trippwill/go-numform/dyadic"

// Direction is the rounding direction requested of the oracle. The
// round-to-odd protocol (spec.md §4.7) only ever calls with RNDZ, but
// the interface exposes the full set an oracle backend may support.
type Direction uint8

const (
	RNDZ Direction = iota
	RNDN
	RNDU
	RNDD
	RNDA
)

// Flags records the subset of IEEE-754-style exceptions an oracle
// call can raise. overflow/underflow/inexact are advisory only: per
// spec.md §4.7, the caller's own format context recomputes these
// authoritatively after re-rounding, since the oracle's scratch
// precision generally differs from the target format.
type Flags struct {
	Invalid  bool
	DivZero  bool
	Overflow bool
	Underflow bool
	Inexact  bool
}

// Result is what every oracle call returns: the computed value at the
// requested precision and direction, the ternary sign of the rounding
// error (-1 result below the exact value, 0 exact, +1 above), and the
// flags raised while computing it.
type Result struct {
	Num     dyadic.Float
	Ternary int
	Flags   Flags
}

// Oracle is a correctly-rounded evaluator for a small catalogue of
// arithmetic and transcendental operations, named by string (spec.md
// explicitly puts the full ~50-operation catalogue and its wire-level
// trait plumbing out of scope; this interface only needs to support
// the representative subset the numeric package wraps concretely).
type Oracle interface {
	// Eval1 computes a unary operation on x to p bits of precision,
	// rounding in direction dir.
	Eval1(op string, x dyadic.Float, p int, dir Direction) Result
	// Eval2 computes a binary operation on x, y.
	Eval2(op string, x, y dyadic.Float, p int, dir Direction) Result
	// Eval3 computes a ternary operation (presently only "fma").
	Eval3(op string, x, y, z dyadic.Float, p int, dir Direction) Result
}
