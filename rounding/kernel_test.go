package rounding

import (
	"testing"

	"github.com/trippwill/go-numform/dyadic"
	"github.com/trippwill/go-numform/xint"
)

func TestSplitPositionFixed(t *testing.T) {
	_, hasMaxP, n := SplitPosition(WithMinN(-4), 10, true)
	if hasMaxP {
		t.Fatal("fixed-point params must not report a MaxP bound")
	}
	if n != -4 {
		t.Fatalf("n = %d, want -4", n)
	}
}

func TestSplitPositionFloat(t *testing.T) {
	maxP, hasMaxP, n := SplitPosition(WithMaxP(4), 3, true)
	if !hasMaxP || maxP != 4 {
		t.Fatalf("maxP = %d,%v", maxP, hasMaxP)
	}
	if n != -1 {
		t.Fatalf("n = %d, want -1", n)
	}
}

func TestSplitPositionSubnormal(t *testing.T) {
	p := WithMaxP(4).And(WithMinN(-2))
	_, _, n := SplitPosition(p, 0, true)
	if n != -2 {
		t.Fatalf("n = %d, want clamped to MinN -2", n)
	}
	_, _, n2 := SplitPosition(p, 10, true)
	if n2 != 6 {
		t.Fatalf("n = %d, want unbounded e-maxP = 6", n2)
	}
}

func TestRoundFiniteExact(t *testing.T) {
	// 1.0 rounded to 4 bits of precision is exact.
	x := dyadic.One()
	r := RoundFinite(x, WithMaxP(4), NearestTiesToEven, false)
	if r.Inexact() {
		t.Fatal("rounding an already-exact value must not be inexact")
	}
	if !dyadic.Equals(r.Rounded, x) {
		t.Fatalf("Rounded = %v, want 1", r.Rounded)
	}
}

func TestRoundFiniteTieToEven(t *testing.T) {
	// c=0b101 (5), exp=0 -> value 5, rounding to 2 bits of precision:
	// split keeps top 2 bits (0b10=2, exp=1 => 4) with exact half below ->
	// ties to even picks 2 (even) over 3.
	x := dyadic.NewFinite(false, 0, xint.FromInt64(5))
	r := RoundFinite(x, WithMaxP(2), NearestTiesToEven, false)
	c, _ := r.Rounded.C()
	exp, _ := r.Rounded.Exp()
	if c.BigInt().Int64() != 2 || exp != 1 {
		t.Fatalf("rounded = c=%v exp=%d, want c=2 exp=1 (value 4)", c, exp)
	}
	if !r.HalfwayBit || r.StickyBit {
		t.Fatalf("expected exact halfway, got half=%v sticky=%v", r.HalfwayBit, r.StickyBit)
	}
}

func TestRoundFiniteCarry(t *testing.T) {
	// c=0b111 (7), exp=0, round to 2 bits: high=0b11=3 (odd), half=1,sticky=0.
	// ties-to-even rounds up to 0b100, which overflows 2 bits -> carries to c=0b10,exp+1.
	x := dyadic.NewFinite(false, 0, xint.FromInt64(7))
	r := RoundFinite(x, WithMaxP(2), NearestTiesToEven, false)
	if !r.Carry {
		t.Fatal("expected carry out of precision")
	}
	c, _ := r.Rounded.C()
	if c.BitLen() > 2 {
		t.Fatalf("post-carry significand must fit in 2 bits, got %v", c)
	}
}

func TestRoundTopLevelZeroInfNaN(t *testing.T) {
	if !Round(dyadic.Zero(), WithMaxP(4), NearestTiesToEven).IsZero() {
		t.Fatal("zero must round to zero")
	}
	if !Round(dyadic.Inf(true), WithMaxP(4), NearestTiesToEven).IsInfinite() {
		t.Fatal("infinity must round to infinity")
	}
	if !Round(dyadic.NaN(), WithMaxP(4), NearestTiesToEven).IsNaN() {
		t.Fatal("NaN must round to NaN")
	}
}

func TestIncrementDirectedModes(t *testing.T) {
	odd := xint.FromInt64(3)
	if Increment(odd, true, false, ToZero, false) {
		t.Fatal("ToZero must never increment")
	}
	if !Increment(odd, true, false, AwayZero, false) {
		t.Fatal("AwayZero must always increment on any lost bit")
	}
	if !Increment(odd, true, false, ToEven, false) {
		t.Fatal("ToEven increments when truncated part is odd")
	}
	even := xint.FromInt64(4)
	if Increment(even, true, false, ToEven, false) {
		t.Fatal("ToEven must not increment when truncated part is even")
	}
}
