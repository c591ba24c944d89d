package ieee754

import (
	"math/big"
	"testing"

	"github.com/trippwill/go-numform/dyadic"
	"github.com/trippwill/go-numform/rounding"
	"github.com/trippwill/go-numform/xint"
)

// es=2, nbits=5 -> p=3, emax=1, emin=0 (spec.md §8).
func testCtx(mode rounding.Mode) Context {
	return NewContext(2, 5).WithRoundingMode(mode)
}

func ratio(num, den int64) dyadic.Float {
	r := new(big.Rat).SetFrac64(num, den)
	f := new(big.Float).SetPrec(200)
	f.SetRat(r)
	return dyadic.FromBigFloat(f)
}

func floatValue(t *testing.T, f Float) *big.Float {
	t.Helper()
	return f.ToDyadic().ToBigFloat()
}

func TestRoundScenario1(t *testing.T) {
	c := testCtx(rounding.NearestTiesToEven)
	r := c.RoundReal(ratio(1, 1))
	want := ratio(1, 1)
	if !dyadic.Equals(r.ToDyadic(), want) {
		t.Fatalf("got %v want 1", floatValue(t, r))
	}
	if r.Flags != (Exceptions{}) {
		t.Fatalf("expected no flags, got %+v", r.Flags)
	}
}

func TestRoundScenario2(t *testing.T) {
	c := testCtx(rounding.NearestTiesToEven)
	r := c.RoundReal(ratio(15, 16))
	if !dyadic.Equals(r.ToDyadic(), ratio(1, 1)) {
		t.Fatalf("got %v want 1", floatValue(t, r))
	}
	if !(r.Flags.UnderflowPre && r.Flags.Inexact && r.Flags.TinyPre && r.Flags.Carry) {
		t.Fatalf("flags = %+v", r.Flags)
	}
	if r.Flags.UnderflowPost || r.Flags.TinyPost {
		t.Fatalf("post-rounding flags must be false once rounded up to a normal: %+v", r.Flags)
	}
}

func TestRoundScenario3(t *testing.T) {
	c := testCtx(rounding.ToNegative)
	r := c.RoundReal(ratio(15, 16))
	if !dyadic.Equals(r.ToDyadic(), ratio(3, 4)) {
		t.Fatalf("got %v want 3/4", floatValue(t, r))
	}
	if !(r.Flags.UnderflowPre && r.Flags.UnderflowPost && r.Flags.Inexact && r.Flags.TinyPre && r.Flags.TinyPost) {
		t.Fatalf("flags = %+v", r.Flags)
	}
}

func TestRoundScenario4(t *testing.T) {
	c := testCtx(rounding.NearestTiesToEven)
	r := c.RoundReal(ratio(7, 8))
	if !dyadic.Equals(r.ToDyadic(), ratio(1, 1)) {
		t.Fatalf("got %v want 1", floatValue(t, r))
	}
	if !(r.Flags.UnderflowPre && r.Flags.UnderflowPost && r.Flags.Inexact && r.Flags.TinyPre && r.Flags.TinyPost && r.Flags.Carry) {
		t.Fatalf("flags = %+v", r.Flags)
	}
}

func TestRoundScenario5(t *testing.T) {
	for _, mode := range []rounding.Mode{
		rounding.NearestTiesToEven, rounding.ToZero, rounding.ToPositive,
		rounding.ToNegative, rounding.AwayZero,
	} {
		c := testCtx(mode)
		r := c.RoundReal(ratio(3, 4))
		if !dyadic.Equals(r.ToDyadic(), ratio(3, 4)) {
			t.Fatalf("mode %v: got %v want 3/4", mode, floatValue(t, r))
		}
		if !(r.Flags.TinyPre && r.Flags.TinyPost) {
			t.Fatalf("mode %v: flags = %+v", mode, r.Flags)
		}
	}
}

func TestRoundScenario6(t *testing.T) {
	c := testCtx(rounding.ToPositive)
	r := c.RoundReal(ratio(-15, 16))
	if !dyadic.Equals(r.ToDyadic(), ratio(-3, 4)) {
		t.Fatalf("got %v want -3/4", floatValue(t, r))
	}
	if !(r.Flags.UnderflowPre && r.Flags.UnderflowPost && r.Flags.Inexact && r.Flags.TinyPre && r.Flags.TinyPost) {
		t.Fatalf("flags = %+v", r.Flags)
	}
}

func TestBitCodecSanity(t *testing.T) {
	c := NewContext(2, 5)

	cases := []struct {
		bits  int64
		check func(t *testing.T, f Float)
	}{
		{0, func(t *testing.T, f Float) {
			if f.Num.Class() != ClassZero || f.Num.Sign() {
				t.Fatalf("bits=0: got %+v", f.Num)
			}
		}},
		{1, func(t *testing.T, f Float) {
			if f.Num.Class() != ClassSubnormal || f.Num.c.BigInt().Int64() != 1 {
				t.Fatalf("bits=1: got %+v", f.Num)
			}
		}},
		{4, func(t *testing.T, f Float) {
			if f.Num.Class() != ClassNormal || f.Num.c.BigInt().Int64() != 4 || f.Num.exp != -2 {
				t.Fatalf("bits=4: got %+v", f.Num)
			}
		}},
		{12, func(t *testing.T, f Float) {
			if f.Num.Class() != ClassInfinity {
				t.Fatalf("bits=12: got %+v", f.Num)
			}
		}},
		{13, func(t *testing.T, f Float) {
			if f.Num.Class() != ClassNaN || f.Num.quiet || f.Num.payload.BigInt().Int64() != 1 {
				t.Fatalf("bits=13: got %+v", f.Num)
			}
		}},
		{14, func(t *testing.T, f Float) {
			if f.Num.Class() != ClassNaN || !f.Num.quiet || !f.Num.payload.IsZero() {
				t.Fatalf("bits=14: got %+v", f.Num)
			}
		}},
	}

	for _, tc := range cases {
		f := c.BitsToFloat(xint.FromInt64(tc.bits))
		tc.check(t, f)
		roundTrip := c.FloatToBits(f)
		if roundTrip.BigInt().Int64() != tc.bits {
			t.Fatalf("bits=%d: round trip = %v", tc.bits, roundTrip)
		}
	}
}
