package numeric

import (
	"math/big"
	"testing"

	"github.com/trippwill/go-numform/dyadic"
	"github.com/trippwill/go-numform/ieee754"
	"github.com/trippwill/go-numform/oracle"
	"github.com/trippwill/go-numform/rounding"
)

func ratio(num, den int64) dyadic.Float {
	r := new(big.Rat).SetFrac64(num, den)
	f := new(big.Float).SetPrec(200).SetRat(r)
	return dyadic.FromBigFloat(f)
}

func TestAddExactIEEE754(t *testing.T) {
	o := oracle.BigFloatOracle{}
	c := ieee754.NewContext(5, 16)
	got, flags := Add(o, c, ratio(1, 1), ratio(1, 1))
	if flags.Invalid || flags.DivZero {
		t.Fatalf("unexpected flags: %+v", flags)
	}
	if got.ToDyadic().ToFloat64() != 2.0 {
		t.Fatalf("1+1 = %v, want 2", got.ToDyadic().ToFloat64())
	}
}

func TestDivByZeroIEEE754(t *testing.T) {
	o := oracle.BigFloatOracle{}
	c := ieee754.NewContext(5, 16)
	got, flags := Div(o, c, ratio(1, 1), ratio(0, 1))
	if !flags.DivZero {
		t.Fatal("1/0 must set DivZero")
	}
	if !got.IsInfinite() {
		t.Fatalf("1/0 must round to an infinity, got %+v", got)
	}
}

func TestSqrtIEEE754(t *testing.T) {
	o := oracle.BigFloatOracle{}
	c := ieee754.NewContext(5, 16)
	got, _ := Sqrt(o, c, ratio(4, 1))
	if got.ToDyadic().ToFloat64() != 2.0 {
		t.Fatalf("sqrt(4) = %v, want 2", got.ToDyadic().ToFloat64())
	}
}

// TestRoundToOddThenNearestMatchesDirectRounding checks the spec's
// round-to-odd sanity property: rounding a value to p+1 bits toward
// zero and folding the inexact flag in as a sticky bit (a p+2-bit
// round-to-odd value), then re-rounding that to p bits with ties-to-even,
// must equal rounding the original value directly to p bits with
// ties-to-even.
func TestRoundToOddThenNearestMatchesDirectRounding(t *testing.T) {
	x := ratio(11, 8) // 1.375, exactly 0b1.011 - exercises a real tie case nearby

	const p = 4
	direct := rounding.Round(x, rounding.WithMaxP(p), rounding.NearestTiesToEven)

	wide := rounding.RoundFinite(x, rounding.WithMaxP(p+1), rounding.ToZero, false)
	viaOdd := withTernary(wide.Rounded, boolToTernary(wide.Inexact()))
	redone := rounding.Round(viaOdd, rounding.WithMaxP(p), rounding.NearestTiesToEven)

	if !dyadic.Equals(direct, redone) {
		t.Fatalf("round-to-odd then nearest = %v, want %v", redone, direct)
	}
}

func boolToTernary(inexact bool) int {
	if inexact {
		return 1
	}
	return 0
}

func TestFMAIEEE754(t *testing.T) {
	o := oracle.BigFloatOracle{}
	c := ieee754.NewContext(5, 16)
	got, _ := FMA(o, c, ratio(2, 1), ratio(3, 1), ratio(1, 1))
	if got.ToDyadic().ToFloat64() != 7.0 {
		t.Fatalf("fma(2,3,1) = %v, want 7", got.ToDyadic().ToFloat64())
	}
}
