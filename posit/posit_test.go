package posit

import (
	"math/big"
	"testing"

	"github.com/trippwill/go-numform/dyadic"
	"github.com/trippwill/go-numform/xint"
)

func TestBitsRoundTripZeroAndNaR(t *testing.T) {
	c := NewContext(2, 8)

	z := c.BitsToPosit(xint.Zero())
	if !z.IsZero() {
		t.Fatalf("bits=0 must decode to zero, got %+v", z.Num)
	}
	if c.PositToBits(z).Sign() != 0 {
		t.Fatal("zero must re-encode to bits=0")
	}

	nar := c.BitsToPosit(xint.One().Lsh(7))
	if !nar.IsNaR() {
		t.Fatalf("bits=1<<7 must decode to NaR, got %+v", nar.Num)
	}
	back := c.PositToBits(nar)
	if back.BigInt().Int64() != int64(1<<7) {
		t.Fatalf("NaR must re-encode to bits=1<<(nbits-1), got %v", back)
	}
}

func TestBitsRoundTripNonZero(t *testing.T) {
	c := NewContext(2, 8)
	for bits := int64(1); bits < (1 << 7); bits++ {
		p := c.BitsToPosit(xint.FromInt64(bits))
		if p.IsZero() || p.IsNaR() {
			continue
		}
		back := c.PositToBits(p)
		if back.BigInt().Int64() != bits {
			t.Fatalf("bits=%d round trip mismatch: got %v", bits, back)
		}
	}
}

func TestRoundOneIsExact(t *testing.T) {
	c := NewContext(2, 8)
	r := c.Round(dyadic.One())
	if r.IsZero() || r.IsNaR() {
		t.Fatalf("1 must round to a finite non-zero value, got %+v", r.Num)
	}
	got := r.ToDyadic().ToFloat64()
	if got != 1.0 {
		t.Fatalf("round(1) = %v, want 1", got)
	}
}

func TestRoundClampsToMaxVal(t *testing.T) {
	c := NewContext(2, 8)
	huge := new(big.Float).SetPrec(200).SetInt64(1)
	huge.SetMantExp(huge, 10000)
	r := c.Round(dyadic.FromBigFloat(huge))
	if !dyadic.Equals(r.ToDyadic(), c.MaxVal().ToDyadic()) {
		t.Fatalf("huge magnitude must clamp to MaxVal, got %v", r.ToDyadic())
	}
}

func TestRoundZeroAndNaR(t *testing.T) {
	c := NewContext(2, 8)
	if !c.Round(dyadic.Zero()).IsZero() {
		t.Fatal("zero must round to zero")
	}
	if !c.Round(dyadic.NaN()).IsNaR() {
		t.Fatal("NaN must round to NaR")
	}
}
