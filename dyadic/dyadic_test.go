package dyadic

import (
	"testing"

	"github.com/trippwill/go-numform/xint"
)

func TestViews(t *testing.T) {
	// 12 = 1100b = c=3, exp=2 => e = exp-1+bitlen(c) = 2-1+2 = 3
	f := NewFinite(false, 2, xint.FromInt64(3))
	exp, ok := f.Exp()
	if !ok || exp != 2 {
		t.Fatalf("Exp() = %d, %v", exp, ok)
	}
	e, ok := f.E()
	if !ok || e != 3 {
		t.Fatalf("E() = %d, %v", e, ok)
	}
	n, ok := f.N()
	if !ok || n != 1 {
		t.Fatalf("N() = %d, %v", n, ok)
	}
	p, ok := f.P()
	if !ok || p != 2 {
		t.Fatalf("P() = %d, %v", p, ok)
	}
}

func TestZeroCanonicalization(t *testing.T) {
	f := NewFinite(true, 5, xint.Zero())
	if !f.IsZero() {
		t.Fatal("expected zero")
	}
	c := f.Canonicalize()
	if c.Sign() {
		t.Fatal("canonical zero must have sign erased")
	}
	if !Equals(c, Zero()) {
		t.Fatal("canonical zero must equal Zero()")
	}
}

func TestCompareTotalOrder(t *testing.T) {
	one := One()
	two := NewFinite(false, 1, xint.One())
	negOne := NegOne()
	zero := Zero()
	posInf := Inf(false)
	negInf := Inf(true)
	nan := NaN()

	cases := []struct {
		a, b Float
		want Ordering
		ok   bool
	}{
		{negInf, negOne, Less, true},
		{negOne, zero, Less, true},
		{zero, one, Less, true},
		{one, two, Less, true},
		{two, posInf, Less, true},
		{one, one, Equal, true},
		{nan, one, Equal, false},
		{one, nan, Equal, false},
	}

	for _, c := range cases {
		ord, ok := Compare(c.a, c.b)
		if ok != c.ok {
			t.Fatalf("Compare(%v,%v) ok=%v want %v", c.a, c.b, ok, c.ok)
		}
		if ok && ord != c.want {
			t.Fatalf("Compare(%v,%v) = %v want %v", c.a, c.b, ord, c.want)
		}
	}
}

func TestGetBit(t *testing.T) {
	// 0b1010 = c=5 (101b), exp=1 => bits at positions 1,3 set (value 0b1010=10)
	f := NewFinite(false, 1, xint.FromInt64(5))
	if f.GetBit(0) {
		t.Fatal("bit 0 should be clear")
	}
	if !f.GetBit(1) {
		t.Fatal("bit 1 should be set")
	}
	if f.GetBit(2) {
		t.Fatal("bit 2 should be clear")
	}
	if !f.GetBit(3) {
		t.Fatal("bit 3 should be set")
	}
	if f.GetBit(4) {
		t.Fatal("bit 4 should be clear (above MSB)")
	}
}

func TestFloat64RoundTrip(t *testing.T) {
	for _, x := range []float64{0, 1, -1, 0.5, 3.25, 1e300, 1e-300, -7.0} {
		f := FromFloat64(x)
		got := f.ToFloat64()
		if got != x {
			t.Fatalf("round trip %v -> %v", x, got)
		}
	}
}

func TestSplit(t *testing.T) {
	// 0b1011 = c=11, exp=0
	f := NewFinite(false, 0, xint.FromInt64(11))
	high, low := Split(f, 1)
	// high should be bits above position 1: 0b10_0 shifted = c=2, exp=2 -> value 8
	// low should be bits at/below position 1: 0b11 -> c=3, exp=0 -> value 3
	hc, _ := high.C()
	he, _ := high.Exp()
	lc, _ := low.C()
	le, _ := low.Exp()
	if hc.BigInt().Int64() != 2 || he != 2 {
		t.Fatalf("high = c=%v exp=%d", hc, he)
	}
	if lc.BigInt().Int64() != 3 || le != 0 {
		t.Fatalf("low = c=%v exp=%d", lc, le)
	}
}
