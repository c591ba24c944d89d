package oracle

import (
	"math/big"
	"testing"

	"github.com/trippwill/go-numform/dyadic"
)

func ratio(num, den int64) dyadic.Float {
	r := new(big.Rat).SetFrac64(num, den)
	f := new(big.Float).SetPrec(200).SetRat(r)
	return dyadic.FromBigFloat(f)
}

func TestBigFloatAddExact(t *testing.T) {
	o := BigFloatOracle{}
	res := o.Eval2("add", ratio(1, 1), ratio(1, 1), 10, RNDZ)
	if res.Ternary != 0 {
		t.Fatalf("1+1 at 10 bits must be exact, got ternary=%d", res.Ternary)
	}
	got := res.Num.ToBigFloat()
	want := new(big.Float).SetInt64(2)
	if got.Cmp(want) != 0 {
		t.Fatalf("1+1 = %v, want 2", got)
	}
}

func TestBigFloatDivInexact(t *testing.T) {
	o := BigFloatOracle{}
	res := o.Eval2("div", ratio(1, 1), ratio(3, 1), 4, RNDZ)
	if res.Ternary == 0 {
		t.Fatal("1/3 at 4 bits cannot be exact")
	}
	if res.Flags.Invalid || res.Flags.DivZero {
		t.Fatalf("unexpected flags: %+v", res.Flags)
	}
}

func TestBigFloatDivByZero(t *testing.T) {
	o := BigFloatOracle{}
	res := o.Eval2("div", ratio(1, 1), ratio(0, 1), 10, RNDZ)
	if !res.Flags.DivZero {
		t.Fatal("1/0 must set DivZero")
	}
	if !res.Num.IsInfinite() {
		t.Fatalf("1/0 must produce an infinity, got %+v", res.Num)
	}
}

func TestBigFloatSqrtNegativeInvalid(t *testing.T) {
	o := BigFloatOracle{}
	res := o.Eval1("sqrt", ratio(-1, 1), 10, RNDZ)
	if !res.Flags.Invalid {
		t.Fatal("sqrt(-1) must set Invalid")
	}
}

func TestBigFloatSqrtExact(t *testing.T) {
	o := BigFloatOracle{}
	res := o.Eval1("sqrt", ratio(4, 1), 10, RNDZ)
	if res.Ternary != 0 {
		t.Fatalf("sqrt(4) at 10 bits must be exact, got ternary=%d", res.Ternary)
	}
	got := res.Num.ToBigFloat()
	want := new(big.Float).SetInt64(2)
	if got.Cmp(want) != 0 {
		t.Fatalf("sqrt(4) = %v, want 2", got)
	}
}

func TestBigFloatFMA(t *testing.T) {
	o := BigFloatOracle{}
	res := o.Eval3("fma", ratio(2, 1), ratio(3, 1), ratio(1, 1), 10, RNDZ)
	if res.Ternary != 0 {
		t.Fatalf("2*3+1 at 10 bits must be exact, got ternary=%d", res.Ternary)
	}
	got := res.Num.ToBigFloat()
	want := new(big.Float).SetInt64(7)
	if got.Cmp(want) != 0 {
		t.Fatalf("fma(2,3,1) = %v, want 7", got)
	}
}

func TestBigFloatHypot(t *testing.T) {
	o := BigFloatOracle{}
	res := o.Eval2("hypot", ratio(3, 1), ratio(4, 1), 10, RNDZ)
	got := res.Num.ToBigFloat()
	want := new(big.Float).SetInt64(5)
	if got.Cmp(want) != 0 {
		t.Fatalf("hypot(3,4) = %v, want 5", got)
	}
}

func TestBigFloatUnsupportedOpInvalid(t *testing.T) {
	o := BigFloatOracle{}
	res := o.Eval1("bogus", ratio(1, 1), 10, RNDZ)
	if !res.Flags.Invalid {
		t.Fatal("unrecognized op must set Invalid")
	}
	if !res.Num.IsNaN() {
		t.Fatal("unrecognized op must return NaN")
	}
}

func TestBigFloatTranscendentalApproximate(t *testing.T) {
	o := BigFloatOracle{}
	res := o.Eval1("sin", ratio(0, 1), 10, RNDZ)
	if res.Ternary != 0 {
		t.Fatalf("transcendental approximation must report ternary=0, got %d", res.Ternary)
	}
	if !res.Flags.Inexact {
		t.Fatal("transcendental approximation must set Inexact")
	}
	if res.Flags.Invalid {
		t.Fatal("sin is a supported approximated op, must not set Invalid")
	}
	got, _ := res.Num.ToBigFloat().Float64()
	if got != 0 {
		t.Fatalf("sin(0) = %v, want 0", got)
	}
}

func TestBigFloatTranscendental2Approximate(t *testing.T) {
	o := BigFloatOracle{}
	res := o.Eval2("pow", ratio(2, 1), ratio(3, 1), 10, RNDZ)
	if res.Ternary != 0 {
		t.Fatalf("transcendental approximation must report ternary=0, got %d", res.Ternary)
	}
	if !res.Flags.Inexact {
		t.Fatal("transcendental approximation must set Inexact")
	}
	got, _ := res.Num.ToBigFloat().Float64()
	if got != 8 {
		t.Fatalf("pow(2,3) = %v, want 8", got)
	}
}

func TestBigFloatRecip(t *testing.T) {
	o := BigFloatOracle{}
	res := o.Eval1("recip", ratio(4, 1), 10, RNDZ)
	if res.Ternary != 0 {
		t.Fatalf("recip(4) at 10 bits must be exact, got ternary=%d", res.Ternary)
	}
	got := res.Num.ToBigFloat()
	want := new(big.Float).SetPrec(200).SetRat(new(big.Rat).SetFrac64(1, 4))
	if got.Cmp(want) != 0 {
		t.Fatalf("recip(4) = %v, want 1/4", got)
	}
}

func TestBigFloatRecipOfZero(t *testing.T) {
	o := BigFloatOracle{}
	res := o.Eval1("recip", ratio(0, 1), 10, RNDZ)
	if !res.Flags.DivZero {
		t.Fatal("recip(0) must set DivZero")
	}
}
