// Command roundwalk walks a handful of representative values through
// every format this module implements (IEEE-754-style binary floats,
// binary fixed-point, and posits), across their rounding modes, and
// prints what each context produces. It exists to exercise the library
// end-to-end rather than as a tool with any stability guarantee.
package main

import (
	"fmt"
	"math/big"

	"github.com/trippwill/go-numform/dyadic"
	"github.com/trippwill/go-numform/fixedpoint"
	"github.com/trippwill/go-numform/ieee754"
	"github.com/trippwill/go-numform/numeric"
	"github.com/trippwill/go-numform/oracle"
	"github.com/trippwill/go-numform/posit"
	"github.com/trippwill/go-numform/rounding"
)

func ratio(num, den int64) dyadic.Float {
	r := new(big.Rat).SetFrac64(num, den)
	f := new(big.Float).SetPrec(200).SetRat(r)
	return dyadic.FromBigFloat(f)
}

var walkValues = []struct {
	label  string
	num    int64
	den    int64
}{
	{"1/3", 1, 3},
	{"355/113", 355, 113},
	{"15/16", 15, 16},
	{"100", 100, 1},
	{"-0.5", -1, 2},
}

var ieeeModes = []rounding.Mode{
	rounding.NearestTiesToEven,
	rounding.ToZero,
	rounding.ToPositive,
	rounding.ToNegative,
}

func main() {
	o := oracle.BigFloatOracle{}
	sep := "-------------------------------------"

	fmt.Println("== ieee754<es=5,nbits=16> across rounding modes ==")
	for _, v := range walkValues {
		x := ratio(v.num, v.den)
		for _, m := range ieeeModes {
			c := ieee754.NewContext(5, 16).WithRoundingMode(m)
			r := c.RoundReal(x)
			fmt.Printf("%-10s %-20s -> %v (inexact=%v)\n", v.label, m, r.ToDyadic().ToFloat64(), r.Flags.Inexact)
		}
	}
	println(sep)

	fmt.Println("== fixedpoint<signed,scale=-8,nbits=16,Saturate> arithmetic ==")
	fx := fixedpoint.NewContext(true, -8, 16).WithOverflow(fixedpoint.Saturate)
	prod, flags := numeric.FixedMul(o, fx, ratio(100, 1), ratio(100, 1))
	fmt.Printf("100*100 saturates: sign=%v c=%v overflow=%v\n", prod.Sign, prod.C, prod.Flags.Overflow)
	quot, flags := numeric.FixedDiv(o, fx, ratio(1, 1), ratio(3, 1))
	fmt.Printf("1/3 = sign=%v c=%v inexact=%v\n", quot.Sign, quot.C, quot.Flags.Inexact)
	println(sep)

	fmt.Println("== posit<es=2,nbits=16> ==")
	ps := posit.NewContext(2, 16)
	for _, v := range walkValues {
		x := ratio(v.num, v.den)
		p := ps.Round(x)
		fmt.Printf("%-10s -> %v\n", v.label, p.ToDyadic().ToFloat64())
	}
	hyp, _ := numeric.PositHypot(o, ps, ratio(3, 1), ratio(4, 1))
	fmt.Printf("hypot(3,4) = %v\n", hyp.ToDyadic().ToFloat64())
	println(sep)

	fmt.Println("== round-to-odd sanity ==")
	half := ieee754.NewContext(5, 16).WithRoundingMode(rounding.NearestTiesToEven)
	recip, flags := numeric.Recip(o, half, ratio(0, 1))
	fmt.Printf("1/0 is infinite: %v (divzero=%v)\n", recip.IsInfinite(), flags.DivZero)
}
