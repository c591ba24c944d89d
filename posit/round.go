package posit

import (
	"github.com/trippwill/go-numform/dyadic"
	"github.com/trippwill/go-numform/rounding"
)

// regimeFieldBits returns the regime run length (rbits, matching
// original_source's kbits+1) for a candidate regime r.
func regimeFieldBits(r int) int {
	if r < 0 {
		return -r + 1
	}
	return r + 2
}

// dynamicPrecision returns the maximum significand width available
// once the regime run and (partial) exponent field have been carved
// out of the nbits-wide encoding, for a candidate regime r. Mirrors
// the embits/ebits/mbits split in bits_to_number/into_bits, returning
// precision as mbits+1 (the stored mantissa bits plus the implicit
// leading one).
func (c Context) dynamicPrecision(r int) int {
	rbits := regimeFieldBits(r)
	embits := c.nbits - rbits - 1
	if embits < 0 {
		embits = 0
	}
	var ebits, mbits int
	if embits <= c.es {
		ebits, mbits = embits, 0
	} else {
		ebits, mbits = c.es, embits-c.es
	}
	_ = ebits
	return mbits + 1
}

// Round rounds any Real value into this posit format. Values are
// rounded to nearest (ties to even) at the dynamic precision implied
// by their regime, then clamped to [MinVal, MaxVal] if they fall
// outside the representable range. Zero and non-numerical (NaR)
// values are preserved by class.
//
// This is deliberately the high-level treatment spec.md §4.6 calls
// for: original_source/src/posit/round.rs never implemented `round`
// at all (`todo!()`), so there is no reference algorithm to port
// faithfully; this rounds through the dyadic kernel using the
// regime-dependent precision the standard describes, without chasing
// every boundary case the 2022 Posit Standard defines for exponent
// field truncation.
func (c Context) Round(val dyadic.Real) Posit {
	if val.IsZero() {
		return c.Zero()
	}
	if !val.IsNumerical() {
		return c.NaR()
	}

	x := dyadic.FromReal(val)
	e2, ok := x.E()
	if !ok {
		return c.NaR()
	}

	rscale := c.RScale()
	r := floorDiv(e2, rscale)
	if r > c.RMax() {
		return c.boundaryValue(val.Sign())
	}
	if r < -c.RMax() {
		return c.boundaryValue(val.Sign())
	}

	p := c.dynamicPrecision(r)
	if p < 1 {
		p = 1
	}

	result := rounding.RoundFinite(x, rounding.WithMaxP(p), rounding.NearestTiesToEven, false)
	rc, rcOk := result.Rounded.C()
	rexp, rexpOk := result.Rounded.Exp()
	if !rcOk || !rexpOk {
		return c.Zero()
	}

	exp := rexp - r*rscale
	candidate := Posit{Num: NonZeroValue(result.Rounded.Sign(), r, exp, rc), Ctx: c}

	maxv := c.MaxVal()
	minv := c.MinVal()
	if ord, ok := dyadic.Compare(candidate.ToDyadic(), maxv.ToDyadic()); ok && ord == dyadic.Greater {
		return maxv
	}
	if ord, ok := dyadic.Compare(candidate.ToDyadic(), minv.ToDyadic()); ok && ord == dyadic.Less {
		return minv
	}
	return candidate
}

func (c Context) boundaryValue(sign bool) Posit {
	if sign {
		return c.MinVal()
	}
	return c.MaxVal()
}

func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}
