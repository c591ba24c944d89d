package posit

import "github.com/trippwill/go-numform/xint"

func bitmask(n int) xint.Int {
	if n <= 0 {
		return xint.Zero()
	}
	return xint.One().Lsh(uint(n)).Sub(xint.One())
}

// BitsToPosit decomposes an nbits-wide unsigned bitpattern into a
// Posit, scanning for the regime run exactly as
// original_source/src/posit/round.rs's Context::bits_to_number does.
func (c Context) BitsToPosit(bits xint.Int) Posit {
	s := bits.Bit(c.nbits-1) == 1
	ns := bits.MaskLow(uint(c.nbits - 1))

	if ns.IsZero() {
		if s {
			return c.NaR()
		}
		return c.Zero()
	}

	r0 := ns.Bit(c.nbits-2) == 1
	r0Pos := c.nbits - 2
	for r0Pos > 0 && (ns.Bit(r0Pos-1) == 1) == r0 {
		r0Pos--
	}

	if r0Pos == 0 {
		return Posit{Num: NonZeroValue(s, c.RMax(), 0, xint.One()), Ctx: c}
	}

	embits := r0Pos - 1
	rbits := c.nbits - embits - 1
	var ebits, mbits int
	if embits <= c.es {
		ebits, mbits = embits, 0
	} else {
		ebits, mbits = c.es, embits-c.es
	}

	efieldQ, _ := ns.DivModPow2(uint(mbits))
	efield := efieldQ.MaskLow(uint(ebits))
	mfield := ns.MaskLow(uint(mbits))

	kbits := rbits - 1
	var regime int
	if r0 {
		regime = kbits - 1
	} else {
		regime = -kbits
	}

	var e int
	eVal := int(efield.BigInt().Int64())
	if ebits < c.es {
		e = eVal << uint(c.es-ebits)
	} else {
		e = eVal
	}

	cc := xint.One().Lsh(uint(mbits)).Add(mfield)
	return Posit{Num: NonZeroValue(s, regime, e-mbits, cc), Ctx: c}
}

// PositToBits packs p into its nbits-wide unsigned bitpattern, per
// original_source/src/posit/number.rs's Posit::into_bits.
func (c Context) PositToBits(p Posit) xint.Int {
	switch p.Num.class {
	case ClassZero:
		return xint.Zero()
	case ClassNaR:
		return xint.One().Lsh(uint(c.nbits - 1))
	default:
		sfield := xint.Zero()
		if p.Num.sign {
			sfield = xint.One()
		}

		var kbits int
		var r0 bool
		if p.Num.regime < 0 {
			kbits, r0 = -p.Num.regime, false
		} else {
			kbits, r0 = p.Num.regime+1, true
		}

		if kbits == c.nbits-1 {
			bits := sfield.Lsh(uint(c.nbits - 1))
			return bits.Add(bitmask(c.nbits - 1))
		}

		rbits := kbits + 1
		embits := c.nbits - (rbits + 1)
		var ebits, mbits int
		if embits <= c.es {
			ebits, mbits = embits, 0
		} else {
			ebits, mbits = c.es, embits-c.es
		}

		var rfield xint.Int
		if r0 {
			rfield = bitmask(kbits).Lsh(1)
		} else {
			rfield = xint.One()
		}

		p0 := p.Num.c.BitLen()
		e := p.Num.exp + (p0 - 1)
		efield := xint.FromInt64(int64(e >> uint(c.es-ebits)))
		mfield := p.Num.c.MaskLow(uint(maxInt(p0-1, 0)))

		bits := sfield.Lsh(uint(c.nbits - 1))
		bits = bits.Add(rfield.Lsh(uint(embits)))
		bits = bits.Add(efield.Lsh(uint(mbits)))
		bits = bits.Add(mfield)
		return bits
	}
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
