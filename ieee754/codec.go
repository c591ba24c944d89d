package ieee754

import "github.com/trippwill/go-numform/xint"

// MinFloat returns the smallest representable magnitude with the
// given sign (the subnormal with significand 1).
func (c Context) MinFloat(sign bool) Float {
	return Float{Num: SubnormalValue(sign, xint.One()), Ctx: c}
}

// MaxFloat returns the largest finite representable magnitude with
// the given sign.
func (c Context) MaxFloat(sign bool) Float {
	return Float{Num: NormalValue(sign, c.ExpMax(), bitmask(c.MaxP())), Ctx: c}
}

// bitmask returns the unbounded integer consisting of n set bits.
func bitmask(n int) xint.Int {
	if n <= 0 {
		return xint.Zero()
	}
	return xint.One().Lsh(uint(n)).Sub(xint.One())
}

// Inf constructs an infinity with the given sign.
func (c Context) Inf(sign bool) Float {
	return Float{Num: InfinityValue(sign), Ctx: c}
}

// QNaN constructs the canonical quiet NaN (unsigned, empty payload).
func (c Context) QNaN() Float {
	return Float{Num: NaNValue(false, true, xint.Zero()), Ctx: c}
}

// SNaN constructs the canonical signaling NaN (unsigned, payload 1).
func (c Context) SNaN() Float {
	return Float{Num: NaNValue(false, false, xint.One()), Ctx: c}
}

// BitsToFloat decomposes an nbits-wide unsigned bitpattern into a
// Float under this context. Grounded on
// original_source/src/ieee754/round.rs's Context::bits_to_number.
func (c Context) BitsToFloat(bits xint.Int) Float {
	p := c.MaxP()

	s := bits.Bit(c.nbits - 1) == 1
	eHigh, _ := bits.DivModPow2(uint(p - 1))
	e := eHigh.MaskLow(uint(c.es))
	m := bits.MaskLow(uint(p - 1))

	eNorm := e.BigInt().Int64() - int64(c.Emax())

	var num Value
	switch {
	case eNorm < int64(c.Emin()):
		if m.IsZero() {
			num = ZeroValue(s)
		} else {
			num = SubnormalValue(s, m)
		}
	case eNorm <= int64(c.Emax()):
		sig := setImplicitBit(m, p-1)
		exp := int(eNorm) - (p - 1)
		num = NormalValue(s, exp, sig)
	default:
		if m.IsZero() {
			num = InfinityValue(s)
		} else {
			quiet := m.Bit(p-2) == 1
			payload := m.MaskLow(uint(p - 2))
			num = NaNValue(s, quiet, payload)
		}
	}

	return Float{Num: num, Ctx: c}
}

func setImplicitBit(m xint.Int, bit int) xint.Int {
	return xint.One().Lsh(uint(bit)).Add(m)
}

// FloatToBits packs f into its nbits-wide unsigned bitpattern. f must
// belong to this context (f.Ctx is ignored; the receiver c is used).
func (c Context) FloatToBits(f Float) xint.Int {
	p := c.MaxP()
	var s xint.Int
	if f.Num.Sign() {
		s = xint.One()
	} else {
		s = xint.Zero()
	}

	var e, m xint.Int
	switch f.Num.Class() {
	case ClassZero:
		e, m = xint.Zero(), xint.Zero()
	case ClassSubnormal:
		e, m = xint.Zero(), f.Num.c
	case ClassNormal:
		biased := (f.Num.exp + (p - 1)) + c.Emax()
		e = xint.FromInt64(int64(biased))
		m = f.Num.c.MaskLow(uint(p - 1))
	case ClassInfinity:
		e = bitmask(c.es)
		m = xint.Zero()
	default: // ClassNaN
		e = bitmask(c.es)
		quietBit := xint.Zero()
		if f.Num.quiet {
			quietBit = xint.One().Lsh(uint(p - 2))
		}
		m = f.Num.payload.MaskLow(uint(p - 2)).Add(quietBit)
	}

	bits := s.Lsh(uint(c.nbits - 1))
	bits = bits.Add(e.Lsh(uint(p - 1)))
	bits = bits.Add(m)
	return bits
}
