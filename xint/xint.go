package xint

import "math/big"

// Int is a thin facade over an unbounded, non-negative-by-convention
// signed integer. It exposes exactly the surface the rounding kernel
// needs (see spec §6, "Unbounded-integer interface") and nothing of
// *big.Int's broader method set, so the arbitrary-precision library
// stays swappable at this one seam.
type Int struct {
	v big.Int
}

// Zero is the additive identity. The zero value of Int is also zero,
// so this constructor exists for readability at call sites.
func Zero() Int { return Int{} }

// FromInt64 builds an Int from a native int64.
func FromInt64(n int64) Int {
	var i Int
	i.v.SetInt64(n)
	return i
}

// FromUint64 builds an Int from a native uint64.
func FromUint64(n uint64) Int {
	var i Int
	i.v.SetUint64(n)
	return i
}

// FromBigInt copies a *big.Int into an Int, leaving the original untouched.
func FromBigInt(b *big.Int) Int {
	var i Int
	if b != nil {
		i.v.Set(b)
	}
	return i
}

// BigInt returns a copy of the underlying *big.Int.
func (i Int) BigInt() *big.Int {
	return new(big.Int).Set(&i.v)
}

// IsZero reports whether i is zero.
func (i Int) IsZero() bool { return i.v.Sign() == 0 }

// IsNegative reports whether i is strictly negative.
func (i Int) IsNegative() bool { return i.v.Sign() < 0 }

// Sign returns -1, 0, or 1.
func (i Int) Sign() int { return i.v.Sign() }

// BitLen returns the absolute bit length of i (the bit length of |i|).
// BitLen of zero is 0.
func (i Int) BitLen() int { return i.v.BitLen() }

// Bit returns the value of the k-th bit of i's two's-complement
// representation (the bit of |i| when i is non-negative), k counted
// from the LSB at 0. Out-of-range k (negative) returns 0.
func (i Int) Bit(k int) uint {
	if k < 0 {
		return 0
	}
	return i.v.Bit(k)
}

// Neg returns -i.
func (i Int) Neg() Int {
	var r Int
	r.v.Neg(&i.v)
	return r
}

// Abs returns |i|.
func (i Int) Abs() Int {
	var r Int
	r.v.Abs(&i.v)
	return r
}

// Add returns i + j.
func (i Int) Add(j Int) Int {
	var r Int
	r.v.Add(&i.v, &j.v)
	return r
}

// Sub returns i - j.
func (i Int) Sub(j Int) Int {
	var r Int
	r.v.Sub(&i.v, &j.v)
	return r
}

// Mul returns i * j.
func (i Int) Mul(j Int) Int {
	var r Int
	r.v.Mul(&i.v, &j.v)
	return r
}

// Lsh returns i << n, an exact operation.
func (i Int) Lsh(n uint) Int {
	var r Int
	r.v.Lsh(&i.v, n)
	return r
}

// Rsh returns i >> n, an arithmetic (sign-preserving, truncating) shift.
func (i Int) Rsh(n uint) Int {
	var r Int
	r.v.Rsh(&i.v, n)
	return r
}

// DivModPow2 divides i by 2^n, returning the truncated-toward-negative-infinity
// quotient and the non-negative remainder, i.e. i == q*2^n + r with 0 <= r < 2^n.
// This is the one division the kernel needs: splitting a significand at a
// power-of-two boundary.
func (i Int) DivModPow2(n uint) (q, r Int) {
	if n == 0 {
		return i, Zero()
	}
	mask := new(big.Int).Lsh(big.NewInt(1), n)
	mask.Sub(mask, big.NewInt(1))
	var rem big.Int
	rem.And(&i.v, mask)
	var quot big.Int
	quot.Rsh(&i.v, n)
	return Int{v: quot}, Int{v: rem}
}

// MaskLow returns i with only its lowest n bits retained (i.e. i mod 2^n
// for non-negative i; the kernel only ever calls this on non-negative
// significands).
func (i Int) MaskLow(n uint) Int {
	_, r := i.DivModPow2(n)
	return r
}

// QuoRem divides i by a non-zero m using truncated (toward-zero)
// division: i == q*m + r with |r| < |m| and r taking the sign of i,
// matching C/Go's native integer division semantics. Used by
// fixed-point wraparound.
func (i Int) QuoRem(m Int) (q, r Int) {
	var qq, rr big.Int
	qq.QuoRem(&i.v, &m.v, &rr)
	return Int{v: qq}, Int{v: rr}
}

// IsOdd reports whether the least significant bit of i is set.
func (i Int) IsOdd() bool { return i.v.Bit(0) == 1 }

// IsEven reports whether the least significant bit of i is clear.
func (i Int) IsEven() bool { return !i.IsOdd() }

// Cmp compares i and j as signed integers: -1, 0, or 1.
func (i Int) Cmp(j Int) int { return i.v.Cmp(&j.v) }

// Equal reports whether i == j.
func (i Int) Equal(j Int) bool { return i.Cmp(j) == 0 }

// One returns the constant 1.
func One() Int { return FromInt64(1) }

// String renders i in base 10.
func (i Int) String() string { return i.v.String() }
