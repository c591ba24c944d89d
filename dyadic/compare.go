package dyadic

// Ordering mirrors the three-way result of a comparison; Go has no
// built-in tri-state for this, so we define the minimal enum the kernel
// needs instead of importing a general-purpose ordering package.
type Ordering int

const (
	Less Ordering = iota - 1
	Equal
	Greater
)

// Compare gives the total order on the non-NaN subset of Float,
// matching the rational order of (-1)^s * c * 2^exp with +/-Inf at the
// extremes. ok is false whenever either operand is NaN (comparisons
// with NaN are unordered).
//
// Grounded on original_source/src/rfloat/number.rs's PartialOrd impl.
func Compare(a, b Float) (ord Ordering, ok bool) {
	if a.IsNaN() || b.IsNaN() {
		return Equal, false
	}

	aInf, bInf := a.IsInfinite(), b.IsInfinite()
	switch {
	case aInf && bInf:
		switch {
		case a.sign == b.sign:
			return Equal, true
		case a.sign:
			return Less, true // -Inf < +Inf
		default:
			return Greater, true
		}
	case aInf:
		if a.sign {
			return Less, true // -Inf < finite
		}
		return Greater, true // +Inf > finite
	case bInf:
		if b.sign {
			return Greater, true // finite > -Inf
		}
		return Less, true // finite < +Inf
	}

	// both finite
	aZero, bZero := a.IsZero(), b.IsZero()
	switch {
	case aZero && bZero:
		return Equal, true
	case aZero:
		if b.sign {
			return Greater, true // 0 > -finite
		}
		return Less, true // 0 < finite
	case bZero:
		if a.sign {
			return Less, true // -finite < 0
		}
		return Greater, true // finite > 0
	}

	if a.sign != b.sign {
		if a.sign {
			return Less, true
		}
		return Greater, true
	}

	// same sign, non-zero: compare magnitude by normalized exponent
	// first, then by bit-aligned significand.
	ea, _ := a.E()
	eb, _ := b.E()

	var mag Ordering
	switch {
	case ea < eb:
		mag = Less
	case ea > eb:
		mag = Greater
	default:
		na, _ := a.N()
		nb, _ := b.N()
		n := na
		if nb < n {
			n = nb
		}
		ca := a.c.Lsh(uint(na - n))
		cb := b.c.Lsh(uint(nb - n))
		switch ca.Cmp(cb) {
		case -1:
			mag = Less
		case 1:
			mag = Greater
		default:
			mag = Equal
		}
	}

	if a.sign {
		return reverse(mag), true
	}
	return mag, true
}

func reverse(o Ordering) Ordering {
	switch o {
	case Less:
		return Greater
	case Greater:
		return Less
	default:
		return Equal
	}
}

// Equals reports whether a and b compare equal; NaN is never equal to
// anything, including itself.
func Equals(a, b Float) bool {
	ord, ok := Compare(a, b)
	return ok && ord == Equal
}

// IsLess reports a < b under the total order; false whenever either
// operand is NaN.
func IsLess(a, b Float) bool {
	ord, ok := Compare(a, b)
	return ok && ord == Less
}
