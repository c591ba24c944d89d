// Package rounding implements the rounding-mode algebra and the
// digit-splitting/rounding-direction kernel that every format context in
// this module is built from (spec §4.2, §4.3).
//
// Grounded on original_source/src/round.rs (RoundingMode, RoundingDirection)
// and original_source/src/rfloat/round.rs (the split/prepare/finalize
// kernel), in the house style of github.com/trippwill/go-currency's
// fixedpoint.Rounding: a small int-backed enum with a String method and
// a function that reduces it plus an operand sign to a concrete
// direction.
package rounding

import "fmt"

// Mode enumerates the eight rounding modes spec.md §4.2 names.
type Mode uint8

const (
	NearestTiesToEven Mode = iota
	NearestTiesAwayZero
	ToPositive
	ToNegative
	ToZero
	AwayZero
	ToEven
	ToOdd
)

func (m Mode) String() string {
	switch m {
	case NearestTiesToEven:
		return "NearestTiesToEven"
	case NearestTiesAwayZero:
		return "NearestTiesAwayZero"
	case ToPositive:
		return "ToPositive"
	case ToNegative:
		return "ToNegative"
	case ToZero:
		return "ToZero"
	case AwayZero:
		return "AwayZero"
	case ToEven:
		return "ToEven"
	case ToOdd:
		return "ToOdd"
	default:
		return fmt.Sprintf("Mode(%d)", uint8(m))
	}
}

// Direction is the concrete rounding direction a Mode resolves to once
// the operand's sign is known.
type Direction uint8

const (
	DirToZero Direction = iota
	DirAwayZero
	DirToEven
	DirToOdd
)

func (d Direction) String() string {
	switch d {
	case DirToZero:
		return "ToZero"
	case DirAwayZero:
		return "AwayZero"
	case DirToEven:
		return "ToEven"
	case DirToOdd:
		return "ToOdd"
	default:
		return fmt.Sprintf("Direction(%d)", uint8(d))
	}
}

// ToDirection reduces a Mode and an operand sign to (isNearest, dir),
// per the table in spec.md §4.2.
func (m Mode) ToDirection(sign bool) (isNearest bool, dir Direction) {
	switch m {
	case NearestTiesToEven:
		return true, DirToEven
	case NearestTiesAwayZero:
		return true, DirAwayZero
	case ToPositive:
		if sign {
			return false, DirToZero
		}
		return false, DirAwayZero
	case ToNegative:
		if sign {
			return false, DirAwayZero
		}
		return false, DirToZero
	case ToZero:
		return false, DirToZero
	case AwayZero:
		return false, DirAwayZero
	case ToEven:
		return false, DirToEven
	case ToOdd:
		return false, DirToOdd
	default:
		panic(fmt.Sprintf("rounding: unknown mode %v", m))
	}
}
