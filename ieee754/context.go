// Package ieee754 implements IEEE 754 binary floating-point formats as a
// rounding context parameterized over exponent width (es) and total
// bitwidth (nbits), instead of the usual fixed binary16/32/64/128 set.
//
// Grounded on original_source/src/ieee754/{round,types,number}.rs, and
// on the builder-style Context pattern in
// github.com/trippwill/go-currency's fixedpoint.Context64.
package ieee754

import (
	"fmt"

	"github.com/trippwill/go-numform/rounding"
)

// Implementation limits, mirroring original_source/src/ieee754/round.rs.
const (
	ESMax   = 32
	ESMin   = 2
	PrecMin = 3
)

// Context is an immutable IEEE 754 format descriptor plus rounding
// behavior. Build one with NewContext and the With... methods.
type Context struct {
	es    int
	nbits int
	mode  rounding.Mode
	dtz   bool
	ftz   bool
}

// NewContext constructs a context for an es-bit exponent field and an
// nbits-bit total encoding. The default mode is NearestTiesToEven with
// dtz and ftz both disabled.
func NewContext(es, nbits int) Context {
	if es < ESMin {
		panic(fmt.Sprintf("ieee754: exponent width needs to be at least %d bits, given %d", ESMin, es))
	}
	if es > ESMax {
		panic(fmt.Sprintf("ieee754: exponent width needs to be at most %d bits, given %d", ESMax, es))
	}
	if nbits < es+3 {
		panic(fmt.Sprintf("ieee754: total bitwidth needs to be at least %d bits, given %d", es+3, nbits))
	}
	return Context{es: es, nbits: nbits, mode: rounding.NearestTiesToEven}
}

// WithRoundingMode returns a copy of c using the given rounding mode.
func (c Context) WithRoundingMode(m rounding.Mode) Context {
	c.mode = m
	return c
}

// WithDTZ returns a copy of c that flushes subnormal arguments to zero
// before an operation when enable is true.
func (c Context) WithDTZ(enable bool) Context {
	c.dtz = enable
	return c
}

// WithFTZ returns a copy of c that flushes subnormal results to zero
// after rounding when enable is true.
func (c Context) WithFTZ(enable bool) Context {
	c.ftz = enable
	return c
}

func (c Context) ES() int             { return c.es }
func (c Context) NBits() int          { return c.nbits }
func (c Context) Mode() rounding.Mode { return c.mode }
func (c Context) DTZ() bool           { return c.dtz }
func (c Context) FTZ() bool           { return c.ftz }

// MaxP is the maximum precision this format allows: nbits - es.
func (c Context) MaxP() int { return c.nbits - c.es }

// MaxM is the maximum stored significand width: MaxP - 1.
func (c Context) MaxM() int { return c.nbits - c.es - 1 }

// Emax is the exponent of the largest finite value viewed as (-1)^s * m * 2^e, 1<=m<2.
func (c Context) Emax() int { return (1 << (c.es - 1)) - 1 }

// Emin is the exponent of the smallest normal value in the same view.
func (c Context) Emin() int { return 1 - c.Emax() }

// ExpMax is the exponent of the largest finite value viewed as (-1)^s * c * 2^exp.
func (c Context) ExpMax() int { return c.Emax() - c.MaxM() }

// ExpMin is the exponent of the smallest normal value in the c*2^exp view.
func (c Context) ExpMin() int { return c.Emin() - c.MaxM() }

// Bias is the exponent bias used when bit-packing: equal to Emax.
func (c Context) Bias() int { return c.Emax() }
