// Package steam locates a state in the IAPWS-IF97 regions and evaluates its
// properties.
package steam

import (
	"errors"
	"fmt"
	"math"

	"github.com/alexiusacademia/gosteam/internal/boundary"
	"github.com/alexiusacademia/gosteam/internal/iapws"
)

// Region is one of the five regions of IAPWS-IF97. The zero value means the
// point is outside the range of validity.
type Region int

const (
	OutOfRange Region = iota
	Region1           // compressed liquid
	Region2           // superheated vapour
	Region3           // near-critical and supercritical
	Region4           // saturation line
	Region5           // high-temperature vapour
)

func (r Region) String() string {
	switch r {
	case Region1, Region2, Region3, Region4, Region5:
		return fmt.Sprintf("region %d", int(r))
	case OutOfRange:
		return "out of range"
	default:
		return fmt.Sprintf("Region(%d)", int(r))
	}
}

var (
	// ErrOutOfRange is returned for points outside every region.
	ErrOutOfRange = errors.New("steam: state outside IAPWS-IF97 range of validity")

	// ErrTwoPhase is returned when a state lies on the saturation line, where
	// pressure and temperature do not fix the phase.
	ErrTwoPhase = errors.New("steam: state is a two-phase mixture")
)

// saturationTolerance is the relative distance from psat(T) within which a
// (p, T) point counts as saturated.
const saturationTolerance = 1e-9

// Locate returns the region containing pressure p in MPa and temperature T
// in K. Points on the B23 curve belong to region 2.
func Locate(p, T float64) Region {
	if !iapws.InEnvelope(p, T) {
		return OutOfRange
	}
	switch {
	case T > iapws.T25:
		return Region5
	case T <= iapws.T13:
		ps := boundary.SaturationPressure(T)
		switch {
		case math.Abs(p-ps) <= saturationTolerance*ps:
			return Region4
		case p > ps:
			return Region1
		default:
			return Region2
		}
	case T <= iapws.T23:
		if p > boundary.B23Pressure(T) {
			return Region3
		}
		return Region2
	default:
		return Region2
	}
}
