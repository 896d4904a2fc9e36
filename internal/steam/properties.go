package steam

import (
	"errors"
	"fmt"

	"github.com/alexiusacademia/gosteam/internal/forward"
	"github.com/alexiusacademia/gosteam/internal/secant"
	"github.com/alexiusacademia/gosteam/internal/subregion"
)

// Point is a state evaluated at a given pressure and temperature.
type Point struct {
	forward.State `yaml:",inline"`

	// Subregion and NearCritical are set for region 3 only.
	Subregion    subregion.Label `yaml:"subregion,omitempty"`
	NearCritical bool            `yaml:"near_critical,omitempty"`
	// Iterations is the number of secant steps spent finding the
	// region 3 density.
	Iterations int `yaml:"iterations,omitempty"`
}

// densityOptions are the solver settings for the region 3 density. They are
// tighter than the defaults so that properties derived from the density are
// smooth enough to be inverted again.
var densityOptions = secant.Options{Tolerance: 1e-12}

// Properties evaluates the state at pressure p in MPa and temperature T in
// K.
//
// In region 3 the density comes from the secant solver seeded with the
// subregion backward equation. If the solver does not converge the state at
// the backward density is returned together with a *secant.ConvergenceError.
func Properties(p, T float64) (Point, error) {
	switch r := Locate(p, T); r {
	case Region1:
		return Point{State: forward.Region1(p, T)}, nil
	case Region2:
		return Point{State: forward.Region2(p, T)}, nil
	case Region5:
		return Point{State: forward.Region5(p, T)}, nil
	case Region3:
		d, err := Density3(p, T)
		if err != nil && !errors.Is(err, secant.ErrNotConverged) {
			return Point{}, err
		}
		s := forward.Region3(d.Rho, T)
		pt := Point{
			State:        s,
			Subregion:    d.Subregion,
			NearCritical: d.NearCritical,
			Iterations:   d.Iterations,
		}
		return pt, err
	case Region4:
		return Point{}, fmt.Errorf("%w: p=%g MPa, T=%g K", ErrTwoPhase, p, T)
	default:
		return Point{}, fmt.Errorf("%w: p=%g MPa, T=%g K", ErrOutOfRange, p, T)
	}
}

// Density is the region 3 density found for a (p, T) point.
type Density struct {
	Rho          float64 // kg/m³
	Backward     float64 // density from the backward equation, kg/m³
	Subregion    subregion.Label
	NearCritical bool
	Iterations   int
}

// Density3 returns the density of region 3 at pressure p in MPa and
// temperature T in K. The point is assumed to be in region 3.
func Density3(p, T float64) (Density, error) {
	v, cl, err := subregion.Volume(p, T)
	if err != nil {
		return Density{}, fmt.Errorf("region 3 density: %w", err)
	}
	return solveDensity(p, T, 1/v, cl)
}

func solveDensity(p, T, guess float64, cl subregion.Classification) (Density, error) {
	d := Density{
		Rho:          guess,
		Backward:     guess,
		Subregion:    cl.Label,
		NearCritical: cl.NearCritical,
	}
	res, err := secant.Solve(forward.Region3Pressure, secant.FixSecond, T, p, guess, densityOptions)
	d.Iterations = res.Iterations
	if err != nil {
		return d, fmt.Errorf("region 3 density at p=%g MPa, T=%g K (subregion %v): %w", p, T, cl.Label, err)
	}
	d.Rho = res.Value
	return d, nil
}
