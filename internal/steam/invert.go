package steam

import (
	"errors"
	"fmt"
	"math"
	"sort"

	"github.com/alexiusacademia/gosteam/internal/boundary"
	"github.com/alexiusacademia/gosteam/internal/forward"
	"github.com/alexiusacademia/gosteam/internal/iapws"
	"github.com/alexiusacademia/gosteam/internal/secant"
)

// inversionOptions are the solver settings for T(p,h) and T(p,s).
var inversionOptions = secant.Options{Tolerance: 1e-9}

// scanStep is the temperature spacing used to bracket the answer before
// iterating.
const scanStep = 5.0

// property picks one field of a state.
type property func(forward.State) float64

func enthalpy(s forward.State) float64 { return s.H }
func entropy(s forward.State) float64  { return s.S }

// TemperaturePH returns the temperature in K at pressure p in MPa and
// specific enthalpy h in kJ/kg.
//
// Inside the two-phase dome the saturation temperature is returned with an
// error wrapping ErrTwoPhase.
func TemperaturePH(p, h float64) (float64, error) {
	if p <= 0 || p > iapws.PMax {
		return 0, fmt.Errorf("%w: p=%g MPa", ErrOutOfRange, p)
	}
	if p < iapws.Pt {
		return invert(p, h, enthalpy, "h")
	}
	if p <= iapws.Pc {
		sat, err := SaturationAtP(p)
		if err != nil {
			return 0, err
		}
		if h > sat.Liquid.H && h < sat.Vapour.H {
			x := Quality(h, sat.Liquid.H, sat.Vapour.H)
			return sat.T, fmt.Errorf("%w: quality %.4f at p=%g MPa", ErrTwoPhase, x, p)
		}
		if sat.T <= iapws.T13 && h <= sat.Liquid.H {
			return temperatureRegion1PH(p, h)
		}
	} else if h <= forward.Region1(p, iapws.T13).H {
		return temperatureRegion1PH(p, h)
	}
	return invert(p, h, enthalpy, "h")
}

// TemperaturePS returns the temperature in K at pressure p in MPa and
// specific entropy s in kJ/(kg·K).
func TemperaturePS(p, s float64) (float64, error) {
	if p <= 0 || p > iapws.PMax {
		return 0, fmt.Errorf("%w: p=%g MPa", ErrOutOfRange, p)
	}
	if p >= iapws.Pt && p <= iapws.Pc {
		sat, err := SaturationAtP(p)
		if err != nil {
			return 0, err
		}
		if s > sat.Liquid.S && s < sat.Vapour.S {
			x := Quality(s, sat.Liquid.S, sat.Vapour.S)
			return sat.T, fmt.Errorf("%w: quality %.4f at p=%g MPa", ErrTwoPhase, x, p)
		}
	}
	return invert(p, s, entropy, "s")
}

// temperatureRegion1PH refines the region 1 backward equation T(p,h) to the
// precision of the forward equation.
func temperatureRegion1PH(p, h float64) (float64, error) {
	guess := forward.Region1TemperaturePH(p, h)
	f := func(p, T float64) float64 { return forward.Region1(p, T).H }
	res, err := secant.Solve(f, secant.FixFirst, p, h, guess, inversionOptions)
	if err != nil {
		return res.Value, fmt.Errorf("T(p=%g, h=%g): %w", p, h, err)
	}
	if res.Value < iapws.TMin {
		return res.Value, fmt.Errorf("%w: T(p=%g, h=%g) = %g K", ErrOutOfRange, p, h, res.Value)
	}
	return res.Value, nil
}

// invert solves prop(p, T) = target for T. The solver is seeded by linear
// interpolation inside the first bracket of a temperature scan that
// contains the target.
func invert(p, target float64, prop property, name string) (float64, error) {
	eval := func(p, T float64) float64 {
		pt, err := Properties(p, T)
		if err != nil && !errors.Is(err, secant.ErrNotConverged) {
			return math.NaN()
		}
		return prop(pt.State)
	}

	guess, err := bracket(p, target, eval)
	if err != nil {
		return 0, fmt.Errorf("T(p=%g, %s=%g): %w", p, name, target, err)
	}
	res, err := secant.Solve(eval, secant.FixFirst, p, target, guess, inversionOptions)
	if err != nil {
		return res.Value, fmt.Errorf("T(p=%g, %s=%g): %w", p, name, target, err)
	}
	if Locate(p, res.Value) == OutOfRange {
		return res.Value, fmt.Errorf("%w: T(p=%g, %s=%g) = %g K", ErrOutOfRange, p, name, target, res.Value)
	}
	return res.Value, nil
}

// scanTemperatures lists the temperatures tried by bracket at pressure p.
// Points just either side of the saturation line are included so that no
// bracket straddles the two-phase jump.
func scanTemperatures(p float64) []float64 {
	tMax := iapws.TMax
	if p > iapws.P5Max {
		tMax = iapws.T25
	}
	ts := []float64{}
	for T := iapws.TMin; T < tMax; T += scanStep {
		ts = append(ts, T)
	}
	ts = append(ts, tMax)
	if p >= iapws.Pt && p < iapws.Pc {
		tsat := boundary.SaturationTemperature(p)
		ts = append(ts, tsat-sideOffset, tsat+sideOffset)
		sort.Float64s(ts)
	}
	return ts
}

func bracket(p, target float64, eval func(p, T float64) float64) (float64, error) {
	prevT, prevV := math.NaN(), math.NaN()
	for _, T := range scanTemperatures(p) {
		v := eval(p, T)
		if math.IsNaN(v) {
			continue
		}
		if v >= target {
			if math.IsNaN(prevV) {
				break
			}
			return prevT + (target-prevV)*(T-prevT)/(v-prevV), nil
		}
		prevT, prevV = T, v
	}
	return 0, ErrOutOfRange
}
