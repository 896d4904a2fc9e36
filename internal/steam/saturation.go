package steam

import (
	"fmt"
	"math"

	"github.com/alexiusacademia/gosteam/internal/boundary"
	"github.com/alexiusacademia/gosteam/internal/forward"
	"github.com/alexiusacademia/gosteam/internal/iapws"
	"github.com/alexiusacademia/gosteam/internal/subregion"
)

// Saturation holds both phases of a point on the saturation line.
type Saturation struct {
	P      float64       `yaml:"p"` // MPa
	T      float64       `yaml:"t"` // K
	Liquid forward.State `yaml:"liquid"`
	Vapour forward.State `yaml:"vapour"`
}

// sideOffset moves a point just off the saturation line when picking the
// liquid or vapour subregion of region 3.
const sideOffset = 1e-6

// SaturationAtT returns the saturated liquid and vapour at temperature T in
// K, for 273.15 K ≤ T ≤ 647.096 K. Up to 623.15 K the phases come from
// regions 1 and 2; above they are region 3 states.
func SaturationAtT(T float64) (Saturation, error) {
	if T < iapws.TMin || T > iapws.Tc {
		return Saturation{}, fmt.Errorf("%w: saturation temperature %g K", ErrOutOfRange, T)
	}
	p := boundary.SaturationPressure(T)
	if T <= iapws.T13 {
		return Saturation{
			P:      p,
			T:      T,
			Liquid: forward.Region1(p, T),
			Vapour: forward.Region2(p, T),
		}, nil
	}

	liq, err := saturatedDensity3(p, T, T-sideOffset)
	if err != nil {
		return Saturation{}, err
	}
	vap, err := saturatedDensity3(p, T, T+sideOffset)
	if err != nil {
		return Saturation{}, err
	}
	return Saturation{
		P:      p,
		T:      T,
		Liquid: forward.Region3(liq, T),
		Vapour: forward.Region3(vap, T),
	}, nil
}

// SaturationAtP returns the saturated liquid and vapour at pressure p in
// MPa, for 611.213 Pa ≤ p ≤ 22.064 MPa.
func SaturationAtP(p float64) (Saturation, error) {
	if p < boundary.SaturationPressure(iapws.TMin) || p > iapws.Pc {
		return Saturation{}, fmt.Errorf("%w: saturation pressure %g MPa", ErrOutOfRange, p)
	}
	return SaturationAtT(math.Min(boundary.SaturationTemperature(p), iapws.Tc))
}

// saturatedDensity3 finds the region 3 density at (p, T) on the phase
// selected by evaluating the subregion at side instead of T.
func saturatedDensity3(p, T, side float64) (float64, error) {
	cl, err := subregion.Classify(p, side)
	if err != nil {
		return 0, err
	}
	c, err := subregion.Lookup(cl.Label)
	if err != nil {
		return 0, err
	}
	d, err := solveDensity(p, T, 1/c.Volume(p, T), cl)
	if err != nil {
		return 0, err
	}
	return d.Rho, nil
}

// Quality returns the vapour mass fraction of a mixture with property value
// x (enthalpy, entropy or volume) given the saturated values.
func Quality(x, liquid, vapour float64) float64 {
	return (x - liquid) / (vapour - liquid)
}
