package forward

import (
	"math"

	"github.com/alexiusacademia/gosteam/internal/iapws"
)

// Region1 evaluates the Gibbs free energy equation of region 1 (compressed
// liquid) at pressure p in MPa and temperature T in K.
//
// Valid for 273.15 K ≤ T ≤ 623.15 K and psat(T) ≤ p ≤ 100 MPa. No range
// checking is done.
func Region1(p, T float64) State {
	pi := p / iapws.PStar1
	tau := iapws.TStar1 / T

	// The table is written in (7.1 - π), so odd π derivatives flip sign.
	d := region1.Eval(7.1-pi, tau-1.222)
	g := d.F
	gp := -d.Fx
	gpp := d.Fxx
	gt := d.Fy
	gtt := d.Fyy
	gpt := -d.Fxy

	rt := iapws.R * T
	v := rt * pi * gp / p / 1000
	x := gp - tau*gpt

	return State{
		Region:    1,
		P:         p,
		T:         T,
		V:         v,
		Rho:       1 / v,
		U:         rt * (tau*gt - pi*gp),
		S:         iapws.R * (tau*gt - g),
		H:         rt * tau * gt,
		Cp:        -iapws.R * tau * tau * gtt,
		Cv:        iapws.R * (-tau*tau*gtt + x*x/gpp),
		W:         math.Sqrt(1000 * rt * gp * gp / (x*x/(tau*tau*gtt) - gpp)),
		Potential: g,
	}
}

// Region1TemperaturePH returns the temperature in K of region 1 from
// pressure p in MPa and specific enthalpy h in kJ/kg using the backward
// equation T(p,h) (IAPWS-IF97 Eq. (11)).
//
// The backward equation is consistent with Region1 to within 25 mK, so
// callers needing the forward equation's precision use it as a starting
// point for iteration.
func Region1TemperaturePH(p, h float64) float64 {
	return region1TPH.Sum(p, h/2500+1)
}
