package forward

import (
	"math"

	"github.com/alexiusacademia/gosteam/internal/iapws"
	"github.com/alexiusacademia/gosteam/internal/powersum"
)

// gasEquation describes a Gibbs free energy split into an ideal-gas part and
// a residual part, the form shared by regions 2 and 5.
type gasEquation struct {
	region   int
	pStar    float64
	tStar    float64
	ideal    powersum.Table // terms n°·τ^J; the ln π term is implicit
	residual powersum.Table // terms n·π^I·(τ - tauShift)^J
	tauShift float64
}

var (
	gasRegion2 = gasEquation{
		region:   2,
		pStar:    iapws.PStar2,
		tStar:    iapws.TStar2,
		ideal:    region2Ideal,
		residual: region2Residual,
		tauShift: 0.5,
	}
	gasRegion5 = gasEquation{
		region:   5,
		pStar:    iapws.PStar5,
		tStar:    iapws.TStar5,
		ideal:    region5Ideal,
		residual: region5Residual,
	}
)

// Region2 evaluates the Gibbs free energy equation of region 2 (superheated
// vapour) at pressure p in MPa and temperature T in K.
//
// Valid for 273.15 K ≤ T ≤ 623.15 K with 0 < p ≤ psat(T), for
// 623.15 K < T ≤ 863.15 K with 0 < p ≤ pB23(T), and for
// 863.15 K < T ≤ 1073.15 K with 0 < p ≤ 100 MPa.
func Region2(p, T float64) State {
	return gasRegion2.state(p, T)
}

// Region5 evaluates the Gibbs free energy equation of region 5 (high
// temperature vapour) for 1073.15 K ≤ T ≤ 2273.15 K and 0 < p ≤ 50 MPa.
func Region5(p, T float64) State {
	return gasRegion5.state(p, T)
}

func (e gasEquation) state(p, T float64) State {
	pi := p / e.pStar
	tau := e.tStar / T

	o := e.ideal.Eval(pi, tau)
	g0 := math.Log(pi) + o.F
	g0t := o.Fy
	g0tt := o.Fyy

	r := e.residual.Eval(pi, tau-e.tauShift)
	gr := r.F
	grp := r.Fx
	grpp := r.Fxx
	grt := r.Fy
	grtt := r.Fyy
	grpt := r.Fxy

	rt := iapws.R * T
	// π·γπ with γ°π = 1/π folded in.
	pgp := 1 + pi*grp
	v := rt * pgp / p / 1000
	gtt := g0tt + grtt
	x := 1 + pi*grp - tau*pi*grpt
	y := 1 - pi*pi*grpp

	return State{
		Region:    e.region,
		P:         p,
		T:         T,
		V:         v,
		Rho:       1 / v,
		U:         rt * (tau*(g0t+grt) - pgp),
		S:         iapws.R * (tau*(g0t+grt) - (g0 + gr)),
		H:         rt * tau * (g0t + grt),
		Cp:        -iapws.R * tau * tau * gtt,
		Cv:        iapws.R * (-tau*tau*gtt - x*x/y),
		W:         math.Sqrt(1000 * rt * (1 + 2*pi*grp + pi*pi*grp*grp) / (y + x*x/(tau*tau*gtt))),
		Potential: g0 + gr,
	}
}
