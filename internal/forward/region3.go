package forward

import (
	"math"

	"github.com/alexiusacademia/gosteam/internal/iapws"
)

// Region3 evaluates the Helmholtz free energy equation of region 3 at
// density rho in kg/m³ and temperature T in K. Pressure is an output here;
// finding the density for a given pressure needs an iteration on
// Region3Pressure.
//
// Valid for 623.15 K ≤ T ≤ 863.15 K and pB23(T) ≤ p ≤ 100 MPa.
func Region3(rho, T float64) State {
	delta := rho / iapws.RhoC
	tau := iapws.Tc / T

	d := region3.EvalLog(region3Log, delta, tau)
	phi := d.F
	fd := d.Fx
	fdd := d.Fxx
	ft := d.Fy
	ftt := d.Fyy
	fdt := d.Fxy

	rt := iapws.R * T
	x := delta*fd - delta*tau*fdt
	y := 2*delta*fd + delta*delta*fdd

	return State{
		Region:    3,
		P:         rho * rt * delta * fd / 1000,
		T:         T,
		V:         1 / rho,
		Rho:       rho,
		U:         rt * tau * ft,
		S:         iapws.R * (tau*ft - phi),
		H:         rt * (tau*ft + delta*fd),
		Cp:        iapws.R * (-tau*tau*ftt + x*x/y),
		Cv:        -iapws.R * tau * tau * ftt,
		W:         math.Sqrt(1000 * rt * (y - x*x/(tau*tau*ftt))),
		Potential: phi,
	}
}

// Region3Pressure returns only the pressure in MPa of region 3 at density
// rho and temperature T. It is the function inverted when region 3 is
// queried by pressure.
func Region3Pressure(rho, T float64) float64 {
	delta := rho / iapws.RhoC
	d := region3.EvalLog(region3Log, delta, iapws.Tc/T)
	return rho * iapws.R * T * delta * d.Fx / 1000
}
