package boundary

import "math"

// Coefficients of the saturation-pressure equation (IAPWS-IF97 Table 34).
var sat = [10]float64{
	0.11670521452767e4, -0.72421316703206e6, -0.17073846940092e2, 0.12020824702470e5,
	-0.32325550322333e7, 0.14915108613530e2, -0.48232657361591e4, 0.40511340542057e6,
	-0.23855557567849, 0.65017534844798e3,
}

// SaturationPressure returns the saturation pressure in MPa at temperature T
// in K (IAPWS-IF97 Eq. (30)). Valid for 273.15 K ≤ T ≤ 647.096 K.
func SaturationPressure(T float64) float64 {
	theta := T + sat[8]/(T-sat[9])
	a := theta*theta + sat[0]*theta + sat[1]
	b := sat[2]*theta*theta + sat[3]*theta + sat[4]
	c := sat[5]*theta*theta + sat[6]*theta + sat[7]
	x := 2 * c / (-b + math.Sqrt(b*b-4*a*c))
	return x * x * x * x
}

// SaturationTemperature returns the saturation temperature in K at pressure
// p in MPa (IAPWS-IF97 Eq. (31)). Valid for 611.213 Pa ≤ p ≤ 22.064 MPa.
func SaturationTemperature(p float64) float64 {
	beta := math.Pow(p, 0.25)
	e := beta*beta + sat[2]*beta + sat[5]
	f := sat[0]*beta*beta + sat[3]*beta + sat[6]
	g := sat[1]*beta*beta + sat[4]*beta + sat[7]
	d := 2 * g / (-f - math.Sqrt(f*f-4*e*g))
	return (sat[9] + d - math.Sqrt((sat[9]+d)*(sat[9]+d)-4*(sat[8]+sat[9]*d))) / 2
}

// Coefficients of the B23 equation (IAPWS-IF97 Table 1).
var b23 = [5]float64{
	0.34805185628969e3, -0.11671859879975e1, 0.10192970039326e-2,
	0.57254459862746e3, 0.13918839778870e2,
}

// B23Pressure returns the pressure in MPa on the boundary between regions 2
// and 3 at temperature T in K (IAPWS-IF97 Eq. (5)). Valid for
// 623.15 K ≤ T ≤ 863.15 K.
func B23Pressure(T float64) float64 {
	return b23[0] + b23[1]*T + b23[2]*T*T
}

// B23Temperature is the inverse of B23Pressure (IAPWS-IF97 Eq. (6)).
func B23Temperature(p float64) float64 {
	return b23[3] + math.Sqrt((p-b23[4])/b23[2])
}
