package iapws

// IAPWS-IF97 Reference Constants

const (
	// Specific gas constant of water (kJ/kg·K)
	// IAPWS-IF97 Eq. (1)
	R = 0.461526

	// Critical point (IAPWS-IF97 Eqs. (2)-(4))
	Tc   = 647.096 // critical temperature (K)
	Pc   = 22.064  // critical pressure (MPa)
	RhoC = 322.0   // critical density (kg/m³)

	// Triple point
	Tt = 273.16     // triple-point temperature (K)
	Pt = 611.657e-6 // triple-point pressure (MPa)
)

// Range of validity of the industrial formulation (IAPWS-IF97 Section 4)
const (
	TMin = 273.15  // lower temperature limit for regions 1 to 4 (K)
	T13  = 623.15  // boundary between regions 1 and 3 (K)
	T23  = 863.15  // upper end of the B23 boundary curve (K)
	T25  = 1073.15 // boundary between regions 2 and 5 (K)
	TMax = 2273.15 // upper temperature limit of region 5 (K)

	PMax  = 100.0 // upper pressure limit for regions 1 to 3 (MPa)
	P5Max = 50.0  // upper pressure limit of region 5 (MPa)
)

// Reducing constants of the forward equations (IAPWS-IF97 Sections 5 to 8)
const (
	PStar1 = 16.53  // region 1 reducing pressure (MPa)
	TStar1 = 1386.0 // region 1 reducing temperature (K)

	PStar2 = 1.0   // region 2 reducing pressure (MPa)
	TStar2 = 540.0 // region 2 reducing temperature (K)

	PStar5 = 1.0    // region 5 reducing pressure (MPa)
	TStar5 = 1000.0 // region 5 reducing temperature (K)
)

// InEnvelope reports whether (p, T) lies inside the overall range of validity
// of the formulation: 273.15 K ≤ T ≤ 1073.15 K for p ≤ 100 MPa, and
// 1073.15 K < T ≤ 2273.15 K for p ≤ 50 MPa.
func InEnvelope(p, T float64) bool {
	if p <= 0 || T < TMin || T > TMax {
		return false
	}
	if T <= T25 {
		return p <= PMax
	}
	return p <= P5Max
}
