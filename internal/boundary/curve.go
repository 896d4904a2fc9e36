package boundary

import "math"

// Curve is an auxiliary boundary T(p) of region 3 with its declared range of
// validity in pressure. Evaluation outside [Min, Max] returns a number of
// unspecified accuracy; callers check InRange when it matters.
type Curve struct {
	Name string
	Min  float64 // lowest pressure of the valid range (MPa)
	Max  float64 // highest pressure of the valid range (MPa)
	eval func(p float64) float64
}

// At returns the boundary temperature in K at pressure p in MPa.
func (c Curve) At(p float64) float64 {
	return c.eval(p)
}

// InRange reports whether p lies inside the curve's declared range.
func (c Curve) InRange(p float64) bool {
	return p >= c.Min && p <= c.Max
}

// polynomial returns T = Σ n_i·p^i.
func polynomial(n ...float64) func(float64) float64 {
	return func(p float64) float64 {
		var t float64
		for i := len(n) - 1; i >= 0; i-- {
			t = t*p + n[i]
		}
		return t
	}
}

// logExponents are the exponents of ln p in the ab, op and wx curves.
var logExponents = [...]float64{0, 1, 2, -1, -2}

// logPolynomial returns T = Σ n_i·(ln p)^I_i with I = 0, 1, 2, -1, -2.
func logPolynomial(n ...float64) func(float64) float64 {
	return func(p float64) float64 {
		l := math.Log(p)
		var t float64
		for i, c := range n {
			t += c * math.Pow(l, logExponents[i])
		}
		return t
	}
}

// Boundaries between the subregions of region 3
// (IAPWS SR5-05, Eqs. (2) to (4) and Table 3).
var (
	AB = Curve{Name: "ab", Min: 25, Max: 100, eval: logPolynomial(
		0.154793642129415e4, -0.187661219490113e3, 0.213144632222113e2, -0.191887498864292e4, 0.918419702359447e3)}
	CD = Curve{Name: "cd", Min: P3cd, Max: 40, eval: polynomial(
		0.585276966696349e3, 0.278233532206915e1, -0.127283549295878e-1, 0.159090746562729e-3)}
	EF = Curve{Name: "ef", Min: 22.064, Max: 40, eval: func(p float64) float64 {
		return 3.727888004*(p-22.064) + 647.096
	}}
	GH = Curve{Name: "gh", Min: 22.5, Max: 25, eval: polynomial(
		-0.249284240900418e5, 0.428143584791546e4, -0.269029173140130e3, 0.751608051114157e1, -0.787105249910383e-1)}
	IJ = Curve{Name: "ij", Min: 22.5, Max: 25, eval: polynomial(
		0.584814781649163e3, -0.616179320924617, 0.260763050899562, -0.587071076864459e-2, 0.515308185433082e-4)}
	JK = Curve{Name: "jk", Min: 20.5, Max: 25, eval: polynomial(
		0.617229772068439e3, -0.770600270141675e1, 0.697072596851896, -0.157391839848015e-1, 0.137897492684194e-3)}
	MN = Curve{Name: "mn", Min: 22.5, Max: 23, eval: polynomial(
		0.535339483742384e3, 0.761978122720128e1, -0.158365725441648, 0.192871054508108e-2)}
	OP = Curve{Name: "op", Min: 22.5, Max: 23, eval: logPolynomial(
		0.969461372400213e3, -0.332500170441278e3, 0.642859598466067e2, 0.773845935768222e3, -0.152313732937084e4)}
	QU = Curve{Name: "qu", Min: PSat643, Max: 22.5, eval: polynomial(
		0.565603648239126e3, 0.529062258221222e1, -0.102020639611016, 0.122240301070145e-2)}
	RX = Curve{Name: "rx", Min: PSat643, Max: 22.5, eval: polynomial(
		0.584561202520006e3, -0.102961025163669e1, 0.243293362700452, -0.294905044740799e-2)}
	UV = Curve{Name: "uv", Min: 21.93161551, Max: 22.5, eval: polynomial(
		0.528199646263062e3, 0.890579602135307e1, -0.222814134903755, 0.286791682263697e-2)}
	WX = Curve{Name: "wx", Min: 21.90096265, Max: 22.5, eval: logPolynomial(
		0.728052609145380e1, 0.973505869861952e2, 0.147370491183191e2, 0.329196213998375e3, 0.873371668682417e3)}
)

// Curves lists every subregion boundary in alphabetical order.
var Curves = []Curve{AB, CD, EF, GH, IJ, JK, MN, OP, QU, RX, UV, WX}

// Characteristic pressures of the region 3 partition (MPa).
const (
	// P3cd is the pressure where the cd curve meets the saturation line.
	P3cd = 19.00881189173929
	// PSat623 is the saturation pressure at 623.15 K, the lowest pressure of region 3.
	PSat623 = 16.529164252604478
	// PSat643 is the saturation pressure at 643.15 K.
	PSat643 = 21.043367318975353
	// PUV is the lower end of the uv curve on the saturated liquid side.
	PUV = 21.93161551
	// PWX is the lower end of the wx curve on the saturated vapour side.
	PWX = 21.90096265
)
