package subregion

import (
	"fmt"
	"math"

	"github.com/alexiusacademia/gosteam/internal/powersum"
)

// Correlation is a backward equation giving specific volume in m³/kg from
// pressure in MPa and temperature in K for one subregion.
type Correlation interface {
	Volume(p, T float64) float64
}

// reduction holds the reducing quantities and shape exponents of one
// backward equation:
//
//	v/v* = [Σ n·((π - a)^c)^I·((θ - b)^d)^J]^e
//
// with π = p/p* and θ = T/T*.
type reduction struct {
	vStar, pStar, tStar float64
	a, b                float64
	c, d, e             float64
}

type powerLaw struct {
	reduction
	table powersum.Table
}

func (pl powerLaw) Volume(p, T float64) float64 {
	s := pl.table.ShapedSum(p/pl.pStar-pl.a, T/pl.tStar-pl.b, pl.c, pl.d)
	if pl.e == 1 {
		return pl.vStar * s
	}
	return pl.vStar * math.Pow(s, pl.e)
}

// exponential is the form used by subregion n:
//
//	v/v* = exp[Σ n·(π - a)^I·(θ - b)^J]
type exponential struct {
	vStar, pStar, tStar float64
	a, b                float64
	table               powersum.Table
}

func (ex exponential) Volume(p, T float64) float64 {
	return ex.vStar * math.Exp(ex.table.Sum(p/ex.pStar-ex.a, T/ex.tStar-ex.b))
}

func shaped(vStar, pStar, tStar, a, b, c, d, e float64, t powersum.Table) powerLaw {
	return powerLaw{reduction{vStar, pStar, tStar, a, b, c, d, e}, t}
}

// correlations maps every label to its backward equation
// (IAPWS SR5-05, Table 4).
var correlations = map[Label]Correlation{
	A: shaped(0.0024, 100, 760, 0.085, 0.817, 1, 1, 1, table3a),
	B: shaped(0.0041, 100, 860, 0.280, 0.779, 1, 1, 1, table3b),
	C: shaped(0.0022, 40, 690, 0.259, 0.903, 1, 1, 1, table3c),
	D: shaped(0.0029, 40, 690, 0.559, 0.939, 1, 1, 4, table3d),
	E: shaped(0.0032, 40, 710, 0.587, 0.918, 1, 1, 1, table3e),
	F: shaped(0.0064, 40, 730, 0.587, 0.891, 0.5, 1, 4, table3f),
	G: shaped(0.0027, 25, 660, 0.872, 0.971, 1, 1, 4, table3g),
	H: shaped(0.0032, 25, 660, 0.898, 0.983, 1, 1, 4, table3h),
	I: shaped(0.0041, 25, 660, 0.910, 0.984, 0.5, 1, 4, table3i),
	J: shaped(0.0054, 25, 670, 0.875, 0.964, 0.5, 1, 4, table3j),
	K: shaped(0.0077, 25, 680, 0.802, 0.935, 1, 1, 1, table3k),
	L: shaped(0.0026, 24, 650, 0.908, 0.989, 1, 1, 4, table3l),
	M: shaped(0.0028, 23, 650, 1.000, 0.997, 1, 0.25, 1, table3m),
	N: exponential{vStar: 0.0031, pStar: 23, tStar: 650, a: 0.976, b: 0.997, table: table3n},
	O: shaped(0.0034, 23, 650, 0.974, 0.996, 0.5, 1, 1, table3o),
	P: shaped(0.0041, 23, 650, 0.972, 0.997, 0.5, 1, 1, table3p),
	Q: shaped(0.0022, 23, 650, 0.848, 0.983, 1, 1, 4, table3q),
	R: shaped(0.0054, 23, 650, 0.874, 0.982, 1, 1, 1, table3r),
	S: shaped(0.0022, 21, 640, 0.886, 0.990, 1, 1, 4, table3s),
	T: shaped(0.0088, 20, 650, 0.803, 1.020, 1, 1, 1, table3t),
	U: shaped(0.0026, 23, 650, 0.902, 0.988, 1, 1, 1, table3u),
	V: shaped(0.0031, 23, 650, 0.960, 0.995, 1, 1, 1, table3v),
	W: shaped(0.0039, 23, 650, 0.959, 0.995, 1, 1, 4, table3w),
	X: shaped(0.0049, 23, 650, 0.910, 0.988, 1, 1, 1, table3x),
	Y: shaped(0.0031, 22, 650, 0.996, 0.994, 1, 1, 4, table3y),
	Z: shaped(0.0038, 22, 650, 0.993, 0.994, 1, 1, 4, table3z),
}

// Lookup returns the backward equation of subregion l.
func Lookup(l Label) (Correlation, error) {
	c, ok := correlations[l]
	if !ok {
		return nil, fmt.Errorf("%w: %v", ErrUnknownLabel, l)
	}
	return c, nil
}

// Volume classifies (p, T) and evaluates the matching backward equation.
// The specific volume is returned together with the classification so the
// caller can see whether the point was near-critical.
func Volume(p, T float64) (float64, Classification, error) {
	cl, err := Classify(p, T)
	if err != nil {
		return 0, cl, err
	}
	c, err := Lookup(cl.Label)
	if err != nil {
		return 0, cl, err
	}
	return c.Volume(p, T), cl, nil
}
