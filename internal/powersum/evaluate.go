package powersum

import "math"

// Sum returns Σ n·x^I·y^J without derivatives.
func (t Table) Sum(x, y float64) float64 {
	var f float64
	for _, term := range t {
		f += term.N * pow(x, term.I) * pow(y, term.J)
	}
	return f
}

// Eval returns the power sum Σ n·x^I·y^J and its first and second partial
// derivatives with respect to x and y.
//
// The bases are whatever the caller passes: region 1 hands in (7.1 - π) and
// (τ - 1.222), so the caller applies the chain rule for the sign of ∂/∂π.
// No domain validation is done.
func (t Table) Eval(x, y float64) Derivatives {
	var d Derivatives
	for _, term := range t {
		n := term.N
		xi := pow(x, term.I)
		yj := pow(y, term.J)
		d.F += n * xi * yj

		if term.I != 0 {
			xi1 := float64(term.I) * pow(x, term.I-1)
			d.Fx += n * xi1 * yj
			if term.J != 0 {
				d.Fxy += n * xi1 * float64(term.J) * pow(y, term.J-1)
			}
			if term.I != 1 {
				d.Fxx += n * float64(term.I*(term.I-1)) * pow(x, term.I-2) * yj
			}
		}
		if term.J != 0 {
			d.Fy += n * xi * float64(term.J) * pow(y, term.J-1)
			if term.J != 1 {
				d.Fyy += n * xi * float64(term.J*(term.J-1)) * pow(y, term.J-2)
			}
		}
	}
	return d
}

// EvalLog is Eval with an extra leading term nLog·ln(x) added to the sum.
// Region 3 writes its Helmholtz free energy this way.
func (t Table) EvalLog(nLog, x, y float64) Derivatives {
	d := t.Eval(x, y)
	d.F += nLog * math.Log(x)
	d.Fx += nLog / x
	d.Fxx -= nLog / (x * x)
	return d
}

// ShapedSum returns Σ n·(x^c)^I·(y^d)^J, the inner sum of the backward
// correlations where c and d are subregion shape exponents that may be
// fractional.
func (t Table) ShapedSum(x, y, c, d float64) float64 {
	if c == 1 && d == 1 {
		return t.Sum(x, y)
	}
	var f float64
	for _, term := range t {
		f += term.N * math.Pow(x, c*float64(term.I)) * math.Pow(y, d*float64(term.J))
	}
	return f
}

// pow is x^n for integer n. Exponents in the tables reach ±77, so repeated
// multiplication is replaced by math.Pow beyond a small threshold.
func pow(x float64, n int) float64 {
	switch n {
	case 0:
		return 1
	case 1:
		return x
	case 2:
		return x * x
	case -1:
		return 1 / x
	}
	return math.Pow(x, float64(n))
}
