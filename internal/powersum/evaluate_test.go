package powersum

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

var sample = Table{
	{I: 0, J: 0, N: 1.5},
	{I: 1, J: 2, N: -0.75},
	{I: 3, J: -1, N: 0.2},
	{I: -2, J: 4, N: 0.01},
}

func TestSumMatchesDirectEvaluation(t *testing.T) {
	x, y := 1.3, 0.7
	want := 1.5 - 0.75*x*y*y + 0.2*x*x*x/y + 0.01*math.Pow(y, 4)/(x*x)
	assert.InDelta(t, want, sample.Sum(x, y), 1e-12)
	assert.InDelta(t, want, sample.Eval(x, y).F, 1e-12)
}

func TestEvalDerivativesAgainstFiniteDifferences(t *testing.T) {
	x, y := 1.3, 0.7
	const h = 1e-5
	d := sample.Eval(x, y)

	fx := (sample.Sum(x+h, y) - sample.Sum(x-h, y)) / (2 * h)
	fy := (sample.Sum(x, y+h) - sample.Sum(x, y-h)) / (2 * h)
	fxx := (sample.Sum(x+h, y) - 2*sample.Sum(x, y) + sample.Sum(x-h, y)) / (h * h)
	fyy := (sample.Sum(x, y+h) - 2*sample.Sum(x, y) + sample.Sum(x, y-h)) / (h * h)
	fxy := (sample.Sum(x+h, y+h) - sample.Sum(x+h, y-h) - sample.Sum(x-h, y+h) + sample.Sum(x-h, y-h)) / (4 * h * h)

	assert.InDelta(t, fx, d.Fx, 1e-6)
	assert.InDelta(t, fy, d.Fy, 1e-6)
	assert.InDelta(t, fxx, d.Fxx, 1e-4)
	assert.InDelta(t, fyy, d.Fyy, 1e-4)
	assert.InDelta(t, fxy, d.Fxy, 1e-4)
}

func TestEvalLogAddsLeadingTerm(t *testing.T) {
	x, y := 0.8, 1.1
	plain := sample.Eval(x, y)
	d := sample.EvalLog(2.0, x, y)

	assert.InDelta(t, plain.F+2*math.Log(x), d.F, 1e-12)
	assert.InDelta(t, plain.Fx+2/x, d.Fx, 1e-12)
	assert.InDelta(t, plain.Fxx-2/(x*x), d.Fxx, 1e-12)
	assert.Equal(t, plain.Fy, d.Fy)
	assert.Equal(t, plain.Fxy, d.Fxy)
}

func TestShapedSum(t *testing.T) {
	x, y := 0.25, 0.04
	assert.Equal(t, sample.Sum(x, y), sample.ShapedSum(x, y, 1, 1))

	want := 1.5 - 0.75*math.Sqrt(x)*math.Pow(y, 8) + 0.2*math.Pow(x, 1.5)/math.Pow(y, 4) + 0.01*math.Pow(y, 16)/x
	assert.InEpsilon(t, want, sample.ShapedSum(x, y, 0.5, 4), 1e-12)
}

func TestLargeExponents(t *testing.T) {
	tab := Table{{I: 0, J: -41, N: 1}, {I: 32, J: 0, N: 1}}
	got := tab.Sum(1.01, 0.99)
	want := math.Pow(0.99, -41) + math.Pow(1.01, 32)
	assert.InEpsilon(t, want, got, 1e-14)
	assert.False(t, math.IsNaN(tab.Eval(1.01, 0.99).Fyy))
}

func TestEmptyTable(t *testing.T) {
	var tab Table
	assert.Equal(t, Derivatives{}, tab.Eval(2, 3))
	assert.Zero(t, tab.Sum(2, 3))
}
