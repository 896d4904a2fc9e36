package verify

import (
	"fmt"
	"math"
	"strings"

	"gonum.org/v1/gonum/floats/scalar"

	"github.com/alexiusacademia/gosteam/internal/boundary"
	"github.com/alexiusacademia/gosteam/internal/forward"
	"github.com/alexiusacademia/gosteam/internal/steam"
	"github.com/alexiusacademia/gosteam/internal/subregion"
)

// function evaluates one kind of case.
type function struct {
	arity      int
	properties bool // the result is a State and Case.Property picks the field
	eval       func(args []float64, property string) (float64, error)
}

func stateFunc(f func(a, b float64) forward.State) function {
	return function{arity: 2, properties: true, eval: func(args []float64, prop string) (float64, error) {
		return field(f(args[0], args[1]), prop)
	}}
}

func scalarFunc(f func(float64) float64) function {
	return function{arity: 1, eval: func(args []float64, _ string) (float64, error) {
		return f(args[0]), nil
	}}
}

func curveFunc(c boundary.Curve) function {
	return scalarFunc(c.At)
}

var functions = map[string]function{
	"region1": stateFunc(forward.Region1),
	"region2": stateFunc(forward.Region2),
	"region3": stateFunc(forward.Region3),
	"region5": stateFunc(forward.Region5),
	"t1ph":    {arity: 2, eval: func(a []float64, _ string) (float64, error) { return forward.Region1TemperaturePH(a[0], a[1]), nil }},
	"psat":    scalarFunc(boundary.SaturationPressure),
	"tsat":    scalarFunc(boundary.SaturationTemperature),
	"b23p":    scalarFunc(boundary.B23Pressure),
	"b23t":    scalarFunc(boundary.B23Temperature),
	"v3":      {arity: 2, eval: backwardVolume},
	"props":   {arity: 2, properties: true, eval: properties},
	"tph":     {arity: 2, eval: func(a []float64, _ string) (float64, error) { return steam.TemperaturePH(a[0], a[1]) }},
	"tps":     {arity: 2, eval: func(a []float64, _ string) (float64, error) { return steam.TemperaturePS(a[0], a[1]) }},
	"t3ab":    curveFunc(boundary.AB),
	"t3cd":    curveFunc(boundary.CD),
	"t3ef":    curveFunc(boundary.EF),
	"t3gh":    curveFunc(boundary.GH),
	"t3ij":    curveFunc(boundary.IJ),
	"t3jk":    curveFunc(boundary.JK),
	"t3mn":    curveFunc(boundary.MN),
	"t3op":    curveFunc(boundary.OP),
	"t3qu":    curveFunc(boundary.QU),
	"t3rx":    curveFunc(boundary.RX),
	"t3uv":    curveFunc(boundary.UV),
	"t3wx":    curveFunc(boundary.WX),
}

func backwardVolume(args []float64, _ string) (float64, error) {
	v, _, err := subregion.Volume(args[0], args[1])
	return v, err
}

func properties(args []float64, prop string) (float64, error) {
	pt, err := steam.Properties(args[0], args[1])
	if err != nil {
		return math.NaN(), err
	}
	return field(pt.State, prop)
}

func field(s forward.State, prop string) (float64, error) {
	switch strings.ToLower(prop) {
	case "p":
		return s.P, nil
	case "t":
		return s.T, nil
	case "v":
		return s.V, nil
	case "rho":
		return s.Rho, nil
	case "u":
		return s.U, nil
	case "s":
		return s.S, nil
	case "h":
		return s.H, nil
	case "cp":
		return s.Cp, nil
	case "cv":
		return s.Cv, nil
	case "w":
		return s.W, nil
	}
	return math.NaN(), fmt.Errorf("unknown property %q", prop)
}

// Outcome is the result of one case.
type Outcome struct {
	Case
	Got    float64
	RelErr float64
	Pass   bool
	Err    error
}

// Report collects the outcomes of a run.
type Report struct {
	Outcomes []Outcome
	Passed   int
	Failed   int
}

// OK reports whether every case passed.
func (r Report) OK() bool { return r.Failed == 0 }

// Run evaluates every case.
func Run(cases []Case) Report {
	var r Report
	for _, c := range cases {
		o := evaluate(c)
		if o.Pass {
			r.Passed++
		} else {
			r.Failed++
		}
		r.Outcomes = append(r.Outcomes, o)
	}
	return r
}

func evaluate(c Case) Outcome {
	o := Outcome{Case: c, Got: math.NaN(), RelErr: math.NaN()}
	if err := c.validate(); err != nil {
		o.Err = err
		return o
	}
	got, err := functions[c.Func].eval(c.Args, c.Property)
	if err != nil {
		o.Err = err
		return o
	}
	o.Got = got
	o.RelErr = math.Abs(got-c.Want) / math.Abs(c.Want)
	o.Pass = scalar.EqualWithinRel(got, c.Want, c.Tolerance)
	return o
}
