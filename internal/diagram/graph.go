package diagram

import (
	"fmt"
	"math"

	"github.com/guptarohit/asciigraph"

	"github.com/alexiusacademia/gosteam/internal/boundary"
	"github.com/alexiusacademia/gosteam/internal/iapws"
)

// CurveOptions sets the size of a line graph.
type CurveOptions struct {
	TMin, TMax float64 // K
	Points     int
	Height     int
	LogP       bool // plot log10 of the pressure
}

// DefaultSaturationCurve spans the whole saturation line.
func DefaultSaturationCurve() CurveOptions {
	return CurveOptions{TMin: iapws.TMin, TMax: iapws.Tc, Points: 64, Height: 16, LogP: true}
}

// DrawASCIISaturationCurve graphs the saturation pressure against
// temperature.
func DrawASCIISaturationCurve(opts CurveOptions) (string, error) {
	if opts.Points < 2 || opts.Height < 2 {
		return "", fmt.Errorf("diagram: graph needs at least 2 points and 2 rows")
	}
	if opts.TMin < iapws.TMin || opts.TMax > iapws.Tc || opts.TMin >= opts.TMax {
		return "", fmt.Errorf("diagram: saturation line is defined for %g K to %g K", iapws.TMin, iapws.Tc)
	}

	data := make([]float64, opts.Points)
	for i := range data {
		T := opts.TMin + float64(i)*(opts.TMax-opts.TMin)/float64(opts.Points-1)
		data[i] = boundary.SaturationPressure(T)
		if opts.LogP {
			data[i] = math.Log10(data[i])
		}
	}

	caption := fmt.Sprintf("psat (MPa) for T = %.2f K to %.2f K", opts.TMin, opts.TMax)
	if opts.LogP {
		caption = fmt.Sprintf("log10 psat (MPa) for T = %.2f K to %.2f K", opts.TMin, opts.TMax)
	}
	return asciigraph.Plot(data,
		asciigraph.Height(opts.Height),
		asciigraph.Precision(3),
		asciigraph.Caption(caption),
	), nil
}
