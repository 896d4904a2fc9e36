package diagram

import (
	"fmt"
	"image/color"
	"math"
	"os"
	"path/filepath"
	"sort"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/alexiusacademia/gosteam/internal/boundary"
	"github.com/alexiusacademia/gosteam/internal/iapws"
	"github.com/alexiusacademia/gosteam/internal/steam"
	"github.com/alexiusacademia/gosteam/internal/subregion"
)

var (
	saturationColor = color.RGBA{R: 0, G: 0, B: 139, A: 255}
	boundaryColor   = color.Black
	markColor       = color.RGBA{R: 255, G: 0, B: 0, A: 255}
)

// sample evaluates xy at n evenly spaced points of [lo, hi] and returns the
// resulting points.
func sample(lo, hi float64, n int, xy func(t float64) plotter.XY) plotter.XYs {
	pts := make(plotter.XYs, n)
	for i := range pts {
		pts[i] = xy(lo + float64(i)*(hi-lo)/float64(n-1))
	}
	return pts
}

func addLine(p *plot.Plot, pts plotter.XYs, c color.Color, width vg.Length, dashed bool) error {
	l, err := plotter.NewLine(pts)
	if err != nil {
		return err
	}
	l.LineStyle.Width = width
	l.LineStyle.Color = c
	if dashed {
		l.LineStyle.Dashes = []vg.Length{vg.Points(5), vg.Points(3)}
	}
	p.Add(l)
	return nil
}

func addLabels(p *plot.Plot, pts plotter.XYs, text []string) error {
	l, err := plotter.NewLabels(plotter.XYLabels{XYs: pts, Labels: text})
	if err != nil {
		return err
	}
	p.Add(l)
	return nil
}

func addMarks(p *plot.Plot, marks []Mark) error {
	if len(marks) == 0 {
		return nil
	}
	pts := make(plotter.XYs, len(marks))
	for i, m := range marks {
		pts[i] = plotter.XY{X: m.T, Y: m.P}
	}
	s, err := plotter.NewScatter(pts)
	if err != nil {
		return err
	}
	s.GlyphStyle.Color = markColor
	s.GlyphStyle.Radius = vg.Points(4)
	s.GlyphStyle.Shape = draw.CircleGlyph{}
	p.Add(s)
	return nil
}

// ExportPhaseDiagram exports the p-T diagram of the IAPWS-IF97 regions to an
// image file. The format follows the extension (.png, .svg, .pdf); other
// names get ".png" appended. Marks are drawn as red dots.
func ExportPhaseDiagram(filename string, marks ...Mark) error {
	p := plot.New()
	p.Title.Text = "IAPWS-IF97 Regions"
	p.X.Label.Text = "Temperature (K)"
	p.Y.Label.Text = "Pressure (MPa)"
	p.X.Min, p.X.Max = iapws.TMin, iapws.TMax
	p.Y.Min, p.Y.Max = 0, iapws.PMax

	// Saturation line (region 4) up to the critical point
	sat := sample(iapws.TMin, iapws.Tc, 200, func(T float64) plotter.XY {
		return plotter.XY{X: T, Y: boundary.SaturationPressure(T)}
	})
	if err := addLine(p, sat, saturationColor, vg.Points(2), false); err != nil {
		return err
	}

	// B23 between regions 2 and 3
	b23 := sample(iapws.T13, iapws.T23, 100, func(T float64) plotter.XY {
		return plotter.XY{X: T, Y: boundary.B23Pressure(T)}
	})
	if err := addLine(p, b23, boundaryColor, vg.Points(1.5), false); err != nil {
		return err
	}

	edges := []plotter.XYs{
		{{X: iapws.T13, Y: boundary.PSat623}, {X: iapws.T13, Y: iapws.PMax}},
		{{X: iapws.TMin, Y: iapws.PMax}, {X: iapws.T25, Y: iapws.PMax}},
		{{X: iapws.T25, Y: 0}, {X: iapws.T25, Y: iapws.PMax}},
		{{X: iapws.T25, Y: iapws.P5Max}, {X: iapws.TMax, Y: iapws.P5Max}},
	}
	for _, e := range edges {
		if err := addLine(p, e, boundaryColor, vg.Points(1), true); err != nil {
			return err
		}
	}

	err := addLabels(p, plotter.XYs{
		{X: 400, Y: 60},
		{X: 900, Y: 20},
		{X: 700, Y: 80},
		{X: 1600, Y: 25},
		{X: iapws.Tc, Y: iapws.Pc},
	}, []string{"1", "2", "3", "5", "C.P."})
	if err != nil {
		return err
	}
	if err := addMarks(p, marks); err != nil {
		return err
	}
	return save(p, filename, 8*vg.Inch, 6*vg.Inch)
}

// ExportSubregionDiagram exports the boundaries of the region 3 subregions
// with each subregion's letter placed at the centre of its area.
func ExportSubregionDiagram(filename string, marks ...Mark) error {
	opts := DefaultSubregionMap()

	p := plot.New()
	p.Title.Text = "Region 3 Subregions"
	p.X.Label.Text = "Temperature (K)"
	p.Y.Label.Text = "Pressure (MPa)"
	p.X.Min, p.X.Max = opts.TMin, opts.TMax
	p.Y.Min, p.Y.Max = opts.PMin, opts.PMax

	for _, c := range boundary.Curves {
		hi := math.Min(c.Max, opts.PMax)
		pts := sample(c.Min, hi, 100, func(pr float64) plotter.XY {
			return plotter.XY{X: c.At(pr), Y: pr}
		})
		if err := addLine(p, pts, boundaryColor, vg.Points(1), false); err != nil {
			return fmt.Errorf("curve %s: %w", c.Name, err)
		}
	}

	sat := sample(iapws.T13, iapws.Tc, 100, func(T float64) plotter.XY {
		return plotter.XY{X: T, Y: boundary.SaturationPressure(T)}
	})
	if err := addLine(p, sat, saturationColor, vg.Points(2), false); err != nil {
		return err
	}
	b23 := sample(iapws.T13, opts.TMax, 100, func(T float64) plotter.XY {
		return plotter.XY{X: T, Y: boundary.B23Pressure(T)}
	})
	if err := addLine(p, b23, boundaryColor, vg.Points(1.5), true); err != nil {
		return err
	}

	pts, text, err := subregionCentres(opts, 200)
	if err != nil {
		return err
	}
	if err := addLabels(p, pts, text); err != nil {
		return err
	}
	if err := addMarks(p, marks); err != nil {
		return err
	}
	return save(p, filename, 8*vg.Inch, 8*vg.Inch)
}

// subregionCentres returns the mean (T, p) of the grid points classified
// into each subregion, sorted by label.
func subregionCentres(opts MapOptions, n int) (plotter.XYs, []string, error) {
	type acc struct {
		t, p  float64
		count int
	}
	sums := map[subregion.Label]*acc{}
	for i := 0; i < n; i++ {
		pr := opts.PMin + (float64(i)+0.5)*(opts.PMax-opts.PMin)/float64(n)
		for j := 0; j < n; j++ {
			T := opts.TMin + (float64(j)+0.5)*(opts.TMax-opts.TMin)/float64(n)
			if steam.Locate(pr, T) != steam.Region3 {
				continue
			}
			cl, err := subregion.Classify(pr, T)
			if err != nil {
				return nil, nil, err
			}
			a := sums[cl.Label]
			if a == nil {
				a = &acc{}
				sums[cl.Label] = a
			}
			a.t += T
			a.p += pr
			a.count++
		}
	}

	labels := make([]subregion.Label, 0, len(sums))
	for l := range sums {
		labels = append(labels, l)
	}
	sort.Slice(labels, func(i, j int) bool { return labels[i] < labels[j] })

	pts := make(plotter.XYs, 0, len(labels))
	text := make([]string, 0, len(labels))
	for _, l := range labels {
		a := sums[l]
		pts = append(pts, plotter.XY{X: a.t / float64(a.count), Y: a.p / float64(a.count)})
		text = append(text, l.String())
	}
	return pts, text, nil
}

// save writes the plot, choosing the format from the file extension.
func save(p *plot.Plot, filename string, width, height vg.Length) error {
	dir := filepath.Dir(filename)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return err
		}
	}

	switch filepath.Ext(filename) {
	case ".png", ".svg", ".pdf":
		return p.Save(width, height, filename)
	default:
		return p.Save(width, height, filename+".png")
	}
}
