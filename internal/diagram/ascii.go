package diagram

import (
	"fmt"
	"math"
	"strings"
	"unicode/utf8"

	"github.com/alexiusacademia/gosteam/internal/boundary"
	"github.com/alexiusacademia/gosteam/internal/iapws"
	"github.com/alexiusacademia/gosteam/internal/steam"
	"github.com/alexiusacademia/gosteam/internal/subregion"
)

// Mark is a state point highlighted on a diagram.
type Mark struct {
	P float64 // MPa
	T float64 // K
}

// MapOptions sets the window and resolution of an ASCII map.
type MapOptions struct {
	PMin, PMax float64 // MPa
	TMin, TMax float64 // K
	Rows, Cols int
	LogP       bool // logarithmic pressure axis

	Mark *Mark
}

// DefaultRegionMap covers the whole range of validity.
func DefaultRegionMap() MapOptions {
	return MapOptions{
		PMin: 1e-3, PMax: iapws.PMax,
		TMin: iapws.TMin, TMax: iapws.TMax,
		Rows: 24, Cols: 64,
		LogP: true,
	}
}

// DefaultSubregionMap covers region 3 up to 40 MPa.
func DefaultSubregionMap() MapOptions {
	return MapOptions{
		PMin: boundary.PSat623, PMax: 40,
		TMin: iapws.T13, TMax: 760,
		Rows: 32, Cols: 72,
	}
}

// pressure returns the pressure of a row. The first and last rows are
// pinned to the window edges so rounding cannot push them outside.
func (o MapOptions) pressure(row int) float64 {
	switch row {
	case 0:
		return o.PMax
	case o.Rows - 1:
		return o.PMin
	}
	f := float64(o.Rows-1-row) / float64(o.Rows-1)
	if o.LogP {
		return math.Exp(math.Log(o.PMin) + f*(math.Log(o.PMax)-math.Log(o.PMin)))
	}
	return o.PMin + f*(o.PMax-o.PMin)
}

func (o MapOptions) temperature(col int) float64 {
	if col == o.Cols-1 {
		return o.TMax
	}
	return o.TMin + float64(col)*(o.TMax-o.TMin)/float64(o.Cols-1)
}

// cell returns the row and column closest to (p, T), and false when the
// point is outside the window.
func (o MapOptions) cell(p, T float64) (int, int, bool) {
	if p < o.PMin || p > o.PMax || T < o.TMin || T > o.TMax {
		return 0, 0, false
	}
	var f float64
	if o.LogP {
		f = (math.Log(p) - math.Log(o.PMin)) / (math.Log(o.PMax) - math.Log(o.PMin))
	} else {
		f = (p - o.PMin) / (o.PMax - o.PMin)
	}
	row := o.Rows - 1 - int(math.Round(f*float64(o.Rows-1)))
	col := int(math.Round((T - o.TMin) / (o.TMax - o.TMin) * float64(o.Cols-1)))
	return row, col, true
}

func (o MapOptions) validate() error {
	if o.Rows < 2 || o.Cols < 2 {
		return fmt.Errorf("diagram: map needs at least 2 rows and 2 columns")
	}
	if o.PMin >= o.PMax || o.TMin >= o.TMax {
		return fmt.Errorf("diagram: empty window p=[%g, %g] T=[%g, %g]", o.PMin, o.PMax, o.TMin, o.TMax)
	}
	if o.LogP && o.PMin <= 0 {
		return fmt.Errorf("diagram: logarithmic axis needs PMin > 0")
	}
	return nil
}

// regionChar is the symbol of each region on the map.
var regionChar = map[steam.Region]byte{
	steam.OutOfRange: ' ',
	steam.Region1:    '1',
	steam.Region2:    '2',
	steam.Region3:    '3',
	steam.Region4:    '*',
	steam.Region5:    '5',
}

const markChar = '@'

// DrawASCIIRegionMap draws the regions of IAPWS-IF97 over the p-T window of
// opts. Pressure runs upward and temperature to the right; '*' marks the
// first vapour cell after the saturation line in each row.
func DrawASCIIRegionMap(opts MapOptions) (string, error) {
	if err := opts.validate(); err != nil {
		return "", err
	}
	grid := make([][]byte, opts.Rows)
	for i := range grid {
		p := opts.pressure(i)
		row := make([]byte, opts.Cols)
		prev := steam.OutOfRange
		for j := range row {
			r := steam.Locate(p, opts.temperature(j))
			row[j] = regionChar[r]
			if prev == steam.Region1 && r == steam.Region2 {
				row[j] = regionChar[steam.Region4]
			}
			prev = r
		}
		grid[i] = row
	}
	return frame("IAPWS-IF97 REGIONS", grid, opts, []string{
		"1 = compressed liquid     2 = superheated vapour",
		"3 = near-critical         5 = high-temperature vapour",
		"* = saturation line (region 4)",
	}), nil
}

// DrawASCIISubregionMap draws the subregion letters of region 3 over the
// window of opts. Points outside region 3 are left blank; the near-critical
// subregions are upper-case.
func DrawASCIISubregionMap(opts MapOptions) (string, error) {
	if err := opts.validate(); err != nil {
		return "", err
	}
	grid := make([][]byte, opts.Rows)
	for i := range grid {
		p := opts.pressure(i)
		row := make([]byte, opts.Cols)
		for j := range row {
			T := opts.temperature(j)
			row[j] = ' '
			if steam.Locate(p, T) != steam.Region3 {
				continue
			}
			cl, err := subregion.Classify(p, T)
			if err != nil {
				return "", err
			}
			c := cl.Label.String()[0]
			if cl.NearCritical {
				c -= 'a' - 'A'
			}
			row[j] = c
		}
		grid[i] = row
	}
	return frame("REGION 3 SUBREGIONS", grid, opts, []string{
		"a-t = subregion letters",
		"U-Z = near-critical subregions (backward equations seed iteration only)",
	}), nil
}

// frame wraps a character grid in a box with axis labels and a legend.
func frame(title string, grid [][]byte, opts MapOptions, legend []string) string {
	var sb strings.Builder

	if opts.Mark != nil {
		if i, j, ok := opts.cell(opts.Mark.P, opts.Mark.T); ok {
			grid[i][j] = markChar
		}
	}

	sb.WriteString("\n")
	sb.WriteString(fmt.Sprintf("  %s\n", title))
	sb.WriteString(fmt.Sprintf("  %s\n\n", strings.Repeat("─", utf8.RuneCountInString(title))))
	sb.WriteString(fmt.Sprintf("  %9s ┌%s┐\n", "p (MPa)", strings.Repeat("─", opts.Cols)))

	for i, row := range grid {
		label := ""
		if i%4 == 0 || i == len(grid)-1 {
			label = fmt.Sprintf("%.4g", opts.pressure(i))
		}
		sb.WriteString(fmt.Sprintf("  %9s │%s│\n", label, row))
	}
	sb.WriteString(fmt.Sprintf("  %9s └%s┘\n", "", strings.Repeat("─", opts.Cols)))

	lo := fmt.Sprintf("%.2f", opts.TMin)
	hi := fmt.Sprintf("%.2f", opts.TMax)
	gap := max(opts.Cols-len(lo)-len(hi)+2, 1)
	sb.WriteString(fmt.Sprintf("  %9s %s%s%s\n", "T (K)", lo, strings.Repeat(" ", gap), hi))

	sb.WriteString("\n  Legend:\n")
	for _, l := range legend {
		sb.WriteString(fmt.Sprintf("  %s\n", l))
	}
	if opts.Mark != nil {
		sb.WriteString(fmt.Sprintf("  %c = state point p=%g MPa, T=%g K\n", markChar, opts.Mark.P, opts.Mark.T))
	}
	return sb.String()
}

// DrawSummaryBox creates a summary box for results
func DrawSummaryBox(title string, lines []string) string {
	var sb strings.Builder

	maxLen := utf8.RuneCountInString(title)
	for _, line := range lines {
		maxLen = max(maxLen, utf8.RuneCountInString(line))
	}
	maxLen += 4

	border := strings.Repeat("═", maxLen)
	sb.WriteString(fmt.Sprintf("  ╔%s╗\n", border))
	sb.WriteString(fmt.Sprintf("  ║  %s  ║\n", pad(title, maxLen-4)))
	sb.WriteString(fmt.Sprintf("  ╠%s╣\n", border))
	for _, line := range lines {
		sb.WriteString(fmt.Sprintf("  ║  %s  ║\n", pad(line, maxLen-4)))
	}
	sb.WriteString(fmt.Sprintf("  ╚%s╝\n", border))

	return sb.String()
}

// pad right-pads s with spaces to n runes.
func pad(s string, n int) string {
	return s + strings.Repeat(" ", max(n-utf8.RuneCountInString(s), 0))
}
