package diagram

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegionMapShowsEveryRegion(t *testing.T) {
	s, err := DrawASCIIRegionMap(DefaultRegionMap())
	require.NoError(t, err)
	for _, c := range []string{"1", "2", "3", "5", "*"} {
		assert.Contains(t, s, c)
	}
	assert.Contains(t, s, "IAPWS-IF97 REGIONS")
}

func TestRegionMapRows(t *testing.T) {
	opts := DefaultRegionMap()
	s, err := DrawASCIIRegionMap(opts)
	require.NoError(t, err)

	rows := 0
	for _, line := range strings.Split(s, "\n") {
		if strings.Contains(line, "│") {
			rows++
			assert.Equal(t, opts.Cols+2, utf8.RuneCountInString(line[strings.Index(line, "│"):]))
		}
	}
	assert.Equal(t, opts.Rows, rows)
}

func TestMarkIsDrawn(t *testing.T) {
	opts := DefaultRegionMap()
	opts.Mark = &Mark{P: 3, T: 300}
	s, err := DrawASCIIRegionMap(opts)
	require.NoError(t, err)
	assert.Equal(t, 2, strings.Count(s, "@"), "map cell and legend")

	opts.Mark = &Mark{P: 1000, T: 300}
	s, err = DrawASCIIRegionMap(opts)
	require.NoError(t, err)
	assert.Equal(t, 1, strings.Count(s, "@"), "legend only when outside the window")
}

// gridText returns the cells of a drawn map without frame or legend.
func gridText(s string) string {
	var sb strings.Builder
	for _, line := range strings.Split(s, "\n") {
		if i := strings.Index(line, "│"); i >= 0 {
			sb.WriteString(strings.Trim(line[i:], "│"))
		}
	}
	return sb.String()
}

func TestSubregionMapLetters(t *testing.T) {
	s, err := DrawASCIISubregionMap(DefaultSubregionMap())
	require.NoError(t, err)
	assert.Contains(t, s, "REGION 3 SUBREGIONS")

	grid := gridText(s)
	for _, c := range []string{"c", "d", "e", "f", "g", "h", "j", "k", "r", "s", "t", "X"} {
		assert.Contains(t, grid, c)
	}
	// a and b lie above 40 MPa; x is near-critical and drawn upper-case
	assert.NotContains(t, grid, "a")
	assert.NotContains(t, grid, "x")
	assert.NotContains(t, grid, "1")
}

func TestMapOptionsValidation(t *testing.T) {
	_, err := DrawASCIIRegionMap(MapOptions{PMin: 1, PMax: 10, TMin: 300, TMax: 400, Rows: 1, Cols: 10})
	assert.Error(t, err)

	_, err = DrawASCIIRegionMap(MapOptions{PMin: 10, PMax: 1, TMin: 300, TMax: 400, Rows: 10, Cols: 10})
	assert.Error(t, err)

	_, err = DrawASCIISubregionMap(MapOptions{PMin: 0, PMax: 10, TMin: 300, TMax: 400, Rows: 10, Cols: 10, LogP: true})
	assert.Error(t, err)
}

func TestMapCellRoundTrip(t *testing.T) {
	for _, opts := range []MapOptions{DefaultRegionMap(), DefaultSubregionMap()} {
		for _, rc := range [][2]int{{0, 0}, {5, 7}, {opts.Rows - 1, opts.Cols - 1}} {
			i, j, ok := opts.cell(opts.pressure(rc[0]), opts.temperature(rc[1]))
			require.True(t, ok)
			assert.Equal(t, rc[0], i)
			assert.Equal(t, rc[1], j)
		}
	}
}

func TestMapEdgesStayInWindow(t *testing.T) {
	for _, opts := range []MapOptions{DefaultRegionMap(), DefaultSubregionMap()} {
		assert.Equal(t, opts.PMax, opts.pressure(0))
		assert.Equal(t, opts.PMin, opts.pressure(opts.Rows-1))
		assert.Equal(t, opts.TMin, opts.temperature(0))
		assert.Equal(t, opts.TMax, opts.temperature(opts.Cols-1))
		for i := 0; i < opts.Rows; i++ {
			p := opts.pressure(i)
			assert.True(t, p >= opts.PMin && p <= opts.PMax, "row %d: p=%v", i, p)
		}
	}
}

func TestRegionMapTopRowDrawn(t *testing.T) {
	s, err := DrawASCIIRegionMap(DefaultRegionMap())
	require.NoError(t, err)

	var top string
	for _, line := range strings.Split(s, "\n") {
		if i := strings.Index(line, "│"); i >= 0 {
			top = line[i:]
			break
		}
	}
	require.NotEmpty(t, top)
	// 100 MPa is inside the range of validity up to 1073.15 K.
	assert.Contains(t, top, "1")
	assert.Contains(t, top, "3")
	assert.Contains(t, top, "2")
}

func TestDrawSummaryBoxAligned(t *testing.T) {
	s := DrawSummaryBox("TEMPERATURE", []string{"p = 3 MPa, h = 115.331273 kJ/kg", "T = 300 K", "ρ = 997 kg/m³"})
	lines := strings.Split(strings.TrimRight(s, "\n"), "\n")
	require.Len(t, lines, 7)

	width := utf8.RuneCountInString(lines[0])
	for _, l := range lines {
		assert.Equal(t, width, utf8.RuneCountInString(l), l)
	}
	assert.Contains(t, lines[1], "TEMPERATURE")
}

func TestExportPhaseDiagram(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "out", "regions.png")
	require.NoError(t, ExportPhaseDiagram(file, Mark{P: 25, T: 650}))

	info, err := os.Stat(file)
	require.NoError(t, err)
	assert.Positive(t, info.Size())
}

func TestExportSubregionDiagram(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, ExportSubregionDiagram(filepath.Join(dir, "subregions")))

	info, err := os.Stat(filepath.Join(dir, "subregions.png"))
	require.NoError(t, err)
	assert.Positive(t, info.Size())
}

func TestSubregionCentresSorted(t *testing.T) {
	pts, text, err := subregionCentres(DefaultSubregionMap(), 60)
	require.NoError(t, err)
	require.Len(t, pts, len(text))
	require.NotEmpty(t, text)
	for i := 1; i < len(text); i++ {
		assert.Less(t, text[i-1], text[i])
	}
	opts := DefaultSubregionMap()
	for _, p := range pts {
		assert.GreaterOrEqual(t, p.X, opts.TMin)
		assert.LessOrEqual(t, p.X, opts.TMax)
	}
}

func TestSaturationCurve(t *testing.T) {
	s, err := DrawASCIISaturationCurve(DefaultSaturationCurve())
	require.NoError(t, err)
	assert.Contains(t, s, "log10 psat (MPa)")
	// log10 of 22.064 MPa at the critical point
	assert.Contains(t, s, "1.344")

	opts := DefaultSaturationCurve()
	opts.TMax = 700
	_, err = DrawASCIISaturationCurve(opts)
	assert.Error(t, err)

	opts = DefaultSaturationCurve()
	opts.Points = 1
	_, err = DrawASCIISaturationCurve(opts)
	assert.Error(t, err)
}
