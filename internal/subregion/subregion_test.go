package subregion

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexiusacademia/gosteam/internal/boundary"
)

type point struct {
	p, T, v float64
}

// Published check values of the backward equations v(p,T), two per subregion.
var reference = map[Label][2]point{
	A: {{50, 630, 1.470853100e-3}, {80, 670, 1.503831359e-3}},
	B: {{50, 710, 2.204728587e-3}, {80, 750, 1.973692940e-3}},
	C: {{20, 630, 1.761696406e-3}, {30, 650, 1.819560617e-3}},
	D: {{26, 656, 2.245587720e-3}, {30, 670, 2.506897702e-3}},
	E: {{26, 661, 2.970225962e-3}, {30, 675, 3.004627086e-3}},
	F: {{26, 671, 5.019029401e-3}, {30, 690, 4.656470142e-3}},
	G: {{23.6, 649, 2.163198378e-3}, {24, 650, 2.166044161e-3}},
	H: {{23.6, 652, 2.651081407e-3}, {24, 654, 2.967802335e-3}},
	I: {{23.6, 653, 3.273916816e-3}, {24, 655, 3.550329864e-3}},
	J: {{23.5, 655, 4.545001142e-3}, {24, 660, 5.100267704e-3}},
	K: {{23, 660, 6.109525997e-3}, {24, 670, 6.427325645e-3}},
	L: {{22.6, 646, 2.117860851e-3}, {23, 646, 2.062374674e-3}},
	M: {{22.6, 648.6, 2.533063780e-3}, {22.8, 649.3, 2.572971781e-3}},
	N: {{22.6, 649.0, 2.923432711e-3}, {22.8, 649.7, 2.913311494e-3}},
	O: {{22.6, 649.1, 3.131208996e-3}, {22.8, 649.9, 3.221160278e-3}},
	P: {{22.6, 649.4, 3.715596186e-3}, {22.8, 650.2, 3.664754790e-3}},
	Q: {{21.1, 640, 1.970999272e-3}, {21.8, 643, 2.043919161e-3}},
	R: {{21.1, 644, 5.251009921e-3}, {21.8, 648, 5.256844741e-3}},
	S: {{19.1, 635, 1.932829079e-3}, {20, 638, 1.985387227e-3}},
	T: {{17, 626, 8.483262001e-3}, {20, 640, 6.227528101e-3}},
	U: {{21.5, 644.6, 2.268366647e-3}, {22, 646.1, 2.296350553e-3}},
	V: {{22.5, 648.6, 2.832373260e-3}, {22.3, 647.9, 2.811424405e-3}},
	W: {{22.15, 647.5, 3.694032281e-3}, {22.3, 648.1, 3.622226305e-3}},
	X: {{22.11, 648, 4.528072649e-3}, {22.3, 649, 4.556905799e-3}},
	Y: {{22, 646.84, 2.698354719e-3}, {22.064, 647.05, 2.717655648e-3}},
	Z: {{22, 646.89, 3.798732962e-3}, {22.064, 647.15, 3.701940010e-3}},
}

func TestBackwardVolumes(t *testing.T) {
	require.Len(t, reference, 26)
	for _, l := range Labels {
		c, err := Lookup(l)
		require.NoError(t, err)
		for _, pt := range reference[l] {
			assert.InEpsilon(t, pt.v, c.Volume(pt.p, pt.T), 1e-8, "3%v at p=%g T=%g", l, pt.p, pt.T)
		}
	}
}

func TestClassifyReferencePoints(t *testing.T) {
	for _, l := range Labels {
		for _, pt := range reference[l] {
			cl, err := Classify(pt.p, pt.T)
			require.NoError(t, err)
			assert.Equal(t, l, cl.Label, "p=%g T=%g", pt.p, pt.T)

			near := l >= U && l <= Z
			assert.Equal(t, near, cl.NearCritical, "p=%g T=%g", pt.p, pt.T)
		}
	}
}

func TestVolume(t *testing.T) {
	v, cl, err := Volume(50, 630)
	require.NoError(t, err)
	assert.Equal(t, A, cl.Label)
	assert.False(t, cl.NearCritical)
	assert.InEpsilon(t, 1.470853100e-3, v, 1e-8)

	_, _, err = Volume(10, 630)
	assert.ErrorIs(t, err, ErrNotRegion3)
}

func TestClassifyOutsideRegion3(t *testing.T) {
	for _, p := range []float64{0.1, 16.5, 100.01} {
		_, err := Classify(p, 650)
		assert.ErrorIs(t, err, ErrNotRegion3, "p=%g", p)
	}
}

func TestLookupUnknownLabel(t *testing.T) {
	for _, l := range []Label{None, Z + 1, -3} {
		c, err := Lookup(l)
		assert.Nil(t, c)
		assert.True(t, errors.Is(err, ErrUnknownLabel))
	}
}

func TestBoundaryTiesGoToColdSide(t *testing.T) {
	cases := []struct {
		p     float64
		curve boundary.Curve
		cold  Label
		hot   Label
	}{
		{50, boundary.AB, A, B},
		{30, boundary.CD, C, D},
		{30, boundary.EF, E, F},
		{24, boundary.GH, G, H},
		{24, boundary.IJ, I, J},
		{24, boundary.JK, J, K},
		{22.8, boundary.MN, M, N},
		{22.8, boundary.OP, O, P},
		{22.3, boundary.UV, U, V},
		{22.3, boundary.WX, W, X},
	}
	for _, c := range cases {
		T := c.curve.At(c.p)
		cold, err := Classify(c.p, T)
		require.NoError(t, err)
		hot, err := Classify(c.p, T+1e-6)
		require.NoError(t, err)
		assert.Equal(t, c.cold, cold.Label, c.curve.Name)
		assert.Equal(t, c.hot, hot.Label, c.curve.Name)
	}
}

func TestPressureBandEdges(t *testing.T) {
	// Band edges belong to the lower band.
	cl, err := Classify(40, 640)
	require.NoError(t, err)
	assert.Equal(t, C, cl.Label)

	cl, err = Classify(boundary.PSat623, 623.1)
	require.NoError(t, err)
	assert.Equal(t, C, cl.Label)
}

// Points on either side of a shared boundary should give nearly the same
// volume from both neighbouring correlations.
func TestBoundaryContinuity(t *testing.T) {
	// Away from the critical point neighbouring backward equations agree to
	// a few ppm on their shared curve. In the near-critical subregions they
	// only seed an iteration and agree far less closely.
	const (
		tight = 1e-4
		loose = 2e-3
		// y/z, u/y and z/x meet within a few tenths of a kelvin of the
		// critical point.
		critical = 3e-2
	)
	cases := []struct {
		p         float64
		curve     boundary.Curve
		cold, hot Label
		tol       float64
	}{
		{50, boundary.AB, A, B, tight},
		{30, boundary.AB, D, E, tight},
		{30, boundary.CD, C, D, tight},
		{30, boundary.EF, E, F, tight},
		{24, boundary.EF, H, I, tight},
		{22.8, boundary.EF, N, O, tight},
		{24, boundary.GH, G, H, tight},
		{23.2, boundary.GH, L, H, tight},
		{22.8, boundary.GH, L, M, tight},
		{24, boundary.IJ, I, J, tight},
		{22.8, boundary.IJ, P, J, tight},
		{24, boundary.JK, J, K, tight},
		{22.8, boundary.MN, M, N, tight},
		{22.8, boundary.OP, O, P, tight},
		{22.3, boundary.QU, Q, U, loose},
		{22.3, boundary.RX, X, R, loose},
		{22.3, boundary.UV, U, V, loose},
		{22.3, boundary.EF, V, W, loose},
		{22.3, boundary.WX, W, X, loose},
		{22.08, boundary.UV, U, Y, critical},
		{22.08, boundary.EF, Y, Z, critical},
		{22.08, boundary.WX, Z, X, critical},
	}
	for _, c := range cases {
		T := c.curve.At(c.p)
		name := fmt.Sprintf("%s at %g MPa (%s/%s)", c.curve.Name, c.p, c.cold, c.hot)

		cl, err := Classify(c.p, T)
		require.NoError(t, err)
		assert.Equal(t, c.cold, cl.Label, name)
		cl, err = Classify(c.p, T+1e-6)
		require.NoError(t, err)
		assert.Equal(t, c.hot, cl.Label, name)

		lo, err := Lookup(c.cold)
		require.NoError(t, err)
		hi, err := Lookup(c.hot)
		require.NoError(t, err)
		assert.InEpsilon(t, lo.Volume(c.p, T), hi.Volume(c.p, T), c.tol, name)
	}
}

func TestSaturationSplit(t *testing.T) {
	// Across the saturation line the volume jumps from liquid to vapour.
	cases := []struct {
		p         float64
		cold, hot Label
	}{
		{18, C, T},
		{20, S, T},
		{21, S, R},
	}
	for _, c := range cases {
		ts := boundary.SaturationTemperature(c.p)

		cl, err := Classify(c.p, ts)
		require.NoError(t, err)
		assert.Equal(t, c.cold, cl.Label, "p=%g", c.p)
		cl, err = Classify(c.p, ts+1e-6)
		require.NoError(t, err)
		assert.Equal(t, c.hot, cl.Label, "p=%g", c.p)

		lo, err := Lookup(c.cold)
		require.NoError(t, err)
		hi, err := Lookup(c.hot)
		require.NoError(t, err)
		assert.Greater(t, hi.Volume(c.p, ts), 1.5*lo.Volume(c.p, ts), "p=%g", c.p)
	}
}

func TestParseLabel(t *testing.T) {
	l, err := ParseLabel("3k")
	require.NoError(t, err)
	assert.Equal(t, K, l)

	l, err = ParseLabel("w")
	require.NoError(t, err)
	assert.Equal(t, W, l)

	_, err = ParseLabel("3")
	assert.ErrorIs(t, err, ErrUnknownLabel)
	_, err = ParseLabel("aa")
	assert.ErrorIs(t, err, ErrUnknownLabel)
}

func TestLabelString(t *testing.T) {
	assert.Equal(t, "a", A.String())
	assert.Equal(t, "z", Z.String())
	assert.Equal(t, "-", None.String())
	assert.Len(t, Labels, 26)
	for _, l := range Labels {
		assert.True(t, l.Valid())
	}
	assert.False(t, None.Valid())
}

func gridPressures() []float64 {
	var ps []float64
	for i := 166; i <= 1000; i++ {
		if (i < 200 && i%4 == 2) || (i >= 200 && i <= 260) || (i > 260 && i%20 == 0) {
			ps = append(ps, float64(i)/10)
		}
	}
	return ps
}

func gridTemperatures() []float64 {
	var ts []float64
	for j := 6235; j <= 8600; j += 5 {
		if (j < 6600 && (j-6235)%10 == 0) || (j >= 6600 && j%50 == 0) {
			ts = append(ts, float64(j)/10)
		}
	}
	return ts
}

// TestClassificationGrid snapshots the subregion map over region 3. Each row
// is one pressure, each column one temperature; '.' marks region 2.
func TestClassificationGrid(t *testing.T) {
	ts := gridTemperatures()
	var sb strings.Builder
	for _, p := range gridPressures() {
		row := make([]byte, 0, len(ts))
		for _, T := range ts {
			if p <= boundary.B23Pressure(T) {
				row = append(row, '.')
				continue
			}
			first, err := Classify(p, T)
			require.NoError(t, err, "p=%g T=%g", p, T)
			require.True(t, first.Label.Valid())

			again, err := Classify(p, T)
			require.NoError(t, err)
			require.Equal(t, first, again)

			row = append(row, first.Label.String()[0])
		}
		sb.WriteString(fmt.Sprintf("%6.2f %s\n", p, row))
	}

	g := goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
	g.Assert(t, "classification_grid", []byte(sb.String()))
}
