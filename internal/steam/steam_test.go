package steam

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexiusacademia/gosteam/internal/boundary"
	"github.com/alexiusacademia/gosteam/internal/forward"
	"github.com/alexiusacademia/gosteam/internal/secant"
	"github.com/alexiusacademia/gosteam/internal/subregion"
)

func TestLocate(t *testing.T) {
	cases := []struct {
		p, T float64
		want Region
	}{
		{3, 300, Region1},
		{80, 500, Region1},
		{0.0035, 300, Region2},
		{1, 500, Region2},
		{30, 700, Region2},
		{25, 650, Region3},
		{100, 800, Region3},
		{50, 900, Region2},
		{100, 1073.15, Region2},
		{0.5, 1500, Region5},
		{50, 2273.15, Region5},
		{boundary.SaturationPressure(500), 500, Region4},
		{boundary.B23Pressure(700), 700, Region2},

		{0, 300, OutOfRange},
		{-1, 300, OutOfRange},
		{101, 300, OutOfRange},
		{1, 273.0, OutOfRange},
		{51, 1500, OutOfRange},
		{1, 2300, OutOfRange},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, Locate(c.p, c.T), "p=%g T=%g", c.p, c.T)
	}
}

func TestRegionString(t *testing.T) {
	assert.Equal(t, "region 3", Region3.String())
	assert.Equal(t, "out of range", OutOfRange.String())
}

func TestPropertiesMatchForwardEquations(t *testing.T) {
	pt, err := Properties(3, 300)
	require.NoError(t, err)
	assert.Equal(t, 1, pt.Region)
	assert.InEpsilon(t, 0.100215168e-2, pt.V, 1e-8)
	assert.InEpsilon(t, 0.115331273e3, pt.H, 1e-8)

	pt, err = Properties(0.0035, 300)
	require.NoError(t, err)
	assert.Equal(t, 2, pt.Region)
	assert.InEpsilon(t, 0.394913866e2, pt.V, 1e-8)

	pt, err = Properties(0.5, 1500)
	require.NoError(t, err)
	assert.Equal(t, 5, pt.Region)
	assert.InEpsilon(t, 0.521976855e4, pt.H, 1e-8)
	assert.Equal(t, subregion.None, pt.Subregion)
}

func TestPropertiesRegion3(t *testing.T) {
	cases := []struct {
		p, T float64
		sub  subregion.Label
		near bool
	}{
		{25, 650, subregion.G, false},
		{50, 630, subregion.A, false},
		{80, 750, subregion.B, false},
		{17, 626, subregion.T, false},
		{21, 640.5, subregion.S, false},
		{22.15, 647.5, subregion.W, true},
		{22.064, 647.05, subregion.Y, true},
	}
	for _, c := range cases {
		pt, err := Properties(c.p, c.T)
		require.NoError(t, err, "p=%g T=%g", c.p, c.T)
		assert.Equal(t, 3, pt.Region)
		assert.Equal(t, c.sub, pt.Subregion)
		assert.Equal(t, c.near, pt.NearCritical)
		assert.Greater(t, pt.Iterations, 0)

		// The state must reproduce the requested pressure.
		assert.InEpsilon(t, c.p, pt.P, 1e-11, "p=%g T=%g", c.p, c.T)
		assert.InEpsilon(t, c.p, forward.Region3Pressure(pt.Rho, c.T), 1e-11)
	}
}

func TestDensity3ReferencePoint(t *testing.T) {
	// At 650 K the published point rho = 500 kg/m³ has p = 25.5837018 MPa.
	d, err := Density3(25.5837018, 650)
	require.NoError(t, err)
	assert.InEpsilon(t, 500, d.Rho, 1e-7)
	assert.InEpsilon(t, d.Backward, d.Rho, 1e-3)
}

func TestDensity3NearCriticalSeed(t *testing.T) {
	d, err := Density3(22.15, 647.5)
	require.NoError(t, err)
	assert.Equal(t, subregion.W, d.Subregion)
	assert.True(t, d.NearCritical)
	assert.InEpsilon(t, 270.7068926, d.Backward, 1e-8)
	assert.InEpsilon(t, d.Backward, d.Rho, 1e-5)
}

func TestPropertiesErrors(t *testing.T) {
	_, err := Properties(200, 300)
	assert.ErrorIs(t, err, ErrOutOfRange)

	_, err = Properties(boundary.SaturationPressure(400), 400)
	assert.ErrorIs(t, err, ErrTwoPhase)
	assert.False(t, errors.Is(err, ErrOutOfRange))
}

func TestSaturationAtT(t *testing.T) {
	sat, err := SaturationAtT(300)
	require.NoError(t, err)
	assert.InEpsilon(t, 0.353658941e-2, sat.P, 1e-8)
	assert.Equal(t, 1, sat.Liquid.Region)
	assert.Equal(t, 2, sat.Vapour.Region)
	assert.Greater(t, sat.Vapour.V, sat.Liquid.V)
	assert.Greater(t, sat.Vapour.H, sat.Liquid.H)

	for _, T := range []float64{630, 640, 645, 647} {
		sat, err := SaturationAtT(T)
		require.NoError(t, err, "T=%g", T)
		assert.Equal(t, 3, sat.Liquid.Region)
		assert.Equal(t, 3, sat.Vapour.Region)
		assert.Greater(t, sat.Liquid.Rho, sat.Vapour.Rho, "T=%g", T)
		assert.Greater(t, sat.Vapour.H, sat.Liquid.H, "T=%g", T)
		assert.InEpsilon(t, sat.P, sat.Liquid.P, 1e-10)
		assert.InEpsilon(t, sat.P, sat.Vapour.P, 1e-10)
	}

	_, err = SaturationAtT(650)
	assert.ErrorIs(t, err, ErrOutOfRange)
	_, err = SaturationAtT(270)
	assert.ErrorIs(t, err, ErrOutOfRange)
}

func TestSaturationAtP(t *testing.T) {
	sat, err := SaturationAtP(1)
	require.NoError(t, err)
	assert.InEpsilon(t, 0.453035632e3, sat.T, 1e-8)

	_, err = SaturationAtP(23)
	assert.ErrorIs(t, err, ErrOutOfRange)
}

func TestTemperatureInversionsRoundTrip(t *testing.T) {
	points := []struct{ p, T float64 }{
		{3, 300},
		{80, 500},
		{10, 400},
		{0.0035, 700},
		{1, 500},
		{0.1, 373},
		{30, 700},
		{25, 650},
		{50, 630},
		{80, 750},
		{17, 626},
		{21, 640.5},
		{22.15, 647.5},
		{100, 1000},
		{30, 1500},
		{0.5, 2000},
	}
	for _, c := range points {
		pt, err := Properties(c.p, c.T)
		require.NoError(t, err)

		T, err := TemperaturePH(c.p, pt.H)
		require.NoError(t, err, "T(p=%g, h=%g)", c.p, pt.H)
		assert.InDelta(t, c.T, T, 1e-5, "T(p,h) at p=%g T=%g", c.p, c.T)

		T, err = TemperaturePS(c.p, pt.S)
		require.NoError(t, err, "T(p=%g, s=%g)", c.p, pt.S)
		assert.InDelta(t, c.T, T, 1e-5, "T(p,s) at p=%g T=%g", c.p, c.T)
	}
}

func TestTemperaturePHTwoPhase(t *testing.T) {
	T, err := TemperaturePH(1, 1500)
	require.ErrorIs(t, err, ErrTwoPhase)
	assert.InEpsilon(t, 0.453035632e3, T, 1e-8)

	T, err = TemperaturePS(1, 4)
	require.ErrorIs(t, err, ErrTwoPhase)
	assert.InEpsilon(t, 0.453035632e3, T, 1e-8)
}

func TestTemperatureInversionErrors(t *testing.T) {
	_, err := TemperaturePH(0, 100)
	assert.ErrorIs(t, err, ErrOutOfRange)
	_, err = TemperaturePH(150, 100)
	assert.ErrorIs(t, err, ErrOutOfRange)

	// Colder than the lowest temperature of the formulation.
	_, err = TemperaturePH(10, -100)
	assert.Error(t, err)
	_, err = TemperaturePS(10, 50)
	assert.ErrorIs(t, err, ErrOutOfRange)
}

func TestQuality(t *testing.T) {
	assert.InDelta(t, 0.25, Quality(125, 100, 200), 1e-15)
	assert.Zero(t, Quality(100, 100, 200))
}

func TestNonConvergenceIsReported(t *testing.T) {
	_, err := solveDensity(25, 650, 0, subregion.Classification{Label: subregion.G})
	require.Error(t, err)
	assert.ErrorIs(t, err, secant.ErrNotConverged)
}
