package forward

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const tol = 1e-8

type expect struct {
	name string
	got  func(State) float64
	want float64
}

func checkState(t *testing.T, s State, wants []expect) {
	t.Helper()
	for _, w := range wants {
		assert.InEpsilon(t, w.want, w.got(s), tol, w.name)
	}
}

func volume(s State) float64   { return s.V }
func enthalpy(s State) float64 { return s.H }
func energy(s State) float64   { return s.U }
func entropy(s State) float64  { return s.S }
func cp(s State) float64       { return s.Cp }
func sound(s State) float64    { return s.W }
func pressure(s State) float64 { return s.P }

func TestRegion1(t *testing.T) {
	cases := []struct {
		p, T  float64
		wants []expect
	}{
		{3, 300, []expect{
			{"v", volume, 0.100215168e-2},
			{"h", enthalpy, 0.115331273e3},
			{"u", energy, 0.112324818e3},
			{"s", entropy, 0.392294792},
			{"cp", cp, 0.417301218e1},
			{"w", sound, 0.150773921e4},
		}},
		{80, 300, []expect{
			{"v", volume, 0.971180894e-3},
			{"h", enthalpy, 0.184142828e3},
		}},
		{3, 500, []expect{
			{"h", enthalpy, 0.975542239e3},
			{"s", entropy, 0.258041912e1},
			{"w", sound, 0.124071337e4},
		}},
	}
	for _, c := range cases {
		s := Region1(c.p, c.T)
		assert.Equal(t, 1, s.Region)
		checkState(t, s, c.wants)
	}
}

func TestRegion1TemperaturePH(t *testing.T) {
	assert.InEpsilon(t, 0.391798509e3, Region1TemperaturePH(3, 500), tol)
	assert.InEpsilon(t, 0.378108626e3, Region1TemperaturePH(80, 500), tol)
	assert.InEpsilon(t, 0.611041229e3, Region1TemperaturePH(80, 1500), tol)
}

func TestRegion1BackwardConsistency(t *testing.T) {
	for _, p := range []float64{20, 40, 90} {
		for T := 280.0; T <= 620; T += 40 {
			h := Region1(p, T).H
			assert.InDelta(t, T, Region1TemperaturePH(p, h), 0.025, "p=%g T=%g", p, T)
		}
	}
}

func TestRegion2(t *testing.T) {
	cases := []struct {
		p, T  float64
		wants []expect
	}{
		{0.0035, 300, []expect{
			{"v", volume, 0.394913866e2},
			{"h", enthalpy, 0.254991145e4},
			{"u", energy, 0.241169160e4},
			{"s", entropy, 0.852238967e1},
			{"cp", cp, 0.191300162e1},
			{"w", sound, 0.427920172e3},
		}},
		{0.0035, 700, []expect{
			{"h", enthalpy, 0.333568375e4},
		}},
		{30, 700, []expect{
			{"v", volume, 0.542946619e-2},
			{"h", enthalpy, 0.263149474e4},
			{"u", energy, 0.246861076e4},
			{"s", entropy, 0.517540298e1},
			{"cp", cp, 0.103505092e2},
			{"w", sound, 0.480386523e3},
		}},
	}
	for _, c := range cases {
		s := Region2(c.p, c.T)
		assert.Equal(t, 2, s.Region)
		checkState(t, s, c.wants)
	}
}

func TestRegion3(t *testing.T) {
	cases := []struct {
		rho, T float64
		wants  []expect
	}{
		{500, 650, []expect{
			{"p", pressure, 0.255837018e2},
			{"h", enthalpy, 0.186343019e4},
			{"u", energy, 0.181226279e4},
			{"s", entropy, 0.405427273e1},
			{"cp", cp, 0.138935717e2},
			{"w", sound, 0.502005554e3},
		}},
		{200, 650, []expect{
			{"p", pressure, 0.222930643e2},
			{"h", enthalpy, 0.237512401e4},
			{"cp", cp, 0.446579342e2},
			{"w", sound, 0.383444594e3},
		}},
		{500, 750, []expect{
			{"p", pressure, 0.783095639e2},
			{"h", enthalpy, 0.225868845e4},
			{"cp", cp, 0.634165359e1},
			{"w", sound, 0.760696041e3},
		}},
	}
	for _, c := range cases {
		s := Region3(c.rho, c.T)
		assert.Equal(t, 3, s.Region)
		assert.Equal(t, c.rho, s.Rho)
		checkState(t, s, c.wants)
		assert.InEpsilon(t, s.P, Region3Pressure(c.rho, c.T), 1e-14)
	}
}

func TestRegion5(t *testing.T) {
	cases := []struct {
		p, T  float64
		wants []expect
	}{
		{0.5, 1500, []expect{
			{"v", volume, 0.138455090e1},
			{"h", enthalpy, 0.521976855e4},
			{"u", energy, 0.452749310e4},
			{"s", entropy, 0.965408875e1},
			{"cp", cp, 0.261609445e1},
			{"w", sound, 0.917068690e3},
		}},
		{30, 1500, []expect{
			{"v", volume, 0.230761299e-1},
			{"h", enthalpy, 0.516723514e4},
			{"s", entropy, 0.772970133e1},
		}},
		{30, 2000, []expect{
			{"v", volume, 0.311385219e-1},
			{"h", enthalpy, 0.657122604e4},
			{"s", entropy, 0.853640523e1},
			{"cp", cp, 0.288569882e1},
			{"w", sound, 0.106736948e4},
		}},
	}
	for _, c := range cases {
		s := Region5(c.p, c.T)
		assert.Equal(t, 5, s.Region)
		checkState(t, s, c.wants)
	}
}

func TestThermodynamicIdentities(t *testing.T) {
	states := []State{
		Region1(3, 300),
		Region2(0.0035, 300),
		Region3(500, 650),
		Region5(0.5, 1500),
	}
	for _, s := range states {
		require.Greater(t, s.Cp, s.Cv, "region %d", s.Region)
		// h = u + p·v with p in kPa.
		assert.InEpsilon(t, s.H, s.U+s.P*1000*s.V, 1e-9, "region %d", s.Region)
		assert.InEpsilon(t, 1/s.V, s.Rho, 1e-14)
	}
}

// isothermalSlope returns (∂p/∂ρ)_T in Pa·m³/kg by central difference in
// pressure for the Gibbs-based regions.
func isothermalSlope(region func(p, T float64) State, p, T float64) float64 {
	dp := p * 1e-5
	return 2 * dp * 1e6 / (region(p+dp, T).Rho - region(p-dp, T).Rho)
}

func TestHeatCapacityRatio(t *testing.T) {
	// w² = (cp/cv)·(∂p/∂ρ)_T ties cv to the speed of sound and the
	// equation of state.
	cases := []struct {
		name   string
		region func(p, T float64) State
		p, T   float64
	}{
		{"region 1", Region1, 3, 300},
		{"region 1", Region1, 80, 500},
		{"region 2", Region2, 0.0035, 300},
		{"region 2", Region2, 20, 800},
		{"region 5", Region5, 0.5, 1500},
		{"region 5", Region5, 30, 2000},
	}
	for _, c := range cases {
		s := c.region(c.p, c.T)
		slope := isothermalSlope(c.region, c.p, c.T)
		assert.InEpsilon(t, s.W*s.W, s.Cp/s.Cv*slope, 1e-6, "%s p=%g T=%g", c.name, c.p, c.T)
	}

	const drho = 1e-4
	for _, rt := range [][2]float64{{500, 650}, {200, 650}, {500, 750}} {
		rho, T := rt[0], rt[1]
		s := Region3(rho, T)
		slope := (Region3Pressure(rho+drho, T) - Region3Pressure(rho-drho, T)) / (2 * drho) * 1e6
		assert.InEpsilon(t, s.W*s.W, s.Cp/s.Cv*slope, 1e-6, "region 3 rho=%g T=%g", rho, T)
	}
}

func TestRegion3IsochoricHeatCapacity(t *testing.T) {
	// cv = (∂u/∂T)_ρ
	const dT = 1e-3
	for _, rt := range [][2]float64{{500, 650}, {200, 650}, {500, 750}, {750, 630}} {
		rho, T := rt[0], rt[1]
		cv := (Region3(rho, T+dT).U - Region3(rho, T-dT).U) / (2 * dT)
		assert.InEpsilon(t, cv, Region3(rho, T).Cv, 1e-6, "rho=%g T=%g", rho, T)
	}
	assert.InDelta(t, 3.1913, Region3(500, 650).Cv, 1e-3)
}
