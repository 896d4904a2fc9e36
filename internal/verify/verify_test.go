package verify

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultCasesPass(t *testing.T) {
	cases := Default()
	require.NotEmpty(t, cases)

	report := Run(cases)
	for _, o := range report.Outcomes {
		assert.True(t, o.Pass, "%s: got %g want %g (rel err %g, err %v)", o.Name, o.Got, o.Want, o.RelErr, o.Err)
	}
	assert.True(t, report.OK())
	assert.Equal(t, len(cases), report.Passed)
	assert.Zero(t, report.Failed)
}

func TestDefaultCasesCoverEverySubregion(t *testing.T) {
	n := 0
	for _, c := range Default() {
		if c.Func == "v3" {
			n++
		}
	}
	assert.Equal(t, 52, n)
}

func TestLoadAppliesTolerances(t *testing.T) {
	src := `
tolerance: 1e-6
cases:
  - name: psat
    func: psat
    args: [300]
    want: 0.00353658941
  - name: tight
    func: tsat
    args: [1]
    want: 453.035632
    tolerance: 1e-9
`
	cases, err := Load(strings.NewReader(src))
	require.NoError(t, err)
	require.Len(t, cases, 2)
	assert.Equal(t, 1e-6, cases[0].Tolerance)
	assert.Equal(t, 1e-9, cases[1].Tolerance)
}

func TestLoadDefaultTolerance(t *testing.T) {
	cases, err := Load(strings.NewReader("cases:\n  - {name: x, func: psat, args: [300], want: 0.0035}\n"))
	require.NoError(t, err)
	assert.Equal(t, DefaultTolerance, cases[0].Tolerance)
}

func TestLoadRejectsBadCases(t *testing.T) {
	bad := map[string]string{
		"unknown function": "cases:\n  - {name: x, func: nope, args: [1], want: 1}\n",
		"wrong arity":      "cases:\n  - {name: x, func: region1, args: [1], property: h, want: 1}\n",
		"missing property": "cases:\n  - {name: x, func: region1, args: [1, 300], want: 1}\n",
		"stray property":   "cases:\n  - {name: x, func: psat, args: [300], property: h, want: 1}\n",
		"unknown field":    "cases:\n  - {name: x, func: psat, args: [300], want: 1, extra: 2}\n",
		"empty":            "",
	}
	for name, src := range bad {
		_, err := Load(strings.NewReader(src))
		assert.Error(t, err, name)
	}
}

func TestRunReportsFailures(t *testing.T) {
	cases := []Case{
		{Name: "wrong", Func: "psat", Args: []float64{300}, Want: 1, Tolerance: 1e-8},
		{Name: "bad property", Func: "region2", Args: []float64{1, 500}, Property: "zeta", Want: 1, Tolerance: 1e-8},
		{Name: "out of range", Func: "props", Args: []float64{200, 300}, Property: "h", Want: 1, Tolerance: 1e-8},
		{Name: "right", Func: "psat", Args: []float64{300}, Want: 0.353658941e-2, Tolerance: 1e-8},
	}
	report := Run(cases)
	assert.False(t, report.OK())
	assert.Equal(t, 3, report.Failed)
	assert.Equal(t, 1, report.Passed)

	assert.NoError(t, report.Outcomes[0].Err)
	assert.Greater(t, report.Outcomes[0].RelErr, 0.9)
	assert.Error(t, report.Outcomes[1].Err)
	assert.Error(t, report.Outcomes[2].Err)
	assert.True(t, report.Outcomes[3].Pass)
}
