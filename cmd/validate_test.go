package cmd

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequirePositive(t *testing.T) {
	assert.NoError(t, requirePositive("pressure", 3))

	for _, v := range []float64{0, -1, math.NaN(), math.Inf(1)} {
		err := requirePositive("pressure", v)
		var verr *ValidationError
		require.ErrorAs(t, err, &verr, "value %g", v)
		assert.Contains(t, verr.Error(), "pressure must be positive")
	}
}

func TestRequireOne(t *testing.T) {
	names := []string{"enthalpy", "entropy"}
	assert.NoError(t, requireOne(names, []bool{true, false}))
	assert.NoError(t, requireOne(names, []bool{false, true}))
	assert.EqualError(t, requireOne(names, []bool{false, false}), "exactly one of --enthalpy, --entropy is required")
	assert.Error(t, requireOne(names, []bool{true, true}))
}

func TestCommandsRegistered(t *testing.T) {
	for _, name := range []string{"props", "region", "subregion", "sat", "invert", "diagram", "verify", "version"} {
		c, _, err := rootCmd.Find([]string{name})
		require.NoError(t, err, name)
		assert.Equal(t, name, c.Name())
	}
}
