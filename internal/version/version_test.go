package version

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestString(t *testing.T) {
	assert.Equal(t, "gosteam v"+Version+" (IAPWS-IF97)", String())

	defer func(c, b string) { GitCommit, BuildTime = c, b }(GitCommit, BuildTime)
	GitCommit, BuildTime = "abc123", "2026-01-02"
	assert.Equal(t, "gosteam v"+Version+" (IAPWS-IF97) commit abc123 built 2026-01-02", String())
}
