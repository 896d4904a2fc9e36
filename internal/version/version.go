package version

import "fmt"

// These variables are set at build time using -ldflags
// Example: go build -ldflags "-X github.com/alexiusacademia/gosteam/internal/version.Version=0.2.0"
var (
	// Version is the semantic version of the application
	Version = "0.1.0"

	// BuildTime is the time the binary was built (set via ldflags)
	BuildTime = "unknown"

	// GitCommit is the git commit hash (set via ldflags)
	GitCommit = "unknown"

	// Author of the application
	Author = "Alexius Academia"

	// Year of release
	Year = "2026"

	// Standard is the formulation the property routines implement.
	Standard = "IAPWS-IF97"
)

// String returns the version line printed by the CLI.
func String() string {
	s := fmt.Sprintf("gosteam v%s (%s)", Version, Standard)
	if GitCommit != "unknown" {
		s += fmt.Sprintf(" commit %s", GitCommit)
	}
	if BuildTime != "unknown" {
		s += fmt.Sprintf(" built %s", BuildTime)
	}
	return s
}
