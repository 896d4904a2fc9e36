package cmd

import (
	"fmt"
	"math"
	"strings"
)

// ValidationError represents an invalid command-line input
type ValidationError struct {
	msg string
}

func (e *ValidationError) Error() string {
	return e.msg
}

// requirePositive checks that a flag holds a finite positive value.
func requirePositive(name string, v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) || v <= 0 {
		return &ValidationError{msg: fmt.Sprintf("%s must be positive (got %g)", name, v)}
	}
	return nil
}

// requireOne checks that exactly one of the named flags was given.
func requireOne(names []string, set []bool) error {
	n := 0
	for _, s := range set {
		if s {
			n++
		}
	}
	if n != 1 {
		return &ValidationError{msg: fmt.Sprintf("exactly one of --%s is required", strings.Join(names, ", --"))}
	}
	return nil
}
