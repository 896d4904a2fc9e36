// Package secant inverts two-argument property functions with the secant
// method.
package secant

import (
	"errors"
	"fmt"
)

// Arg selects which argument of the forward function is held fixed.
type Arg int

const (
	// FixFirst holds the first argument and solves for the second.
	FixFirst Arg = iota
	// FixSecond holds the second argument and solves for the first.
	FixSecond
)

// Status reports how a solve ended.
type Status int

const (
	Converged Status = iota
	ExceededBudget
	// Degenerate means a secant step could not be taken because the two
	// trial points gave the same (or a non-finite) function value.
	Degenerate
)

func (s Status) String() string {
	switch s {
	case Converged:
		return "converged"
	case ExceededBudget:
		return "exceeded iteration budget"
	case Degenerate:
		return "degenerate step"
	default:
		return fmt.Sprintf("Status(%d)", int(s))
	}
}

// ErrNotConverged is matched by every error Solve returns.
var ErrNotConverged = errors.New("secant: did not converge")

// ConvergenceError describes a solve that stopped without meeting the
// tolerance. Value is the last candidate, which callers may still use.
type ConvergenceError struct {
	Status     Status
	Iterations int
	Value      float64
	Residual   float64
}

func (e *ConvergenceError) Error() string {
	return fmt.Sprintf("secant: %v after %d iterations (x=%g, residual=%g)",
		e.Status, e.Iterations, e.Value, e.Residual)
}

func (e *ConvergenceError) Unwrap() error { return ErrNotConverged }

// Options tunes the solver. Zero fields take the value from DefaultOptions.
type Options struct {
	// Perturbation is the relative offset used to build the second trial point.
	Perturbation float64
	// Tolerance is the relative tolerance on the function value:
	// |f(x) - target| ≤ Tolerance·|target|.
	Tolerance float64
	// MaxIterations bounds the number of secant steps.
	MaxIterations int
}

// DefaultOptions returns the settings used when none are given.
func DefaultOptions() Options {
	return Options{
		Perturbation:  1e-3,
		Tolerance:     1e-10,
		MaxIterations: 50,
	}
}

func (o Options) withDefaults() Options {
	d := DefaultOptions()
	if o.Perturbation <= 0 {
		o.Perturbation = d.Perturbation
	}
	if o.Tolerance <= 0 {
		o.Tolerance = d.Tolerance
	}
	if o.MaxIterations <= 0 {
		o.MaxIterations = d.MaxIterations
	}
	return o
}

// Result is the outcome of a solve.
type Result struct {
	Value      float64
	Iterations int
	Status     Status
}
