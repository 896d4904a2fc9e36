package secant

import (
	"log/slog"
	"math"
)

// Solve finds x such that f(known, x) = target (FixFirst) or
// f(x, known) = target (FixSecond), starting from guess.
//
// The guess is accepted as is when it already meets the tolerance.
// Otherwise the better of guess·(1±Perturbation) becomes the second trial
// point and the secant update
//
//	x₂ = x₁ - f(x₁)·(x₁ - x₀) / (f(x₁) - f(x₀))
//
// is repeated until the residual is within tolerance or MaxIterations steps
// have been taken. A zero or non-finite denominator stops the iteration with
// status Degenerate.
//
// On failure the returned Result still carries the last candidate, and the
// error is a *ConvergenceError.
func Solve(f func(a, b float64) float64, fixed Arg, known, target, guess float64, opts Options) (Result, error) {
	opts = opts.withDefaults()

	residual := func(x float64) float64 {
		if fixed == FixFirst {
			return f(known, x) - target
		}
		return f(x, known) - target
	}

	// A zero target would make the relative test unreachable, so it falls
	// back to an absolute one.
	scale := math.Abs(target)
	if scale == 0 {
		scale = 1
	}
	done := func(r float64) bool {
		return math.Abs(r) <= opts.Tolerance*scale
	}

	x0 := guess
	r0 := residual(x0)
	if done(r0) {
		return Result{Value: x0, Status: Converged}, nil
	}

	xa, xb := x0*(1+opts.Perturbation), x0*(1-opts.Perturbation)
	ra, rb := residual(xa), residual(xb)
	x1, r1 := xa, ra
	if math.Abs(rb) < math.Abs(ra) {
		x1, r1 = xb, rb
	}

	for it := 1; it <= opts.MaxIterations; it++ {
		if done(r1) {
			slog.Debug("secant converged", "x", x1, "iterations", it)
			return Result{Value: x1, Iterations: it, Status: Converged}, nil
		}

		den := r1 - r0
		if den == 0 || math.IsNaN(den) || math.IsInf(den, 0) {
			return fail(Degenerate, it, x1, r1)
		}
		x2 := x1 - r1*(x1-x0)/den
		if math.IsNaN(x2) || math.IsInf(x2, 0) {
			return fail(Degenerate, it, x1, r1)
		}

		x0, r0 = x1, r1
		x1 = x2
		r1 = residual(x1)
		slog.Debug("secant step", "iteration", it, "x", x1, "residual", r1)
	}
	if done(r1) {
		return Result{Value: x1, Iterations: opts.MaxIterations, Status: Converged}, nil
	}
	return fail(ExceededBudget, opts.MaxIterations, x1, r1)
}

func fail(s Status, it int, x, r float64) (Result, error) {
	slog.Debug("secant stopped", "status", s.String(), "iterations", it, "x", x, "residual", r)
	return Result{Value: x, Iterations: it, Status: s},
		&ConvergenceError{Status: s, Iterations: it, Value: x, Residual: r}
}
