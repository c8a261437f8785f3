// SPDX-License-Identifier: MIT
// Package spblas: the convergence monitor driving the iterative kernels.
// The monitor owns the stopping policy (iteration cap + relative
// tolerance) and the residual history's terminal value; the solver only
// asks "am I finished?" after every residual update.

package spblas

import "fmt"

// Monitor tracks iterations and residual norms for an iterative solve.
// Convergence is relative to the right-hand side: finished when
// ‖r‖ ≤ tol·‖b‖ (absolute tol when ‖b‖ = 0) or when the iteration cap is
// reached — whichever comes first. Reaching the cap is a reported outcome,
// not an error.
type Monitor struct {
	maxIterations int     // hard cap on counted iterations
	tolerance     float64 // relative tolerance against bNorm
	bNorm         float64 // norm of the right-hand side at construction
	verbose       bool    // print a residual trace line per check

	iteration int     // iterations counted so far
	residual  float64 // most recent residual norm
}

// NewMonitor builds a monitor for a system with right-hand side norm bNorm.
// Non-positive maxIterations or tolerance fall back to the caller's
// defaults being honest mistakes: they are kept as-is and simply make the
// cap (0 iterations) or the relative target (0) immediate/exact.
// Complexity: O(1).
func NewMonitor(bNorm float64, maxIterations int, tolerance float64, verbose bool) *Monitor {
	return &Monitor{
		maxIterations: maxIterations,
		tolerance:     tolerance,
		bNorm:         bNorm,
		verbose:       verbose,
	}
}

// Finished records the residual norm, emits the optional trace line, and
// reports whether the solve should stop (converged or iteration cap hit).
// Each call counts as one iteration.
// Complexity: O(1).
func (m *Monitor) Finished(residual float64) bool {
	m.residual = residual
	if m.verbose {
		fmt.Printf("iteration %d: residual norm %.6e\n", m.iteration, residual)
	}
	if m.Converged() {
		return true
	}
	if m.iteration >= m.maxIterations {
		return true
	}
	m.iteration++

	return false
}

// Converged reports whether the last recorded residual satisfies the
// tolerance: ‖r‖ ≤ tol·‖b‖, or ‖r‖ ≤ tol when ‖b‖ is zero.
// Complexity: O(1).
func (m *Monitor) Converged() bool {
	if m.bNorm == 0 {
		return m.residual <= m.tolerance
	}

	return m.residual <= m.tolerance*m.bNorm
}

// Iteration returns the number of iterations counted so far.
func (m *Monitor) Iteration() int { return m.iteration }

// ResidualNorm returns the most recently recorded residual norm.
func (m *Monitor) ResidualNorm() float64 { return m.residual }
