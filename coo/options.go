// SPDX-License-Identifier: MIT
// Package coo: functional configuration for the numeric façade.
// Defaults live here as documented constants (single source of truth);
// WithX constructors panic only on nonsensical parameters (programmer
// error) and the gather helpers resolve the effective configuration.

package coo

// Solver and estimator defaults. These mirror the conventional GMRES
// operating point: a moderate restart length, a generous iteration cap,
// and a relative residual target of 1e-6.
const (
	// DefaultRestart is the GMRES restart length used by Solve.
	DefaultRestart = 50

	// DefaultMaxIterations caps the total GMRES iterations.
	DefaultMaxIterations = 1000

	// DefaultTolerance is the relative residual target ‖r‖ ≤ tol·‖b‖.
	DefaultTolerance = 1e-6

	// DefaultSpectralIterations bounds the Lanczos/power recurrence in
	// SpectralRadius.
	DefaultSpectralIterations = 10
)

// Internal panic messages (no magic strings).
const (
	panicRestartInvalid    = "coo: WithRestart: restart must be > 0"
	panicMaxIterInvalid    = "coo: WithMaxIterations: cap must be > 0"
	panicToleranceInvalid  = "coo: WithTolerance: tolerance must be > 0"
	panicIterationsInvalid = "coo: WithIterations: count must be > 0"
)

// MulOption configures MulVec and MulAdd.
type MulOption func(*mulOptions)

type mulOptions struct {
	transpose bool // operate on the transpose view instead of the matrix
	conjugate bool // conjugate matrix values for the duration of the call
}

// WithTranspose selects the transpose view as the multiply operand:
// y ← Aᵗ·x.
func WithTranspose() MulOption {
	return func(o *mulOptions) { o.transpose = true }
}

// WithConjugate conjugates the matrix values for the duration of the
// multiply (y ← conj(A)·x, composable with WithTranspose for Aᴴ·x).
// Meaningful only for complex scalar types; a no-op for real ones.
//
// The conjugation is performed in place and undone before returning, so
// the stored values are unchanged after the call — but NOT during it.
// Do not read the matrix concurrently with a conjugated multiply.
func WithConjugate() MulOption {
	return func(o *mulOptions) { o.conjugate = true }
}

func gatherMulOptions(opts []MulOption) mulOptions {
	var o mulOptions
	for _, opt := range opts {
		opt(&o)
	}

	return o
}

// SolveOption configures Solve.
type SolveOption func(*solveOptions)

type solveOptions struct {
	restart       int
	maxIterations int
	tolerance     float64
	verbose       bool
}

// WithRestart sets the GMRES restart length. Panics if restart <= 0.
func WithRestart(restart int) SolveOption {
	if restart <= 0 {
		panic(panicRestartInvalid)
	}

	return func(o *solveOptions) { o.restart = restart }
}

// WithMaxIterations caps the total solver iterations. Panics if cap <= 0.
func WithMaxIterations(maxIterations int) SolveOption {
	if maxIterations <= 0 {
		panic(panicMaxIterInvalid)
	}

	return func(o *solveOptions) { o.maxIterations = maxIterations }
}

// WithTolerance sets the relative residual target. Panics if tol <= 0.
func WithTolerance(tol float64) SolveOption {
	if tol <= 0 {
		panic(panicToleranceInvalid)
	}

	return func(o *solveOptions) { o.tolerance = tol }
}

// WithVerbose enables the per-iteration residual trace.
func WithVerbose() SolveOption {
	return func(o *solveOptions) { o.verbose = true }
}

func gatherSolveOptions(opts []SolveOption) solveOptions {
	o := solveOptions{
		restart:       DefaultRestart,
		maxIterations: DefaultMaxIterations,
		tolerance:     DefaultTolerance,
	}
	for _, opt := range opts {
		opt(&o)
	}

	return o
}

// SpectralOption configures SpectralRadius.
type SpectralOption func(*spectralOptions)

type spectralOptions struct {
	iterations int
	symmetric  bool
}

// WithIterations sets the recurrence depth. Panics if count <= 0.
func WithIterations(count int) SpectralOption {
	if count <= 0 {
		panic(panicIterationsInvalid)
	}

	return func(o *spectralOptions) { o.iterations = count }
}

// WithSymmetric declares the matrix symmetric (Hermitian), enabling the
// cheaper and more accurate Lanczos path.
func WithSymmetric() SpectralOption {
	return func(o *spectralOptions) { o.symmetric = true }
}

func gatherSpectralOptions(opts []SpectralOption) spectralOptions {
	o := spectralOptions{iterations: DefaultSpectralIterations}
	for _, opt := range opts {
		opt(&o)
	}

	return o
}
