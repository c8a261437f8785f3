// SPDX-License-Identifier: MIT
// Package coo: the numeric façade over the frozen matrix.
// Thin dispatch on top of the spblas kernels: operand selection
// (matrix vs. transpose view), in-place conjugation with restore,
// aliasing-safe output routing, and the α/β short-circuit policies of the
// scaled multiply-add. None of these methods take the assembler lock —
// see the package documentation for the caller contract.

package coo

import (
	"fmt"

	"github.com/katalvlaran/lvlsparse/spblas"
)

// MulVec computes y ← A·x against the frozen matrix, or y ← Aᵗ·x with
// WithTranspose. WithConjugate conjugates the matrix values for the
// duration of the call (complex scalars only; restored before returning).
//
// Aliasing contract: when x and y share storage the product is computed
// into a temporary and copied into y afterwards, so the result equals the
// two-step temp = A·x; y = temp. Distinct vectors are written directly.
//
// Errors: ErrNotMaterialized, ErrNilVector, ErrDimensionMismatch.
// Complexity: O(rows + nnz).
func (a *Assembler[T]) MulVec(x, y []T, opts ...MulOption) error {
	o := gatherMulOptions(opts)
	m, view, err := a.snapshot()
	if err != nil {
		return fmt.Errorf("MulVec: %w", err)
	}

	var op spblas.Triplets[T] = m
	if o.transpose {
		op = view
	}
	rows, cols := op.Dims()
	if err = validateVec(x, cols); err != nil {
		return fmt.Errorf("MulVec: x: %w", err)
	}
	if err = validateVec(y, rows); err != nil {
		return fmt.Errorf("MulVec: y: %w", err)
	}

	// Conjugate in place, multiply, conjugate back. The stored values are
	// unchanged after the call but not during it — the documented
	// trade-off inherited from the conjugate-multiply design.
	conj := o.conjugate && spblas.IsComplex[T]()
	if conj {
		conjugateInPlace(m.vals)
	}

	if aliased(x, y) {
		tmp := make([]T, rows)
		if err = spblas.MulVec(op, x, tmp); err == nil {
			copy(y, tmp)
		}
	} else {
		err = spblas.MulVec(op, x, y)
	}

	if conj {
		conjugateInPlace(m.vals)
	}
	if err != nil {
		return fmt.Errorf("MulVec: %w", err)
	}

	return nil
}

// MulAdd computes the scaled multiply-add y ← α·A·x + β·y (transpose and
// conjugate via the same options as MulVec), with short-circuit policies:
//
//   - β = 0: y's prior value is never read — y ← α·(A·x) (and a plain
//     zeroing when α is also 0).
//   - α = 0: the multiply is skipped entirely — y ← β·y.
//   - Scaling by exactly 1 is skipped as a no-op.
//
// When β ≠ 0 the product accumulates in a separate temporary and y is
// only combined at the end, so y is never partially mutated before the
// combination step.
//
// Errors: ErrNotMaterialized, ErrNilVector, ErrDimensionMismatch.
// Complexity: O(rows + nnz).
func (a *Assembler[T]) MulAdd(alpha T, x []T, beta T, y []T, opts ...MulOption) error {
	o := gatherMulOptions(opts)
	m, view, err := a.snapshot()
	if err != nil {
		return fmt.Errorf("MulAdd: %w", err)
	}

	// Shape validation is unconditional: the short-circuit paths skip
	// work, never the programmer-error checks.
	var op spblas.Triplets[T] = m
	if o.transpose {
		op = view
	}
	rows, cols := op.Dims()
	if err = validateVec(x, cols); err != nil {
		return fmt.Errorf("MulAdd: x: %w", err)
	}
	if err = validateVec(y, rows); err != nil {
		return fmt.Errorf("MulAdd: y: %w", err)
	}

	var zero T
	one := spblas.FromFloat[T](1)

	if beta == zero {
		// y ← α·(A·x); prior y is never read.
		if alpha != zero {
			if err = a.MulVec(x, y, opts...); err != nil {
				return fmt.Errorf("MulAdd: %w", err)
			}
			if alpha != one {
				spblas.Scale(alpha, y)
			}

			return nil
		}
		// α = β = 0: the update degenerates to zeroing the output.
		for i := range y {
			y[i] = zero
		}

		return nil
	}

	// β ≠ 0: accumulate the product separately, combine at the end.
	tmp := make([]T, rows)
	if alpha != zero {
		if err = a.MulVec(x, tmp, opts...); err != nil {
			return fmt.Errorf("MulAdd: %w", err)
		}
		if alpha != one {
			spblas.Scale(alpha, tmp)
		}
	}
	if beta != one {
		spblas.Scale(beta, y)
	}
	for i := range y {
		y[i] += tmp[i]
	}

	return nil
}

// SpectralRadius estimates the largest-magnitude eigenvalue of the frozen
// matrix. WithSymmetric enables the Lanczos path; WithIterations bounds
// the recurrence (default DefaultSpectralIterations). The estimate is
// always returned — exhausting the iterations degrades accuracy only.
//
// Errors: ErrNotMaterialized; spblas.ErrShapeMismatch for a non-square
// matrix.
// Complexity: O(k·nnz).
func (a *Assembler[T]) SpectralRadius(opts ...SpectralOption) (float64, error) {
	o := gatherSpectralOptions(opts)
	m, _, err := a.snapshot()
	if err != nil {
		return 0, fmt.Errorf("SpectralRadius: %w", err)
	}

	radius, err := spblas.SpectralRadius[T](m, o.iterations, o.symmetric)
	if err != nil {
		return 0, fmt.Errorf("SpectralRadius: %w", err)
	}

	return radius, nil
}

// Solve runs restarted GMRES on A·x ≈ b, updating x in place from its
// current content (the initial guess), and returns the achieved residual
// norm. Convergence policy belongs to the solver: hitting the iteration
// cap reports the residual reached, it never errors — inspect the return
// value against your tolerance if you need to distinguish.
//
// Errors: ErrNotMaterialized, ErrNilVector, ErrDimensionMismatch;
// spblas.ErrShapeMismatch for a non-square matrix.
// Complexity: O(maxiter·(nnz + restart·n)).
func (a *Assembler[T]) Solve(x, b []T, opts ...SolveOption) (float64, error) {
	o := gatherSolveOptions(opts)
	m, _, err := a.snapshot()
	if err != nil {
		return 0, fmt.Errorf("Solve: %w", err)
	}
	if err = validateVec(x, m.numCols); err != nil {
		return 0, fmt.Errorf("Solve: x: %w", err)
	}
	if err = validateVec(b, m.numRows); err != nil {
		return 0, fmt.Errorf("Solve: b: %w", err)
	}

	mon := spblas.NewMonitor(spblas.Norm(b), o.maxIterations, o.tolerance, o.verbose)
	if err = spblas.GMRES(m, x, b, o.restart, mon); err != nil {
		return 0, fmt.Errorf("Solve: %w", err)
	}

	return mon.ResidualNorm(), nil
}

// conjugateInPlace flips every value to its conjugate; calling it twice
// restores the original contents.
func conjugateInPlace[T Scalar](vals []T) {
	for i := range vals {
		vals[i] = spblas.Conj(vals[i])
	}
}
