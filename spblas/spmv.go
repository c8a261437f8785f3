// SPDX-License-Identifier: MIT
// Package spblas: the coordinate-format matrix-vector multiply kernel.

package spblas

import "fmt"

// MulVec computes y ← A·x by accumulation over the stored entries:
// y is zeroed, then y[row] += val·x[col] for every triplet.
//
// The operand may be a compact matrix or a transpose view; the kernel only
// sees the Triplets contract. x and y must not alias — aliasing safety is
// the façade's responsibility (it routes through a temporary).
//
// Errors: ErrNilVector for nil x/y, ErrShapeMismatch when len(x) != cols
// or len(y) != rows.
// Complexity: O(rows + nnz) time, O(1) extra space.
func MulVec[T Scalar](a Triplets[T], x, y []T) error {
	// Validate operand shapes against the vector lengths.
	if x == nil || y == nil {
		return fmt.Errorf("MulVec: %w", ErrNilVector)
	}
	rows, cols := a.Dims()
	if len(x) != cols {
		return fmt.Errorf("MulVec: len(x)=%d, cols=%d: %w", len(x), cols, ErrShapeMismatch)
	}
	if len(y) != rows {
		return fmt.Errorf("MulVec: len(y)=%d, rows=%d: %w", len(y), rows, ErrShapeMismatch)
	}

	// Zero the accumulator, then scatter-accumulate the triplets.
	var zero T
	for i := range y {
		y[i] = zero
	}
	var (
		i, j int
		v    T
	)
	for k := 0; k < a.NNZ(); k++ {
		i, j, v = a.Entry(k)
		y[i] += v * x[j]
	}

	return nil
}
