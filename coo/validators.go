// SPDX-License-Identifier: MIT
// Package coo: canonical validation helpers.
// Single source of truth for index-range and vector-shape checks so the
// assembler and the numeric façade never duplicate guard logic. All
// checks are pure, deterministic, and allocate nothing.

package coo

import "fmt"

// validateIndex ensures both indices fit the lossless 32-bit packing
// range [0, MaxIndex]. Out-of-range indices would corrupt the composite
// key silently, so they fail fast here instead.
// Errors: ErrIndexOutOfRange.
// Complexity: O(1).
func validateIndex(row, col int) error {
	if row < 0 || int64(row) > MaxIndex {
		return fmt.Errorf("row %d: %w", row, ErrIndexOutOfRange)
	}
	if col < 0 || int64(col) > MaxIndex {
		return fmt.Errorf("col %d: %w", col, ErrIndexOutOfRange)
	}

	return nil
}

// validateVec ensures x is non-nil and has exactly length n.
// Errors: ErrNilVector, ErrDimensionMismatch.
// Complexity: O(1).
func validateVec[T Scalar](x []T, n int) error {
	if x == nil {
		return ErrNilVector
	}
	if len(x) != n {
		return fmt.Errorf("len %d, want %d: %w", len(x), n, ErrDimensionMismatch)
	}

	return nil
}

// aliased reports whether x and y share the same backing storage start.
// The façade uses it to route aliased multiplies through a temporary.
// Complexity: O(1).
func aliased[T Scalar](x, y []T) bool {
	return len(x) > 0 && len(y) > 0 && &x[0] == &y[0]
}
