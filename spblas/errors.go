// SPDX-License-Identifier: MIT
// Package spblas: sentinel error set.
// Kernels return ONLY these sentinels (optionally wrapped with an operation
// tag via fmt.Errorf("...: %w", err)); tests match them with errors.Is.
// Iteration-cap outcomes are results, never errors.

package spblas

import "errors"

var (
	// ErrShapeMismatch indicates incompatible operand shapes: parallel
	// slices of unequal length, a vector that does not match a matrix
	// dimension, or a non-square operand passed to a square-only kernel.
	ErrShapeMismatch = errors.New("spblas: operand shape mismatch")

	// ErrKeyOutOfRange indicates a counting-sort key outside the declared
	// [0, span) range. The caller owns the range precondition.
	ErrKeyOutOfRange = errors.New("spblas: sort key out of declared range")

	// ErrNilVector indicates a nil vector argument where a (possibly
	// empty) slice is required.
	ErrNilVector = errors.New("spblas: nil vector argument")
)
