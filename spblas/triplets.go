// SPDX-License-Identifier: MIT
// Package spblas: the triplet operand contract shared by all kernels.

package spblas

// Triplets is the coordinate-format operand every kernel accepts.
// Both a compact matrix and a permuted transpose view satisfy it, so
// kernels run on either without copying the underlying storage.
//
// Entry order is the operand's own canonical order; MulVec and the Krylov
// kernels only require that every stored entry appears exactly once.
type Triplets[T Scalar] interface {
	// Dims returns the logical (rows, cols) extent of the operand.
	Dims() (rows, cols int)

	// NNZ returns the number of stored entries.
	NNZ() int

	// Entry returns the k-th stored entry, 0 ≤ k < NNZ().
	Entry(k int) (row, col int, val T)
}
