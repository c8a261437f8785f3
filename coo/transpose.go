// SPDX-License-Identifier: MIT
// Package coo: the zero-copy transpose view.
// The view borrows the compact matrix's parallel slices and owns only a
// permutation (stable counting sort on column index) plus a generation
// tag. Traversing entries through the permutation — with row and column
// swapped — yields the transpose in ITS row-major order, i.e. the source
// matrix column-major. Validity is an explicit relationship: the tag must
// match the owning assembler's current generation.

package coo

// TransposeView is a read-only column-major reinterpretation of a Matrix.
// It satisfies the same Triplets contract as Matrix, so every spblas
// kernel accepts it interchangeably.
type TransposeView[T Scalar] struct {
	src  *Matrix[T]    // borrowed storage; never mutated through the view
	perm []int         // owned permutation into src's entry order
	gen  uint64        // assembler generation this view was built at
	asm  *Assembler[T] // owner, for staleness checks
}

// Dims returns the transposed extent: (cols, rows) of the source matrix.
// Complexity: O(1).
func (v *TransposeView[T]) Dims() (rows, cols int) {
	return v.src.numCols, v.src.numRows
}

// NNZ returns the number of stored entries (shared with the source).
// Complexity: O(1).
func (v *TransposeView[T]) NNZ() int {
	return len(v.perm)
}

// Entry returns the k-th entry of the transpose in its row-major order:
// the permuted source entry with row and column swapped. The value is
// read straight from the source slice — nothing is copied.
// Complexity: O(1).
func (v *TransposeView[T]) Entry(k int) (row, col int, val T) {
	p := v.perm[k]

	return v.src.cols[p], v.src.rows[p], v.src.vals[p]
}

// Validate reports whether the view still describes the assembler's
// current matrix. A Materialize or Reset after this view was obtained
// makes it stale; reading a stale view returns superseded data, so gate
// any direct kernel use on Validate.
// Errors: ErrStaleView when the generation tag no longer matches.
// Complexity: O(1).
func (v *TransposeView[T]) Validate() error {
	if v.asm != nil && v.asm.generation() != v.gen {
		return ErrStaleView
	}

	return nil
}
