// SPDX-License-Identifier: MIT
// Package coo: the compact coordinate-format matrix.
// Three parallel slices in canonical row-major order (row ascending,
// column ascending within a row), no explicit zeros, dimensions inferred
// as max index + 1. A Matrix is immutable once materialized: the
// Assembler replaces it wholesale, never edits it.

package coo

import (
	"fmt"
	"sort"
	"strings"
)

// Matrix is an immutable compact COO matrix.
// Invariants: len(rows) == len(cols) == len(vals); entries sorted by
// (row, col); every stored value is non-zero; numRows/numCols cover every
// stored index.
type Matrix[T Scalar] struct {
	rows, cols []int // parallel index slices, canonical order
	vals       []T   // parallel value slice
	numRows    int   // 1 + max row index, 0 when empty
	numCols    int   // 1 + max column index, 0 when empty
}

// Dims returns the inferred (rows, cols) extent.
// Complexity: O(1).
func (m *Matrix[T]) Dims() (rows, cols int) {
	return m.numRows, m.numCols
}

// NNZ returns the number of stored (non-zero) entries.
// Complexity: O(1).
func (m *Matrix[T]) NNZ() int {
	return len(m.vals)
}

// Entry returns the k-th stored entry in canonical row-major order.
// It is the Triplets contract the spblas kernels consume; k must satisfy
// 0 ≤ k < NNZ() (kernel loops guarantee this).
// Complexity: O(1).
func (m *Matrix[T]) Entry(k int) (row, col int, val T) {
	return m.rows[k], m.cols[k], m.vals[k]
}

// At returns the value stored at (row, col), or the zero value when no
// entry exists there — sparse semantics, not an error.
// Binary search over the canonical order: the row segment first, then the
// column within it.
// Errors: ErrIndexOutOfRange when (row, col) lies outside Dims().
// Complexity: O(log nnz).
func (m *Matrix[T]) At(row, col int) (T, error) {
	var zero T
	if row < 0 || row >= m.numRows || col < 0 || col >= m.numCols {
		return zero, fmt.Errorf("At(%d,%d): %w", row, col, ErrIndexOutOfRange)
	}

	// Locate the row segment [lo, hi) in the sorted row slice.
	lo := sort.SearchInts(m.rows, row)
	hi := sort.SearchInts(m.rows, row+1)
	if lo == hi {
		return zero, nil // empty row
	}
	// Locate the column within the segment (columns ascend inside a row).
	seg := m.cols[lo:hi]
	j := sort.SearchInts(seg, col)
	if j < len(seg) && seg[j] == col {
		return m.vals[lo+j], nil
	}

	return zero, nil
}

// RowOffsets builds the CSR row-pointer array over the canonical order:
// offsets[i] is the position of row i's first entry, offsets[numRows] is
// NNZ(). Entries of row i live at [offsets[i], offsets[i+1]).
// Complexity: O(numRows + nnz) time and O(numRows) space.
func (m *Matrix[T]) RowOffsets() []int {
	offsets := make([]int, m.numRows+1)
	for _, i := range m.rows {
		offsets[i+1]++
	}
	for i := 0; i < m.numRows; i++ {
		offsets[i+1] += offsets[i]
	}

	return offsets
}

// String implements fmt.Stringer: a header line followed by one
// "(row, col) value" line per entry in canonical order.
// Complexity: O(nnz).
func (m *Matrix[T]) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "sparse coo <%d, %d> with %d entries\n", m.numRows, m.numCols, len(m.vals))
	for k := range m.vals {
		fmt.Fprintf(&b, "  (%d, %d)  %v\n", m.rows[k], m.cols[k], m.vals[k])
	}

	return b.String()
}
