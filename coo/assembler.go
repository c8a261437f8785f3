// SPDX-License-Identifier: MIT
// Package coo: the concurrent assembler.
// One exclusive lock serializes staging mutations, materialization, reset
// and introspection. Materialization drains the store into exact-size
// parallel slices, filters explicit zeros, canonicalizes order with two
// composed stable sorts, infers dimensions, and derives the transpose
// permutation — then swaps the new matrix in wholesale so the old storage
// is released rather than left referenced by a stale snapshot.

package coo

import (
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/katalvlaran/lvlsparse/spblas"
)

// Assembler is the shared mutable instance host code inserts into and
// materializes from. The zero value is not usable; construct with
// NewAssembler.
//
// Staging and materialization are safe for any number of goroutines. The
// numeric façade methods (MulVec, MulAdd, SpectralRadius, Solve) read the
// frozen matrix without taking the lock — see the package documentation
// for the caller contract.
type Assembler[T Scalar] struct {
	mu      sync.Mutex        // serializes staging, materialize, reset, introspection
	entries entryStore[T]     // staged entry set; drained by Materialize
	mat     *Matrix[T]        // current frozen matrix, nil before first Materialize
	view    *TransposeView[T] // transpose view over mat, rebuilt with it
	gen     atomic.Uint64     // bumped by Materialize and Reset; tags views
}

// NewAssembler creates an empty assembler in the staging state.
// Complexity: O(1).
func NewAssembler[T Scalar]() *Assembler[T] {
	return &Assembler[T]{entries: newEntryStore[T]()}
}

// Insert stages value v at (row, col), overwriting any prior value there
// (last write wins). Zero values are accepted and stored — filtering
// happens at materialization, so a zero overwrite erases an earlier
// non-zero entry as required.
// Errors: ErrIndexOutOfRange when an index is negative or exceeds MaxIndex.
// Complexity: O(1) amortized, lock held for the duration of the call.
func (a *Assembler[T]) Insert(row, col int, v T) error {
	if err := validateIndex(row, col); err != nil {
		return fmt.Errorf("Insert: %w", err)
	}
	k := NewKey(row, col)

	a.mu.Lock()
	a.entries.insert(k, v)
	a.mu.Unlock()

	return nil
}

// Remove drops the staged entry at (row, col) if present; no-op otherwise.
// Errors: ErrIndexOutOfRange when an index is negative or exceeds MaxIndex.
// Complexity: O(1) amortized, lock held for the duration of the call.
func (a *Assembler[T]) Remove(row, col int) error {
	if err := validateIndex(row, col); err != nil {
		return fmt.Errorf("Remove: %w", err)
	}
	k := NewKey(row, col)

	a.mu.Lock()
	a.entries.remove(k)
	a.mu.Unlock()

	return nil
}

// Staged returns the number of currently staged entries, zeros included.
// Complexity: O(1), locked.
func (a *Assembler[T]) Staged() int {
	a.mu.Lock()
	defer a.mu.Unlock()

	return a.entries.count()
}

// Materialize freezes the staged entry set into a new immutable Matrix,
// replacing any previous one and invalidating its transpose view.
//
// Policy for zero surviving entries (all staged values were zero, or
// nothing was staged): the result is a valid 0×0 matrix with no entries —
// never an error. Dimensions are otherwise inferred as 1 + the maximum
// index present.
//
// The staged store is drained: after Materialize the assembler is back in
// the staging state with fresh (empty) backing storage, and new inserts
// accumulate toward a future matrix.
// Complexity: O(nnz log nnz), lock held for the whole pass.
func (a *Assembler[T]) Materialize() (*Matrix[T], error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	// Count survivors first so the parallel slices are exact-size —
	// the shrink-to-fit step and the staging copy in one pass each.
	var zero T
	nnz := 0
	for _, v := range a.entries {
		if v != zero {
			nnz++
		}
	}

	rows := make([]int, 0, nnz)
	cols := make([]int, 0, nnz)
	vals := make([]T, 0, nnz)
	for k, v := range a.entries {
		if v == zero {
			continue // explicit zeros never reach the matrix
		}
		rows = append(rows, k.Row())
		cols = append(cols, k.Col())
		vals = append(vals, v)
	}
	// Replace the store wholesale: the old map's backing storage is
	// released now that the triplets are copied out.
	a.entries = newEntryStore[T]()

	// Canonical row-major order via two composed stable sorts:
	// by column first, then by row — column order survives within a row.
	if err := spblas.StableSortByKey(cols, rows, vals); err != nil {
		return nil, fmt.Errorf("Materialize: %w", err)
	}
	if err := spblas.StableSortByKey(rows, cols, vals); err != nil {
		return nil, fmt.Errorf("Materialize: %w", err)
	}

	// Dimensions: 1 + max index. rows is sorted ascending, so its last
	// element is the maximum; cols needs a scan.
	numRows, numCols := 0, 0
	if nnz > 0 {
		numRows = rows[nnz-1] + 1
		for _, c := range cols {
			if c >= numCols {
				numCols = c + 1
			}
		}
	}

	m := &Matrix[T]{rows: rows, cols: cols, vals: vals, numRows: numRows, numCols: numCols}

	// Transpose permutation: stable counting sort of the column indices
	// carries the identity permutation into column-major visit order.
	perm := make([]int, nnz)
	for i := range perm {
		perm[i] = i
	}
	if nnz > 0 {
		keys := make([]int, nnz)
		copy(keys, cols)
		if err := spblas.CountingSortByKey(keys, perm, numCols); err != nil {
			return nil, fmt.Errorf("Materialize: %w", err)
		}
	}

	gen := a.gen.Add(1)
	a.mat = m
	a.view = &TransposeView[T]{src: m, perm: perm, gen: gen, asm: a}

	return m, nil
}

// Reset atomically discards the staged store, the frozen matrix and its
// transpose view, returning the assembler to the initial empty state.
// Held views become stale. Resetting an already-empty assembler is a
// (cheap) no-op apart from the generation bump.
// Complexity: O(1), locked.
func (a *Assembler[T]) Reset() {
	a.mu.Lock()
	defer a.mu.Unlock()

	a.entries = newEntryStore[T]()
	a.mat = nil
	a.view = nil
	a.gen.Add(1)
}

// Matrix returns the current frozen matrix.
// Errors: ErrNotMaterialized before the first Materialize or after Reset.
// Complexity: O(1), locked.
func (a *Assembler[T]) Matrix() (*Matrix[T], error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.mat == nil {
		return nil, ErrNotMaterialized
	}

	return a.mat, nil
}

// View returns the transpose view over the current frozen matrix. The
// view stays valid until the next Materialize or Reset; after that its
// Validate method reports ErrStaleView.
// Errors: ErrNotMaterialized before the first Materialize or after Reset.
// Complexity: O(1), locked.
func (a *Assembler[T]) View() (*TransposeView[T], error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.view == nil {
		return nil, ErrNotMaterialized
	}

	return a.view, nil
}

// NumRows returns the frozen matrix's row count, 0 when unmaterialized.
// Complexity: O(1), locked.
func (a *Assembler[T]) NumRows() int {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.mat == nil {
		return 0
	}

	return a.mat.numRows
}

// NumCols returns the frozen matrix's column count, 0 when unmaterialized.
// Complexity: O(1), locked.
func (a *Assembler[T]) NumCols() int {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.mat == nil {
		return 0
	}

	return a.mat.numCols
}

// NNZ returns the frozen matrix's entry count, 0 when unmaterialized.
// Complexity: O(1), locked.
func (a *Assembler[T]) NNZ() int {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.mat == nil {
		return 0
	}

	return len(a.mat.vals)
}

// String implements fmt.Stringer, delegating to the frozen matrix's
// formatter; an unmaterialized assembler renders a placeholder header.
// Complexity: O(nnz), locked.
func (a *Assembler[T]) String() string {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.mat == nil {
		return fmt.Sprintf("sparse coo <unmaterialized> with %d staged entries\n", a.entries.count())
	}

	return a.mat.String()
}

// generation exposes the current generation to view staleness checks.
// Reads are atomic so Validate never needs the assembler lock.
func (a *Assembler[T]) generation() uint64 {
	return a.gen.Load()
}

// snapshot grabs the current matrix and view for a numeric operation.
// Deliberately lock-free: numeric kernels read the frozen storage
// directly, and overlapping them with Materialize/Reset is a documented
// caller violation rather than something this layer serializes.
func (a *Assembler[T]) snapshot() (*Matrix[T], *TransposeView[T], error) {
	m, v := a.mat, a.view
	if m == nil || v == nil {
		return nil, nil, ErrNotMaterialized
	}

	return m, v, nil
}
