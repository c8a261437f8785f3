// SPDX-License-Identifier: MIT
// Package coo: the staged entry store.
// A plain map from composite key to value: insertion overwrites (last
// write wins), removal is a no-op for absent keys, and no ordering among
// keys is meaningful. The Assembler serializes every access; the store
// itself carries no synchronization.

package coo

import "github.com/katalvlaran/lvlsparse/spblas"

// Scalar re-exports the spblas value-type constraint so assembly code
// needs a single import.
type Scalar = spblas.Scalar

// entryStore holds the staged, possibly-overwritten entry set keyed by
// packed coordinate. Zero values are stored as-is and filtered during
// materialization, matching the documented overwrite semantics
// (v then 0 at the same coordinate must yield no entry).
type entryStore[T Scalar] map[Key]T

// newEntryStore returns an empty store with fresh backing storage.
func newEntryStore[T Scalar]() entryStore[T] {
	return make(entryStore[T])
}

// insert stores or overwrites the value at the packed coordinate.
// Complexity: O(1) amortized.
func (s entryStore[T]) insert(k Key, v T) {
	s[k] = v
}

// remove deletes the coordinate if present; no-op otherwise.
// Complexity: O(1) amortized.
func (s entryStore[T]) remove(k Key) {
	delete(s, k)
}

// count returns the number of staged entries, zeros included.
// Complexity: O(1).
func (s entryStore[T]) count() int {
	return len(s)
}
