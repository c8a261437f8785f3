// SPDX-License-Identifier: MIT
// Package coo: the composite key codec.
// A (row, col) pair packs into one uint64 — row in the high 32 bits, col
// in the low 32 — giving the entry store a compact, hash-friendly map key.
// The packing is lossless for indices in [0, 2³²); validateIndex enforces
// that precondition at the mutation boundary so decoding can never
// misattribute an entry. Only uniqueness is relied upon: canonical
// ordering is produced by explicit sorts, never by key comparison.

package coo

// MaxIndex is the largest row or column index the composite key encodes
// losslessly. Indices beyond it are rejected with ErrIndexOutOfRange.
const MaxIndex int64 = 1<<32 - 1

// Key is a packed (row, col) coordinate: row<<32 | col.
type Key uint64

// NewKey packs a validated (row, col) pair into a Key.
// Callers must have passed the pair through validateIndex first; NewKey
// itself performs no checks (it sits on the hot insert path).
// Complexity: O(1).
func NewKey(row, col int) Key {
	return Key(uint64(row)<<32 | uint64(col))
}

// Row decodes the row index from the high 32 bits.
// Complexity: O(1).
func (k Key) Row() int {
	return int(k >> 32)
}

// Col decodes the column index from the low 32 bits.
// Complexity: O(1).
func (k Key) Col() int {
	return int(uint32(k))
}
