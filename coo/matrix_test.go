// SPDX-License-Identifier: MIT
// Package coo_test verifies the frozen matrix surface: random access,
// CSR row pointers, and formatting.
package coo_test

import (
	"testing"

	"github.com/katalvlaran/lvlsparse/coo"
	"github.com/stretchr/testify/require"
)

// fixture builds the 3x2 matrix {(0,1)=5, (2,0)=7}; row 1 is empty.
func fixture(t *testing.T) *coo.Matrix[float64] {
	t.Helper()
	a := coo.NewAssembler[float64]()
	require.NoError(t, a.Insert(0, 1, 5))
	require.NoError(t, a.Insert(2, 0, 7))
	m, err := a.Materialize()
	require.NoError(t, err)

	return m
}

// TestMatrixAt checks stored, absent and out-of-range lookups.
func TestMatrixAt(t *testing.T) {
	m := fixture(t)

	v, err := m.At(0, 1)
	require.NoError(t, err)
	require.Equal(t, 5.0, v)

	v, err = m.At(0, 0) // inside dims, no entry: sparse zero
	require.NoError(t, err)
	require.Equal(t, 0.0, v)

	v, err = m.At(1, 1) // empty row
	require.NoError(t, err)
	require.Equal(t, 0.0, v)

	_, err = m.At(3, 0) // beyond dims: an error, not a zero
	require.ErrorIs(t, err, coo.ErrIndexOutOfRange)
	_, err = m.At(0, -1)
	require.ErrorIs(t, err, coo.ErrIndexOutOfRange)
}

// TestMatrixRowOffsets checks the CSR pointer array, empty row included.
func TestMatrixRowOffsets(t *testing.T) {
	m := fixture(t)
	require.Equal(t, []int{0, 1, 1, 2}, m.RowOffsets())

	// Degenerate: the empty matrix yields the single-zero pointer array.
	a := coo.NewAssembler[float64]()
	empty, err := a.Materialize()
	require.NoError(t, err)
	require.Equal(t, []int{0}, empty.RowOffsets())
}

// TestMatrixEntryOrder checks the canonical traversal the kernels rely on.
func TestMatrixEntryOrder(t *testing.T) {
	m := fixture(t)
	require.Equal(t, 2, m.NNZ())

	r, c, v := m.Entry(0)
	require.Equal(t, 0, r)
	require.Equal(t, 1, c)
	require.Equal(t, 5.0, v)

	r, c, v = m.Entry(1)
	require.Equal(t, 2, r)
	require.Equal(t, 0, c)
	require.Equal(t, 7.0, v)
}

// TestMatrixString checks the exact rendering.
func TestMatrixString(t *testing.T) {
	m := fixture(t)
	want := "sparse coo <3, 2> with 2 entries\n" +
		"  (0, 1)  5\n" +
		"  (2, 0)  7\n"
	require.Equal(t, want, m.String())
}
