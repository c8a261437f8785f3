// SPDX-License-Identifier: MIT
package coo_test

import (
	"testing"

	"github.com/katalvlaran/lvlsparse/coo"
	"github.com/stretchr/testify/require"
)

// TestKeyRoundTrip checks lossless packing across the index range,
// boundaries included.
func TestKeyRoundTrip(t *testing.T) {
	cases := [][2]int{
		{0, 0},
		{1, 0},
		{0, 1},
		{123456, 654321},
		{int(coo.MaxIndex), 0},
		{0, int(coo.MaxIndex)},
		{int(coo.MaxIndex), int(coo.MaxIndex)},
	}
	for _, rc := range cases {
		k := coo.NewKey(rc[0], rc[1])
		require.Equal(t, rc[0], k.Row())
		require.Equal(t, rc[1], k.Col())
	}
}

// TestKeyOrdering checks that numeric key order is row-major order: rows
// compare first, columns break ties.
func TestKeyOrdering(t *testing.T) {
	require.Less(t, coo.NewKey(0, 9), coo.NewKey(1, 0)) // row dominates
	require.Less(t, coo.NewKey(1, 0), coo.NewKey(1, 1)) // column breaks ties
}
