// SPDX-License-Identifier: MIT
// Package spblas: the two sorting primitives the assembly layer composes.
// StableSortByKey is a comparison sort over parallel triplet slices;
// CountingSortByKey is the bounded-key stable sort used to build transpose
// permutations. Both are stable — the row-major canonicalization depends
// on composing two stable passes.

package spblas

import (
	"fmt"
	"sort"
)

// keyedTriplets adapts three parallel slices to sort.Interface so a single
// stable sort reorders all of them by the key slice.
type keyedTriplets[T Scalar] struct {
	keys  []int // the sort key (row or column indices)
	other []int // the companion index slice, swapped in lockstep
	vals  []T   // the values, swapped in lockstep
}

func (s *keyedTriplets[T]) Len() int { return len(s.keys) }

func (s *keyedTriplets[T]) Less(i, j int) bool { return s.keys[i] < s.keys[j] }

func (s *keyedTriplets[T]) Swap(i, j int) {
	s.keys[i], s.keys[j] = s.keys[j], s.keys[i]
	s.other[i], s.other[j] = s.other[j], s.other[i]
	s.vals[i], s.vals[j] = s.vals[j], s.vals[i]
}

// StableSortByKey stably sorts the parallel (keys, other, vals) slices
// in place by ascending key, preserving the relative order of equal keys.
//
// Composing two calls yields a lexicographic order: sort by column first,
// then by row, and entries end up row-major with columns ascending inside
// each row.
//
// Errors: ErrShapeMismatch when the slices have unequal lengths.
// Complexity: O(n log n) time, O(1) extra space beyond sort.Stable's.
func StableSortByKey[T Scalar](keys, other []int, vals []T) error {
	// All three slices must describe the same entry set.
	if len(keys) != len(other) || len(keys) != len(vals) {
		return fmt.Errorf("StableSortByKey: %w", ErrShapeMismatch)
	}
	sort.Stable(&keyedTriplets[T]{keys: keys, other: other, vals: vals})

	return nil
}

// CountingSortByKey stably sorts the parallel (keys, vals) int slices in
// place by ascending key, where every key is known to lie in [0, span).
// Passing the identity permutation as vals yields the permutation that
// maps sorted positions back to original positions — exactly what a
// zero-copy transpose view needs.
//
// Errors: ErrShapeMismatch on unequal lengths, ErrKeyOutOfRange when a key
// violates the declared range (including span <= 0 with entries present).
// Complexity: O(n + span) time and space.
func CountingSortByKey(keys, vals []int, span int) error {
	// Parallel slices must agree on length.
	if len(keys) != len(vals) {
		return fmt.Errorf("CountingSortByKey: %w", ErrShapeMismatch)
	}
	// Nothing to do for an empty entry set, whatever the span says.
	if len(keys) == 0 {
		return nil
	}
	if span <= 0 {
		return fmt.Errorf("CountingSortByKey: span %d: %w", span, ErrKeyOutOfRange)
	}

	// Histogram pass; validates the range precondition as it goes.
	counts := make([]int, span+1)
	for _, k := range keys {
		if k < 0 || k >= span {
			return fmt.Errorf("CountingSortByKey: key %d outside [0,%d): %w", k, span, ErrKeyOutOfRange)
		}
		counts[k+1]++
	}
	// Prefix sums turn counts into starting offsets per key.
	for k := 0; k < span; k++ {
		counts[k+1] += counts[k]
	}

	// Stable placement: equal keys keep their original relative order
	// because input positions are visited in ascending order.
	outKeys := make([]int, len(keys))
	outVals := make([]int, len(vals))
	var pos int
	for i, k := range keys {
		pos = counts[k]
		counts[k]++
		outKeys[pos] = k
		outVals[pos] = vals[i]
	}
	copy(keys, outKeys)
	copy(vals, outVals)

	return nil
}
