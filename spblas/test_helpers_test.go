// Package spblas_test: shared fixtures for kernel tests.
package spblas_test

import "github.com/katalvlaran/lvlsparse/spblas"

// tripletList is a minimal Triplets implementation for driving kernels
// directly, without the coo assembly layer.
type tripletList[T spblas.Scalar] struct {
	r, c       int
	rows, cols []int
	vals       []T
}

func (m *tripletList[T]) Dims() (rows, cols int) { return m.r, m.c }

func (m *tripletList[T]) NNZ() int { return len(m.vals) }

func (m *tripletList[T]) Entry(k int) (row, col int, val T) {
	return m.rows[k], m.cols[k], m.vals[k]
}

// add appends one entry; fixtures list each coordinate at most once.
func (m *tripletList[T]) add(i, j int, v T) {
	m.rows = append(m.rows, i)
	m.cols = append(m.cols, j)
	m.vals = append(m.vals, v)
}

// dense22 builds the 2x2 fixture [[1,2],[3,4]] used across kernel tests.
func dense22() *tripletList[float64] {
	m := &tripletList[float64]{r: 2, c: 2}
	m.add(0, 0, 1)
	m.add(0, 1, 2)
	m.add(1, 0, 3)
	m.add(1, 1, 4)

	return m
}
