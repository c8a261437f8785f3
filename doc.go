// Package lvlsparse is your in-memory toolkit for assembling sparse matrices
// from concurrent writers and running numeric kernels on the result —
// coordinate-format storage, zero-copy transpose views, and Krylov solvers.
//
// 🚀 What is lvlsparse?
//
//	A thread-safe, generics-based library that brings together:
//		• Concurrent assembly: stage (row, col, value) entries from any
//		  number of goroutines, last write wins, explicit zeros dropped
//		• Compact COO matrices: canonically sorted, dimension-inferred,
//		  immutable snapshots of the staged entry set
//		• Transpose views: column-major traversal through an index
//		  permutation — no second copy of the values
//		• Numeric kernels: matrix-vector multiply, scaled multiply-add,
//		  spectral-radius estimation, restarted GMRES
//
// ✨ Why choose lvlsparse?
//
//   - One assembler, many writers – a single lock serializes staging and
//     materialization; no external coordination needed while building
//   - Real and complex scalars – float32/float64/complex64/complex128
//     through one generic surface, conjugation included
//   - Pure Go – no cgo, no hidden deps
//   - Explicit errors – every degenerate state is a sentinel, never a panic
//
// Everything is organized under two packages:
//
//	coo/    — the assembly layer: Assembler, Matrix, TransposeView, and the
//	          numeric façade (MulVec, MulAdd, SpectralRadius, Solve)
//	spblas/ — the sparse BLAS backend: sort-by-key primitives, the COO
//	          multiply kernel, Lanczos/power spectral estimation, GMRES
//
// Quick sketch:
//
//	a := coo.NewAssembler[float64]()
//	a.Insert(0, 0, 1) ... a.Insert(1, 1, 4)
//	m, _ := a.Materialize()        // sorted, deduplicated, zero-filtered
//	a.MulVec(x, y)                 // y ← A·x
//	a.MulVec(x, y, coo.WithTranspose())
//
//	go get github.com/katalvlaran/lvlsparse
package lvlsparse
