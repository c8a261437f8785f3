// Package spblas provides the sparse linear-algebra kernels that back the
// coo assembly layer: sort-by-key primitives, the coordinate-format
// matrix-vector multiply, an iterative spectral-radius estimator, and a
// restarted GMRES solver.
//
// 🚀 What is spblas?
//
//	A small, allocation-conscious kernel set over a triplet contract:
//	  • StableSortByKey / CountingSortByKey — the two sorting primitives
//	    needed for row-major canonicalization and transpose permutations
//	  • MulVec — y ← A·x accumulation over any Triplets operand
//	  • SpectralRadius — k-step Lanczos (symmetric hint) or power
//	    iteration estimate of the largest-magnitude eigenvalue
//	  • GMRES — restarted GMRES(m) with complex-safe Givens rotations,
//	    driven by a Monitor (iteration cap, relative tolerance, verbosity)
//
// ⚙️ The Triplets contract:
//
//	Kernels never copy matrix storage. They accept anything satisfying
//	Triplets[T] — dimensions, entry count, and k-th (row, col, value)
//	access — so a compact matrix and a permuted transpose view are
//	interchangeable operands.
//
// Scalars are generic over float32 | float64 | complex64 | complex128;
// conjugation, magnitude, and inner products resolve per type inside the
// Conj/Abs/Dot helpers, so kernel code never branches on concrete types.
//
// Convergence policy: iterative routines always report the estimate or
// residual they reached. Hitting the iteration cap is a result, not an
// error — errors are reserved for shape and range violations.
package spblas
