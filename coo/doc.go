// Package coo assembles sparse matrices in coordinate format from
// concurrent writers and exposes numeric operations on the result.
//
// 🚀 What is coo?
//
//	The assembly layer of lvlsparse:
//	  • Assembler — a thread-safe staging area for (row, col, value)
//	    entries: Insert overwrites (last write wins), Remove drops,
//	    explicit zeros are filtered at materialization, not at insertion
//	  • Materialize — freezes the staged set into an immutable Matrix:
//	    deduplicated, zero-filtered, canonically sorted (row-major via two
//	    composed stable sorts), with dimensions inferred as max index + 1
//	  • TransposeView — column-major traversal of the same storage through
//	    a counting-sort permutation; no value is ever copied
//	  • Numeric façade — MulVec, MulAdd, SpectralRadius, Solve, delegating
//	    the kernels to spblas
//
// ⚙️ Lifecycle:
//
//	Empty → staging (Insert/Remove) → Materialize → staging again
//	(the store is drained on materialization, so new entries accumulate
//	toward a future matrix) → Reset back to Empty.
//
//	Materializing or resetting bumps the assembler generation; a
//	TransposeView held across that boundary reports ErrStaleView instead
//	of silently reading superseded data.
//
// 🔒 Concurrency contract:
//
//	Insert, Remove, Materialize, Reset and the dimension accessors are
//	serialized by one internal lock — call them from as many goroutines
//	as you like. The numeric operations deliberately take no lock: they
//	read the frozen matrix directly for performance. Do not overlap them
//	with Materialize/Reset on the same assembler without external
//	synchronization.
//
// Degenerate cases are results, not failures: materializing zero surviving
// entries yields a valid 0×0 matrix, and a solver hitting its iteration
// cap reports the residual it reached.
package coo
