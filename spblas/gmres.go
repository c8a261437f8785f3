// SPDX-License-Identifier: MIT
// Package spblas: restarted GMRES over the Triplets contract.
// Arnoldi builds the Krylov basis with modified Gram-Schmidt; the
// least-squares problem is kept triangular with Givens rotations whose
// complex-safe form covers every Scalar instantiation.

package spblas

import (
	"fmt"
	"math"
)

// GMRES solves A·x ≈ b with the restarted GMRES(restart) method, updating
// x in place from its current content (x is the initial guess).
//
// The monitor owns the stopping policy; every Arnoldi step records one
// residual with mon.Finished. When the iteration cap is reached the
// current correction is still applied, so x and mon.ResidualNorm() always
// describe the best iterate produced — slow convergence is never an error.
//
// restart is clamped to [1, n]; a non-positive value means "no restarting"
// (full-memory GMRES over n steps).
//
// Errors: ErrShapeMismatch for a non-square operand or mismatched vector
// lengths, ErrNilVector for nil vectors.
// Complexity: O(maxiter·(nnz + restart·n)) time, O(restart·n) space.
func GMRES[T Scalar](a Triplets[T], x, b []T, restart int, mon *Monitor) error {
	// Validate: square operand, conformable vectors.
	if x == nil || b == nil {
		return fmt.Errorf("GMRES: %w", ErrNilVector)
	}
	rows, cols := a.Dims()
	if rows != cols {
		return fmt.Errorf("GMRES: non-square %dx%d operand: %w", rows, cols, ErrShapeMismatch)
	}
	n := rows
	if len(x) != n || len(b) != n {
		return fmt.Errorf("GMRES: len(x)=%d, len(b)=%d, n=%d: %w", len(x), len(b), n, ErrShapeMismatch)
	}
	if restart <= 0 || restart > n {
		restart = n
	}

	r := make([]T, n)
	for {
		// Outer cycle: residual r = b - A·x and its norm seed the basis.
		if err := MulVec(a, x, r); err != nil {
			return err
		}
		for i := range r {
			r[i] = b[i] - r[i]
		}
		beta := Norm(r)
		if mon.Finished(beta) {
			return nil
		}

		// Arnoldi workspace for this cycle. H is (restart+1)×restart in
		// column-major use: H[i][j] multiplies basis vector i in column j.
		basis := make([][]T, restart+1)
		basis[0] = make([]T, n)
		copy(basis[0], r)
		Scale(FromFloat[T](1/beta), basis[0])

		hess := make([][]T, restart+1)
		for i := range hess {
			hess[i] = make([]T, restart)
		}
		g := make([]T, restart+1) // rotated residual vector
		g[0] = FromFloat[T](beta)
		cs := make([]float64, restart) // Givens cosines (real by construction)
		sn := make([]T, restart)       // Givens sines

		var (
			steps = 0     // Arnoldi columns completed this cycle
			done  = false // monitor said stop (converged or capped)
			w     = make([]T, n)
			h     T
			hn    float64
			c     T
		)
		for j := 0; j < restart; j++ {
			// Expand the Krylov basis: w = A·v_j, orthogonalized against
			// the existing basis (modified Gram-Schmidt).
			if err := MulVec(a, basis[j], w); err != nil {
				return err
			}
			for i := 0; i <= j; i++ {
				h = Dot(basis[i], w)
				hess[i][j] = h
				Axpy(-h, basis[i], w)
			}
			hn = Norm(w)
			hess[j+1][j] = FromFloat[T](hn)
			if hn != 0 {
				basis[j+1] = make([]T, n)
				copy(basis[j+1], w)
				Scale(FromFloat[T](1/hn), basis[j+1])
			}

			// Apply the accumulated rotations to the new column, then
			// zero its subdiagonal with a fresh rotation.
			for i := 0; i < j; i++ {
				c = FromFloat[T](cs[i])
				h1, h2 := hess[i][j], hess[i+1][j]
				hess[i][j] = c*h1 + sn[i]*h2
				hess[i+1][j] = -Conj(sn[i])*h1 + c*h2
			}
			cs[j], sn[j] = givens(hess[j][j], hess[j+1][j])
			c = FromFloat[T](cs[j])
			hess[j][j] = c*hess[j][j] + sn[j]*hess[j+1][j]
			var zero T
			hess[j+1][j] = zero
			g[j+1] = -Conj(sn[j]) * g[j]
			g[j] = c * g[j]

			steps = j + 1
			resid := Abs(g[j+1])
			if hn == 0 {
				// Happy breakdown: the Krylov space is invariant, the
				// correction below is exact.
				done = true
				_ = mon.Finished(resid)
				break
			}
			if mon.Finished(resid) {
				done = true
				break
			}
		}

		// Back substitution on the leading triangle, then x += V·y.
		y := make([]T, steps)
		var sum T
		for i := steps - 1; i >= 0; i-- {
			sum = g[i]
			for k := i + 1; k < steps; k++ {
				sum -= hess[i][k] * y[k]
			}
			var zero T
			if hess[i][i] != zero {
				y[i] = sum / hess[i][i]
			}
		}
		for i := 0; i < steps; i++ {
			Axpy(y[i], basis[i], x)
		}
		if done {
			return nil
		}
	}
}

// givens builds the rotation annihilating h2 against h1: the returned
// (cs, sn) satisfy cs·h1 + sn·h2 = t with t real-positive magnitude and
// -conj(sn)·h1 + cs·h2 = 0. cs is real for every Scalar instantiation.
// Complexity: O(1).
func givens[T Scalar](h1, h2 T) (float64, T) {
	a1, a2 := Abs(h1), Abs(h2)
	if a2 == 0 {
		return 1, FromFloat[T](0)
	}
	if a1 == 0 {
		return 0, FromFloat[T](1)
	}
	t := math.Hypot(a1, a2)
	cs := a1 / t
	sn := h1 / FromFloat[T](a1) * Conj(h2) / FromFloat[T](t)

	return cs, sn
}
