// Package spblas_test verifies the restarted GMRES solver: exact solves
// on small systems, residual reporting at the iteration cap, complex
// systems, and shape validation.
package spblas_test

import (
	"testing"

	"github.com/katalvlaran/lvlsparse/spblas"
	"github.com/stretchr/testify/require"
)

// residual computes ‖b - A·x‖ independently of the solver's own report.
func residual[T spblas.Scalar](t *testing.T, a spblas.Triplets[T], x, b []T) float64 {
	t.Helper()
	r := make([]T, len(b))
	require.NoError(t, spblas.MulVec(a, x, r))
	for i := range r {
		r[i] = b[i] - r[i]
	}

	return spblas.Norm(r)
}

// TestGMRESIdentity checks the trivial system I·x = b: one step, exact.
func TestGMRESIdentity(t *testing.T) {
	m := &tripletList[float64]{r: 3, c: 3}
	m.add(0, 0, 1)
	m.add(1, 1, 1)
	m.add(2, 2, 1)

	b := []float64{1, 2, 3}
	x := make([]float64, 3)
	mon := spblas.NewMonitor(spblas.Norm(b), 100, 1e-10, false)

	require.NoError(t, spblas.GMRES[float64](m, x, b, 3, mon))
	require.True(t, mon.Converged())
	require.InDeltaSlice(t, b, x, 1e-12)
}

// TestGMRESSmallSystem checks a 2x2 nonsymmetric solve to tight tolerance.
func TestGMRESSmallSystem(t *testing.T) {
	m := &tripletList[float64]{r: 2, c: 2} // [[4,1],[1,3]]
	m.add(0, 0, 4)
	m.add(0, 1, 1)
	m.add(1, 0, 1)
	m.add(1, 1, 3)

	b := []float64{1, 2}
	x := make([]float64, 2)
	mon := spblas.NewMonitor(spblas.Norm(b), 100, 1e-10, false)

	require.NoError(t, spblas.GMRES[float64](m, x, b, 2, mon))
	require.True(t, mon.Converged())
	// Exact solution of the system: x = (1/11, 7/11).
	require.InDelta(t, 1.0/11.0, x[0], 1e-8)
	require.InDelta(t, 7.0/11.0, x[1], 1e-8)
	require.Less(t, residual(t, spblas.Triplets[float64](m), x, b), 1e-8)
}

// TestGMRESRestarted checks convergence with a restart length shorter
// than the system dimension.
func TestGMRESRestarted(t *testing.T) {
	const n = 8
	m := &tripletList[float64]{r: n, c: n}
	b := make([]float64, n)
	for i := 0; i < n; i++ {
		m.add(i, i, float64(i+2)) // well-conditioned diagonal
		if i+1 < n {
			m.add(i, i+1, 1)
		}
		b[i] = 1
	}

	x := make([]float64, n)
	mon := spblas.NewMonitor(spblas.Norm(b), 200, 1e-9, false)

	require.NoError(t, spblas.GMRES[float64](m, x, b, 3, mon)) // restart 3 < n
	require.True(t, mon.Converged())
	require.Less(t, residual(t, spblas.Triplets[float64](m), x, b), 1e-7)
}

// TestGMRESReportsResidualAtCap checks the always-report contract: with a
// zero-iteration budget the initial residual comes back and x is untouched.
func TestGMRESReportsResidualAtCap(t *testing.T) {
	m := dense22()
	b := []float64{1, 2}
	x := make([]float64, 2)
	mon := spblas.NewMonitor(spblas.Norm(b), 0, 1e-12, false)

	require.NoError(t, spblas.GMRES[float64](m, x, b, 2, mon))
	require.False(t, mon.Converged())
	require.InDelta(t, spblas.Norm(b), mon.ResidualNorm(), 1e-12) // ‖b - A·0‖ = ‖b‖
	require.Equal(t, []float64{0, 0}, x)
}

// TestGMRESComplexDiagonal checks a complex system end to end, exercising
// the complex-safe Givens rotations.
func TestGMRESComplexDiagonal(t *testing.T) {
	m := &tripletList[complex128]{r: 2, c: 2}
	m.add(0, 0, complex(0, 1)) // i
	m.add(1, 1, complex(0, 2)) // 2i

	b := []complex128{complex(0, 1), complex(0, 4)} // solution (1, 2)
	x := make([]complex128, 2)
	mon := spblas.NewMonitor(spblas.Norm(b), 100, 1e-10, false)

	require.NoError(t, spblas.GMRES[complex128](m, x, b, 2, mon))
	require.True(t, mon.Converged())
	require.InDelta(t, 1, real(x[0]), 1e-8)
	require.InDelta(t, 0, imag(x[0]), 1e-8)
	require.InDelta(t, 2, real(x[1]), 1e-8)
	require.InDelta(t, 0, imag(x[1]), 1e-8)
}

// TestGMRESShapeViolations checks the fail-fast guards.
func TestGMRESShapeViolations(t *testing.T) {
	rect := &tripletList[float64]{r: 3, c: 2}
	err := spblas.GMRES[float64](rect, make([]float64, 2), make([]float64, 3), 2,
		spblas.NewMonitor(1, 10, 1e-6, false))
	require.ErrorIs(t, err, spblas.ErrShapeMismatch)

	m := dense22()
	err = spblas.GMRES[float64](m, make([]float64, 1), make([]float64, 2), 2,
		spblas.NewMonitor(1, 10, 1e-6, false))
	require.ErrorIs(t, err, spblas.ErrShapeMismatch)

	err = spblas.GMRES[float64](m, nil, make([]float64, 2), 2,
		spblas.NewMonitor(1, 10, 1e-6, false))
	require.ErrorIs(t, err, spblas.ErrNilVector)
}
