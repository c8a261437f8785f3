// Package spblas_test verifies spectral-radius estimation on both the
// Lanczos (symmetric) and power-iteration (general) paths.
package spblas_test

import (
	"testing"

	"github.com/katalvlaran/lvlsparse/spblas"
	"github.com/stretchr/testify/require"
)

// TestSpectralRadiusSymmetricDiagonal checks the Lanczos path on a matrix
// whose spectrum is known exactly.
func TestSpectralRadiusSymmetricDiagonal(t *testing.T) {
	m := &tripletList[float64]{r: 3, c: 3} // diag(1, 2, 3), eigenvalues 1, 2, 3
	m.add(0, 0, 1)
	m.add(1, 1, 2)
	m.add(2, 2, 3)

	rho, err := spblas.SpectralRadius[float64](m, 10, true)
	require.NoError(t, err)
	require.InDelta(t, 3, rho, 1e-8)
}

// TestSpectralRadiusSymmetricNegative checks that the magnitude of a
// negative extremal eigenvalue is reported.
func TestSpectralRadiusSymmetricNegative(t *testing.T) {
	m := &tripletList[float64]{r: 2, c: 2} // [[0,1],[1,0]], eigenvalues ±1
	m.add(0, 1, 1)
	m.add(1, 0, 1)

	rho, err := spblas.SpectralRadius[float64](m, 10, true)
	require.NoError(t, err)
	require.InDelta(t, 1, rho, 1e-8)
}

// TestSpectralRadiusPowerIteration checks the general path on an upper
// triangular matrix with a clear dominant eigenvalue.
func TestSpectralRadiusPowerIteration(t *testing.T) {
	m := &tripletList[float64]{r: 2, c: 2} // [[2,1],[0,1]], eigenvalues 2, 1
	m.add(0, 0, 2)
	m.add(0, 1, 1)
	m.add(1, 1, 1)

	rho, err := spblas.SpectralRadius[float64](m, 60, false)
	require.NoError(t, err)
	require.InDelta(t, 2, rho, 1e-6)
}

// TestSpectralRadiusDegenerate checks the empty and all-zero operands.
func TestSpectralRadiusDegenerate(t *testing.T) {
	empty := &tripletList[float64]{r: 0, c: 0}
	rho, err := spblas.SpectralRadius[float64](empty, 10, false)
	require.NoError(t, err)
	require.Equal(t, 0.0, rho)

	zero := &tripletList[float64]{r: 3, c: 3} // structurally empty 3x3
	rho, err = spblas.SpectralRadius[float64](zero, 10, false)
	require.NoError(t, err)
	require.Equal(t, 0.0, rho)

	rho, err = spblas.SpectralRadius[float64](zero, 10, true) // Lanczos path
	require.NoError(t, err)
	require.Equal(t, 0.0, rho)
}

// TestSpectralRadiusNonSquare checks the shape guard.
func TestSpectralRadiusNonSquare(t *testing.T) {
	rect := &tripletList[float64]{r: 2, c: 3}
	_, err := spblas.SpectralRadius[float64](rect, 10, false)
	require.ErrorIs(t, err, spblas.ErrShapeMismatch)
}

// TestSpectralRadiusComplexHermitian checks the Lanczos path with a
// Hermitian complex operand.
func TestSpectralRadiusComplexHermitian(t *testing.T) {
	m := &tripletList[complex128]{r: 2, c: 2} // [[0,-i],[i,0]], eigenvalues ±1
	m.add(0, 1, complex(0, -1))
	m.add(1, 0, complex(0, 1))

	rho, err := spblas.SpectralRadius[complex128](m, 10, true)
	require.NoError(t, err)
	require.InDelta(t, 1, rho, 1e-8)
}
