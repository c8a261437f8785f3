// SPDX-License-Identifier: MIT
// Package spblas: the Scalar constraint and per-type numeric helpers.
// Conjugation is a capability of the value type: Conj is the complex
// conjugate for complex scalars and the identity for real ones, so kernels
// and façades call it unconditionally instead of branching on concrete
// types at every call site.

package spblas

import (
	"math"
	"math/cmplx"
)

// Scalar enumerates the value types the kernels operate on.
// The set is closed on purpose: every member supports +, -, *, /, == and
// has a well-defined conjugate and magnitude.
type Scalar interface {
	float32 | float64 | complex64 | complex128
}

// Conj returns the complex conjugate of v.
// For real scalars this is the identity; the per-type dispatch happens once
// inside this helper, at instantiation, never in kernel loops' call sites.
// Complexity: O(1).
func Conj[T Scalar](v T) T {
	switch x := any(v).(type) {
	case complex64:
		return any(complex(real(x), -imag(x))).(T)
	case complex128:
		return any(cmplx.Conj(x)).(T)
	default:
		return v // real scalars are self-conjugate
	}
}

// IsComplex reports whether T carries an imaginary component.
// Used to skip conjugation passes entirely for real instantiations.
// Complexity: O(1).
func IsComplex[T Scalar]() bool {
	var z T
	switch any(z).(type) {
	case complex64, complex128:
		return true
	default:
		return false
	}
}

// Abs returns |v| as a float64, regardless of the scalar type.
// Complexity: O(1).
func Abs[T Scalar](v T) float64 {
	switch x := any(v).(type) {
	case float32:
		return math.Abs(float64(x))
	case float64:
		return math.Abs(x)
	case complex64:
		return cmplx.Abs(complex128(x))
	default:
		return cmplx.Abs(any(v).(complex128))
	}
}

// Real returns the real part of v as a float64.
// Complexity: O(1).
func Real[T Scalar](v T) float64 {
	switch x := any(v).(type) {
	case float32:
		return float64(x)
	case float64:
		return x
	case complex64:
		return float64(real(x))
	default:
		return real(any(v).(complex128))
	}
}

// FromFloat converts a real coefficient into the scalar type T.
// This is how kernels build scalars such as 1/‖w‖ without leaving the
// generic surface.
// Complexity: O(1).
func FromFloat[T Scalar](r float64) T {
	var z T
	switch any(z).(type) {
	case float32:
		return any(float32(r)).(T)
	case float64:
		return any(r).(T)
	case complex64:
		return any(complex64(complex(r, 0))).(T)
	default:
		return any(complex(r, 0)).(T)
	}
}

// Dot computes the inner product ⟨x, y⟩ = Σᵢ conj(xᵢ)·yᵢ.
// The first argument is conjugated, matching the Hermitian convention the
// Krylov kernels rely on; for real scalars this is the plain dot product.
// Assumes len(x) == len(y); kernels validate shapes before calling.
// Complexity: O(n).
func Dot[T Scalar](x, y []T) T {
	var sum T
	for i := range x {
		sum += Conj(x[i]) * y[i]
	}

	return sum
}

// Norm computes the Euclidean norm ‖x‖₂ as a float64.
// The accumulation runs in float64 even for float32/complex64 inputs to
// keep residual tracking stable.
// Complexity: O(n).
func Norm[T Scalar](x []T) float64 {
	var sum float64
	var a float64
	for i := range x {
		a = Abs(x[i])
		sum += a * a
	}

	return math.Sqrt(sum)
}

// Scale rescales x in place: xᵢ ← alpha·xᵢ.
// Complexity: O(n).
func Scale[T Scalar](alpha T, x []T) {
	for i := range x {
		x[i] *= alpha
	}
}

// Axpy accumulates y ← y + alpha·x in place.
// Assumes len(x) == len(y); kernels validate shapes before calling.
// Complexity: O(n).
func Axpy[T Scalar](alpha T, x, y []T) {
	for i := range y {
		y[i] += alpha * x[i]
	}
}
