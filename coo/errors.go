// SPDX-License-Identifier: MIT
// Package coo: sentinel error set (unified, consistent).
// This file defines ONLY package-level sentinel errors. All operations
// return these sentinels (wrapped with fmt.Errorf("...: %w") where call
// context helps) and tests match them via errors.Is. No operation panics
// on user-triggered conditions; panics are reserved for nonsensical
// option parameters (programmer error).

package coo

import "errors"

var (
	// ErrIndexOutOfRange indicates a row or column index that is negative
	// or exceeds the 32-bit packing range. Accepting it would silently
	// corrupt the composite key, so Insert/Remove fail fast instead.
	ErrIndexOutOfRange = errors.New("coo: index out of range")

	// ErrNotMaterialized indicates a numeric operation or accessor that
	// requires a frozen matrix was invoked before Materialize (or after
	// Reset).
	ErrNotMaterialized = errors.New("coo: matrix not materialized")

	// ErrStaleView indicates a TransposeView outlived the matrix it
	// borrows from: a later Materialize or Reset replaced the storage.
	ErrStaleView = errors.New("coo: transpose view is stale")

	// ErrDimensionMismatch indicates vector operands whose lengths do not
	// match the matrix dimensions of the requested operation.
	ErrDimensionMismatch = errors.New("coo: dimension mismatch")

	// ErrNilVector indicates a nil vector argument where a (possibly
	// empty) slice is required.
	ErrNilVector = errors.New("coo: nil vector argument")
)
