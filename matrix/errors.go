// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set (unified, consistent).
// This file defines ONLY package-level sentinel errors used across the matrix
// package. Kernels MUST return these sentinels (wrapped with a method tag) and
// tests MUST check them via errors.Is. No kernel panics on user input.

package matrix

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." for consistency and to allow
// easy grepping across logs. Context is attached at the call site with
// fmt.Errorf("<Method>: %w", ErrX); callers match with errors.Is.
//
// ERROR PRIORITY (enforced by validators):
// nil -> shape/index -> NaN/Inf -> structural violations (symmetry, diagonal, sign).

var (
	// ErrBadShape is returned when a requested window or block is invalid.
	ErrBadShape = errors.New("matrix: invalid shape")

	// ErrOutOfRange indicates that an index (row or column) is outside valid bounds.
	// Public indexers (At/Set) MUST return this, not panic.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates incompatible dimensions between operands
	// or between a matrix and a vector.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNonSquare signals that a square matrix was required but the input wasn't.
	ErrNonSquare = errors.New("matrix: matrix is not square")

	// ErrAsymmetry signals that a matrix expected to be symmetric violated symmetry
	// within the tolerance.
	ErrAsymmetry = errors.New("matrix: matrix is not symmetric within eps")

	// ErrNonZeroDiagonal signals that an adjacency matrix carries a self-loop weight.
	ErrNonZeroDiagonal = errors.New("matrix: diagonal not zero within eps")

	// ErrNegativeWeight signals a negative coupling weight in an adjacency matrix.
	ErrNegativeWeight = errors.New("matrix: negative weight")

	// ErrNaNInf signals a NaN or ±Inf value where finite values are required.
	ErrNaNInf = errors.New("matrix: NaN or Inf encountered")

	// ErrNilMatrix indicates that a nil Matrix (receiver or argument) was used.
	ErrNilMatrix = errors.New("matrix: nil receiver")

	// ErrEigenFailed indicates that the eigen decomposition did not converge.
	ErrEigenFailed = errors.New("matrix: eigen decomposition failed")

	// ErrInvalidDimensions indicates that requested matrix dimensions are non-positive.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be > 0")
)
