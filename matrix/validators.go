// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Provide a single, canonical source of truth for adjacency validation.
//  - Keep kernels minimal by delegating nil/shape/symmetry/sign checks here.
//  - Return sentinel errors wrapped with the validator tag so call sites can
//    match them with errors.Is.
//
// Determinism & Performance:
//  - All checks are pure and deterministic; none allocate on *Dense.
//  - Symmetry check runs O(n²) on the upper triangle only.
//
// Note:
//  - Composite validators follow a fixed sequence:
//    NotNil → Square → Finite → Symmetric → ZeroDiagonal → NonNegative.

package matrix

import (
	"fmt"
	"math"
)

// DefaultSymmetryTol is the absolute tolerance for |a_ij − a_ji| used by
// ValidateAdjacency. Composed matrices mirror values exactly, so any slack is
// only for hand-edited parameter files.
const DefaultSymmetryTol = 1e-12

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateNotNil ensures the matrix reference is non-nil.
// Returns ErrNilMatrix if m == nil. Use as the first step in composite validations.
func ValidateNotNil(m Matrix) error {
	if m == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}
	if d, ok := m.(*Dense); ok && d == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}

	return nil
}

// ValidateSameShape ensures matrices a and b have equal dimensions.
// Assumes a and b are not nil.
func ValidateSameShape(a, b Matrix) error {
	if a.Rows() != b.Rows() {
		return validatorErrorf("ValidateSameShape: Rows", ErrDimensionMismatch)
	}
	if a.Cols() != b.Cols() {
		return validatorErrorf("ValidateSameShape: Columns", ErrDimensionMismatch)
	}

	return nil
}

// ValidateSquare checks that m is square (Rows == Cols).
// Errors: ErrNonSquare.
func ValidateSquare(m Matrix) error {
	if m.Rows() != m.Cols() {
		return validatorErrorf("ValidateSquare", ErrNonSquare)
	}

	return nil
}

// ValidateVecLen ensures the vector length matches the required size n.
func ValidateVecLen(x []float64, n int) error {
	if x == nil {
		return validatorErrorf("ValidateVecLen", ErrNilMatrix)
	}
	if len(x) != n {
		return validatorErrorf("ValidateVecLen", ErrDimensionMismatch)
	}

	return nil
}

// ValidateFinite rejects NaN and ±Inf anywhere in m.
func ValidateFinite(m Matrix) error {
	var (
		i, j int
		v    float64
		err  error
	)
	for i = 0; i < m.Rows(); i++ {
		for j = 0; j < m.Cols(); j++ {
			if v, err = m.At(i, j); err != nil {
				return validatorErrorf("ValidateFinite", err)
			}
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return validatorErrorf(fmt.Sprintf("ValidateFinite(%d,%d)", i, j), ErrNaNInf)
			}
		}
	}

	return nil
}

// ValidateFiniteVec rejects NaN and ±Inf anywhere in x.
func ValidateFiniteVec(x []float64) error {
	for i, v := range x {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return validatorErrorf(fmt.Sprintf("ValidateFiniteVec[%d]", i), ErrNaNInf)
		}
	}

	return nil
}

// ValidateSymmetric verifies |a_ij − a_ji| ≤ tol for all i<j.
// Assumes m is square.
func ValidateSymmetric(m Matrix, tol float64) error {
	n := m.Rows()
	var (
		i, j   int
		aij    float64
		aji    float64
		errAij error
		errAji error
	)
	for i = 0; i < n; i++ {
		for j = i + 1; j < n; j++ {
			aij, errAij = m.At(i, j)
			aji, errAji = m.At(j, i)
			if errAij != nil || errAji != nil {
				return validatorErrorf("ValidateSymmetric", ErrOutOfRange)
			}
			if math.Abs(aij-aji) > tol {
				return validatorErrorf(fmt.Sprintf("ValidateSymmetric(%d,%d)", i, j), ErrAsymmetry)
			}
		}
	}

	return nil
}

// ValidateZeroDiagonal verifies that every diagonal entry is exactly zero.
// Assumes m is square.
func ValidateZeroDiagonal(m Matrix) error {
	for i := 0; i < m.Rows(); i++ {
		v, err := m.At(i, i)
		if err != nil {
			return validatorErrorf("ValidateZeroDiagonal", err)
		}
		if v != 0 {
			return validatorErrorf(fmt.Sprintf("ValidateZeroDiagonal(%d)", i), ErrNonZeroDiagonal)
		}
	}

	return nil
}

// ValidateNonNegative verifies that no entry is negative.
func ValidateNonNegative(m Matrix) error {
	var (
		i, j int
		v    float64
		err  error
	)
	for i = 0; i < m.Rows(); i++ {
		for j = 0; j < m.Cols(); j++ {
			if v, err = m.At(i, j); err != nil {
				return validatorErrorf("ValidateNonNegative", err)
			}
			if v < 0 {
				return validatorErrorf(fmt.Sprintf("ValidateNonNegative(%d,%d)", i, j), ErrNegativeWeight)
			}
		}
	}

	return nil
}

// ValidateAdjacency runs the full coupling-matrix contract:
// non-nil, square, finite, symmetric within DefaultSymmetryTol, zero diagonal
// and non-negative. The first violation wins.
func ValidateAdjacency(m Matrix) error {
	if err := ValidateNotNil(m); err != nil {
		return err
	}
	checks := []func(Matrix) error{
		ValidateSquare,
		ValidateFinite,
		func(x Matrix) error { return ValidateSymmetric(x, DefaultSymmetryTol) },
		ValidateZeroDiagonal,
		ValidateNonNegative,
	}
	for _, check := range checks {
		if err := check(m); err != nil {
			return validatorErrorf("ValidateAdjacency", err)
		}
	}

	return nil
}
