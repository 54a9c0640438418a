// SPDX-License-Identifier: MIT
// Package matrix — public API facades.
//
// Purpose:
//   - Provide thin entry points for the handful of dense operations the
//     oscillator kernels need (sums, transpose, mat-vec, closeness).
//   - Keep loop orders fixed (i then j) so results are bit-reproducible.
//
// Validation is performed up front; every facade returns sentinel errors
// wrapped with its method tag.

package matrix

import (
	"fmt"
	"math"
)

const (
	ctxTranspose = "Transpose"
	ctxMatVec    = "MatVec"
	ctxRowSums   = "RowSums"
	ctxColSums   = "ColSums"
	ctxAllClose  = "AllClose"
)

// NewZeros returns a new zero-initialized *Dense of size rows×cols.
// It is a thin alias of NewDense with an intention-revealing name.
func NewZeros(rows, cols int) (*Dense, error) {
	return NewDense(rows, cols)
}

// NewIdentity returns I_n (n×n identity; ones on the diagonal, zeros elsewhere).
func NewIdentity(n int) (*Dense, error) {
	I, err := NewDense(n, n)
	if err != nil {
		return nil, err
	}
	for i := 0; i < n; i++ {
		I.data[i*n+i] = 1.0
	}

	return I, nil
}

// NewDiag returns the square matrix with v on its diagonal.
func NewDiag(v []float64) (*Dense, error) {
	n := len(v)
	D, err := NewDense(n, n)
	if err != nil {
		return nil, err
	}
	for i := 0; i < n; i++ {
		if err = D.Set(i, i, v[i]); err != nil {
			return nil, err
		}
	}

	return D, nil
}

// ZerosLike returns a new zero matrix with the same shape as m.
func ZerosLike(m Matrix) (*Dense, error) {
	return newDenseZeroOK(m.Rows(), m.Cols())
}

// Transpose returns mᵀ as a new *Dense.
// Complexity: O(r*c).
func Transpose(m Matrix) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, fmt.Errorf("%s: %w", ctxTranspose, err)
	}
	src, err := toDense(m)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ctxTranspose, err)
	}
	out, err := newDenseZeroOK(src.c, src.r)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ctxTranspose, err)
	}
	out.validateNaNInf = src.validateNaNInf
	var i, j int
	for i = 0; i < src.r; i++ {
		for j = 0; j < src.c; j++ {
			out.data[j*out.c+i] = src.data[i*src.c+j]
		}
	}

	return out, nil
}

// MatVec computes y = m·x.
// Errors: ErrNilMatrix, ErrDimensionMismatch when len(x) != Cols(m).
func MatVec(m Matrix, x []float64) ([]float64, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, fmt.Errorf("%s: %w", ctxMatVec, err)
	}
	if err := ValidateVecLen(x, m.Cols()); err != nil {
		return nil, fmt.Errorf("%s: %w", ctxMatVec, err)
	}
	src, err := toDense(m)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ctxMatVec, err)
	}
	y := make([]float64, src.r)
	var (
		i, j int
		acc  float64
		row  []float64
	)
	for i = 0; i < src.r; i++ {
		acc = 0
		row = src.data[i*src.c : (i+1)*src.c]
		for j = 0; j < src.c; j++ {
			acc += row[j] * x[j]
		}
		y[i] = acc
	}

	return y, nil
}

// RowSums returns Σ_j m[i,j] for every row i (weighted degree for adjacency).
func RowSums(m Matrix) ([]float64, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, fmt.Errorf("%s: %w", ctxRowSums, err)
	}
	ones := make([]float64, m.Cols())
	for j := range ones {
		ones[j] = 1
	}
	s, err := MatVec(m, ones)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ctxRowSums, err)
	}

	return s, nil
}

// ColSums returns Σ_i m[i,j] for every column j.
func ColSums(m Matrix) ([]float64, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, fmt.Errorf("%s: %w", ctxColSums, err)
	}
	src, err := toDense(m)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ctxColSums, err)
	}
	out := make([]float64, src.c)
	var i, j int
	for i = 0; i < src.r; i++ {
		for j = 0; j < src.c; j++ {
			out[j] += src.data[i*src.c+j]
		}
	}

	return out, nil
}

// AllClose reports whether |a_ij − b_ij| ≤ atol + rtol·|b_ij| holds everywhere.
// Errors: ErrDimensionMismatch for different shapes.
func AllClose(a, b Matrix, rtol, atol float64) (bool, error) {
	if err := ValidateNotNil(a); err != nil {
		return false, fmt.Errorf("%s: %w", ctxAllClose, err)
	}
	if err := ValidateNotNil(b); err != nil {
		return false, fmt.Errorf("%s: %w", ctxAllClose, err)
	}
	if err := ValidateSameShape(a, b); err != nil {
		return false, fmt.Errorf("%s: %w", ctxAllClose, err)
	}
	var (
		i, j   int
		av, bv float64
		err    error
	)
	for i = 0; i < a.Rows(); i++ {
		for j = 0; j < a.Cols(); j++ {
			if av, err = a.At(i, j); err != nil {
				return false, err
			}
			if bv, err = b.At(i, j); err != nil {
				return false, err
			}
			if math.Abs(av-bv) > atol+rtol*math.Abs(bv) {
				return false, nil
			}
		}
	}

	return true, nil
}
