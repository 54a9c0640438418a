// SPDX-License-Identifier: MIT
// Package: matrix
//
// gonum interop and spectral helpers.
//
// Dense keeps its own bounds-checked surface; factorizations are delegated to
// gonum/mat on a copied *mat.Dense so the local numeric policy is never bypassed.

package matrix

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

const (
	ctxToGonum       = "ToGonum"
	ctxFromGonum     = "FromGonum"
	ctxMaxEigenvalue = "MaxEigenvalue"
)

// ToGonum copies m into a new *mat.Dense.
func ToGonum(m Matrix) (*mat.Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, fmt.Errorf("%s: %w", ctxToGonum, err)
	}
	d, err := toDense(m)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ctxToGonum, err)
	}
	if d.r == 0 || d.c == 0 {
		return nil, fmt.Errorf("%s: %w", ctxToGonum, ErrInvalidDimensions)
	}
	buf := make([]float64, len(d.data))
	copy(buf, d.data)

	return mat.NewDense(d.r, d.c, buf), nil
}

// FromGonum copies any gonum matrix into a new *Dense, applying the default
// NaN/Inf policy to every cell.
func FromGonum(g mat.Matrix) (*Dense, error) {
	if g == nil {
		return nil, fmt.Errorf("%s: %w", ctxFromGonum, ErrNilMatrix)
	}
	r, c := g.Dims()
	out, err := NewDense(r, c)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ctxFromGonum, err)
	}
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			if err = out.Set(i, j, g.At(i, j)); err != nil {
				return nil, fmt.Errorf("%s: %w", ctxFromGonum, err)
			}
		}
	}

	return out, nil
}

// MaxEigenvalue returns the largest eigenvalue of a square matrix.
// MAIN DESCRIPTION:
//   - Symmetric input (within DefaultSymmetryTol) goes through mat.EigenSym and
//     the result is exact up to LAPACK accuracy.
//   - Otherwise mat.Eigen is used and the largest real part is returned.
//
// Errors:
//   - ErrNonSquare, ErrNaNInf, ErrEigenFailed.
func MaxEigenvalue(m Matrix) (float64, error) {
	if err := ValidateNotNil(m); err != nil {
		return 0, fmt.Errorf("%s: %w", ctxMaxEigenvalue, err)
	}
	if err := ValidateSquare(m); err != nil {
		return 0, fmt.Errorf("%s: %w", ctxMaxEigenvalue, err)
	}
	if err := ValidateFinite(m); err != nil {
		return 0, fmt.Errorf("%s: %w", ctxMaxEigenvalue, err)
	}
	d, err := toDense(m)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", ctxMaxEigenvalue, err)
	}
	n := d.r

	if ValidateSymmetric(d, DefaultSymmetryTol) == nil {
		sym := mat.NewSymDense(n, append([]float64(nil), d.data...))
		var es mat.EigenSym
		if ok := es.Factorize(sym, false); !ok {
			return 0, fmt.Errorf("%s: %w", ctxMaxEigenvalue, ErrEigenFailed)
		}
		vals := es.Values(nil)

		// EigenSym returns ascending values.
		return vals[len(vals)-1], nil
	}

	g, err := ToGonum(d)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", ctxMaxEigenvalue, err)
	}
	var eig mat.Eigen
	if ok := eig.Factorize(g, mat.EigenNone); !ok {
		return 0, fmt.Errorf("%s: %w", ctxMaxEigenvalue, ErrEigenFailed)
	}
	best := math.Inf(-1)
	for _, v := range eig.Values(nil) {
		if real(v) > best {
			best = real(v)
		}
	}

	return best, nil
}
