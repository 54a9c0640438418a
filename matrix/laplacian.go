// SPDX-License-Identifier: MIT
// Package: matrix
//
// Weighted Laplacian helpers.
//
//	L = diag(colsum(A)) − A
//	A = −L + diag(diag(L))
//
// For a symmetric adjacency the column sums equal the row sums (the weighted
// degrees); the column form is kept so that the mapping is exact for the
// directed coupling matrices hand-edited into parameter files as well.

package matrix

import "fmt"

const (
	ctxLaplacian         = "Laplacian"
	ctxAdjFromLaplacian  = "AdjacencyFromLaplacian"
	ctxCompleteLaplacian = "CompleteLaplacian"
)

// Laplacian returns diag(colsum(A)) − A for a square A.
func Laplacian(adj Matrix) (*Dense, error) {
	if err := ValidateNotNil(adj); err != nil {
		return nil, fmt.Errorf("%s: %w", ctxLaplacian, err)
	}
	if err := ValidateSquare(adj); err != nil {
		return nil, fmt.Errorf("%s: %w", ctxLaplacian, err)
	}
	a, err := toDense(adj)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ctxLaplacian, err)
	}
	deg, err := ColSums(a)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ctxLaplacian, err)
	}
	L := a.clone()
	n := L.r
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			L.data[i*n+j] = 0 - L.data[i*n+j]
		}
		L.data[i*n+i] += deg[i]
	}

	return L, nil
}

// AdjacencyFromLaplacian inverts Laplacian: off-diagonal entries are negated
// and the diagonal is cleared.
func AdjacencyFromLaplacian(lap Matrix) (*Dense, error) {
	if err := ValidateNotNil(lap); err != nil {
		return nil, fmt.Errorf("%s: %w", ctxAdjFromLaplacian, err)
	}
	if err := ValidateSquare(lap); err != nil {
		return nil, fmt.Errorf("%s: %w", ctxAdjFromLaplacian, err)
	}
	l, err := toDense(lap)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ctxAdjFromLaplacian, err)
	}
	A := l.clone()
	n := A.r
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if i == j {
				A.data[i*n+j] = 0
				continue
			}
			A.data[i*n+j] = 0 - A.data[i*n+j]
		}
	}

	return A, nil
}

// CompleteLaplacian returns I − 1·wᵀ, the Laplacian-like operator of the
// all-to-all averaging input where w holds per-node averaging weights that
// sum to one.
func CompleteLaplacian(w []float64) (*Dense, error) {
	n := len(w)
	if n == 0 {
		return nil, fmt.Errorf("%s: %w", ctxCompleteLaplacian, ErrInvalidDimensions)
	}
	if err := ValidateFiniteVec(w); err != nil {
		return nil, fmt.Errorf("%s: %w", ctxCompleteLaplacian, err)
	}
	L, err := NewDense(n, n)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ctxCompleteLaplacian, err)
	}
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			L.data[i*n+j] = 0 - w[j]
		}
		L.data[i*n+i] += 1
	}

	return L, nil
}
