// SPDX-License-Identifier: MIT
// Package matrix — oriented incidence builders (dense) with strict invariants.
//
// Conventions:
//   - Rows are node indices [0, n); columns follow the order of the supplied edges.
//   - Column e carries −1 at Edge.From and +1 at Edge.To, zero elsewhere, so
//     every column sums to zero and (Bᵀθ)_e = θ_To − θ_From.
//   - Self-loops are rejected: they would produce an all-zero column.
//
// Complexity:
//   - NewIncidence: O(n·|E|) time and space (dense storage).
//   - CompleteIncidence: O(n³) (n(n−1)/2 columns of length n).
//   - EdgeIncidence: O(n²) scan + O(n·|E|) fill.

package matrix

import "fmt"

// --- Incidence marks (no magic numbers) ---

const (
	srcMark = -1.0 // −1 at "from"
	dstMark = +1.0 // +1 at "to"
)

const (
	ctxNewIncidence      = "NewIncidence"
	ctxCompleteIncidence = "CompleteIncidence"
	ctxEdgeIncidence     = "EdgeIncidence"
)

// NewIncidence builds the n×len(edges) oriented incidence of the given edges.
// An empty edge list yields a legal n×0 matrix (single-node spanning tree).
//
// Errors:
//   - ErrInvalidDimensions when n <= 0.
//   - ErrOutOfRange for an endpoint outside [0, n).
//   - ErrBadShape for a self-loop (From == To).
func NewIncidence(n int, edges []Edge) (*Dense, error) {
	if n <= 0 {
		return nil, fmt.Errorf("%s: %w", ctxNewIncidence, ErrInvalidDimensions)
	}
	B, err := newDenseZeroOK(n, len(edges))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ctxNewIncidence, err)
	}
	cols := B.c
	for e, ed := range edges {
		if ed.From < 0 || ed.From >= n || ed.To < 0 || ed.To >= n {
			return nil, fmt.Errorf("%s: edge %d (%d→%d): %w", ctxNewIncidence, e, ed.From, ed.To, ErrOutOfRange)
		}
		if ed.From == ed.To {
			return nil, fmt.Errorf("%s: edge %d is a self-loop on %d: %w", ctxNewIncidence, e, ed.From, ErrBadShape)
		}
		B.data[ed.From*cols+e] = srcMark
		B.data[ed.To*cols+e] = dstMark
	}

	return B, nil
}

// CompleteIncidence returns the incidence of every unordered pair (i<j) in
// row-major pair order. Bᵀθ lists all pairwise phase differences, which is
// what the maximum-phase-difference metric is computed from.
func CompleteIncidence(n int) (*Dense, error) {
	if n <= 0 {
		return nil, fmt.Errorf("%s: %w", ctxCompleteIncidence, ErrInvalidDimensions)
	}
	edges := make([]Edge, 0, n*(n-1)/2)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			edges = append(edges, Edge{From: i, To: j})
		}
	}

	return NewIncidence(n, edges)
}

// EdgeIncidence scans the upper triangle of a square adjacency and returns
// the incidence of every positive-weight pair together with the per-column
// weights and the edge list, all in row-major order.
func EdgeIncidence(adj Matrix) (*Dense, []float64, []Edge, error) {
	if err := ValidateNotNil(adj); err != nil {
		return nil, nil, nil, fmt.Errorf("%s: %w", ctxEdgeIncidence, err)
	}
	if err := ValidateSquare(adj); err != nil {
		return nil, nil, nil, fmt.Errorf("%s: %w", ctxEdgeIncidence, err)
	}
	a, err := toDense(adj)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("%s: %w", ctxEdgeIncidence, err)
	}
	n := a.r
	var (
		edges   []Edge
		weights []float64
		w       float64
	)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if w = a.data[i*n+j]; w > 0 {
				edges = append(edges, Edge{From: i, To: j})
				weights = append(weights, w)
			}
		}
	}
	B, err := NewIncidence(n, edges)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("%s: %w", ctxEdgeIncidence, err)
	}

	return B, weights, edges, nil
}
