// SPDX-License-Identifier: MIT
// Package: kuranet/builder
//
// impl_random_sparse.go - implementation of RandomSparse(n, p) constructor.
//
// Canonical model:
//   - Erdős–Rényi generator: include each unordered pair {i,j}, i<j,
//     independently with probability p.
//
// Contract:
//   - n ≥ 1 (else ErrInvalidParameter).
//   - 0 ≤ p ≤ 1 (else ErrInvalidProbability).
//   - cfg.rng must be non-nil when 0 < p < 1 (else ErrNeedRandSource).
//
// Determinism:
//   - Stable edge-trial order: for each i asc, j asc (j>i).

package builder

import (
	"fmt"

	"gonum.org/v1/gonum/graph/simple"
)

const (
	methodRandomSparse      = "RandomSparse"
	minRandomSparseVertices = 1
	probMin                 = 0.0
	probMax                 = 1.0
)

// RandomSparse returns a Constructor that samples a G(n, p) graph.
func RandomSparse(n int, p float64) Constructor {
	return func(cfg builderConfig) (*simple.UndirectedGraph, error) {
		// 1) Validate parameters early.
		if n < minRandomSparseVertices {
			return nil, fmt.Errorf("%s: n=%d < min=%d: %w",
				methodRandomSparse, n, minRandomSparseVertices, ErrInvalidParameter)
		}
		if err := validateProbability(methodRandomSparse, p); err != nil {
			return nil, err
		}
		if cfg.rng == nil && p > probMin && p < probMax {
			return nil, fmt.Errorf("%s: rng is required: %w", methodRandomSparse, ErrNeedRandSource)
		}

		// 2) Bernoulli trial per pair; p ∈ {0,1} is decided without the RNG.
		g := newNodes(n)
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				switch {
				case p == probMax:
					link(g, i, j)
				case p == probMin:
				case cfg.rng.Float64() < p:
					link(g, i, j)
				}
			}
		}

		return g, nil
	}
}
