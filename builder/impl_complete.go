// SPDX-License-Identifier: MIT
// Package: kuranet/builder
//
// impl_complete.go — implementation of Complete(n) constructor.
//
// Contract:
//   • n ≥ 1 (else ErrInvalidParameter).
//   • Emits each unordered pair {i,j} with i<j exactly once.
//   • Deterministic: no RNG is consumed.
//
// Complexity:
//   • Time: O(n²) edges emission. Space: O(n²) edges in the graph.

package builder

import (
	"fmt"

	"gonum.org/v1/gonum/graph/simple"
)

// File-local constants for method tagging and parameter minima (no magic numbers).
const (
	methodComplete   = "Complete"
	minCompleteNodes = 1
)

// Complete returns a Constructor that builds the complete simple graph K_n.
func Complete(n int) Constructor {
	return func(_ builderConfig) (*simple.UndirectedGraph, error) {
		if n < minCompleteNodes {
			return nil, fmt.Errorf("%s: n=%d < min=%d: %w", methodComplete, n, minCompleteNodes, ErrInvalidParameter)
		}
		g := newNodes(n)
		addComplete(g, n)

		return g, nil
	}
}

// addComplete links every unordered pair among nodes 0..n−1.
func addComplete(g *simple.UndirectedGraph, n int) {
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			link(g, i, j)
		}
	}
}
