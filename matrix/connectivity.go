// SPDX-License-Identifier: MIT
// Package: matrix
//
// Graph views of a weighted adjacency, backed by gonum/graph.

package matrix

import (
	"fmt"

	"gonum.org/v1/gonum/graph/simple"
	"gonum.org/v1/gonum/graph/topo"
)

const (
	ctxToGraph   = "ToGraph"
	ctxConnected = "Connected"
)

// ToGraph returns the unweighted undirected graph whose edges are the
// positive entries of the upper triangle of adj. Node IDs are row indices.
func ToGraph(adj Matrix) (*simple.UndirectedGraph, error) {
	if err := ValidateNotNil(adj); err != nil {
		return nil, fmt.Errorf("%s: %w", ctxToGraph, err)
	}
	if err := ValidateSquare(adj); err != nil {
		return nil, fmt.Errorf("%s: %w", ctxToGraph, err)
	}
	a, err := toDense(adj)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ctxToGraph, err)
	}
	n := a.r
	g := simple.NewUndirectedGraph()
	for i := 0; i < n; i++ {
		g.AddNode(simple.Node(int64(i)))
	}
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if a.data[i*n+j] > 0 || a.data[j*n+i] > 0 {
				g.SetEdge(simple.Edge{F: simple.Node(int64(i)), T: simple.Node(int64(j))})
			}
		}
	}

	return g, nil
}

// Components returns the number of connected components of the positive-weight graph.
func Components(adj Matrix) (int, error) {
	g, err := ToGraph(adj)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", ctxConnected, err)
	}

	return len(topo.ConnectedComponents(g)), nil
}

// Connected reports whether every node reaches every other node through
// positive-weight entries. A 1×1 matrix is connected.
func Connected(adj Matrix) (bool, error) {
	c, err := Components(adj)
	if err != nil {
		return false, err
	}

	return c == 1, nil
}
