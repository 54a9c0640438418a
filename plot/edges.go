// SPDX-License-Identifier: MIT
// Package: kuranet/plot

package plot

import (
	"fmt"

	"github.com/katalvlaran/kuranet/cluster"
	"github.com/katalvlaran/kuranet/matrix"
)

// WeightedEdge is one drawn edge.
type WeightedEdge struct {
	From, To int
	// Rel is the weight divided by the largest weight of the matrix.
	Rel float64
	// Damaged marks an intra-cluster edge lighter than 1.
	Damaged bool
}

// NetworkEdges lists the positive upper-triangle entries of adj in row-major
// order.
func NetworkEdges(adj matrix.Matrix, p cluster.Partition) ([]WeightedEdge, error) {
	if err := matrix.ValidateSquare(adj); err != nil {
		return nil, fmt.Errorf("NetworkEdges: %w", err)
	}
	n := adj.Rows()
	if n != p.N() {
		return nil, fmt.Errorf("NetworkEdges: %d nodes, partition covers %d: %w", n, p.N(), matrix.ErrDimensionMismatch)
	}
	_, w, edges, err := matrix.EdgeIncidence(adj)
	if err != nil {
		return nil, fmt.Errorf("NetworkEdges: %w", err)
	}
	maxW := 0.0
	for _, v := range w {
		if v > maxW {
			maxW = v
		}
	}
	out := make([]WeightedEdge, len(edges))
	for e, ed := range edges {
		ki, _ := p.ClusterOf(ed.From)
		kj, _ := p.ClusterOf(ed.To)
		out[e] = WeightedEdge{
			From:    ed.From,
			To:      ed.To,
			Rel:     w[e] / maxW,
			Damaged: ki == kj && w[e] < 1,
		}
	}

	return out, nil
}
