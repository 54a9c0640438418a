// SPDX-License-Identifier: MIT
// Package: kuranet/builder
//
// impl_watts_strogatz.go — WattsStrogatz(n, k, p) small-world constructor.
//
// Canonical model:
//   1) Ring lattice: node u is joined to u+1 … u+k/2 (mod n), so every node
//      has k/2 neighbours on each side.
//   2) Rewiring: lattice edges are visited by offset j = 1..k/2, then by u asc.
//      With probability p the edge (u, u+j) is replaced by (u, w), w drawn
//      uniformly among nodes that are neither u nor already adjacent to u.
//      If u is saturated (degree ≥ n−1) the edge is left in place.
//
// Contract:
//   • n ≥ 1, k ≥ 0, p ∈ [0,1] (else ErrInvalidParameter / ErrInvalidProbability).
//   • k ≥ n yields K_n.
//   • cfg.rng required when p > 0 and the lattice has edges.
//
// Invariants:
//   • Edge count n·(k/2) is preserved by rewiring (degree sum n·2·(k/2)).

package builder

import (
	"fmt"

	"gonum.org/v1/gonum/graph/simple"
)

const (
	methodWattsStrogatz = "WattsStrogatz"
	minWattsStrogatzN   = 1
)

// WattsStrogatz returns a Constructor for the Watts–Strogatz small-world graph.
func WattsStrogatz(n, k int, p float64) Constructor {
	return func(cfg builderConfig) (*simple.UndirectedGraph, error) {
		// 1) Validate.
		if n < minWattsStrogatzN {
			return nil, fmt.Errorf("%s: n=%d < min=%d: %w", methodWattsStrogatz, n, minWattsStrogatzN, ErrInvalidParameter)
		}
		if k < 0 {
			return nil, fmt.Errorf("%s: k=%d < 0: %w", methodWattsStrogatz, k, ErrInvalidParameter)
		}
		if err := validateProbability(methodWattsStrogatz, p); err != nil {
			return nil, err
		}
		g := newNodes(n)
		if k >= n {
			addComplete(g, n)
			return g, nil
		}
		half := k / 2
		if cfg.rng == nil && p > probMin && half > 0 {
			return nil, fmt.Errorf("%s: rng is required: %w", methodWattsStrogatz, ErrNeedRandSource)
		}

		// 2) Ring lattice.
		var u, j int
		for j = 1; j <= half; j++ {
			for u = 0; u < n; u++ {
				link(g, u, (u+j)%n)
			}
		}
		if p == probMin {
			return g, nil
		}

		// 3) Rewire.
		rng := cfg.rng
		for j = 1; j <= half; j++ {
			for u = 0; u < n; u++ {
				if rng.Float64() >= p {
					continue
				}
				v := (u + j) % n
				w := rng.Intn(n)
				rewire := true
				for w == u || g.HasEdgeBetween(int64(u), int64(w)) {
					if degree(g, u) >= n-1 {
						rewire = false
						break
					}
					w = rng.Intn(n)
				}
				if rewire {
					g.RemoveEdge(int64(u), int64(v))
					link(g, u, w)
				}
			}
		}

		return g, nil
	}
}
