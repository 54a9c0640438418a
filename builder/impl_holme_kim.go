// SPDX-License-Identifier: MIT
// Package: kuranet/builder
//
// impl_holme_kim.go — HolmeKim(n, n0, k, p) clustered scale-free constructor.
//
// Canonical model:
//   1) Seed: complete graph on nodes 0..n0−1.
//   2) Growth: for s = n0..n−1, node s first links to a target chosen with
//      probability proportional to degree among the existing nodes.
//   3) Then k−1 more links, each one either
//        • (prob. p) a triad-formation step: a uniformly chosen neighbour of the
//          first target that is not yet linked to s, or
//        • a preferential step: degree-weighted among existing nodes other than
//          the first target and not yet linked to s.
//      A triad step without remaining candidates falls back to a preferential step.
//
// Contract:
//   • n0 ≥ 2, 1 ≤ k ≤ n0, n ≥ n0, p ∈ [0,1] (else ErrInvalidParameter).
//   • cfg.rng required whenever a node is grown (n > n0).
//
// Invariants:
//   • |E| = n0(n0−1)/2 + (n−n0)·k (no duplicate links, no self-loops).
//
// Complexity:
//   • O((n−n0)·k·n) time: each preferential draw rebuilds a cumulative table.

package builder

import (
	"fmt"
	"math/rand"
	"sort"

	"gonum.org/v1/gonum/graph/simple"
)

const (
	methodHolmeKim = "HolmeKim"
	minHolmeKimN0  = 2
	minHolmeKimK   = 1
)

// HolmeKim returns a Constructor for the Holme–Kim growth model.
func HolmeKim(n, n0, k int, p float64) Constructor {
	return func(cfg builderConfig) (*simple.UndirectedGraph, error) {
		// 1) Validate.
		switch {
		case n0 < minHolmeKimN0:
			return nil, fmt.Errorf("%s: n0=%d < %d: %w", methodHolmeKim, n0, minHolmeKimN0, ErrInvalidParameter)
		case k < minHolmeKimK:
			return nil, fmt.Errorf("%s: k=%d < %d: %w", methodHolmeKim, k, minHolmeKimK, ErrInvalidParameter)
		case k > n0:
			return nil, fmt.Errorf("%s: k=%d > n0=%d: %w", methodHolmeKim, k, n0, ErrInvalidParameter)
		case n < n0:
			return nil, fmt.Errorf("%s: n=%d < n0=%d: %w", methodHolmeKim, n, n0, ErrInvalidParameter)
		}
		if err := validateProbability(methodHolmeKim, p); err != nil {
			return nil, err
		}
		if cfg.rng == nil && n > n0 {
			return nil, fmt.Errorf("%s: rng is required: %w", methodHolmeKim, ErrNeedRandSource)
		}

		// 2) Seed clique.
		g := newNodes(n)
		addComplete(g, n0)

		// 3) Growth.
		rng := cfg.rng
		for s := n0; s < n; s++ {
			target, err := preferential(g, s, -1, rng)
			if err != nil {
				return nil, fmt.Errorf("%s: node %d: %w", methodHolmeKim, s, err)
			}
			link(g, s, target)

			for c := 1; c < k; c++ {
				next := -1
				if rng.Float64() < p {
					next = triadCandidate(g, s, target, rng)
				}
				if next < 0 {
					if next, err = preferential(g, s, target, rng); err != nil {
						return nil, fmt.Errorf("%s: node %d: %w", methodHolmeKim, s, err)
					}
				}
				link(g, s, next)
			}
		}

		return g, nil
	}
}

// preferential draws a node among 0..s−1, excluding `exclude` and nodes
// already linked to s, with probability proportional to degree.
func preferential(g *simple.UndirectedGraph, s, exclude int, rng *rand.Rand) (int, error) {
	items := make([]int, 0, s)
	weights := make([]float64, 0, s)
	for v := 0; v < s; v++ {
		if v == exclude || g.HasEdgeBetween(int64(s), int64(v)) {
			continue
		}
		items = append(items, v)
		weights = append(weights, float64(degree(g, v)))
	}
	c, err := NewCumulative(items, weights)
	if err != nil {
		return 0, err
	}

	return c.Pick(rng), nil
}

// triadCandidate returns a uniformly chosen neighbour of target that is not s
// and not yet linked to s, or −1 when none remain.
func triadCandidate(g *simple.UndirectedGraph, s, target int, rng *rand.Rand) int {
	var cands []int
	nodes := g.From(int64(target))
	for nodes.Next() {
		v := int(nodes.Node().ID())
		if v == s || g.HasEdgeBetween(int64(s), int64(v)) {
			continue
		}
		cands = append(cands, v)
	}
	if len(cands) == 0 {
		return -1
	}
	// gonum iterates neighbours in map order; sort for a seed-stable draw.
	sort.Ints(cands)

	return cands[rng.Intn(len(cands))]
}
