// SPDX-License-Identifier: MIT
// Package: kuranet/builder
//
// api.go - thin public entry-points for the builder package.
//
// Design contract (strict):
//   - One orchestrator: BuildGraph(ctor, opts...). Resolves cfg and runs the constructor.
//   - Topology factories are declared in impl_*.go; they return Constructor closures.
//   - BuildAdjacency / BuildWeighted / Generate project the graph onto a dense
//     matrix with node i ↔ row i.
//   - Determinism: same inputs/options/seed ⇒ identical graphs and weights.
//     Topology sampling consumes the RNG first, weighting afterwards.

package builder

import (
	"fmt"

	"github.com/katalvlaran/kuranet/matrix"
	"gonum.org/v1/gonum/graph/simple"
)

// Constructor builds an unweighted simple undirected graph over nodes
// 0..n−1 using the resolved builderConfig. Constructors MUST:
//   - Validate parameters early and return sentinel errors (no panics).
//   - Add every node, including isolated ones, so that Nodes().Len() == n.
//   - Preserve determinism for the same config.
type Constructor func(cfg builderConfig) (*simple.UndirectedGraph, error)

const (
	methodBuildGraph    = "BuildGraph"
	methodBuildWeighted = "BuildWeighted"
	methodGenerate      = "Generate"
)

// BuildGraph resolves the builder configuration from opts and applies ctor.
func BuildGraph(ctor Constructor, opts ...BuilderOption) (*simple.UndirectedGraph, error) {
	if ctor == nil {
		return nil, fmt.Errorf("%s: nil constructor: %w", methodBuildGraph, ErrConstructFailed)
	}
	g, err := ctor(newBuilderConfig(opts...))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", methodBuildGraph, err)
	}

	return g, nil
}

// BuildAdjacency returns the 0/1 adjacency matrix of the constructed graph.
func BuildAdjacency(ctor Constructor, opts ...BuilderOption) (*matrix.Dense, error) {
	return BuildWeighted(ctor, append(opts, WithWeightFn(DefaultWeightFn))...)
}

// BuildWeighted constructs the topology and assigns every edge a weight from
// the configured WeightFn, scanning unordered pairs i<j in row-major order and
// mirroring each value to (j,i).
func BuildWeighted(ctor Constructor, opts ...BuilderOption) (*matrix.Dense, error) {
	if ctor == nil {
		return nil, fmt.Errorf("%s: nil constructor: %w", methodBuildWeighted, ErrConstructFailed)
	}
	cfg := newBuilderConfig(opts...)
	g, err := ctor(cfg)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", methodBuildWeighted, err)
	}

	return weightedAdjacency(methodBuildWeighted, g, cfg)
}

// Generate is the weighted graph generator: topology from ctor, then each
// edge weight drawn as rng.Float64()*(upper−lower)+lower.
//
// Errors:
//   - ErrInvalidWeightRange (wraps ErrInvalidParameter) for a bad interval.
//   - ErrNeedRandSource when lower < upper and no RNG was supplied.
//   - Any constructor sentinel (ErrInvalidParameter, ErrNeedRandSource, ...).
func Generate(ctor Constructor, lower, upper float64, opts ...BuilderOption) (*matrix.Dense, error) {
	if err := ValidateWeightRange(lower, upper); err != nil {
		return nil, fmt.Errorf("%s: %w", methodGenerate, err)
	}
	if ctor == nil {
		return nil, fmt.Errorf("%s: nil constructor: %w", methodGenerate, ErrConstructFailed)
	}
	cfg := newBuilderConfig(opts...)
	if cfg.rng == nil && lower < upper {
		return nil, fmt.Errorf("%s: weights in [%g,%g): %w", methodGenerate, lower, upper, ErrNeedRandSource)
	}
	cfg.weightFn = UniformWeightFn(lower, upper)

	g, err := ctor(cfg)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", methodGenerate, err)
	}

	return weightedAdjacency(methodGenerate, g, cfg)
}

// weightedAdjacency projects g onto an n×n matrix (n = node count).
func weightedAdjacency(method string, g *simple.UndirectedGraph, cfg builderConfig) (*matrix.Dense, error) {
	n := g.Nodes().Len()
	A, err := matrix.NewDense(n, n)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", method, err)
	}
	var (
		i, j int
		w    float64
	)
	for i = 0; i < n; i++ {
		for j = i + 1; j < n; j++ {
			if !g.HasEdgeBetween(int64(i), int64(j)) {
				continue
			}
			w = cfg.weightFn(cfg.rng)
			if err = A.Set(i, j, w); err != nil {
				return nil, fmt.Errorf("%s: %w", method, err)
			}
			if err = A.Set(j, i, w); err != nil {
				return nil, fmt.Errorf("%s: %w", method, err)
			}
		}
	}

	return A, nil
}

// newNodes returns a simple graph holding the isolated nodes 0..n−1.
func newNodes(n int) *simple.UndirectedGraph {
	g := simple.NewUndirectedGraph()
	for i := 0; i < n; i++ {
		g.AddNode(simple.Node(int64(i)))
	}

	return g
}

// link adds the undirected edge {u,v}.
func link(g *simple.UndirectedGraph, u, v int) {
	g.SetEdge(simple.Edge{F: simple.Node(int64(u)), T: simple.Node(int64(v))})
}

// degree returns the number of neighbours of u.
func degree(g *simple.UndirectedGraph, u int) int {
	return g.From(int64(u)).Len()
}
