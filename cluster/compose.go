// SPDX-License-Identifier: MIT
// Package: kuranet/cluster
//
// compose.go — block assembly of a clustered coupling matrix.
//
// Layout (K clusters):
//
//	| A11  A12 … A1K |
//	| A21  A22 … A2K |      Akk = intra[k]
//	|  ⋮         ⋮   |      Aab = WeightedInter(...) for a<b in Links
//	| AK1  …     AKK |      Aba = Aabᵀ
//
// Determinism: inter blocks are drawn in the order of InterSpec.Links (or
// (a,b) lexicographic with a<b when Links is nil), each block row-major.

package cluster

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/katalvlaran/kuranet/matrix"
)

const (
	methodCompose       = "Compose"
	methodWeightedInter = "WeightedInter"
)

// DefaultDensity is the inclusion probability of an inter-cluster cell.
const DefaultDensity = 0.5

// InterSpec describes the off-diagonal blocks.
type InterSpec struct {
	// Min is the smallest inter-cluster weight.
	Min float64
	// Range is the width of the weight interval: weights lie in [Min, Min+Range).
	Range float64
	// Density is the probability that a given cell is coupled.
	Density float64
	// Links restricts coupling to the listed cluster pairs; nil couples all pairs.
	Links [][2]int
}

// DefaultInterSpec returns the weak sparse coupling used by the reference
// experiment: weights in [0.1, 0.2), density 0.5, all pairs.
func DefaultInterSpec() InterSpec {
	return InterSpec{Min: 0.1, Range: 0.1, Density: DefaultDensity}
}

// Validate checks the numeric fields.
func (s InterSpec) Validate() error {
	switch {
	case !(s.Min >= 0) || math.IsInf(s.Min, 0):
		return fmt.Errorf("InterSpec: min=%g: %w", s.Min, ErrInvalidParameter)
	case !(s.Range >= 0) || math.IsInf(s.Range, 0):
		return fmt.Errorf("InterSpec: range=%g: %w", s.Range, ErrInvalidParameter)
	case !(s.Density >= 0 && s.Density <= 1):
		return fmt.Errorf("InterSpec: density=%g not in [0,1]: %w", s.Density, ErrInvalidParameter)
	}

	return nil
}

// Composition is the output of Compose.
type Composition struct {
	// Full is the coupled network: intra blocks plus inter blocks.
	Full *matrix.Dense
	// Undamaged keeps only the intra blocks (every inter block zeroed).
	Undamaged *matrix.Dense
	// Partition is the layout both matrices follow.
	Partition Partition
}

// WeightedInter draws a rows×cols inter-cluster block: each cell is included
// with probability density and then weighted rng.Float64()*width + min.
// The RNG is not consulted when density is zero.
func WeightedInter(rows, cols int, min, width, density float64, rng *rand.Rand) (*matrix.Dense, error) {
	spec := InterSpec{Min: min, Range: width, Density: density}
	if err := spec.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", methodWeightedInter, err)
	}
	B, err := matrix.NewDense(rows, cols)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", methodWeightedInter, err)
	}
	if density == 0 {
		return B, nil
	}
	if rng == nil {
		return nil, fmt.Errorf("%s: %w", methodWeightedInter, ErrNeedRandSource)
	}
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			if rng.Float64() >= density {
				continue
			}
			if err = B.Set(i, j, rng.Float64()*width+min); err != nil {
				return nil, fmt.Errorf("%s: %w", methodWeightedInter, err)
			}
		}
	}

	return B, nil
}

// Compose assembles the clustered coupling matrix.
//
// Errors:
//   - matrix.ErrDimensionMismatch when len(intra) != p.Len() or a block has the wrong size.
//   - matrix adjacency sentinels (ErrAsymmetry, ErrNonZeroDiagonal, ...) for a bad intra block.
//   - ErrClusterIndex for a link naming an unknown cluster or a self-link.
//   - ErrInvalidParameter for a bad InterSpec; ErrNeedRandSource without an RNG.
func Compose(p Partition, intra []matrix.Matrix, spec InterSpec, opts ...Option) (*Composition, error) {
	cfg := newConfig(opts...)
	K := p.Len()
	if K == 0 {
		return nil, fmt.Errorf("%s: empty partition: %w", methodCompose, ErrInvalidParameter)
	}
	if len(intra) != K {
		return nil, fmt.Errorf("%s: %d intra blocks for %d clusters: %w",
			methodCompose, len(intra), K, matrix.ErrDimensionMismatch)
	}
	if err := spec.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", methodCompose, err)
	}
	links, err := resolveLinks(K, spec.Links)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", methodCompose, err)
	}

	// 1) Diagonal blocks.
	n := p.N()
	undamaged, err := matrix.NewDense(n, n)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", methodCompose, err)
	}
	ranges := p.Ranges()
	for k, blk := range intra {
		if err = matrix.ValidateAdjacency(blk); err != nil {
			return nil, fmt.Errorf("%s: intra[%d]: %w", methodCompose, k, err)
		}
		if blk.Rows() != ranges[k].Len() {
			return nil, fmt.Errorf("%s: intra[%d] is %d×%d, cluster size %d: %w",
				methodCompose, k, blk.Rows(), blk.Cols(), ranges[k].Len(), matrix.ErrDimensionMismatch)
		}
		if err = undamaged.SetBlock(ranges[k].Start, ranges[k].Start, blk); err != nil {
			return nil, fmt.Errorf("%s: %w", methodCompose, err)
		}
	}

	// 2) Off-diagonal blocks, mirrored.
	full := undamaged.Clone().(*matrix.Dense)
	for _, l := range links {
		a, b := ranges[l[0]], ranges[l[1]]
		blk, err := WeightedInter(a.Len(), b.Len(), spec.Min, spec.Range, spec.Density, cfg.rng)
		if err != nil {
			return nil, fmt.Errorf("%s: link %d-%d: %w", methodCompose, l[0], l[1], err)
		}
		blkT, err := matrix.Transpose(blk)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", methodCompose, err)
		}
		if err = full.SetBlock(a.Start, b.Start, blk); err != nil {
			return nil, fmt.Errorf("%s: %w", methodCompose, err)
		}
		if err = full.SetBlock(b.Start, a.Start, blkT); err != nil {
			return nil, fmt.Errorf("%s: %w", methodCompose, err)
		}
	}

	return &Composition{Full: full, Undamaged: undamaged, Partition: p}, nil
}

// resolveLinks normalizes links to (a<b) pairs, rejecting unknown clusters,
// self-links and duplicates. nil expands to every pair in lexicographic order.
func resolveLinks(K int, links [][2]int) ([][2]int, error) {
	if links == nil {
		out := make([][2]int, 0, K*(K-1)/2)
		for a := 0; a < K; a++ {
			for b := a + 1; b < K; b++ {
				out = append(out, [2]int{a, b})
			}
		}

		return out, nil
	}
	seen := make(map[[2]int]bool, len(links))
	out := make([][2]int, 0, len(links))
	for _, l := range links {
		a, b := l[0], l[1]
		if a > b {
			a, b = b, a
		}
		if a < 0 || b >= K || a == b {
			return nil, fmt.Errorf("link %v with %d clusters: %w", l, K, ErrClusterIndex)
		}
		key := [2]int{a, b}
		if seen[key] {
			return nil, fmt.Errorf("duplicate link %v: %w", l, ErrInvalidParameter)
		}
		seen[key] = true
		out = append(out, key)
	}

	return out, nil
}
