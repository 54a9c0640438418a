// SPDX-License-Identifier: MIT
// Package: kuranet/cluster
//
// partition.go — ordered cluster sizes and their contiguous index ranges.

package cluster

import "fmt"

// Range is the half-open node interval [Start, End).
type Range struct {
	Start int
	End   int
}

// Len returns End − Start.
func (r Range) Len() int { return r.End - r.Start }

// Contains reports whether i lies in [Start, End).
func (r Range) Contains(i int) bool { return i >= r.Start && i < r.End }

// Indices lists Start..End−1.
func (r Range) Indices() []int {
	out := make([]int, 0, r.Len())
	for i := r.Start; i < r.End; i++ {
		out = append(out, i)
	}

	return out
}

// Partition is an ordered list of positive cluster sizes. Cluster k occupies
// the contiguous range starting at the sum of the preceding sizes; the ranges
// cover [0, N) without gaps or overlap.
type Partition struct {
	sizes   []int
	offsets []int // offsets[k] = Σ sizes[:k]; len == len(sizes)+1
}

// NewPartition validates sizes (at least one cluster, every size ≥ 1).
func NewPartition(sizes ...int) (Partition, error) {
	if len(sizes) == 0 {
		return Partition{}, fmt.Errorf("NewPartition: no clusters: %w", ErrInvalidParameter)
	}
	offsets := make([]int, len(sizes)+1)
	for k, s := range sizes {
		if s < 1 {
			return Partition{}, fmt.Errorf("NewPartition: size[%d]=%d < 1: %w", k, s, ErrInvalidParameter)
		}
		offsets[k+1] = offsets[k] + s
	}

	return Partition{sizes: append([]int(nil), sizes...), offsets: offsets}, nil
}

// MustPartition is NewPartition for literal sizes known to be valid; it panics otherwise.
func MustPartition(sizes ...int) Partition {
	p, err := NewPartition(sizes...)
	if err != nil {
		panic(err)
	}

	return p
}

// N returns the total number of nodes.
func (p Partition) N() int {
	if len(p.offsets) == 0 {
		return 0
	}

	return p.offsets[len(p.offsets)-1]
}

// Len returns the number of clusters K.
func (p Partition) Len() int { return len(p.sizes) }

// Sizes returns a copy of the cluster sizes.
func (p Partition) Sizes() []int { return append([]int(nil), p.sizes...) }

// Size returns the size of cluster k, or 0 when k is out of range.
func (p Partition) Size(k int) int {
	if k < 0 || k >= len(p.sizes) {
		return 0
	}

	return p.sizes[k]
}

// Range returns the node interval of cluster k.
func (p Partition) Range(k int) (Range, error) {
	if k < 0 || k >= len(p.sizes) {
		return Range{}, fmt.Errorf("Partition.Range(%d) with %d clusters: %w", k, len(p.sizes), ErrClusterIndex)
	}

	return Range{Start: p.offsets[k], End: p.offsets[k+1]}, nil
}

// Ranges returns every cluster interval in order.
func (p Partition) Ranges() []Range {
	out := make([]Range, len(p.sizes))
	for k := range p.sizes {
		out[k] = Range{Start: p.offsets[k], End: p.offsets[k+1]}
	}

	return out
}

// ClusterOf returns the cluster owning node i.
func (p Partition) ClusterOf(i int) (int, error) {
	for k := range p.sizes {
		if i >= p.offsets[k] && i < p.offsets[k+1] {
			return k, nil
		}
	}

	return 0, fmt.Errorf("Partition.ClusterOf(%d) with N=%d: %w", i, p.N(), ErrClusterIndex)
}
