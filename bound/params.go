// SPDX-License-Identifier: MIT
// Package: kuranet/bound
//
// params.go — per-cluster bound parameters and the curve functions.

package bound

import (
	"fmt"
	"math"

	"github.com/katalvlaran/kuranet/cluster"
)

// Params holds the scalar summary of one cluster.
type Params struct {
	Cluster int // cluster index k
	Size    int // n_k

	AMax   float64 // largest positive intra weight
	AMin   float64 // smallest positive intra weight
	DegMin int     // d_min: fewest positive intra entries in a row
	DMin   float64 // D_min: smallest intra row sum
	DMax   float64 // D_max: largest row sum over all inter blocks combined

	GMax float64 // largest input gain in the cluster
	GMin float64 // smallest input gain in the cluster

	Epsilon float64 // Σ over partners of (max − min) inter column sum
	DelFreq float64 // natural-frequency spread (max − min)

	C10 float64 // intra-curve slope coefficient
	C9  float64 // intra-curve offset coefficient

	FIntraMin float64 // min(a_max·(2·C9 − C10) − 2·D_min, −a_min·d_min)
}

// FIntra evaluates f_intra(ψ).
func (p Params) FIntra(psi float64) float64 {
	s := math.Sin(psi)
	hi := -p.AMax*p.C10*s + 2*(p.AMax*p.C9-2*p.DMin)
	lo := -p.AMin * float64(p.DegMin) * s

	return math.Min(hi, lo)
}

// FInter evaluates f_inter(ψ) = min(2·D_max, 2·D_max·ψ + ε).
func (p Params) FInter(psi float64) float64 {
	return math.Min(2*p.DMax, 2*p.DMax*psi+p.Epsilon)
}

// FInput evaluates f_input(ψ) = −g_max·sin ψ + 2·(g_max − g_min).
func (p Params) FInput(psi float64) float64 {
	return -p.GMax*math.Sin(psi) + 2*(p.GMax-p.GMin)
}

// Demand evaluates −(f_intra(ψ) + f_input(ψ)).
func (p Params) Demand(psi float64) float64 {
	return -(p.FIntra(psi) + p.FInput(psi))
}

// ParameterSet is the immutable result of Analyze.
type ParameterSet struct {
	partition cluster.Partition
	params    []Params
}

// Partition returns the partition the set was computed for.
func (s *ParameterSet) Partition() cluster.Partition { return s.partition }

// Len returns the number of clusters.
func (s *ParameterSet) Len() int { return len(s.params) }

// Cluster returns the parameters of cluster k.
func (s *ParameterSet) Cluster(k int) (Params, error) {
	if k < 0 || k >= len(s.params) {
		return Params{}, fmt.Errorf("ParameterSet.Cluster(%d) with %d clusters: %w", k, len(s.params), ErrClusterIndex)
	}

	return s.params[k], nil
}

// All returns a copy of every cluster's parameters in order.
func (s *ParameterSet) All() []Params {
	return append([]Params(nil), s.params...)
}

// FIntra evaluates f_intra(ψ, k).
func (s *ParameterSet) FIntra(psi float64, k int) (float64, error) {
	p, err := s.Cluster(k)
	if err != nil {
		return 0, err
	}

	return p.FIntra(psi), nil
}

// FInter evaluates f_inter(ψ, k).
func (s *ParameterSet) FInter(psi float64, k int) (float64, error) {
	p, err := s.Cluster(k)
	if err != nil {
		return 0, err
	}

	return p.FInter(psi), nil
}

// FInput evaluates f_input(ψ, k).
func (s *ParameterSet) FInput(psi float64, k int) (float64, error) {
	p, err := s.Cluster(k)
	if err != nil {
		return 0, err
	}

	return p.FInput(psi), nil
}
