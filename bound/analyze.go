// SPDX-License-Identifier: MIT
// Package: kuranet/bound
//
// analyze.go — reduction of a clustered network to per-cluster Params.
//
// For cluster k with index range R_k and partners b ≠ k:
//
//	AMax   = max{ A[i][j] : i,j ∈ R_k, A[i][j] > 0 }
//	AMin   = min{ A[i][j] : i,j ∈ R_k, A[i][j] > 0 }
//	DegMin = min_i |{ j ∈ R_k : A[i][j] > 0 }|
//	DMin   = min_i Σ_{j∈R_k} A[i][j]
//	DMax   = max_i Σ_{j∉R_k} A[i][j]
//	ε      = Σ_b ( max_j Σ_{i∈R_k} A[i][j] − min_j Σ_{i∈R_k} A[i][j] ), j ∈ R_b
//
// Complexity: O(N²) over the coupling matrix.

package bound

import (
	"fmt"
	"math"

	"github.com/katalvlaran/kuranet/cluster"
	"github.com/katalvlaran/kuranet/matrix"
	"gonum.org/v1/gonum/floats"
)

const methodAnalyze = "Analyze"

// Analyze computes the bound parameters of every cluster.
//
// freq and gain must have length p.N(); conn must be p.N()×p.N(). Every
// cluster needs at least two nodes and at least one positive intra weight.
func Analyze(freq []float64, conn matrix.Matrix, gain []float64, p cluster.Partition, opts ...Option) (*ParameterSet, error) {
	cfg := newConfig(opts...)
	n := p.N()
	if n == 0 {
		return nil, fmt.Errorf("%s: empty partition: %w", methodAnalyze, ErrDegenerateCluster)
	}
	if conn == nil {
		return nil, fmt.Errorf("%s: %w", methodAnalyze, matrix.ErrNilMatrix)
	}
	if conn.Rows() != n || conn.Cols() != n {
		return nil, fmt.Errorf("%s: coupling %dx%d for %d nodes: %w", methodAnalyze, conn.Rows(), conn.Cols(), n, ErrDimensionMismatch)
	}
	if len(freq) != n {
		return nil, fmt.Errorf("%s: %d frequencies for %d nodes: %w", methodAnalyze, len(freq), n, ErrDimensionMismatch)
	}
	if len(gain) != n {
		return nil, fmt.Errorf("%s: %d gains for %d nodes: %w", methodAnalyze, len(gain), n, ErrDimensionMismatch)
	}
	if !finite(freq) || !finite(gain) {
		return nil, fmt.Errorf("%s: frequency or gain: %w", methodAnalyze, ErrNonFinite)
	}

	rows := make([][]float64, n)
	for i := 0; i < n; i++ {
		rows[i] = make([]float64, n)
		for j := 0; j < n; j++ {
			v, err := conn.At(i, j)
			if err != nil {
				return nil, fmt.Errorf("%s: %w", methodAnalyze, err)
			}
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return nil, fmt.Errorf("%s: coupling[%d,%d]=%g: %w", methodAnalyze, i, j, v, ErrNonFinite)
			}
			rows[i][j] = v
		}
	}

	ranges := p.Ranges()
	set := &ParameterSet{partition: p, params: make([]Params, len(ranges))}
	for k, r := range ranges {
		prm, err := analyzeCluster(k, r, ranges, rows, freq, gain, cfg)
		if err != nil {
			return nil, err
		}
		set.params[k] = prm
	}

	return set, nil
}

func analyzeCluster(k int, r cluster.Range, ranges []cluster.Range, rows [][]float64, freq, gain []float64, cfg config) (Params, error) {
	if r.Len() < 2 {
		return Params{}, fmt.Errorf("%s: cluster %d has %d node(s): %w", methodAnalyze, k, r.Len(), ErrDegenerateCluster)
	}
	prm := Params{
		Cluster: k,
		Size:    r.Len(),
		AMax:    math.Inf(-1),
		AMin:    math.Inf(1),
		DegMin:  math.MaxInt,
		DMin:    math.Inf(1),
		C10:     cfg.c10,
		C9:      cfg.c9,
	}
	if cfg.sizeScaled {
		prm.C10 = float64(r.Len())
		prm.C9 = float64(r.Len() - 1)
	}

	for i := r.Start; i < r.End; i++ {
		var intra, inter float64
		deg := 0
		for j, v := range rows[i] {
			if !r.Contains(j) {
				inter += v
				continue
			}
			intra += v
			if v > 0 {
				deg++
				prm.AMax = math.Max(prm.AMax, v)
				prm.AMin = math.Min(prm.AMin, v)
			}
		}
		if deg < prm.DegMin {
			prm.DegMin = deg
		}
		prm.DMin = math.Min(prm.DMin, intra)
		prm.DMax = math.Max(prm.DMax, inter)
	}
	if math.IsInf(prm.AMax, -1) {
		return Params{}, fmt.Errorf("%s: cluster %d: %w", methodAnalyze, k, ErrEmptyClusterSubset)
	}

	colSums := make([]float64, 0, len(rows))
	for b, rb := range ranges {
		if b == k {
			continue
		}
		colSums = colSums[:0]
		for j := rb.Start; j < rb.End; j++ {
			s := 0.0
			for i := r.Start; i < r.End; i++ {
				s += rows[i][j]
			}
			colSums = append(colSums, s)
		}
		if len(colSums) > 0 {
			prm.Epsilon += floats.Max(colSums) - floats.Min(colSums)
		}
	}

	prm.GMax = floats.Max(gain[r.Start:r.End])
	prm.GMin = floats.Min(gain[r.Start:r.End])
	prm.DelFreq = floats.Max(freq[r.Start:r.End]) - floats.Min(freq[r.Start:r.End])
	prm.FIntraMin = math.Min(prm.AMax*(2*prm.C9-prm.C10)-2*prm.DMin, -prm.AMin*float64(prm.DegMin))

	return prm, nil
}

func finite(xs []float64) bool {
	for _, x := range xs {
		if math.IsNaN(x) || math.IsInf(x, 0) {
			return false
		}
	}

	return true
}
