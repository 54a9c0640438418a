// SPDX-License-Identifier: MIT
// Package: kuranet/phase
//
// series.go — per-cluster time series over a Trace.
//
// ClusterMaxDiffSeries evaluates |B_compᵀ Θ_k| for the all-pairs incidence
// B_comp of cluster k and the n_k×T phase block Θ_k in one gonum product,
// then folds each entry onto [0, π] and takes the column maximum.

package phase

import (
	"fmt"
	"math"

	"github.com/katalvlaran/kuranet/cluster"
	"github.com/katalvlaran/kuranet/matrix"
	"gonum.org/v1/gonum/mat"
)

const (
	methodClusterOrderSeries   = "ClusterOrderSeries"
	methodClusterMaxDiffSeries = "ClusterMaxDiffSeries"
)

func checkWidth(method string, t *Trace, p cluster.Partition) error {
	if t == nil {
		return fmt.Errorf("%s: nil trace: %w", method, ErrMalformedTrace)
	}
	for s, row := range t.Phases {
		if len(row) != p.N() {
			return fmt.Errorf("%s: sample %d has width %d, partition covers %d: %w",
				method, s, len(row), p.N(), ErrDimensionMismatch)
		}
	}

	return nil
}

// ClusterOrderSeries returns out[k][s], the order parameter of cluster k at
// sample s.
func ClusterOrderSeries(t *Trace, p cluster.Partition) ([][]float64, error) {
	if err := checkWidth(methodClusterOrderSeries, t, p); err != nil {
		return nil, err
	}
	out := make([][]float64, p.Len())
	for k, r := range p.Ranges() {
		out[k] = make([]float64, t.Len())
		for s, row := range t.Phases {
			out[k][s] = OrderParameter(row[r.Start:r.End])
		}
	}

	return out, nil
}

// ClusterMaxDiffSeries returns out[k][s], the maximum pairwise phase
// difference inside cluster k at sample s. Singleton clusters yield zeros.
func ClusterMaxDiffSeries(t *Trace, p cluster.Partition) ([][]float64, error) {
	if err := checkWidth(methodClusterMaxDiffSeries, t, p); err != nil {
		return nil, err
	}
	out := make([][]float64, p.Len())
	T := t.Len()
	for k, r := range p.Ranges() {
		out[k] = make([]float64, T)
		if r.Len() < 2 || T == 0 {
			continue
		}
		B, err := matrix.CompleteIncidence(r.Len())
		if err != nil {
			return nil, fmt.Errorf("%s: %w", methodClusterMaxDiffSeries, err)
		}
		gB, err := matrix.ToGonum(B)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", methodClusterMaxDiffSeries, err)
		}
		theta := mat.NewDense(r.Len(), T, nil)
		for s, row := range t.Phases {
			for i := r.Start; i < r.End; i++ {
				theta.Set(i-r.Start, s, row[i])
			}
		}
		var diff mat.Dense
		diff.Mul(gB.T(), theta)

		pairs, _ := diff.Dims()
		for s := 0; s < T; s++ {
			best := 0.0
			for e := 0; e < pairs; e++ {
				d := math.Mod(math.Abs(diff.At(e, s)), TwoPi)
				if d > math.Pi {
					d = TwoPi - d
				}
				if d > best {
					best = d
				}
			}
			out[k][s] = best
		}
	}

	return out, nil
}

// WaveSeries returns sin θ_i(t) for every oscillator: out[i][s].
func WaveSeries(t *Trace) [][]float64 {
	out := make([][]float64, t.Width())
	for i := range out {
		out[i] = make([]float64, t.Len())
		for s, row := range t.Phases {
			out[i][s] = math.Sin(row[i])
		}
	}

	return out
}
