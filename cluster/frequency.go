// SPDX-License-Identifier: MIT
// Package: kuranet/cluster
//
// frequency.go — per-cluster Gaussian natural frequencies.

package cluster

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/stat/distuv"
)

const methodNaturalFrequencies = "NaturalFrequencies"

// NaturalFrequencies draws size_k samples from N(means[k], sigma²) for each
// cluster k, concatenated in partition order.
//
// Errors: ErrInvalidParameter for len(means) != p.Len(),
// negative or non-finite sigma; ErrNeedRandSource when sigma > 0 without an RNG.
func NaturalFrequencies(p Partition, means []float64, sigma float64, opts ...Option) ([]float64, error) {
	cfg := newConfig(opts...)
	if len(means) != p.Len() {
		return nil, fmt.Errorf("%s: %d means for %d clusters: %w", methodNaturalFrequencies, len(means), p.Len(), ErrInvalidParameter)
	}
	if !(sigma >= 0) || math.IsInf(sigma, 0) {
		return nil, fmt.Errorf("%s: sigma=%g: %w", methodNaturalFrequencies, sigma, ErrInvalidParameter)
	}
	if sigma > 0 && cfg.rng == nil {
		return nil, fmt.Errorf("%s: %w", methodNaturalFrequencies, ErrNeedRandSource)
	}
	out := make([]float64, 0, p.N())
	for k, mu := range means {
		if math.IsNaN(mu) || math.IsInf(mu, 0) {
			return nil, fmt.Errorf("%s: mean[%d]=%g: %w", methodNaturalFrequencies, k, mu, ErrInvalidParameter)
		}
		if sigma == 0 {
			for i := 0; i < p.Size(k); i++ {
				out = append(out, mu)
			}
			continue
		}
		dist := distuv.Normal{Mu: mu, Sigma: sigma, Src: cfg.rng}
		for i := 0; i < p.Size(k); i++ {
			out = append(out, dist.Rand())
		}
	}

	return out, nil
}
