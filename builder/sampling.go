// SPDX-License-Identifier: MIT
// Package: kuranet/builder
//
// sampling.go — cumulative-weight sampler for preferential attachment.
//
// Model:
//   • Prefix sums over non-negative weights; a draw u ∈ [0, total) selects the
//     first index whose prefix sum exceeds u (binary search).
//   • Zero-weight items are never selected.
//
// Complexity:
//   • NewCumulative: O(k). Pick: O(log k).

package builder

import (
	"math"
	"math/rand"
	"sort"
)

const methodCumulative = "Cumulative"

// Cumulative draws items with probability proportional to their weight.
type Cumulative struct {
	items []int
	cum   []float64
}

// NewCumulative prepares a sampler over items with the given weights.
// Errors:
//   - ErrInvalidParameter for mismatched lengths, negative/non-finite weights.
//   - ErrConstructFailed when the total weight is zero (empty support).
func NewCumulative(items []int, weights []float64) (*Cumulative, error) {
	if len(items) != len(weights) {
		return nil, builderErrorf(methodCumulative, "%d items vs %d weights: %w",
			len(items), len(weights), ErrInvalidParameter)
	}
	cum := make([]float64, len(weights))
	total := 0.0
	for i, w := range weights {
		if w < 0 || math.IsNaN(w) || math.IsInf(w, 0) {
			return nil, builderErrorf(methodCumulative, "weight[%d]=%g: %w", i, w, ErrInvalidParameter)
		}
		total += w
		cum[i] = total
	}
	if total <= 0 {
		return nil, builderErrorf(methodCumulative, "zero total weight: %w", ErrConstructFailed)
	}

	return &Cumulative{items: append([]int(nil), items...), cum: cum}, nil
}

// Total returns the sum of all weights.
func (c *Cumulative) Total() float64 { return c.cum[len(c.cum)-1] }

// Pick draws one item using rng.
func (c *Cumulative) Pick(rng *rand.Rand) int {
	u := rng.Float64() * c.Total()
	idx := sort.Search(len(c.cum), func(i int) bool { return c.cum[i] > u })
	if idx == len(c.cum) {
		// u rounded up to the total; take the last positive-weight item.
		idx = len(c.cum) - 1
		for idx > 0 && c.cum[idx] == c.cum[idx-1] {
			idx--
		}
	}

	return c.items[idx]
}
