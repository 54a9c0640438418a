package builder_test

import (
	"testing"

	"github.com/katalvlaran/kuranet/builder"
	"github.com/katalvlaran/kuranet/matrix"
	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

// TestGenerate_Properties checks symmetry, zero diagonal, weight bounds and
// the Watts–Strogatz degree sum over random parameters.
func TestGenerate_Properties(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 60
	properties := gopter.NewProperties(parameters)

	properties.Property("watts-strogatz is a symmetric weighted graph in bounds", prop.ForAll(
		func(n, k int, p float64, seed int64) bool {
			A, err := builder.Generate(builder.WattsStrogatz(n, k, p), 1, 2, builder.WithSeed(seed))
			if err != nil {
				return false
			}
			if matrix.ValidateAdjacency(A) != nil {
				return false
			}
			half := k / 2
			if k >= n {
				half = 0
			}
			edges := 0
			for i := 0; i < n; i++ {
				for j := i + 1; j < n; j++ {
					v, _ := A.At(i, j)
					if v == 0 {
						continue
					}
					if v < 1 || v >= 2 {
						return false
					}
					edges++
				}
			}
			if k >= n {
				return edges == n*(n-1)/2
			}

			return 2*edges == n*2*half
		},
		gen.IntRange(2, 30),
		gen.IntRange(0, 12),
		gen.Float64Range(0, 1),
		gen.Int64(),
	))

	properties.Property("holme-kim edge count", prop.ForAll(
		func(n0, extra, k int, p float64, seed int64) bool {
			if k > n0 {
				k = n0
			}
			n := n0 + extra
			A, err := builder.BuildAdjacency(builder.HolmeKim(n, n0, k, p), builder.WithSeed(seed))
			if err != nil {
				return false
			}
			edges := 0
			for i := 0; i < n; i++ {
				for j := i + 1; j < n; j++ {
					if v, _ := A.At(i, j); v > 0 {
						edges++
					}
				}
			}

			return edges == n0*(n0-1)/2+extra*k
		},
		gen.IntRange(2, 6),
		gen.IntRange(0, 25),
		gen.IntRange(1, 6),
		gen.Float64Range(0, 1),
		gen.Int64(),
	))

	properties.TestingRun(t)
}
