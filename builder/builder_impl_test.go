// Package builder_test contains functional tests for all Constructor
// implementations in the builder package, verifying topology, counts,
// determinism and weight bounds.
package builder_test

import (
	"testing"

	"github.com/katalvlaran/kuranet/builder"
	"github.com/katalvlaran/kuranet/matrix"
	"github.com/stretchr/testify/require"
)

// edgeCount counts positive entries of the upper triangle.
func edgeCount(t *testing.T, A *matrix.Dense) int {
	t.Helper()
	n := A.Rows()
	cnt := 0
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			v, err := A.At(i, j)
			require.NoError(t, err)
			if v > 0 {
				cnt++
			}
		}
	}

	return cnt
}

// degrees returns the unweighted degree of each node.
func degrees(t *testing.T, A *matrix.Dense) []int {
	t.Helper()
	n := A.Rows()
	deg := make([]int, n)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			v, err := A.At(i, j)
			require.NoError(t, err)
			if v > 0 {
				deg[i]++
			}
		}
	}

	return deg
}

// TestBuilders_Functional runs table-driven functional tests for each builder.
func TestBuilders_Functional(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		ctor  builder.Constructor
		wantN int
		wantE int
	}{
		{"Complete(1)", builder.Complete(1), 1, 0},
		{"Complete(6)", builder.Complete(6), 6, 15},
		{"WattsStrogatz(10,4,0)", builder.WattsStrogatz(10, 4, 0), 10, 20},
		{"WattsStrogatz(10,4,0.5)", builder.WattsStrogatz(10, 4, 0.5), 10, 20},
		{"WattsStrogatz(10,7,0.5)", builder.WattsStrogatz(10, 7, 0.5), 10, 30},
		{"WattsStrogatz(5,9,0.3)", builder.WattsStrogatz(5, 9, 0.3), 5, 10},
		{"WattsStrogatz(8,1,0.3)", builder.WattsStrogatz(8, 1, 0.3), 8, 0},
		{"HolmeKim(20,4,3,0.5)", builder.HolmeKim(20, 4, 3, 0.5), 20, 6 + 16*3},
		{"HolmeKim(12,3,3,1)", builder.HolmeKim(12, 3, 3, 1), 12, 3 + 9*3},
		{"HolmeKim(3,3,2,0.1)", builder.HolmeKim(3, 3, 2, 0.1), 3, 3},
		{"RandomSparse(7,1)", builder.RandomSparse(7, 1), 7, 21},
		{"RandomSparse(7,0)", builder.RandomSparse(7, 0), 7, 0},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			A, err := builder.BuildAdjacency(tc.ctor, builder.WithSeed(42))
			require.NoError(t, err)
			require.Equal(t, tc.wantN, A.Rows())
			require.NoError(t, matrix.ValidateAdjacency(A))
			require.Equal(t, tc.wantE, edgeCount(t, A))
		})
	}
}

// TestWattsStrogatz_RingLattice checks the unrewired lattice neighbourhood.
func TestWattsStrogatz_RingLattice(t *testing.T) {
	t.Parallel()
	A, err := builder.BuildAdjacency(builder.WattsStrogatz(7, 4, 0))
	require.NoError(t, err)
	for i := 0; i < 7; i++ {
		for _, d := range []int{1, 2} {
			v, err := A.At(i, (i+d)%7)
			require.NoError(t, err)
			require.Equal(t, 1.0, v, "node %d offset %d", i, d)
		}
		v, err := A.At(i, (i+3)%7)
		require.NoError(t, err)
		require.Zero(t, v)
	}
	for _, d := range degrees(t, A) {
		require.Equal(t, 4, d)
	}
}

// TestBuilders_Errors verifies sentinel errors for invalid parameters.
func TestBuilders_Errors(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name string
		ctor builder.Constructor
		opts []builder.BuilderOption
		err  error
	}{
		{"Complete n=0", builder.Complete(0), nil, builder.ErrInvalidParameter},
		{"WS n=0", builder.WattsStrogatz(0, 2, 0.1), nil, builder.ErrInvalidParameter},
		{"WS k<0", builder.WattsStrogatz(5, -1, 0.1), nil, builder.ErrInvalidParameter},
		{"WS p>1", builder.WattsStrogatz(5, 2, 1.5), nil, builder.ErrInvalidProbability},
		{"WS p>1 is invalid parameter", builder.WattsStrogatz(5, 2, 1.5), nil, builder.ErrInvalidParameter},
		{"WS no rng", builder.WattsStrogatz(5, 2, 0.1), nil, builder.ErrNeedRandSource},
		{"HK k>n0", builder.HolmeKim(10, 2, 3, 0.1), []builder.BuilderOption{builder.WithSeed(1)}, builder.ErrInvalidParameter},
		{"HK n0<2", builder.HolmeKim(10, 1, 1, 0.1), []builder.BuilderOption{builder.WithSeed(1)}, builder.ErrInvalidParameter},
		{"HK k<1", builder.HolmeKim(10, 3, 0, 0.1), []builder.BuilderOption{builder.WithSeed(1)}, builder.ErrInvalidParameter},
		{"HK n<n0", builder.HolmeKim(2, 3, 2, 0.1), []builder.BuilderOption{builder.WithSeed(1)}, builder.ErrInvalidParameter},
		{"HK p<0", builder.HolmeKim(10, 3, 2, -0.1), []builder.BuilderOption{builder.WithSeed(1)}, builder.ErrInvalidProbability},
		{"HK no rng", builder.HolmeKim(10, 3, 2, 0.1), nil, builder.ErrNeedRandSource},
		{"RS no rng", builder.RandomSparse(4, 0.5), nil, builder.ErrNeedRandSource},
		{"nil ctor", nil, nil, builder.ErrConstructFailed},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			_, err := builder.BuildAdjacency(tc.ctor, tc.opts...)
			require.ErrorIs(t, err, tc.err)
		})
	}
}

// TestGenerate_WeightRange checks interval validation.
func TestGenerate_WeightRange(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name         string
		lower, upper float64
		err          error
	}{
		{"negative lower", -1, 2, builder.ErrInvalidWeightRange},
		{"upper below lower", 2, 1, builder.ErrInvalidWeightRange},
		{"all zero", 0, 0, builder.ErrInvalidParameter},
		{"constant", 1.5, 1.5, nil},
		{"regular", 1, 2, nil},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			A, err := builder.Generate(builder.Complete(4), tc.lower, tc.upper, builder.WithSeed(3))
			if tc.err != nil {
				require.ErrorIs(t, err, tc.err)
				return
			}
			require.NoError(t, err)
			for i := 0; i < 4; i++ {
				for j := 0; j < 4; j++ {
					v, err := A.At(i, j)
					require.NoError(t, err)
					if i == j {
						require.Zero(t, v)
						continue
					}
					require.GreaterOrEqual(t, v, tc.lower)
					if tc.lower == tc.upper {
						require.Equal(t, tc.lower, v)
					} else {
						require.Less(t, v, tc.upper)
					}
				}
			}
		})
	}
}

// TestGenerate_NeedsRand rejects a stochastic weighting without an RNG.
func TestGenerate_NeedsRand(t *testing.T) {
	t.Parallel()
	_, err := builder.Generate(builder.Complete(3), 1, 2)
	require.ErrorIs(t, err, builder.ErrNeedRandSource)

	// Constant weights on a deterministic topology need no RNG.
	A, err := builder.Generate(builder.Complete(3), 2, 2)
	require.NoError(t, err)
	v, err := A.At(0, 2)
	require.NoError(t, err)
	require.Equal(t, 2.0, v)
}

// TestGenerate_Deterministic verifies that a fixed seed reproduces the matrix.
func TestGenerate_Deterministic(t *testing.T) {
	t.Parallel()
	ctor := builder.HolmeKim(25, 4, 3, 0.6)
	a, err := builder.Generate(ctor, 1, 2, builder.WithSeed(7))
	require.NoError(t, err)
	b, err := builder.Generate(ctor, 1, 2, builder.WithSeed(7))
	require.NoError(t, err)
	require.Equal(t, a.ToRows(), b.ToRows())
}

// TestBuildWeighted_CustomWeightFn wires a constant WeightFn.
func TestBuildWeighted_CustomWeightFn(t *testing.T) {
	t.Parallel()
	A, err := builder.BuildWeighted(builder.Complete(3), builder.WithWeightFn(builder.ConstantWeightFn(0.25)))
	require.NoError(t, err)
	v, err := A.At(1, 2)
	require.NoError(t, err)
	require.Equal(t, 0.25, v)
}

// TestBuildGraph exposes the unweighted gonum graph.
func TestBuildGraph(t *testing.T) {
	t.Parallel()
	g, err := builder.BuildGraph(builder.Complete(4))
	require.NoError(t, err)
	require.Equal(t, 4, g.Nodes().Len())
	require.True(t, g.HasEdgeBetween(0, 3))
}
