package cluster_test

import (
	"testing"

	"github.com/katalvlaran/kuranet/builder"
	"github.com/katalvlaran/kuranet/cluster"
	"github.com/katalvlaran/kuranet/matrix"
	"github.com/stretchr/testify/require"
)

// intraBlocks builds one weighted complete block per cluster.
func intraBlocks(t *testing.T, p cluster.Partition) []matrix.Matrix {
	t.Helper()
	out := make([]matrix.Matrix, p.Len())
	for k := range out {
		A, err := builder.Generate(builder.Complete(p.Size(k)), 1, 2, builder.WithSeed(int64(k)))
		require.NoError(t, err)
		out[k] = A
	}

	return out
}

func TestCompose(t *testing.T) {
	t.Parallel()
	p := cluster.MustPartition(4, 3, 5)
	intra := intraBlocks(t, p)
	spec := cluster.InterSpec{Min: 0.1, Range: 0.1, Density: 1, Links: [][2]int{{0, 1}, {2, 1}}}
	c, err := cluster.Compose(p, intra, spec, cluster.WithSeed(9))
	require.NoError(t, err)
	require.NoError(t, matrix.ValidateAdjacency(c.Full))
	require.NoError(t, matrix.ValidateAdjacency(c.Undamaged))

	ranges := p.Ranges()
	for a := range ranges {
		for b := range ranges {
			full, err := c.Full.Block(ranges[a].Start, ranges[b].Start, ranges[a].Len(), ranges[b].Len())
			require.NoError(t, err)
			und, err := c.Undamaged.Block(ranges[a].Start, ranges[b].Start, ranges[a].Len(), ranges[b].Len())
			require.NoError(t, err)
			switch {
			case a == b:
				require.Equal(t, intra[a].(*matrix.Dense).ToRows(), full.ToRows())
				require.Equal(t, full.ToRows(), und.ToRows())
			case (a == 0 && b == 2) || (a == 2 && b == 0):
				requireAll(t, full, func(v float64) bool { return v == 0 })
			default:
				// density 1: every cell coupled within [0.1, 0.2).
				requireAll(t, full, func(v float64) bool { return v >= 0.1 && v < 0.2 })
				requireAll(t, und, func(v float64) bool { return v == 0 })
			}
		}
	}
}

func TestCompose_Errors(t *testing.T) {
	t.Parallel()
	p := cluster.MustPartition(3, 3)
	intra := intraBlocks(t, p)
	bad := cluster.MustPartition(3, 4)

	_, err := cluster.Compose(p, intra[:1], cluster.DefaultInterSpec(), cluster.WithSeed(1))
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)

	_, err = cluster.Compose(bad, intra, cluster.DefaultInterSpec(), cluster.WithSeed(1))
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)

	_, err = cluster.Compose(p, intra, cluster.InterSpec{Density: 2}, cluster.WithSeed(1))
	require.ErrorIs(t, err, cluster.ErrInvalidParameter)

	_, err = cluster.Compose(p, intra, cluster.InterSpec{Density: 0.5, Links: [][2]int{{0, 2}}}, cluster.WithSeed(1))
	require.ErrorIs(t, err, cluster.ErrClusterIndex)

	_, err = cluster.Compose(p, intra, cluster.DefaultInterSpec())
	require.ErrorIs(t, err, cluster.ErrNeedRandSource)

	asym, err := matrix.NewDenseFromRows([][]float64{{0, 1, 0}, {0, 0, 1}, {0, 1, 0}})
	require.NoError(t, err)
	_, err = cluster.Compose(p, []matrix.Matrix{asym, intra[1]}, cluster.DefaultInterSpec(), cluster.WithSeed(1))
	require.ErrorIs(t, err, matrix.ErrAsymmetry)
}

func TestWeightedInter_ZeroDensity(t *testing.T) {
	t.Parallel()
	B, err := cluster.WeightedInter(2, 3, 0.1, 0.1, 0, nil)
	require.NoError(t, err)
	requireAll(t, B, func(v float64) bool { return v == 0 })
}

// requireAll asserts pred over every cell of m.
func requireAll(t *testing.T, m *matrix.Dense, pred func(float64) bool) {
	t.Helper()
	for _, row := range m.ToRows() {
		for _, v := range row {
			require.True(t, pred(v), "unexpected value %g", v)
		}
	}
}
