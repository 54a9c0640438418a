package bound_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/kuranet/bound"
	"github.com/katalvlaran/kuranet/builder"
	"github.com/katalvlaran/kuranet/cluster"
	"github.com/katalvlaran/kuranet/matrix"
	"github.com/stretchr/testify/require"
)

func TestDomain(t *testing.T) {
	t.Parallel()
	psi, err := bound.Domain(bound.DefaultStep)
	require.NoError(t, err)
	require.Len(t, psi, 315)
	require.Zero(t, psi[0])
	require.InDelta(t, 3.14, psi[len(psi)-1], 1e-12)
	require.Less(t, psi[len(psi)-1], math.Pi)

	psi, err = bound.Domain(math.Pi / 2)
	require.NoError(t, err)
	require.Equal(t, []float64{0, math.Pi / 2}, psi)

	for _, step := range []float64{0, -0.1, math.NaN(), math.Inf(1)} {
		_, err = bound.Domain(step)
		require.ErrorIs(t, err, bound.ErrInvalidStep)
	}
}

func TestCurves(t *testing.T) {
	t.Parallel()
	set, err := bound.Analyze([]float64{1, 2, 4}, triangle(t), []float64{1, 2, 3}, cluster.MustPartition(3))
	require.NoError(t, err)

	c, err := set.Curves(0, nil)
	require.NoError(t, err)
	require.Len(t, c.Psi, 315)
	for i := range c.Psi {
		require.InDelta(t, -(c.Intra[i] + c.Input[i]), c.Demand[i], 1e-12)
		require.InDelta(t, c.Demand[i]-c.Inter[i], c.Gap[i], 1e-12)
	}

	c, err = set.Curves(0, []float64{0, math.Pi / 2})
	require.NoError(t, err)
	// ψ=0: intra 0, input 4, inter 0 → gap −4. ψ=π/2: intra −1, input 1 → gap 0.
	require.Equal(t, []float64{-4, 0}, roundAll(c.Gap))
	psi, gap, idx := c.MinGap()
	require.Equal(t, 0, idx)
	require.Zero(t, psi)
	require.InDelta(t, -4, gap, 1e-12)
	_, gap, idx = c.MaxGap()
	require.Equal(t, 1, idx)
	require.InDelta(t, 0, gap, 1e-12)

	empty, err := set.Curves(0, []float64{})
	require.NoError(t, err)
	_, _, idx = empty.MinGap()
	require.Equal(t, -1, idx)

	_, err = set.Curves(2, nil)
	require.ErrorIs(t, err, bound.ErrClusterIndex)
	_, err = set.Curves(0, []float64{math.NaN()})
	require.ErrorIs(t, err, bound.ErrNonFinite)
}

func roundAll(xs []float64) []float64 {
	out := make([]float64, len(xs))
	for i, x := range xs {
		out[i] = math.Round(x*1e9) / 1e9
	}

	return out
}

// TestEndToEnd_ThirtyNodes generates three Watts–Strogatz clusters, couples
// them weakly and analyzes the result.
func TestEndToEnd_ThirtyNodes(t *testing.T) {
	t.Parallel()
	p := cluster.MustPartition(10, 10, 10)
	intra := make([]matrix.Matrix, p.Len())
	for k := range intra {
		A, err := builder.Generate(builder.WattsStrogatz(10, 7, 0.5), 1.0, 2.0, builder.WithSeed(int64(k+1)))
		require.NoError(t, err)
		intra[k] = A
	}
	comp, err := cluster.Compose(p, intra, cluster.DefaultInterSpec(), cluster.WithSeed(9))
	require.NoError(t, err)

	full := comp.Full
	require.Equal(t, 30, full.Rows())
	require.NoError(t, matrix.ValidateAdjacency(full))
	for i := 0; i < 10; i++ {
		for j := 10; j < 20; j++ {
			v, err := full.At(i, j)
			require.NoError(t, err)
			if v != 0 {
				require.GreaterOrEqual(t, v, 0.1)
				require.Less(t, v, 0.2)
			}
		}
	}

	freq, err := cluster.NaturalFrequencies(p, []float64{1, 2, 3}, 0.1, cluster.WithSeed(4))
	require.NoError(t, err)
	gain := make([]float64, 30)
	for i := range gain {
		gain[i] = 1
	}
	set, err := bound.Analyze(freq, full, gain, p)
	require.NoError(t, err)
	for _, prm := range set.All() {
		require.GreaterOrEqual(t, prm.AMin, 1.0)
		require.Less(t, prm.AMax, 2.0)
		require.LessOrEqual(t, prm.AMin, prm.AMax)
		require.GreaterOrEqual(t, prm.DegMin, 1)
		require.Greater(t, prm.DMax, 0.0)
		require.Less(t, prm.DMax, 20*0.2)
		require.GreaterOrEqual(t, prm.Epsilon, 0.0)
		require.Zero(t, prm.GMax-prm.GMin)
	}
}
