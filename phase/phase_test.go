package phase_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/kuranet/phase"
	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/require"
)

func TestWrap(t *testing.T) {
	t.Parallel()
	tests := []struct {
		in, want float64
	}{
		{0, 0},
		{1, 1},
		{phase.TwoPi, 0},
		{phase.TwoPi + 0.5, 0.5},
		{-0.5, phase.TwoPi - 0.5},
		{-phase.TwoPi, 0},
		{7 * math.Pi, math.Pi},
	}
	for _, tc := range tests {
		require.InDelta(t, tc.want, phase.Wrap(tc.in), 1e-12, "Wrap(%g)", tc.in)
	}
	require.Equal(t, []float64{0, 1}, phase.WrapAll([]float64{phase.TwoPi, 1}))
}

func TestOrderParameter(t *testing.T) {
	t.Parallel()
	require.Zero(t, phase.OrderParameter(nil))
	require.InDelta(t, 1.0, phase.OrderParameter([]float64{2, 2, 2, 2}), 1e-12)
	require.InDelta(t, 0.0, phase.OrderParameter([]float64{0, math.Pi}), 1e-12)
	require.InDelta(t, 0.0, phase.OrderParameter([]float64{0, 2 * math.Pi / 3, 4 * math.Pi / 3}), 1e-12)
	// Two oscillators at distance π/2: |1 + i| / 2.
	require.InDelta(t, math.Sqrt2/2, phase.OrderParameter([]float64{0, math.Pi / 2}), 1e-12)
}

func TestMaxPhaseDifference(t *testing.T) {
	t.Parallel()
	require.Zero(t, phase.MaxPhaseDifference([]float64{1}))
	require.InDelta(t, 0.2, phase.MaxPhaseDifference([]float64{0.1, phase.TwoPi - 0.1}), 1e-12)
	require.InDelta(t, 3.0, phase.MaxPhaseDifference([]float64{0, 1, 3}), 1e-12)
	require.InDelta(t, math.Pi, phase.MaxPhaseDifference([]float64{0, math.Pi}), 1e-12)
	require.InDelta(t, 2*math.Pi-4, phase.MaxPhaseDifference([]float64{0, 4}), 1e-12)
}

// TestPhase_Properties checks ranges of the measures over random vectors.
func TestPhase_Properties(t *testing.T) {
	properties := gopter.NewProperties(gopter.DefaultTestParameters())

	properties.Property("order parameter in [0,1], max difference in [0,π]", prop.ForAll(
		func(xs []float64) bool {
			r := phase.OrderParameter(xs)
			d := phase.MaxPhaseDifference(xs)

			return r >= 0 && r <= 1+1e-12 && d >= 0 && d <= math.Pi+1e-12
		},
		gen.SliceOf(gen.Float64Range(-20, 20)),
	))

	properties.Property("wrap lands in [0,2π) and preserves the angle", prop.ForAll(
		func(x float64) bool {
			w := phase.Wrap(x)

			return w >= 0 && w < phase.TwoPi && phase.Distance(w, x) < 1e-9
		},
		gen.Float64Range(-1e3, 1e3),
	))

	properties.TestingRun(t)
}
