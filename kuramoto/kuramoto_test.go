package kuramoto_test

import (
	"bytes"
	"context"
	"errors"
	"math"
	"testing"

	"github.com/katalvlaran/kuranet/kuramoto"
	"github.com/katalvlaran/kuranet/params"
	"github.com/katalvlaran/kuranet/phase"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func pair(w float64, omega ...float64) *params.NetworkParam {
	return &params.NetworkParam{
		StateDim:        2,
		InputDim:        2,
		RandomRange:     1,
		ClusterNodesNum: []int{2},
		Frequency:       omega,
		Connectivity:    [][]float64{{0, w}, {w, 0}},
	}
}

func control(kind int, gain float64) *params.ControlParam {
	return &params.ControlParam{
		ControlType:    kind,
		InputWeight:    []float64{gain, gain},
		InputFrequency: []float64{3, 3},
		AverageWeight:  [][]float64{{1, 1}},
	}
}

func TestModel_Derivative(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name string
		net  *params.NetworkParam
		ctl  *params.ControlParam
		t    float64
		x    []float64
		want []float64
	}{
		{"coupled no input", pair(1, 1, 2), control(kuramoto.ControlAverage, 0), 0,
			[]float64{0, math.Pi / 2}, []float64{2, 1}},
		{"coupled average input", pair(1, 1, 2), control(kuramoto.ControlAverage, 1), 0,
			[]float64{0, math.Pi / 2}, []float64{2 + math.Sqrt2/2, 1 - math.Sqrt2/2}},
		{"uncoupled periodic input", pair(0, 1, 2), control(kuramoto.ControlPeriodic, 2), 0.5,
			[]float64{0, 1.5}, []float64{1 + 2*math.Sin(1.5), 2}},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			md, err := kuramoto.NewModel(tc.net, tc.ctl)
			require.NoError(t, err)
			require.Equal(t, 2, md.Dim())
			dst := make([]float64, 2)
			md.Derivative(tc.t, tc.x, dst)
			require.InDeltaSlice(t, tc.want, dst, 1e-12)
		})
	}
}

func TestNewModel_Errors(t *testing.T) {
	t.Parallel()
	_, err := kuramoto.NewModel(pair(1, 1, 2), control(2, 1))
	require.ErrorIs(t, err, kuramoto.ErrUnknownControl)

	bad := control(0, 1)
	bad.InputWeight = []float64{1}
	_, err = kuramoto.NewModel(pair(1, 1, 2), bad)
	require.ErrorIs(t, err, params.ErrInvalidParams)

	net := pair(1, 1, 2)
	net.Connectivity[0][1] = 2
	_, err = kuramoto.NewModel(net, control(0, 1))
	require.ErrorIs(t, err, params.ErrInvalidParams)
}

// TestRK4_UncoupledExact integrates free oscillators and compares against
// θ(t) = θ0 + ωt wrapped into [0, 2π).
func TestRK4_UncoupledExact(t *testing.T) {
	t.Parallel()
	md, err := kuramoto.NewModel(pair(0, 1.5, -0.7), control(kuramoto.ControlAverage, 0))
	require.NoError(t, err)
	require.Zero(t, md.Edges())

	for _, st := range []kuramoto.Stepper{&kuramoto.RK4{}, &kuramoto.Euler{}} {
		tr := &phase.Trace{}
		x0 := []float64{0.3, 2}
		got, err := kuramoto.Simulate(context.Background(), md, st, x0, 0.01, 5, tr)
		require.NoError(t, err)
		require.Equal(t, 501, tr.Len())
		require.InDelta(t, 5.0, tr.Time[500], 1e-9)
		require.Equal(t, x0, tr.Phases[0])
		require.InDelta(t, phase.Wrap(0.3+1.5*5), got[0], 1e-9)
		require.InDelta(t, phase.Wrap(2-0.7*5), got[1], 1e-9)
		for _, row := range tr.Phases {
			for _, v := range row {
				require.GreaterOrEqual(t, v, 0.0)
				require.Less(t, v, phase.TwoPi)
			}
		}
	}
}

// TestSimulate_Synchronizes checks that identical oscillators with strong
// coupling lock in phase.
func TestSimulate_Synchronizes(t *testing.T) {
	t.Parallel()
	md, err := kuramoto.NewModel(pair(2, 1, 1), control(kuramoto.ControlAverage, 0))
	require.NoError(t, err)
	got, err := kuramoto.Simulate(context.Background(), md, &kuramoto.RK4{}, []float64{0, 2}, 0.01, 10, nil)
	require.NoError(t, err)
	require.Less(t, phase.MaxPhaseDifference(got), 1e-6)
	require.Greater(t, phase.OrderParameter(got), 1-1e-9)
}

func TestSimulate_Errors(t *testing.T) {
	t.Parallel()
	md, err := kuramoto.NewModel(pair(1, 1, 1), control(0, 0))
	require.NoError(t, err)
	ctx := context.Background()

	_, err = kuramoto.Simulate(ctx, md, &kuramoto.RK4{}, []float64{0}, 0.1, 1, nil)
	require.ErrorIs(t, err, kuramoto.ErrDimensionMismatch)
	_, err = kuramoto.Simulate(ctx, md, &kuramoto.RK4{}, []float64{0, 0}, 0, 1, nil)
	require.ErrorIs(t, err, kuramoto.ErrInvalidStep)
	_, err = kuramoto.Simulate(ctx, md, &kuramoto.RK4{}, []float64{0, 0}, 0.1, -1, nil)
	require.ErrorIs(t, err, kuramoto.ErrInvalidStep)

	cancelled, cancel := context.WithCancel(ctx)
	cancel()
	_, err = kuramoto.Simulate(cancelled, md, &kuramoto.RK4{}, []float64{0, 0}, 0.1, 1, nil)
	require.ErrorIs(t, err, context.Canceled)

	boom := errors.New("boom")
	_, err = kuramoto.Simulate(ctx, md, &kuramoto.RK4{}, []float64{0, 0}, 0.1, 1, failingSink{boom})
	require.ErrorIs(t, err, boom)
}

type failingSink struct{ err error }

func (f failingSink) Write(float64, []float64) error { return f.err }

func TestSimulate_Logging(t *testing.T) {
	t.Parallel()
	core, logs := observer.New(zap.DebugLevel)
	md, err := kuramoto.NewModel(pair(1, 1, 1), control(0, 0))
	require.NoError(t, err)
	_, err = kuramoto.Simulate(context.Background(), md, &kuramoto.Euler{}, []float64{0, 1}, 0.1, 1, nil,
		kuramoto.WithLogger(zap.New(core)), kuramoto.WithProgressEvery(5))
	require.NoError(t, err)
	require.Equal(t, 1, logs.FilterMessage("simulation started").Len())
	require.Equal(t, 2, logs.FilterMessage("simulation progress").Len())
	require.Equal(t, 1, logs.FilterMessage("simulation finished").Len())

	require.Panics(t, func() { kuramoto.WithLogger(nil) })
	require.Panics(t, func() { kuramoto.WithProgressEvery(0) })
}

func TestInitialPhases(t *testing.T) {
	t.Parallel()
	a, err := kuramoto.InitialPhases(50, 0.5, 7)
	require.NoError(t, err)
	b, err := kuramoto.InitialPhases(50, 0.5, 7)
	require.NoError(t, err)
	require.Equal(t, a, b)
	for _, v := range a {
		require.GreaterOrEqual(t, v, 0.0)
		require.Less(t, v, math.Pi)
	}
	zero, err := kuramoto.InitialPhases(3, 0, 1)
	require.NoError(t, err)
	require.Equal(t, []float64{0, 0, 0}, zero)
	_, err = kuramoto.InitialPhases(3, 1.5, 1)
	require.ErrorIs(t, err, kuramoto.ErrInvalidStep)
}

func TestNewStepper(t *testing.T) {
	t.Parallel()
	st, err := kuramoto.NewStepper("euler")
	require.NoError(t, err)
	require.IsType(t, &kuramoto.Euler{}, st)
	st, err = kuramoto.NewStepper("")
	require.NoError(t, err)
	require.IsType(t, &kuramoto.RK4{}, st)
	_, err = kuramoto.NewStepper("leapfrog")
	require.ErrorIs(t, err, kuramoto.ErrUnknownStepper)
}

func TestRunSeed(t *testing.T) {
	t.Parallel()
	md, err := kuramoto.NewModel(pair(1, 1, 2), control(kuramoto.ControlPeriodic, 0.5))
	require.NoError(t, err)
	common := params.CommonParam{Dt: 0.05, SimulationTime: 1, RandomRange: 1, RandomSeeds: []uint64{3}}

	var buf bytes.Buffer
	require.NoError(t, kuramoto.RunSeed(context.Background(), md, common, 3, &kuramoto.RK4{}, &buf))
	tr, err := phase.ReadTrace(&buf, 2)
	require.NoError(t, err)
	require.Equal(t, 21, tr.Len())
	x0, _ := kuramoto.InitialPhases(2, 1, 3)
	require.Equal(t, x0, tr.Phases[0])

	common.Dt = 0
	require.ErrorIs(t, kuramoto.RunSeed(context.Background(), md, common, 3, &kuramoto.RK4{}, &buf), params.ErrInvalidParams)
}
