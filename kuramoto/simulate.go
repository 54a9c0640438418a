// SPDX-License-Identifier: MIT
// Package: kuranet/kuramoto
//
// simulate.go — the integration loop.

package kuramoto

import (
	"context"
	"fmt"
	"math"
	"math/rand"

	"github.com/katalvlaran/kuranet/phase"
	"go.uber.org/zap"
)

const methodSimulate = "Simulate"

// Sink receives one (t, θ) sample per step. The slice is reused by the
// caller after Write returns.
type Sink interface {
	Write(t float64, phases []float64) error
}

// SimOption customizes Simulate.
type SimOption func(*simConfig)

type simConfig struct {
	log      *zap.Logger
	progress int
	wrap     bool
}

// WithLogger reports start, progress and completion to log.
func WithLogger(log *zap.Logger) SimOption {
	if log == nil {
		panic("kuramoto: WithLogger(nil)")
	}
	return func(c *simConfig) { c.log = log }
}

// WithProgressEvery logs a progress line every n steps (default 1000).
func WithProgressEvery(n int) SimOption {
	if n <= 0 {
		panic("kuramoto: WithProgressEvery(n<=0)")
	}
	return func(c *simConfig) { c.progress = n }
}

// WithoutWrap keeps phases unwrapped, which is what tests of the exact
// solution compare against.
func WithoutWrap() SimOption {
	return func(c *simConfig) { c.wrap = false }
}

// Steps returns the number of steps of size dt that cover duration.
func Steps(dt, duration float64) int {
	return int(math.Round(duration / dt))
}

// Simulate integrates sys from x0 for duration with step dt and returns the
// final state. The initial state is emitted at t = 0, then one sample per
// step. A nil sink discards samples. Cancelling ctx stops the loop with
// ctx.Err().
func Simulate(ctx context.Context, sys System, st Stepper, x0 []float64, dt, duration float64, sink Sink, opts ...SimOption) ([]float64, error) {
	cfg := simConfig{log: zap.NewNop(), progress: 1000, wrap: true}
	for _, opt := range opts {
		opt(&cfg)
	}
	if len(x0) != sys.Dim() {
		return nil, fmt.Errorf("%s: state of %d for dimension %d: %w", methodSimulate, len(x0), sys.Dim(), ErrDimensionMismatch)
	}
	if !(dt > 0) || math.IsInf(dt, 0) || !(duration >= 0) || math.IsInf(duration, 0) {
		return nil, fmt.Errorf("%s: dt=%g duration=%g: %w", methodSimulate, dt, duration, ErrInvalidStep)
	}

	x := append([]float64(nil), x0...)
	steps := Steps(dt, duration)
	cfg.log.Info("simulation started",
		zap.Int("oscillators", len(x)),
		zap.Int("steps", steps),
		zap.Float64("dt", dt))

	if sink != nil {
		if err := sink.Write(0, x); err != nil {
			return nil, fmt.Errorf("%s: sink: %w", methodSimulate, err)
		}
	}
	for s := 1; s <= steps; s++ {
		if err := ctx.Err(); err != nil {
			cfg.log.Warn("simulation cancelled", zap.Int("step", s), zap.Error(err))
			return x, err
		}
		// Time is recomputed from the step index so it does not drift.
		t := float64(s-1) * dt
		st.Step(sys, t, dt, x)
		if cfg.wrap {
			phase.WrapAll(x)
		}
		if sink != nil {
			if err := sink.Write(float64(s)*dt, x); err != nil {
				return x, fmt.Errorf("%s: sink at step %d: %w", methodSimulate, s, err)
			}
		}
		if s%cfg.progress == 0 {
			cfg.log.Debug("simulation progress", zap.Int("step", s), zap.Float64("t", float64(s)*dt))
		}
	}
	cfg.log.Info("simulation finished", zap.Int("steps", steps))

	return x, nil
}

// InitialPhases draws n phases uniformly from [0, 2π·randomRange) with a
// generator seeded by seed.
func InitialPhases(n int, randomRange float64, seed uint64) ([]float64, error) {
	if n < 0 || !(randomRange >= 0 && randomRange <= 1) {
		return nil, fmt.Errorf("InitialPhases: n=%d range=%g: %w", n, randomRange, ErrInvalidStep)
	}
	rng := rand.New(rand.NewSource(int64(seed)))
	x := make([]float64, n)
	for i := range x {
		x[i] = rng.Float64() * phase.TwoPi * randomRange
	}

	return x, nil
}
