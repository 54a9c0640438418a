// SPDX-License-Identifier: MIT
// Package: kuranet/kuramoto

package kuramoto

import (
	"context"
	"fmt"
	"io"

	"github.com/katalvlaran/kuranet/params"
	"github.com/katalvlaran/kuranet/phase"
)

// RunSeed draws initial phases for seed, integrates md over the common
// settings and writes the trace to w.
func RunSeed(ctx context.Context, md *Model, common params.CommonParam, seed uint64, st Stepper, w io.Writer, opts ...SimOption) error {
	if err := common.Validate(); err != nil {
		return fmt.Errorf("RunSeed: %w", err)
	}
	x0, err := InitialPhases(md.Dim(), common.RandomRange, seed)
	if err != nil {
		return fmt.Errorf("RunSeed: %w", err)
	}
	tw := phase.NewTraceWriter(w, md.Dim())
	if _, err = Simulate(ctx, md, st, x0, common.Dt, common.SimulationTime, tw, opts...); err != nil {
		return fmt.Errorf("RunSeed: seed %d: %w", seed, err)
	}

	return tw.Flush()
}
