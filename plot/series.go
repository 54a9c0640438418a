// SPDX-License-Identifier: MIT
// Package: kuranet/plot

package plot

import (
	"fmt"
	"math"
	"strconv"

	"github.com/katalvlaran/kuranet/cluster"
	"github.com/katalvlaran/kuranet/phase"
)

// Style selects what TraceChart draws.
type Style string

// Trace styles.
const (
	StyleWave  Style = "wave"  // sin θ_i per oscillator
	StyleOrder Style = "order" // order parameter per cluster
	StylePhase Style = "phase" // θ_i per oscillator
	StyleMax   Style = "max"   // max phase difference per cluster
)

// Line is one plotted series.
type Line struct {
	Name    string
	Cluster int
	X, Y    []float64
}

// YRange returns the fixed vertical range of a style.
func (s Style) YRange() (lo, hi float64) {
	switch s {
	case StyleWave:
		return -1, 1
	case StyleOrder:
		return 0, 1.01
	case StylePhase:
		return 0, phase.TwoPi
	default:
		return 0, math.Pi
	}
}

// TraceSeries turns tr into lines for style. Per-oscillator styles name
// only the last line of each cluster so a legend lists one entry per
// cluster.
func TraceSeries(tr *phase.Trace, p cluster.Partition, style Style) ([]Line, error) {
	switch style {
	case StyleOrder, StyleMax:
		var (
			series [][]float64
			err    error
		)
		if style == StyleOrder {
			series, err = phase.ClusterOrderSeries(tr, p)
		} else {
			series, err = phase.ClusterMaxDiffSeries(tr, p)
		}
		if err != nil {
			return nil, fmt.Errorf("TraceSeries: %w", err)
		}
		lines := make([]Line, len(series))
		for k, ys := range series {
			lines[k] = Line{Name: clusterName(k), Cluster: k, X: tr.Time, Y: ys}
		}

		return lines, nil

	case StyleWave, StylePhase:
		if tr.Width() != p.N() {
			return nil, fmt.Errorf("TraceSeries: width %d, partition covers %d: %w", tr.Width(), p.N(), phase.ErrDimensionMismatch)
		}
		cols := phase.WaveSeries(tr)
		if style == StylePhase {
			for i := range cols {
				cols[i], _ = tr.Column(i)
			}
		}
		lines := make([]Line, len(cols))
		for i, ys := range cols {
			k, _ := p.ClusterOf(i)
			r, _ := p.Range(k)
			name := ""
			if i == r.End-1 {
				name = clusterName(k)
			}
			lines[i] = Line{Name: name, Cluster: k, X: tr.Time, Y: ys}
		}

		return lines, nil

	default:
		return nil, fmt.Errorf("TraceSeries(%q): %w", style, ErrUnknownStyle)
	}
}

func clusterName(k int) string { return "Cluster" + strconv.Itoa(k+1) }
