// SPDX-License-Identifier: MIT
// Package: kuranet/plot
//
// charts.go — go-chart renderings.

package plot

import (
	"fmt"
	"io"
	"math"
	"strconv"

	"github.com/katalvlaran/kuranet/bound"
	"github.com/katalvlaran/kuranet/cluster"
	"github.com/katalvlaran/kuranet/matrix"
	"github.com/katalvlaran/kuranet/phase"
	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

// Default canvas sizes in pixels.
const (
	DefaultWidth  = 1000
	DefaultHeight = 500
)

// Lim is a closed time window for TraceChart.
type Lim struct{ Lo, Hi float64 }

// DefaultLim shows the first five time units.
var DefaultLim = Lim{Lo: 0, Hi: 5}

func clusterColor(k int) drawing.Color { return chart.GetDefaultColor(k) }

// BoundChart draws the demand and inter curves of one cluster.
func BoundChart(w io.Writer, c *bound.Curves) error {
	if c == nil || len(c.Psi) < 2 {
		return fmt.Errorf("BoundChart: %w", ErrNotEnoughData)
	}
	graph := chart.Chart{
		Title:  "Cluster " + strconv.Itoa(c.Cluster+1),
		Width:  DefaultWidth,
		Height: DefaultHeight,
		XAxis: chart.XAxis{
			Name:  "ψ",
			Range: &chart.ContinuousRange{Min: 0, Max: math.Pi},
		},
		YAxis: chart.YAxis{Name: "bound"},
		Series: []chart.Series{
			chart.ContinuousSeries{
				Name:    "-(f_intra + f_input)",
				XValues: c.Psi,
				YValues: c.Demand,
				Style:   chart.Style{StrokeColor: clusterColor(0), StrokeWidth: 2},
			},
			chart.ContinuousSeries{
				Name:    "f_inter",
				XValues: c.Psi,
				YValues: c.Inter,
				Style:   chart.Style{StrokeColor: clusterColor(1), StrokeWidth: 2},
			},
		},
	}
	graph.Elements = []chart.Renderable{chart.Legend(&graph)}

	if err := graph.Render(chart.PNG, w); err != nil {
		return fmt.Errorf("BoundChart: %w", err)
	}

	return nil
}

// TraceChart draws tr restricted to lim in the given style.
func TraceChart(w io.Writer, tr *phase.Trace, p cluster.Partition, style Style, lim Lim) error {
	if tr == nil {
		return fmt.Errorf("TraceChart: %w", ErrNotEnoughData)
	}
	win := tr.Window(lim.Lo, lim.Hi)
	if win.Len() < 2 {
		return fmt.Errorf("TraceChart: %d samples in [%g, %g]: %w", win.Len(), lim.Lo, lim.Hi, ErrNotEnoughData)
	}
	lines, err := TraceSeries(win, p, style)
	if err != nil {
		return fmt.Errorf("TraceChart: %w", err)
	}
	width := 1.2
	if style == StyleWave {
		width = 1.5
	}
	series := make([]chart.Series, len(lines))
	for i, l := range lines {
		series[i] = chart.ContinuousSeries{
			Name:    l.Name,
			XValues: l.X,
			YValues: l.Y,
			Style:   chart.Style{StrokeColor: clusterColor(l.Cluster), StrokeWidth: width},
		}
	}
	lo, hi := style.YRange()
	named := true
	for _, l := range lines {
		named = named && l.Name != ""
	}
	graph := chart.Chart{
		Width:  DefaultWidth,
		Height: DefaultHeight,
		XAxis: chart.XAxis{
			Name:  "Time t",
			Range: &chart.ContinuousRange{Min: lim.Lo, Max: lim.Hi},
		},
		YAxis: chart.YAxis{
			Name:  string(style),
			Range: &chart.ContinuousRange{Min: lo, Max: hi},
		},
		Series: series,
	}
	// The legend lists unnamed series as well; skip it for per-oscillator styles.
	if named {
		graph.Elements = []chart.Renderable{chart.Legend(&graph)}
	}

	if err = graph.Render(chart.PNG, w); err != nil {
		return fmt.Errorf("TraceChart: %w", err)
	}

	return nil
}

// FrequencyChart draws one bar per oscillator labelled from 1.
func FrequencyChart(w io.Writer, freq []float64) error {
	if len(freq) == 0 {
		return fmt.Errorf("FrequencyChart: %w", ErrNotEnoughData)
	}
	bars := make([]chart.Value, len(freq))
	lo, hi := 0.0, 0.0
	for i, f := range freq {
		bars[i] = chart.Value{Value: f, Label: strconv.Itoa(i + 1)}
		lo, hi = math.Min(lo, f), math.Max(hi, f)
	}
	if hi == lo {
		hi = lo + 1
	}
	bc := chart.BarChart{
		Title:    "frequency",
		Width:    DefaultWidth,
		Height:   DefaultHeight / 2,
		BarWidth: max(2, DefaultWidth/(2*len(freq))),
		Bars:     bars,
		YAxis:    chart.YAxis{Range: &chart.ContinuousRange{Min: lo, Max: hi}},
	}
	if err := bc.Render(chart.PNG, w); err != nil {
		return fmt.Errorf("FrequencyChart: %w", err)
	}

	return nil
}

// NetworkChart draws the coupling graph of adj over the nodes of p.
func NetworkChart(w io.Writer, adj matrix.Matrix, p cluster.Partition, layout Layout) error {
	pts, err := Coordinates(p, layout)
	if err != nil {
		return fmt.Errorf("NetworkChart: %w", err)
	}
	edges, err := NetworkEdges(adj, p)
	if err != nil {
		return fmt.Errorf("NetworkChart: %w", err)
	}
	if len(pts) == 0 {
		return fmt.Errorf("NetworkChart: %w", ErrNotEnoughData)
	}

	series := make([]chart.Series, 0, len(edges)+p.Len())
	for _, e := range edges {
		style := chart.Style{StrokeColor: chart.ColorBlack, StrokeWidth: 2.5 * e.Rel}
		if e.Damaged {
			style.StrokeWidth = 1
			style.StrokeDashArray = []float64{4, 4}
		}
		series = append(series, chart.ContinuousSeries{
			XValues: []float64{pts[e.From].X, pts[e.To].X},
			YValues: []float64{pts[e.From].Y, pts[e.To].Y},
			Style:   style,
		})
	}
	minY, maxY := pts[0].Y, pts[0].Y
	for k, r := range p.Ranges() {
		xs := make([]float64, 0, r.Len())
		ys := make([]float64, 0, r.Len())
		for i := r.Start; i < r.End; i++ {
			xs = append(xs, pts[i].X)
			ys = append(ys, pts[i].Y)
			minY, maxY = math.Min(minY, pts[i].Y), math.Max(maxY, pts[i].Y)
		}
		series = append(series, chart.ContinuousSeries{
			Name:    clusterName(k),
			XValues: xs,
			YValues: ys,
			Style: chart.Style{
				StrokeWidth: chart.Disabled,
				DotWidth:    8,
				DotColor:    clusterColor(k),
			},
		})
	}

	graph := chart.Chart{
		Width:  DefaultHeight + DefaultHeight/5,
		Height: DefaultHeight,
		XAxis:  chart.XAxis{Range: &chart.ContinuousRange{Min: -1.2, Max: 1.2}},
		YAxis:  chart.YAxis{Range: &chart.ContinuousRange{Min: minY - 0.6, Max: maxY + 0.6}},
		Series: series,
	}
	if err = graph.Render(chart.PNG, w); err != nil {
		return fmt.Errorf("NetworkChart: %w", err)
	}

	return nil
}
