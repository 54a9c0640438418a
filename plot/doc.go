// Package plot renders kuranet data as PNG images.
//
// Charts are drawn with go-chart:
//
//   - BoundChart: the demand curve −(f_intra + f_input) against f_inter.
//   - TraceChart: a simulation trace in one of four styles (wave, order,
//     phase, max).
//   - FrequencyChart: natural frequencies as bars.
//   - NetworkChart: nodes on a line or cylinder layout, edges scaled by
//     weight, attenuated intra edges drawn dashed.
//
// Heatmap paints the coupling matrix cell by cell.
//
// The geometric and series helpers (Coordinates, NetworkEdges, TraceSeries)
// are exported so their output can be checked without decoding images.
package plot
