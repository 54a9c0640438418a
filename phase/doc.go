// Package phase analyzes oscillator phase vectors and simulation traces.
//
// It provides the Kuramoto order parameter r = |Σ e^{iθ}| / n, the maximum
// pairwise phase difference on the circle, per-cluster time series of both,
// and the space-delimited trace format written by the simulator
// ("time θ1 … θn" per line).
package phase
