// Package bound computes the analytic phase-locking bounds of a clustered
// Kuramoto network.
//
// Analyze reduces a (frequency, coupling, input gain, partition) quadruple to
// one Params record per cluster: extreme intra weights, minimum positive
// degree, minimum intra strength, maximum inter strength, gain extremes, the
// inter-coupling imbalance epsilon and the frequency spread. The curve
// functions of a cluster are then evaluated on a ψ grid over [0, π):
//
//	f_intra(ψ) = min(−a_max·c10·sin ψ + 2(a_max·c9 − 2·D_min), −a_min·d_min·sin ψ)
//	f_inter(ψ) = min(2·D_max, 2·D_max·ψ + ε)
//	f_input(ψ) = −g_max·sin ψ + 2(g_max − g_min)
//
// The demand curve −(f_intra + f_input) is compared against f_inter.
package bound
