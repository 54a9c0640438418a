// Package kuranet is a toolkit for clustered networks of Kuramoto phase
// oscillators: it generates weighted cluster topologies, damages them,
// evaluates a per-cluster synchronization bound, integrates the controlled
// Kuramoto model and renders the results.
//
// 🚀 What is inside?
//
//	builder/  — weighted Complete, Watts–Strogatz, Holme–Kim and sparse random graphs
//	cluster/  — partitions, block composition, damage and natural frequencies
//	matrix/   — dense matrices, incidence, Laplacian and gonum bridges
//	dfs/      — DFS spanning trees and their incidence matrices
//	bound/    — bound parameters (a_max, d_min, D_max, ε …) and curves over ψ ∈ [0, π)
//	kuramoto/ — the controlled model, Euler/RK4 steppers and the integration loop
//	phase/    — wrapping, order parameters and CSV phase traces
//	params/   — JSON parameter documents, YAML experiments and the data layout
//	plot/     — go-chart renderings and weight heatmaps
//	logging/  — zap loggers for the command line
//
// The kuranet command (cmd/kuranet) ties them together:
//
//	kuranet create-params demo
//	kuranet check-condition demo damaged average 1
//	kuranet simulate demo
//	kuranet plot-result demo damaged average 0 --style max
//
// Quick ASCII example of a two-cluster network with one damaged edge:
//
//	  0───1        3───4
//	  │ ╲ │  ····  ┆ ╲ │
//	  2───┘        5───┘
//
//	solid: intra edges, dotted: inter edges, dashed: attenuated intra edge.
//
//	go get github.com/katalvlaran/kuranet
package kuranet
