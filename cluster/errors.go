// SPDX-License-Identifier: MIT
// Package: kuranet/cluster
//
// errors.go — sentinel errors for the cluster package.
//
// Shape and range violations reuse the matrix sentinels (matrix.ErrOutOfRange,
// matrix.ErrDimensionMismatch, matrix.ErrNonSquare) so callers can test a
// single family regardless of which layer detected the problem.

package cluster

import "errors"

var (
	// ErrInvalidParameter signals a numeric argument outside its domain
	// (fraction ∉ [0,1], negative inter weight, density ∉ [0,1], empty cluster).
	ErrInvalidParameter = errors.New("cluster: invalid parameter")

	// ErrClusterIndex signals a cluster index outside [0, K).
	ErrClusterIndex = errors.New("cluster: cluster index out of range")

	// ErrNeedRandSource signals a stochastic operation invoked without an RNG.
	ErrNeedRandSource = errors.New("cluster: rng is required")
)
