// SPDX-License-Identifier: MIT
// Package: kuranet/bound
//
// errors.go — sentinel errors for the bound package.

package bound

import (
	"errors"

	"github.com/katalvlaran/kuranet/cluster"
	"github.com/katalvlaran/kuranet/matrix"
)

var (
	// ErrDimensionMismatch signals that frequency, gain or coupling sizes
	// disagree with the partition's node count.
	ErrDimensionMismatch = matrix.ErrDimensionMismatch

	// ErrClusterIndex signals a cluster index outside [0, K).
	ErrClusterIndex = cluster.ErrClusterIndex

	// ErrDegenerateCluster signals a cluster with fewer than two nodes.
	ErrDegenerateCluster = errors.New("bound: cluster has fewer than two nodes")

	// ErrEmptyClusterSubset signals a cluster without any positive intra weight,
	// so a_min and d_min are undefined.
	ErrEmptyClusterSubset = errors.New("bound: cluster has no positive intra weight")

	// ErrNonFinite signals NaN or ±Inf in an input.
	ErrNonFinite = errors.New("bound: non-finite input")

	// ErrInvalidStep signals a non-positive or non-finite ψ grid step.
	ErrInvalidStep = errors.New("bound: invalid psi step")
)
