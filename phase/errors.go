// SPDX-License-Identifier: MIT
// Package: kuranet/phase

package phase

import (
	"errors"

	"github.com/katalvlaran/kuranet/matrix"
)

var (
	// ErrDimensionMismatch signals a phase vector whose width disagrees with
	// the trace or the partition.
	ErrDimensionMismatch = matrix.ErrDimensionMismatch

	// ErrMalformedTrace signals an unparsable trace row.
	ErrMalformedTrace = errors.New("phase: malformed trace")
)
