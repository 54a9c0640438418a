// SPDX-License-Identifier: MIT
// Package: kuranet/plot

package plot

import "errors"

var (
	// ErrUnknownStyle signals a trace style outside wave|order|phase|max.
	ErrUnknownStyle = errors.New("plot: unknown trace style")

	// ErrUnknownLayout signals a node layout outside line|cylinder.
	ErrUnknownLayout = errors.New("plot: unknown node layout")

	// ErrNotEnoughData signals input too small to draw a line.
	ErrNotEnoughData = errors.New("plot: not enough data")
)
