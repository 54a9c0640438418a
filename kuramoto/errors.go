// SPDX-License-Identifier: MIT
// Package: kuranet/kuramoto

package kuramoto

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/kuranet/matrix"
)

var (
	// ErrUnknownControl signals a control_type other than ControlAverage or
	// ControlPeriodic.
	ErrUnknownControl = errors.New("kuramoto: unknown control type")

	// ErrDimensionMismatch signals a state vector of the wrong length.
	ErrDimensionMismatch = matrix.ErrDimensionMismatch

	// ErrInvalidStep signals a non-positive step, a negative horizon or a
	// random range outside [0, 1].
	ErrInvalidStep = errors.New("kuramoto: invalid integration parameter")
)

// ErrUnknownStepper signals an integrator name other than "euler" or "rk4".
var ErrUnknownStepper = errors.New("kuramoto: unknown stepper")

func errUnknownStepper(name string) error {
	return fmt.Errorf("NewStepper(%q): %w", name, ErrUnknownStepper)
}
