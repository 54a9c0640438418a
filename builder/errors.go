// SPDX-License-Identifier: MIT
// Package: kuranet/builder
//
// errors.go — sentinel errors for the builder package.
//
// Error policy (explicit and strict):
//   • Only sentinel variables (package-level) are exposed.
//   • Callers MUST use errors.Is(err, ErrX) to branch on semantics.
//   • Implementations attach context using `%w` with the constructor method tag.
//   • Algorithms MUST NOT panic at runtime; validation panics are confined to
//     option constructor functions (WithX...).
//
// Hierarchy:
//   ErrInvalidProbability and ErrInvalidWeightRange are refinements of
//   ErrInvalidParameter, so errors.Is(err, ErrInvalidParameter) holds for both.

package builder

import (
	"errors"
	"fmt"
)

// ErrInvalidParameter indicates a topology or weighting parameter outside its
// domain (n < 1, k < 0, k > n0 for Holme–Kim, ...).
var ErrInvalidParameter = errors.New("builder: invalid parameter")

// ErrInvalidProbability indicates that a probability value is outside the
// closed interval [0,1].
var ErrInvalidProbability = fmt.Errorf("builder: probability out of range: %w", ErrInvalidParameter)

// ErrInvalidWeightRange indicates an unusable [lower, upper] weight interval:
// negative lower bound, upper < lower, an all-zero interval or NaN bounds.
var ErrInvalidWeightRange = fmt.Errorf("builder: invalid weight range: %w", ErrInvalidParameter)

// ErrNeedRandSource indicates that a stochastic constructor requires a non-nil
// *rand.Rand in the resolved builderConfig (WithSeed/WithRand must be set).
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrConstructFailed indicates that the builder could not construct a topology
// without breaking invariants (nil constructor, empty sampling support).
var ErrConstructFailed = errors.New("builder: construction failed")

// builderErrorf prefixes a formatted message with the method tag while
// keeping the wrapped sentinel reachable through %w in format.
func builderErrorf(method, format string, args ...interface{}) error {
	return fmt.Errorf("%s: "+format, append([]interface{}{method}, args...)...)
}
