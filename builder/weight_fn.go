// Package builder provides internal helper functions and types
// for configuring edge-weight distributions in graph constructors.
package builder

import (
	"fmt"
	"math"
	"math/rand"
)

// DefaultEdgeWeight is the default weight assigned to each edge when no
// custom WeightFn is provided.
const DefaultEdgeWeight float64 = 1

// WeightFn produces an edge weight given an optional *rand.Rand source.
// It must be deterministic for a given RNG seed.
type WeightFn func(rng *rand.Rand) float64

// DefaultWeightFn always returns the constant DefaultEdgeWeight.
func DefaultWeightFn(_ *rand.Rand) float64 {
	return DefaultEdgeWeight
}

// ConstantWeightFn returns a WeightFn that always yields the provided value.
// Panics if value < 0.
func ConstantWeightFn(value float64) WeightFn {
	if value < 0 || math.IsNaN(value) {
		panic(fmt.Sprintf("ConstantWeightFn: value must be ≥ 0, got %g", value))
	}

	return func(_ *rand.Rand) float64 {
		return value
	}
}

// UniformWeightFn returns a WeightFn sampling rng.Float64()*(upper−lower)+lower,
// i.e. uniform on [lower, upper). A degenerate interval returns lower without
// touching the RNG. Panics on an invalid range (see ValidateWeightRange).
func UniformWeightFn(lower, upper float64) WeightFn {
	if err := ValidateWeightRange(lower, upper); err != nil {
		panic(fmt.Sprintf("UniformWeightFn: %v", err))
	}

	return func(rng *rand.Rand) float64 {
		if upper == lower || rng == nil {
			return lower
		}

		return rng.Float64()*(upper-lower) + lower
	}
}

// ValidateWeightRange checks the [lower, upper] weighting interval.
// lower == upper is legal (constant weights); lower < 0, upper < lower,
// upper == 0 and NaN/Inf bounds yield ErrInvalidWeightRange.
func ValidateWeightRange(lower, upper float64) error {
	switch {
	case math.IsNaN(lower) || math.IsNaN(upper) || math.IsInf(lower, 0) || math.IsInf(upper, 0):
		return fmt.Errorf("lower=%g upper=%g not finite: %w", lower, upper, ErrInvalidWeightRange)
	case lower < 0:
		return fmt.Errorf("lower=%g < 0: %w", lower, ErrInvalidWeightRange)
	case upper < lower:
		return fmt.Errorf("upper=%g < lower=%g: %w", upper, lower, ErrInvalidWeightRange)
	case upper == 0:
		return fmt.Errorf("all-zero weights: %w", ErrInvalidWeightRange)
	}

	return nil
}
