// SPDX-License-Identifier: MIT
// Package: kuranet/bound
//
// options.go — functional options for Analyze.

package bound

import "math"

// Default intra-curve coefficients.
const (
	DefaultC10 = 10.0
	DefaultC9  = 9.0
)

// Option customizes Analyze.
type Option func(*config)

type config struct {
	c10, c9    float64
	sizeScaled bool
}

func newConfig(opts ...Option) config {
	cfg := config{c10: DefaultC10, c9: DefaultC9}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// WithIntraCoefficients replaces the fixed (10, 9) pair of the intra curve.
// Panics on non-finite or negative coefficients.
func WithIntraCoefficients(c10, c9 float64) Option {
	if !(c10 >= 0) || !(c9 >= 0) || math.IsInf(c10, 0) || math.IsInf(c9, 0) {
		panic("bound: WithIntraCoefficients(non-finite or negative)")
	}
	return func(c *config) {
		c.c10, c.c9 = c10, c9
		c.sizeScaled = false
	}
}

// WithSizeScaledCoefficients uses (n_k, n_k − 1) for each cluster k instead
// of a fixed pair; the defaults correspond to clusters of ten nodes.
func WithSizeScaledCoefficients() Option {
	return func(c *config) {
		c.sizeScaled = true
	}
}
