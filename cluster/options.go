// SPDX-License-Identifier: MIT
// Package: kuranet/cluster
//
// options.go — functional options shared by Compose, Damage and
// NaturalFrequencies. Option constructors panic on meaningless values.

package cluster

import (
	"math"
	"math/rand"
)

// DefaultAttenuation is the factor applied to damaged edges.
const DefaultAttenuation = 0.1

// Option customizes a cluster operation.
type Option func(*config)

type config struct {
	rng         *rand.Rand
	attenuation float64
}

func newConfig(opts ...Option) config {
	cfg := config{attenuation: DefaultAttenuation}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// WithRand provides an explicit RNG. Panics on nil.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("cluster: WithRand(nil)")
	}
	return func(c *config) { c.rng = r }
}

// WithSeed creates a deterministic RNG from seed.
func WithSeed(seed int64) Option {
	return func(c *config) { c.rng = rand.New(rand.NewSource(seed)) }
}

// WithAttenuation sets the multiplicative factor applied by Damage.
// Panics unless factor is finite and ≥ 0.
func WithAttenuation(factor float64) Option {
	if factor < 0 || math.IsNaN(factor) || math.IsInf(factor, 0) {
		panic("cluster: WithAttenuation(factor<0 or non-finite)")
	}
	return func(c *config) { c.attenuation = factor }
}
