// SPDX-License-Identifier: MIT
// Package: kuranet/params
//
// experiment.go — YAML description of a synthetic experiment.

package params

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Intra-cluster topology models.
const (
	ModelComplete      = "complete"
	ModelWattsStrogatz = "watts_strogatz"
	ModelHolmeKim      = "holme_kim"
	ModelRandomSparse  = "random_sparse"
)

// FrequencySpec draws natural frequencies N(Means[k], Sigma²) per cluster.
type FrequencySpec struct {
	Means []float64 `yaml:"means" validate:"required,min=1"`
	Sigma float64   `yaml:"sigma" validate:"gte=0"`
}

// IntraSpec selects the topology and weight interval of every intra block.
//
// K and P parameterize watts_strogatz (K neighbours, rewiring P), holme_kim
// (K edges per new node, triad P, seed clique N0) and random_sparse (edge
// probability P).
type IntraSpec struct {
	Model string  `yaml:"model" validate:"oneof=complete watts_strogatz holme_kim random_sparse"`
	K     int     `yaml:"k" validate:"gte=0"`
	P     float64 `yaml:"p" validate:"gte=0,lte=1"`
	N0    int     `yaml:"n0" validate:"gte=0"`
	Lower float64 `yaml:"lower" validate:"gte=0"`
	Upper float64 `yaml:"upper" validate:"gte=0"`
}

// InterSpec draws the off-diagonal blocks. Links lists the coupled cluster
// pairs; an empty list couples every pair.
type InterSpec struct {
	Min     float64  `yaml:"min" validate:"gte=0"`
	Range   float64  `yaml:"range" validate:"gte=0"`
	Density float64  `yaml:"density" validate:"gte=0,lte=1"`
	Links   [][2]int `yaml:"links"`
}

// DamageSpec attenuates a fraction of one cluster's intra edges.
type DamageSpec struct {
	Enabled     bool    `yaml:"enabled"`
	Cluster     int     `yaml:"cluster" validate:"gte=0"`
	Fraction    float64 `yaml:"fraction" validate:"gte=0,lte=1"`
	Attenuation float64 `yaml:"attenuation" validate:"gte=0"`
}

// ControlSpec sets the generated control document: one gain for every
// oscillator, each cluster driven at its mean frequency, uniform averaging.
type ControlSpec struct {
	Name string  `yaml:"name" validate:"required"`
	Type int     `yaml:"type" validate:"gte=0"`
	Gain float64 `yaml:"gain" validate:"gte=0"`
}

// ExperimentConfig is the YAML input of Generate.
type ExperimentConfig struct {
	Comment      string        `yaml:"comment"`
	ClusterSizes []int         `yaml:"cluster_sizes" validate:"required,min=1,dive,gte=2"`
	Frequency    FrequencySpec `yaml:"frequency"`
	Intra        IntraSpec     `yaml:"intra"`
	Inter        InterSpec     `yaml:"inter"`
	Damage       DamageSpec    `yaml:"damage"`
	Control      ControlSpec   `yaml:"control"`
	Common       CommonParam   `yaml:"common"`
	RandomRange  float64       `yaml:"random_range" validate:"gte=0,lte=1"`
	Seed         int64         `yaml:"seed"`
}

// DefaultExperiment returns three Watts–Strogatz clusters of ten nodes with
// frequencies around 5, 10 and 15, weak chained inter coupling and half of
// the middle cluster's edges attenuated tenfold.
func DefaultExperiment() ExperimentConfig {
	return ExperimentConfig{
		Comment:      "model:ws freq:[5 10 15] freq_s:1.0 intra:1.0-2.0 inter:0.1-0.2 damage:random(0.5)",
		ClusterSizes: []int{10, 10, 10},
		Frequency:    FrequencySpec{Means: []float64{5, 10, 15}, Sigma: 1},
		Intra:        IntraSpec{Model: ModelWattsStrogatz, K: 7, P: 0.5, Lower: 1, Upper: 2},
		Inter:        InterSpec{Min: 0.1, Range: 0.1, Density: 0.5, Links: [][2]int{{0, 1}, {1, 2}}},
		Damage:       DamageSpec{Enabled: true, Cluster: 1, Fraction: 0.5, Attenuation: 0.1},
		Control:      ControlSpec{Name: "average", Type: 0, Gain: 1},
		Common:       DefaultCommon(),
		RandomRange:  1,
	}
}

// Validate checks tags and the cross-field rules.
func (c *ExperimentConfig) Validate() error {
	const kind = "ExperimentConfig"
	if err := validateStruct(kind, c); err != nil {
		return err
	}
	if len(c.Frequency.Means) != len(c.ClusterSizes) {
		return invalidf(kind, "%d frequency means for %d clusters", len(c.Frequency.Means), len(c.ClusterSizes))
	}
	if c.Intra.Upper < c.Intra.Lower {
		return invalidf(kind, "intra upper %g below lower %g", c.Intra.Upper, c.Intra.Lower)
	}
	if c.Damage.Enabled && c.Damage.Cluster >= len(c.ClusterSizes) {
		return invalidf(kind, "damage cluster %d of %d", c.Damage.Cluster, len(c.ClusterSizes))
	}

	return c.Common.Validate()
}

// LoadExperiment reads a YAML file over DefaultExperiment, so omitted keys
// keep their defaults.
func LoadExperiment(path string) (ExperimentConfig, error) {
	cfg := DefaultExperiment()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("params: read %s: %w", path, err)
	}
	if err = yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("params: decode %s: %v: %w", path, err, ErrInvalidParams)
	}
	if err = cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("params: %s: %w", path, err)
	}

	return cfg, nil
}

// SaveExperiment writes cfg as YAML.
func SaveExperiment(path string, cfg ExperimentConfig) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("params: encode %s: %w", path, err)
	}

	return os.WriteFile(path, data, 0o644)
}
