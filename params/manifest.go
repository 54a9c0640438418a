// SPDX-License-Identifier: MIT
// Package: kuranet/params

package params

import (
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"
)

// Manifest records how a parameter folder was generated.
type Manifest struct {
	RunID    uuid.UUID        `yaml:"run_id"`
	Created  time.Time        `yaml:"created"`
	Seed     int64            `yaml:"seed"`
	Networks []string         `yaml:"networks"`
	Controls []string         `yaml:"controls"`
	Config   ExperimentConfig `yaml:"config"`
}

// NewManifest stamps cfg with a fresh run ID and the current UTC time.
func NewManifest(cfg ExperimentConfig) Manifest {
	return Manifest{
		RunID:   uuid.New(),
		Created: time.Now().UTC().Truncate(time.Second),
		Seed:    cfg.Seed,
		Config:  cfg,
	}
}

// WriteManifest writes m as YAML.
func WriteManifest(path string, m Manifest) error {
	data, err := yaml.Marshal(m)
	if err != nil {
		return fmt.Errorf("params: encode manifest: %w", err)
	}
	if err = os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("params: write %s: %w", path, err)
	}

	return nil
}

// ReadManifest decodes a manifest written by WriteManifest.
func ReadManifest(path string) (Manifest, error) {
	var m Manifest
	data, err := os.ReadFile(path)
	if err != nil {
		return m, fmt.Errorf("params: read %s: %w", path, err)
	}
	if err = yaml.Unmarshal(data, &m); err != nil {
		return m, fmt.Errorf("params: decode %s: %w", path, err)
	}

	return m, nil
}
