// SPDX-License-Identifier: MIT
// Package: kuranet/params
//
// generate.go — synthesis of parameter documents from an ExperimentConfig.
//
// Draw order from the single seeded stream: natural frequencies, intra
// blocks (cluster order), inter blocks (link order), damage sample.

package params

import (
	"errors"
	"fmt"
	"io/fs"
	"math/rand"
	"os"

	"github.com/katalvlaran/kuranet/builder"
	"github.com/katalvlaran/kuranet/cluster"
	"github.com/katalvlaran/kuranet/matrix"
)

// Names of the generated network documents.
const (
	NetworkOriginal = "original"
	NetworkDamaged  = "damaged"
)

// Generated is the output of Generate.
type Generated struct {
	Original *NetworkParam
	// Damaged is nil when damage is disabled.
	Damaged *NetworkParam
	Control *ControlParam
	Common  CommonParam
	// Report lists the damaged edges; nil when damage is disabled.
	Report   *cluster.DamageReport
	Manifest Manifest
}

// Generate builds the documents described by cfg.
func Generate(cfg ExperimentConfig) (*Generated, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	p, err := cluster.NewPartition(cfg.ClusterSizes...)
	if err != nil {
		return nil, fmt.Errorf("Generate: %w", err)
	}
	rng := rand.New(rand.NewSource(cfg.Seed))
	copts := []cluster.Option{cluster.WithRand(rng)}

	freq, err := cluster.NaturalFrequencies(p, cfg.Frequency.Means, cfg.Frequency.Sigma, copts...)
	if err != nil {
		return nil, fmt.Errorf("Generate: %w", err)
	}

	intra := make([]matrix.Matrix, p.Len())
	for k := range intra {
		ctor, err := intraConstructor(cfg.Intra, p.Size(k))
		if err != nil {
			return nil, err
		}
		blk, err := builder.Generate(ctor, cfg.Intra.Lower, cfg.Intra.Upper, builder.WithRand(rng))
		if err != nil {
			return nil, fmt.Errorf("Generate: intra %d: %w", k, err)
		}
		intra[k] = blk
	}

	inter := cluster.InterSpec{Min: cfg.Inter.Min, Range: cfg.Inter.Range, Density: cfg.Inter.Density}
	if len(cfg.Inter.Links) > 0 {
		inter.Links = cfg.Inter.Links
	}
	comp, err := cluster.Compose(p, intra, inter, copts...)
	if err != nil {
		return nil, fmt.Errorf("Generate: %w", err)
	}

	n := p.N()
	orig := &NetworkParam{
		Comment:         cfg.Comment,
		StateDim:        n,
		InputDim:        n,
		RandomRange:     cfg.RandomRange,
		ClusterNodesNum: p.Sizes(),
		Frequency:       freq,
		Connectivity:    comp.Full.ToRows(),
	}
	out := &Generated{
		Original: orig,
		Control:  defaultControl(cfg, p),
		Common:   cfg.Common,
		Manifest: NewManifest(cfg),
	}
	out.Manifest.Networks = []string{NetworkOriginal}
	out.Manifest.Controls = []string{cfg.Control.Name}

	if cfg.Damage.Enabled {
		r, err := p.Range(cfg.Damage.Cluster)
		if err != nil {
			return nil, fmt.Errorf("Generate: %w", err)
		}
		damaged, report, err := cluster.DamageWithReport(comp.Full, r, cfg.Damage.Fraction,
			cluster.WithRand(rng), cluster.WithAttenuation(cfg.Damage.Attenuation))
		if err != nil {
			return nil, fmt.Errorf("Generate: %w", err)
		}
		out.Damaged = orig.Clone()
		out.Damaged.SetMatrix(damaged)
		out.Report = report
		out.Manifest.Networks = append(out.Manifest.Networks, NetworkDamaged)
	}

	return out, nil
}

// Write stores every generated document under l and the manifest beside
// them. The common file is written only when absent.
func (g *Generated) Write(l Layout) error {
	if err := l.Ensure(); err != nil {
		return err
	}
	if err := Save(l.NetworkFile(NetworkOriginal), g.Original); err != nil {
		return err
	}
	if g.Damaged != nil {
		if err := Save(l.NetworkFile(NetworkDamaged), g.Damaged); err != nil {
			return err
		}
	}
	if err := Save(l.ControlFile(g.Manifest.Config.Control.Name), g.Control); err != nil {
		return err
	}
	if _, err := os.Stat(l.CommonFile()); errors.Is(err, fs.ErrNotExist) {
		if err = Save(l.CommonFile(), g.Common); err != nil {
			return err
		}
	}

	return WriteManifest(l.ManifestFile(), g.Manifest)
}

func intraConstructor(s IntraSpec, n int) (builder.Constructor, error) {
	switch s.Model {
	case ModelComplete:
		return builder.Complete(n), nil
	case ModelWattsStrogatz:
		return builder.WattsStrogatz(n, s.K, s.P), nil
	case ModelHolmeKim:
		return builder.HolmeKim(n, s.N0, s.K, s.P), nil
	case ModelRandomSparse:
		return builder.RandomSparse(n, s.P), nil
	default:
		return nil, invalidf("IntraSpec", "unknown model %q", s.Model)
	}
}

// defaultControl drives every oscillator with the configured gain at its
// cluster's mean frequency and averages each cluster uniformly.
func defaultControl(cfg ExperimentConfig, p cluster.Partition) *ControlParam {
	n := p.N()
	c := &ControlParam{
		Comment:        fmt.Sprintf("type:%d gain:%g", cfg.Control.Type, cfg.Control.Gain),
		ControlType:    cfg.Control.Type,
		InputWeight:    make([]float64, n),
		InputFrequency: make([]float64, n),
		AverageWeight:  make([][]float64, p.Len()),
	}
	for k, r := range p.Ranges() {
		for i := r.Start; i < r.End; i++ {
			c.InputWeight[i] = cfg.Control.Gain
			c.InputFrequency[i] = cfg.Frequency.Means[k]
		}
		c.AverageWeight[k] = make([]float64, r.Len())
		for j := range c.AverageWeight[k] {
			c.AverageWeight[k][j] = 1
		}
	}

	return c
}
