// SPDX-License-Identifier: MIT
// Package: kuranet/bound
//
// curves.go — ψ grid and evaluated curve bundles.

package bound

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
)

// DefaultStep is the ψ grid spacing.
const DefaultStep = 0.01

// Domain returns the grid 0, step, 2·step, … strictly below π.
func Domain(step float64) ([]float64, error) {
	if !(step > 0) || math.IsInf(step, 0) {
		return nil, fmt.Errorf("Domain(%g): %w", step, ErrInvalidStep)
	}
	n := int(math.Ceil(math.Pi / step))
	psi := make([]float64, 0, n)
	for i := 0; i < n; i++ {
		v := float64(i) * step
		if v >= math.Pi {
			break
		}
		psi = append(psi, v)
	}

	return psi, nil
}

// Curves is the evaluation of one cluster's bound functions on a ψ grid.
type Curves struct {
	Cluster int
	Psi     []float64
	Intra   []float64 // f_intra
	Inter   []float64 // f_inter
	Input   []float64 // f_input
	Demand  []float64 // −(f_intra + f_input)
	Gap     []float64 // Demand − Inter
}

// Curves evaluates cluster k on psi. A nil psi uses Domain(DefaultStep).
func (s *ParameterSet) Curves(k int, psi []float64) (*Curves, error) {
	p, err := s.Cluster(k)
	if err != nil {
		return nil, err
	}
	if psi == nil {
		if psi, err = Domain(DefaultStep); err != nil {
			return nil, err
		}
	}
	for i, v := range psi {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, fmt.Errorf("Curves: psi[%d]=%g: %w", i, v, ErrNonFinite)
		}
	}
	n := len(psi)
	c := &Curves{
		Cluster: k,
		Psi:     append([]float64(nil), psi...),
		Intra:   make([]float64, n),
		Inter:   make([]float64, n),
		Input:   make([]float64, n),
		Demand:  make([]float64, n),
		Gap:     make([]float64, n),
	}
	for i, v := range psi {
		c.Intra[i] = p.FIntra(v)
		c.Inter[i] = p.FInter(v)
		c.Input[i] = p.FInput(v)
	}
	// Demand = −(Intra + Input); Gap = Demand − Inter.
	floats.AddTo(c.Demand, c.Intra, c.Input)
	floats.Scale(-1, c.Demand)
	floats.SubTo(c.Gap, c.Demand, c.Inter)

	return c, nil
}

// MinGap returns the ψ at which Demand − Inter is smallest, the gap there and
// its grid index. An empty bundle returns index −1.
func (c *Curves) MinGap() (psi, gap float64, idx int) {
	if len(c.Gap) == 0 {
		return 0, 0, -1
	}
	idx = floats.MinIdx(c.Gap)

	return c.Psi[idx], c.Gap[idx], idx
}

// MaxGap returns the ψ at which Demand − Inter is largest.
func (c *Curves) MaxGap() (psi, gap float64, idx int) {
	if len(c.Gap) == 0 {
		return 0, 0, -1
	}
	idx = floats.MaxIdx(c.Gap)

	return c.Psi[idx], c.Gap[idx], idx
}
