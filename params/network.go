// SPDX-License-Identifier: MIT
// Package: kuranet/params
//
// network.go — the JSON parameter documents.

package params

import (
	"math"

	"github.com/katalvlaran/kuranet/cluster"
	"github.com/katalvlaran/kuranet/matrix"
)

// NetworkParam describes one oscillator network.
type NetworkParam struct {
	Comment         string      `json:"comment" yaml:"comment"`
	StateDim        int         `json:"state_dim" yaml:"state_dim" validate:"gte=1"`
	InputDim        int         `json:"input_dim" yaml:"input_dim" validate:"gte=0"`
	RandomRange     float64     `json:"random_range" yaml:"random_range" validate:"gte=0,lte=1"`
	ClusterNodesNum []int       `json:"cluster_nodes_num" yaml:"cluster_nodes_num" validate:"required,min=1,dive,gte=1"`
	Frequency       []float64   `json:"frequency" yaml:"frequency" validate:"required"`
	Connectivity    [][]float64 `json:"connectivity" yaml:"connectivity" validate:"required"`
}

// Validate checks tags and the cross-field shape rules: frequency length,
// square symmetric connectivity with zero diagonal, and cluster sizes
// summing to state_dim.
func (n *NetworkParam) Validate() error {
	const kind = "NetworkParam"
	if n == nil {
		return invalidf(kind, "nil document")
	}
	if err := validateStruct(kind, n); err != nil {
		return err
	}
	if len(n.Frequency) != n.StateDim {
		return invalidf(kind, "frequency has %d entries, state_dim is %d", len(n.Frequency), n.StateDim)
	}
	sum := 0
	for _, s := range n.ClusterNodesNum {
		sum += s
	}
	if sum != n.StateDim {
		return invalidf(kind, "cluster_nodes_num sums to %d, state_dim is %d", sum, n.StateDim)
	}
	if len(n.Connectivity) != n.StateDim {
		return invalidf(kind, "connectivity has %d rows, state_dim is %d", len(n.Connectivity), n.StateDim)
	}
	for i, row := range n.Connectivity {
		if len(row) != n.StateDim {
			return invalidf(kind, "connectivity row %d has %d entries", i, len(row))
		}
	}
	for i, f := range n.Frequency {
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return invalidf(kind, "frequency[%d]=%g", i, f)
		}
	}
	A, err := n.Matrix()
	if err != nil {
		return invalidf(kind, "connectivity: %v", err)
	}
	if err = matrix.ValidateAdjacency(A); err != nil {
		return invalidf(kind, "connectivity: %v", err)
	}

	return nil
}

// Partition returns the cluster layout.
func (n *NetworkParam) Partition() (cluster.Partition, error) {
	return cluster.NewPartition(n.ClusterNodesNum...)
}

// Matrix copies the connectivity into a Dense.
func (n *NetworkParam) Matrix() (*matrix.Dense, error) {
	return matrix.NewDenseFromRows(n.Connectivity)
}

// SetMatrix replaces the connectivity with the rows of m.
func (n *NetworkParam) SetMatrix(m *matrix.Dense) {
	n.Connectivity = m.ToRows()
}

// Clone returns a deep copy.
func (n *NetworkParam) Clone() *NetworkParam {
	out := *n
	out.ClusterNodesNum = append([]int(nil), n.ClusterNodesNum...)
	out.Frequency = append([]float64(nil), n.Frequency...)
	out.Connectivity = make([][]float64, len(n.Connectivity))
	for i, row := range n.Connectivity {
		out.Connectivity[i] = append([]float64(nil), row...)
	}

	return &out
}

// ControlParam describes the control input applied to a network.
type ControlParam struct {
	Comment        string      `json:"comment" yaml:"comment"`
	ControlType    int         `json:"control_type" yaml:"control_type" validate:"gte=0"`
	InputWeight    []float64   `json:"input_weight" yaml:"input_weight" validate:"required"`
	InputFrequency []float64   `json:"input_frequency" yaml:"input_frequency" validate:"required"`
	AverageWeight  [][]float64 `json:"average_weight" yaml:"average_weight" validate:"required"`
}

// Validate checks tags only; use ValidateFor to match a network.
func (c *ControlParam) Validate() error {
	if c == nil {
		return invalidf("ControlParam", "nil document")
	}

	return validateStruct("ControlParam", c)
}

// ValidateFor checks the control document against the network it drives:
// one gain and one input frequency per oscillator, one averaging row per
// cluster of matching size with a positive, finite sum.
func (c *ControlParam) ValidateFor(n *NetworkParam) error {
	const kind = "ControlParam"
	if err := c.Validate(); err != nil {
		return err
	}
	if len(c.InputWeight) != n.StateDim {
		return invalidf(kind, "input_weight has %d entries, state_dim is %d", len(c.InputWeight), n.StateDim)
	}
	if len(c.InputFrequency) != n.StateDim {
		return invalidf(kind, "input_frequency has %d entries, state_dim is %d", len(c.InputFrequency), n.StateDim)
	}
	if len(c.AverageWeight) != len(n.ClusterNodesNum) {
		return invalidf(kind, "average_weight has %d rows for %d clusters", len(c.AverageWeight), len(n.ClusterNodesNum))
	}
	for k, row := range c.AverageWeight {
		if len(row) != n.ClusterNodesNum[k] {
			return invalidf(kind, "average_weight[%d] has %d entries, cluster size %d", k, len(row), n.ClusterNodesNum[k])
		}
		sum := 0.0
		for _, v := range row {
			sum += v
		}
		if !(sum > 0) || math.IsInf(sum, 0) {
			return invalidf(kind, "average_weight[%d] sums to %g", k, sum)
		}
	}
	for _, xs := range [][]float64{c.InputWeight, c.InputFrequency} {
		for i, v := range xs {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return invalidf(kind, "non-finite entry %d", i)
			}
		}
	}

	return nil
}

// CommonParam holds the integration settings shared by every run.
type CommonParam struct {
	Dt             float64  `json:"dt" yaml:"dt" validate:"gt=0"`
	SimulationTime float64  `json:"simulation_time" yaml:"simulation_time" validate:"gt=0"`
	RandomRange    float64  `json:"random_range" yaml:"random_range" validate:"gte=0,lte=1"`
	RandomSeeds    []uint64 `json:"random_seeds" yaml:"random_seeds" validate:"required,min=1"`
}

// Validate checks the tags and that dt does not exceed the horizon.
func (c *CommonParam) Validate() error {
	const kind = "CommonParam"
	if c == nil {
		return invalidf(kind, "nil document")
	}
	if err := validateStruct(kind, c); err != nil {
		return err
	}
	if c.Dt > c.SimulationTime {
		return invalidf(kind, "dt %g exceeds simulation_time %g", c.Dt, c.SimulationTime)
	}

	return nil
}

// DefaultCommon returns dt 0.01 over 50 time units, full-circle initial
// phases and a single seed.
func DefaultCommon() CommonParam {
	return CommonParam{Dt: 0.01, SimulationTime: 50, RandomRange: 1, RandomSeeds: []uint64{0}}
}
