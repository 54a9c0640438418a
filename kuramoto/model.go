// SPDX-License-Identifier: MIT
// Package: kuranet/kuramoto
//
// model.go — the right-hand side of the controlled Kuramoto network.

package kuramoto

import (
	"fmt"
	"math"

	"github.com/katalvlaran/kuranet/matrix"
	"github.com/katalvlaran/kuranet/params"
	"gonum.org/v1/gonum/mat"
)

const methodNewModel = "NewModel"

// Control law selectors, matching ControlParam.control_type.
const (
	ControlAverage  = 0
	ControlPeriodic = 1
)

// System is a first-order ODE dx/dt = f(t, x).
type System interface {
	// Dim returns the state dimension.
	Dim() int
	// Derivative writes f(t, x) into dst; len(dst) == len(x) == Dim().
	Derivative(t float64, x, dst []float64)
}

// Model is the controlled Kuramoto network. Derivative reuses internal
// buffers, so a Model must not be shared between goroutines.
type Model struct {
	n, m    int
	control int

	bw *mat.Dense // n×m, incidence scaled by edge weight; nil when m == 0
	bt *mat.Dense // m×n, incidence transpose; nil when m == 0
	av *mat.Dense // n×n cluster averaging

	gain       []float64
	omega      []float64
	inputOmega []float64

	theta, edge, coup, avg *mat.VecDense
}

// NewModel builds the model of net driven by ctl.
func NewModel(net *params.NetworkParam, ctl *params.ControlParam) (*Model, error) {
	if err := net.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", methodNewModel, err)
	}
	if err := ctl.ValidateFor(net); err != nil {
		return nil, fmt.Errorf("%s: %w", methodNewModel, err)
	}
	if ctl.ControlType != ControlAverage && ctl.ControlType != ControlPeriodic {
		return nil, fmt.Errorf("%s: control_type %d: %w", methodNewModel, ctl.ControlType, ErrUnknownControl)
	}

	adj, err := net.Matrix()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", methodNewModel, err)
	}
	B, w, _, err := matrix.EdgeIncidence(adj)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", methodNewModel, err)
	}

	n := net.StateDim
	md := &Model{
		n:          n,
		m:          len(w),
		control:    ctl.ControlType,
		gain:       append([]float64(nil), ctl.InputWeight...),
		omega:      append([]float64(nil), net.Frequency...),
		inputOmega: append([]float64(nil), ctl.InputFrequency...),
		theta:      mat.NewVecDense(n, nil),
		avg:        mat.NewVecDense(n, nil),
		av:         averagingMatrix(n, net.ClusterNodesNum, ctl.AverageWeight),
	}
	if md.m > 0 {
		gb, err := matrix.ToGonum(B)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", methodNewModel, err)
		}
		md.bt = mat.DenseCopyOf(gb.T())
		md.bw = mat.NewDense(n, md.m, nil)
		md.bw.Apply(func(_, j int, v float64) float64 { return v * w[j] }, gb)
		md.edge = mat.NewVecDense(md.m, nil)
		md.coup = mat.NewVecDense(n, nil)
	}

	return md, nil
}

// averagingMatrix places, for every cluster k, the row weights[k]/Σweights[k]
// on each row of the k-th diagonal block.
func averagingMatrix(n int, sizes []int, weights [][]float64) *mat.Dense {
	av := mat.NewDense(n, n, nil)
	start := 0
	for k, size := range sizes {
		sum := 0.0
		for _, v := range weights[k] {
			sum += v
		}
		for i := 0; i < size; i++ {
			for j := 0; j < size; j++ {
				av.Set(start+i, start+j, weights[k][j]/sum)
			}
		}
		start += size
	}

	return av
}

// Dim returns the number of oscillators.
func (md *Model) Dim() int { return md.n }

// Edges returns the number of coupled pairs.
func (md *Model) Edges() int { return md.m }

// Control returns the control law selector.
func (md *Model) Control() int { return md.control }

// Derivative writes ω − BW·sin(Bᵀθ) + G·sin(u) into dst.
func (md *Model) Derivative(t float64, x, dst []float64) {
	copy(md.theta.RawVector().Data, x)

	if md.m > 0 {
		md.edge.MulVec(md.bt, md.theta)
		e := md.edge.RawVector().Data
		for i := range e {
			e[i] = math.Sin(e[i])
		}
		md.coup.MulVec(md.bw, md.edge)
	}

	if md.control == ControlAverage {
		md.avg.MulVec(md.av, md.theta)
	}
	avg := md.avg.RawVector().Data
	for i := range dst {
		var u float64
		if md.control == ControlAverage {
			u = avg[i] - x[i]
		} else {
			u = md.inputOmega[i]*t - x[i]
		}
		v := md.omega[i] + md.gain[i]*math.Sin(u)
		if md.m > 0 {
			v -= md.coup.AtVec(i)
		}
		dst[i] = v
	}
}
