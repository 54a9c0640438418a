// SPDX-License-Identifier: MIT
// Package: kuranet/kuramoto
//
// stepper.go — explicit fixed-step integrators.

package kuramoto

import "gonum.org/v1/gonum/floats"

// Stepper advances x in place from t to t+dt.
type Stepper interface {
	Step(sys System, t, dt float64, x []float64)
}

// Euler is the forward Euler method.
type Euler struct {
	k []float64
}

// Step applies x ← x + dt·f(t, x).
func (e *Euler) Step(sys System, t, dt float64, x []float64) {
	e.k = grow(e.k, len(x))
	sys.Derivative(t, x, e.k)
	floats.AddScaled(x, dt, e.k)
}

// RK4 is the classical fourth-order Runge–Kutta method.
type RK4 struct {
	k1, k2, k3, k4, tmp []float64
}

// Step applies x ← x + dt/6·(k1 + 2k2 + 2k3 + k4).
func (r *RK4) Step(sys System, t, dt float64, x []float64) {
	n := len(x)
	r.k1, r.k2, r.k3, r.k4 = grow(r.k1, n), grow(r.k2, n), grow(r.k3, n), grow(r.k4, n)
	r.tmp = grow(r.tmp, n)
	half := dt / 2

	sys.Derivative(t, x, r.k1)
	floats.AddScaledTo(r.tmp, x, half, r.k1)
	sys.Derivative(t+half, r.tmp, r.k2)
	floats.AddScaledTo(r.tmp, x, half, r.k2)
	sys.Derivative(t+half, r.tmp, r.k3)
	floats.AddScaledTo(r.tmp, x, dt, r.k3)
	sys.Derivative(t+dt, r.tmp, r.k4)

	for i := range x {
		x[i] += dt / 6 * (r.k1[i] + 2*r.k2[i] + 2*r.k3[i] + r.k4[i])
	}
}

// NewStepper returns the integrator called name ("euler" or "rk4").
func NewStepper(name string) (Stepper, error) {
	switch name {
	case "euler":
		return &Euler{}, nil
	case "rk4", "":
		return &RK4{}, nil
	default:
		return nil, errUnknownStepper(name)
	}
}

func grow(buf []float64, n int) []float64 {
	if cap(buf) < n {
		return make([]float64, n)
	}

	return buf[:n]
}
