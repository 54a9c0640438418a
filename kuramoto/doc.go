// Package kuramoto integrates a controlled network of Kuramoto oscillators.
//
// The phase vector θ ∈ ℝⁿ evolves as
//
//	dθ/dt = ω − B·W·sin(Bᵀθ) + G·sin(u)
//
// where B is the edge incidence of the coupling graph, W the diagonal of edge
// weights, G the diagonal of input gains and u the control signal:
//
//	ControlAverage:  u = Aθ − θ   (A averages each cluster with fixed weights)
//	ControlPeriodic: u = Ωt − θ   (Ω the per-oscillator input frequencies)
//
// Euler and RK4 steppers advance a System; Simulate drives a stepper over a
// horizon, wraps phases into [0, 2π) after every step and streams samples to
// a Sink such as phase.TraceWriter.
package kuramoto
