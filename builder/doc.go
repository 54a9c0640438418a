// Package builder generates the random weighted topologies used as cluster
// couplings: complete graphs, Watts–Strogatz small worlds, Holme–Kim
// clustered scale-free graphs and G(n,p) random graphs.
//
// The package offers the following key components:
//
//   - Topology constructors (Constructor closures over gonum simple graphs):
//     Complete(n), WattsStrogatz(n, k, p), HolmeKim(n, n0, k, p), RandomSparse(n, p).
//   - Projections onto dense matrices: BuildAdjacency (0/1), BuildWeighted
//     (custom WeightFn) and Generate (uniform weights in [lower, upper)).
//   - Configuration primitives: BuilderOption, WithSeed, WithRand, WithWeightFn.
//   - Cumulative: a reusable degree-proportional sampler (prefix sums + binary search).
//
// Guarantees:
//
//   - Symmetric output with zero diagonal; weights lie in [lower, upper].
//   - Fast-fail on invalid option parameters via panics in option constructors.
//   - Sentinel runtime errors (ErrInvalidParameter and refinements,
//     ErrNeedRandSource) wrapped with the constructor name.
//   - Determinism: a fixed seed reproduces topology and weights exactly.
package builder
