// Package matrix offers the dense numeric substrate of kuranet.
//
// The matrix package provides:
//
//   - Dense: a row-major float64 matrix with bounds-checked At/Set, Clone,
//     block extraction (Block/SetBlock) and index-set copies (Induced).
//   - Validators for adjacency semantics: square, symmetric, zero diagonal,
//     non-negative, finite (ValidateAdjacency composes them).
//   - Graph helpers over weighted adjacency: row/column sums, the weighted
//     Laplacian and its inverse mapping, incidence builders (spanning-tree
//     edges, all-pairs, all-edges) and a connectivity check.
//   - Interop with gonum (ToGonum/FromGonum) and the spectral radius of a
//     coupling matrix (MaxEigenvalue).
//
// Matrices here are small (N ≤ a few hundred oscillators), so every kernel is
// a plain deterministic loop; O(N²) memory is always acceptable.
package matrix
