// Package cluster assembles clustered coupling matrices.
//
// A Partition splits N oscillators into K contiguous clusters. Compose places
// per-cluster intra-coupling blocks on the block diagonal and fills the
// off-diagonal blocks with sparse random inter-cluster coupling. Damage
// attenuates a random fraction of the edges inside one index range, modelling
// a lesion in one cluster. NaturalFrequencies draws per-cluster Gaussian
// natural frequencies.
//
// All operations return new matrices; inputs are never mutated.
package cluster
