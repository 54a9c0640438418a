// SPDX-License-Identifier: MIT

// Package matrix: domain types shared by the dense kernels and the graph
// helpers (adjacency, incidence). Errors live in errors.go.
package matrix

// Matrix represents a two-dimensional mutable array of float64 values.
//
// Complexity notes: all methods are expected O(1) except Clone (O(r*c)).
type Matrix interface {
	// Rows returns the number of rows in the matrix.
	Rows() int

	// Cols returns the number of columns in the matrix.
	Cols() int

	// At retrieves the element at position (i, j).
	// Returns ErrOutOfRange if i<0, i>=Rows(), j<0 or j>=Cols().
	At(i, j int) (float64, error)

	// Set assigns the value v at position (i, j).
	// Returns ErrOutOfRange if indices are invalid.
	Set(i, j int, v float64) error

	// Clone returns a deep copy of the matrix.
	// Complexity: O(rows*cols).
	Clone() Matrix
}

// Edge is an oriented pair of node indices (From → To) used by incidence
// builders. For undirected adjacency the orientation only fixes the sign
// convention of the incidence column: −1 at From, +1 at To.
type Edge struct {
	From int // parent / source row
	To   int // child / target row
}
