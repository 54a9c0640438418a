// Package dfs defines types and options for the depth-first spanning-tree
// walk over a weighted adjacency matrix: cancellation, root selection, edge
// threshold, discovery hooks and the resulting tree.
package dfs

import (
	"context"
	"errors"

	"github.com/katalvlaran/kuranet/matrix"
)

// VertexState represents the DFS visitation state of a node.
const (
	White = iota // White: the node has not been discovered yet.
	Gray         // Gray: the node is on the explicit stack.
	Black        // Black: the node and all its descendants have been fully explored.
)

var (
	// ErrDisconnectedGraph is returned when the walk from the root does not
	// reach every node, so no spanning tree exists.
	ErrDisconnectedGraph = errors.New("dfs: graph is disconnected")

	// ErrRootOutOfRange indicates that the requested root is not a node index.
	ErrRootOutOfRange = errors.New("dfs: root out of range")
)

// Option configures optional behavior of the spanning-tree walk.
type Option func(*DFSOptions)

// DFSOptions holds configurable parameters for the walk.
type DFSOptions struct {
	// Ctx allows cancellation; checked once per stack step.
	Ctx context.Context

	// Root is the start node; default 0.
	Root int

	// Threshold: an entry a_ij counts as an edge when a_ij > Threshold. Default 0.
	Threshold float64

	// OnVisit, if non-nil, is invoked when a node is discovered (pre-order).
	// Returning an error aborts the walk with that error.
	OnVisit func(node int) error

	// OnTreeEdge, if non-nil, is invoked for each recorded parent→child edge.
	OnTreeEdge func(e matrix.Edge) error
}

// DefaultOptions returns DFSOptions with a background context, root 0,
// threshold 0 and no hooks.
func DefaultOptions() DFSOptions {
	return DFSOptions{
		Ctx:       context.Background(),
		Root:      0,
		Threshold: 0,
	}
}

// WithContext returns an Option that sets the Context for the walk.
// Passing a nil context has no effect (Background is retained).
func WithContext(ctx context.Context) Option {
	return func(o *DFSOptions) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithRoot returns an Option that starts the walk at node root.
func WithRoot(root int) Option {
	return func(o *DFSOptions) {
		o.Root = root
	}
}

// WithThreshold treats entries ≤ eps as absent edges. Panics on negative eps.
func WithThreshold(eps float64) Option {
	if eps < 0 {
		panic("dfs: WithThreshold(eps<0)")
	}
	return func(o *DFSOptions) {
		o.Threshold = eps
	}
}

// WithOnVisit installs fn as a pre-order hook.
func WithOnVisit(fn func(node int) error) Option {
	return func(o *DFSOptions) {
		o.OnVisit = fn
	}
}

// WithOnTreeEdge installs fn as a hook on each recorded tree edge.
func WithOnTreeEdge(fn func(e matrix.Edge) error) Option {
	return func(o *DFSOptions) {
		o.OnTreeEdge = fn
	}
}

// Tree captures a depth-first spanning tree.
type Tree struct {
	// Root is the start node.
	Root int
	// Order lists nodes in discovery (pre-order) sequence.
	Order []int
	// Parent[v] is the tree parent of v; −1 for the root.
	Parent []int
	// Depth[v] is the number of tree edges between the root and v.
	Depth []int
	// Edges lists parent→child edges in discovery order; len == N−1.
	Edges []matrix.Edge
}

// N returns the number of nodes spanned.
func (t *Tree) N() int { return len(t.Parent) }

// Incidence returns the N×(N−1) oriented incidence of the tree edges
// (−1 at parent, +1 at child).
func (t *Tree) Incidence() (*matrix.Dense, error) {
	return matrix.NewIncidence(t.N(), t.Edges)
}
