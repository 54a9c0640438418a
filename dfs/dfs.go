// Package dfs implements the depth-first spanning tree of a weighted
// adjacency matrix and its oriented incidence matrix.
//
// Walk:
//   - An explicit stack seeded with the root; visited flags per node.
//   - The top of the stack scans neighbours in ascending index and pushes the
//     first undiscovered one whose weight exceeds the threshold, recording the
//     edge parent→child. With no such neighbour the top is popped.
//
// Complexity:
//
//   - Time:   O(N²) on a dense matrix (each row is rescanned from a cursor, so
//     every cell is read at most once).
//   - Memory: O(N) for the stack, cursors and metadata.
//
// Errors:
//
//   - matrix.ErrNilMatrix / matrix.ErrNonSquare for a bad input.
//   - ErrRootOutOfRange       if the root is not a node.
//   - ErrDisconnectedGraph    if fewer than N nodes are reached.
//   - context.Canceled        if ctx is done.
//   - any error returned by OnVisit or OnTreeEdge.
package dfs

import (
	"fmt"

	"github.com/katalvlaran/kuranet/matrix"
)

const (
	methodSpanningTree          = "SpanningTree"
	methodSpanningTreeIncidence = "SpanningTreeIncidence"
)

// treeWalker encapsulates state during the walk.
type treeWalker struct {
	adj    matrix.Matrix
	n      int
	opts   DFSOptions
	state  []int // White/Gray/Black per node
	cursor []int // next neighbour index to scan per node
	tree   *Tree
}

// SpanningTree runs the iterative DFS and returns the discovered tree.
func SpanningTree(adj matrix.Matrix, opts ...Option) (*Tree, error) {
	// 1. Validate input matrix.
	if err := matrix.ValidateNotNil(adj); err != nil {
		return nil, fmt.Errorf("%s: %w", methodSpanningTree, err)
	}
	if err := matrix.ValidateSquare(adj); err != nil {
		return nil, fmt.Errorf("%s: %w", methodSpanningTree, err)
	}

	// 2. Apply options.
	dopts := DefaultOptions()
	for _, fn := range opts {
		fn(&dopts)
	}
	n := adj.Rows()
	if dopts.Root < 0 || dopts.Root >= n {
		return nil, fmt.Errorf("%s: root %d with %d nodes: %w", methodSpanningTree, dopts.Root, n, ErrRootOutOfRange)
	}

	// 3. Walk.
	w := &treeWalker{
		adj:    adj,
		n:      n,
		opts:   dopts,
		state:  make([]int, n),
		cursor: make([]int, n),
		tree: &Tree{
			Root:   dopts.Root,
			Order:  make([]int, 0, n),
			Parent: make([]int, n),
			Depth:  make([]int, n),
			Edges:  make([]matrix.Edge, 0, n),
		},
	}
	for i := range w.tree.Parent {
		w.tree.Parent[i] = -1
	}
	if err := w.run(); err != nil {
		return nil, fmt.Errorf("%s: %w", methodSpanningTree, err)
	}

	// 4. Every node must be reached.
	if len(w.tree.Order) < n {
		return nil, fmt.Errorf("%s: reached %d of %d nodes: %w",
			methodSpanningTree, len(w.tree.Order), n, ErrDisconnectedGraph)
	}

	return w.tree, nil
}

// SpanningTreeIncidence returns the N×(N−1) incidence of the DFS spanning
// tree: column e holds −1 at the parent and +1 at the child of the e-th
// discovered edge. A single node yields a 1×0 matrix.
func SpanningTreeIncidence(adj matrix.Matrix, opts ...Option) (*matrix.Dense, error) {
	t, err := SpanningTree(adj, opts...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", methodSpanningTreeIncidence, err)
	}
	B, err := t.Incidence()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", methodSpanningTreeIncidence, err)
	}

	return B, nil
}

// run drives the explicit stack.
func (w *treeWalker) run() error {
	if err := w.discover(w.opts.Root, -1); err != nil {
		return err
	}
	stack := []int{w.opts.Root}
	for len(stack) > 0 {
		if err := w.opts.Ctx.Err(); err != nil {
			return err
		}
		top := stack[len(stack)-1]
		next, err := w.nextChild(top)
		if err != nil {
			return err
		}
		if next < 0 {
			w.state[top] = Black
			stack = stack[:len(stack)-1]
			continue
		}
		e := matrix.Edge{From: top, To: next}
		w.tree.Edges = append(w.tree.Edges, e)
		if w.opts.OnTreeEdge != nil {
			if err = w.opts.OnTreeEdge(e); err != nil {
				return err
			}
		}
		if err = w.discover(next, top); err != nil {
			return err
		}
		stack = append(stack, next)
	}

	return nil
}

// discover marks v Gray and records its metadata.
func (w *treeWalker) discover(v, parent int) error {
	w.state[v] = Gray
	w.tree.Order = append(w.tree.Order, v)
	w.tree.Parent[v] = parent
	if parent >= 0 {
		w.tree.Depth[v] = w.tree.Depth[parent] + 1
	}
	if w.opts.OnVisit != nil {
		return w.opts.OnVisit(v)
	}

	return nil
}

// nextChild advances the cursor of u to its first White neighbour, or −1.
func (w *treeWalker) nextChild(u int) (int, error) {
	for ; w.cursor[u] < w.n; w.cursor[u]++ {
		v := w.cursor[u]
		if v == u || w.state[v] != White {
			continue
		}
		a, err := w.adj.At(u, v)
		if err != nil {
			return -1, err
		}
		if a > w.opts.Threshold {
			w.cursor[u]++
			return v, nil
		}
	}

	return -1, nil
}
