// Package dfs builds depth-first spanning trees over weighted adjacency
// matrices and turns them into oriented incidence matrices.
//
// What:
//
//   - SpanningTree(adj, opts...): iterative stack-based DFS from a root
//     (default node 0), scanning neighbours in ascending index. Returns the
//     Tree with discovery order, parents, depths and parent→child edges.
//   - SpanningTreeIncidence(adj, opts...): the N×(N−1) incidence of that tree,
//     −1 at the parent row and +1 at the child row of each column.
//
// Why:
//   - The phase-locking analysis of a coupled oscillator network works on
//     the phase differences along a spanning tree: Bᵀθ lists N−1 independent
//     differences, one per tree edge.
//
// Key Types & Constants:
//
//   - VertexState: White, Gray, Black (visitation markers)
//   - Option / DFSOptions: Context, Root, Threshold, OnVisit, OnTreeEdge
//   - Tree: Root, Order, Parent, Depth, Edges
//
// Errors:
//   - ErrDisconnectedGraph when the graph has more than one component.
//   - ErrRootOutOfRange for a root outside [0, N).
package dfs
