package dfs_test

import (
	"context"
	"errors"
	"testing"

	"github.com/katalvlaran/kuranet/builder"
	"github.com/katalvlaran/kuranet/dfs"
	"github.com/katalvlaran/kuranet/matrix"
	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/require"
)

// unionFind detects cycles among tree edges.
type unionFind struct{ parent []int }

func newUnionFind(n int) *unionFind {
	p := make([]int, n)
	for i := range p {
		p[i] = i
	}

	return &unionFind{parent: p}
}

func (u *unionFind) find(x int) int {
	for u.parent[x] != x {
		u.parent[x] = u.parent[u.parent[x]]
		x = u.parent[x]
	}

	return x
}

// union merges the sets of a and b; false means they were already joined.
func (u *unionFind) union(a, b int) bool {
	ra, rb := u.find(a), u.find(b)
	if ra == rb {
		return false
	}
	u.parent[ra] = rb

	return true
}

// checkTreeIncidence verifies shape, column structure and acyclicity.
func checkTreeIncidence(B *matrix.Dense, adj *matrix.Dense) bool {
	n := adj.Rows()
	if B.Rows() != n || B.Cols() != n-1 {
		return false
	}
	uf := newUnionFind(n)
	for e := 0; e < B.Cols(); e++ {
		from, to, nz := -1, -1, 0
		for i := 0; i < n; i++ {
			v, _ := B.At(i, e)
			switch v {
			case -1:
				from = i
				nz++
			case 1:
				to = i
				nz++
			case 0:
			default:
				return false
			}
		}
		if nz != 2 || from < 0 || to < 0 {
			return false
		}
		if w, _ := adj.At(from, to); w <= 0 {
			return false
		}
		if !uf.union(from, to) {
			return false
		}
	}

	return true
}

func TestSpanningTreeIncidence_Complete(t *testing.T) {
	t.Parallel()
	A, err := builder.Generate(builder.Complete(4), 1, 2, builder.WithSeed(1))
	require.NoError(t, err)
	tree, err := dfs.SpanningTree(A)
	require.NoError(t, err)
	// Ascending scan on K4 yields the chain 0→1→2→3.
	require.Equal(t, []int{0, 1, 2, 3}, tree.Order)
	require.Equal(t, []matrix.Edge{{From: 0, To: 1}, {From: 1, To: 2}, {From: 2, To: 3}}, tree.Edges)
	require.Equal(t, []int{-1, 0, 1, 2}, tree.Parent)
	require.Equal(t, []int{0, 1, 2, 3}, tree.Depth)

	B, err := dfs.SpanningTreeIncidence(A)
	require.NoError(t, err)
	require.Equal(t, [][]float64{
		{-1, 0, 0},
		{1, -1, 0},
		{0, 1, -1},
		{0, 0, 1},
	}, B.ToRows())
}

func TestSpanningTree_Backtracking(t *testing.T) {
	t.Parallel()
	// Star centred on 0 with an extra leaf hanging off 2.
	A, err := matrix.NewDenseFromRows([][]float64{
		{0, 1, 1, 0},
		{1, 0, 0, 0},
		{1, 0, 0, 1},
		{0, 0, 1, 0},
	})
	require.NoError(t, err)
	tree, err := dfs.SpanningTree(A)
	require.NoError(t, err)
	require.Equal(t, []matrix.Edge{{From: 0, To: 1}, {From: 0, To: 2}, {From: 2, To: 3}}, tree.Edges)

	tree, err = dfs.SpanningTree(A, dfs.WithRoot(3))
	require.NoError(t, err)
	require.Equal(t, []int{3, 2, 0, 1}, tree.Order)
}

func TestSpanningTree_Errors(t *testing.T) {
	t.Parallel()
	split, err := matrix.NewDenseFromRows([][]float64{{0, 1, 0}, {1, 0, 0}, {0, 0, 0}})
	require.NoError(t, err)
	_, err = dfs.SpanningTreeIncidence(split)
	require.ErrorIs(t, err, dfs.ErrDisconnectedGraph)

	rect, err := matrix.NewDense(2, 3)
	require.NoError(t, err)
	_, err = dfs.SpanningTreeIncidence(rect)
	require.ErrorIs(t, err, matrix.ErrNonSquare)

	_, err = dfs.SpanningTreeIncidence(nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)

	_, err = dfs.SpanningTree(split, dfs.WithRoot(5))
	require.ErrorIs(t, err, dfs.ErrRootOutOfRange)

	// Entries at or below the threshold are not edges.
	weak, err := matrix.NewDenseFromRows([][]float64{{0, 0.05}, {0.05, 0}})
	require.NoError(t, err)
	_, err = dfs.SpanningTree(weak, dfs.WithThreshold(0.1))
	require.ErrorIs(t, err, dfs.ErrDisconnectedGraph)
}

func TestSpanningTree_SingleNode(t *testing.T) {
	t.Parallel()
	A, err := matrix.NewDense(1, 1)
	require.NoError(t, err)
	B, err := dfs.SpanningTreeIncidence(A)
	require.NoError(t, err)
	require.Equal(t, 1, B.Rows())
	require.Equal(t, 0, B.Cols())
}

func TestSpanningTree_HooksAndCancel(t *testing.T) {
	t.Parallel()
	A, err := builder.BuildAdjacency(builder.Complete(5))
	require.NoError(t, err)

	var visited []int
	_, err = dfs.SpanningTree(A, dfs.WithOnVisit(func(v int) error {
		visited = append(visited, v)
		return nil
	}))
	require.NoError(t, err)
	require.Len(t, visited, 5)

	stop := errors.New("stop")
	_, err = dfs.SpanningTree(A, dfs.WithOnTreeEdge(func(e matrix.Edge) error {
		if e.To == 3 {
			return stop
		}
		return nil
	}))
	require.ErrorIs(t, err, stop)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = dfs.SpanningTree(A, dfs.WithContext(ctx))
	require.ErrorIs(t, err, context.Canceled)
}

// TestSpanningTree_Properties: on random graphs the incidence is a spanning
// tree exactly when the graph is connected.
func TestSpanningTree_Properties(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 80
	properties := gopter.NewProperties(parameters)

	properties.Property("tree iff connected", prop.ForAll(
		func(n int, p float64, seed int64) bool {
			A, err := builder.Generate(builder.RandomSparse(n, p), 0.5, 1.5, builder.WithSeed(seed))
			if err != nil {
				return false
			}
			connected, err := matrix.Connected(A)
			if err != nil {
				return false
			}
			B, err := dfs.SpanningTreeIncidence(A)
			if !connected {
				return errors.Is(err, dfs.ErrDisconnectedGraph)
			}

			return err == nil && checkTreeIncidence(B, A)
		},
		gen.IntRange(1, 20),
		gen.Float64Range(0.05, 1),
		gen.Int64(),
	))

	properties.TestingRun(t)
}
