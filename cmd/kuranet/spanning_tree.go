// SPDX-License-Identifier: MIT
// Package: kuranet/cmd/kuranet

package main

import (
	"fmt"

	"github.com/katalvlaran/kuranet/dfs"
	"github.com/katalvlaran/kuranet/matrix"
	"github.com/katalvlaran/kuranet/params"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newSpanningTreeCmd(a *app) *cobra.Command {
	var (
		clusterIdx int
		root       int
	)
	cmd := &cobra.Command{
		Use:   "spanning-tree <folder> <network>",
		Short: "Print a DFS spanning tree incidence matrix of a network",
		Long: `spanning-tree walks the network (or the intra block of --cluster) depth
first and prints the tree edges, the N x (N-1) incidence matrix and the
largest eigenvalue of the weighted Laplacian.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			l := a.layout(args[0])
			net, err := params.LoadNetwork(l.NetworkFile(args[1]))
			if err != nil {
				return err
			}
			adj, err := net.Matrix()
			if err != nil {
				return err
			}
			if clusterIdx >= 0 {
				p, err := net.Partition()
				if err != nil {
					return err
				}
				r, err := p.Range(clusterIdx)
				if err != nil {
					return err
				}
				if adj, err = adj.Block(r.Start, r.Start, r.Len(), r.Len()); err != nil {
					return err
				}
			}

			tree, err := dfs.SpanningTree(adj, dfs.WithRoot(root), dfs.WithContext(cmd.Context()))
			if err != nil {
				return err
			}
			B, err := tree.Incidence()
			if err != nil {
				return err
			}
			lap, err := matrix.Laplacian(adj)
			if err != nil {
				return err
			}
			lmax, err := matrix.MaxEigenvalue(lap)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "nodes %d, tree edges %d, laplacian max eigenvalue %.6g\n", tree.N(), len(tree.Edges), lmax)
			for _, e := range tree.Edges {
				fmt.Fprintf(out, "%d -> %d\n", e.From, e.To)
			}
			fmt.Fprint(out, B)
			a.log.Debug("spanning tree built", zap.Int("nodes", tree.N()), zap.Int("root", root))

			return nil
		},
	}
	cmd.Flags().IntVar(&clusterIdx, "cluster", -1, "restrict to the intra block of this cluster (-1: whole network)")
	cmd.Flags().IntVar(&root, "root", 0, "DFS start node")

	return cmd
}
