// SPDX-License-Identifier: MIT
package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/campusnav/osmmap"
)

func newStatsCmd(a *app) *cobra.Command {
	var dump bool

	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Print map and walking-graph statistics",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			l, err := a.load(cmd.Context())
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			printStats(out, l)

			s, err := osmmap.Analyze(cmd.Context(), l.m, l.g, l.report)
			if err != nil {
				return err
			}
			fmt.Fprintf(out, "# of walkable islands: %d\n", s.Islands)
			fmt.Fprintf(out, "largest island: %d vertices\n", s.LargestIsland)
			if dump {
				fmt.Fprintln(out)

				return l.g.Dump(out)
			}

			return nil
		},
	}
	cmd.Flags().BoolVar(&dump, "dump", false, "also print every vertex and edge of the graph")

	return cmd
}

func printStats(out io.Writer, l *loaded) {
	s := l.m.Summary()
	fmt.Fprintf(out, "# of nodes: %d\n", s.Nodes)
	fmt.Fprintf(out, "# of footways: %d\n", s.Footways)
	fmt.Fprintf(out, "# of buildings: %d\n", s.Buildings)
	fmt.Fprintf(out, "# of vertices: %d\n", l.report.Vertices)
	fmt.Fprintf(out, "# of edges: %d\n", l.report.Edges)
}
