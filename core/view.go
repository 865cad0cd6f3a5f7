// SPDX-License-Identifier: MIT
// File: view.go
// Role: Human-readable views of a graph for debugging.
// Determinism:
//   - Vertices and arcs are printed in ascending order.
// Concurrency:
//   - Read locks only, through the public accessors.

package core

import (
	"bufio"
	"fmt"
	"io"
)

// Dump writes the vertex and edge counts followed by every vertex and its
// outgoing (vertex, neighbor, weight) triples to w.
//
// Output is buffered; the first write error is returned by the final flush.
// Vertices and arcs appear in ascending order, so two equal graphs dump to
// identical text.
//
// Example output:
//
//	graph: 3 vertices, 2 edges
//	vertices:
//	  0. A
//	  1. B
//	  2. C
//	edges:
//	  A: (A,B,1)
//	  B: (B,C,2)
//	  C:
func (g *Graph[V, W]) Dump(w io.Writer) error {
	bw := bufio.NewWriter(w)
	vertices := g.Vertices()

	fmt.Fprintf(bw, "graph: %d vertices, %d edges\n", len(vertices), g.EdgeCount())
	fmt.Fprintln(bw, "vertices:")
	for i, v := range vertices {
		fmt.Fprintf(bw, "  %d. %v\n", i, v)
	}
	fmt.Fprintln(bw, "edges:")
	for _, u := range vertices {
		fmt.Fprintf(bw, "  %v:", u)
		for _, v := range g.Neighbors(u) {
			if wt, ok := g.Weight(u, v); ok {
				fmt.Fprintf(bw, " (%v,%v,%v)", u, v, wt)
			}
		}
		fmt.Fprintln(bw)
	}

	return bw.Flush()
}
