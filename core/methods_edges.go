// SPDX-License-Identifier: MIT
// File: methods_edges.go
// Role: Edge lifecycle & queries: AddEdge/HasEdge/Weight/Neighbors/Edges/EdgeCount.
// Determinism:
//   - Neighbors() returns unique identifiers sorted ascending.
//   - Edges() returns edges sorted by (From, To).
// Concurrency:
//   - Mutations under mu write lock; queries under mu read lock.

package core

import (
	"cmp"
	"slices"
)

// AddEdge sets the weight of the directed edge from→to.
//
// Steps:
//  1. Reject (return false, no mutation) if either endpoint is absent.
//  2. If from already has an arc to `to`, overwrite its weight.
//  3. Otherwise append a new arc and bump the edge count.
//
// Self-loops are accepted. Weights are not validated here; a negative weight
// is stored and only rejected later by dijkstra.ShortestPaths.
//
// Complexity: O(deg(from)) for the overwrite scan.
// Concurrency: all three steps run under one write lock, so concurrent
// AddEdge calls on the same pair never create two arcs.
func (g *Graph[V, W]) AddEdge(from, to V, weight W) bool {
	g.mu.Lock()
	defer g.mu.Unlock()

	arcs, ok := g.adjacency[from]
	if !ok {
		return false
	}
	if _, ok = g.adjacency[to]; !ok {
		return false
	}

	for i := range arcs {
		if arcs[i].to == to {
			arcs[i].weight = weight

			return true
		}
	}
	g.adjacency[from] = append(arcs, arc[V, W]{to: to, weight: weight})
	g.edgeCount++

	return true
}

// Weight returns the weight of the edge from→to, or ok=false when either the
// vertex or the edge is absent.
// Complexity: O(deg(from)).
func (g *Graph[V, W]) Weight(from, to V) (w W, ok bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	for _, a := range g.adjacency[from] {
		if a.to == to {
			return a.weight, true
		}
	}

	return w, false
}

// HasEdge reports whether the directed edge from→to exists.
func (g *Graph[V, W]) HasEdge(from, to V) bool {
	_, ok := g.Weight(from, to)

	return ok
}

// Neighbors returns the distinct targets of v's outgoing edges sorted
// ascending. Unknown vertices yield an empty (nil) slice.
//
// Determinism:
//   - The order is ascending V, never arc insertion order. dijkstra relies on
//     this to relax neighbors in a reproducible sequence.
//
// Complexity: O(d log d) where d = deg(v).
func (g *Graph[V, W]) Neighbors(v V) []V {
	g.mu.RLock()
	arcs := g.adjacency[v]
	if len(arcs) == 0 {
		g.mu.RUnlock()

		return nil
	}
	out := make([]V, len(arcs))
	for i, a := range arcs {
		out[i] = a.to
	}
	g.mu.RUnlock()

	slices.Sort(out)

	return slices.Compact(out)
}

// Edges returns a snapshot of every directed edge sorted by (From, To).
//
// The snapshot is detached: editing the returned Edge values does not
// touch the graph, and later graph mutations do not show up in it.
//
// Complexity: O(E log E).
func (g *Graph[V, W]) Edges() []Edge[V, W] {
	g.mu.RLock()
	out := make([]Edge[V, W], 0, g.edgeCount)
	for from, arcs := range g.adjacency {
		for _, a := range arcs {
			out = append(out, Edge[V, W]{From: from, To: a.to, Weight: a.weight})
		}
	}
	g.mu.RUnlock()

	slices.SortFunc(out, func(x, y Edge[V, W]) int {
		if c := cmp.Compare(x.From, y.From); c != 0 {
			return c
		}

		return cmp.Compare(x.To, y.To)
	})

	return out
}

// EdgeCount returns the number of directed (from, to) pairs.
// Complexity: O(1).
func (g *Graph[V, W]) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.edgeCount
}
