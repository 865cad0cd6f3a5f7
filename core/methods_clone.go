// SPDX-License-Identifier: MIT
// File: methods_clone.go
// Role: Deep copies: Clone (copy construction) and CopyFrom (assignment).
// Determinism:
//   - The copy is rebuilt from Vertices/Neighbors/Weight, so its arcs appear in
//     ascending neighbor order regardless of the source's insertion order.
// Concurrency:
//   - The source is only read through its locking accessors; the destination is
//     filled privately (Clone) or under its write lock (CopyFrom).

package core

import "cmp"

// Clone returns an independent deep copy of g.
//
// Implementation:
//   - Stage 1: snapshot walks Vertices, then Neighbors and Weight per vertex,
//     each under g's own read lock.
//   - Stage 2: The copy is assembled without locking; no one else can see it yet.
//
// Mutating either graph afterwards never affects the other. A writer racing
// with Clone may be observed partially (some arcs before, some after), but
// never as a torn arc.
//
// Complexity: O(V log V + E log d).
func (g *Graph[V, W]) Clone() *Graph[V, W] {
	adjacency, edges := snapshot(g)

	return &Graph[V, W]{adjacency: adjacency, edgeCount: edges}
}

// CopyFrom replaces the contents of g with a deep copy of src.
//
// Copying a graph onto itself is a no-op. A nil src empties g.
//
// Concurrency:
//   - src is read before g's write lock is taken, so the two locks are never
//     held together and CopyFrom cannot deadlock against a reverse CopyFrom.
//   - Readers of g see either the old contents or the new ones.
//
// Complexity: O(V log V + E log d).
func (g *Graph[V, W]) CopyFrom(src *Graph[V, W]) {
	if g == src {
		return
	}

	var (
		adjacency map[V][]arc[V, W]
		edges     int
	)
	if src != nil {
		adjacency, edges = snapshot(src)
	} else {
		adjacency = make(map[V][]arc[V, W])
	}

	g.mu.Lock()
	g.adjacency = adjacency
	g.edgeCount = edges
	g.mu.Unlock()
}

// snapshot rebuilds src's adjacency through its public accessors.
func snapshot[V cmp.Ordered, W Weight](src *Graph[V, W]) (map[V][]arc[V, W], int) {
	vertices := src.Vertices()
	adjacency := make(map[V][]arc[V, W], len(vertices))
	edges := 0
	for _, u := range vertices {
		targets := src.Neighbors(u)
		arcs := make([]arc[V, W], 0, len(targets))
		for _, v := range targets {
			if w, ok := src.Weight(u, v); ok {
				arcs = append(arcs, arc[V, W]{to: v, weight: w})
			}
		}
		if len(arcs) == 0 {
			arcs = nil
		}
		adjacency[u] = arcs
		edges += len(arcs)
	}

	return adjacency, edges
}
