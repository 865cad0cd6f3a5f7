// SPDX-License-Identifier: MIT
// File: methods_vertices.go
// Role: Vertex lifecycle & queries: AddVertex/HasVertex/Vertices/VertexCount.
// Determinism:
//   - Vertices() returns identifiers sorted ascending.
// Concurrency:
//   - Mutations under mu write lock; queries under mu read lock.

package core

import "slices"

// AddVertex inserts v with an empty adjacency.
//
// Returns false, leaving the graph untouched, when v is already present, so
// a caller loading nodes from a file can count duplicates without a
// separate HasVertex call.
//
// Complexity: O(1) amortized.
// Concurrency: takes the write lock for the whole check-and-insert.
func (g *Graph[V, W]) AddVertex(v V) bool {
	g.mu.Lock()
	defer g.mu.Unlock()

	if _, ok := g.adjacency[v]; ok {
		return false
	}
	g.adjacency[v] = nil

	return true
}

// HasVertex reports whether v is present.
// Complexity: O(1).
func (g *Graph[V, W]) HasVertex(v V) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	_, ok := g.adjacency[v]

	return ok
}

// Vertices returns a sorted snapshot of all vertex identifiers.
//
// Implementation:
//   - Stage 1: Copy the keys under the read lock.
//   - Stage 2: Release the lock, then sort the private copy.
//
// Determinism: ascending by cmp.Compare on V, independent of insertion order.
// Complexity: O(V log V).
func (g *Graph[V, W]) Vertices() []V {
	g.mu.RLock()
	out := make([]V, 0, len(g.adjacency))
	for v := range g.adjacency {
		out = append(out, v)
	}
	g.mu.RUnlock()

	slices.Sort(out)

	return out
}

// VertexCount returns |V|.
// Complexity: O(1).
func (g *Graph[V, W]) VertexCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.adjacency)
}
