// Package core provides a thread-safe, generic, in-memory weighted digraph
// used as the substrate for shortest-path queries over a walking network.
//
// The Graph G = (V, E) is parameterised by an ordered vertex type V and a
// numeric weight type W:
//
//   - Every vertex owns an insertion-ordered slice of (neighbor, weight) arcs.
//   - Edges are directed; at most one weight exists per ordered pair, and
//     re-adding a pair overwrites its weight.
//   - AddEdge never creates endpoints implicitly; it reports false instead.
//   - Vertices(), Neighbors() and Edges() return sorted results.
//   - Clone() and CopyFrom() produce independent deep copies.
//
// Core Methods:
//
//	// Vertex lifecycle
//	AddVertex(v V) bool                  // O(1); false when already present
//	HasVertex(v V) bool                  // O(1)
//
//	// Edge lifecycle
//	AddEdge(from, to V, w W) bool        // O(deg(from)); false when an endpoint is missing
//	HasEdge(from, to V) bool             // O(deg(from))
//	Weight(from, to V) (W, bool)         // O(deg(from))
//
//	// Query
//	Neighbors(v V) []V                   // O(d·log d), unique, sorted; nil for unknown v
//	Vertices() []V                       // O(V·log V)
//	Edges() []Edge[V, W]                 // O(E·log E)
//	VertexCount() int                    // O(1)
//	EdgeCount() int                      // O(1), directed pairs
//
//	// Copies and debugging
//	Clone() *Graph[V, W]                 // deep copy
//	CopyFrom(src *Graph[V, W])           // assignment; self-copy is a no-op
//	Dump(w io.Writer) error
//
// A single sync.RWMutex guards the adjacency. Readers never block each other,
// so a graph that is built once and then only queried can be shared freely
// between goroutines.
package core
