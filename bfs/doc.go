// Package bfs offers breadth-first traversal of a core.Graph.
//
// What
//
//   - BFS(g, start, opts...) explores vertices in non-decreasing hop count and
//     returns a BFSResult with Order, Depth and Parent.
//   - Components(g) groups every vertex by reachability, largest group first.
//   - WithMaxDepth limits the search radius; WithContext allows cancellation.
//
// Determinism
//
//	core.Graph.Neighbors returns sorted identifiers and BFS enqueues them in that
//	order, so the visit sequence is fully reproducible.
//
// Complexity
//
//	Time O(V + E·log d) (neighbor sorting), Space O(V).
package bfs
