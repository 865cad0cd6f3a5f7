// Package dijkstra provides single-source shortest paths over a
// core.Graph with non-negative edge weights.
//
// Overview:
//
//   - ShortestPaths(g, source, opts...) returns a *Table holding, for every
//     reached vertex, the shortest distance from source and its predecessor.
//   - Table.PathTo(dest) rebuilds the vertex sequence source → dest.
//   - Vertices that cannot be reached have no entry: Distance and Predecessor
//     report ok=false, and PathTo returns ErrUnreachable.
//
// Tie-breaking:
//
//	Heap entries are ordered by (distance, insertion sequence) and neighbors are
//	relaxed in ascending vertex order. A vertex keeps the predecessor that first
//	achieved its final distance. The same graph and source therefore always
//	produce the same table.
//
// Options:
//
//   - WithContext(ctx):           cancel a long run.
//   - WithMaxDistance(d):         leave vertices farther than d unreached.
//   - WithInfEdgeThreshold(t):    treat edges with weight ≥ t as impassable.
//
// Error handling (sentinel errors):
//
//   - ErrNilGraph, ErrVertexNotFound, ErrNegativeWeight:  invalid input.
//   - ErrBadMaxDistance, ErrBadInfThreshold:               invalid option.
//   - ErrUnreachable:                                      PathTo on an unreached vertex.
//
// Example:
//
//	table, err := dijkstra.ShortestPaths(g, start)
//	if err != nil {
//	    return err
//	}
//	path, err := table.PathTo(goal)
package dijkstra
