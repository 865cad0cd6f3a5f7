// SPDX-License-Identifier: MIT
// Package dijkstra defines the options, sentinel errors and result types of
// the single-source shortest-path engine.
package dijkstra

import (
	"cmp"
	"context"
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/campusnav/core"
)

// Sentinel errors returned by the Dijkstra implementation.
var (
	// ErrNilGraph indicates that a nil *core.Graph was passed to ShortestPaths.
	ErrNilGraph = errors.New("dijkstra: graph is nil")

	// ErrVertexNotFound indicates that the requested source vertex does not exist.
	ErrVertexNotFound = errors.New("dijkstra: source vertex not found in graph")

	// ErrNegativeWeight indicates that a negative edge weight was detected in the graph.
	ErrNegativeWeight = errors.New("dijkstra: negative edge weight encountered")

	// ErrBadMaxDistance indicates that MaxDistance was set to a negative value.
	ErrBadMaxDistance = errors.New("dijkstra: MaxDistance must be non-negative")

	// ErrBadInfThreshold indicates that InfEdgeThreshold was set to zero or a negative value.
	ErrBadInfThreshold = errors.New("dijkstra: InfEdgeThreshold must be positive")

	// ErrUnreachable is returned by Table.PathTo for a vertex the run never reached.
	ErrUnreachable = errors.New("dijkstra: destination unreachable")
)

// Options configures a ShortestPaths run.
//
// MaxDistance      : vertices farther than this stay unreached. Default +Inf.
// InfEdgeThreshold : edges with weight ≥ this are treated as impassable. Default +Inf.
type Options struct {
	Ctx              context.Context
	MaxDistance      float64
	InfEdgeThreshold float64

	// internal error recorded during option parsing
	err error
}

// Option represents a functional option for configuring ShortestPaths.
// Invalid values are recorded and surfaced as an error by ShortestPaths.
type Option func(*Options)

// DefaultOptions returns Options with no distance cap, no impassable edges
// and a background context.
func DefaultOptions() Options {
	return Options{
		Ctx:              context.Background(),
		MaxDistance:      math.Inf(1),
		InfEdgeThreshold: math.Inf(1),
	}
}

// WithContext sets a context checked once per settled vertex.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithMaxDistance caps exploration: vertices whose distance would exceed max
// are left unreached. Negative values cause ErrBadMaxDistance.
func WithMaxDistance(max float64) Option {
	return func(o *Options) {
		if max < 0 || math.IsNaN(max) {
			o.err = fmt.Errorf("%w: got %v", ErrBadMaxDistance, max)

			return
		}
		o.MaxDistance = max
	}
}

// WithInfEdgeThreshold treats every edge whose weight is ≥ threshold as a
// wall. Non-positive values cause ErrBadInfThreshold.
func WithInfEdgeThreshold(threshold float64) Option {
	return func(o *Options) {
		if threshold <= 0 || math.IsNaN(threshold) {
			o.err = fmt.Errorf("%w: got %v", ErrBadInfThreshold, threshold)

			return
		}
		o.InfEdgeThreshold = threshold
	}
}

// Path is a reconstructed route, ordered from the table's source to the destination.
type Path[V cmp.Ordered, W core.Weight] struct {
	Vertices []V
	Distance W
}

// Len returns the number of vertices on the path.
func (p Path[V, W]) Len() int { return len(p.Vertices) }

// entry is the per-vertex record of a run. A vertex absent from the table
// (or present with reached=false) has no finite distance.
type entry[V cmp.Ordered, W core.Weight] struct {
	dist    W
	prev    V
	hasPrev bool
}

// Table is the distance/predecessor table produced by one ShortestPaths run.
// It is immutable once returned and safe for concurrent reads.
type Table[V cmp.Ordered, W core.Weight] struct {
	source  V
	entries map[V]entry[V, W]
}

// Source returns the vertex the table was computed from.
func (t *Table[V, W]) Source() V { return t.source }

// Reached reports whether v has a finite shortest distance from the source.
func (t *Table[V, W]) Reached(v V) bool {
	_, ok := t.entries[v]

	return ok
}

// ReachedCount returns the number of reached vertices, the source included.
func (t *Table[V, W]) ReachedCount() int { return len(t.entries) }

// Distance returns the shortest distance from the source to v.
// ok is false when v was not reached (or is not a vertex at all); there is
// no infinity sentinel to compare against.
// Complexity: O(1).
func (t *Table[V, W]) Distance(v V) (d W, ok bool) {
	e, ok := t.entries[v]
	if !ok {
		return d, false
	}

	return e.dist, true
}

// Predecessor returns the vertex preceding v on its shortest path.
// ok is false for the source itself and for unreached vertices.
func (t *Table[V, W]) Predecessor(v V) (p V, ok bool) {
	e, found := t.entries[v]
	if !found || !e.hasPrev {
		return p, false
	}

	return e.prev, true
}

// PathTo reconstructs the shortest path from the source to dest by following
// predecessors backwards and reversing. Returns ErrUnreachable when dest was
// not reached.
//
// PathTo(Source()) is the one-vertex path with zero distance. Each call
// allocates a fresh slice, so callers may keep or modify the result.
// Complexity: O(L) where L is the number of vertices on the path.
func (t *Table[V, W]) PathTo(dest V) (Path[V, W], error) {
	e, ok := t.entries[dest]
	if !ok {
		return Path[V, W]{}, fmt.Errorf("%w: %v from %v", ErrUnreachable, dest, t.source)
	}

	vertices := make([]V, 0, 8)
	cur := dest
	for {
		vertices = append(vertices, cur)
		prev, ok := t.Predecessor(cur)
		if !ok {
			break
		}
		// A predecessor chain longer than the table would mean a cycle.
		if len(vertices) > len(t.entries) {
			return Path[V, W]{}, fmt.Errorf("dijkstra: predecessor cycle at %v", cur)
		}
		cur = prev
	}
	for i, j := 0, len(vertices)-1; i < j; i, j = i+1, j-1 {
		vertices[i], vertices[j] = vertices[j], vertices[i]
	}

	return Path[V, W]{Vertices: vertices, Distance: e.dist}, nil
}
