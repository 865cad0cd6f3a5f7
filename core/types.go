// SPDX-License-Identifier: MIT
// Package core defines the generic weighted Graph type used to model a
// pedestrian network, together with its Edge snapshot type, the Weight
// constraint and the NewGraph constructor.
//
// Errors:
//
//	ErrVertexNotFound - requested vertex does not exist.
//	ErrNilGraph       - a nil *Graph was passed where a graph is required.
package core

import (
	"cmp"
	"errors"
	"sync"
)

// Sentinel errors for core graph operations.
//
// The mutating and query methods of Graph report failure through boolean
// results; these sentinels exist so callers can turn such a result into an
// error chain (fmt.Errorf("%w ...", core.ErrVertexNotFound)).
var (
	// ErrVertexNotFound indicates an operation referenced a non-existent vertex.
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrNilGraph indicates a nil graph pointer.
	ErrNilGraph = errors.New("core: graph is nil")
)

// Weight is the set of numeric types usable as edge weights.
type Weight interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// Edge is a read-only snapshot of one directed edge From→To.
type Edge[V cmp.Ordered, W Weight] struct {
	From   V
	To     V
	Weight W
}

// arc is one entry of a vertex's outgoing list.
type arc[V cmp.Ordered, W Weight] struct {
	to     V
	weight W
}

// GraphOption configures a Graph at construction time.
type GraphOption func(*graphConfig)

type graphConfig struct {
	vertexCapacity int
}

// WithVertexCapacity pre-sizes the vertex table for n vertices.
// Non-positive values are ignored.
func WithVertexCapacity(n int) GraphOption {
	return func(c *graphConfig) {
		if n > 0 {
			c.vertexCapacity = n
		}
	}
}

// Graph is a directed, weighted graph keyed by ordered vertex identifiers.
//
// Every vertex owns an insertion-ordered slice of (neighbor, weight) pairs.
// At most one weight is stored per ordered pair (u, v); adding the same pair
// again overwrites the weight. An undirected connection is modelled as two
// directed edges.
//
// mu guards adjacency and edgeCount. The zero value is not usable; call NewGraph.
type Graph[V cmp.Ordered, W Weight] struct {
	mu sync.RWMutex

	// adjacency[u] lists the outgoing arcs of u in insertion order.
	adjacency map[V][]arc[V, W]

	// edgeCount counts directed (u, v) pairs.
	edgeCount int
}

// NewGraph creates an empty Graph.
//
// Implementation:
//   - Stage 1: Fold opts into a private graphConfig, last writer wins.
//   - Stage 2: Allocate the adjacency map, pre-sized when WithVertexCapacity
//     asked for it.
//
// Complexity: O(1) (plus the optional pre-sizing).
//
// Notes:
//   - The returned graph is ready for concurrent use; there is no separate
//     "freeze" step.
func NewGraph[V cmp.Ordered, W Weight](opts ...GraphOption) *Graph[V, W] {
	var cfg graphConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	return &Graph[V, W]{
		adjacency: make(map[V][]arc[V, W], cfg.vertexCapacity),
	}
}
