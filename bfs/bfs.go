// SPDX-License-Identifier: MIT
// Package bfs provides breadth-first search over a core.Graph, returning
// hop distances, parent links and visit order, plus a component split used
// to audit the connectivity of a walking network.
//
// Edge weights are ignored: BFS answers "can I get there at all, and in how
// many hops". osmmap.Analyze uses Components to count walkable islands.
package bfs

import (
	"cmp"
	"context"

	"github.com/katalvlaran/campusnav/core"
)

// queueItem pairs a vertex with its BFS depth.
type queueItem[V cmp.Ordered] struct {
	id    V
	depth int
}

// walker encapsulates mutable BFS state.
type walker[V cmp.Ordered, W core.Weight] struct {
	graph   *core.Graph[V, W]
	opts    BFSOptions
	ctx     context.Context
	queue   []queueItem[V]
	visited map[V]bool
	res     *BFSResult[V]
}

// BFS runs breadth-first search on g starting from start.
// Returns ErrGraphNil or ErrStartVertexNotFound for invalid input,
// ErrOptionViolation for bad options and ctx.Err() on cancellation.
func BFS[V cmp.Ordered, W core.Weight](g *core.Graph[V, W], start V, opts ...Option) (*BFSResult[V], error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	// Build options and catch any invalid ones immediately
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if !g.HasVertex(start) {
		return nil, ErrStartVertexNotFound
	}

	w := newWalker(g, o)
	w.enqueue(start, 0, nil)

	return w.res, w.loop()
}

// Components partitions the vertices of g into groups by reachability,
// scanning start vertices in ascending order. On a graph whose edges all
// come in mirrored pairs (footpaths walkable both ways) the groups are the
// connected components. Components are returned largest first; ties keep
// discovery order.
func Components[V cmp.Ordered, W core.Weight](g *core.Graph[V, W], opts ...Option) ([][]V, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	o.MaxDepth = 0

	seen := make(map[V]bool, g.VertexCount())
	var out [][]V
	for _, v := range g.Vertices() {
		if seen[v] {
			continue
		}
		w := newWalker(g, o)
		w.visited = seen
		w.enqueue(v, 0, nil)
		if err := w.loop(); err != nil {
			return nil, err
		}
		out = append(out, w.res.Order)
	}

	// stable insertion sort by size, descending
	for i := 1; i < len(out); i++ {
		for j := i; j > 0 && len(out[j]) > len(out[j-1]); j-- {
			out[j], out[j-1] = out[j-1], out[j]
		}
	}

	return out, nil
}

func newWalker[V cmp.Ordered, W core.Weight](g *core.Graph[V, W], o BFSOptions) *walker[V, W] {
	return &walker[V, W]{
		graph:   g,
		opts:    o,
		ctx:     o.Ctx,
		visited: make(map[V]bool),
		res: &BFSResult[V]{
			Depth:  make(map[V]int),
			Parent: make(map[V]V),
		},
	}
}

// enqueue marks id visited at depth d, records its parent and queues it.
func (w *walker[V, W]) enqueue(id V, d int, parent *V) {
	w.visited[id] = true
	w.res.Depth[id] = d
	if parent != nil {
		w.res.Parent[id] = *parent
	}
	w.queue = append(w.queue, queueItem[V]{id: id, depth: d})
}

// loop processes the queue until empty or cancellation.
func (w *walker[V, W]) loop() error {
	for len(w.queue) > 0 {
		// cancellation check (once per loop)
		select {
		case <-w.ctx.Done():
			return w.ctx.Err()
		default:
		}

		item := w.queue[0]
		w.queue = w.queue[1:]
		w.res.Order = append(w.res.Order, item.id)

		nextDepth := item.depth + 1
		if w.opts.MaxDepth > 0 && nextDepth > w.opts.MaxDepth {
			continue
		}
		for _, nbr := range w.graph.Neighbors(item.id) {
			if !w.visited[nbr] {
				w.enqueue(nbr, nextDepth, &item.id)
			}
		}
	}

	return nil
}
