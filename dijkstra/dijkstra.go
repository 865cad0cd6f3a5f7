// SPDX-License-Identifier: MIT
// Package dijkstra implements Dijkstra's shortest-path algorithm on core.Graph.
//
// Complexity:
//
//   - Time:  O((V + E) log V)
//   - Each vertex is settled at most once.
//   - Each successful relaxation pushes one heap entry (up to E pushes).
//   - Space: O(V + E)
//   - O(V) for the distance/predecessor table.
//   - O(E) worst-case heap entries under "lazy decrease-key".
//
// Notes on implementation choices:
//
//   - We perform an upfront scan of all edges (O(E)) to detect negative weights and fail fast.
//   - We use a "lazy" decrease-key strategy: pushing duplicates into the heap and ignoring stale entries.
//   - Heap entries are ordered by (distance, insertion sequence). Neighbors are relaxed in
//     ascending vertex order, so among equal-distance candidates the one queued first is
//     settled first and the resulting predecessor tree is deterministic.
//   - "Unreached" is the absence of a table entry, never a magic infinity value.
package dijkstra

import (
	"cmp"
	"container/heap"
	"fmt"

	"github.com/katalvlaran/campusnav/core"
)

// ShortestPaths computes shortest distances and predecessors from source to
// every vertex reachable in g.
//
// Preconditions and validation (in order):
//  1. Options must be valid (ErrBadMaxDistance, ErrBadInfThreshold).
//  2. g must be non-nil (ErrNilGraph).
//  3. g must contain source (ErrVertexNotFound).
//  4. No edge in g can have negative weight (ErrNegativeWeight).
//
// Implementation:
//   - Stage 1: Validate options and inputs; scan g.Edges once for negatives.
//   - Stage 2: Seed the heap with (source, 0).
//   - Stage 3: Pop the smallest (dist, seq) entry; skip it if stale, else
//     settle it and relax its neighbors in ascending order.
//   - Stage 4: Return the table relax filled in; it is not written again.
//
// Determinism:
//   - Equal-distance entries leave the heap in push order, and a vertex keeps
//     the first predecessor that reached its final distance. Repeated runs on
//     the same graph return identical tables, including PathTo results.
//
// Concurrency:
//   - g is read through its locking accessors only; callers may run several
//     ShortestPaths on one graph in parallel (meeting does, one per start).
//
// Complexity: O((V + E) log V) time, O(V + E) space.
//
// Returns ctx.Err() if the context given by WithContext is cancelled mid-run;
// the context is checked once per settled vertex.
func ShortestPaths[V cmp.Ordered, W core.Weight](g *core.Graph[V, W], source V, opts ...Option) (*Table[V, W], error) {
	// 1) Build and validate Options
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.err != nil {
		return nil, cfg.err
	}

	// 2) Validate graph and source
	if g == nil {
		return nil, ErrNilGraph
	}
	if !g.HasVertex(source) {
		return nil, fmt.Errorf("%w: %v", ErrVertexNotFound, source)
	}

	// 3) Pre-scan all edges to detect negative weights.
	for _, e := range g.Edges() {
		if e.Weight < 0 {
			return nil, fmt.Errorf("%w: edge %v→%v weight=%v", ErrNegativeWeight, e.From, e.To, e.Weight)
		}
	}

	// 4) Run.
	r := &runner[V, W]{
		g:       g,
		options: cfg,
		table: &Table[V, W]{
			source:  source,
			entries: make(map[V]entry[V, W]),
		},
		settled: make(map[V]bool),
	}
	r.init(source)
	if err := r.process(); err != nil {
		return nil, err
	}

	return r.table, nil
}

// runner holds the mutable state for a single execution.
type runner[V cmp.Ordered, W core.Weight] struct {
	g       *core.Graph[V, W]
	options Options
	table   *Table[V, W]
	settled map[V]bool
	pq      nodePQ[V, W]
	seq     uint64
}

// init records the source at distance zero and queues it.
func (r *runner[V, W]) init(source V) {
	var zero W
	r.table.entries[source] = entry[V, W]{dist: zero}
	heap.Init(&r.pq)
	r.push(source, zero)
}

// push queues v with tentative distance d, stamping the insertion sequence.
func (r *runner[V, W]) push(v V, d W) {
	heap.Push(&r.pq, &nodeItem[V, W]{id: v, dist: d, seq: r.seq})
	r.seq++
}

// process repeatedly settles the closest unsettled vertex and relaxes its
// outgoing edges until the heap is empty.
func (r *runner[V, W]) process() error {
	ctx := r.options.Ctx
	for r.pq.Len() > 0 {
		item := heap.Pop(&r.pq).(*nodeItem[V, W])

		// Skip stale entries: already settled, or superseded by a shorter push.
		if r.settled[item.id] {
			continue
		}
		if cur, ok := r.table.entries[item.id]; ok && cur.dist < item.dist {
			continue
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		r.settled[item.id] = true
		r.relax(item.id, item.dist)
	}

	return nil
}

// relax tries to improve the distance of every out-neighbor of u.
// Assumes d is the final distance of u.
func (r *runner[V, W]) relax(u V, d W) {
	for _, v := range r.g.Neighbors(u) {
		if r.settled[v] {
			continue
		}
		w, ok := r.g.Weight(u, v)
		if !ok {
			continue
		}
		// Impassable edge.
		if float64(w) >= r.options.InfEdgeThreshold {
			continue
		}

		next := d + w
		if float64(next) > r.options.MaxDistance {
			continue
		}
		// Strict improvement only: the earlier predecessor wins ties.
		if cur, seen := r.table.entries[v]; seen && next >= cur.dist {
			continue
		}

		r.table.entries[v] = entry[V, W]{dist: next, prev: u, hasPrev: true}
		r.push(v, next)
	}
}

// nodeItem is one heap entry: a vertex, its tentative distance and the order
// in which it was queued.
type nodeItem[V cmp.Ordered, W core.Weight] struct {
	id   V
	dist W
	seq  uint64
}

// nodePQ is a min-heap of *nodeItem ordered by (dist, seq).
type nodePQ[V cmp.Ordered, W core.Weight] []*nodeItem[V, W]

// Len returns the number of items in the heap.
func (pq nodePQ[V, W]) Len() int { return len(pq) }

// Less orders by distance, then by insertion sequence.
func (pq nodePQ[V, W]) Less(i, j int) bool {
	if pq[i].dist != pq[j].dist {
		return pq[i].dist < pq[j].dist
	}

	return pq[i].seq < pq[j].seq
}

// Swap swaps two elements in the heap.
func (pq nodePQ[V, W]) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push adds a new element x onto the heap.
func (pq *nodePQ[V, W]) Push(x any) { *pq = append(*pq, x.(*nodeItem[V, W])) }

// Pop removes and returns the last element.
func (pq *nodePQ[V, W]) Pop() any {
	old := *pq
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*pq = old[:n-1]

	return item
}
