// SPDX-License-Identifier: MIT
// Package meeting finds a building where two people can meet and the
// shortest walk for each of them to get there.
//
// The search is an explicit state machine:
//
//	Selecting ──► Checking ──► Accepted
//	    ▲             │
//	    │             ▼
//	    └──────── Retrying
//	Selecting / Checking / Retrying ──► Exhausted
//
// Selecting picks the untried building closest to the midpoint of the two
// starts. Checking snaps it to the walking network and accepts it only when
// both people can reach it. Retrying records the rejection and loops back.
// Exhausted ends the search with a *NoReachableError.
//
// Shortest-path tables are computed at most once per start per query and
// reused for every candidate.
package meeting

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/campusnav/campus"
	"github.com/katalvlaran/campusnav/core"
	"github.com/katalvlaran/campusnav/dijkstra"
	"github.com/katalvlaran/campusnav/geo"
)

// Resolver runs meeting-point searches over a read-only walking graph.
// It holds no per-query state and is safe for concurrent use when its
// collaborators are.
type Resolver struct {
	graph      *core.Graph[int64, float64]
	candidates CandidateSource
	locator    campus.Locator
	opts       options
}

// NewResolver wires a Resolver. Every collaborator is required.
func NewResolver(g *core.Graph[int64, float64], candidates CandidateSource, locator campus.Locator, opts ...Option) (*Resolver, error) {
	switch {
	case g == nil:
		return nil, fmt.Errorf("%w: graph", ErrNilDependency)
	case candidates == nil:
		return nil, fmt.Errorf("%w: candidate source", ErrNilDependency)
	case locator == nil:
		return nil, fmt.Errorf("%w: locator", ErrNilDependency)
	}
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return &Resolver{graph: g, candidates: candidates, locator: locator, opts: o}, nil
}

// step is the immutable outcome of one state handler.
type step struct {
	next    State
	reason  string
	meeting *Meeting
	err     error
}

// query is the per-call state of one search.
type query struct {
	r         *Resolver
	ctx       context.Context
	starts    [2]campus.Building
	startV    [2]int64
	tried     map[int64]struct{}
	rejected  []campus.Building
	tables    [2]*dijkstra.Table[int64, float64]
	attempts  int
	candidate campus.Building
	candV     int64
	placed    bool
}

// Resolve searches for a meeting building for people starting at p1 and p2.
//
// Returns the accepted *Meeting, a *NoReachableError (errors.Is
// ErrNoReachableMeetingPoint) when no candidate works, ErrUnplaceable when a
// start cannot be snapped to the network, or ctx.Err() on cancellation.
func (r *Resolver) Resolve(ctx context.Context, p1, p2 campus.Building) (*Meeting, error) {
	q := &query{
		r:      r,
		ctx:    ctx,
		starts: [2]campus.Building{p1, p2},
		tried:  make(map[int64]struct{}),
	}
	for i, b := range q.starts {
		v, ok := r.locator.Nearest(b.Coord)
		if !ok {
			return nil, fmt.Errorf("%w: %s", ErrUnplaceable, b.Name)
		}
		q.startV[i] = v
	}
	mid := r.opts.geometry.Midpoint(p1.Coord, p2.Coord)

	state := StateSelecting
	for {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		var s step
		switch state {
		case StateSelecting:
			s = q.selectCandidate(mid)
		case StateChecking:
			s = q.check()
		case StateRetrying:
			s = q.retry()
		default:
			return nil, fmt.Errorf("meeting: unexpected state %v", state)
		}
		if s.err != nil && !s.next.Terminal() {
			return nil, s.err
		}

		r.opts.onTransition(Transition{
			From:      state,
			To:        s.next,
			Attempt:   q.attempts,
			Candidate: q.candidate,
			Reason:    s.reason,
		})

		switch s.next {
		case StateAccepted:
			s.meeting.Midpoint = mid

			return s.meeting, nil
		case StateExhausted:
			return nil, s.err
		}
		state = s.next
	}
}

// selectCandidate takes the closest untried building and marks it tried.
func (q *query) selectCandidate(mid geo.Coordinate) step {
	b, ok := q.r.candidates.ClosestUntried(mid, q.tried)
	if !ok {
		return step{
			next:   StateExhausted,
			reason: "no untried buildings left",
			err:    q.noReachable(&NoReachableError{Tried: len(q.tried)}),
		}
	}
	q.tried[b.ID] = struct{}{}
	q.attempts++
	q.candidate = b
	q.placed = false

	return step{next: StateChecking}
}

// check accepts the current candidate only if both starts reach it.
func (q *query) check() step {
	v, ok := q.r.locator.Nearest(q.candidate.Coord)
	if !ok {
		return step{next: StateRetrying, reason: "not on the walking network"}
	}
	q.candV = v
	q.placed = true

	if err := q.ensureTables(); err != nil {
		return step{next: StateChecking, err: err}
	}

	if q.r.opts.requireConnect && !q.tables[0].Reached(q.startV[1]) {
		return step{
			next:   StateExhausted,
			reason: "starts are not connected",
			err:    q.noReachable(&NoReachableError{Tried: len(q.tried), StartsDisconnected: true}),
		}
	}

	r1, r2 := q.tables[0].Reached(v), q.tables[1].Reached(v)
	switch {
	case !r1 && !r2:
		return step{next: StateRetrying, reason: "unreachable from both starts"}
	case !r1:
		return step{next: StateRetrying, reason: "unreachable from person 1"}
	case !r2:
		return step{next: StateRetrying, reason: "unreachable from person 2"}
	}

	m := &Meeting{
		Building: q.candidate,
		Vertex:   v,
		Tables:   q.tables,
		Attempts: q.attempts,
		Rejected: q.rejected,
	}
	for i := range q.tables {
		path, err := q.tables[i].PathTo(v)
		if err != nil {
			return step{next: StateChecking, err: err}
		}
		m.Legs[i] = Leg{Start: q.startV[i], Path: path}
	}

	return step{next: StateAccepted, meeting: m}
}

// retry records the rejection and either loops or gives up at the cap.
func (q *query) retry() step {
	q.rejected = append(q.rejected, q.candidate)
	if limit := q.r.opts.maxCandidates; limit > 0 && q.attempts >= limit {
		return step{
			next:   StateExhausted,
			reason: "candidate limit reached",
			err:    q.noReachable(&NoReachableError{Tried: q.attempts, Limited: true}),
		}
	}

	return step{next: StateSelecting}
}

// noReachable stamps e with where the search stood when it gave up.
func (q *query) noReachable(e *NoReachableError) *NoReachableError {
	e.Starts = q.startV
	e.Last = q.candidate
	e.LastVertex = q.candV
	e.LastPlaced = q.placed

	return e
}

// ensureTables computes the shortest-path table of each start once.
func (q *query) ensureTables() error {
	if q.tables[0] != nil {
		return nil
	}
	run := func(ctx context.Context, i int) error {
		t, err := dijkstra.ShortestPaths(q.r.graph, q.startV[i], dijkstra.WithContext(ctx))
		if err != nil {
			return fmt.Errorf("meeting: shortest paths from %d: %w", q.startV[i], err)
		}
		q.tables[i] = t

		return nil
	}

	switch {
	case q.startV[0] == q.startV[1]:
		if err := run(q.ctx, 0); err != nil {
			return err
		}
		q.tables[1] = q.tables[0]
	case q.r.opts.parallelLegs:
		// a failed leg cancels the other through gctx
		g, gctx := errgroup.WithContext(q.ctx)
		g.Go(func() error { return run(gctx, 0) })
		g.Go(func() error { return run(gctx, 1) })
		if err := g.Wait(); err != nil {
			q.tables = [2]*dijkstra.Table[int64, float64]{}

			return err
		}
	default:
		if err := run(q.ctx, 0); err != nil {
			return err
		}
		if err := run(q.ctx, 1); err != nil {
			return err
		}
	}

	return nil
}
