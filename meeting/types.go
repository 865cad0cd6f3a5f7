// SPDX-License-Identifier: MIT
package meeting

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/campusnav/campus"
	"github.com/katalvlaran/campusnav/dijkstra"
	"github.com/katalvlaran/campusnav/geo"
)

// Sentinel errors.
var (
	// ErrNoReachableMeetingPoint is matched (errors.Is) by every *NoReachableError.
	ErrNoReachableMeetingPoint = errors.New("meeting: no reachable meeting point")

	// ErrUnplaceable means a building could not be snapped to any walkable vertex.
	ErrUnplaceable = errors.New("meeting: building cannot be placed on the walking network")

	// ErrNilDependency is returned by NewResolver for a missing collaborator.
	ErrNilDependency = errors.New("meeting: nil dependency")
)

// NoReachableError reports why the search gave up.
type NoReachableError struct {
	// Tried is the number of candidate buildings evaluated.
	Tried int
	// StartsDisconnected is set when the search stopped because the second
	// start cannot be reached from the first (WithRequireConnectedStarts).
	StartsDisconnected bool
	// Limited is set when WithMaxCandidates cut the search short.
	Limited bool
	// Starts are the vertices both people were snapped to.
	Starts [2]int64
	// Last is the final candidate evaluated; zero when Tried is 0.
	Last campus.Building
	// LastVertex is the vertex Last was snapped to, valid when LastPlaced.
	LastVertex int64
	LastPlaced bool
}

// Error implements error.
func (e *NoReachableError) Error() string {
	switch {
	case e.StartsDisconnected:
		return fmt.Sprintf("%v: starting points are not connected", ErrNoReachableMeetingPoint)
	case e.Limited:
		return fmt.Sprintf("%v: gave up after %d candidates", ErrNoReachableMeetingPoint, e.Tried)
	}

	return fmt.Sprintf("%v: %d candidates tried", ErrNoReachableMeetingPoint, e.Tried)
}

// Unwrap exposes ErrNoReachableMeetingPoint to errors.Is.
func (e *NoReachableError) Unwrap() error { return ErrNoReachableMeetingPoint }

// State is a step of the candidate search.
type State int

// Search states. Accepted and Exhausted are terminal.
const (
	StateSelecting State = iota
	StateChecking
	StateRetrying
	StateAccepted
	StateExhausted
)

var stateNames = [...]string{"selecting", "checking", "retrying", "accepted", "exhausted"}

// String implements fmt.Stringer.
func (s State) String() string {
	if s < 0 || int(s) >= len(stateNames) {
		return fmt.Sprintf("State(%d)", int(s))
	}

	return stateNames[s]
}

// Terminal reports whether s ends the search.
func (s State) Terminal() bool { return s == StateAccepted || s == StateExhausted }

// Transition describes one state change; it is passed to the WithOnTransition hook.
type Transition struct {
	From      State
	To        State
	Attempt   int
	Candidate campus.Building
	// Reason is a short explanation for Retrying and Exhausted transitions.
	Reason string
}

// Leg is one person's walk to the meeting vertex.
type Leg struct {
	Start int64
	Path  dijkstra.Path[int64, float64]
}

// Meeting is the accepted outcome of a search. Tables holds the full
// distance/predecessor table of each start; both legs are read from them.
type Meeting struct {
	Building campus.Building
	Vertex   int64
	Midpoint geo.Coordinate
	Legs     [2]Leg
	Tables   [2]*dijkstra.Table[int64, float64]
	Attempts int
	Rejected []campus.Building
}

// Geometry supplies the spherical helpers of the search.
type Geometry interface {
	Distance(a, b geo.Coordinate) float64
	Midpoint(a, b geo.Coordinate) geo.Coordinate
}

// CandidateSource proposes the building closest to a point among those whose
// IDs are not yet in tried.
type CandidateSource interface {
	ClosestUntried(target geo.Coordinate, tried map[int64]struct{}) (campus.Building, bool)
}

// Option configures a Resolver.
type Option func(*options)

type options struct {
	geometry       Geometry
	maxCandidates  int
	parallelLegs   bool
	requireConnect bool
	onTransition   func(Transition)
}

func defaultOptions() options {
	return options{
		geometry:     geo.Haversine{},
		onTransition: func(Transition) {},
	}
}

// WithGeometry replaces the default haversine geometry.
func WithGeometry(g Geometry) Option {
	return func(o *options) {
		if g != nil {
			o.geometry = g
		}
	}
}

// WithMaxCandidates bounds the number of candidate buildings evaluated per
// query. n ≤ 0 means unbounded.
func WithMaxCandidates(n int) Option {
	return func(o *options) {
		if n < 0 {
			n = 0
		}
		o.maxCandidates = n
	}
}

// WithParallelLegs computes the two shortest-path tables concurrently.
func WithParallelLegs() Option {
	return func(o *options) { o.parallelLegs = true }
}

// WithRequireConnectedStarts stops the search as soon as the second start is
// found to be unreachable from the first.
func WithRequireConnectedStarts() Option {
	return func(o *options) { o.requireConnect = true }
}

// WithOnTransition registers a hook called after every state change.
func WithOnTransition(fn func(Transition)) Option {
	return func(o *options) {
		if fn != nil {
			o.onTransition = fn
		}
	}
}
