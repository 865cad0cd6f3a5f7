// SPDX-License-Identifier: MIT
// Package navigator is the query surface of campusnav: it turns two free-text
// building queries into a meeting building and a walking route for each
// person, with logging and metrics around every query.
package navigator

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/katalvlaran/campusnav/campus"
	"github.com/katalvlaran/campusnav/geo"
	"github.com/katalvlaran/campusnav/meeting"
)

// ErrBuildingNotFound is matched (errors.Is) by every *BuildingNotFoundError.
var ErrBuildingNotFound = errors.New("navigator: building not found")

// BuildingNotFoundError names which person's query matched no building.
type BuildingNotFoundError struct {
	Person int
	Query  string
}

// Error implements error.
func (e *BuildingNotFoundError) Error() string {
	return fmt.Sprintf("person %d's building not found (%q)", e.Person, e.Query)
}

// Unwrap exposes ErrBuildingNotFound to errors.Is.
func (e *BuildingNotFoundError) Unwrap() error { return ErrBuildingNotFound }

// Leg is one person's walk, start vertex first.
type Leg struct {
	Nodes       []int64          `json:"nodes"`
	Coordinates []geo.Coordinate `json:"coordinates"`
	Miles       float64          `json:"miles"`
}

// Start returns the first vertex of the leg.
func (l Leg) Start() int64 { return l.Nodes[0] }

// Route is the answer to one query.
type Route struct {
	ID       uuid.UUID         `json:"id"`
	Person1  campus.Building   `json:"person1"`
	Person2  campus.Building   `json:"person2"`
	Meeting  campus.Building   `json:"meeting"`
	MeetNode int64             `json:"meet_node"`
	Midpoint geo.Coordinate    `json:"midpoint"`
	Legs     [2]Leg            `json:"legs"`
	Attempts int               `json:"attempts"`
	Rejected []campus.Building `json:"rejected,omitempty"`
}

// Navigator answers route queries. It is safe for concurrent use.
type Navigator struct {
	directory *campus.Directory
	resolver  *meeting.Resolver
	nodes     map[int64]geo.Coordinate
	logger    *slog.Logger
	metrics   *Metrics
}

// Option configures a Navigator.
type Option func(*Navigator)

// WithLogger sets the query logger.
func WithLogger(l *slog.Logger) Option {
	return func(n *Navigator) {
		if l != nil {
			n.logger = l
		}
	}
}

// WithMetrics enables Prometheus metrics.
func WithMetrics(m *Metrics) Option {
	return func(n *Navigator) { n.metrics = m }
}

// New assembles a Navigator. nodes provides the positions used to draw legs.
func New(directory *campus.Directory, resolver *meeting.Resolver, nodes map[int64]geo.Coordinate, opts ...Option) *Navigator {
	n := &Navigator{
		directory: directory,
		resolver:  resolver,
		nodes:     nodes,
		logger:    slog.Default(),
	}
	for _, opt := range opts {
		opt(n)
	}

	return n
}

// Directory returns the building catalogue queries are resolved against.
func (n *Navigator) Directory() *campus.Directory { return n.directory }

// Node returns the position of walking-network vertex id.
func (n *Navigator) Node(id int64) (geo.Coordinate, bool) {
	c, ok := n.nodes[id]

	return c, ok
}

// FindRoute resolves both queries to buildings and searches for a meeting point.
//
// Errors: *BuildingNotFoundError (person 1 is reported first),
// *meeting.NoReachableError, meeting.ErrUnplaceable, or ctx.Err().
func (n *Navigator) FindRoute(ctx context.Context, query1, query2 string) (*Route, error) {
	began := time.Now()
	id := uuid.New()
	log := n.logger.With("route_id", id.String())
	if rid, ok := RequestIDFrom(ctx); ok {
		log = log.With("request_id", rid)
	}

	p1, ok := n.directory.Lookup(query1)
	if !ok {
		return nil, n.fail(log, began, 0, &BuildingNotFoundError{Person: 1, Query: query1})
	}
	p2, ok := n.directory.Lookup(query2)
	if !ok {
		return nil, n.fail(log, began, 0, &BuildingNotFoundError{Person: 2, Query: query2})
	}

	tried := 0
	m, err := n.resolver.Resolve(ctx, p1, p2)
	if err != nil {
		var nre *meeting.NoReachableError
		if errors.As(err, &nre) {
			tried = nre.Tried
		}

		return nil, n.fail(log.With("person1", p1.Name, "person2", p2.Name), began, tried, err)
	}

	route := &Route{
		ID:       id,
		Person1:  p1,
		Person2:  p2,
		Meeting:  m.Building,
		MeetNode: m.Vertex,
		Midpoint: m.Midpoint,
		Attempts: m.Attempts,
		Rejected: m.Rejected,
	}
	for i, leg := range m.Legs {
		route.Legs[i] = n.leg(leg)
	}

	n.metrics.observe(ResultOK, time.Since(began).Seconds(), m.Attempts, route.Legs[0].Miles, route.Legs[1].Miles)
	log.Info("route found",
		"person1", p1.Name,
		"person2", p2.Name,
		"meeting", m.Building.Name,
		"attempts", m.Attempts,
		"miles1", route.Legs[0].Miles,
		"miles2", route.Legs[1].Miles,
	)

	return route, nil
}

func (n *Navigator) leg(l meeting.Leg) Leg {
	out := Leg{
		Nodes:       l.Path.Vertices,
		Coordinates: make([]geo.Coordinate, 0, len(l.Path.Vertices)),
		Miles:       l.Path.Distance,
	}
	for _, v := range l.Path.Vertices {
		out.Coordinates = append(out.Coordinates, n.nodes[v])
	}

	return out
}

func (n *Navigator) fail(log *slog.Logger, began time.Time, tried int, err error) error {
	result := ResultError
	switch {
	case errors.Is(err, ErrBuildingNotFound):
		result = ResultBuildingNotFound
	case errors.Is(err, meeting.ErrNoReachableMeetingPoint):
		result = ResultNoMeetingPoint
	}
	n.metrics.observe(result, time.Since(began).Seconds(), tried)
	log.Warn("route not found", "result", result, "error", err)

	return err
}
