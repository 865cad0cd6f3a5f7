// SPDX-License-Identifier: MIT
package navigator

import (
	"fmt"

	"github.com/katalvlaran/campusnav/campus"
	"github.com/katalvlaran/campusnav/core"
	"github.com/katalvlaran/campusnav/geo"
	"github.com/katalvlaran/campusnav/meeting"
	"github.com/katalvlaran/campusnav/osmmap"
)

// Locator kinds accepted by Settings.Locator.
const (
	LocatorScan     = "scan"
	LocatorQuadtree = "quadtree"
)

// Settings tunes a Navigator built by NewFromMap.
type Settings struct {
	Locator                string
	NearestK               int
	MaxCandidates          int
	ParallelLegs           bool
	RequireConnectedStarts bool
}

// NewFromMap wires a Navigator over a loaded map and its walking graph:
// buildings become the directory, footway nodes feed the locator, and the
// resolver's transitions are logged at debug level.
func NewFromMap(m *osmmap.Map, g *core.Graph[int64, float64], s Settings, opts ...Option) (*Navigator, error) {
	geometry := geo.Haversine{}
	directory := campus.NewDirectory(m.Buildings, geometry)

	var locator campus.Locator
	switch s.Locator {
	case "", LocatorScan:
		locator = campus.NewScanLocator(m.FootwayNodes(), geometry)
	case LocatorQuadtree:
		ql, err := campus.NewQuadtreeLocator(m.FootwayNodes(), s.NearestK, geometry)
		if err != nil {
			return nil, fmt.Errorf("navigator: %w", err)
		}
		locator = ql
	default:
		return nil, fmt.Errorf("navigator: unknown locator %q", s.Locator)
	}

	n := New(directory, nil, m.Nodes, opts...)

	ropts := []meeting.Option{
		meeting.WithGeometry(geometry),
		meeting.WithMaxCandidates(s.MaxCandidates),
		meeting.WithOnTransition(func(t meeting.Transition) {
			n.logger.Debug("meeting transition",
				"from", t.From.String(),
				"to", t.To.String(),
				"attempt", t.Attempt,
				"candidate", t.Candidate.Name,
				"reason", t.Reason,
			)
		}),
	}
	if s.ParallelLegs {
		ropts = append(ropts, meeting.WithParallelLegs())
	}
	if s.RequireConnectedStarts {
		ropts = append(ropts, meeting.WithRequireConnectedStarts())
	}
	resolver, err := meeting.NewResolver(g, directory, locator, ropts...)
	if err != nil {
		return nil, fmt.Errorf("navigator: %w", err)
	}
	n.resolver = resolver

	return n, nil
}
