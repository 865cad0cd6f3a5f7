// SPDX-License-Identifier: MIT
package campus

import (
	"errors"
	"fmt"
	"math"
	"slices"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/quadtree"

	"github.com/katalvlaran/campusnav/geo"
)

// DefaultNearestK is the number of planar candidates that seed a quadtree
// search.
const DefaultNearestK = 8

// ErrNoNodes is returned when a locator is built from an empty node set.
var ErrNoNodes = errors.New("campus: no walkable nodes to index")

// Node is a walkable vertex with its position.
type Node struct {
	ID    int64
	Coord geo.Coordinate
}

// Locator snaps a coordinate to the nearest walkable vertex.
type Locator interface {
	Nearest(c geo.Coordinate) (int64, bool)
}

// ScanLocator answers Nearest with an exact linear scan.
type ScanLocator struct {
	nodes    []Node
	geometry Geometry
}

// NewScanLocator indexes nodes for exact nearest-vertex queries.
// A nil geometry defaults to geo.Haversine.
func NewScanLocator(nodes []Node, geometry Geometry) *ScanLocator {
	if geometry == nil {
		geometry = geo.Haversine{}
	}
	sorted := append([]Node(nil), nodes...)
	slices.SortFunc(sorted, func(a, b Node) int {
		switch {
		case a.ID < b.ID:
			return -1
		case a.ID > b.ID:
			return 1
		}

		return 0
	})

	return &ScanLocator{nodes: sorted, geometry: geometry}
}

// Nearest returns the vertex at minimum distance from c; ties go to the
// smaller id. ok is false when the locator holds no nodes.
func (l *ScanLocator) Nearest(c geo.Coordinate) (int64, bool) {
	return closest(l.nodes, c, l.geometry)
}

// QuadtreeLocator finds the nearest vertex in two passes over an orb
// quadtree: a planar k-nearest query seeds a best distance, then every node
// inside a lat/lon box covering that distance is re-ranked exactly. The box
// is widened in longitude by 1/cos(lat), so a node that is closer on the
// ground but farther in raw degrees is never missed.
//
// The box is sized in miles, so the geometry must measure miles.
type QuadtreeLocator struct {
	tree     *quadtree.Quadtree
	k        int
	geometry Geometry
}

// nodePoint adapts Node to orb.Pointer.
type nodePoint struct{ Node }

// Point implements orb.Pointer.
func (n nodePoint) Point() orb.Point { return n.Coord.Point() }

// NewQuadtreeLocator builds a quadtree over nodes. k ≤ 0 selects
// DefaultNearestK. Returns ErrNoNodes for an empty set.
func NewQuadtreeLocator(nodes []Node, k int, geometry Geometry) (*QuadtreeLocator, error) {
	if len(nodes) == 0 {
		return nil, ErrNoNodes
	}
	if k <= 0 {
		k = DefaultNearestK
	}
	if geometry == nil {
		geometry = geo.Haversine{}
	}

	bound := orb.Bound{Min: nodes[0].Coord.Point(), Max: nodes[0].Coord.Point()}
	for _, n := range nodes[1:] {
		bound = bound.Extend(n.Coord.Point())
	}
	tree := quadtree.New(bound.Pad(1e-9))
	for _, n := range nodes {
		if err := tree.Add(nodePoint{n}); err != nil {
			return nil, fmt.Errorf("campus: index node %d: %w", n.ID, err)
		}
	}

	return &QuadtreeLocator{tree: tree, k: k, geometry: geometry}, nil
}

// Nearest returns the vertex at minimum distance from c; ties go to the
// smaller id.
func (l *QuadtreeLocator) Nearest(c geo.Coordinate) (int64, bool) {
	seed := nodesOf(l.tree.KNearest(nil, c.Point(), l.k))
	bestID, ok := closest(seed, c, l.geometry)
	if !ok {
		return 0, false
	}
	var best Node
	for _, n := range seed {
		if n.ID == bestID {
			best = n
		}
	}

	box := searchBound(c, l.geometry.Distance(best.Coord, c))

	return closest(nodesOf(l.tree.InBound(nil, box)), c, l.geometry)
}

// milesPerDegreeLat is the ground length of one degree of latitude.
var milesPerDegreeLat = geo.Distance(geo.Coordinate{}, geo.Coordinate{Lat: 1})

// searchBound returns a box containing every point within miles of c.
func searchBound(c geo.Coordinate, miles float64) orb.Bound {
	dLat := miles/milesPerDegreeLat*1.01 + 1e-9
	maxLat := math.Min(math.Abs(c.Lat)+dLat, 89.999)
	dLon := dLat / math.Cos(maxLat*math.Pi/180)

	return orb.Bound{
		Min: orb.Point{c.Lon - dLon, c.Lat - dLat},
		Max: orb.Point{c.Lon + dLon, c.Lat + dLat},
	}
}

func nodesOf(points []orb.Pointer) []Node {
	out := make([]Node, 0, len(points))
	for _, p := range points {
		out = append(out, p.(nodePoint).Node)
	}

	return out
}

// closest returns the node of nodes nearest to c, ties to the smaller id.
func closest(nodes []Node, c geo.Coordinate, geometry Geometry) (int64, bool) {
	var (
		bestID   int64
		bestDist = math.Inf(1)
		found    bool
	)
	for _, n := range nodes {
		d := geometry.Distance(n.Coord, c)
		if !found || d < bestDist || (d == bestDist && n.ID < bestID) {
			bestID, bestDist, found = n.ID, d, true
		}
	}

	return bestID, found
}
