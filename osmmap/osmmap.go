// SPDX-License-Identifier: MIT
// Package osmmap reads an OpenStreetMap XML extract into the three
// collections a walking router needs (node positions, footways and named
// buildings) and turns the footways into a weighted core.Graph.
package osmmap

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"regexp"
	"slices"
	"strings"

	"github.com/paulmach/osm"
	"github.com/paulmach/osm/osmxml"

	"github.com/katalvlaran/campusnav/campus"
	"github.com/katalvlaran/campusnav/geo"
)

// ErrEmptyMap is returned when the input contains no nodes at all.
var ErrEmptyMap = errors.New("osmmap: map contains no nodes")

// Default tag values recognised by Load.
var (
	DefaultBuildingValues = []string{"university"}
	DefaultFootwayValues  = []string{"footway"}
)

// Footway is an ordered walkable polyline of node ids.
type Footway struct {
	ID    int64
	Nodes []int64
}

// Map is the decoded content of one OSM extract.
type Map struct {
	Nodes     map[int64]geo.Coordinate
	Footways  []Footway
	Buildings []campus.Building
}

// Summary counts the collections of a Map.
type Summary struct {
	Nodes     int `json:"nodes"`
	Footways  int `json:"footways"`
	Buildings int `json:"buildings"`
}

// Summary returns the collection sizes.
func (m *Map) Summary() Summary {
	return Summary{Nodes: len(m.Nodes), Footways: len(m.Footways), Buildings: len(m.Buildings)}
}

// FootwayNodes returns every node that lies on at least one footway and has a
// known position, sorted by id, deduplicated.
func (m *Map) FootwayNodes() []campus.Node {
	seen := make(map[int64]struct{})
	var out []campus.Node
	for _, fw := range m.Footways {
		for _, id := range fw.Nodes {
			if _, dup := seen[id]; dup {
				continue
			}
			seen[id] = struct{}{}
			if c, ok := m.Nodes[id]; ok {
				out = append(out, campus.Node{ID: id, Coord: c})
			}
		}
	}
	slices.SortFunc(out, func(a, b campus.Node) int {
		switch {
		case a.ID < b.ID:
			return -1
		case a.ID > b.ID:
			return 1
		}

		return 0
	})

	return out
}

// Option configures Load.
type Option func(*options)

type options struct {
	buildingValues []string
	footwayValues  []string
	logger         *slog.Logger
}

// WithBuildingValues sets which values of the building=* tag mark a way as a
// building. The value "*" accepts any building. Empty calls are ignored.
func WithBuildingValues(values ...string) Option {
	return func(o *options) {
		if len(values) > 0 {
			o.buildingValues = values
		}
	}
}

// WithFootwayValues sets which values of highway=* (or area:highway=*) mark a
// way as walkable. Empty calls are ignored.
func WithFootwayValues(values ...string) Option {
	return func(o *options) {
		if len(values) > 0 {
			o.footwayValues = values
		}
	}
}

// WithLogger sets the logger used for load diagnostics.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// LoadFile opens path and decodes it with Load.
func LoadFile(ctx context.Context, path string, opts ...Option) (*Map, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("osmmap: open %s: %w", path, err)
	}
	defer f.Close()

	m, err := Load(ctx, f, opts...)
	if err != nil {
		return nil, fmt.Errorf("%w (file %s)", err, path)
	}

	return m, nil
}

// Load decodes an OSM XML document from r.
//
// Nodes become positions; ways tagged as footways become Footways in document
// order; ways tagged as buildings with a name become Buildings whose position
// is the mean of their resolvable nodes. Relations are ignored.
func Load(ctx context.Context, r io.Reader, opts ...Option) (*Map, error) {
	o := options{
		buildingValues: DefaultBuildingValues,
		footwayValues:  DefaultFootwayValues,
		logger:         slog.Default(),
	}
	for _, opt := range opts {
		opt(&o)
	}

	m := &Map{Nodes: make(map[int64]geo.Coordinate)}
	var buildingWays []*osm.Way

	scanner := osmxml.New(ctx, r)
	defer scanner.Close()
	for scanner.Scan() {
		switch obj := scanner.Object().(type) {
		case *osm.Node:
			m.Nodes[int64(obj.ID)] = geo.Coordinate{Lat: obj.Lat, Lon: obj.Lon}
		case *osm.Way:
			if o.isFootway(obj.Tags) {
				m.Footways = append(m.Footways, Footway{ID: int64(obj.ID), Nodes: wayNodeIDs(obj)})
			}
			if o.isBuilding(obj.Tags) {
				buildingWays = append(buildingWays, obj)
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("osmmap: decode: %w", err)
	}
	if len(m.Nodes) == 0 {
		return nil, ErrEmptyMap
	}

	for _, w := range buildingWays {
		b, ok := m.building(w)
		if !ok {
			o.logger.Debug("building without resolvable nodes skipped", "way", w.ID, "name", w.Tags.Find("name"))
			continue
		}
		m.Buildings = append(m.Buildings, b)
	}

	s := m.Summary()
	o.logger.Info("map loaded", "nodes", s.Nodes, "footways", s.Footways, "buildings", s.Buildings)

	return m, nil
}

func (o *options) isFootway(tags osm.Tags) bool {
	return slices.Contains(o.footwayValues, tags.Find("highway")) ||
		slices.Contains(o.footwayValues, tags.Find("area:highway"))
}

func (o *options) isBuilding(tags osm.Tags) bool {
	if tags.Find("name") == "" {
		return false
	}
	value := tags.Find("building")
	if value == "" || value == "no" {
		return false
	}

	return slices.Contains(o.buildingValues, "*") || slices.Contains(o.buildingValues, value)
}

func wayNodeIDs(w *osm.Way) []int64 {
	ids := make([]int64, 0, len(w.Nodes))
	for _, wn := range w.Nodes {
		ids = append(ids, int64(wn.ID))
	}

	return ids
}

// building assembles a campus.Building from a tagged way.
func (m *Map) building(w *osm.Way) (campus.Building, bool) {
	coords := make([]geo.Coordinate, 0, len(w.Nodes))
	seen := make(map[osm.NodeID]struct{}, len(w.Nodes))
	for _, wn := range w.Nodes {
		// closed rings repeat their first node
		if _, dup := seen[wn.ID]; dup {
			continue
		}
		seen[wn.ID] = struct{}{}
		if c, ok := m.Nodes[int64(wn.ID)]; ok {
			coords = append(coords, c)
		}
	}
	center, ok := geo.Centroid(coords)
	if !ok {
		return campus.Building{}, false
	}
	name := strings.TrimSpace(w.Tags.Find("name"))

	return campus.Building{
		ID:     int64(w.ID),
		Name:   name,
		Abbrev: Abbreviation(name, w.Tags.Find("short_name")),
		Coord:  center,
	}, true
}

var parenSuffix = regexp.MustCompile(`\(([^()]+)\)\s*$`)

// Abbreviation returns the explicit short name when set, otherwise the text
// inside a trailing parenthesis of name ("Student Center East (SCE)" → "SCE"),
// otherwise "".
func Abbreviation(name, shortName string) string {
	if s := strings.TrimSpace(shortName); s != "" {
		return s
	}
	if match := parenSuffix.FindStringSubmatch(name); match != nil {
		return strings.TrimSpace(match[1])
	}

	return ""
}
