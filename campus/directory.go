// SPDX-License-Identifier: MIT
package campus

import (
	"math"
	"strings"

	"github.com/katalvlaran/campusnav/geo"
)

// Geometry measures the distance between two coordinates.
type Geometry interface {
	Distance(a, b geo.Coordinate) float64
}

// Directory is an immutable, ordered catalogue of buildings.
type Directory struct {
	buildings []Building
	geometry  Geometry
}

// NewDirectory copies buildings (keeping their order) into a Directory.
// A nil geometry defaults to geo.Haversine.
func NewDirectory(buildings []Building, geometry Geometry) *Directory {
	if geometry == nil {
		geometry = geo.Haversine{}
	}

	return &Directory{
		buildings: append([]Building(nil), buildings...),
		geometry:  geometry,
	}
}

// Len returns the number of buildings.
func (d *Directory) Len() int { return len(d.buildings) }

// All returns a copy of the catalogue in load order.
func (d *Directory) All() []Building {
	return append([]Building(nil), d.buildings...)
}

// Lookup resolves a free-text query to one building.
//
// An exact abbreviation match anywhere in the catalogue takes priority over
// any full-name substring match; within each pass the first building in load
// order wins. The empty query never matches.
func (d *Directory) Lookup(query string) (Building, bool) {
	if query == "" {
		return Building{}, false
	}
	for _, b := range d.buildings {
		if b.Abbrev != "" && b.Abbrev == query {
			return b, true
		}
	}
	for _, b := range d.buildings {
		if strings.Contains(b.Name, query) {
			return b, true
		}
	}

	return Building{}, false
}

// Search returns every building whose abbreviation equals query or whose
// name contains it case-insensitively, abbreviation matches first.
// An empty query returns the whole catalogue.
func (d *Directory) Search(query string) []Building {
	if query == "" {
		return d.All()
	}
	lower := strings.ToLower(query)
	var exact, partial []Building
	for _, b := range d.buildings {
		switch {
		case b.Abbrev != "" && strings.EqualFold(b.Abbrev, query):
			exact = append(exact, b)
		case strings.Contains(strings.ToLower(b.Name), lower):
			partial = append(partial, b)
		}
	}

	return append(exact, partial...)
}

// ClosestUntried returns the building nearest to target whose ID is not in
// tried. Ties keep the earlier building in load order. ok is false once every
// building has been tried.
func (d *Directory) ClosestUntried(target geo.Coordinate, tried map[int64]struct{}) (Building, bool) {
	best := -1
	bestDist := math.Inf(1)
	for i, b := range d.buildings {
		if _, used := tried[b.ID]; used {
			continue
		}
		if dist := d.geometry.Distance(b.Coord, target); dist < bestDist {
			best, bestDist = i, dist
		}
	}
	if best < 0 {
		return Building{}, false
	}

	return d.buildings[best], true
}
