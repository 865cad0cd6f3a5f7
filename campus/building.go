// SPDX-License-Identifier: MIT
// Package campus holds the building catalogue of a map and the lookups the
// meeting-point search needs: resolving what a person typed to a building,
// picking the building closest to a point, and snapping a coordinate to the
// nearest walkable vertex.
package campus

import (
	"github.com/katalvlaran/campusnav/geo"
)

// Building is a named place on the map.
//
// ID is unique within a map (the OSM way id for loaded maps). Abbrev may be
// empty. Coord is the representative position of the footprint.
type Building struct {
	ID     int64          `json:"id"`
	Name   string         `json:"name"`
	Abbrev string         `json:"abbrev,omitempty"`
	Coord  geo.Coordinate `json:"coord"`
}

// Label returns "Name (ABBR)" or just the name when no abbreviation is known
// or the name already carries it.
func (b Building) Label() string {
	if b.Abbrev == "" || hasSuffixAbbrev(b.Name, b.Abbrev) {
		return b.Name
	}

	return b.Name + " (" + b.Abbrev + ")"
}

func hasSuffixAbbrev(name, abbrev string) bool {
	suffix := "(" + abbrev + ")"

	return len(name) >= len(suffix) && name[len(name)-len(suffix):] == suffix
}
