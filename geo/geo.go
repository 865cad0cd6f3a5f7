// SPDX-License-Identifier: MIT
// Package geo provides the great-circle geometry used to place people,
// buildings and meeting points on a map: distances in miles and the midpoint
// between two coordinates.
package geo

import (
	"fmt"

	"github.com/paulmach/orb"
	orbgeo "github.com/paulmach/orb/geo"
)

// MetersPerMile converts orb's metre distances to miles.
const MetersPerMile = 1609.344

// Coordinate is a WGS84 latitude/longitude pair in degrees.
type Coordinate struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

// String renders the coordinate as "(lat, lon)".
func (c Coordinate) String() string {
	return fmt.Sprintf("(%g, %g)", c.Lat, c.Lon)
}

// Point converts c to an orb.Point (x = longitude, y = latitude).
func (c Coordinate) Point() orb.Point {
	return orb.Point{c.Lon, c.Lat}
}

// FromPoint converts an orb.Point back to a Coordinate.
func FromPoint(p orb.Point) Coordinate {
	return Coordinate{Lat: p.Lat(), Lon: p.Lon()}
}

// Distance returns the haversine great-circle distance between a and b in miles.
func Distance(a, b Coordinate) float64 {
	return orbgeo.DistanceHaversine(a.Point(), b.Point()) / MetersPerMile
}

// Midpoint returns the point half-way along the great circle from a to b.
func Midpoint(a, b Coordinate) Coordinate {
	return FromPoint(orbgeo.Midpoint(a.Point(), b.Point()))
}

// Centroid returns the arithmetic mean of the given coordinates, or the zero
// Coordinate and false when there are none.
func Centroid(cs []Coordinate) (Coordinate, bool) {
	if len(cs) == 0 {
		return Coordinate{}, false
	}
	var lat, lon float64
	for _, c := range cs {
		lat += c.Lat
		lon += c.Lon
	}
	n := float64(len(cs))

	return Coordinate{Lat: lat / n, Lon: lon / n}, true
}

// Haversine is the default geometry: it satisfies any interface asking for
// Distance and Midpoint over Coordinates.
type Haversine struct{}

// Distance returns the great-circle distance in miles.
func (Haversine) Distance(a, b Coordinate) float64 { return Distance(a, b) }

// Midpoint returns the great-circle midpoint.
func (Haversine) Midpoint(a, b Coordinate) Coordinate { return Midpoint(a, b) }
