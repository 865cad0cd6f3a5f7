// SPDX-License-Identifier: MIT
// Package gpx renders a route as a GPX 1.1 document: one waypoint per
// building (both starts and the meeting place) and one track per person.
package gpx

import (
	"errors"
	"io"
	"strconv"

	"github.com/beevik/etree"

	"github.com/katalvlaran/campusnav/geo"
	"github.com/katalvlaran/campusnav/navigator"
)

// Namespace is the GPX 1.1 schema namespace.
const Namespace = "http://www.topografix.com/GPX/1/1"

// ErrNilRoute is returned by Document and Write for a nil route.
var ErrNilRoute = errors.New("gpx: nil route")

// Document builds the GPX tree for r.
func Document(r *navigator.Route) (*etree.Document, error) {
	if r == nil {
		return nil, ErrNilRoute
	}

	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)

	root := doc.CreateElement("gpx")
	root.CreateAttr("version", "1.1")
	root.CreateAttr("creator", "campusnav")
	root.CreateAttr("xmlns", Namespace)

	meta := root.CreateElement("metadata")
	meta.CreateElement("name").SetText("Meet at " + r.Meeting.Label())
	meta.CreateElement("desc").SetText("route " + r.ID.String())

	waypoint(root, r.Person1.Coord, r.Person1.Label(), "person 1")
	waypoint(root, r.Person2.Coord, r.Person2.Label(), "person 2")
	waypoint(root, r.Meeting.Coord, r.Meeting.Label(), "meeting")

	for i, leg := range r.Legs {
		trk := root.CreateElement("trk")
		trk.CreateElement("name").SetText("person " + strconv.Itoa(i+1))
		trk.CreateElement("desc").SetText(strconv.FormatFloat(leg.Miles, 'f', 3, 64) + " mi")
		seg := trk.CreateElement("trkseg")
		for _, c := range leg.Coordinates {
			point(seg, "trkpt", c)
		}
	}

	return doc, nil
}

// Write encodes r as indented GPX to w.
func Write(w io.Writer, r *navigator.Route) error {
	doc, err := Document(r)
	if err != nil {
		return err
	}
	doc.Indent(2)
	_, err = doc.WriteTo(w)

	return err
}

func waypoint(parent *etree.Element, c geo.Coordinate, name, kind string) {
	wpt := point(parent, "wpt", c)
	wpt.CreateElement("name").SetText(name)
	wpt.CreateElement("type").SetText(kind)
}

func point(parent *etree.Element, tag string, c geo.Coordinate) *etree.Element {
	el := parent.CreateElement(tag)
	el.CreateAttr("lat", strconv.FormatFloat(c.Lat, 'f', -1, 64))
	el.CreateAttr("lon", strconv.FormatFloat(c.Lon, 'f', -1, 64))

	return el
}
