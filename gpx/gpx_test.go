// SPDX-License-Identifier: MIT
package gpx_test

import (
	"bytes"
	"testing"

	"github.com/beevik/etree"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/campusnav/campus"
	"github.com/katalvlaran/campusnav/geo"
	"github.com/katalvlaran/campusnav/gpx"
	"github.com/katalvlaran/campusnav/navigator"
)

func sampleRoute() *navigator.Route {
	return &navigator.Route{
		ID:      uuid.MustParse("6f1c2b1e-8a55-4f43-9d7e-0c1a2b3c4d5e"),
		Person1: campus.Building{ID: 1, Name: "Science Engineering Offices (SEO)", Abbrev: "SEO", Coord: geo.Coordinate{Lat: 41.8698, Lon: -87.6521}},
		Person2: campus.Building{ID: 2, Name: "Daley Library", Abbrev: "LIB", Coord: geo.Coordinate{Lat: 41.8701, Lon: -87.6489}},
		Meeting: campus.Building{ID: 3, Name: "Student Center East (SCE)", Abbrev: "SCE", Coord: geo.Coordinate{Lat: 41.8706, Lon: -87.6501}},
		Legs: [2]navigator.Leg{
			{Nodes: []int64{1, 2}, Coordinates: []geo.Coordinate{{Lat: 41.87, Lon: -87.652}, {Lat: 41.87, Lon: -87.651}}, Miles: 0.0516},
			{Nodes: []int64{4}, Coordinates: []geo.Coordinate{{Lat: 41.87, Lon: -87.649}}},
		},
	}
}

func TestWrite(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, gpx.Write(&buf, sampleRoute()))

	doc := etree.NewDocument()
	require.NoError(t, doc.ReadFromBytes(buf.Bytes()))

	root := doc.SelectElement("gpx")
	require.NotNil(t, root)
	assert.Equal(t, "1.1", root.SelectAttrValue("version", ""))
	assert.Equal(t, gpx.Namespace, root.SelectAttrValue("xmlns", ""))
	assert.Equal(t, "Meet at Student Center East (SCE)", root.FindElement("metadata/name").Text())

	wpts := root.SelectElements("wpt")
	require.Len(t, wpts, 3)
	assert.Equal(t, "Daley Library (LIB)", wpts[1].SelectElement("name").Text())
	assert.Equal(t, "meeting", wpts[2].SelectElement("type").Text())
	assert.Equal(t, "41.8706", wpts[2].SelectAttrValue("lat", ""))

	trks := root.SelectElements("trk")
	require.Len(t, trks, 2)
	assert.Equal(t, "person 1", trks[0].SelectElement("name").Text())
	assert.Equal(t, "0.052 mi", trks[0].SelectElement("desc").Text())
	pts := trks[0].FindElements("trkseg/trkpt")
	require.Len(t, pts, 2)
	assert.Equal(t, "-87.651", pts[1].SelectAttrValue("lon", ""))
	assert.Len(t, trks[1].FindElements("trkseg/trkpt"), 1)
}

func TestWrite_NilRoute(t *testing.T) {
	require.ErrorIs(t, gpx.Write(&bytes.Buffer{}, nil), gpx.ErrNilRoute)
}
