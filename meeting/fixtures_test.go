// SPDX-License-Identifier: MIT
package meeting_test

import (
	"testing"

	"github.com/katalvlaran/campusnav/campus"
	"github.com/katalvlaran/campusnav/core"
	"github.com/katalvlaran/campusnav/geo"
	"github.com/katalvlaran/campusnav/meeting"
	"github.com/stretchr/testify/require"
)

// Vertex ids of the fixture network. Each building sits exactly on its vertex.
const (
	vStart1 int64 = 1
	vStart2 int64 = 2
	vNear   int64 = 10 // closest to the midpoint, isolated
	vHalf   int64 = 20 // reachable from start 1 only
	vMeet   int64 = 30 // reachable from both
)

var coords = map[int64]geo.Coordinate{
	vStart1: {Lat: 0, Lon: 0},
	vStart2: {Lat: 0, Lon: 0.02},
	vNear:   {Lat: 0, Lon: 0.0101},
	vHalf:   {Lat: 0.001, Lon: 0.01},
	vMeet:   {Lat: 0.003, Lon: 0.01},
}

var (
	start1 = campus.Building{ID: 101, Name: "West Hall", Abbrev: "WH", Coord: coords[vStart1]}
	start2 = campus.Building{ID: 102, Name: "East Hall", Abbrev: "EH", Coord: coords[vStart2]}
	near   = campus.Building{ID: 110, Name: "Fenced Pavilion", Coord: coords[vNear]}
	half   = campus.Building{ID: 120, Name: "One Way Lab", Coord: coords[vHalf]}
	meet   = campus.Building{ID: 130, Name: "Quad Cafe", Abbrev: "QC", Coord: coords[vMeet]}
)

type fixture struct {
	graph     *core.Graph[int64, float64]
	directory *campus.Directory
	locator   campus.Locator
}

// newFixture returns the one-way network
//
//	start1 → meet ← start2
//	start1 → half
//	near (isolated)
//
// so half is reachable from start 1 only. When connected is false, start 2
// has no outgoing edge and no building is reachable from both starts.
func newFixture(t *testing.T, connected bool) fixture {
	t.Helper()

	g := core.NewGraph[int64, float64]()
	nodes := make([]campus.Node, 0, len(coords))
	for id, c := range coords {
		require.True(t, g.AddVertex(id))
		nodes = append(nodes, campus.Node{ID: id, Coord: c})
	}
	arc := func(from, to int64) {
		require.True(t, g.AddEdge(from, to, geo.Distance(coords[from], coords[to])))
	}
	arc(vStart1, vMeet)
	arc(vStart1, vHalf)
	if connected {
		arc(vStart2, vMeet)
	}

	return fixture{
		graph:     g,
		directory: campus.NewDirectory([]campus.Building{start1, start2, near, half, meet}, nil),
		locator:   campus.NewScanLocator(nodes, nil),
	}
}

func (f fixture) resolver(t *testing.T, opts ...meeting.Option) *meeting.Resolver {
	t.Helper()

	r, err := meeting.NewResolver(f.graph, f.directory, f.locator, opts...)
	require.NoError(t, err)

	return r
}
