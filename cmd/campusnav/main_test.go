// SPDX-License-Identifier: MIT
package main

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/campusnav/campus"
	"github.com/katalvlaran/campusnav/core"
	"github.com/katalvlaran/campusnav/geo"
	"github.com/katalvlaran/campusnav/logging"
	"github.com/katalvlaran/campusnav/meeting"
	"github.com/katalvlaran/campusnav/navigator"
)

const campusFile = "../../osmmap/testdata/campus.osm"

// run executes the CLI with the test map and returns stdout and stderr.
func run(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()

	var out, errOut bytes.Buffer
	root := newRootCmd()
	root.SetIn(strings.NewReader(stdin))
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetArgs(append([]string{"--config=", "--map=" + campusFile, "--log-level=warn"}, args...))
	err := root.Execute()

	return out.String(), errOut.String(), err
}

func TestRepl(t *testing.T) {
	out, _, err := run(t, "SEO\nLibrary\nGym\nSEO\nSEO\nPool\n#\n", "repl")
	require.NoError(t, err)

	assert.Contains(t, out, "# of nodes: 23\n# of footways: 4\n# of buildings: 3\n# of vertices: 23\n# of edges: 10\n")
	assert.Contains(t, out, promptPerson1)
	assert.Contains(t, out, promptPerson2)
	assert.Contains(t, out, "Destination Building:\n Student Center East (SCE)\n (41.870")
	assert.Contains(t, out, "Nearest P1 node:\n 1\n")
	assert.Contains(t, out, "Nearest P2 node:\n 4\n")
	assert.Contains(t, out, "Nearest destination node:\n 5\n")
	assert.Contains(t, out, "Path: 1->2->3->5\n")
	assert.Contains(t, out, "Path: 4->3->5\n")
	assert.Contains(t, out, "Person 1's building not found\n")
	assert.Contains(t, out, "Person 2's building not found\n")
	assert.True(t, strings.HasSuffix(out, "** Done **\n"))
}

func TestRepl_EndOfInput(t *testing.T) {
	out, _, err := run(t, "SEO\n", "repl")
	require.NoError(t, err)
	assert.Contains(t, out, "** Done **")
}

func TestRepl_Unreachable(t *testing.T) {
	t.Setenv("CAMPUSNAV_MAP_BUILDING_VALUES", "*")

	out, _, err := run(t, "Island\nSEO\n#\n", "repl")
	require.NoError(t, err)
	assert.Contains(t, out, "Person 1's point:\n Island Residence Hall\n")
	assert.Contains(t, out, "Person 2's point:\n Science Engineering Offices (SEO)\n")
	assert.Contains(t, out, "Destination Building:\n")
	assert.Contains(t, out, "Nearest P2 node:\n 1\n")
	assert.Contains(t, out, "Nearest destination node:\n")

	sorry := strings.Index(out, "Sorry, destination unreachable.")
	require.Positive(t, sorry)
	assert.Less(t, strings.Index(out, "Nearest P1 node:"), sorry)
	assert.Less(t, strings.Index(out, "Nearest P2 node:"), sorry)
	assert.True(t, strings.HasSuffix(out, "** Done **\n"))
}

// An empty walking network cannot place anyone; the loop keeps asking.
func TestRepl_UnplaceableContinues(t *testing.T) {
	dir := campus.NewDirectory([]campus.Building{
		{ID: 1, Name: "North Hall", Coord: geo.Coordinate{Lat: 41.87, Lon: -87.65}},
		{ID: 2, Name: "South Hall", Coord: geo.Coordinate{Lat: 41.86, Lon: -87.65}},
	}, nil)
	res, err := meeting.NewResolver(core.NewGraph[int64, float64](), dir, campus.NewScanLocator(nil, nil))
	require.NoError(t, err)
	nav := navigator.New(dir, res, nil, navigator.WithLogger(logging.Discard()))

	var out bytes.Buffer
	err = repl(context.Background(), nav, strings.NewReader("North\nSouth\nNorth\nSouth\n#\n"), &out, palette{plain: true})
	require.NoError(t, err)
	assert.Equal(t, 2, strings.Count(out.String(), "cannot be placed on the walking network"))
	assert.Equal(t, 3, strings.Count(out.String(), promptPerson1))
}

func TestRoute_JSON(t *testing.T) {
	out, _, err := run(t, "", "route", "SEO", "LIB", "--json")
	require.NoError(t, err)

	var r navigator.Route
	require.NoError(t, json.Unmarshal([]byte(out), &r))
	assert.Equal(t, "SCE", r.Meeting.Abbrev)
	assert.Equal(t, []int64{4, 3, 5}, r.Legs[1].Nodes)
}

func TestRoute_GPX(t *testing.T) {
	out, _, err := run(t, "", "route", "SEO", "LIB", "--gpx")
	require.NoError(t, err)
	assert.Contains(t, out, "<gpx")
	assert.Contains(t, out, "<trkseg>")
}

func TestRoute_Text(t *testing.T) {
	out, _, err := run(t, "", "route", "SEO", "LIB")
	require.NoError(t, err)
	assert.Contains(t, out, "Person 1's distance to dest: ")
	assert.Contains(t, out, "Path: 1->2->3->5")
}

func TestRoute_Errors(t *testing.T) {
	_, _, err := run(t, "", "route", "SEO", "Pool")
	var bnf *navigator.BuildingNotFoundError
	require.ErrorAs(t, err, &bnf)
	assert.Equal(t, 2, bnf.Person)

	_, _, err = run(t, "", "route", "SEO", "LIB", "--json", "--gpx")
	require.Error(t, err)

	_, _, err = run(t, "", "route", "SEO")
	require.Error(t, err)
}

func TestStats(t *testing.T) {
	out, _, err := run(t, "", "stats", "--dump")
	require.NoError(t, err)
	assert.Contains(t, out, "# of walkable islands: 2\n")
	assert.Contains(t, out, "largest island: 5 vertices\n")
	assert.Contains(t, out, "graph: 23 vertices, 10 edges")
}

func TestBuildings(t *testing.T) {
	out, _, err := run(t, "", "buildings", "lib")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "2002\tDaley Library (LIB)\t(41.870"), out)
	assert.Equal(t, 1, strings.Count(out, "\n"))

	out, _, err = run(t, "", "buildings")
	require.NoError(t, err)
	assert.Equal(t, 3, strings.Count(out, "\n"))
}

func TestMissingMap(t *testing.T) {
	_, _, err := run(t, "", "stats", "--map=does-not-exist.osm")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unable to load open street map")
}

func TestBadLogLevel(t *testing.T) {
	_, _, err := run(t, "", "stats", "--log-level=loud")
	require.Error(t, err)
}

func TestJoinPath(t *testing.T) {
	assert.Equal(t, "7", joinPath([]int64{7}))
	assert.Equal(t, "1->2->3", joinPath([]int64{1, 2, 3}))
}
