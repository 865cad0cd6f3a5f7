// SPDX-License-Identifier: MIT
package navigator_test

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/campusnav/meeting"
	"github.com/katalvlaran/campusnav/navigator"
	"github.com/katalvlaran/campusnav/osmmap"
)

const campusFile = "../osmmap/testdata/campus.osm"

type harness struct {
	nav     *navigator.Navigator
	logs    *bytes.Buffer
	metrics *navigator.Metrics
	reg     *prometheus.Registry
}

func newHarness(t *testing.T, s navigator.Settings, loadOpts ...osmmap.Option) harness {
	t.Helper()

	logs := &bytes.Buffer{}
	logger := slog.New(slog.NewTextHandler(logs, &slog.HandlerOptions{Level: slog.LevelDebug}))
	m, err := osmmap.LoadFile(context.Background(), campusFile, append(loadOpts, osmmap.WithLogger(logger))...)
	require.NoError(t, err)
	g, _ := osmmap.BuildGraph(m, logger)

	reg := prometheus.NewRegistry()
	metrics := navigator.NewMetrics(reg)
	nav, err := navigator.NewFromMap(m, g, s, navigator.WithLogger(logger), navigator.WithMetrics(metrics))
	require.NoError(t, err)

	return harness{nav: nav, logs: logs, metrics: metrics, reg: reg}
}

// On the test campus SEO sits at the west end of the main footway and LIB at
// the east end; SCE is north of the middle node and reachable through it.
func TestFindRoute_SEOtoLIB(t *testing.T) {
	for _, kind := range []string{navigator.LocatorScan, navigator.LocatorQuadtree} {
		t.Run(kind, func(t *testing.T) {
			h := newHarness(t, navigator.Settings{Locator: kind})

			route, err := h.nav.FindRoute(context.Background(), "SEO", "Library")
			require.NoError(t, err)

			assert.Equal(t, "SEO", route.Person1.Abbrev)
			assert.Equal(t, "LIB", route.Person2.Abbrev)
			assert.Equal(t, "SCE", route.Meeting.Abbrev)
			assert.Equal(t, int64(5), route.MeetNode)
			assert.Equal(t, []int64{1, 2, 3, 5}, route.Legs[0].Nodes)
			assert.Equal(t, []int64{4, 3, 5}, route.Legs[1].Nodes)
			assert.Equal(t, int64(1), route.Legs[0].Start())
			assert.Len(t, route.Legs[0].Coordinates, 4)
			assert.Greater(t, route.Legs[0].Miles, route.Legs[1].Miles)
			assert.Equal(t, 1, route.Attempts)
			assert.NotEqual(t, [16]byte{}, [16]byte(route.ID))
		})
	}
}

func TestFindRoute_BuildingNotFound(t *testing.T) {
	h := newHarness(t, navigator.Settings{})

	_, err := h.nav.FindRoute(context.Background(), "Gym", "Pool")
	var bnf *navigator.BuildingNotFoundError
	require.ErrorAs(t, err, &bnf)
	assert.Equal(t, 1, bnf.Person, "person 1 is reported first")

	_, err = h.nav.FindRoute(context.Background(), "SEO", "Pool")
	require.ErrorAs(t, err, &bnf)
	assert.Equal(t, 2, bnf.Person)
	assert.Equal(t, "Pool", bnf.Query)
	require.ErrorIs(t, err, navigator.ErrBuildingNotFound)

	assert.Equal(t, 2.0, testutil.ToFloat64(h.metricsCounter(navigator.ResultBuildingNotFound)))
}

func TestFindRoute_Metrics(t *testing.T) {
	h := newHarness(t, navigator.Settings{})

	_, err := h.nav.FindRoute(context.Background(), "SEO", "SCE")
	require.NoError(t, err)

	assert.Equal(t, 1.0, testutil.ToFloat64(h.metricsCounter(navigator.ResultOK)))
	n, err := testutil.GatherAndCount(h.reg, "campusnav_route_leg_miles")
	require.NoError(t, err)
	assert.Equal(t, 1, n)
	assert.Contains(t, h.logs.String(), "route found")
	assert.Contains(t, h.logs.String(), "meeting transition")
}

func TestFindRoute_RequestIDLogged(t *testing.T) {
	h := newHarness(t, navigator.Settings{})
	ctx := navigator.WithRequestID(context.Background(), "req-42")

	_, err := h.nav.FindRoute(ctx, "SEO", "LIB")
	require.NoError(t, err)
	assert.True(t, strings.Contains(h.logs.String(), "request_id=req-42"))
}

// The residence hall snaps to the footway island (nodes 6 and 7), which is not
// connected to the main path.
func TestFindRoute_NoMeetingPoint(t *testing.T) {
	for _, strict := range []bool{false, true} {
		h := newHarness(t, navigator.Settings{RequireConnectedStarts: strict}, osmmap.WithBuildingValues("*"))

		_, err := h.nav.FindRoute(context.Background(), "Island", "SEO")
		require.ErrorIs(t, err, meeting.ErrNoReachableMeetingPoint, "strict=%v", strict)

		var nre *meeting.NoReachableError
		require.ErrorAs(t, err, &nre)
		assert.Equal(t, strict, nre.StartsDisconnected)
		assert.Equal(t, 1.0, testutil.ToFloat64(h.metricsCounter(navigator.ResultNoMeetingPoint)))
	}
}

func TestNewFromMap_UnknownLocator(t *testing.T) {
	m, err := osmmap.LoadFile(context.Background(), campusFile, osmmap.WithLogger(slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil))))
	require.NoError(t, err)
	g, _ := osmmap.BuildGraph(m, slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil)))

	_, err = navigator.NewFromMap(m, g, navigator.Settings{Locator: "kdtree"})
	require.Error(t, err)
}

func TestBuildingNotFoundError_Message(t *testing.T) {
	err := &navigator.BuildingNotFoundError{Person: 2, Query: "X"}
	assert.Equal(t, `person 2's building not found ("X")`, err.Error())
	assert.NotErrorIs(t, err, meeting.ErrNoReachableMeetingPoint)
}

func (h harness) metricsCounter(result string) prometheus.Collector {
	return navigator.QueriesCounter(h.metrics, result)
}
