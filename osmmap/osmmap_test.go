// SPDX-License-Identifier: MIT
package osmmap_test

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"

	"github.com/katalvlaran/campusnav/osmmap"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const campusFile = "testdata/campus.osm"

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil))
}

func TestLoadFile_Campus(t *testing.T) {
	m, err := osmmap.LoadFile(context.Background(), campusFile, osmmap.WithLogger(quietLogger()))
	require.NoError(t, err)

	assert.Equal(t, osmmap.Summary{Nodes: 23, Footways: 4, Buildings: 3}, m.Summary())

	// footways keep document order and node order
	require.Len(t, m.Footways, 4)
	assert.Equal(t, osmmap.Footway{ID: 1001, Nodes: []int64{1, 2, 3, 4}}, m.Footways[0])
	assert.Equal(t, int64(1002), m.Footways[1].ID, "area:highway=footway counts as a footway")

	names := make([]string, 0, len(m.Buildings))
	for _, b := range m.Buildings {
		names = append(names, b.Abbrev)
	}
	assert.Equal(t, []string{"SEO", "LIB", "SCE"}, names)

	seo := m.Buildings[0]
	assert.Equal(t, int64(2001), seo.ID)
	assert.Equal(t, "Science Engineering Offices (SEO)", seo.Name)
	assert.InDelta(t, 41.8698, seo.Coord.Lat, 1e-9)
	assert.InDelta(t, -87.6521, seo.Coord.Lon, 1e-9)
}

func TestLoad_Options(t *testing.T) {
	m, err := osmmap.LoadFile(context.Background(), campusFile,
		osmmap.WithLogger(quietLogger()),
		osmmap.WithBuildingValues("*"),
		osmmap.WithFootwayValues("footway", "service"),
	)
	require.NoError(t, err)

	assert.Len(t, m.Buildings, 4, "any named building")
	assert.Equal(t, "Island Residence Hall", m.Buildings[3].Name)
	assert.Empty(t, m.Buildings[3].Abbrev)
	assert.Len(t, m.Footways, 5)
}

func TestLoad_Errors(t *testing.T) {
	ctx := context.Background()

	_, err := osmmap.Load(ctx, strings.NewReader(`<osm version="0.6"></osm>`))
	require.ErrorIs(t, err, osmmap.ErrEmptyMap)

	_, err = osmmap.Load(ctx, strings.NewReader(`<osm><node id="1" lat="1" lon="2"></osm>`))
	require.Error(t, err)

	_, err = osmmap.LoadFile(ctx, "testdata/missing.osm")
	require.Error(t, err)
}

func TestFootwayNodes(t *testing.T) {
	m, err := osmmap.LoadFile(context.Background(), campusFile, osmmap.WithLogger(quietLogger()))
	require.NoError(t, err)

	nodes := m.FootwayNodes()
	ids := make([]int64, 0, len(nodes))
	for _, n := range nodes {
		ids = append(ids, n.ID)
	}
	// 99 is referenced by a footway but has no position
	assert.Equal(t, []int64{1, 2, 3, 4, 5, 6, 7}, ids)
}

func TestAbbreviation(t *testing.T) {
	cases := []struct {
		name, short, want string
	}{
		{"Student Center East (SCE)", "", "SCE"},
		{"Student Center East (SCE) ", "", "SCE"},
		{"Daley Library", "LIB", "LIB"},
		{"Lecture Center (LC) Annex", "", ""},
		{"Behavioral Sciences Building", "", ""},
		{"Science (Old) Hall (SOH)", "", "SOH"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, osmmap.Abbreviation(tc.name, tc.short), tc.name)
	}
}
