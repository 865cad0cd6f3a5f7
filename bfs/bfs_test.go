// SPDX-License-Identifier: MIT
package bfs_test

import (
	"context"
	"testing"

	"github.com/katalvlaran/campusnav/bfs"
	"github.com/katalvlaran/campusnav/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// twoWay builds an undirected-by-mirroring graph from vertex pairs.
func twoWay(vertices []string, pairs [][2]string) *core.Graph[string, float64] {
	g := core.NewGraph[string, float64]()
	for _, v := range vertices {
		g.AddVertex(v)
	}
	for _, p := range pairs {
		g.AddEdge(p[0], p[1], 1)
		g.AddEdge(p[1], p[0], 1)
	}

	return g
}

// TestBFS_Errors verifies that invalid inputs and options are rejected.
func TestBFS_Errors(t *testing.T) {
	_, err := bfs.BFS[string, float64](nil, "A")
	require.ErrorIs(t, err, bfs.ErrGraphNil)

	g := twoWay([]string{"A"}, nil)
	_, err = bfs.BFS(g, "missing")
	require.ErrorIs(t, err, bfs.ErrStartVertexNotFound)

	_, err = bfs.BFS(g, "A", bfs.WithMaxDepth(-1))
	require.ErrorIs(t, err, bfs.ErrOptionViolation)
}

// TestBFS_CycleAndDepths covers the cycle A-B-C-D-A.
func TestBFS_CycleAndDepths(t *testing.T) {
	g := twoWay([]string{"A", "B", "C", "D"}, [][2]string{{"A", "B"}, {"B", "C"}, {"C", "D"}, {"D", "A"}})

	res, err := bfs.BFS(g, "A")
	require.NoError(t, err)

	assert.Equal(t, []string{"A", "B", "D", "C"}, res.Order)
	assert.Equal(t, map[string]int{"A": 0, "B": 1, "D": 1, "C": 2}, res.Depth)

	path, err := res.PathTo("C")
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B", "C"}, path)
}

// TestBFS_Directed checks that one-way edges are honoured.
func TestBFS_Directed(t *testing.T) {
	g := core.NewGraph[int64, float64]()
	for _, v := range []int64{1, 2, 3} {
		g.AddVertex(v)
	}
	g.AddEdge(2, 1, 1)
	g.AddEdge(1, 3, 1)

	res, err := bfs.BFS(g, 1)
	require.NoError(t, err)
	assert.True(t, res.Reached(3))
	assert.False(t, res.Reached(2))
	_, err = res.PathTo(2)
	assert.Error(t, err)
}

// TestBFS_MaxDepth stops the walk after the given number of hops.
func TestBFS_MaxDepth(t *testing.T) {
	g := twoWay([]string{"A", "B", "C", "D"}, [][2]string{{"A", "B"}, {"B", "C"}, {"C", "D"}})

	res, err := bfs.BFS(g, "A", bfs.WithMaxDepth(2))
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B", "C"}, res.Order)
}

// TestBFS_Cancelled returns the context error.
func TestBFS_Cancelled(t *testing.T) {
	g := twoWay([]string{"A", "B"}, [][2]string{{"A", "B"}})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := bfs.BFS(g, "A", bfs.WithContext(ctx))
	require.ErrorIs(t, err, context.Canceled)
}

// TestComponents splits a network with an island and an isolated vertex.
func TestComponents(t *testing.T) {
	g := twoWay(
		[]string{"A", "B", "C", "X", "Y", "Z"},
		[][2]string{{"A", "B"}, {"B", "C"}, {"X", "Y"}},
	)

	comps, err := bfs.Components(g)
	require.NoError(t, err)
	require.Len(t, comps, 3)
	assert.Equal(t, []string{"A", "B", "C"}, comps[0])
	assert.Equal(t, []string{"X", "Y"}, comps[1])
	assert.Equal(t, []string{"Z"}, comps[2])
}

func TestComponents_Empty(t *testing.T) {
	comps, err := bfs.Components(core.NewGraph[string, int]())
	require.NoError(t, err)
	assert.Empty(t, comps)

	_, err = bfs.Components[string, int](nil)
	require.ErrorIs(t, err, bfs.ErrGraphNil)
}
