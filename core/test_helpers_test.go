// SPDX-License-Identifier: MIT
// Package core_test contains fixtures shared by the core tests.
package core_test

import (
	"testing"

	"github.com/katalvlaran/campusnav/core"
	"github.com/stretchr/testify/require"
)

// Common vertex IDs used across core tests.
const (
	VertexA = "A"
	VertexB = "B"
	VertexC = "C"
	VertexD = "D"
	VertexX = "X"
)

// Common weights used across core tests.
const (
	Weight1 = 1
	Weight2 = 2
	Weight3 = 3
	Weight5 = 5
	Weight7 = 7
)

// Common concurrency sizes used across core tests.
const (
	NReaders = 50
	NCloners = 20
	NLeaves  = 200
)

// newTriangle builds A→B(1), B→C(2), A→C(5) with every vertex present.
func newTriangle(t *testing.T) *core.Graph[string, int] {
	t.Helper()

	g := core.NewGraph[string, int]()
	for _, v := range []string{VertexA, VertexB, VertexC} {
		require.True(t, g.AddVertex(v), "AddVertex(%s)", v)
	}
	require.True(t, g.AddEdge(VertexA, VertexB, Weight1))
	require.True(t, g.AddEdge(VertexB, VertexC, Weight2))
	require.True(t, g.AddEdge(VertexA, VertexC, Weight5))

	return g
}

// requireSameGraph asserts that want and got hold identical vertex sets and edges.
func requireSameGraph(t *testing.T, want, got *core.Graph[string, int]) {
	t.Helper()

	require.Equal(t, want.Vertices(), got.Vertices(), "vertex sets differ")
	require.Equal(t, want.Edges(), got.Edges(), "edge sets differ")
	require.Equal(t, want.VertexCount(), got.VertexCount())
	require.Equal(t, want.EdgeCount(), got.EdgeCount())
}
