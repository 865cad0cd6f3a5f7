// SPDX-License-Identifier: MIT
package osmmap

import (
	"log/slog"

	"github.com/katalvlaran/campusnav/core"
	"github.com/katalvlaran/campusnav/geo"
)

// BuildReport summarises a BuildGraph run.
type BuildReport struct {
	Vertices int `json:"vertices"`
	Edges    int `json:"edges"`
	Rejected int `json:"rejected"`
}

// BuildGraph turns m into a walking graph: every node is a vertex and each
// consecutive pair of nodes on a footway is joined in both directions,
// weighted by the great-circle distance in miles.
//
// Footway steps that reference an unknown node are rejected by the graph;
// they are logged at warn level and counted in the report.
func BuildGraph(m *Map, logger *slog.Logger) (*core.Graph[int64, float64], BuildReport) {
	if logger == nil {
		logger = slog.Default()
	}

	g := core.NewGraph[int64, float64](core.WithVertexCapacity(len(m.Nodes)))
	for id := range m.Nodes {
		g.AddVertex(id)
	}

	var report BuildReport
	for _, fw := range m.Footways {
		for i := 0; i+1 < len(fw.Nodes); i++ {
			a, b := fw.Nodes[i], fw.Nodes[i+1]
			ca, okA := m.Nodes[a]
			cb, okB := m.Nodes[b]
			var dist float64
			if okA && okB {
				dist = geo.Distance(ca, cb)
			}
			if !g.AddEdge(a, b, dist) {
				report.Rejected++
				logger.Warn("unable to add path", "footway", fw.ID, "from", a, "to", b, "miles", dist)
			}
			if !g.AddEdge(b, a, dist) {
				report.Rejected++
				logger.Warn("unable to add path", "footway", fw.ID, "from", b, "to", a, "miles", dist)
			}
		}
	}
	report.Vertices = g.VertexCount()
	report.Edges = g.EdgeCount()
	logger.Info("graph built", "vertices", report.Vertices, "edges", report.Edges, "rejected", report.Rejected)

	return g, report
}
