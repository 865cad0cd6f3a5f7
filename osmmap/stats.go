// SPDX-License-Identifier: MIT
package osmmap

import (
	"context"
	"fmt"

	"github.com/katalvlaran/campusnav/bfs"
	"github.com/katalvlaran/campusnav/core"
)

// Stats describes a loaded map and its walking graph.
//
// Islands counts the groups of footway vertices that can reach each other
// (components with at least one edge); nodes not on any footway are ignored.
type Stats struct {
	Summary
	Graph         BuildReport `json:"graph"`
	Islands       int         `json:"islands"`
	LargestIsland int         `json:"largest_island"`
}

// Analyze computes Stats for m and the graph BuildGraph produced from it.
func Analyze(ctx context.Context, m *Map, g *core.Graph[int64, float64], report BuildReport) (Stats, error) {
	s := Stats{Summary: m.Summary(), Graph: report}

	groups, err := bfs.Components(g, bfs.WithContext(ctx))
	if err != nil {
		return s, fmt.Errorf("osmmap: components: %w", err)
	}
	for _, group := range groups {
		if len(group) < 2 {
			continue
		}
		s.Islands++
		if len(group) > s.LargestIsland {
			s.LargestIsland = len(group)
		}
	}

	return s, nil
}
