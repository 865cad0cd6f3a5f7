// SPDX-License-Identifier: MIT
package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/campusnav/config"
	"github.com/katalvlaran/campusnav/core"
	"github.com/katalvlaran/campusnav/logging"
	"github.com/katalvlaran/campusnav/navigator"
	"github.com/katalvlaran/campusnav/osmmap"
)

// app carries the root flags and what PersistentPreRunE derives from them.
type app struct {
	configPath string
	mapPath    string
	logLevel   string

	cfg    config.Config
	logger *slog.Logger
}

// loaded is a map ready to answer queries.
type loaded struct {
	m        *osmmap.Map
	g        *core.Graph[int64, float64]
	report   osmmap.BuildReport
	nav      *navigator.Navigator
	registry *prometheus.Registry
}

func newRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:           "campusnav",
		Short:         "Find a meeting building between two people on campus",
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd)
		},
	}
	root.PersistentFlags().StringVar(&a.configPath, "config", "campusnav.yaml", "YAML config file (missing file means defaults)")
	root.PersistentFlags().StringVar(&a.mapPath, "map", "", "OSM XML map file (overrides map.path)")
	root.PersistentFlags().StringVar(&a.logLevel, "log-level", "", "debug|info|warn|error (overrides log.level)")

	root.AddCommand(
		newReplCmd(a),
		newRouteCmd(a),
		newServeCmd(a),
		newStatsCmd(a),
		newBuildingsCmd(a),
	)

	return root
}

func (a *app) setup(cmd *cobra.Command) error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}
	if a.mapPath != "" {
		cfg.Map.Path = a.mapPath
	}
	if a.logLevel != "" {
		cfg.Log.Level = a.logLevel
	}

	logger, err := logging.New(logging.Config{Level: cfg.Log.Level, Format: cfg.Log.Format}, cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	a.cfg = cfg
	a.logger = logger

	return nil
}

// load reads the configured map, builds the walking graph and wires a
// Navigator with metrics on a private registry.
func (a *app) load(ctx context.Context) (*loaded, error) {
	m, err := osmmap.LoadFile(ctx, a.cfg.Map.Path,
		osmmap.WithBuildingValues(a.cfg.Map.BuildingValues...),
		osmmap.WithFootwayValues(a.cfg.Map.FootwayValues...),
		osmmap.WithLogger(a.logger),
	)
	if err != nil {
		return nil, fmt.Errorf("unable to load open street map: %w", err)
	}
	g, report := osmmap.BuildGraph(m, a.logger)

	reg := prometheus.NewRegistry()
	nav, err := navigator.NewFromMap(m, g, navigator.Settings{
		Locator:                a.cfg.Locator.Kind,
		NearestK:               a.cfg.Locator.Neighbors,
		MaxCandidates:          a.cfg.Meeting.MaxCandidates,
		ParallelLegs:           a.cfg.Meeting.ParallelLegs,
		RequireConnectedStarts: a.cfg.Meeting.RequireConnectedStarts,
	}, navigator.WithLogger(a.logger), navigator.WithMetrics(navigator.NewMetrics(reg)))
	if err != nil {
		return nil, err
	}

	return &loaded{m: m, g: g, report: report, nav: nav, registry: reg}, nil
}
