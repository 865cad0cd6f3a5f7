// SPDX-License-Identifier: MIT
// Package campusnav finds where two people on a campus should meet and how
// each of them walks there.
//
// A campus is read from an OpenStreetMap extract: footways become a weighted
// walking graph (edge weights in miles) and named buildings become the
// catalogue people search by name or abbreviation. Given two buildings, the
// meeting building is the one closest to their geographic midpoint whose
// nearest footway node both people can reach; unreachable candidates are
// skipped in order of distance until one works or none are left.
//
// Packages:
//
//	core/       generic thread-safe directed weighted graph
//	dijkstra/   single-source shortest paths with predecessor tables
//	bfs/        breadth-first traversal and reachability groups
//	geo/        coordinates, great-circle distance, midpoints
//	campus/     building directory and nearest-node locators
//	osmmap/     OSM XML loading, graph building, map statistics
//	meeting/    the meeting-point search state machine
//	navigator/  query surface with logging and metrics
//	gpx/        GPX export of a route
//	server/     HTTP API
//	config/     YAML, .env and environment configuration
//	logging/    slog construction
//
// The campusnav command (cmd/campusnav) ties these together as an
// interactive prompt, one-shot route queries, statistics and an HTTP server.
package campusnav
