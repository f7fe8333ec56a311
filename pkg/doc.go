// Package pkg provides the libraries behind mazegen.
//
// # Overview
//
// Mazegen builds perfect mazes (spanning trees over a grid of cells) on
// rectangular or masked grids, measures them, and draws them. The pkg
// directory is organized into four areas:
//
//  1. [maze] - Domain logic (masks, grids, cells, generators, distances, tiles)
//  2. [render] - Output (ASCII, SVG, PNG, PDF, Graphviz link trees)
//  3. [pipeline] - Orchestration (generate → analyze → render, with caching)
//  4. Infrastructure: [cache], [store], [config], [server], [observability]
//
// # Architecture
//
//	Mask text / dimensions
//	         ↓
//	    [maze] package (grid + generator)
//	         ↓
//	    [pipeline] Analyze (distances, dead ends, longest path)
//	         ↓
//	    [render] package
//	         ↓
//	    ASCII/SVG/PNG/PDF/DOT/JSON output
//
// # Quick Start
//
//	import (
//	    "github.com/matzehuels/mazegen/pkg/maze"
//	    "github.com/matzehuels/mazegen/pkg/render"
//	)
//
//	g, _ := maze.NewGrid(20, 10, nil)
//	_ = maze.Generate(g, maze.AlgorithmWilson, maze.NewRand(42))
//	fmt.Print(render.ASCII(g))
//
// The [pipeline.Runner] adds caching and all formats in one call:
//
//	runner := pipeline.NewRunner(cache.NewNullCache(), nil, logger)
//	result, err := runner.Execute(ctx, pipeline.Options{
//	    Columns:   20,
//	    Rows:      10,
//	    Algorithm: "wilson",
//	    Formats:   []string{"svg", "png"},
//	    Heatmap:   true,
//	})
//
// # Main Packages
//
// [maze] - Grids with optional masks, cells with neighbours and links, six
// generators (binary tree, sidewinder, Aldous-Broder, Wilson, hunt-and-kill,
// recursive backtracker), Dijkstra distances, longest paths and the 16-entry
// wall-code tile table.
//
// [render] - Box-drawn ASCII, SVG with heatmap and path overlays, native PNG,
// PDF through rsvg-convert; [render/nodelink] draws the link tree with Graphviz.
//
// [io] - The JSON maze document used by the cache, the archive and the CLI.
//
// [pipeline] - Options validation, the cached Runner, and Survey, which
// compares average dead ends across algorithms.
//
// [cache] - File, Redis and null caches keyed by content hash.
//
// [store] - Archive of generated mazes in memory or MongoDB.
//
// [server] - chi-based HTTP API over the pipeline and the archive.
//
// [config] - TOML file, dotenv and MAZEGEN_* environment settings.
//
// [errors] - Coded errors shared by the CLI and the API.
//
// [observability] - Hooks for metrics and tracing.
//
// [maze]: github.com/matzehuels/mazegen/pkg/maze
// [render]: github.com/matzehuels/mazegen/pkg/render
// [render/nodelink]: github.com/matzehuels/mazegen/pkg/render/nodelink
// [io]: github.com/matzehuels/mazegen/pkg/io
// [pipeline]: github.com/matzehuels/mazegen/pkg/pipeline
// [pipeline.Runner]: github.com/matzehuels/mazegen/pkg/pipeline#Runner
// [cache]: github.com/matzehuels/mazegen/pkg/cache
// [store]: github.com/matzehuels/mazegen/pkg/store
// [server]: github.com/matzehuels/mazegen/pkg/server
// [config]: github.com/matzehuels/mazegen/pkg/config
// [errors]: github.com/matzehuels/mazegen/pkg/errors
// [observability]: github.com/matzehuels/mazegen/pkg/observability
package pkg
