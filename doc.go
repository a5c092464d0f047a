// Package pathvisualiser is an interactive demonstrator of grid
// pathfinding search strategies: generate a maze, run one or several
// search algorithms over it, and replay their exploration side by side.
//
// 🚀 What is PathVisualiser?
//
//	A small, focused library plus a terminal front end that brings together:
//		• Grid model: walls, free cells, one Start, one Goal, safe editing
//		• Maze generation: seedable recursive backtracking + loop opening
//		• Search engines: DFS, BFS, A*, Weighted A*, IDA* over one contract
//		• Comparison: N exploration traces merged on one shared tick clock
//		• Replay: an owned, cancellable driver that paces frames for a view
//
// ✨ Why choose it?
//
//   - Deterministic – a fixed seed reproduces the exact same maze, bit for bit
//   - Honest metrics – exploration order, nodes expanded, optimality guarantees
//   - Comparable – independently paced traces share one virtual clock
//   - Pure algorithms – every engine is a total function over (grid, start, goal)
//
// The module is organized as flat, per-concern packages:
//
//	grid/     — Position, CellType, Grid and invariant-preserving edits
//	mazegen/  — deterministic maze generator and blank editing canvas
//	search/   — the five engines and their shared Result contract
//	compare/  — tick-synchronized aggregation of multiple traces
//	replay/   — speed-paced frame driver with explicit cancellation
//	vizconfig/ — YAML configuration for the front end
//	cmd/      — cobra + bubbletea terminal front end
//
// Quick ASCII example (5×5, S=start, G=goal, #=wall):
//
//	#####
//	#S..#
//	#.#.#
//	#..G#
//	#####
//
// Dive into the examples/ directory for runnable walkthroughs.
package pathvisualiser
