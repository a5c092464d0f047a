// Package search implements the five interchangeable pathfinding
// engines — DFS, BFS, A*, Weighted A*, and IDA* — over one shared
// grid/neighbor contract, each returning a uniform Result.
//
// What
//
//   - Execute(g, algo, opts...): run one engine over a validated grid,
//     from its unique Start to its unique Goal.
//   - RunAll(g, algos, opts...): run several engines over the same grid
//     and return their results in input order, ready for the compare
//     package to merge.
//   - Result: found flag, final path, exploration order (visitation
//     sequence, duplicate-free), nodes expanded, path length, elapsed
//     time, and the algorithm-inherent optimality guarantee.
//
// Shared contract
//
//	The neighbor function is common to all engines: 4-connected (N, S,
//	W, E in the fixed grid.CardinalOffsets scan order), bounds-checked,
//	excluding Wall cells. Path reconstruction is common too: walk
//	parent links from goal back to start, then reverse.
//
// Removal policy and guarantees per engine:
//
//	DFS          stack (LIFO); dedup on push plus a defensive re-check
//	             on pop; never optimal. Neighbors are pushed in reverse
//	             scan order so the scan priority survives LIFO removal.
//	BFS          queue (FIFO); marked visited on enqueue so a cell is
//	             never queued twice; always optimal on unit edge cost.
//	A*           minimum f = g + h, ties broken by minimum h, then by
//	             insertion order; closed-set check on pop; decrease-key
//	             on the open set; optimal (Manhattan is admissible and
//	             consistent on a 4-connected unit-cost grid).
//	Weighted A*  as A* with f = g + 2·h; bounded suboptimality: the
//	             returned path is at most 2× the shortest.
//	IDA*         depth-first probes under an f-bound raised across
//	             iterations; cycle check against the current path only;
//	             optimal. Terminates with no path once the next bound
//	             saturates at the infinity sentinel.
//
// The open set for A*/Weighted A* is a binary heap ordered by
// (f, h, insertion sequence). The sequence component makes the ordering
// exactly the stable sort the tie-break rule requires, which is
// observable: it decides which of several equal-length paths is found.
//
// No path is not an error: every engine returns a well-formed Result
// with Found=false, an empty Path, and the full exploration trace.
//
// Complexity (V = walkable cells)
//
//   - DFS/BFS: O(V) time, O(V) memory
//   - A*/Weighted A*: O(V log V) time, O(V) memory
//   - IDA*: worst case re-expands nodes each iteration; O(V) memory on
//     the probe path
//
// Errors
//
//   - ErrNilGrid              nil grid pointer
//   - ErrUnknownAlgorithm     algorithm value outside the enum
//   - ErrOptionViolation      malformed functional option
//   - grid.ErrNoStart/NoGoal  invalid maze state, surfaced before a run
//   - context.Canceled        via WithContext
//   - wrapped hook errors from WithOnExpand
package search
