// Package mazegen produces deterministic, seedable mazes for the search
// engines to explore, plus a blank border-walled canvas for hand editing.
//
// What
//
//   - Generate(rows, cols, opts...): a randomized recursive-backtracking
//     maze over a 2-step room lattice, then a bounded loop-opening pass
//     that converts a fraction of the remaining walls into shortcuts so
//     that different algorithms have genuinely different paths to find.
//   - Empty(rows, cols): border-only walls, Start at (1,1), Goal at
//     (rows-2, cols-2), interior fully free.
//
// Determinism
//
//	All randomness flows through one linear-congruential generator.
//	A fixed seed (WithSeed) reproduces the exact same grid, byte for
//	byte, across runs and platforms — this is a contract, not a
//	convenience. Without WithSeed a high-entropy seed is drawn once per
//	call, so unseeded mazes differ between calls.
//
// Shape rules
//
//   - Dimensions are forced odd (even values are decremented) so the
//     wall/passage lattice is well-formed: rooms sit on odd coordinates,
//     walls between them on even ones, borders always walls.
//   - Carving is a spanning tree over rooms — a perfect maze with
//     exactly one simple path between any two rooms (verifiable with
//     WithLoopRatio(0)).
//   - Loop opening targets ~8% of the walls left after carving. A wall
//     qualifies only when exactly 2 or 3 of its 4 neighbors are already
//     free, so no 2×2 open pocket is ever created. Attempts are capped
//     at 5× the target, so the pass terminates even when eligible walls
//     run out.
//
// The carving loop uses an explicit frame stack rather than recursion;
// the carve order (and therefore the generator output) is identical to
// the recursive formulation for any seed.
//
// Complexity (R = rows, C = cols)
//
//   - Time:   O(R×C) carving + O(R×C) loop-opening attempts
//   - Memory: O(R×C) for the visited lattice and the frame stack
//
// Errors
//
//   - ErrOptionViolation for a malformed option (negative loop ratio, …)
//   - grid.ErrBadDimensions for rows or cols below grid.MinDimension
//
// Generation itself is total: any accepted dimensions yield a grid,
// degrading gracefully for tiny lattices.
package mazegen
