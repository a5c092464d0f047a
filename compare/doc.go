// Package compare merges the independently computed exploration traces
// of one or more search engines onto a single shared tick clock, so
// that differently paced algorithms become visually comparable.
//
// What
//
//   - New(results, goal): build an Aggregation over N results; every
//     engine must have run over the same grid and goal.
//   - Aggregation.Next(): advance the shared virtual clock by one tick.
//     At tick t, every result whose exploration order has an element at
//     index t unions its identity into that position's ownership set.
//     Ownership is a monotonic union: once an algorithm owns a
//     position it owns it for every later tick.
//   - Arrival steps: the first tick at which a result's owned position
//     equals the goal is recorded once per result (first write wins).
//   - Finish(elapsed): after the last tick, normalize each result's
//     displayed duration to (arrivalStep / maxSteps) × elapsed and
//     return the primary path overlay.
//
// Ownership and blending
//
//	Ownership is a fixed-size bit-set (OwnerSet) over the closed
//	search.Algorithm enumeration, so a position's combined visual
//	state is a direct table lookup: a single owner maps to that
//	owner's color, any pair to a two-stop blend, three or more to a
//	multi-stop blend, always in enum order. Start and Goal cell types
//	take precedence over any ownership-derived state.
//
// Single runs reuse the same machinery with N=1: one consistent merge
// and recolor policy for both the single-run and the comparison path,
// rather than two near-duplicate implementations.
//
// Failure mode: when no result ever reaches the goal, no arrival step
// is recorded for anyone and the overlay step is skipped entirely
// (Finish returns an empty overlay).
//
// Complexity (N = results, T = longest trace)
//
//   - Time:   O(N) per tick, O(N×T) for a full replay
//   - Memory: O(P) ownership entries, P = distinct explored positions
//
// Errors
//
//   - ErrNoResults  New was given an empty result slice
//   - ErrNilResult  New was given a nil result pointer
package compare
