// Package replay paces a precomputed aggregation for a renderer: one
// merged tick per fixed interval, with an explicitly owned, cancellable
// driver and a single-writer running gate.
//
// What
//
//   - Driver: owns at most one in-flight replay. Start first fully
//     stops any previous replay before the new one touches shared
//     visualization state, so two replay loops can never write
//     concurrently.
//   - Frames: every interval the driver pulls one Tick from its Source
//     and emits it; after the final tick it calls Source.Finish with
//     the total replay wall clock and emits one terminal frame carrying
//     the path overlay.
//   - Interval(speed): the user speed in [1,100] maps inversely to the
//     tick interval (higher speed → shorter interval), clamped to a
//     minimum of one millisecond.
//
// Concurrency model
//
//	All searching is done before the replay starts — the only
//	suspension points are the driver's interval ticks. Within a tick,
//	the Source merges every algorithm's contribution before the frame
//	is emitted, so a consumer never sees a partially merged tick.
//	While a replay is running, mutating operations (maze edits, new
//	runs) are rejected through the Gate — a single boolean gate is the
//	entire locking story, because there is exactly one writer by
//	construction.
//
// Errors
//
//   - ErrBadSpeed   speed outside [1,100]
//   - ErrRunActive  a gated operation was attempted mid-replay
package replay
