// Tunable options and sentinel errors for maze generation.

package mazegen

import (
	"errors"
	"fmt"
)

// ErrOptionViolation is returned when an invalid Option is supplied.
var ErrOptionViolation = errors.New("mazegen: invalid option supplied")

// defaultLoopRatio is the fraction of post-carving walls the
// loop-opening pass tries to convert into shortcuts.
const defaultLoopRatio = 0.08

// loopAttemptFactor bounds loop-opening attempts at factor×target so the
// pass terminates even when eligible walls run out.
const loopAttemptFactor = 5

// Option configures maze generation via functional arguments.
// An invalid Option is recorded internally and surfaced as
// ErrOptionViolation when Generate is invoked.
type Option func(*Options)

// Options holds parameters for one Generate invocation.
type Options struct {
	// Seed feeds the generator's LCG stream. Seeded set to true means a
	// caller-provided seed; otherwise a high-entropy default is drawn.
	Seed   int64
	Seeded bool

	// LoopRatio is the fraction (0..1) of post-carving walls the
	// loop-opening pass targets. Zero disables the pass and leaves a
	// perfect maze.
	LoopRatio float64

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with an unseeded stream and the
// standard ~8% loop-opening ratio.
func DefaultOptions() Options {
	return Options{LoopRatio: defaultLoopRatio}
}

// WithSeed fixes the LCG seed, making the output reproducible:
// identical (rows, cols, seed) always yields an identical grid.
func WithSeed(seed int64) Option {
	return func(o *Options) {
		o.Seed = seed
		o.Seeded = true
	}
}

// WithLoopRatio overrides the loop-opening target fraction.
//
//	ratio == 0:      disable loop opening (perfect maze)
//	0 < ratio ≤ 1:   open ~ratio of the remaining walls
//	otherwise:       invalid option → ErrOptionViolation
func WithLoopRatio(ratio float64) Option {
	return func(o *Options) {
		if ratio < 0 || ratio > 1 {
			o.err = fmt.Errorf("%w: LoopRatio must be in [0,1], got %v", ErrOptionViolation, ratio)

			return
		}
		o.LoopRatio = ratio
	}
}
