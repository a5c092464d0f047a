// Algorithm enumeration, uniform Result record, tunable options, and
// sentinel errors shared by all engines.

package search

import (
	"context"
	"errors"
	"time"

	"github.com/aneeshsunganahalli/PathVisualiser/grid"
)

// Sentinel errors for engine execution.
var (
	// ErrNilGrid is returned if a nil grid pointer is passed.
	ErrNilGrid = errors.New("search: grid is nil")

	// ErrUnknownAlgorithm is returned for an Algorithm value outside the enum.
	ErrUnknownAlgorithm = errors.New("search: unknown algorithm")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("search: invalid option supplied")
)

// weightedEpsilon is the fixed inflation factor for Weighted A*:
// f = g + weightedEpsilon·h. The returned path is at most
// weightedEpsilon times the optimal length.
const weightedEpsilon = 2

// Algorithm identifies one of the five engines. The enumeration is
// small and closed; the compare package indexes bit-sets by it.
type Algorithm int

const (
	// DFS is depth-first search: stack removal, never optimal.
	DFS Algorithm = iota
	// BFS is breadth-first search: queue removal, optimal on unit cost.
	BFS
	// AStar is A* with the Manhattan heuristic: optimal.
	AStar
	// WeightedAStar is A* with f = g + 2·h: at most 2× optimal.
	WeightedAStar
	// IDAStar is iterative-deepening A*: optimal, memory-light.
	IDAStar

	// NumAlgorithms is the enum cardinality, for bit-set sizing.
	NumAlgorithms = int(IDAStar) + 1
)

// String returns the conventional display name.
func (a Algorithm) String() string {
	switch a {
	case DFS:
		return "DFS"
	case BFS:
		return "BFS"
	case AStar:
		return "A*"
	case WeightedAStar:
		return "Weighted A*"
	case IDAStar:
		return "IDA*"
	default:
		return "unknown"
	}
}

// Valid reports whether a names a real engine.
func (a Algorithm) Valid() bool { return a >= DFS && a <= IDAStar }

// Optimal reports the algorithm-inherent shortest-path guarantee. It is
// a static property of the engine, independent of any particular grid
// or of whether a path was found.
func (a Algorithm) Optimal() bool {
	switch a {
	case BFS, AStar, IDAStar:
		return true
	default:
		return false
	}
}

// Result is the uniform record every engine returns. It is created
// atomically by one Execute call and immutable thereafter, except that
// the compare package overwrites TimeTaken with a normalized display
// figure and fills StepsToGoal during a comparison replay.
type Result struct {
	// Algorithm identifies the engine that produced this result.
	Algorithm Algorithm

	// Found reports whether a path from Start to Goal exists.
	Found bool

	// Path is the cell sequence from Start to Goal inclusive.
	// Empty when Found is false.
	Path []grid.Position

	// Exploration is the visitation order: every position expanded,
	// in expansion sequence, with no duplicates.
	Exploration []grid.Position

	// NodesExpanded counts positions actually expanded from the open
	// collection. Always equal to len(Exploration).
	NodesExpanded int

	// PathLength is len(Path)-1 (edges walked), or 0 when not found.
	PathLength int

	// TimeTaken is the engine's raw computation time, until the
	// compare package replaces it with a replay-normalized figure.
	TimeTaken time.Duration

	// Optimal mirrors Algorithm.Optimal for display convenience.
	Optimal bool

	// StepsToGoal is the replay tick at which the engine's trace first
	// touched the goal. Written once by the compare package; -1 before
	// aggregation or when the goal was never reached.
	StepsToGoal int
}

// Option configures engine execution via functional arguments.
type Option func(*Options)

// Options holds parameters and callbacks shared by all engines.
type Options struct {
	// Ctx allows cancellation and deadlines; checked once per expansion.
	Ctx context.Context

	// OnExpand is called when a position is expanded (appended to the
	// exploration order), with its 0-based expansion index. Returning
	// an error aborts the engine and propagates.
	OnExpand func(p grid.Position, step int) error

	// OnEnqueue is called when a position enters the open collection.
	OnEnqueue func(p grid.Position)

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with a background context and no-op hooks.
func DefaultOptions() Options {
	return Options{
		Ctx:       context.Background(),
		OnExpand:  func(grid.Position, int) error { return nil },
		OnEnqueue: func(grid.Position) {},
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnExpand registers a callback run at every expansion; returning
// an error from it aborts the engine.
func WithOnExpand(fn func(p grid.Position, step int) error) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnExpand = fn
		}
	}
}

// WithOnEnqueue registers a callback run when a position enters the
// open collection.
func WithOnEnqueue(fn func(p grid.Position)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnEnqueue = fn
		}
	}
}
