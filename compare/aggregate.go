package compare

import (
	"fmt"
	"time"

	"github.com/aneeshsunganahalli/PathVisualiser/grid"
	"github.com/aneeshsunganahalli/PathVisualiser/search"
)

// Aggregation replays N precomputed exploration traces on one shared
// discrete clock. It is not safe for concurrent use; the replay driver
// is its single writer by construction.
type Aggregation struct {
	results  []*search.Result
	goal     grid.Position
	maxSteps int

	tick    int
	owners  map[grid.Position]OwnerSet
	arrival []int // per result, first tick whose position equals goal; -1 until then
}

// New builds an Aggregation over the given results and goal. Results
// must come from engines run over the same grid; their order is
// preserved everywhere (deltas, arrival reporting).
// Accepts a single result too: a single-run animation is simply the
// N=1 case of the same merge machinery.
func New(results []*search.Result, goal grid.Position) (*Aggregation, error) {
	if len(results) == 0 {
		return nil, ErrNoResults
	}
	maxSteps := 0
	for i, r := range results {
		if r == nil {
			return nil, fmt.Errorf("%w: index %d", ErrNilResult, i)
		}
		if len(r.Exploration) > maxSteps {
			maxSteps = len(r.Exploration)
		}
	}

	arrival := make([]int, len(results))
	for i := range arrival {
		arrival[i] = -1
	}

	return &Aggregation{
		results:  results,
		goal:     goal,
		maxSteps: maxSteps,
		owners:   make(map[grid.Position]OwnerSet, maxSteps),
		arrival:  arrival,
	}, nil
}

// MaxSteps returns the length of the longest exploration trace — the
// total number of ticks the replay will take.
func (a *Aggregation) MaxSteps() int { return a.maxSteps }

// Next advances the shared clock by one tick and returns the merged
// contributions. ok=false once all maxSteps ticks have been consumed.
//
// Within a tick, every result with an element at the tick index unions
// itself into that position's ownership set before the Tick is
// returned, so consumers never observe a partially merged tick.
func (a *Aggregation) Next() (Tick, bool) {
	if a.tick >= a.maxSteps {
		return Tick{}, false
	}
	t := Tick{Index: a.tick}
	touched := make(map[grid.Position]int, len(a.results)) // pos → delta slot

	for i, r := range a.results {
		if a.tick >= len(r.Exploration) {
			continue
		}
		p := r.Exploration[a.tick]
		a.owners[p] = a.owners[p].With(r.Algorithm)
		if p == a.goal && a.arrival[i] == -1 {
			// first write wins; later duplicate goal visits keep the original
			a.arrival[i] = a.tick
		}
		if slot, ok := touched[p]; ok {
			t.Deltas[slot].Owners = a.owners[p]

			continue
		}
		touched[p] = len(t.Deltas)
		t.Deltas = append(t.Deltas, Delta{Pos: p, Owners: a.owners[p]})
	}
	a.tick++

	return t, true
}

// Owners returns the current ownership set of p. The set only ever
// grows across ticks — ownership is never lost.
func (a *Aggregation) Owners(p grid.Position) OwnerSet {
	return a.owners[p]
}

// ArrivalStep returns the tick at which result i first touched the
// goal, or -1 when it has not (yet) arrived.
func (a *Aggregation) ArrivalStep(i int) int { return a.arrival[i] }

// Primary returns the result whose final path is overlaid after the
// replay: by convention the heuristic-optimal engine (A*, then IDA*),
// falling back to the first optimal result, then to the first result.
func (a *Aggregation) Primary() *search.Result {
	for _, want := range []search.Algorithm{search.AStar, search.IDAStar} {
		for _, r := range a.results {
			if r.Algorithm == want {
				return r
			}
		}
	}
	for _, r := range a.results {
		if r.Optimal {
			return r
		}
	}

	return a.results[0]
}

// PathOverlay returns the primary result's path with Start and Goal
// cells excluded, or nil when no result ever reached the goal — in
// that case the overlay step is skipped entirely.
func (a *Aggregation) PathOverlay() []grid.Position {
	arrived := false
	for _, step := range a.arrival {
		if step >= 0 {
			arrived = true

			break
		}
	}
	if !arrived {
		return nil
	}
	primary := a.Primary()
	if !primary.Found || len(primary.Path) < 2 {
		return nil
	}

	// exclude the Start and Goal endpoints
	overlay := make([]grid.Position, len(primary.Path)-2)
	copy(overlay, primary.Path[1:len(primary.Path)-1])

	return overlay
}

// Finish finalizes the replay after the last tick: each arrived
// result's displayed duration becomes (arrivalStep / maxSteps) ×
// elapsed — a derived relative figure, not the raw computation time —
// and StepsToGoal is filled in. Returns the path overlay (nil when
// nobody arrived). Implements the replay.Source contract.
func (a *Aggregation) Finish(elapsed time.Duration) []grid.Position {
	for i, r := range a.results {
		r.StepsToGoal = a.arrival[i]
		if a.arrival[i] < 0 || a.maxSteps == 0 {
			continue
		}
		r.TimeTaken = time.Duration(float64(a.arrival[i]) / float64(a.maxSteps) * float64(elapsed))
	}

	return a.PathOverlay()
}

// CellState derives the ephemeral visual classification of one cell:
// Start/Goal cell types always take precedence over ownership, and the
// overlay flag is supplied by the renderer once Finish has produced it.
func (a *Aggregation) CellState(ct grid.CellType, p grid.Position, onPath bool) CellState {
	if ct == grid.Start || ct == grid.Goal {
		return CellState{Type: ct}
	}

	return CellState{Type: ct, Owners: a.owners[p], OnPath: onPath}
}
