package search

import (
	"math"

	"github.com/aneeshsunganahalli/PathVisualiser/grid"
)

// infCost is the saturating "no next bound" sentinel: a probe that
// returns it exhausted the whole reachable space without overflowing
// any finite f, so no path exists.
const infCost = math.MaxInt

// idaProbe carries the mutable state of one IDA* run: the current
// depth-first path (for the ancestor-only cycle check) and the
// first-visit set that keeps the recorded exploration duplicate-free
// across outer iterations.
type idaProbe struct {
	e      *engine
	bound  int
	path   []grid.Position
	onPath map[grid.Position]bool
	seen   map[grid.Position]bool

	// goalPath snapshots p.path the moment the goal is reached, before
	// the unwinding probes pop their entries.
	goalPath []grid.Position
}

// runIDAStar is iterative-deepening A*: depth-first probes under an
// f-bound, with the bound raised across outer iterations to the
// smallest f that overflowed the previous one.
//
// Unlike the other engines there is no global visited set — revisits
// are prevented only against ancestors on the current probe path, which
// is what keeps memory at O(path). The exploration trace still records
// each position once, on its first visit in any iteration.
func (e *engine) runIDAStar() error {
	p := &idaProbe{
		e:      e,
		bound:  grid.Manhattan(e.start, e.goal),
		onPath: make(map[grid.Position]bool),
		seen:   make(map[grid.Position]bool),
	}

	for {
		found, next, err := p.probe(e.start, 0)
		if err != nil {
			return err
		}
		if found {
			e.res.Found = true
			e.res.Path = p.goalPath
			e.res.PathLength = len(e.res.Path) - 1

			return nil
		}
		if next == infCost {
			e.res.Found = false

			return nil
		}
		// raise the bound to the minimum overflow and probe again
		p.bound = next
	}
}

// probe explores pos at cost-so-far g. It returns found=true after
// snapshotting the start→goal path, or the minimum f value that
// exceeded the bound (infCost when nothing overflowed).
func (p *idaProbe) probe(pos grid.Position, g int) (bool, int, error) {
	if err := p.e.cancelled(); err != nil {
		return false, 0, err
	}

	f := g + grid.Manhattan(pos, p.e.goal)
	if f > p.bound {
		return false, f, nil
	}

	if !p.seen[pos] {
		p.seen[pos] = true
		if err := p.e.expand(pos); err != nil {
			return false, 0, err
		}
	}

	p.path = append(p.path, pos)
	p.onPath[pos] = true
	defer func() {
		p.path = p.path[:len(p.path)-1]
		delete(p.onPath, pos)
	}()

	if pos == p.e.goal {
		p.goalPath = append([]grid.Position(nil), p.path...)

		return true, 0, nil
	}

	minOverflow := infCost
	var buf [4]grid.Position
	for _, n := range p.e.neighbors(pos, buf[:0]) {
		if p.onPath[n] {
			// cycle check against ancestors only
			continue
		}
		found, next, err := p.probe(n, g+1)
		if err != nil {
			return false, 0, err
		}
		if found {
			return true, 0, nil
		}
		if next < minOverflow {
			minOverflow = next
		}
	}

	return false, minOverflow, nil
}
