package search

import (
	"time"

	"github.com/aneeshsunganahalli/PathVisualiser/grid"
)

// Execute runs one engine over g from its Start to its Goal and returns
// the uniform Result record.
//
// Preconditions and validation (in order):
//  1. g must be non-nil (ErrNilGrid).
//  2. Options must be well-formed (ErrOptionViolation).
//  3. algo must name a real engine (ErrUnknownAlgorithm).
//  4. g must carry its unique markers (grid.ErrNoStart, grid.ErrNoGoal).
//
// A missing path is not an error: the Result comes back with
// Found=false, an empty Path, and the full exploration trace.
func Execute(g *grid.Grid, algo Algorithm, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrNilGrid
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if !algo.Valid() {
		return nil, ErrUnknownAlgorithm
	}
	if err := g.Validate(); err != nil {
		return nil, err
	}

	start, _ := g.Start()
	goal, _ := g.Goal()

	e := &engine{
		g:     g,
		opts:  o,
		start: start,
		goal:  goal,
		res: &Result{
			Algorithm:   algo,
			Optimal:     algo.Optimal(),
			StepsToGoal: -1,
		},
	}

	began := time.Now()
	var err error
	switch algo {
	case DFS:
		err = e.runDFS()
	case BFS:
		err = e.runBFS()
	case AStar:
		err = e.runAStar(1)
	case WeightedAStar:
		err = e.runAStar(weightedEpsilon)
	case IDAStar:
		err = e.runIDAStar()
	}
	if err != nil {
		return nil, err
	}
	e.res.TimeTaken = time.Since(began)
	e.res.NodesExpanded = len(e.res.Exploration)

	return e.res, nil
}

// RunAll executes each named engine over the same grid and returns the
// results in input order — the shape the compare package consumes.
// The first engine error aborts the batch.
func RunAll(g *grid.Grid, algos []Algorithm, opts ...Option) ([]*Result, error) {
	results := make([]*Result, 0, len(algos))
	for _, a := range algos {
		r, err := Execute(g, a, opts...)
		if err != nil {
			return nil, err
		}
		results = append(results, r)
	}

	return results, nil
}

// engine encapsulates the state shared by every engine run.
type engine struct {
	g     *grid.Grid
	opts  Options
	start grid.Position
	goal  grid.Position
	res   *Result
}

// cancelled performs the per-expansion cancellation check.
func (e *engine) cancelled() error {
	select {
	case <-e.opts.Ctx.Done():
		return e.opts.Ctx.Err()
	default:
		return nil
	}
}

// expand records p in the exploration order and fires the OnExpand hook.
func (e *engine) expand(p grid.Position) error {
	step := len(e.res.Exploration)
	e.res.Exploration = append(e.res.Exploration, p)
	if err := e.opts.OnExpand(p, step); err != nil {
		return err
	}

	return nil
}

// neighbors appends the walkable 4-connected neighbors of p to buf in
// the fixed scan order and returns the extended slice. Out-of-bounds
// cells read as Wall, so a single walkability check suffices.
func (e *engine) neighbors(p grid.Position, buf []grid.Position) []grid.Position {
	for _, d := range grid.CardinalOffsets {
		n := p.Add(d[0], d[1])
		if e.g.At(n).Walkable() {
			buf = append(buf, n)
		}
	}

	return buf
}

// finish fills the terminal fields of the result. When found, the path
// is rebuilt by walking parent links from the goal back to the start.
func (e *engine) finish(found bool, parent map[grid.Position]grid.Position) {
	e.res.Found = found
	if !found {
		return
	}
	e.res.Path = reconstruct(parent, e.start, e.goal)
	e.res.PathLength = len(e.res.Path) - 1
}

// reconstruct walks parent links from goal back to start, then reverses.
func reconstruct(parent map[grid.Position]grid.Position, start, goal grid.Position) []grid.Position {
	path := []grid.Position{goal}
	for cur := goal; cur != start; {
		prev, ok := parent[cur]
		if !ok {
			break
		}
		path = append(path, prev)
		cur = prev
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path
}
