package mazegen

import (
	"github.com/aneeshsunganahalli/PathVisualiser/grid"
)

// carveFrame is one suspended visit in the iterative backtracker: the
// room being expanded and its privately shuffled direction order, with
// next tracking how many directions were already tried.
type carveFrame struct {
	pos  grid.Position
	dirs [4]int
	next int
}

// carver encapsulates mutable generation state for a single run.
type carver struct {
	g          *grid.Grid
	rng        *lcg
	rows, cols int
	stack      []carveFrame
}

// Generate produces a rows×cols maze. Even dimensions are decremented to
// the next odd value so the room/wall lattice is well-formed. The result
// always carries Start at (1,1) and Goal at (rows-2, cols-2).
//
// Returns grid.ErrBadDimensions when a dimension (after the odd
// adjustment) is below grid.MinDimension, or ErrOptionViolation for a
// malformed option. Generation itself never fails.
//
// Complexity: O(R×C) time and memory.
func Generate(rows, cols int, opts ...Option) (*grid.Grid, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	rows, cols = forceOdd(rows), forceOdd(cols)
	g, err := grid.New(rows, cols)
	if err != nil {
		return nil, err
	}

	seed := o.Seed
	if !o.Seeded {
		seed = entropySeed()
	}

	c := &carver{
		g:    g,
		rng:  newLCG(seed),
		rows: rows,
		cols: cols,
	}
	c.fillWalls()
	c.carveFrom(grid.Position{Row: 1, Col: 1})
	c.openLoops(o.LoopRatio)

	// Endpoints are forced last, overwriting any carved state there.
	_ = g.Set(grid.Position{Row: 1, Col: 1}, grid.Start)
	_ = g.Set(grid.Position{Row: rows - 2, Col: cols - 2}, grid.Goal)

	return g, nil
}

// Empty returns a border-walled, otherwise free canvas with Start at
// (1,1) and Goal at (rows-2, cols-2) — the blank slate for hand editing.
// Even dimensions are decremented like in Generate.
func Empty(rows, cols int) (*grid.Grid, error) {
	rows, cols = forceOdd(rows), forceOdd(cols)
	g, err := grid.New(rows, cols)
	if err != nil {
		return nil, err
	}
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			if r == 0 || c == 0 || r == rows-1 || c == cols-1 {
				_ = g.Set(grid.Position{Row: r, Col: c}, grid.Wall)
			}
		}
	}
	_ = g.Set(grid.Position{Row: 1, Col: 1}, grid.Start)
	_ = g.Set(grid.Position{Row: rows - 2, Col: cols - 2}, grid.Goal)

	return g, nil
}

// forceOdd decrements an even dimension; odd values pass unchanged.
func forceOdd(n int) int {
	if n%2 == 0 {
		return n - 1
	}

	return n
}

// fillWalls initializes the whole matrix to Wall before carving.
func (c *carver) fillWalls() {
	for r := 0; r < c.rows; r++ {
		for col := 0; col < c.cols; col++ {
			_ = c.g.Set(grid.Position{Row: r, Col: col}, grid.Wall)
		}
	}
}

// carveFrom runs randomized recursive backtracking over the 2-step room
// lattice, implemented with an explicit frame stack. Each frame shuffles
// its direction order exactly once, when pushed, so both the carve order
// and the LCG consumption match the recursive formulation for any seed.
func (c *carver) carveFrom(start grid.Position) {
	visited := make(map[grid.Position]bool, (c.rows/2+1)*(c.cols/2+1))

	visited[start] = true
	_ = c.g.Set(start, grid.Free)
	c.push(start)

	for len(c.stack) > 0 {
		f := &c.stack[len(c.stack)-1]
		if f.next == len(f.dirs) {
			c.stack = c.stack[:len(c.stack)-1]

			continue
		}
		d := grid.CardinalOffsets[f.dirs[f.next]]
		f.next++

		room := f.pos.Add(2*d[0], 2*d[1])
		if room.Row < 1 || room.Row >= c.rows-1 || room.Col < 1 || room.Col >= c.cols-1 {
			continue
		}
		if visited[room] {
			// idempotent visited check: no room is ever re-carved
			continue
		}
		visited[room] = true

		// clear the intervening wall cell and the neighbor room
		_ = c.g.Set(f.pos.Add(d[0], d[1]), grid.Free)
		_ = c.g.Set(room, grid.Free)
		c.push(room)
	}
}

// push appends a frame for pos with a freshly shuffled direction order.
func (c *carver) push(pos grid.Position) {
	f := carveFrame{pos: pos, dirs: [4]int{0, 1, 2, 3}}
	c.rng.shuffle(f.dirs[:])
	c.stack = append(c.stack, f)
}

// openLoops converts ~ratio of the remaining interior walls into free
// cells so the perfect maze gains alternative routes. A wall qualifies
// only when exactly 2 or 3 of its 4 neighbors are already free, which
// also rules out creating a 2×2 open pocket. Attempts are bounded at
// loopAttemptFactor×target, so the pass terminates even when eligible
// walls run out.
func (c *carver) openLoops(ratio float64) {
	if ratio <= 0 {
		return
	}
	remaining := 0
	for r := 1; r < c.rows-1; r++ {
		for col := 1; col < c.cols-1; col++ {
			if c.g.At(grid.Position{Row: r, Col: col}) == grid.Wall {
				remaining++
			}
		}
	}
	target := int(float64(remaining) * ratio)
	if target == 0 {
		return
	}

	opened := 0
	for attempt := 0; attempt < target*loopAttemptFactor && opened < target; attempt++ {
		p := grid.Position{
			Row: 1 + c.rng.Intn(c.rows-2),
			Col: 1 + c.rng.Intn(c.cols-2),
		}
		if c.g.At(p) != grid.Wall {
			continue
		}
		free := 0
		for _, d := range grid.CardinalOffsets {
			if c.g.At(p.Add(d[0], d[1])) != grid.Wall {
				free++
			}
		}
		if free < 2 || free > 3 {
			continue
		}
		_ = c.g.Set(p, grid.Free)
		opened++
	}
}
