package grid

import (
	"fmt"
	"strings"
)

// Grid is a fixed-size rectangular matrix of CellType. The zero value
// is unusable; construct with New or Parse. Grid is not safe for
// concurrent mutation — the caller guarantees a single writer (the
// replay driver's running gate enforces this for the front end).
type Grid struct {
	rows, cols int
	cells      [][]CellType
}

// New constructs a rows×cols grid with every cell Free.
// Returns ErrBadDimensions when either dimension is below MinDimension.
// Complexity: O(R×C).
func New(rows, cols int) (*Grid, error) {
	if rows < MinDimension || cols < MinDimension {
		return nil, fmt.Errorf("%w: got %d×%d", ErrBadDimensions, rows, cols)
	}
	cells := make([][]CellType, rows)
	for r := 0; r < rows; r++ {
		cells[r] = make([]CellType, cols)
	}

	return &Grid{rows: rows, cols: cols, cells: cells}, nil
}

// Rows returns the number of rows.
func (g *Grid) Rows() int { return g.rows }

// Cols returns the number of columns.
func (g *Grid) Cols() int { return g.cols }

// InBounds reports whether p lies within the matrix.
func (g *Grid) InBounds(p Position) bool {
	return p.Row >= 0 && p.Row < g.rows && p.Col >= 0 && p.Col < g.cols
}

// At returns the cell type at p. Out-of-bounds positions read as Wall,
// so bounds and walkability collapse into a single check for callers.
func (g *Grid) At(p Position) CellType {
	if !g.InBounds(p) {
		return Wall
	}

	return g.cells[p.Row][p.Col]
}

// Set writes the cell type at p without invariant checks. It is the
// low-level primitive used by the maze generator, which establishes the
// Start/Goal invariant itself at the end of generation. Front-end
// editing must go through ToggleWall / SetStart / SetGoal instead.
// Returns ErrOutOfBounds for positions outside the matrix.
func (g *Grid) Set(p Position, c CellType) error {
	if !g.InBounds(p) {
		return fmt.Errorf("%w: (%d,%d)", ErrOutOfBounds, p.Row, p.Col)
	}
	g.cells[p.Row][p.Col] = c

	return nil
}

// ToggleWall flips Wall↔Free at p.
// Returns ErrProtectedCell when p holds Start or Goal, so the unique
// markers can never be buried under a wall.
func (g *Grid) ToggleWall(p Position) error {
	if !g.InBounds(p) {
		return fmt.Errorf("%w: (%d,%d)", ErrOutOfBounds, p.Row, p.Col)
	}
	switch g.cells[p.Row][p.Col] {
	case Start, Goal:
		return fmt.Errorf("%w: (%d,%d)", ErrProtectedCell, p.Row, p.Col)
	case Wall:
		g.cells[p.Row][p.Col] = Free
	default:
		g.cells[p.Row][p.Col] = Wall
	}

	return nil
}

// SetStart relocates the unique Start marker to p, clearing any
// previous Start first so the one-Start invariant holds afterwards.
// The target cell is overwritten even if it was a Wall; placing Start
// on the current Goal is rejected as ErrProtectedCell.
func (g *Grid) SetStart(p Position) error { return g.relocate(p, Start, Goal) }

// SetGoal relocates the unique Goal marker to p, mirroring SetStart.
func (g *Grid) SetGoal(p Position) error { return g.relocate(p, Goal, Start) }

// relocate clears every previous occurrence of marker, then writes it
// at p. other is the opposite marker, which must not be displaced.
func (g *Grid) relocate(p Position, marker, other CellType) error {
	if !g.InBounds(p) {
		return fmt.Errorf("%w: (%d,%d)", ErrOutOfBounds, p.Row, p.Col)
	}
	if g.cells[p.Row][p.Col] == other {
		return fmt.Errorf("%w: (%d,%d) holds %s", ErrProtectedCell, p.Row, p.Col, other)
	}
	for r := 0; r < g.rows; r++ {
		for c := 0; c < g.cols; c++ {
			if g.cells[r][c] == marker {
				g.cells[r][c] = Free
			}
		}
	}
	g.cells[p.Row][p.Col] = marker

	return nil
}

// Find returns the position of the first cell holding c in row-major
// order, with ok=false when no such cell exists.
func (g *Grid) Find(c CellType) (Position, bool) {
	for r := 0; r < g.rows; r++ {
		for col := 0; col < g.cols; col++ {
			if g.cells[r][col] == c {
				return Position{Row: r, Col: col}, true
			}
		}
	}

	return Position{}, false
}

// Start returns the Start position, ok=false if absent.
func (g *Grid) Start() (Position, bool) { return g.Find(Start) }

// Goal returns the Goal position, ok=false if absent.
func (g *Grid) Goal() (Position, bool) { return g.Find(Goal) }

// Validate checks the one-Start/one-Goal invariant, returning ErrNoStart
// or ErrNoGoal. Multiplicity cannot be violated through the editing API,
// so only absence is checked.
func (g *Grid) Validate() error {
	if _, ok := g.Start(); !ok {
		return ErrNoStart
	}
	if _, ok := g.Goal(); !ok {
		return ErrNoGoal
	}

	return nil
}

// Clone returns a deep copy sharing no storage with the receiver.
// Complexity: O(R×C).
func (g *Grid) Clone() *Grid {
	cells := make([][]CellType, g.rows)
	for r := 0; r < g.rows; r++ {
		cells[r] = make([]CellType, g.cols)
		copy(cells[r], g.cells[r])
	}

	return &Grid{rows: g.rows, cols: g.cols, cells: cells}
}

// Equal reports whether two grids have identical dimensions and cells.
func (g *Grid) Equal(o *Grid) bool {
	if o == nil || g.rows != o.rows || g.cols != o.cols {
		return false
	}
	for r := 0; r < g.rows; r++ {
		for c := 0; c < g.cols; c++ {
			if g.cells[r][c] != o.cells[r][c] {
				return false
			}
		}
	}

	return true
}

// String renders the grid as a rune diagram, one row per line:
// '#'=Wall, '.'=Free, 'S'=Start, 'G'=Goal. Inverse of Parse.
func (g *Grid) String() string {
	var b strings.Builder
	b.Grow(g.rows * (g.cols + 1))
	for r := 0; r < g.rows; r++ {
		for c := 0; c < g.cols; c++ {
			b.WriteRune(g.cells[r][c].Rune())
		}
		if r < g.rows-1 {
			b.WriteByte('\n')
		}
	}

	return b.String()
}

// Parse builds a Grid from a rune diagram as produced by String.
// Leading/trailing blank lines are ignored; every remaining line must
// have equal length. Returns ErrBadDiagram on empty input, ragged rows,
// or an unknown rune, and ErrBadDimensions when the diagram is smaller
// than MinDimension in either direction.
func Parse(diagram string) (*Grid, error) {
	lines := make([]string, 0, 16)
	for _, ln := range strings.Split(diagram, "\n") {
		if strings.TrimSpace(ln) == "" {
			continue
		}
		lines = append(lines, strings.TrimSpace(ln))
	}
	if len(lines) == 0 {
		return nil, fmt.Errorf("%w: empty diagram", ErrBadDiagram)
	}

	g, err := New(len(lines), len([]rune(lines[0])))
	if err != nil {
		return nil, err
	}
	for r, ln := range lines {
		runes := []rune(ln)
		if len(runes) != g.cols {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrBadDiagram, r, len(runes), g.cols)
		}
		for c, ch := range runes {
			switch ch {
			case '#':
				g.cells[r][c] = Wall
			case '.':
				g.cells[r][c] = Free
			case 'S':
				g.cells[r][c] = Start
			case 'G':
				g.cells[r][c] = Goal
			default:
				return nil, fmt.Errorf("%w: unknown rune %q at (%d,%d)", ErrBadDiagram, ch, r, c)
			}
		}
	}

	return g, nil
}
