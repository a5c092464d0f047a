// Core cell types, positions, and sentinel errors shared by the maze
// generator, the search engines, and the comparison aggregator.

package grid

import "errors"

// Sentinel errors for grid construction and editing.
var (
	// ErrBadDimensions indicates rows or cols below MinDimension.
	ErrBadDimensions = errors.New("grid: rows and cols must each be at least 3")
	// ErrOutOfBounds indicates a position outside the matrix.
	ErrOutOfBounds = errors.New("grid: position out of bounds")
	// ErrProtectedCell indicates an attempt to toggle a wall on Start or Goal.
	ErrProtectedCell = errors.New("grid: cannot place a wall on start or goal")
	// ErrNoStart indicates Validate found no Start cell.
	ErrNoStart = errors.New("grid: no start cell present")
	// ErrNoGoal indicates Validate found no Goal cell.
	ErrNoGoal = errors.New("grid: no goal cell present")
	// ErrBadDiagram indicates Parse received an empty, ragged, or
	// otherwise malformed diagram.
	ErrBadDiagram = errors.New("grid: malformed grid diagram")
)

// MinDimension is the smallest accepted value for rows and cols.
// Below it there is no interior cell between the border walls.
const MinDimension = 3

// Position identifies one cell by row and column. The zero value is the
// top-left corner. Positions compare by value and are valid map keys.
type Position struct {
	Row, Col int
}

// Add returns the position shifted by the given row/col deltas.
func (p Position) Add(dr, dc int) Position {
	return Position{Row: p.Row + dr, Col: p.Col + dc}
}

// CellType enumerates what a single cell holds.
type CellType uint8

const (
	// Free is an open, walkable cell. Zero value.
	Free CellType = iota
	// Wall blocks movement.
	Wall
	// Start marks the unique search origin. Walkable.
	Start
	// Goal marks the unique search target. Walkable.
	Goal
)

// Walkable reports whether a search may occupy a cell of this type.
func (c CellType) Walkable() bool { return c != Wall }

// Rune returns the diagram rune for the cell type (see Parse).
func (c CellType) Rune() rune {
	switch c {
	case Wall:
		return '#'
	case Start:
		return 'S'
	case Goal:
		return 'G'
	default:
		return '.'
	}
}

// String implements fmt.Stringer for diagnostics.
func (c CellType) String() string {
	switch c {
	case Wall:
		return "Wall"
	case Start:
		return "Start"
	case Goal:
		return "Goal"
	default:
		return "Free"
	}
}

// CardinalOffsets lists the 4-connected neighbor deltas in the fixed
// scan order North, South, West, East (up, down, left, right). Every
// consumer iterates this slice so that exploration order is identical
// across engines and reproducible across runs.
var CardinalOffsets = [4][2]int{
	{-1, 0}, // North
	{1, 0},  // South
	{0, -1}, // West
	{0, 1},  // East
}

// Manhattan returns |a.Row-b.Row| + |a.Col-b.Col|: the exact walk
// distance on an unobstructed 4-connected unit-cost grid, hence an
// admissible and consistent heuristic for the heuristic engines.
func Manhattan(a, b Position) int {
	dr := a.Row - b.Row
	if dr < 0 {
		dr = -dr
	}
	dc := a.Col - b.Col
	if dc < 0 {
		dc = -dc
	}

	return dr + dc
}
