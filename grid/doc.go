// Package grid provides the 2-D cell model shared by every other package:
// a rectangular matrix of cell types (Wall, Free, Start, Goal) with
// invariant-preserving editing operations.
//
// What
//
//   - Position: an integer (Row, Col) pair with value equality.
//   - CellType: Wall, Free, Start or Goal.
//   - Grid: a fixed-size rectangular matrix of CellType, mutated only
//     through editing operations that keep it valid:
//   - ToggleWall flips Wall↔Free, refusing Start/Goal cells
//   - SetStart / SetGoal relocate the unique marker, clearing the
//     previous occurrence first
//   - Parse / String: a compact rune diagram ('#', '.', 'S', 'G') used by
//     tests, fixtures and examples.
//
// Invariants
//
//	A valid grid contains exactly one Start and exactly one Goal, and
//	neither ever coincides with a Wall. Validate reports violations as
//	sentinel errors before a search is started.
//
// Complexity (R = rows, C = cols)
//
//   - Construction, Clone, String, Parse: O(R×C)
//   - At, Set*, ToggleWall, InBounds: O(1) (Set* is O(R×C) on relocation
//     because it clears the previous marker by scan)
//
// Errors
//
//   - ErrBadDimensions      rows or cols below the minimum (3)
//   - ErrOutOfBounds        a position outside the matrix
//   - ErrProtectedCell      toggling a wall on Start or Goal
//   - ErrNoStart, ErrNoGoal missing marker detected by Validate
//   - ErrBadDiagram         Parse input is empty, ragged or has a bad rune
package grid
