package grid_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aneeshsunganahalli/PathVisualiser/grid"
)

//----------------------------------------------------------------------------//
// Construction and bounds
//----------------------------------------------------------------------------//

// TestNew_BadDimensions verifies New rejects dimensions below the minimum.
func TestNew_BadDimensions(t *testing.T) {
	cases := []struct {
		name       string
		rows, cols int
	}{
		{"ZeroRows", 0, 5},
		{"ZeroCols", 5, 0},
		{"TooSmallRows", 2, 5},
		{"TooSmallCols", 5, 2},
		{"Negative", -1, -1},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := grid.New(tc.rows, tc.cols)
			assert.ErrorIs(t, err, grid.ErrBadDimensions)
		})
	}
}

// TestNew_AllFree verifies a fresh grid is entirely Free.
func TestNew_AllFree(t *testing.T) {
	g, err := grid.New(3, 4)
	require.NoError(t, err)
	for r := 0; r < g.Rows(); r++ {
		for c := 0; c < g.Cols(); c++ {
			assert.Equal(t, grid.Free, g.At(grid.Position{Row: r, Col: c}))
		}
	}
}

// TestInBounds_And_AtOutOfBoundsIsWall checks the out-of-bounds read policy.
func TestInBounds_And_AtOutOfBoundsIsWall(t *testing.T) {
	g, err := grid.New(3, 3)
	require.NoError(t, err)

	assert.True(t, g.InBounds(grid.Position{Row: 0, Col: 0}))
	assert.True(t, g.InBounds(grid.Position{Row: 2, Col: 2}))
	assert.False(t, g.InBounds(grid.Position{Row: -1, Col: 0}))
	assert.False(t, g.InBounds(grid.Position{Row: 3, Col: 0}))

	// Out-of-bounds cells read as Wall so callers need no separate bound check.
	assert.Equal(t, grid.Wall, g.At(grid.Position{Row: -1, Col: 0}))
	assert.Equal(t, grid.Wall, g.At(grid.Position{Row: 0, Col: 99}))
}

//----------------------------------------------------------------------------//
// Editing operations and invariants
//----------------------------------------------------------------------------//

// TestToggleWall flips Wall↔Free and refuses Start/Goal cells.
func TestToggleWall(t *testing.T) {
	g, err := grid.Parse("S.#\n...\n#.G")
	require.NoError(t, err)

	p := grid.Position{Row: 1, Col: 1}
	require.NoError(t, g.ToggleWall(p))
	assert.Equal(t, grid.Wall, g.At(p))
	require.NoError(t, g.ToggleWall(p))
	assert.Equal(t, grid.Free, g.At(p))

	assert.ErrorIs(t, g.ToggleWall(grid.Position{Row: 0, Col: 0}), grid.ErrProtectedCell)
	assert.ErrorIs(t, g.ToggleWall(grid.Position{Row: 2, Col: 2}), grid.ErrProtectedCell)
	assert.ErrorIs(t, g.ToggleWall(grid.Position{Row: 9, Col: 9}), grid.ErrOutOfBounds)
}

// TestSetStart_ClearsPrevious verifies relocation keeps exactly one Start.
func TestSetStart_ClearsPrevious(t *testing.T) {
	g, err := grid.Parse("S..\n...\n..G")
	require.NoError(t, err)

	target := grid.Position{Row: 1, Col: 1}
	require.NoError(t, g.SetStart(target))

	got, ok := g.Start()
	require.True(t, ok)
	assert.Equal(t, target, got)
	// old location must revert to Free
	assert.Equal(t, grid.Free, g.At(grid.Position{Row: 0, Col: 0}))
	// still exactly one start: scanning the diagram counts one 'S'
	assert.Equal(t, 1, countRune(g.String(), 'S'))
}

// TestSetGoal_OverwritesWall verifies Goal may displace a wall but not Start.
func TestSetGoal_OverwritesWall(t *testing.T) {
	g, err := grid.Parse("S.#\n...\n..G")
	require.NoError(t, err)

	wallPos := grid.Position{Row: 0, Col: 2}
	require.NoError(t, g.SetGoal(wallPos))
	assert.Equal(t, grid.Goal, g.At(wallPos))

	startPos := grid.Position{Row: 0, Col: 0}
	assert.ErrorIs(t, g.SetGoal(startPos), grid.ErrProtectedCell)
	assert.ErrorIs(t, g.SetStart(wallPos), grid.ErrProtectedCell)
}

// TestValidate reports missing markers as sentinel errors.
func TestValidate(t *testing.T) {
	g, err := grid.Parse("...\n.S.\n...")
	require.NoError(t, err)
	assert.ErrorIs(t, g.Validate(), grid.ErrNoGoal)

	g2, err := grid.Parse("...\n.G.\n...")
	require.NoError(t, err)
	assert.ErrorIs(t, g2.Validate(), grid.ErrNoStart)

	g3, err := grid.Parse("S..\n...\n..G")
	require.NoError(t, err)
	assert.NoError(t, g3.Validate())
}

//----------------------------------------------------------------------------//
// Clone, Equal, String/Parse round trip
//----------------------------------------------------------------------------//

// TestClone_Independent verifies a clone shares no storage.
func TestClone_Independent(t *testing.T) {
	g, err := grid.Parse("S.#\n...\n#.G")
	require.NoError(t, err)

	cl := g.Clone()
	require.True(t, g.Equal(cl))

	require.NoError(t, cl.ToggleWall(grid.Position{Row: 1, Col: 0}))
	assert.False(t, g.Equal(cl))
	assert.Equal(t, grid.Free, g.At(grid.Position{Row: 1, Col: 0}))
}

// TestParse_Errors rejects empty, ragged, and unknown-rune diagrams.
func TestParse_Errors(t *testing.T) {
	cases := []struct {
		name    string
		diagram string
		err     error
	}{
		{"Empty", "", grid.ErrBadDiagram},
		{"BlankLines", "\n  \n", grid.ErrBadDiagram},
		{"Ragged", "S..\n..\n..G", grid.ErrBadDiagram},
		{"UnknownRune", "S..\n.x.\n..G", grid.ErrBadDiagram},
		{"TooSmall", "S.\n.G", grid.ErrBadDimensions},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := grid.Parse(tc.diagram)
			assert.ErrorIs(t, err, tc.err)
		})
	}
}

// TestStringParse_RoundTrip verifies String and Parse are inverses.
func TestStringParse_RoundTrip(t *testing.T) {
	const diagram = "#####\n#S..#\n#.#.#\n#..G#\n#####"
	g, err := grid.Parse(diagram)
	require.NoError(t, err)
	assert.Equal(t, diagram, g.String())

	back, err := grid.Parse(g.String())
	require.NoError(t, err)
	assert.True(t, g.Equal(back))
}

//----------------------------------------------------------------------------//
// Geometry helpers
//----------------------------------------------------------------------------//

// TestManhattan checks the heuristic on hand-computed pairs.
func TestManhattan(t *testing.T) {
	cases := []struct {
		a, b grid.Position
		want int
	}{
		{grid.Position{Row: 0, Col: 0}, grid.Position{Row: 0, Col: 0}, 0},
		{grid.Position{Row: 1, Col: 1}, grid.Position{Row: 3, Col: 3}, 4},
		{grid.Position{Row: 5, Col: 2}, grid.Position{Row: 1, Col: 7}, 9},
		{grid.Position{Row: 2, Col: 9}, grid.Position{Row: 2, Col: 1}, 8},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, grid.Manhattan(tc.a, tc.b))
		assert.Equal(t, tc.want, grid.Manhattan(tc.b, tc.a), "Manhattan must be symmetric")
	}
}

// TestCardinalOffsets pins the shared scan order: N, S, W, E.
func TestCardinalOffsets(t *testing.T) {
	want := [4][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}
	assert.Equal(t, want, grid.CardinalOffsets)
}

// countRune counts occurrences of r in s.
func countRune(s string, r rune) int {
	n := 0
	for _, c := range s {
		if c == r {
			n++
		}
	}

	return n
}
