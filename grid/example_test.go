// File: grid/example_test.go
package grid_test

import (
	"fmt"

	"github.com/aneeshsunganahalli/PathVisualiser/grid"
)

////////////////////////////////////////////////////////////////////////////////
// Example: Parse and edit a grid
////////////////////////////////////////////////////////////////////////////////

// ExampleParse demonstrates building a grid from a rune diagram and
// editing it while the one-Start/one-Goal invariant is preserved.
func ExampleParse() {
	g, _ := grid.Parse(`
		#####
		#S..#
		#.#.#
		#..G#
		#####
	`)

	// Move the goal one cell left; the previous goal cell reverts to Free.
	_ = g.SetGoal(grid.Position{Row: 3, Col: 2})

	fmt.Println(g)
	// Output:
	// #####
	// #S..#
	// #.#.#
	// #.G.#
	// #####
}
