package search_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aneeshsunganahalli/PathVisualiser/grid"
	"github.com/aneeshsunganahalli/PathVisualiser/mazegen"
	"github.com/aneeshsunganahalli/PathVisualiser/search"
)

// allAlgorithms lists every engine once, in enum order.
var allAlgorithms = []search.Algorithm{
	search.DFS, search.BFS, search.AStar, search.WeightedAStar, search.IDAStar,
}

//----------------------------------------------------------------------------//
// Validation
//----------------------------------------------------------------------------//

// TestExecute_Validation checks the precondition order and sentinels.
func TestExecute_Validation(t *testing.T) {
	_, err := search.Execute(nil, search.BFS)
	assert.ErrorIs(t, err, search.ErrNilGrid)

	g, err := grid.Parse("S..\n...\n..G")
	require.NoError(t, err)
	_, err = search.Execute(g, search.Algorithm(99))
	assert.ErrorIs(t, err, search.ErrUnknownAlgorithm)

	noGoal, err := grid.Parse("S..\n...\n...")
	require.NoError(t, err)
	_, err = search.Execute(noGoal, search.BFS)
	assert.ErrorIs(t, err, grid.ErrNoGoal)

	noStart, err := grid.Parse("...\n...\n..G")
	require.NoError(t, err)
	_, err = search.Execute(noStart, search.BFS)
	assert.ErrorIs(t, err, grid.ErrNoStart)
}

// TestExecute_Cancellation propagates a cancelled context.
func TestExecute_Cancellation(t *testing.T) {
	g, err := mazegen.Generate(21, 21, mazegen.WithSeed(4))
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	for _, algo := range allAlgorithms {
		_, err := search.Execute(g, algo, search.WithContext(ctx))
		assert.ErrorIs(t, err, context.Canceled, "%s must honor cancellation", algo)
	}
}

// TestExecute_OnExpandAbort verifies a hook error stops the engine.
func TestExecute_OnExpandAbort(t *testing.T) {
	g, err := grid.Parse("S..\n...\n..G")
	require.NoError(t, err)

	boom := errors.New("boom")
	_, err = search.Execute(g, search.BFS, search.WithOnExpand(
		func(grid.Position, int) error { return boom },
	))
	assert.ErrorIs(t, err, boom)
}

// TestExecute_OnExpandSteps verifies the hook sees 0-based expansion
// indices matching the exploration order.
func TestExecute_OnExpandSteps(t *testing.T) {
	g, err := grid.Parse("S..\n...\n..G")
	require.NoError(t, err)

	var hooked []grid.Position
	res, err := search.Execute(g, search.AStar, search.WithOnExpand(
		func(p grid.Position, step int) error {
			assert.Equal(t, len(hooked), step)
			hooked = append(hooked, p)

			return nil
		},
	))
	require.NoError(t, err)
	assert.Equal(t, res.Exploration, hooked)
}

//----------------------------------------------------------------------------//
// Shared-contract properties over generated mazes
//----------------------------------------------------------------------------//

// TestEngines_PathValidity: found ⇒ path runs start→goal over adjacent,
// walkable cells (holds for every engine, every grid).
func TestEngines_PathValidity(t *testing.T) {
	for _, seed := range []int64{1, 7, 12345} {
		g, err := mazegen.Generate(15, 23, mazegen.WithSeed(seed))
		require.NoError(t, err)
		start, _ := g.Start()
		goal, _ := g.Goal()

		for _, algo := range allAlgorithms {
			res, err := search.Execute(g, algo)
			require.NoError(t, err)
			require.True(t, res.Found, "seed %d: %s must solve a generated maze", seed, algo)

			assert.Equal(t, start, res.Path[0], "%s path must begin at start", algo)
			assert.Equal(t, goal, res.Path[len(res.Path)-1], "%s path must end at goal", algo)
			assert.Equal(t, len(res.Path)-1, res.PathLength)
			for i := 1; i < len(res.Path); i++ {
				assert.Equal(t, 1, grid.Manhattan(res.Path[i-1], res.Path[i]),
					"%s consecutive path cells must be 4-adjacent", algo)
				assert.True(t, g.At(res.Path[i]).Walkable(),
					"%s path must avoid walls", algo)
			}
		}
	}
}

// TestEngines_ExplorationAccounting: nodesExpanded equals the trace
// length and no position is ever expanded twice.
func TestEngines_ExplorationAccounting(t *testing.T) {
	g, err := mazegen.Generate(21, 21, mazegen.WithSeed(42))
	require.NoError(t, err)

	for _, algo := range allAlgorithms {
		res, err := search.Execute(g, algo)
		require.NoError(t, err)

		assert.Equal(t, len(res.Exploration), res.NodesExpanded, "%s", algo)
		seen := make(map[grid.Position]bool, len(res.Exploration))
		for _, p := range res.Exploration {
			assert.False(t, seen[p], "%s expanded %v twice", algo, p)
			seen[p] = true
		}
	}
}

// TestEngines_OptimalAgreement: BFS, A* and IDA* all return the true
// shortest-path length (checked against an independent reference BFS),
// and Weighted A* stays within its 2× bound.
func TestEngines_OptimalAgreement(t *testing.T) {
	for _, seed := range []int64{3, 11, 12345, 999} {
		g, err := mazegen.Generate(17, 29, mazegen.WithSeed(seed))
		require.NoError(t, err)
		start, _ := g.Start()
		goal, _ := g.Goal()
		want, reachable := referenceShortest(g, start, goal)
		require.True(t, reachable, "seed %d: generated maze must be solvable", seed)

		for _, algo := range []search.Algorithm{search.BFS, search.AStar, search.IDAStar} {
			res, err := search.Execute(g, algo)
			require.NoError(t, err)
			assert.Equal(t, want, res.PathLength, "seed %d: %s must be optimal", seed, algo)
		}

		weighted, err := search.Execute(g, search.WeightedAStar)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, weighted.PathLength, want)
		assert.LessOrEqual(t, weighted.PathLength, 2*want,
			"seed %d: Weighted A* must stay within 2× optimal", seed)

		dfs, err := search.Execute(g, search.DFS)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, dfs.PathLength, want,
			"seed %d: no engine may beat the shortest path", seed)
	}
}

// TestEngines_Deterministic: two runs over the same grid produce
// identical traces and paths — tie-breaks are observable behavior.
func TestEngines_Deterministic(t *testing.T) {
	g, err := mazegen.Generate(15, 15, mazegen.WithSeed(8))
	require.NoError(t, err)

	for _, algo := range allAlgorithms {
		a, err := search.Execute(g, algo)
		require.NoError(t, err)
		b, err := search.Execute(g, algo)
		require.NoError(t, err)
		assert.Equal(t, a.Exploration, b.Exploration, "%s", algo)
		assert.Equal(t, a.Path, b.Path, "%s", algo)
	}
}

//----------------------------------------------------------------------------//
// End-to-end scenarios
//----------------------------------------------------------------------------//

// TestScenario_OpenGrid: 5×5 empty-bordered grid, Start=(1,1),
// Goal=(3,3). BFS and A* find length 4; DFS may not beat it; A*
// expands no more nodes than BFS.
func TestScenario_OpenGrid(t *testing.T) {
	g, err := grid.Parse(`
		#####
		#S..#
		#...#
		#..G#
		#####
	`)
	require.NoError(t, err)

	bfs, err := search.Execute(g, search.BFS)
	require.NoError(t, err)
	assert.True(t, bfs.Found)
	assert.Equal(t, 4, bfs.PathLength)

	astar, err := search.Execute(g, search.AStar)
	require.NoError(t, err)
	assert.True(t, astar.Found)
	assert.Equal(t, 4, astar.PathLength)
	assert.LessOrEqual(t, astar.NodesExpanded, bfs.NodesExpanded,
		"the heuristic must not expand more than uninformed BFS here")

	dfs, err := search.Execute(g, search.DFS)
	require.NoError(t, err)
	assert.True(t, dfs.Found)
	assert.GreaterOrEqual(t, dfs.PathLength, 4)
}

// TestScenario_EnclosedGoal: a goal sealed behind walls yields a clean
// not-found result from every engine — never an error.
func TestScenario_EnclosedGoal(t *testing.T) {
	g, err := grid.Parse(`
		#####
		#S..#
		#..##
		#.#G#
		#####
	`)
	require.NoError(t, err)

	for _, algo := range allAlgorithms {
		res, err := search.Execute(g, algo)
		require.NoError(t, err, "%s: no path is not an error", algo)
		assert.False(t, res.Found, "%s", algo)
		assert.Empty(t, res.Path, "%s", algo)
		assert.Equal(t, 0, res.PathLength, "%s", algo)
		assert.NotEmpty(t, res.Exploration,
			"%s must still report the explored region", algo)
	}
}

// TestScenario_StartEqualsNeighborOfGoal exercises the shortest
// possible non-trivial search.
func TestScenario_StartEqualsNeighborOfGoal(t *testing.T) {
	g, err := grid.Parse("###\n#S#\n#G#\n###\n###")
	require.NoError(t, err)

	for _, algo := range allAlgorithms {
		res, err := search.Execute(g, algo)
		require.NoError(t, err)
		assert.True(t, res.Found, "%s", algo)
		assert.Equal(t, 1, res.PathLength, "%s", algo)
	}
}

//----------------------------------------------------------------------------//
// Static metadata
//----------------------------------------------------------------------------//

// TestAlgorithm_Metadata pins names and optimality guarantees.
func TestAlgorithm_Metadata(t *testing.T) {
	cases := []struct {
		algo    search.Algorithm
		name    string
		optimal bool
	}{
		{search.DFS, "DFS", false},
		{search.BFS, "BFS", true},
		{search.AStar, "A*", true},
		{search.WeightedAStar, "Weighted A*", false},
		{search.IDAStar, "IDA*", true},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.name, tc.algo.String())
		assert.Equal(t, tc.optimal, tc.algo.Optimal())
		assert.True(t, tc.algo.Valid())
	}
	assert.False(t, search.Algorithm(-1).Valid())
	assert.Equal(t, 5, search.NumAlgorithms)
}

// TestResult_OptimalIsStatic: the flag reflects the algorithm, not the
// outcome — it stays set even when no path was found.
func TestResult_OptimalIsStatic(t *testing.T) {
	g, err := grid.Parse(`
		#####
		#S..#
		#..##
		#.#G#
		#####
	`)
	require.NoError(t, err)

	res, err := search.Execute(g, search.BFS)
	require.NoError(t, err)
	assert.False(t, res.Found)
	assert.True(t, res.Optimal)
}

// TestRunAll preserves input order and shares the grid.
func TestRunAll(t *testing.T) {
	g, err := mazegen.Generate(11, 11, mazegen.WithSeed(2))
	require.NoError(t, err)

	results, err := search.RunAll(g, allAlgorithms)
	require.NoError(t, err)
	require.Len(t, results, len(allAlgorithms))
	for i, algo := range allAlgorithms {
		assert.Equal(t, algo, results[i].Algorithm)
	}
}

//----------------------------------------------------------------------------//
// Reference helper (independent brute force)
//----------------------------------------------------------------------------//

// referenceShortest is an exhaustive flood BFS used as ground truth for
// shortest-path lengths. It shares no code with the engines under test.
func referenceShortest(g *grid.Grid, start, goal grid.Position) (int, bool) {
	dist := map[grid.Position]int{start: 0}
	queue := []grid.Position{start}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		if cur == goal {
			return dist[cur], true
		}
		for _, d := range grid.CardinalOffsets {
			n := cur.Add(d[0], d[1])
			if _, ok := dist[n]; !ok && g.At(n).Walkable() {
				dist[n] = dist[cur] + 1
				queue = append(queue, n)
			}
		}
	}

	return 0, false
}
