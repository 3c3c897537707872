package solver

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/jask/sudotui/internal/grid"
)

// A classic puzzle with a unique solution.
var sample = grid.Grid{
	{5, 3, 0, 0, 7, 0, 0, 0, 0},
	{6, 0, 0, 1, 9, 5, 0, 0, 0},
	{0, 9, 8, 0, 0, 0, 0, 6, 0},
	{8, 0, 0, 0, 6, 0, 0, 0, 3},
	{4, 0, 0, 8, 0, 3, 0, 0, 1},
	{7, 0, 0, 0, 2, 0, 0, 0, 6},
	{0, 6, 0, 0, 0, 0, 2, 8, 0},
	{0, 0, 0, 4, 1, 9, 0, 0, 5},
	{0, 0, 0, 0, 8, 0, 0, 7, 9},
}

var sampleSolution = grid.Grid{
	{5, 3, 4, 6, 7, 8, 9, 1, 2},
	{6, 7, 2, 1, 9, 5, 3, 4, 8},
	{1, 9, 8, 3, 4, 2, 5, 6, 7},
	{8, 5, 9, 7, 6, 1, 4, 2, 3},
	{4, 2, 6, 8, 5, 3, 7, 9, 1},
	{7, 1, 3, 9, 2, 4, 8, 5, 6},
	{9, 6, 1, 5, 3, 7, 2, 8, 4},
	{2, 8, 7, 4, 1, 9, 6, 3, 5},
	{3, 4, 5, 2, 8, 6, 1, 7, 9},
}

func TestSolveClassic(t *testing.T) {
	t.Parallel()

	g := sample
	outcome, stats := Solve(&g, time.Minute)
	require.Equal(t, Solved, outcome)
	require.Equal(t, sampleSolution, g)
	require.True(t, g.Complete())
	require.True(t, g.Valid())
	require.Greater(t, stats.Nodes, 0)
	require.Less(t, stats.Duration, time.Minute)
}

func TestSolveDeterministic(t *testing.T) {
	t.Parallel()

	a, b := sample, sample
	outA, _ := Solve(&a, time.Minute)
	outB, _ := Solve(&b, time.Minute)
	require.Equal(t, outA, outB)
	require.Equal(t, a, b)
}

func TestSolveAlreadyComplete(t *testing.T) {
	t.Parallel()

	g := sampleSolution
	outcome, stats := Solve(&g, time.Minute)
	require.Equal(t, Solved, outcome)
	require.Equal(t, sampleSolution, g)
	require.Equal(t, 0, stats.Nodes)
}

func TestSolveUnsolvableRestoresGrid(t *testing.T) {
	t.Parallel()

	// The solution with (0,0) blanked and (0,1) forced to 5: the 5
	// duplicates (3,1)'s 5 in column 1, and (0,0) is left with no
	// candidate at all (the row blocks everything but 3, and column 0
	// already holds a 3).
	g := sampleSolution
	g[0][0] = 0
	g[0][1] = 5
	input := g

	outcome, _ := Solve(&g, time.Minute)
	require.Equal(t, Unsolvable, outcome)
	require.Equal(t, input, g, "unsolvable search must undo every placement")
}

func TestSolveExhaustedRestoresGrid(t *testing.T) {
	t.Parallel()

	// (0,0) admits 1 or 9, but either choice leaves (0,8) with no
	// candidate, so the search places, fails below, and undoes before
	// reporting failure.
	var g grid.Grid
	for c := 1; c < 8; c++ {
		g[0][c] = c + 1
	}
	g[2][8] = 9
	g[3][8] = 1
	input := g

	outcome, _ := Solve(&g, time.Minute)
	require.Equal(t, Unsolvable, outcome)
	require.Equal(t, input, g)
}

func TestSolveTimedOut(t *testing.T) {
	t.Parallel()

	g := sample
	outcome, _ := Solve(&g, 0)
	require.Equal(t, TimedOut, outcome)
	require.False(t, g.Complete())
}

// A grid built against row-major ascending search: the top rows are
// nearly empty while the clues sit low, so early guesses only fail far
// down the tree and the solver churns for a long time.
var antiBruteForce = grid.Grid{
	{0, 0, 0, 0, 0, 0, 0, 0, 0},
	{0, 0, 0, 0, 0, 3, 0, 8, 5},
	{0, 0, 1, 0, 2, 0, 0, 0, 0},
	{0, 0, 0, 5, 0, 7, 0, 0, 0},
	{0, 0, 4, 0, 0, 0, 1, 0, 0},
	{0, 9, 0, 0, 0, 0, 0, 0, 0},
	{5, 0, 0, 0, 0, 0, 0, 7, 3},
	{0, 0, 2, 0, 1, 0, 0, 0, 0},
	{0, 0, 0, 0, 4, 0, 0, 0, 9},
}

func TestSolveTimedOutLeavesPartialState(t *testing.T) {
	t.Parallel()

	g := antiBruteForce
	outcome, _ := Solve(&g, 100*time.Millisecond)
	require.Equal(t, TimedOut, outcome)

	// The deadline fires deep in the search, and every frame from the
	// detection point up returns without undoing, so the trial
	// placements that were live at that instant stay on the grid.
	require.NotEqual(t, antiBruteForce, g, "timed-out grid keeps in-flight placements")
	require.False(t, g.Complete())
	require.True(t, g.Valid(), "partial placements still satisfy the constraints")

	// the clues themselves are never touched
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			if antiBruteForce[r][c] != 0 {
				require.Equal(t, antiBruteForce[r][c], g[r][c])
			}
		}
	}
}

func TestSolveTimedOutFreshDeadline(t *testing.T) {
	t.Parallel()

	// A timed-out run must not poison a later solve of the same puzzle.
	g := sample
	outcome, _ := Solve(&g, 0)
	require.Equal(t, TimedOut, outcome)

	g = sample
	outcome, _ = Solve(&g, time.Minute)
	require.Equal(t, Solved, outcome)
	require.Equal(t, sampleSolution, g)
}

func TestOutcomeString(t *testing.T) {
	t.Parallel()

	require.Equal(t, "solved", Solved.String())
	require.Equal(t, "unsolvable", Unsolvable.String())
	require.Equal(t, "timed out", TimedOut.String())
}
