package search_test

import (
	"context"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridpatrol/grid"
	"github.com/katalvlaran/gridpatrol/patrol"
	"github.com/katalvlaran/gridpatrol/search"
	"github.com/katalvlaran/gridpatrol/steptable"
)

// classicMap is the well-known 10×10 patrol layout with 6 loop-inducing
// single placements.
const classicMap = `....#.....
.........#
..........
..#.......
.......#..
..........
.#..^.....
........#.
#.........
......#...`

// setup parses input, builds the table and derives the candidate set from
// the baseline walk.
func setup(t *testing.T, input string) (*steptable.StepTable, *grid.Layout, []grid.Coord) {
	t.Helper()
	layout, err := grid.Parse(input)
	require.NoError(t, err)
	table, err := steptable.FromLayout(layout)
	require.NoError(t, err)
	trail, err := patrol.Walk(table, layout.Start)
	require.NoError(t, err)

	return table, layout, search.CandidatesFor(trail, layout.Start)
}

// TestCandidatesFor verifies the start cell is excluded and everything else
// visited is kept.
func TestCandidatesFor(t *testing.T) {
	table, layout, candidates := setup(t, classicMap)

	trail, err := patrol.Walk(table, layout.Start)
	require.NoError(t, err)
	require.Len(t, candidates, trail.Count()-1, "all visited cells minus the start")
	for _, pos := range candidates {
		require.NotEqual(t, layout.Start, pos)
		require.True(t, trail.Visited(pos))
	}
}

// TestCount_Classic checks the canonical 6 loop-inducing placements.
func TestCount_Classic(t *testing.T) {
	table, layout, candidates := setup(t, classicMap)

	count, err := search.Count(table, layout.Start, candidates)
	require.NoError(t, err)
	require.Equal(t, 6, count)
}

// TestCount_LeavesTableUntouched verifies the shared table is only cloned,
// never mutated, across a full run.
func TestCount_LeavesTableUntouched(t *testing.T) {
	table, layout, candidates := setup(t, classicMap)
	snapshot := table.Clone()

	_, err := search.Count(table, layout.Start, candidates)
	require.NoError(t, err)
	require.True(t, table.Equal(snapshot))
}

// TestCount_WorkerEquivalence runs the same search with 1..N workers and a
// range of chunk sizes; every configuration must agree.
func TestCount_WorkerEquivalence(t *testing.T) {
	table, layout, candidates := setup(t, classicMap)

	sequential, err := search.Count(table, layout.Start, candidates, search.WithWorkers(1))
	require.NoError(t, err)
	require.Equal(t, 6, sequential)

	for _, workers := range []int{2, 3, 4, 8, 16} {
		for _, chunk := range []int{0, 1, 5, 100} {
			count, err := search.Count(table, layout.Start, candidates,
				search.WithWorkers(workers), search.WithChunkSize(chunk))
			require.NoError(t, err)
			require.Equal(t, sequential, count, "workers=%d chunk=%d", workers, chunk)
		}
	}
}

// TestCount_RandomGridEquivalence cross-checks parallel runs against the
// sequential answer on a denser random grid.
func TestCount_RandomGridEquivalence(t *testing.T) {
	rng := rand.New(rand.NewSource(13))
	const rows, cols = 24, 24
	start := grid.Coord{Row: rows / 2, Col: cols / 2}

	table, err := steptable.New(rows, cols)
	require.NoError(t, err)
	for row := 0; row < rows; row++ {
		for col := 0; col < cols; col++ {
			pos := grid.Coord{Row: row, Col: col}
			if pos != start && rng.Float64() < 0.2 {
				table.AddObstruction(pos)
			}
		}
	}
	trail, err := patrol.Walk(table, start)
	require.NoError(t, err)
	candidates := search.CandidatesFor(trail, start)

	sequential, err := search.Count(table, start, candidates, search.WithWorkers(1))
	require.NoError(t, err)
	for _, workers := range []int{2, 7} {
		count, err := search.Count(table, start, candidates, search.WithWorkers(workers))
		require.NoError(t, err)
		require.Equal(t, sequential, count, "workers=%d", workers)
	}
}

// TestCount_NoCandidates covers the guard facing straight off the grid: one
// visited cell, nothing to probe, zero placements.
func TestCount_NoCandidates(t *testing.T) {
	table, layout, candidates := setup(t, ".^.\n...\n...")
	require.Empty(t, candidates)

	count, err := search.Count(table, layout.Start, candidates)
	require.NoError(t, err)
	require.Zero(t, count)
}

// TestCount_InputValidation exercises every rejection path.
func TestCount_InputValidation(t *testing.T) {
	table, layout, candidates := setup(t, classicMap)

	_, err := search.Count(nil, layout.Start, candidates)
	require.ErrorIs(t, err, search.ErrTableNil)

	_, err = search.Count(table, grid.Coord{Row: -1, Col: 2}, candidates)
	require.ErrorIs(t, err, search.ErrInvalidStart)

	_, err = search.Count(table, grid.Coord{Row: 0, Col: 4}, candidates) // obstructed
	require.ErrorIs(t, err, search.ErrInvalidStart)

	_, err = search.Count(table, layout.Start, []grid.Coord{{Row: 99, Col: 0}})
	require.ErrorIs(t, err, search.ErrInvalidCandidate)

	_, err = search.Count(table, layout.Start, []grid.Coord{{Row: 0, Col: 4}})
	require.ErrorIs(t, err, search.ErrInvalidCandidate)

	_, err = search.Count(table, layout.Start, []grid.Coord{layout.Start})
	require.ErrorIs(t, err, search.ErrInvalidCandidate)

	_, err = search.Count(table, layout.Start, candidates, search.WithWorkers(0))
	require.ErrorIs(t, err, search.ErrOptionViolation)

	_, err = search.Count(table, layout.Start, candidates, search.WithChunkSize(-1))
	require.ErrorIs(t, err, search.ErrOptionViolation)
}

// TestCount_CancelledContext verifies a pre-cancelled context aborts the run
// with the context's error.
func TestCount_CancelledContext(t *testing.T) {
	table, layout, candidates := setup(t, classicMap)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := search.Count(table, layout.Start, candidates, search.WithContext(ctx))
	require.ErrorIs(t, err, context.Canceled)
}
