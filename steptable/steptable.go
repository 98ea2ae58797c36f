package steptable

import (
	"fmt"

	"github.com/katalvlaran/gridpatrol/grid"
)

// New creates a StepTable for an obstruction-free rows×cols grid.
// Every entry is seeded with the distance that walks one cell past the grid
// edge in its direction, so a walk with no obstruction ahead always leaves
// the grid instead of stalling on the boundary.
// Returns ErrInvalidDimensions or ErrDimensionsTooLarge on bad sizes.
// Complexity: O(rows×cols) time and memory.
func New(rows, cols int) (*StepTable, error) {
	if rows <= 0 || cols <= 0 {
		return nil, ErrInvalidDimensions
	}
	// Distances up to max(rows, cols) must stay below the sentinel.
	if rows >= int(Marker) || cols >= int(Marker) {
		return nil, fmt.Errorf("%w: %d×%d with marker %d", ErrDimensionsTooLarge, rows, cols, Marker)
	}

	t := &StepTable{rows: rows, cols: cols}
	for d := range t.steps {
		t.steps[d] = make([]uint8, rows*cols)
	}

	for row := 0; row < rows; row++ {
		for col := 0; col < cols; col++ {
			idx := row*cols + col
			t.steps[grid.North.Index()][idx] = uint8(row + 1)
			t.steps[grid.East.Index()][idx] = uint8(cols - col)
			t.steps[grid.South.Index()][idx] = uint8(rows - row)
			t.steps[grid.West.Index()][idx] = uint8(col + 1)
		}
	}

	return t, nil
}

// FromLayout builds a StepTable from a parsed Layout by inserting each
// obstruction incrementally.
// Returns New's errors, or ErrObstructionOutOfBounds for a corrupt Layout.
// Complexity: O(rows×cols + k×(rows+cols)) for k obstructions.
func FromLayout(layout *grid.Layout) (*StepTable, error) {
	t, err := New(layout.Rows, layout.Cols)
	if err != nil {
		return nil, err
	}
	for _, pos := range layout.Obstructions {
		if !t.inBounds(pos) {
			return nil, fmt.Errorf("%w: %v on %d×%d grid", ErrObstructionOutOfBounds, pos, layout.Rows, layout.Cols)
		}
		t.AddObstruction(pos)
	}

	return t, nil
}

// Rows returns the number of grid rows.
// Complexity: O(1).
func (t *StepTable) Rows() int {
	return t.rows
}

// Cols returns the number of grid columns.
// Complexity: O(1).
func (t *StepTable) Cols() int {
	return t.cols
}

// RemainingSteps returns the number of steps available from pos in direction
// dir before the next obstruction (or one past the grid edge when none lies
// ahead). pos must be an in-bounds, unobstructed cell; violating either is a
// programming error and panics.
// Complexity: O(1).
func (t *StepTable) RemainingSteps(pos grid.Coord, dir grid.Direction) uint8 {
	if !t.inBounds(pos) {
		panic(fmt.Sprintf("steptable: RemainingSteps at out-of-bounds %v", pos))
	}
	steps := t.steps[dir.Index()][t.index(pos)]
	if steps == Marker {
		panic(fmt.Sprintf("steptable: RemainingSteps at obstructed cell %v", pos))
	}

	return steps
}

// IsObstructed reports whether pos holds an obstruction. Out-of-bounds
// positions are never obstructed.
// Complexity: O(1).
func (t *StepTable) IsObstructed(pos grid.Coord) bool {
	if !t.inBounds(pos) {
		return false
	}
	// All four matrices agree on Marker cells; North stands in for the rest.
	return t.steps[grid.North.Index()][t.index(pos)] == Marker
}

// index maps pos to its row-major offset in a flat matrix.
func (t *StepTable) index(pos grid.Coord) int {
	return pos.Row*t.cols + pos.Col
}

// inBounds reports whether pos lies on the grid.
func (t *StepTable) inBounds(pos grid.Coord) bool {
	return pos.InBounds(t.rows, t.cols)
}
