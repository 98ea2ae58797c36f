package patrol

import "github.com/katalvlaran/gridpatrol/grid"

// Walk runs the cell-granular baseline simulation from start, facing North,
// and returns the full Trail. The start cell is recorded under the initial
// facing before the first transition, so a guard that immediately leaves the
// grid still counts its own cell.
//
// Returns ErrTableNil, ErrStartOutOfBounds or ErrStartObstructed on invalid
// input; the walk itself cannot fail.
// Complexity: O(rows×cols) time (≤ 4 visits per cell) and memory.
func Walk(table StepSource, start grid.Coord) (*Trail, error) {
	if err := validate(table, start); err != nil {
		return nil, err
	}

	trail := newTrail(table.Rows(), table.Cols())
	guard := Guard{Pos: start, Facing: grid.North}
	trail.mark(guard.Pos, guard.Facing)

	for {
		guard.advance(table)
		if !guard.Pos.InBounds(table.Rows(), table.Cols()) {
			return trail, nil // guard escaped
		}
		if trail.mark(guard.Pos, guard.Facing) {
			trail.Looped = true
			return trail, nil // state repeated
		}
	}
}

// validate rejects a nil table and any start cell a walk cannot begin from.
func validate(table StepSource, start grid.Coord) error {
	switch {
	case table == nil:
		return ErrTableNil
	case !start.InBounds(table.Rows(), table.Cols()):
		return ErrStartOutOfBounds
	case table.IsObstructed(start):
		return ErrStartObstructed
	}

	return nil
}
