// Package patrol defines the Guard and Trail types and sentinel errors
// for the patrol subpackage of github.com/katalvlaran/gridpatrol.
package patrol

import (
	"errors"

	"github.com/katalvlaran/gridpatrol/grid"
)

// Sentinel errors for simulation entry points.
var (
	// ErrTableNil is returned if a nil StepTable is passed.
	ErrTableNil = errors.New("patrol: step table is nil")
	// ErrStartOutOfBounds is returned when the start cell is off the grid.
	ErrStartOutOfBounds = errors.New("patrol: start position out of bounds")
	// ErrStartObstructed is returned when the start cell holds an obstruction.
	ErrStartObstructed = errors.New("patrol: start position is obstructed")
)

// Guard is the transient simulation state: where the guard stands and which
// way it faces. It is a plain comparable value; the fast walk relies on ==
// over whole Guard states.
type Guard struct {
	Pos    grid.Coord
	Facing grid.Direction
}

// advance applies one cell-granular transition: turn in place when blocked,
// otherwise step one cell forward. The position may leave the grid; callers
// bounds-check before the next table query.
func (g *Guard) advance(table StepSource) {
	if table.RemainingSteps(g.Pos, g.Facing) == 0 {
		g.Facing = g.Facing.TurnClockwise()
	} else {
		g.Pos = g.Pos.Add(g.Facing.Offset())
	}
}

// jump applies one jump-granular transition: travel the full remaining
// distance, then turn clockwise in preparation for the next jump. A zero
// distance degenerates to a turn in place.
func (g *Guard) jump(table StepSource) {
	steps := table.RemainingSteps(g.Pos, g.Facing)
	g.Pos = g.Pos.Add(g.Facing.Offset().Scale(int(steps)))
	g.Facing = g.Facing.TurnClockwise()
}

// StepSource is the slice of steptable.StepTable the simulations consume:
// grid extent, O(1) jump distances, and the obstruction predicate.
// RemainingSteps must follow the steptable contract, including the
// one-past-the-edge distances that let walks exit the grid.
type StepSource interface {
	Rows() int
	Cols() int
	RemainingSteps(pos grid.Coord, dir grid.Direction) uint8
	IsObstructed(pos grid.Coord) bool
}

// Trail records the outcome of a cell-granular walk: per-cell facing masks
// plus whether the walk ended by looping (true) or by leaving the grid.
type Trail struct {
	// Looped is true when the walk terminated on a repeated
	// (position, facing) state rather than a grid exit.
	Looped bool

	rows, cols int
	cells      []uint8 // row-major; bit d set = visited facing Direction(d)
}

// newTrail allocates an empty trail for a rows×cols grid.
func newTrail(rows, cols int) *Trail {
	return &Trail{rows: rows, cols: cols, cells: make([]uint8, rows*cols)}
}

// mark sets the facing bit for pos and reports whether it was already set —
// a repeated state, which on a deterministic walk means a loop.
func (tr *Trail) mark(pos grid.Coord, facing grid.Direction) bool {
	idx := pos.Row*tr.cols + pos.Col
	if tr.cells[idx]&facing.Mask() != 0 {
		return true
	}
	tr.cells[idx] |= facing.Mask()

	return false
}

// Visited reports whether pos was covered under any facing. Out-of-bounds
// positions are never visited.
// Complexity: O(1).
func (tr *Trail) Visited(pos grid.Coord) bool {
	if !pos.InBounds(tr.rows, tr.cols) {
		return false
	}

	return tr.cells[pos.Row*tr.cols+pos.Col] != 0
}

// Count returns the number of distinct cells covered by the walk.
// Complexity: O(rows×cols).
func (tr *Trail) Count() int {
	count := 0
	for _, mask := range tr.cells {
		if mask != 0 {
			count++
		}
	}

	return count
}

// Cells returns every visited cell in row-major order.
// Complexity: O(rows×cols).
func (tr *Trail) Cells() []grid.Coord {
	cells := make([]grid.Coord, 0, len(tr.cells))
	for idx, mask := range tr.cells {
		if mask != 0 {
			cells = append(cells, grid.Coord{Row: idx / tr.cols, Col: idx % tr.cols})
		}
	}

	return cells
}
