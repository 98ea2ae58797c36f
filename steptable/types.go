// Package steptable defines the StepTable type and sentinel errors
// for the steptable subpackage of github.com/katalvlaran/gridpatrol.
package steptable

import (
	"errors"
	"math"

	"github.com/katalvlaran/gridpatrol/grid"
)

// Sentinel errors for StepTable construction.
var (
	// ErrInvalidDimensions indicates non-positive rows or columns.
	ErrInvalidDimensions = errors.New("steptable: dimensions must be > 0")
	// ErrDimensionsTooLarge indicates rows or columns at or above Marker,
	// which would collide with the obstruction sentinel.
	ErrDimensionsTooLarge = errors.New("steptable: dimensions must be below the obstruction marker")
	// ErrObstructionOutOfBounds indicates a Layout obstruction outside the grid.
	ErrObstructionOutOfBounds = errors.New("steptable: obstruction out of bounds")
)

// Marker is the reserved distance value meaning "this cell is itself
// obstructed". It is written to all four matrices of an obstructed cell
// simultaneously, so any single matrix identifies the obstruction set.
const Marker uint8 = math.MaxUint8

// StepTable is the per-direction jump-distance index. Each of the four
// matrices is stored row-major in a flat slice for cache density; the four
// are maintained independently and only agree on which cells hold Marker.
//
// A StepTable is not safe for concurrent mutation. The search package gives
// every worker its own Clone instead of sharing one.
type StepTable struct {
	rows, cols int
	steps      [grid.NumDirections][]uint8
}
