// Package grid defines core types and sentinel errors
// for the grid subpackage of github.com/katalvlaran/gridpatrol.
package grid

import "errors"

// Sentinel errors for grid parsing.
var (
	// ErrEmptyGrid indicates the input has no rows or no columns.
	ErrEmptyGrid = errors.New("grid: input must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("grid: all rows must have the same length")
	// ErrMissingStart indicates no start marker was found in the input.
	ErrMissingStart = errors.New("grid: no start marker in input")
	// ErrMultipleStarts indicates more than one start marker was found.
	ErrMultipleStarts = errors.New("grid: more than one start marker in input")
)

// Map symbols recognized by Parse. Any other byte is a free cell.
const (
	// ObstructionSymbol marks a cell blocking movement.
	ObstructionSymbol = '#'
	// StartSymbol marks the single start cell; initial facing is North.
	StartSymbol = '^'
)

// Coord is a signed row/column pair. Arithmetic never bounds-checks: a Coord
// may hold a position outside any grid, and callers gate on InBounds (or
// HasNegatives) before using it as an index.
type Coord struct {
	Row, Col int
}

// Direction is one of the four cardinal directions, in clockwise order.
// The zero value is North, the facing every patrol starts with.
type Direction int

// The four directions. Clockwise order is load-bearing: TurnClockwise and
// Reverse rely on it, and Index follows declaration order.
const (
	North Direction = iota
	East
	South
	West

	// NumDirections is the size of the Direction enum.
	NumDirections = 4
)

// Layout is the parsed form of a character map: dimensions, every obstructed
// cell in reading order, and the start cell. It is immutable once built.
type Layout struct {
	Rows, Cols   int
	Obstructions []Coord
	Start        Coord
}
