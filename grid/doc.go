// Package grid provides the coordinate model shared by the patrol packages:
// signed row/column coordinates, the four cardinal directions, and parsing of
// a rectangular character map into a Layout.
//
// What
//
//   - Coord: signed (Row, Col) pair with Add/Sub/Scale arithmetic, plus the
//     HasNegatives and InBounds predicates. Coordinates are allowed to go
//     negative or past the grid extent transiently; callers bounds-check
//     before indexing.
//   - Direction: a closed enum of North, East, South, West with clockwise
//     turn, reversal, unit offset, dense index 0..3 and a per-direction bit
//     mask. All behavior is exhaustive switching on the four variants.
//   - Parse: converts a character map ('#' obstruction, '^' patrol start,
//     anything else free) into a Layout of dimensions, obstruction list and
//     start cell. Initial facing is always North.
//
// Why
//
//   - Every higher package (steptable, patrol, search) speaks in these types;
//     keeping them dependency-free avoids import cycles and keeps the hot
//     paths allocation-free (Coord and Direction are plain values).
//
// Errors
//
//	Parse returns ErrEmptyGrid, ErrNonRectangular, ErrMissingStart or
//	ErrMultipleStarts. All are sentinel values suitable for errors.Is.
//
// Complexity
//
//   - All Coord and Direction operations: O(1), zero allocations.
//   - Parse: O(rows×cols) time and memory.
package grid
