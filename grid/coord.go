package grid

import "fmt"

// Add returns the component-wise sum c + o.
// Complexity: O(1).
func (c Coord) Add(o Coord) Coord {
	return Coord{Row: c.Row + o.Row, Col: c.Col + o.Col}
}

// Sub returns the component-wise difference c - o.
// Complexity: O(1).
func (c Coord) Sub(o Coord) Coord {
	return Coord{Row: c.Row - o.Row, Col: c.Col - o.Col}
}

// Scale returns c with both components multiplied by k.
// Complexity: O(1).
func (c Coord) Scale(k int) Coord {
	return Coord{Row: k * c.Row, Col: k * c.Col}
}

// HasNegatives reports whether either component is negative.
// Complexity: O(1).
func (c Coord) HasNegatives() bool {
	return c.Row < 0 || c.Col < 0
}

// InBounds reports whether c lies within a rows×cols grid.
// Complexity: O(1).
func (c Coord) InBounds(rows, cols int) bool {
	return c.Row >= 0 && c.Row < rows && c.Col >= 0 && c.Col < cols
}

// String renders c as "(row,col)".
func (c Coord) String() string {
	return fmt.Sprintf("(%d,%d)", c.Row, c.Col)
}
