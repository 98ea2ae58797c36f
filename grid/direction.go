package grid

// Directions returns all four directions in clockwise order, for iteration.
// The array is returned by value, so callers cannot corrupt the order.
// Complexity: O(1).
func Directions() [NumDirections]Direction {
	return [NumDirections]Direction{North, East, South, West}
}

// TurnClockwise returns the direction 90° clockwise from d.
// Complexity: O(1).
func (d Direction) TurnClockwise() Direction {
	switch d {
	case North:
		return East
	case East:
		return South
	case South:
		return West
	case West:
		return North
	default:
		panic("grid: invalid Direction")
	}
}

// Reverse returns the direction opposite to d (two clockwise turns).
// Complexity: O(1).
func (d Direction) Reverse() Direction {
	switch d {
	case North:
		return South
	case East:
		return West
	case South:
		return North
	case West:
		return East
	default:
		panic("grid: invalid Direction")
	}
}

// Offset returns the unit Coord step for one move in direction d.
// North decreases Row; West decreases Col.
// Complexity: O(1).
func (d Direction) Offset() Coord {
	switch d {
	case North:
		return Coord{Row: -1, Col: 0}
	case East:
		return Coord{Row: 0, Col: 1}
	case South:
		return Coord{Row: 1, Col: 0}
	case West:
		return Coord{Row: 0, Col: -1}
	default:
		panic("grid: invalid Direction")
	}
}

// Index returns the dense index 0..3 of d, following declaration order.
// Complexity: O(1).
func (d Direction) Index() int {
	return int(d)
}

// Mask returns the single-bit mask for d, for packing per-cell facing sets
// into one byte.
// Complexity: O(1).
func (d Direction) Mask() uint8 {
	return 1 << d
}

// String returns the direction name, or "Direction(n)" for invalid values.
func (d Direction) String() string {
	switch d {
	case North:
		return "North"
	case East:
		return "East"
	case South:
		return "South"
	case West:
		return "West"
	default:
		return "Direction(invalid)"
	}
}
