package patrol

import "github.com/katalvlaran/gridpatrol/grid"

// DetectLoop runs the jump-granular simulation from start, facing North, and
// reports whether the guard ends up in an infinite loop. Nothing is recorded
// per cell; repetition is found by Brent's cycle detection over the implicit
// sequence of (position, facing) states, reduced to existence only — cycle
// length and offset are never needed.
//
// The hare advances one jump per iteration; whenever the hare has taken a
// power-of-two number of jumps since the last reset, the tortoise teleports
// to the hare and the window doubles. Equality of the two full Guard states
// confirms a loop. The off-grid check runs first on every transition: a
// state that leaves the grid is an escape even if it would also have matched
// the tortoise.
//
// Returns ErrTableNil, ErrStartOutOfBounds or ErrStartObstructed on invalid
// input.
// Complexity: O(μ + λ) jumps for cycle start μ and length λ, both bounded by
// 4×rows×cols; O(1) extra memory.
func DetectLoop(table StepSource, start grid.Coord) (bool, error) {
	if err := validate(table, start); err != nil {
		return false, err
	}

	hare := Guard{Pos: start, Facing: grid.North}
	tortoise := hare
	window, taken := 1, 1

	for {
		hare.jump(table)
		if !hare.Pos.InBounds(table.Rows(), table.Cols()) {
			return false, nil // escape takes precedence over repetition
		}
		if hare == tortoise {
			return true, nil
		}
		if taken == window {
			tortoise = hare
			window <<= 1
			taken = 0
		}
		taken++
	}
}
