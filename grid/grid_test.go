package grid_test

import (
	"errors"
	"testing"

	"github.com/katalvlaran/gridpatrol/grid"
)

//----------------------------------------------------------------------------//
// Parse Tests
//----------------------------------------------------------------------------//

// TestParse_Errors verifies that Parse rejects malformed maps.
func TestParse_Errors(t *testing.T) {
	cases := []struct {
		name  string
		input string
		err   error
	}{
		{"Empty", "", grid.ErrEmptyGrid},
		{"OnlyNewlines", "\n\n", grid.ErrEmptyGrid},
		{"NonRectangular", "..#\n..\n", grid.ErrNonRectangular},
		{"BlankLineBetweenRows", "..^\n\n...\n", grid.ErrNonRectangular},
		{"MissingStart", "...\n.#.\n", grid.ErrMissingStart},
		{"MultipleStarts", "^..\n..^\n", grid.ErrMultipleStarts},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := grid.Parse(tc.input)
			if !errors.Is(err, tc.err) {
				t.Errorf("Parse(%q) error = %v; want %v", tc.input, err, tc.err)
			}
		})
	}
}

// TestParse_Layout checks dimensions, obstructions and start on a small map,
// including CRLF line endings and a trailing newline.
func TestParse_Layout(t *testing.T) {
	layout, err := grid.Parse(".#.\r\n...\r\n..^\r\n")
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}
	if layout.Rows != 3 || layout.Cols != 3 {
		t.Errorf("dimensions = %d×%d; want 3×3", layout.Rows, layout.Cols)
	}
	wantObs := []grid.Coord{{Row: 0, Col: 1}}
	if len(layout.Obstructions) != len(wantObs) || layout.Obstructions[0] != wantObs[0] {
		t.Errorf("Obstructions = %v; want %v", layout.Obstructions, wantObs)
	}
	if layout.Start != (grid.Coord{Row: 2, Col: 2}) {
		t.Errorf("Start = %v; want (2,2)", layout.Start)
	}
}

// TestLayout_IndexRoundTrip checks Index/Coordinate are inverses in row-major order.
func TestLayout_IndexRoundTrip(t *testing.T) {
	layout := &grid.Layout{Rows: 4, Cols: 7}
	for idx := 0; idx < layout.Rows*layout.Cols; idx++ {
		c := layout.Coordinate(idx)
		if got := layout.Index(c); got != idx {
			t.Fatalf("Index(Coordinate(%d)) = %d", idx, got)
		}
		if !c.InBounds(layout.Rows, layout.Cols) {
			t.Fatalf("Coordinate(%d) = %v out of bounds", idx, c)
		}
	}
}

//----------------------------------------------------------------------------//
// Coord Tests
//----------------------------------------------------------------------------//

// TestCoord_Arithmetic exercises Add, Sub and Scale, including transiently
// negative results.
func TestCoord_Arithmetic(t *testing.T) {
	a := grid.Coord{Row: 2, Col: 3}
	b := grid.Coord{Row: -5, Col: 1}

	if got := a.Add(b); got != (grid.Coord{Row: -3, Col: 4}) {
		t.Errorf("Add = %v; want (-3,4)", got)
	}
	if got := a.Sub(b); got != (grid.Coord{Row: 7, Col: 2}) {
		t.Errorf("Sub = %v; want (7,2)", got)
	}
	if got := b.Scale(3); got != (grid.Coord{Row: -15, Col: 3}) {
		t.Errorf("Scale = %v; want (-15,3)", got)
	}
	if got := a.Scale(0); got != (grid.Coord{}) {
		t.Errorf("Scale(0) = %v; want origin", got)
	}
}

// TestCoord_Bounds covers HasNegatives and InBounds edge cells.
func TestCoord_Bounds(t *testing.T) {
	cases := []struct {
		c        grid.Coord
		negative bool
		inBounds bool
	}{
		{grid.Coord{Row: 0, Col: 0}, false, true},
		{grid.Coord{Row: 2, Col: 4}, false, true},
		{grid.Coord{Row: -1, Col: 0}, true, false},
		{grid.Coord{Row: 0, Col: -1}, true, false},
		{grid.Coord{Row: 3, Col: 0}, false, false},
		{grid.Coord{Row: 0, Col: 5}, false, false},
	}
	for _, tc := range cases {
		if got := tc.c.HasNegatives(); got != tc.negative {
			t.Errorf("%v.HasNegatives() = %v; want %v", tc.c, got, tc.negative)
		}
		if got := tc.c.InBounds(3, 5); got != tc.inBounds {
			t.Errorf("%v.InBounds(3,5) = %v; want %v", tc.c, got, tc.inBounds)
		}
	}
}

//----------------------------------------------------------------------------//
// Direction Tests
//----------------------------------------------------------------------------//

// TestDirection_Helpers checks turn, reverse, offset, index and mask for all
// four directions in one table.
func TestDirection_Helpers(t *testing.T) {
	cases := []struct {
		d       grid.Direction
		turned  grid.Direction
		reverse grid.Direction
		offset  grid.Coord
		index   int
		mask    uint8
	}{
		{grid.North, grid.East, grid.South, grid.Coord{Row: -1, Col: 0}, 0, 1},
		{grid.East, grid.South, grid.West, grid.Coord{Row: 0, Col: 1}, 1, 2},
		{grid.South, grid.West, grid.North, grid.Coord{Row: 1, Col: 0}, 2, 4},
		{grid.West, grid.North, grid.East, grid.Coord{Row: 0, Col: -1}, 3, 8},
	}
	for _, tc := range cases {
		t.Run(tc.d.String(), func(t *testing.T) {
			if got := tc.d.TurnClockwise(); got != tc.turned {
				t.Errorf("TurnClockwise = %v; want %v", got, tc.turned)
			}
			if got := tc.d.Reverse(); got != tc.reverse {
				t.Errorf("Reverse = %v; want %v", got, tc.reverse)
			}
			if got := tc.d.Offset(); got != tc.offset {
				t.Errorf("Offset = %v; want %v", got, tc.offset)
			}
			if got := tc.d.Index(); got != tc.index {
				t.Errorf("Index = %d; want %d", got, tc.index)
			}
			if got := tc.d.Mask(); got != tc.mask {
				t.Errorf("Mask = %d; want %d", got, tc.mask)
			}
		})
	}
}

// TestDirection_FullTurnIsIdentity verifies four clockwise turns return to
// the original facing, and that two turns equal Reverse.
func TestDirection_FullTurnIsIdentity(t *testing.T) {
	for _, d := range grid.Directions() {
		if got := d.TurnClockwise().TurnClockwise().TurnClockwise().TurnClockwise(); got != d {
			t.Errorf("four turns of %v = %v", d, got)
		}
		if got := d.TurnClockwise().TurnClockwise(); got != d.Reverse() {
			t.Errorf("two turns of %v = %v; want %v", d, got, d.Reverse())
		}
	}
}
