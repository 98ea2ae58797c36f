package grid

import "strings"

// Parse converts a character map into a Layout. Each line is one row;
// ObstructionSymbol cells are recorded in reading order, StartSymbol marks
// the single start cell, and every other byte is free space. Trailing
// newlines and a final carriage return per line are tolerated.
//
// Returns ErrEmptyGrid for blank input, ErrNonRectangular if line lengths
// differ, ErrMissingStart / ErrMultipleStarts for a malformed start marker.
// Complexity: O(rows×cols) time and memory.
func Parse(input string) (*Layout, error) {
	lines := splitLines(input)
	if len(lines) == 0 || len(lines[0]) == 0 {
		return nil, ErrEmptyGrid
	}

	cols := len(lines[0])
	layout := &Layout{Rows: len(lines), Cols: cols}
	haveStart := false

	for row, line := range lines {
		if len(line) != cols {
			return nil, ErrNonRectangular
		}
		for col := 0; col < cols; col++ {
			switch line[col] {
			case ObstructionSymbol:
				layout.Obstructions = append(layout.Obstructions, Coord{Row: row, Col: col})
			case StartSymbol:
				if haveStart {
					return nil, ErrMultipleStarts
				}
				haveStart = true
				layout.Start = Coord{Row: row, Col: col}
			}
		}
	}

	if !haveStart {
		return nil, ErrMissingStart
	}

	return layout, nil
}

// splitLines breaks input into rows, dropping a final "\r" per line and any
// trailing blank lines (but not blank lines between rows, which must fail
// the rectangularity check instead of silently vanishing).
func splitLines(input string) []string {
	lines := strings.Split(input, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}
	for len(lines) > 0 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}

	return lines
}

// Index maps c to its row-major position within a Layout of l.Cols columns.
// Complexity: O(1).
func (l *Layout) Index(c Coord) int {
	return c.Row*l.Cols + c.Col
}

// Coordinate converts a row-major index back to a Coord.
// Complexity: O(1).
func (l *Layout) Coordinate(idx int) Coord {
	return Coord{Row: idx / l.Cols, Col: idx % l.Cols}
}
