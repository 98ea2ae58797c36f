// File: steptable/clone.go
// Role: Deep copies, equality and debug rendering of StepTable instances.
// Concurrency:
//   - Clone copies the flat matrices outright; the clone shares no storage
//     with the source, so each search worker can mutate its own copy freely.

package steptable

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/katalvlaran/gridpatrol/grid"
)

// Clone returns a deep copy of the table. The copy owns fresh backing
// storage for all four matrices; mutating it never affects the source.
// Complexity: O(rows×cols).
func (t *StepTable) Clone() *StepTable {
	clone := &StepTable{rows: t.rows, cols: t.cols}
	for d := range t.steps {
		clone.steps[d] = make([]uint8, len(t.steps[d]))
		copy(clone.steps[d], t.steps[d])
	}

	return clone
}

// Equal reports whether two tables have identical dimensions and
// bit-identical matrices in all four directions.
// Complexity: O(rows×cols).
func (t *StepTable) Equal(o *StepTable) bool {
	if o == nil || t.rows != o.rows || t.cols != o.cols {
		return false
	}
	for d := range t.steps {
		if !bytes.Equal(t.steps[d], o.steps[d]) {
			return false
		}
	}

	return true
}

// String renders all four matrices for debugging, one block per direction,
// with obstructed cells shown as "##".
func (t *StepTable) String() string {
	var sb strings.Builder
	for _, d := range grid.Directions() {
		fmt.Fprintf(&sb, "Steps %s:\n", d)
		for row := 0; row < t.rows; row++ {
			for col := 0; col < t.cols; col++ {
				if col > 0 {
					sb.WriteByte(' ')
				}
				if steps := t.steps[d.Index()][row*t.cols+col]; steps == Marker {
					sb.WriteString(" ##")
				} else {
					fmt.Fprintf(&sb, "%3d", steps)
				}
			}
			sb.WriteByte('\n')
		}
	}

	return sb.String()
}
