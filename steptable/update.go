package steptable

import (
	"fmt"

	"github.com/katalvlaran/gridpatrol/grid"
)

// AddObstruction inserts a single obstruction at pos and repairs the index.
//
// Only entries pointing toward pos can change: for each direction d, the run
// of cells behind pos (walking Reverse(d)) up to the previous obstruction or
// edge now sees pos as its nearest obstruction, at distances 0, 1, 2, …
// Entries leading away from pos already hold their distance to whatever lies
// beyond and stay valid.
//
// pos must be an in-bounds, unobstructed cell.
// Complexity: O(rows + cols).
func (t *StepTable) AddObstruction(pos grid.Coord) {
	// Read every backward run length before mutating anything: direction d's
	// rewrite below must not observe direction d''s view of the new
	// obstruction through an already-updated matrix.
	var runs [grid.NumDirections]uint8
	for _, d := range grid.Directions() {
		backward := d.Reverse()
		// The cell just behind pos records, in the backward matrix, how many
		// free cells separate it from the previous obstruction. A value of 0
		// means the cell after it is already obstructed.
		prev := pos.Add(backward.Offset())
		switch {
		case !t.inBounds(prev):
			runs[d.Index()] = Marker // pos sits on the edge, nothing behind it
		default:
			runs[d.Index()] = t.steps[backward.Index()][t.index(prev)]
		}
	}

	for _, d := range grid.Directions() {
		run := runs[d.Index()]
		if run == Marker {
			continue // edge behind pos, or an adjacent obstruction: no cells to rewrite
		}
		backStep := d.Reverse().Offset()

		// Every cell between the previous obstruction and pos now stops at
		// pos: the cell k+1 behind it needs exactly k steps.
		for step := 0; step <= int(run); step++ {
			cell := pos.Add(backStep.Scale(step + 1))
			// Backward runs seeded toward the edge deliberately reach one
			// past it; stop at the boundary instead of writing there.
			if !t.inBounds(cell) {
				break
			}
			t.steps[d.Index()][t.index(cell)] = uint8(step)
		}
	}

	for d := range t.steps {
		t.steps[d][t.index(pos)] = Marker
	}
}

// RemoveObstruction deletes the obstruction at pos and repairs the index,
// restoring the exact state from before the matching AddObstruction.
//
// Per direction d it rewrites the same backward run AddObstruction touched,
// re-seeding it from the entry ahead of pos: cells behind pos now see through
// pos to the next obstruction (or the edge) beyond it.
//
// Panics if pos was not obstructed — removing a free cell is a programming
// error that would silently corrupt the index.
// Complexity: O(rows + cols).
func (t *StepTable) RemoveObstruction(pos grid.Coord) {
	// As in AddObstruction, take all reads before the first write.
	type rewrite struct {
		cells int   // run length behind pos to rewrite, including pos itself
		seed  uint8 // new distance-to-next value at pos; grows by 1 per cell behind
	}
	var rewrites [grid.NumDirections]rewrite
	for _, d := range grid.Directions() {
		if t.steps[d.Index()][t.index(pos)] != Marker {
			panic(fmt.Sprintf("steptable: RemoveObstruction at unobstructed cell %v", pos))
		}
		backward := d.Reverse()

		// How far back does the run of cells that pointed at pos extend?
		// At minimum pos itself gets a fresh entry.
		cells := 1
		if prev := pos.Add(backward.Offset()); t.inBounds(prev) {
			if behind := t.steps[backward.Index()][t.index(prev)]; behind != Marker {
				cells += int(behind) + 1 // +1 since distances count down to 0
			}
		}

		// Seed distance at pos: whatever lies ahead, seen through the now
		// free cell. An obstructed neighbor ahead keeps the seed at 0; off
		// the grid ahead means one step exits, matching New's seeding.
		var seed uint8
		next := pos.Add(d.Offset())
		switch {
		case !t.inBounds(next):
			seed = 1
		default:
			if ahead := t.steps[d.Index()][t.index(next)]; ahead != Marker {
				seed = ahead + 1 // one extra for the step onto next itself
			}
		}

		rewrites[d.Index()] = rewrite{cells: cells, seed: seed}
	}

	for _, d := range grid.Directions() {
		backStep := d.Reverse().Offset()
		rw := rewrites[d.Index()]
		for step := 0; step < rw.cells; step++ {
			cell := pos.Add(backStep.Scale(step))
			if !t.inBounds(cell) {
				break
			}
			t.steps[d.Index()][t.index(cell)] = rw.seed + uint8(step)
		}
	}
}
