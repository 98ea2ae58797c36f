// Package steptable implements a directional jump-distance index over a
// rectangular grid of obstructions.
//
// What
//
//   - A StepTable holds four rows×cols matrices of uint8, one per direction.
//     Entry [d][c] is the number of steps a walker at cell c may take in
//     direction d before standing immediately in front of the next
//     obstruction — or, when no obstruction lies ahead, the number of steps
//     that carries it one cell past the grid edge. Walks with nothing ahead
//     therefore run out of bounds by construction, which is exactly the
//     escape condition the patrol packages test for.
//   - Marker (the maximum uint8) is reserved: a cell storing Marker in all
//     four matrices is itself obstructed. Grid dimensions must stay strictly
//     below Marker.
//   - AddObstruction and RemoveObstruction maintain the index incrementally:
//     a single placement or removal rewrites only the run of cells between
//     the changed cell and the nearest obstruction (or edge) behind it, per
//     direction. Both first read everything they need from the pre-update
//     state, so no direction's rewrite can feed another's.
//
// Why
//
//   - RemainingSteps is O(1), which turns a patrol walk into a handful of
//     table lookups per turn instead of a cell-by-cell scan, and makes the
//     probe loop "place obstruction, walk, remove obstruction" cheap enough
//     to run for every candidate cell.
//
// Invariants
//
//   - RemainingSteps must never be called on an obstructed cell; doing so is
//     a programming error and panics.
//   - RemoveObstruction must only be called on a cell previously passed to
//     AddObstruction; it panics otherwise.
//   - Any add/remove sequence that nets to the original obstruction set
//     restores all four matrices bit for bit.
//
// Complexity (R = rows, C = cols)
//
//   - New/FromLayout: O(R×C) time and memory (4 matrices).
//   - RemainingSteps, IsObstructed: O(1).
//   - AddObstruction, RemoveObstruction: O(R + C) — one backward run per
//     direction.
//   - Clone: O(R×C).
//
// Usage
//
//	layout, err := grid.Parse(input)
//	if err != nil { ... }
//	table, err := steptable.FromLayout(layout)
//	if err != nil { ... }
//	steps := table.RemainingSteps(layout.Start, grid.North)
package steptable
