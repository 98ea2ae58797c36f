// Package patrol simulates a guard walking a grid of obstructions through a
// steptable.StepTable.
//
// What
//
//   - The guard is a (position, facing) pair starting at a given cell facing
//     North. One transition rule drives everything: if no steps remain ahead,
//     turn 90° clockwise in place; otherwise move forward.
//   - Walk is the cell-granular simulation. It advances one cell per step and
//     records, per cell, a 4-bit mask of the facings under which the cell was
//     visited. It ends when the guard leaves the grid, or when a
//     (position, facing) state repeats — a loop. The resulting Trail is both
//     the baseline answer (Count) and the candidate seed set for the search
//     package (Cells).
//   - DetectLoop is the jump-granular simulation: each transition jumps the
//     full remaining distance and turns. It records nothing per cell —
//     unaffordable when run once per candidate placement — and instead
//     detects repetition with Brent's cycle-finding scheme, trimmed to a
//     yes/no answer: a hare state advances one jump at a time while a
//     tortoise state teleports to the hare on a power-of-two schedule, and
//     equality of the full (position, facing) states confirms the loop.
//
// Escape precedence
//
//	On every transition the off-grid check runs before the state-equality
//	check. A jump landing out of bounds is an escape even if the landing
//	state would have matched an earlier one; swapping the two checks would
//	misclassify such grids.
//
// Termination
//
//	Jump lengths are ≥ 0 on a finite grid and the state space is bounded by
//	4×rows×cols, so both walks provably terminate; neither needs a timeout.
//
// Complexity (R = rows, C = cols)
//
//   - Walk: O(R×C) states visited at most 4 times each; O(R×C) memory.
//   - DetectLoop: O(cycle start + cycle length) jumps, O(1) extra memory.
//
// Usage
//
//	trail, err := patrol.Walk(table, layout.Start)
//	if err != nil { ... }
//	fmt.Println(trail.Count()) // distinct cells covered by the baseline patrol
package patrol
