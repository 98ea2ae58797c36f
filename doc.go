// Package gridpatrol is a grid-patrol simulator built around an
// incrementally maintained directional jump-distance index.
//
// 🚀 What is gridpatrol?
//
//	A pure-Go library that answers two questions about a guard walking a
//	rectangular grid of obstructions (move forward until blocked, then turn
//	90° clockwise):
//		• How many distinct cells does the baseline patrol cover before the
//		  guard leaves the grid?
//		• In how many single cells would a new obstruction trap the guard in
//		  an infinite loop?
//
// ✨ Why gridpatrol?
//
//   - O(1) movement queries – four per-direction distance matrices replace
//     cell-by-cell scanning, and single placements update them in O(rows+cols)
//   - Loop detection without bookkeeping – Brent's cycle detection over the
//     implicit (position, facing) state sequence, O(1) extra memory
//   - Parallel placement search – a fixed worker pool over private table
//     clones, work-stealing chunks, identical answers for any worker count
//   - Pure Go – no cgo, no hidden deps
//
// Everything is organized under four subpackages, leaves first:
//
//	grid/      — signed coordinates, the four directions, map parsing
//	steptable/ — the jump-distance index: O(1) queries, incremental updates
//	patrol/    — the guard simulations: recorded walk and loop probe
//	search/    — the exhaustive, parallel single-placement search
//
// Quick ASCII example:
//
//	    .#..
//	    .^.#
//	    #...
//	    ..#.
//
//	a guard starting at '^' facing North is trapped: four obstructions form
//	a closed rectangle of clockwise turns.
//
// Dive into examples/ for a full parse → walk → search walkthrough.
//
//	go get github.com/katalvlaran/gridpatrol
package gridpatrol
