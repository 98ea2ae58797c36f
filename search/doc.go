// Package search exhaustively tests single-obstruction placements that trap
// the patrol in an infinite loop.
//
// What
//
//   - Count takes the original step table, the start cell and a candidate
//     list — normally every baseline-trail cell except the start, via
//     CandidatesFor — and returns how many candidates, when obstructed,
//     make patrol.DetectLoop report a loop.
//   - Each candidate is probed independently on a worker-owned table:
//     AddObstruction, DetectLoop, RemoveObstruction. Removal restores the
//     table bit for bit, so one clone serves every probe a worker handles.
//
// Concurrency model
//
//   - A fixed pool of workers (default runtime.NumCPU) consumes index chunks
//     from a shared channel. The candidate slice itself is read-only and
//     needs no synchronization.
//   - Every worker deep-clones the table exactly once, at spawn, and owns
//     that clone for its whole lifetime. No locks guard the tables because
//     nothing is shared.
//   - Chunks are deliberately smaller than len(candidates)/workers: probe
//     cost is highly uneven (loop-inducing probes run to the cycle-detection
//     bound, most others exit quickly), and small chunks let fast workers
//     steal the remainder. Per-worker subtotals are summed after the pool
//     drains; the reduction is commutative, so ordering never matters and
//     1 worker vs N workers always agree.
//   - Every probe provably terminates, so no timeout exists; a Context can
//     still cancel a run between chunks.
//
// Usage
//
//	trail, _ := patrol.Walk(table, layout.Start)
//	candidates := search.CandidatesFor(trail, layout.Start)
//	n, err := search.Count(table, layout.Start, candidates,
//	    search.WithWorkers(8))
//
// Complexity (R = rows, C = cols, K = len(candidates))
//
//   - Time:   O(workers×R×C) cloning + O(K×(R+C + loop detection)) probing,
//     spread over the pool.
//   - Memory: O(workers×R×C) for the clones.
package search
