package search

import (
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/katalvlaran/gridpatrol/grid"
	"github.com/katalvlaran/gridpatrol/patrol"
	"github.com/katalvlaran/gridpatrol/steptable"
)

// chunkDivisor shrinks chunks below an even split: each worker's fair share
// is cut into this many pieces so the pool can re-balance uneven probes.
const chunkDivisor = 4

// span is a half-open index range [lo, hi) into the candidate slice.
type span struct {
	lo, hi int
}

// CandidatesFor derives the placement candidates from a baseline trail:
// every visited cell except the start, in row-major order. Blocking the
// start cell is never allowed, so it is dropped here.
// Complexity: O(rows×cols).
func CandidatesFor(trail *patrol.Trail, start grid.Coord) []grid.Coord {
	cells := trail.Cells()
	candidates := cells[:0]
	for _, pos := range cells {
		if pos != start {
			candidates = append(candidates, pos)
		}
	}

	return candidates
}

// Count returns the number of candidate cells whose single obstruction makes
// the patrol from start loop forever. Candidates must be in-bounds free
// cells distinct from start; CandidatesFor produces exactly that. The input
// table is only read (cloned per worker), never mutated.
//
// Returns ErrTableNil, ErrInvalidStart, ErrInvalidCandidate or
// ErrOptionViolation on bad input, and the context's error if the run is
// cancelled between chunks. With identical inputs the count is the same for
// any worker count.
func Count(table *steptable.StepTable, start grid.Coord, candidates []grid.Coord, opts ...Option) (int, error) {
	if table == nil {
		return 0, ErrTableNil
	}
	// Build options and catch any invalid ones immediately.
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return 0, o.err
	}

	// Validate all inputs up front so workers run assertion-free.
	if !start.InBounds(table.Rows(), table.Cols()) || table.IsObstructed(start) {
		return 0, fmt.Errorf("%w: %v", ErrInvalidStart, start)
	}
	for _, pos := range candidates {
		switch {
		case !pos.InBounds(table.Rows(), table.Cols()):
			return 0, fmt.Errorf("%w: %v out of bounds", ErrInvalidCandidate, pos)
		case table.IsObstructed(pos):
			return 0, fmt.Errorf("%w: %v already obstructed", ErrInvalidCandidate, pos)
		case pos == start:
			return 0, fmt.Errorf("%w: %v is the start cell", ErrInvalidCandidate, pos)
		}
	}
	if len(candidates) == 0 {
		return 0, nil
	}

	workers := o.Workers
	if workers > len(candidates) {
		workers = len(candidates)
	}
	chunks := makeChunks(len(candidates), workers, o.ChunkSize)

	var (
		wg    sync.WaitGroup
		total atomic.Int64
	)
	wg.Add(workers)
	for w := 0; w < workers; w++ {
		go func() {
			defer wg.Done()
			// One private deep copy per worker, for its whole lifetime:
			// every probe mutates and then restores this clone, so no two
			// goroutines ever touch the same matrices.
			clone := table.Clone()
			local := 0
			for sp := range chunks {
				select {
				case <-o.Ctx.Done():
					return // abandon remaining chunks
				default:
				}
				for i := sp.lo; i < sp.hi; i++ {
					if probe(clone, start, candidates[i]) {
						local++
					}
				}
			}
			total.Add(int64(local))
		}()
	}
	wg.Wait()

	if err := o.Ctx.Err(); err != nil {
		return 0, err
	}

	return int(total.Load()), nil
}

// makeChunks pre-splits [0, n) into spans on a buffered channel; closing it
// up front turns the channel into a lock-free work queue the pool drains.
func makeChunks(n, workers, chunkSize int) chan span {
	if chunkSize == 0 {
		chunkSize = n / (workers * chunkDivisor)
		if chunkSize < 1 {
			chunkSize = 1
		}
	}
	chunks := make(chan span, (n+chunkSize-1)/chunkSize)
	for lo := 0; lo < n; lo += chunkSize {
		hi := lo + chunkSize
		if hi > n {
			hi = n
		}
		chunks <- span{lo: lo, hi: hi}
	}
	close(chunks)

	return chunks
}

// probe tests one placement on a worker-owned table: obstruct, run the
// jump-granular walk, restore. Inputs were validated in Count, so DetectLoop
// cannot fail here.
func probe(table *steptable.StepTable, start, pos grid.Coord) bool {
	table.AddObstruction(pos)
	looped, _ := patrol.DetectLoop(table, start)
	table.RemoveObstruction(pos)

	return looped
}
