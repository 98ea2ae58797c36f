// Package search defines tunable options and error definitions
// for the obstruction-placement search of github.com/katalvlaran/gridpatrol.
package search

import (
	"context"
	"errors"
	"fmt"
	"runtime"
)

// Sentinel errors for search execution.
var (
	// ErrTableNil is returned if a nil step table is passed.
	ErrTableNil = errors.New("search: step table is nil")

	// ErrInvalidStart is returned when the start cell is off the grid or
	// obstructed.
	ErrInvalidStart = errors.New("search: invalid start position")

	// ErrInvalidCandidate is returned when a candidate is out of bounds,
	// already obstructed, or the start cell itself.
	ErrInvalidCandidate = errors.New("search: invalid candidate cell")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("search: invalid option supplied")
)

// Option configures search behavior via functional arguments.
// An invalid Option (e.g. zero workers) is recorded internally and surfaced
// as ErrOptionViolation when Count is invoked.
type Option func(*Options)

// Options holds parameters customizing Count execution.
type Options struct {
	// Ctx allows cancellation between chunks; defaults to context.Background().
	Ctx context.Context

	// Workers is the fixed pool size. Defaults to runtime.NumCPU();
	// it is additionally capped at the candidate count.
	Workers int

	// ChunkSize is the number of candidates handed to a worker at once.
	// 0 (the default) derives a size several times smaller than an even
	// split, so data-dependent probe costs balance across the pool.
	ChunkSize int

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with sane defaults:
//   - context.Background()
//   - one worker per logical CPU
//   - automatic chunk sizing.
func DefaultOptions() Options {
	return Options{
		Ctx:       context.Background(),
		Workers:   runtime.NumCPU(),
		ChunkSize: 0,
		err:       nil,
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithWorkers fixes the pool size.
//
//	n ≥ 1: use exactly n workers (still capped at the candidate count)
//	n < 1: invalid option → ErrOptionViolation
func WithWorkers(n int) Option {
	return func(o *Options) {
		if n < 1 {
			o.err = fmt.Errorf("%w: Workers must be ≥ 1 (%d)", ErrOptionViolation, n)
			return
		}
		o.Workers = n
	}
}

// WithChunkSize overrides automatic chunk sizing.
//
//	n ≥ 1: hand out exactly n candidates per chunk
//	n == 0: automatic sizing (default)
//	n < 0: invalid option → ErrOptionViolation
func WithChunkSize(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: ChunkSize cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.ChunkSize = n
	}
}
