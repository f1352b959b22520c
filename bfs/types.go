// Package bfs provides tunable options and error definitions
// for breadth‐first search over a core.Grid.
package bfs

import (
	"context"
	"errors"
	"fmt"

	"github.com/katalvlaran/gridpath/core"
)

// Sentinel errors for BFS execution.
var (
	// ErrGridNil is returned if a nil grid is passed.
	ErrGridNil = fmt.Errorf("bfs: %w", core.ErrGridNil)

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("bfs: invalid option supplied")
)

// Option configures BFS behavior via functional arguments.
// If an Option is invalid (e.g. negative depth), it will be recorded
// internally and surfaced as ErrOptionViolation when BFS is invoked.
type Option func(*BFSOptions)

// BFSOptions holds parameters and callbacks to customize BFS execution.
type BFSOptions struct {
	// Ctx allows cancellation and deadlines.
	Ctx context.Context

	// OnVisit is called when a cell enters the visited set (at enqueue time),
	// with its depth from the start. Returning an error aborts BFS.
	OnVisit func(c core.Cell, depth int) error

	// OnDequeue is called immediately before a cell is examined.
	OnDequeue func(c core.Cell, depth int)

	// MaxDepth, if > 0, stops discovering cells beyond this depth.
	// A value of 0 explicitly disables any depth limit.
	MaxDepth int

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns a BFSOptions with sane defaults:
//   - Context.Background()
//   - no depth limit (MaxDepth == 0)
//   - no-op hooks (OnVisit, OnDequeue)
func DefaultOptions() BFSOptions {
	return BFSOptions{
		Ctx:       context.Background(),
		OnVisit:   func(core.Cell, int) error { return nil },
		OnDequeue: func(core.Cell, int) {},
		MaxDepth:  0,
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *BFSOptions) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnVisit registers a callback to run when a cell is marked visited;
// returning an error from this callback stops the BFS.
func WithOnVisit(fn func(c core.Cell, depth int) error) Option {
	return func(o *BFSOptions) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// WithOnDequeue registers a callback to run on dequeue.
func WithOnDequeue(fn func(c core.Cell, depth int)) Option {
	return func(o *BFSOptions) {
		if fn != nil {
			o.OnDequeue = fn
		}
	}
}

// WithMaxDepth stops the search from discovering cells deeper than d.
//
//	d > 0: limit to depth d
//	d == 0: explicit no depth limit
//	d < 0: invalid option → ErrOptionViolation
func WithMaxDepth(d int) Option {
	return func(o *BFSOptions) {
		switch {
		case d < 0:
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, d)
		default:
			o.MaxDepth = d
		}
	}
}
