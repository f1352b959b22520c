// Package dfs defines types and options for depth-first search between the
// start and end cells of a core.Grid, including cancellation, pre-/post-order
// hooks, depth limiting and neighbor filtering.
package dfs

import (
	"context"
	"errors"
	"fmt"

	"github.com/katalvlaran/gridpath/core"
)

var (
	// ErrGridNil is returned when a nil core.Grid is passed to DFS.
	ErrGridNil = fmt.Errorf("dfs: %w", core.ErrGridNil)

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("dfs: invalid option supplied")
)

// Option configures optional behavior of DFS traversal.
// Use with DFS(g, opts...).
type Option func(*DFSOptions)

// DFSOptions holds configurable parameters for DFS traversal.
// Complexity remains O(V+E) when filters and hooks are O(1).
type DFSOptions struct {
	// Ctx allows cancellation or timeouts; defaults to context.Background().
	// It is checked once per stack frame step.
	Ctx context.Context

	// OnVisit, if non-nil, is invoked when a cell enters the visited set
	// (pre-order), with its depth along the current branch.
	// Returning an error aborts traversal with that error.
	OnVisit func(c core.Cell, depth int) error

	// OnExit, if non-nil, is invoked when every successor of a cell has been
	// tried without reaching the end (post-order backtrack).
	// Returning an error aborts traversal with that error.
	OnExit func(c core.Cell) error

	// MaxDepth, if non-negative, stops descending below the given depth.
	// A depth of 0 visits only the start cell. Default is -1 (no limit).
	MaxDepth int

	// FilterNeighbor, if non-nil, is called for each unvisited successor
	// before descending. Return false to skip it.
	FilterNeighbor func(c core.Cell) bool

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns a DFSOptions struct with:
//   - Background context
//   - No pre-/post-order hooks
//   - No depth limit (MaxDepth = -1)
//   - No neighbor filtering
func DefaultOptions() DFSOptions {
	return DFSOptions{
		Ctx:            context.Background(),
		OnVisit:        nil,
		OnExit:         nil,
		MaxDepth:       -1,
		FilterNeighbor: nil,
	}
}

// WithContext returns an Option that sets the Context for DFS traversal.
// Passing a nil context has no effect (Background is retained).
func WithContext(ctx context.Context) Option {
	return func(o *DFSOptions) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnVisit returns an Option that installs fn as a pre-order hook.
func WithOnVisit(fn func(c core.Cell, depth int) error) Option {
	return func(o *DFSOptions) {
		o.OnVisit = fn
	}
}

// WithOnExit returns an Option that installs fn as a post-order hook.
// The hook is called when a cell is abandoned as a dead end.
func WithOnExit(fn func(c core.Cell) error) Option {
	return func(o *DFSOptions) {
		o.OnExit = fn
	}
}

// WithMaxDepth returns an Option that limits traversal depth to limit.
// A limit of 0 means only the start cell is visited; a negative limit is
// recorded as ErrOptionViolation.
func WithMaxDepth(limit int) Option {
	return func(o *DFSOptions) {
		if limit < 0 {
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, limit)
			return
		}
		o.MaxDepth = limit
	}
}

// WithFilterNeighbor returns an Option that filters successor cells.
// If fn(c) == false, that successor is skipped.
func WithFilterNeighbor(fn func(c core.Cell) bool) Option {
	return func(o *DFSOptions) {
		o.FilterNeighbor = fn
	}
}
