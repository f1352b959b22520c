// Package dijkstra defines configuration options and sentinel errors
// for uniform-cost search over a core.Grid.
package dijkstra

import (
	"context"
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/gridpath/core"
)

// Sentinel errors returned by the Dijkstra implementation.
var (
	// ErrNilGrid indicates that a nil core.Grid was passed to Dijkstra.
	ErrNilGrid = fmt.Errorf("dijkstra: %w", core.ErrGridNil)

	// ErrNegativeCost indicates that Grid.Cost returned a negative step cost.
	ErrNegativeCost = errors.New("dijkstra: negative step cost encountered")

	// ErrOptionViolation indicates an invalid Option (e.g. negative MaxCost).
	ErrOptionViolation = errors.New("dijkstra: invalid option supplied")
)

// Options configures the behavior of the Dijkstra algorithm.
//
// Ctx      – cancellation, checked once per frontier pop.
// OnVisit  – called when a cell is finalized; an error aborts the search.
// MaxCost  – tentative distances above this are not relaxed.
//
//	Must be ≥ 0. Default is +Inf (no cap).
type Options struct {
	Ctx     context.Context
	OnVisit func(c core.Cell) error
	MaxCost float64

	// internal error recorded during option parsing
	err error
}

// Option represents a functional option for configuring Dijkstra.
type Option func(*Options)

// DefaultOptions returns an Options struct initialized with defaults:
//   - Ctx:     context.Background()
//   - OnVisit: no-op
//   - MaxCost: +Inf (explore everything reachable)
func DefaultOptions() Options {
	return Options{
		Ctx:     context.Background(),
		OnVisit: func(core.Cell) error { return nil },
		MaxCost: math.Inf(1),
	}
}

// WithContext sets a custom context for cancellation.
// Passing a nil context has no effect.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnVisit registers a callback run each time a cell is finalized,
// in ExpandedNodes order. Returning an error stops the search.
func WithOnVisit(fn func(c core.Cell) error) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// WithMaxCost caps exploration: a neighbor whose tentative distance exceeds
// max is not relaxed. Negative or NaN values are recorded as ErrOptionViolation.
func WithMaxCost(max float64) Option {
	return func(o *Options) {
		if max < 0 || math.IsNaN(max) {
			o.err = fmt.Errorf("%w: MaxCost must be non-negative (%g)", ErrOptionViolation, max)
			return
		}
		o.MaxCost = max
	}
}
