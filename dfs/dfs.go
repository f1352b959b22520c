// Package dfs implements depth-first search between the start and end cells
// of a core.Grid using an explicit stack, so path length is bounded by memory
// rather than by call-stack depth.
package dfs

import (
	"fmt"

	"github.com/katalvlaran/gridpath/core"
)

// frame is one level of the explicit DFS stack: the cell being explored,
// its depth, its successors and the index of the next one to try.
type frame struct {
	cell  core.Cell
	depth int
	succ  []core.Cell
	next  int
}

// dfsWalker encapsulates state during DFS.
type dfsWalker struct {
	grid    core.Grid
	opts    DFSOptions
	end     core.Cell
	stack   []frame
	visited *core.VisitedSet
	prev    map[core.Cell]core.Cell
	found   bool
}

// DFS performs depth-first search on g from g.Start() until g.End() is
// entered or every reachable cell has been tried.
//
// Successors are tried in Grid.Successors order. Entering the end cell stops
// the search at once without expanding it; a branch that dead-ends keeps its
// visited marks and predecessor entries. The returned path connects start and
// end but is not necessarily the shortest.
//
// Returns ErrGridNil, ErrOptionViolation, ctx.Err(), or a wrapped hook error;
// the partial result accompanies runtime errors.
func DFS(g core.Grid, opts ...Option) (*core.Result, error) {
	// 1. Apply options
	dopts := DefaultOptions()
	for _, fn := range opts {
		fn(&dopts)
	}
	if dopts.err != nil {
		return nil, dopts.err
	}

	// 2. Validate input grid
	if g == nil {
		return nil, ErrGridNil
	}

	w := &dfsWalker{
		grid:    g,
		opts:    dopts,
		end:     g.End(),
		stack:   make([]frame, 0, 16),
		visited: core.NewVisitedSet(16),
		prev:    make(map[core.Cell]core.Cell),
	}

	// 3. Enter the start cell, then unwind the stack
	err := w.enter(g.Start(), 0)
	if err == nil && !w.found {
		err = w.run()
	}

	res := core.NewResult(w.visited, w.prev, w.end, w.found, 0)
	if w.found {
		res.Cost = core.PathCost(g, res.Path)
	}

	return res, err
}

// enter marks c visited, fires OnVisit and either records success (c is the
// end) or pushes a frame for c's successors.
func (w *dfsWalker) enter(c core.Cell, depth int) error {
	w.visited.Add(c)
	if w.opts.OnVisit != nil {
		if err := w.opts.OnVisit(c, depth); err != nil {
			return fmt.Errorf("dfs: OnVisit hook for %v: %w", c, err)
		}
	}
	if c == w.end {
		w.found = true
		return nil
	}

	var succ []core.Cell
	if w.opts.MaxDepth < 0 || depth < w.opts.MaxDepth {
		succ = w.grid.Successors(c)
	}
	w.stack = append(w.stack, frame{cell: c, depth: depth, succ: succ})

	return nil
}

// run advances the top frame one successor at a time, descending into
// unvisited cells and popping exhausted frames, until the end is entered or
// the stack empties.
func (w *dfsWalker) run() error {
	for len(w.stack) > 0 {
		// 1. Cancellation check
		select {
		case <-w.opts.Ctx.Done():
			return w.opts.Ctx.Err()
		default:
		}

		top := len(w.stack) - 1
		f := &w.stack[top]

		// 2. Dead end: backtrack
		if f.next >= len(f.succ) {
			cell := f.cell
			w.stack = w.stack[:top]
			if w.opts.OnExit != nil {
				if err := w.opts.OnExit(cell); err != nil {
					return fmt.Errorf("dfs: OnExit hook for %v: %w", cell, err)
				}
			}
			continue
		}

		// 3. Try the next successor
		nbr := f.succ[f.next]
		f.next++
		if w.visited.Has(nbr) {
			continue
		}
		if w.opts.FilterNeighbor != nil && !w.opts.FilterNeighbor(nbr) {
			continue
		}

		// f is invalidated by the append in enter
		w.prev[nbr] = f.cell
		if err := w.enter(nbr, f.depth+1); err != nil {
			return err
		}
		if w.found {
			return nil
		}
	}

	return nil
}
