// Package bfs provides breadth-first search between the start and end cells
// of a core.Grid, returning the fewest-steps path and every cell reached.
package bfs

import (
	"fmt"

	"github.com/katalvlaran/gridpath/core"
)

// queueItem pairs a cell with its BFS depth.
type queueItem struct {
	cell  core.Cell
	depth int
}

// walker encapsulates mutable BFS state.
type walker struct {
	grid    core.Grid
	opts    BFSOptions
	end     core.Cell
	queue   []queueItem
	visited *core.VisitedSet
	prev    map[core.Cell]core.Cell
	found   bool
}

// BFS runs breadth-first search on g from g.Start() until g.End() is
// dequeued or the frontier is exhausted.
//
// Cells are marked visited when enqueued, so each cell enters the queue at
// most once and ExpandedNodes also lists cells that were discovered but
// never dequeued before the end was reached.
//
// Returns ErrGridNil, ErrOptionViolation, ctx.Err(), or a wrapped OnVisit
// error; the partial result accompanies runtime errors.
func BFS(g core.Grid, opts ...Option) (*core.Result, error) {
	// Build options and catch any invalid ones immediately
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if g == nil {
		return nil, ErrGridNil
	}

	w := &walker{
		grid:    g,
		opts:    o,
		end:     g.End(),
		queue:   make([]queueItem, 0, 16),
		visited: core.NewVisitedSet(16),
		prev:    make(map[core.Cell]core.Cell),
	}

	// Seed queue with start cell (no predecessor)
	err := w.enqueue(g.Start(), 0)
	if err == nil {
		err = w.loop()
	}

	res := core.NewResult(w.visited, w.prev, w.end, w.found, 0)
	if w.found {
		res.Cost = core.PathCost(g, res.Path)
	}

	return res, err
}

// enqueue marks c visited at depth d, calls OnVisit and appends it to the queue.
func (w *walker) enqueue(c core.Cell, d int) error {
	w.visited.Add(c)
	if err := w.opts.OnVisit(c, d); err != nil {
		return fmt.Errorf("bfs: OnVisit error at %v: %w", c, err)
	}
	w.queue = append(w.queue, queueItem{cell: c, depth: d})

	return nil
}

// loop processes the queue until the end is dequeued, the queue empties,
// an error occurs, or the context is cancelled.
func (w *walker) loop() error {
	for len(w.queue) > 0 {
		// cancellation check (once per loop)
		select {
		case <-w.opts.Ctx.Done():
			return w.opts.Ctx.Err()
		default:
		}

		item := w.dequeue()
		if item.cell == w.end {
			w.found = true
			return nil
		}
		if err := w.enqueueNeighbors(item); err != nil {
			return err
		}
	}

	return nil
}

// dequeue pops the first item, invokes OnDequeue, and returns it.
func (w *walker) dequeue() queueItem {
	item := w.queue[0]
	w.queue = w.queue[1:]
	w.opts.OnDequeue(item.cell, item.depth)

	return item
}

// enqueueNeighbors applies MaxDepth and enqueues each unseen successor,
// recording the dequeued cell as its predecessor.
func (w *walker) enqueueNeighbors(item queueItem) error {
	nextDepth := item.depth + 1
	if w.opts.MaxDepth > 0 && nextDepth > w.opts.MaxDepth {
		return nil
	}
	for _, nbr := range w.grid.Successors(item.cell) {
		// first time seen?
		if w.visited.Has(nbr) {
			continue
		}
		w.prev[nbr] = item.cell
		if err := w.enqueue(nbr, nextDepth); err != nil {
			return err
		}
	}

	return nil
}
