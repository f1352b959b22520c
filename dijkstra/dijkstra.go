// Package dijkstra implements uniform-cost search between the start and end
// cells of a core.Grid.
//
// The frontier is a binary min-heap with "lazy decrease-key": improving a
// cell's distance pushes a fresh entry, and stale entries are skipped when
// popped because their cell is already visited. Among equal distances the
// cell first inserted into the frontier wins, even if its distance was
// improved later.
//
// Complexity:
//
//   - Time:  O((V + E) log V)
//   - Space: O(V + E)
package dijkstra

import (
	"container/heap"
	"fmt"

	"github.com/katalvlaran/gridpath/core"
)

// Dijkstra searches g from g.Start() to g.End() in order of increasing
// accumulated cost and stops as soon as the end cell is finalized.
//
// Returns:
//
//   - res.ExpandedNodes: cells in the order they were finalized.
//   - res.Path: a lowest-cost start→end path, or [end] if unreachable.
//   - res.Cost: the end cell's final distance (0 if unreachable).
//   - err: ErrNilGrid, ErrOptionViolation, ErrNegativeCost, ctx.Err(), or a
//     wrapped OnVisit error. On error the partial result is still returned.
func Dijkstra(g core.Grid, opts ...Option) (*core.Result, error) {
	// 1) Build and validate Options
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.err != nil {
		return nil, cfg.err
	}

	// 2) Validate grid is non-nil
	if g == nil {
		return nil, ErrNilGrid
	}

	// 3) Prepare per-call state and run the main loop.
	r := &runner{
		g:       g,
		options: cfg,
		end:     g.End(),
		dist:    make(map[core.Cell]float64),
		prev:    make(map[core.Cell]core.Cell),
		visited: core.NewVisitedSet(0),
		pq:      make(nodePQ, 0, 16),
		seqOf:   make(map[core.Cell]uint64),
	}
	r.init()
	err := r.process()

	return core.NewResult(r.visited, r.prev, r.end, r.found, r.dist[r.end]), err
}

// runner holds the mutable state for a single Dijkstra execution.
type runner struct {
	g       core.Grid             // The input grid; read-only within Dijkstra.
	options Options               // Configuration options.
	end     core.Cell             // Target cell, cached from g.End().
	dist    map[core.Cell]float64 // Best-known distance; absent = not reached.
	prev    map[core.Cell]core.Cell
	visited *core.VisitedSet     // Finalized cells, in finalization order.
	pq      nodePQ               // Min-heap of *nodeItem for lazy priority queue.
	seq     uint64               // insertion counter for tie-breaking
	seqOf   map[core.Cell]uint64 // first insertion seq per cell; reused on re-push
	found   bool
}

// init seeds the frontier with the start cell at distance zero.
func (r *runner) init() {
	start := r.g.Start()
	r.dist[start] = 0
	heap.Init(&r.pq)
	r.push(start, 0)
}

// push inserts a frontier entry. A cell keeps the sequence number of its
// first insertion, so an improved entry competes for ties from the position
// the cell originally took in the frontier.
func (r *runner) push(c core.Cell, d float64) {
	seq, ok := r.seqOf[c]
	if !ok {
		seq = r.seq
		r.seqOf[c] = seq
		r.seq++
	}
	heap.Push(&r.pq, &nodeItem{cell: c, dist: d, seq: seq})
}

// process is the core loop. It repeatedly extracts the closest unvisited
// cell, finalizes it, stops if it is the end cell, and otherwise relaxes
// its successors.
func (r *runner) process() error {
	ctx := r.options.Ctx
	for r.pq.Len() > 0 {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		// 1) Pop the smallest-distance item from the heap.
		item := heap.Pop(&r.pq).(*nodeItem)
		u := item.cell

		// 2) A stale entry for a cell finalized earlier; skip it.
		if r.visited.Has(u) {
			continue
		}

		// 3) Finalize u.
		r.visited.Add(u)
		if err := r.options.OnVisit(u); err != nil {
			return fmt.Errorf("dijkstra: OnVisit error at %v: %w", u, err)
		}

		// 4) Early exit: no further expansion once the end is finalized.
		if u == r.end {
			r.found = true
			return nil
		}

		// 5) Relax all successors of u.
		if err := r.relax(u); err != nil {
			return err
		}
	}

	return nil
}

// relax examines each successor v of u and records a strictly shorter
// distance, predecessor and fresh heap entry when one is found.
//
// Assumes r.dist[u] is final before calling relax(u).
func (r *runner) relax(u core.Cell) error {
	du := r.dist[u]
	for _, v := range r.g.Successors(u) {
		if r.visited.Has(v) {
			continue
		}
		w := r.g.Cost(u.Delta(v))
		if w < 0 {
			return fmt.Errorf("%w: step %v→%v cost=%g", ErrNegativeCost, u, v, w)
		}

		newDist := du + w
		if newDist > r.options.MaxCost {
			continue
		}
		// strict improvement only; equal distances keep the first predecessor
		if dv, ok := r.dist[v]; ok && newDist >= dv {
			continue
		}

		r.dist[v] = newDist
		r.prev[v] = u
		r.push(v, newDist)
	}

	return nil
}

// nodeItem represents a frontier entry: a cell, its distance when pushed,
// and the insertion sequence used to break ties.
type nodeItem struct {
	cell core.Cell
	dist float64
	seq  uint64
}

// nodePQ is a min-heap of *nodeItem ordered by (dist, seq) ascending.
type nodePQ []*nodeItem

// Len returns the number of items in the heap.
func (pq nodePQ) Len() int { return len(pq) }

// Less orders by distance, then by insertion order.
func (pq nodePQ) Less(i, j int) bool {
	if pq[i].dist != pq[j].dist {
		return pq[i].dist < pq[j].dist
	}

	return pq[i].seq < pq[j].seq
}

// Swap swaps two elements in the heap.
func (pq nodePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push adds a new element x onto the heap.
// Called by heap.Push; x must be of type *nodeItem.
func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(*nodeItem)) }

// Pop removes and returns the smallest element from the heap.
func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*pq = old[:n-1]

	return item
}
