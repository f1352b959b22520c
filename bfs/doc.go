// Package bfs provides breadth-first search over a core.Grid, returning the
// fewest-steps path from start to end and every cell reached on the way.
//
// What
//
//   - Explore cells in non-decreasing step count from the start.
//   - Mark cells visited when they are enqueued (not when dequeued), so no
//     cell is queued twice.
//   - Stop as soon as the end cell is dequeued.
//   - Returns a core.Result:
//   - ExpandedNodes: visited set in enqueue order
//   - Path: fewest-steps start→end path, or [end] if unreachable
//   - Cost: Grid.Cost summed along Path (BFS itself ignores weights)
//   - Hooks: OnVisit (on enqueue; may abort) and OnDequeue.
//   - Honors a MaxDepth limit (d>0) or explicit "no limit" (d==0).
//
// Determinism
//
//	Successors are enqueued in Grid.Successors order, so the visit sequence
//	and the chosen path are fully reproducible.
//
// Complexity (V = cells reached, E = successor edges examined)
//
//   - Time:   O(V + E)
//   - Memory: O(V)
//
// Usage
//
//	res, err := bfs.BFS(g)
//	res, err := bfs.BFS(g,
//	    bfs.WithContext(ctx),
//	    bfs.WithMaxDepth(10),
//	    bfs.WithOnVisit(func(c core.Cell, depth int) error { return nil }),
//	)
//
// Errors
//
//   - ErrGridNil          if the grid is nil.
//   - ErrOptionViolation  if invalid Option (e.g. negative MaxDepth).
//   - ctx.Err()           on cancellation.
//   - Wrapped user-supplied hook errors from OnVisit.
package bfs
