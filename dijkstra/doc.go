// Package dijkstra provides uniform-cost search between the start and end
// cells of a core.Grid with non-negative, direction-dependent step costs.
//
// Overview:
//
//   - Cells are finalized in order of increasing accumulated cost from the
//     start. The search stops the moment the end cell is finalized.
//   - A min-heap frontier with "lazy decrease-key": a cheaper route to a cell
//     pushes a new entry; stale entries are skipped when popped because the
//     cell is already in the visited set.
//   - Ties among equal distances are served in the order cells first entered
//     the frontier; a later improvement does not move a cell to the back.
//     The result is reproducible for a given Grid.Successors order.
//
// Result:
//
//   - ExpandedNodes: finalized cells, in finalization order.
//   - Path:          a lowest-cost start→end path, or [end] if unreachable.
//   - Found, Cost:   whether the end was reached and its final distance.
//
// Options:
//
//   - WithContext(ctx):  cancellation, checked once per frontier pop.
//   - WithOnVisit(fn):   hook on each finalized cell; an error aborts.
//   - WithMaxCost(x):    do not relax neighbors whose distance would exceed x.
//
// Errors (sentinel):
//
//   - ErrNilGrid:         the grid is nil (also matches core.ErrGridNil).
//   - ErrNegativeCost:    Grid.Cost returned a negative value.
//   - ErrOptionViolation: invalid option, e.g. negative MaxCost.
//
// Complexity:
//
//   - Time:  O((V + E) log V), V = cells reached, E = successor edges examined.
//   - Space: O(V + E) for the distance/predecessor maps and heap entries.
//
// Thread safety:
//
//	Every call allocates its own frontier, maps and visited set. Concurrent
//	calls are safe as long as the Grid is not mutated meanwhile.
package dijkstra
