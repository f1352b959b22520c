// Package dfs implements depth-first search between the start and end cells
// of a core.Grid.
//
// Behavior:
//
//   - Cells are marked visited on entry, in the order they are entered.
//   - Successors are tried in Grid.Successors order; the first unvisited one
//     is entered and explored before its siblings.
//   - Entering the end cell stops the search immediately: the end is never
//     expanded and no remaining sibling branch is tried.
//   - A branch that dead-ends is abandoned but keeps its visited marks and
//     predecessor entries; only the chain rooted at the end is followed when
//     the path is reconstructed.
//   - The result path connects start and end; it is not necessarily shortest.
//
// The walk keeps an explicit stack of frames (cell, depth, successors, next
// index). Visiting order is identical to the recursive formulation, with no
// call-stack ceiling on long corridors.
//
// Complexity:
//
//   - Time:   O(V + E) where V = cells reached, E = successor edges examined.
//   - Memory: O(V) for the stack, visited set and predecessor map.
//
// Options:
//
//   - WithContext(ctx)          allows cancellation via context.Context.
//   - WithOnVisit(fn)           pre-order hook on cell entry; error aborts traversal.
//   - WithOnExit(fn)            post-order hook when a cell is abandoned.
//   - WithMaxDepth(limit)       stops descending beyond the given depth (>=0).
//   - WithFilterNeighbor(fn)    filters successor cells; return false to skip.
//
// Errors:
//
//   - ErrGridNil                if g is nil.
//   - ErrOptionViolation        for a negative MaxDepth.
//   - context.Canceled          if ctx is done.
//   - any error returned by OnVisit or OnExit (wrapped).
package dfs
