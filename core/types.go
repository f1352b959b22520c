// Package core defines the Cell, Grid, and Result types shared by every
// traversal in gridpath, along with the order-preserving visited set and
// predecessor-chain path reconstruction.
//
// Errors:
//
//	ErrGridNil      - a nil Grid was passed to a traversal.
//	ErrCellNotFound - a requested cell lies outside the grid.
package core

import (
	"errors"
	"fmt"
)

// Sentinel errors for core operations.
var (
	// ErrGridNil indicates a nil Grid was passed to a traversal.
	ErrGridNil = errors.New("core: grid is nil")

	// ErrCellNotFound indicates an operation referenced a cell outside the grid.
	ErrCellNotFound = errors.New("core: cell not found")
)

// Cell is a grid position identified by (Row, Col).
//
// Cell is a comparable value type: two Cells with equal coordinates are the
// same map key and the same set member, so a Grid never has to hand out
// canonical instances.
type Cell struct {
	Row int
	Col int
}

// At is shorthand for Cell{Row: row, Col: col}.
func At(row, col int) Cell {
	return Cell{Row: row, Col: col}
}

// String renders the cell as "(row,col)".
func (c Cell) String() string {
	return fmt.Sprintf("(%d,%d)", c.Row, c.Col)
}

// Delta returns the (row, col) step from c to next.
func (c Cell) Delta(next Cell) (dRow, dCol int) {
	return next.Row - c.Row, next.Col - c.Col
}

// Grid is the collaborator every traversal consumes.
//
// Successors must return neighbors in a stable order for a given cell:
// DFS exploration order, and therefore its result, depends on it.
// Cost must be non-negative; it is a function of the step only, which
// allows direction-dependent weights (orthogonal vs. diagonal).
type Grid interface {
	// Start returns the cell the search begins at.
	Start() Cell
	// End returns the cell the search looks for.
	End() Cell
	// Successors returns the traversable neighbors of c.
	Successors(c Cell) []Cell
	// Cost returns the movement cost of a single (dRow, dCol) step.
	Cost(dRow, dCol int) float64
}

// Result is the outcome of a single traversal.
//
//   - ExpandedNodes: every cell that entered the visited set, in insertion order.
//   - Path: start..end inclusive; when the end was never reached it holds
//     only the end cell (a one-cell Path with Found == false).
//   - Found: whether the end cell was reached.
//   - Cost: accumulated Grid.Cost along Path (0 when not found).
type Result struct {
	ExpandedNodes []Cell
	Path          []Cell
	Found         bool
	Cost          float64
}

// Hops returns the number of steps in Path, or -1 when the end was not reached.
func (r *Result) Hops() int {
	if !r.Found {
		return -1
	}

	return len(r.Path) - 1
}

// PathCost sums g.Cost over consecutive steps of path.
// Complexity: O(len(path)).
func PathCost(g Grid, path []Cell) float64 {
	var total float64
	for i := 1; i < len(path); i++ {
		total += g.Cost(path[i-1].Delta(path[i]))
	}

	return total
}
