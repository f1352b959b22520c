// Package gridgraph provides a concrete core.Grid backed by a 2D slice of
// integer terrain values. It supports:
//
//   - Four- or eight-connectivity (Conn4 or Conn8)
//   - Walls (values below LandThreshold)
//   - Direction-dependent step costs (orthogonal vs. diagonal)
//   - Identification of connected components of open cells
//   - Minimal wall-breach paths between two cells
package gridgraph

import (
	"fmt"

	"github.com/katalvlaran/gridpath/core"
)

// offsets8 lists every neighbor step (dRow, dCol) in N, NE, E, SE, S, SW, W, NW order.
var offsets8 = [][2]int{{-1, 0}, {-1, 1}, {0, 1}, {1, 1}, {1, 0}, {1, -1}, {0, -1}, {-1, -1}}

// offsets4 lists the orthogonal steps in N, E, S, W order.
var offsets4 = [][2]int{{-1, 0}, {0, 1}, {1, 0}, {0, -1}}

// NewGridGraph constructs a GridGraph from a non-empty, rectangular 2D slice.
// It deep-copies the input to ensure immutability.
// Returns ErrEmptyGrid if grid has no rows or no columns,
// ErrNonRectangular if any row length differs, ErrBadCost for non-positive
// step costs, ErrOutOfBounds if start or end lies outside the grid, and
// ErrBlockedEndpoint if either is a wall.
// Algorithmic complexity: O(R×C) time and memory.
func NewGridGraph(values [][]int, opts GridOptions) (*GridGraph, error) {
	if len(values) == 0 || len(values[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	h, w := len(values), len(values[0])
	for _, row := range values {
		if len(row) != w {
			return nil, ErrNonRectangular
		}
	}
	if opts.OrthogonalCost <= 0 || opts.DiagonalCost <= 0 {
		return nil, fmt.Errorf("%w: orthogonal=%g diagonal=%g", ErrBadCost, opts.OrthogonalCost, opts.DiagonalCost)
	}
	// Deep copy to prevent external mutation
	cells := make([][]int, h)
	for r := 0; r < h; r++ {
		cells[r] = make([]int, w)
		copy(cells[r], values[r])
	}
	offsets := offsets4
	if opts.Conn == Conn8 {
		offsets = offsets8
	}
	end := opts.End
	if end == Corner {
		end = core.At(h-1, w-1)
	}
	gg := &GridGraph{
		Rows:           h,
		Cols:           w,
		Conn:           opts.Conn,
		LandThreshold:  opts.LandThreshold,
		cells:          cells,
		start:          opts.Start,
		end:            end,
		orthogonalCost: opts.OrthogonalCost,
		diagonalCost:   opts.DiagonalCost,
		offsets:        offsets,
	}
	for _, c := range []core.Cell{gg.start, gg.end} {
		if !gg.InBounds(c) {
			return nil, fmt.Errorf("%w: %v in %dx%d grid", ErrOutOfBounds, c, h, w)
		}
		if gg.IsWall(c) {
			return nil, fmt.Errorf("%w: %v", ErrBlockedEndpoint, c)
		}
	}

	return gg, nil
}

// From2D is a shorthand for NewGridGraph with DefaultGridOptions and the given connectivity.
func From2D(values [][]int, conn Connectivity) (*GridGraph, error) {
	opts := DefaultGridOptions()
	opts.Conn = conn

	return NewGridGraph(values, opts)
}

// InBounds reports whether c lies within the grid boundaries.
// Complexity: O(1).
func (gg *GridGraph) InBounds(c core.Cell) bool {
	return c.Row >= 0 && c.Row < gg.Rows && c.Col >= 0 && c.Col < gg.Cols
}

// IsWall reports whether c is out of bounds or below LandThreshold.
func (gg *GridGraph) IsWall(c core.Cell) bool {
	return !gg.InBounds(c) || gg.cells[c.Row][c.Col] < gg.LandThreshold
}

// Value returns the terrain value stored at c.
func (gg *GridGraph) Value(c core.Cell) (int, error) {
	if !gg.InBounds(c) {
		return 0, fmt.Errorf("%w: %v", ErrOutOfBounds, c)
	}

	return gg.cells[c.Row][c.Col], nil
}

// Start implements core.Grid.
func (gg *GridGraph) Start() core.Cell { return gg.start }

// End implements core.Grid.
func (gg *GridGraph) End() core.Cell { return gg.end }

// Successors implements core.Grid: in-bounds open neighbors of c in
// N, NE, E, SE, S, SW, W, NW order (diagonals only under Conn8).
// Complexity: O(d), d = 4 or 8.
func (gg *GridGraph) Successors(c core.Cell) []core.Cell {
	out := make([]core.Cell, 0, len(gg.offsets))
	for _, d := range gg.offsets {
		n := core.At(c.Row+d[0], c.Col+d[1])
		if gg.IsWall(n) {
			continue
		}
		out = append(out, n)
	}

	return out
}

// Cost implements core.Grid: DiagonalCost when both deltas are non-zero,
// OrthogonalCost otherwise.
func (gg *GridGraph) Cost(dRow, dCol int) float64 {
	if dRow != 0 && dCol != 0 {
		return gg.diagonalCost
	}

	return gg.orthogonalCost
}

// OpenCells returns the number of non-wall cells.
// Complexity: O(R×C).
func (gg *GridGraph) OpenCells() int {
	n := 0
	for r := 0; r < gg.Rows; r++ {
		for c := 0; c < gg.Cols; c++ {
			if gg.cells[r][c] >= gg.LandThreshold {
				n++
			}
		}
	}

	return n
}

// index maps c to a row‑major index: Row*Cols + Col.
// Complexity: O(1).
func (gg *GridGraph) index(c core.Cell) int {
	return c.Row*gg.Cols + c.Col
}

// Coordinate converts a row‑major index back to a Cell.
// Complexity: O(1).
func (gg *GridGraph) Coordinate(idx int) core.Cell {
	return core.At(idx/gg.Cols, idx%gg.Cols)
}
