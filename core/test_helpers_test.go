// Package core_test contains test helpers for gridpath/core.
//
// Purpose:
//   - Provide a tiny deterministic Grid fixture for Result/PathCost tests.
package core_test

import (
	"github.com/katalvlaran/gridpath/core"
)

// lineGrid is a 1×n corridor: (0,0)…(0,n-1), orthogonal cost 1, diagonal 3.
type lineGrid struct {
	n int
}

func (l lineGrid) Start() core.Cell { return core.At(0, 0) }
func (l lineGrid) End() core.Cell   { return core.At(0, l.n-1) }

func (l lineGrid) Successors(c core.Cell) []core.Cell {
	var out []core.Cell
	if c.Col > 0 {
		out = append(out, core.At(0, c.Col-1))
	}
	if c.Col < l.n-1 {
		out = append(out, core.At(0, c.Col+1))
	}

	return out
}

func (l lineGrid) Cost(dRow, dCol int) float64 {
	if dRow != 0 && dCol != 0 {
		return 3
	}

	return 1
}

var _ core.Grid = lineGrid{}
