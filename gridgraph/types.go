// Package gridgraph defines core types and options for the gridgraph
// subpackage of github.com/katalvlaran/gridpath.
package gridgraph

import (
	"math"

	"github.com/katalvlaran/gridpath/core"
)

// Connectivity selects neighbor connectivity: orthogonal (Conn4) or including diagonals (Conn8).
type Connectivity int

const (
	// Conn4 uses 4-directional connectivity: N, E, S, W.
	Conn4 Connectivity = iota
	// Conn8 uses 8-directional connectivity: N, NE, E, SE, S, SW, W, NW.
	Conn8
)

// String returns "4" or "8".
func (c Connectivity) String() string {
	if c == Conn8 {
		return "8"
	}

	return "4"
}

// Corner is a placeholder End cell resolved to the bottom-right cell of the grid.
var Corner = core.Cell{Row: -1, Col: -1}

// GridOptions contains tunable parameters for grid construction.
type GridOptions struct {
	// LandThreshold specifies the minimum cell value considered open terrain.
	// Cells below it are walls.
	LandThreshold int
	// Conn chooses 4- or 8-directional connectivity.
	Conn Connectivity
	// Start is the cell the search begins at.
	Start core.Cell
	// End is the cell the search looks for; Corner means bottom-right.
	End core.Cell
	// OrthogonalCost is the cost of a N/E/S/W step.
	OrthogonalCost float64
	// DiagonalCost is the cost of a diagonal step (Conn8 only).
	DiagonalCost float64
}

// DefaultGridOptions returns a GridOptions with default settings:
// LandThreshold=1, Conn=Conn4, Start=(0,0), End=Corner,
// OrthogonalCost=1, DiagonalCost=√2.
func DefaultGridOptions() GridOptions {
	return GridOptions{
		LandThreshold:  1,
		Conn:           Conn4,
		Start:          core.At(0, 0),
		End:            Corner,
		OrthogonalCost: 1,
		DiagonalCost:   math.Sqrt2,
	}
}

// GridGraph treats a 2D integer grid as a core.Grid. It is immutable once built,
// so one instance may be searched from several goroutines at once.
// Rows and Cols define dimensions; cells[r][c] holds the original input value.
type GridGraph struct {
	Rows, Cols     int
	Conn           Connectivity
	LandThreshold  int
	cells          [][]int
	start, end     core.Cell
	orthogonalCost float64
	diagonalCost   float64
	offsets        [][2]int
}

var _ core.Grid = (*GridGraph)(nil)
