package gridgraph

import "github.com/katalvlaran/gridpath/core"

// ConnectedComponents finds all contiguous regions of open cells
// (value ≥ LandThreshold), according to gg.Conn connectivity.
// Components are returned in row-major order of their first cell;
// each component lists its cells in flood-fill order.
//
// Time:   O(R·C·d), where d = 4 or 8.
// Memory: O(R·C) for visited flags and output.
func (gg *GridGraph) ConnectedComponents() [][]core.Cell {
	seen := make([]bool, gg.Rows*gg.Cols)
	var comps [][]core.Cell
	for r := 0; r < gg.Rows; r++ {
		for c := 0; c < gg.Cols; c++ {
			cell := core.At(r, c)
			if gg.IsWall(cell) || seen[gg.index(cell)] {
				continue
			}
			comps = append(comps, gg.flood(cell, seen))
		}
	}

	return comps
}

// Reachable returns every open cell reachable from `from` through
// Successors, in BFS discovery order (from first). A wall or out-of-bounds
// origin yields nil.
// Complexity: O(R·C·d).
func (gg *GridGraph) Reachable(from core.Cell) []core.Cell {
	if gg.IsWall(from) {
		return nil
	}

	return gg.flood(from, make([]bool, gg.Rows*gg.Cols))
}

// flood collects the component containing origin, marking cells in seen.
func (gg *GridGraph) flood(origin core.Cell, seen []bool) []core.Cell {
	queue := []core.Cell{origin}
	seen[gg.index(origin)] = true
	for qi := 0; qi < len(queue); qi++ {
		for _, v := range gg.Successors(queue[qi]) {
			vi := gg.index(v)
			if !seen[vi] {
				seen[vi] = true
				queue = append(queue, v)
			}
		}
	}

	return queue
}
