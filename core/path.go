package core

// Reconstruct walks the predecessor chain backwards from end until a cell
// with no predecessor is reached, and returns the chain in start→end order.
//
// If end was never reached it has no predecessor, so the returned path is
// just [end]. A one-cell path therefore means either start == end or
// "unreachable"; callers tell them apart with Result.Found.
//
// prev must be acyclic along the chain rooted at end, which holds for every
// predecessor map built by first-discovery or strict-improvement updates.
// Complexity: O(len(path)).
func Reconstruct(prev map[Cell]Cell, end Cell) []Cell {
	// build reversed path
	path := []Cell{}
	for cur := end; ; {
		path = append(path, cur)
		p, ok := prev[cur]
		if !ok {
			break
		}
		cur = p
	}
	// reverse to get start → end
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path
}

// NewResult assembles a Result from the final traversal state.
// found reports whether end entered the visited set; cost is the
// accumulated cost to end (ignored when !found).
func NewResult(visited *VisitedSet, prev map[Cell]Cell, end Cell, found bool, cost float64) *Result {
	res := &Result{
		ExpandedNodes: visited.Slice(),
		Path:          Reconstruct(prev, end),
		Found:         found,
	}
	if found {
		res.Cost = cost
	}

	return res
}
