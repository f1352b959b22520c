package gridgraph

import (
	"container/list"
	"fmt"

	"github.com/katalvlaran/gridpath/core"
)

// Breach finds a path from src to dst that crosses the fewest walls.
// Moving into an open cell costs 0, into a wall cell costs 1.
// Returns the cell sequence (src and dst inclusive) and the number of walls
// that would have to be opened. When src and dst already share a component
// the cost is 0.
//
// Behavior:
//  1. Validate both cells are in bounds.
//  2. 0–1 BFS from src: cost-0 moves at the deque front, cost-1 at the back.
//  3. Stop when dst is popped.
//  4. Reconstruct via the predecessor array.
//
// Complexity: O(R·C·d) time, O(R·C) memory.
func (gg *GridGraph) Breach(src, dst core.Cell) (path []core.Cell, walls int, err error) {
	for _, c := range []core.Cell{src, dst} {
		if !gg.InBounds(c) {
			return nil, 0, fmt.Errorf("%w: %v", ErrOutOfBounds, c)
		}
	}
	n := gg.Rows * gg.Cols
	const inf = int(^uint(0) >> 1)
	dist := make([]int, n)
	prev := make([]int, n)
	for i := range dist {
		dist[i] = inf
		prev[i] = -1
	}
	target := gg.index(dst)

	// 0–1 BFS: deque processes cost0 at front, cost1 at back
	dq := list.New()
	s := gg.index(src)
	dist[s] = 0
	dq.PushFront(s)
	for dq.Len() > 0 {
		e := dq.Front()
		dq.Remove(e)
		u := e.Value.(int)
		if u == target {
			break
		}
		uc := gg.Coordinate(u)
		for _, d := range gg.offsets {
			vc := core.At(uc.Row+d[0], uc.Col+d[1])
			if !gg.InBounds(vc) {
				continue
			}
			v := gg.index(vc)
			step := 0
			if gg.IsWall(vc) {
				step = 1
			}
			nd := dist[u] + step
			if nd < dist[v] {
				dist[v] = nd
				prev[v] = u
				if step == 0 {
					dq.PushFront(v)
				} else {
					dq.PushBack(v)
				}
			}
		}
	}
	// Reconstruct path
	for at := target; at >= 0; at = prev[at] {
		path = append(path, gg.Coordinate(at))
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, dist[target], nil
}
