// Package gridtest provides fixtures and property assertions shared by the
// traversal test suites (bfs, dfs, dijkstra, algorithms).
//
// The reference computations here (MinCost, MinHops) are deliberately
// simple and independent from the packages under test.
package gridtest

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridpath/core"
	"github.com/katalvlaran/gridpath/gridgraph"
)

// MapGrid is a core.Grid with explicit, possibly one-way adjacency.
// Cells missing from Adj have no successors.
type MapGrid struct {
	StartCell core.Cell
	EndCell   core.Cell
	Adj       map[core.Cell][]core.Cell
	// CostFn defaults to 1 for every step when nil.
	CostFn func(dRow, dCol int) float64
}

func (m *MapGrid) Start() core.Cell                   { return m.StartCell }
func (m *MapGrid) End() core.Cell                     { return m.EndCell }
func (m *MapGrid) Successors(c core.Cell) []core.Cell { return m.Adj[c] }

func (m *MapGrid) Cost(dRow, dCol int) float64 {
	if m.CostFn == nil {
		return 1
	}

	return m.CostFn(dRow, dCol)
}

var _ core.Grid = (*MapGrid)(nil)

// MustParse parses maze text with the given connectivity or fails the test.
func MustParse(t testing.TB, text string, conn gridgraph.Connectivity) *gridgraph.GridGraph {
	t.Helper()
	opts := gridgraph.DefaultGridOptions()
	opts.Conn = conn
	gg, err := gridgraph.Parse(text, opts)
	require.NoError(t, err)

	return gg
}

// Open returns an all-open rows×cols grid with start (0,0) and end at the
// bottom-right corner.
func Open(t testing.TB, rows, cols int, conn gridgraph.Connectivity) *gridgraph.GridGraph {
	t.Helper()
	values := make([][]int, rows)
	for r := range values {
		values[r] = make([]int, cols)
		for c := range values[r] {
			values[r][c] = 1
		}
	}
	gg, err := gridgraph.From2D(values, conn)
	require.NoError(t, err)

	return gg
}

// reachable collects every cell reachable from g.Start() via Successors.
func reachable(g core.Grid) map[core.Cell]bool {
	seen := map[core.Cell]bool{g.Start(): true}
	queue := []core.Cell{g.Start()}
	for i := 0; i < len(queue); i++ {
		for _, n := range g.Successors(queue[i]) {
			if !seen[n] {
				seen[n] = true
				queue = append(queue, n)
			}
		}
	}

	return seen
}

// Reachable reports whether g.End() is reachable from g.Start().
func Reachable(g core.Grid) bool {
	return reachable(g)[g.End()]
}

// MinHops returns the fewest edges from start to end, or -1 if unreachable.
func MinHops(g core.Grid) int {
	depth := map[core.Cell]int{g.Start(): 0}
	queue := []core.Cell{g.Start()}
	for i := 0; i < len(queue); i++ {
		u := queue[i]
		if u == g.End() {
			return depth[u]
		}
		for _, n := range g.Successors(u) {
			if _, ok := depth[n]; !ok {
				depth[n] = depth[u] + 1
				queue = append(queue, n)
			}
		}
	}

	return -1
}

// MinCost returns the cheapest start→end cost by Bellman-Ford style
// relaxation over the reachable cells, or +Inf if unreachable.
func MinCost(g core.Grid) float64 {
	cells := reachable(g)
	dist := map[core.Cell]float64{g.Start(): 0}
	for round := 0; round < len(cells); round++ {
		changed := false
		for u := range cells {
			du, ok := dist[u]
			if !ok {
				continue
			}
			for _, v := range g.Successors(u) {
				nd := du + g.Cost(u.Delta(v))
				if dv, ok := dist[v]; !ok || nd < dv-1e-12 {
					dist[v] = nd
					changed = true
				}
			}
		}
		if !changed {
			break
		}
	}
	if d, ok := dist[g.End()]; ok {
		return d
	}

	return math.Inf(1)
}

// AssertResult checks the structural properties every traversal result
// must satisfy, whatever the algorithm:
//
//   - ExpandedNodes has no duplicates.
//   - If reachable: Found, Path runs start→end, consecutive cells are
//     linked by Successors, every path cell was expanded, Cost equals the
//     summed step costs.
//   - If unreachable: !Found and Path == [end].
func AssertResult(t testing.TB, g core.Grid, res *core.Result) {
	t.Helper()
	require.NotNil(t, res)

	seen := make(map[core.Cell]bool, len(res.ExpandedNodes))
	for _, c := range res.ExpandedNodes {
		assert.False(t, seen[c], "cell %v expanded twice", c)
		seen[c] = true
	}

	if !Reachable(g) {
		assert.False(t, res.Found)
		assert.Equal(t, []core.Cell{g.End()}, res.Path)
		assert.False(t, seen[g.End()], "unreachable end must not be expanded")

		return
	}

	require.True(t, res.Found, "end is reachable but was not found")
	require.NotEmpty(t, res.Path)
	assert.Equal(t, g.Start(), res.Path[0])
	assert.Equal(t, g.End(), res.Path[len(res.Path)-1])
	for i := 1; i < len(res.Path); i++ {
		assert.Contains(t, g.Successors(res.Path[i-1]), res.Path[i],
			"%v → %v is not a successor step", res.Path[i-1], res.Path[i])
	}
	for _, c := range res.Path {
		assert.True(t, seen[c], "path cell %v missing from ExpandedNodes", c)
	}
	assert.InDelta(t, core.PathCost(g, res.Path), res.Cost, 1e-9)
}
