package algorithms_test

import (
	"context"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridpath/algorithms"
	"github.com/katalvlaran/gridpath/core"
	"github.com/katalvlaran/gridpath/gridgraph"
	"github.com/katalvlaran/gridpath/internal/gridtest"
)

func TestNames(t *testing.T) {
	assert.Equal(t, []string{"bfs", "dfs", "dijkstra"}, algorithms.Names())
}

func TestLookup_Unknown(t *testing.T) {
	fn, err := algorithms.Lookup("astar")
	assert.Nil(t, fn)
	assert.ErrorIs(t, err, algorithms.ErrUnknownAlgorithm)
	assert.Contains(t, err.Error(), `"astar"`)

	_, err = algorithms.Search(context.Background(), "", gridtest.Open(t, 2, 2, gridgraph.Conn4))
	assert.ErrorIs(t, err, algorithms.ErrUnknownAlgorithm)
}

func TestSearch_CanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	g := gridtest.Open(t, 5, 5, gridgraph.Conn4)
	for _, name := range algorithms.Names() {
		_, err := algorithms.Search(ctx, name, g)
		assert.ErrorIs(t, err, context.Canceled, name)
	}
}

// The scenarios below hold for every registered strategy.

func TestAll_OpenLattice3x3(t *testing.T) {
	g := gridtest.Open(t, 3, 3, gridgraph.Conn4)
	for _, name := range algorithms.Names() {
		t.Run(name, func(t *testing.T) {
			res, err := algorithms.Search(context.Background(), name, g)
			require.NoError(t, err)
			gridtest.AssertResult(t, g, res)
			assert.GreaterOrEqual(t, res.Hops(), 4)
			if name != algorithms.DFS {
				assert.Len(t, res.Path, 5)
			}
		})
	}
}

func TestAll_StartIsEnd(t *testing.T) {
	s := core.At(2, 2)
	g := &gridtest.MapGrid{
		StartCell: s,
		EndCell:   s,
		Adj:       map[core.Cell][]core.Cell{s: {core.At(2, 3)}},
	}
	for _, name := range algorithms.Names() {
		res, err := algorithms.Search(context.Background(), name, g)
		require.NoError(t, err, name)
		assert.Equal(t, []core.Cell{s}, res.Path, name)
		assert.Equal(t, s, res.ExpandedNodes[0], name)
		assert.True(t, res.Found, name)
	}
}

func TestAll_IsolatedEnd(t *testing.T) {
	g := gridtest.MustParse(t, "S.#\n..#\n##E", gridgraph.Conn4)
	for _, name := range algorithms.Names() {
		res, err := algorithms.Search(context.Background(), name, g)
		require.NoError(t, err, name)
		assert.Equal(t, []core.Cell{core.At(2, 2)}, res.Path, name)
		assert.ElementsMatch(t, []core.Cell{
			core.At(0, 0), core.At(0, 1), core.At(1, 0), core.At(1, 1),
		}, res.ExpandedNodes, name)
	}
}

// Dijkstra trades a short diagonal route for a cheaper orthogonal one;
// BFS keeps the route with the fewest steps.
func TestAll_WeightedDiagonal(t *testing.T) {
	opts := gridgraph.DefaultGridOptions()
	opts.Conn = gridgraph.Conn8
	opts.DiagonalCost = 5
	g, err := gridgraph.Parse("S..\n...\n..E", opts)
	require.NoError(t, err)

	dj, err := algorithms.Search(context.Background(), algorithms.Dijkstra, g)
	require.NoError(t, err)
	bf, err := algorithms.Search(context.Background(), algorithms.BFS, g)
	require.NoError(t, err)

	assert.InDelta(t, 4.0, dj.Cost, 1e-9)
	assert.Equal(t, 4, dj.Hops())
	assert.InDelta(t, 10.0, bf.Cost, 1e-9)
	assert.Equal(t, 2, bf.Hops())
}

// On random mazes all strategies agree on reachability, Dijkstra is never
// costlier than the others and BFS never longer.
func TestAll_RandomMazesAgree(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	for i := 0; i < 30; i++ {
		n := 4 + rng.Intn(6)
		values := make([][]int, n)
		for r := range values {
			values[r] = make([]int, n)
			for c := range values[r] {
				if rng.Intn(10) >= 3 {
					values[r][c] = 1
				}
			}
		}
		values[0][0], values[n-1][n-1] = 1, 1
		g, err := gridgraph.From2D(values, gridgraph.Conn8)
		require.NoError(t, err)

		results := map[string]*core.Result{}
		for _, name := range algorithms.Names() {
			res, err := algorithms.Search(context.Background(), name, g)
			require.NoError(t, err)
			gridtest.AssertResult(t, g, res)
			results[name] = res
		}

		dj, bf, df := results[algorithms.Dijkstra], results[algorithms.BFS], results[algorithms.DFS]
		assert.Equal(t, dj.Found, bf.Found)
		assert.Equal(t, dj.Found, df.Found)
		if !dj.Found {
			continue
		}
		assert.LessOrEqual(t, dj.Cost, bf.Cost+1e-9)
		assert.LessOrEqual(t, dj.Cost, df.Cost+1e-9)
		assert.LessOrEqual(t, bf.Hops(), df.Hops())
	}
}
