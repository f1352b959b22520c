package render_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridpath/bfs"
	"github.com/katalvlaran/gridpath/core"
	"github.com/katalvlaran/gridpath/gridgraph"
	"github.com/katalvlaran/gridpath/render"
)

func TestASCII(t *testing.T) {
	g, err := gridgraph.Parse("S.#\n.##\n..E", gridgraph.DefaultGridOptions())
	require.NoError(t, err)
	res, err := bfs.BFS(g)
	require.NoError(t, err)

	want := strings.Join([]string{
		"So#",
		"*##",
		"**E",
	}, "\n")
	assert.Equal(t, want, render.ASCII(g, res))
}

func TestASCII_NotFound(t *testing.T) {
	g, err := gridgraph.Parse("S.#\n###\n..E", gridgraph.DefaultGridOptions())
	require.NoError(t, err)
	res, err := bfs.BFS(g)
	require.NoError(t, err)

	// the unreached end is not painted and no path is drawn
	assert.Equal(t, "So#\n###\n..E", render.ASCII(g, res))
}

func TestASCII_NilInputs(t *testing.T) {
	g, err := gridgraph.Parse("S.E", gridgraph.DefaultGridOptions())
	require.NoError(t, err)

	assert.Equal(t, "", render.ASCII(nil, &core.Result{}))
	assert.Equal(t, "S.E", render.ASCII(g, nil))

	// out-of-bounds cells from a foreign result are ignored
	stray := &core.Result{ExpandedNodes: []core.Cell{core.At(5, 5), core.At(0, 1)}}
	assert.Equal(t, "SoE", render.ASCII(g, stray))
}

func TestSummary(t *testing.T) {
	assert.Equal(t, "no result", render.Summary(nil))
	assert.Equal(t, "not found: expanded=3", render.Summary(&core.Result{
		ExpandedNodes: make([]core.Cell, 3),
		Path:          []core.Cell{core.At(1, 1)},
	}))
	assert.Equal(t, "found: hops=2 cost=2.414 expanded=4", render.Summary(&core.Result{
		ExpandedNodes: make([]core.Cell, 4),
		Path:          []core.Cell{core.At(0, 0), core.At(0, 1), core.At(1, 2)},
		Found:         true,
		Cost:          2.41421356,
	}))
}
