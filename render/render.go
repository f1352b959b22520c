// Package render draws search results over a grid as plain text, for the
// command-line tool and for debugging.
package render

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/gridpath/core"
	"github.com/katalvlaran/gridpath/gridgraph"
)

// Overlay symbols. Walls and the S/E markers keep their maze symbols.
const (
	SymbolPath     = '*'
	SymbolExpanded = 'o'
)

// ASCII renders g with res overlaid: expanded cells as 'o', path cells as
// '*'. Start and end markers always win. A nil res renders the bare maze.
func ASCII(g *gridgraph.GridGraph, res *core.Result) string {
	if g == nil {
		return ""
	}
	if res == nil {
		return g.String()
	}
	rows := strings.Split(g.String(), "\n")
	canvas := make([][]byte, len(rows))
	for r := range rows {
		canvas[r] = []byte(rows[r])
	}

	paint := func(c core.Cell, sym byte) {
		if !g.InBounds(c) || c == g.Start() || c == g.End() {
			return
		}
		canvas[c.Row][c.Col] = sym
	}
	for _, c := range res.ExpandedNodes {
		paint(c, SymbolExpanded)
	}
	if res.Found {
		for _, c := range res.Path {
			paint(c, SymbolPath)
		}
	}

	var sb strings.Builder
	for r, line := range canvas {
		if r > 0 {
			sb.WriteByte('\n')
		}
		sb.Write(line)
	}

	return sb.String()
}

// Summary returns a one-line description of res.
func Summary(res *core.Result) string {
	if res == nil {
		return "no result"
	}
	if !res.Found {
		return fmt.Sprintf("not found: expanded=%d", len(res.ExpandedNodes))
	}

	return fmt.Sprintf("found: hops=%d cost=%.3f expanded=%d",
		res.Hops(), res.Cost, len(res.ExpandedNodes))
}
