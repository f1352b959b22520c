// Package gridpath finds paths between a start and an end cell on a 2-D grid
// and reports every cell the search examined on the way.
//
// 🚀 What is gridpath?
//
//	A small, dependency-light toolkit around three classic traversals:
//		• Dijkstra: cheapest path under direction-dependent step costs
//		• BFS: fewest-steps path
//		• DFS: any connecting path, explored depth-first
//	Each returns a core.Result: the visited set in insertion order (for
//	step-by-step visualization) and the start→end path.
//
// Under the hood:
//
//	core/        - Cell, Grid, Result, visited set & path reconstruction
//	dijkstra/    - uniform-cost search with a lazy-deletion binary heap
//	bfs/         - breadth-first search, visited-at-enqueue
//	dfs/         - depth-first search on an explicit stack
//	algorithms/  - name → search registry ("dijkstra", "bfs", "dfs")
//	gridgraph/   - concrete terrain grid, maze text parser, islands & breach
//	render/      - ASCII overlay of expanded cells and path
//	cmd/gridpath - CLI (search) and HTTP service (serve)
//
// Quick ASCII example ("S" start, "E" end, "#" wall):
//
//	S.#        So#
//	.##   →    *##
//	..E        **E
//
//	go get github.com/katalvlaran/gridpath
package gridpath
