// Package algorithms is the name-based registry of grid search strategies.
//
// It maps the names used on the command line and over HTTP to the traversal
// packages:
//
//   - "dijkstra" → dijkstra.Dijkstra (cheapest path)
//   - "bfs"      → bfs.BFS          (fewest steps)
//   - "dfs"      → dfs.DFS          (any connecting path)
//
// Every entry shares the SearchFunc signature, so callers select a strategy
// by string and treat the core.Result uniformly.
package algorithms
