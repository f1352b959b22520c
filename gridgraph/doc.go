// Package gridgraph treats a 2D grid of terrain values as a core.Grid,
// ready to be searched by the bfs, dfs, and dijkstra packages.
//
// What:
//
//   - GridGraph wraps a rectangular [][]int grid with a tunable LandThreshold.
//   - Cells with value < LandThreshold are walls; the rest are open terrain.
//   - Successors yields open neighbors in a fixed N, NE, E, SE, S, SW, W, NW
//     order (diagonals only under Conn8), so DFS results are reproducible.
//   - Cost distinguishes orthogonal from diagonal steps.
//   - Parse reads ASCII mazes ('#', '.', 'S', 'E', digits).
//   - ConnectedComponents / Reachable report open regions.
//   - Breach finds the fewest walls separating two cells (0-1 BFS).
//
// Why:
//
//   - Game maps and path visualizers: walls, start/end markers, weighted diagonals.
//   - Diagnostics: when a search reports the end unreachable, Breach tells how
//     many walls stand in the way.
//
// Complexity:
//
//   - NewGridGraph / Parse:  O(R×C) time and memory.
//   - Successors:            O(d), d = 4 or 8.
//   - ConnectedComponents:   O(R×C×d), Memory: O(R×C).
//   - Breach:                O(R×C×d), Memory: O(R×C).
//
// Errors:
//
//   - ErrEmptyGrid, ErrNonRectangular: malformed input matrix.
//   - ErrOutOfBounds, ErrBlockedEndpoint: bad start/end cells.
//   - ErrBadCost: non-positive step costs.
//   - ErrMissingStart, ErrMissingEnd, ErrDuplicateMarker, ErrBadSymbol: maze text.
package gridgraph
