// Package core holds the vocabulary shared by the gridpath traversals.
//
// What:
//
//   - Cell: a comparable (Row, Col) value; identity is the coordinate pair.
//   - Grid: the collaborator interface a traversal consumes
//     (Start, End, Successors, Cost).
//   - Result: ExpandedNodes (visited set in insertion order), Path, Found, Cost.
//   - VisitedSet: insertion-ordered set backing ExpandedNodes.
//   - Reconstruct: predecessor-chain walk from the end cell back to start.
//
// Sentinel path:
//
//	When the end cell is never reached, Reconstruct returns [end]. A one-cell
//	Path does not by itself mean start == end; check Result.Found.
//
// Lifecycle:
//
//	Every traversal allocates its own VisitedSet and predecessor map per call.
//	Nothing in this package holds state between calls.
//
// Complexity:
//
//   - VisitedSet.Add / Has: O(1) average.
//   - Reconstruct:          O(len(path)).
package core
