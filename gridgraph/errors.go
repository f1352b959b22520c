package gridgraph

import "errors"

var (
	// ErrEmptyGrid indicates the input 2D slice is empty.
	ErrEmptyGrid = errors.New("gridgraph: input grid must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("gridgraph: all rows must have the same length")
	// ErrOutOfBounds indicates a start, end, or query cell lies outside the grid.
	ErrOutOfBounds = errors.New("gridgraph: cell out of bounds")
	// ErrBlockedEndpoint indicates the start or end cell is a wall.
	ErrBlockedEndpoint = errors.New("gridgraph: start or end cell is a wall")
	// ErrBadCost indicates a non-positive orthogonal or diagonal step cost.
	ErrBadCost = errors.New("gridgraph: step cost must be positive")
	// ErrMissingStart indicates a maze text without an 'S' marker.
	ErrMissingStart = errors.New("gridgraph: maze has no start marker 'S'")
	// ErrMissingEnd indicates a maze text without an 'E' marker.
	ErrMissingEnd = errors.New("gridgraph: maze has no end marker 'E'")
	// ErrDuplicateMarker indicates more than one 'S' or 'E' marker.
	ErrDuplicateMarker = errors.New("gridgraph: maze has more than one start or end marker")
	// ErrBadSymbol indicates an unknown character in maze text.
	ErrBadSymbol = errors.New("gridgraph: unknown maze symbol")
)
