package gridgraph

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/gridpath/core"
)

// Maze text symbols understood by Parse.
const (
	SymbolWall  = '#'
	SymbolOpen  = '.'
	SymbolStart = 'S'
	SymbolEnd   = 'E'
)

// Parse builds a GridGraph from maze text, one row per line:
//
//	'#' or '0'  wall
//	'.'         open cell (terrain value 1)
//	'1'…'9'     open cell with that terrain value
//	'S'         start (open, value 1)
//	'E'         end   (open, value 1)
//
// Leading and trailing blank lines are ignored and "\r\n" line endings are
// accepted. opts.Start and opts.End are replaced by the markers; every other
// option is honored. LandThreshold is forced to 1 so that the symbol table
// above keeps its meaning.
func Parse(text string, opts GridOptions) (*GridGraph, error) {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	lines := strings.Split(strings.Trim(text, "\n"), "\n")
	if len(lines) == 0 || lines[0] == "" {
		return nil, ErrEmptyGrid
	}

	var (
		values           = make([][]int, len(lines))
		start, end       core.Cell
		hasStart, hasEnd bool
	)
	for r, line := range lines {
		// columns count runes, not bytes
		symbols := []rune(line)
		row := make([]int, 0, len(symbols))
		for c, ch := range symbols {
			switch {
			case ch == SymbolWall || ch == '0':
				row = append(row, 0)
			case ch == SymbolOpen:
				row = append(row, 1)
			case ch >= '1' && ch <= '9':
				row = append(row, int(ch-'0'))
			case ch == SymbolStart:
				if hasStart {
					return nil, fmt.Errorf("%w: second 'S' at %v", ErrDuplicateMarker, core.At(r, c))
				}
				start, hasStart = core.At(r, c), true
				row = append(row, 1)
			case ch == SymbolEnd:
				if hasEnd {
					return nil, fmt.Errorf("%w: second 'E' at %v", ErrDuplicateMarker, core.At(r, c))
				}
				end, hasEnd = core.At(r, c), true
				row = append(row, 1)
			default:
				return nil, fmt.Errorf("%w: %q at %v", ErrBadSymbol, ch, core.At(r, c))
			}
		}
		values[r] = row
	}
	if !hasStart {
		return nil, ErrMissingStart
	}
	if !hasEnd {
		return nil, ErrMissingEnd
	}
	opts.Start, opts.End = start, end
	opts.LandThreshold = 1

	return NewGridGraph(values, opts)
}

// String renders the grid back to maze text (walls '#', open '.' or the
// terrain digit when above 1, 'S' and 'E' markers).
func (gg *GridGraph) String() string {
	var sb strings.Builder
	for r := 0; r < gg.Rows; r++ {
		if r > 0 {
			sb.WriteByte('\n')
		}
		for c := 0; c < gg.Cols; c++ {
			sb.WriteByte(gg.symbol(core.At(r, c)))
		}
	}

	return sb.String()
}

// symbol returns the maze character for a single cell.
func (gg *GridGraph) symbol(c core.Cell) byte {
	switch {
	case c == gg.start:
		return SymbolStart
	case c == gg.end:
		return SymbolEnd
	case gg.IsWall(c):
		return SymbolWall
	}
	if v := gg.cells[c.Row][c.Col]; v > 1 && v <= 9 {
		return byte('0' + v)
	}

	return SymbolOpen
}
