package gridgraph_test

import (
	"errors"
	"math"
	"reflect"
	"testing"

	"github.com/katalvlaran/gridpath/core"
	"github.com/katalvlaran/gridpath/gridgraph"
)

//----------------------------------------------------------------------------//
// NewGridGraph and InBounds Tests
//----------------------------------------------------------------------------//

// TestNewGridGraph_Errors verifies that NewGridGraph rejects malformed inputs.
func TestNewGridGraph_Errors(t *testing.T) {
	def := gridgraph.DefaultGridOptions()
	zeroCost := def
	zeroCost.DiagonalCost = 0
	outside := def
	outside.Start = core.At(5, 5)
	walled := def
	walled.Start = core.At(0, 1)

	cases := []struct {
		name string
		grid [][]int
		opts gridgraph.GridOptions
		err  error
	}{
		{"EmptyRows", [][]int{}, def, gridgraph.ErrEmptyGrid},
		{"EmptyCols", [][]int{{}}, def, gridgraph.ErrEmptyGrid},
		{"NonRectangular", [][]int{{1, 2}, {3}}, def, gridgraph.ErrNonRectangular},
		{"BadCost", [][]int{{1, 1}}, zeroCost, gridgraph.ErrBadCost},
		{"StartOutside", [][]int{{1, 1}}, outside, gridgraph.ErrOutOfBounds},
		{"StartOnWall", [][]int{{1, 0, 1}}, walled, gridgraph.ErrBlockedEndpoint},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := gridgraph.NewGridGraph(tc.grid, tc.opts)
			if !errors.Is(err, tc.err) {
				t.Errorf("NewGridGraph(%v) error = %v; want %v", tc.grid, err, tc.err)
			}
		})
	}
}

// TestNewGridGraph_DeepCopy ensures later mutation of the input has no effect.
func TestNewGridGraph_DeepCopy(t *testing.T) {
	in := [][]int{{1, 1}, {1, 1}}
	gg, err := gridgraph.From2D(in, gridgraph.Conn4)
	if err != nil {
		t.Fatal(err)
	}
	in[0][1] = 0
	if gg.IsWall(core.At(0, 1)) {
		t.Error("mutating the input leaked into the GridGraph")
	}
}

// TestEndDefaultsToCorner checks that the Corner placeholder resolves to bottom-right.
func TestEndDefaultsToCorner(t *testing.T) {
	gg, err := gridgraph.From2D([][]int{{1, 1, 1}, {1, 1, 1}}, gridgraph.Conn4)
	if err != nil {
		t.Fatal(err)
	}
	if got, want := gg.End(), core.At(1, 2); got != want {
		t.Errorf("End() = %v; want %v", got, want)
	}
	if got, want := gg.Start(), core.At(0, 0); got != want {
		t.Errorf("Start() = %v; want %v", got, want)
	}
}

// TestInBoundsAndWalls checks InBounds and IsWall on a 2×3 grid.
func TestInBoundsAndWalls(t *testing.T) {
	gg, _ := gridgraph.From2D([][]int{
		{1, 0, 1},
		{1, 1, 1},
	}, gridgraph.Conn4)

	if !gg.InBounds(core.At(1, 2)) || gg.InBounds(core.At(2, 0)) || gg.InBounds(core.At(0, -1)) {
		t.Error("InBounds mismatch")
	}
	if !gg.IsWall(core.At(0, 1)) {
		t.Error("(0,1) should be a wall")
	}
	if !gg.IsWall(core.At(-1, 0)) {
		t.Error("out-of-bounds cells count as walls")
	}
	if v, err := gg.Value(core.At(1, 1)); err != nil || v != 1 {
		t.Errorf("Value(1,1) = %d, %v; want 1, nil", v, err)
	}
	if _, err := gg.Value(core.At(9, 9)); !errors.Is(err, gridgraph.ErrOutOfBounds) {
		t.Errorf("Value out of bounds: got %v", err)
	}
	if got := gg.OpenCells(); got != 5 {
		t.Errorf("OpenCells() = %d; want 5", got)
	}
}

//----------------------------------------------------------------------------//
// core.Grid contract
//----------------------------------------------------------------------------//

// TestSuccessors_Order4 verifies N, E, S, W order and wall filtering.
func TestSuccessors_Order4(t *testing.T) {
	gg, _ := gridgraph.From2D([][]int{
		{1, 1, 1},
		{0, 1, 1},
		{1, 1, 1},
	}, gridgraph.Conn4)

	got := gg.Successors(core.At(1, 1))
	want := []core.Cell{core.At(0, 1), core.At(1, 2), core.At(2, 1)} // W is a wall
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Successors(1,1) = %v; want %v", got, want)
	}
}

// TestSuccessors_Order8 verifies N, NE, E, SE, S, SW, W, NW order at a corner.
func TestSuccessors_Order8(t *testing.T) {
	gg, _ := gridgraph.From2D([][]int{
		{1, 1},
		{1, 1},
	}, gridgraph.Conn8)

	got := gg.Successors(core.At(0, 0))
	want := []core.Cell{core.At(0, 1), core.At(1, 1), core.At(1, 0)}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Successors(0,0) = %v; want %v", got, want)
	}
}

// TestCost distinguishes orthogonal and diagonal steps.
func TestCost(t *testing.T) {
	opts := gridgraph.DefaultGridOptions()
	opts.Conn = gridgraph.Conn8
	gg, err := gridgraph.NewGridGraph([][]int{{1, 1}, {1, 1}}, opts)
	if err != nil {
		t.Fatal(err)
	}
	if got := gg.Cost(0, 1); got != 1 {
		t.Errorf("Cost(0,1) = %g; want 1", got)
	}
	if got := gg.Cost(-1, 1); math.Abs(got-math.Sqrt2) > 1e-12 {
		t.Errorf("Cost(-1,1) = %g; want √2", got)
	}
}

// TestCoordinateRoundTrip checks row-major index conversion.
func TestCoordinateRoundTrip(t *testing.T) {
	gg, _ := gridgraph.From2D([][]int{{1, 1, 1}, {1, 1, 1}}, gridgraph.Conn4)
	if got := gg.Coordinate(4); got != core.At(1, 1) {
		t.Errorf("Coordinate(4) = %v; want (1,1)", got)
	}
}
