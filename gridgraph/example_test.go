package gridgraph_test

import (
	"fmt"

	"github.com/katalvlaran/gridpath/gridgraph"
)

////////////////////////////////////////////////////////////////////////////////
// Example: Parse
////////////////////////////////////////////////////////////////////////////////

// ExampleParse reads an ASCII maze and lists the start's open neighbors.
func ExampleParse() {
	gg, err := gridgraph.Parse("S.#\n.#.\n..E", gridgraph.DefaultGridOptions())
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println("size:", gg.Rows, "x", gg.Cols)
	fmt.Println("start:", gg.Start(), "end:", gg.End())
	fmt.Println("successors of start:", gg.Successors(gg.Start()))
	// Output:
	// size: 3 x 3
	// start: (0,0) end: (2,2)
	// successors of start: [(0,1) (1,0)]
}

////////////////////////////////////////////////////////////////////////////////
// Example: Breach
////////////////////////////////////////////////////////////////////////////////

// ExampleGridGraph_Breach counts the walls separating start from end.
//
//	S # .
//	# # .
//	. # E
//
// The cheapest crossing opens one wall: (0,0)→(0,1)→(0,2)→(1,2)→(2,2).
func ExampleGridGraph_Breach() {
	gg, _ := gridgraph.Parse("S#.\n##.\n.#E", gridgraph.DefaultGridOptions())
	path, walls, _ := gg.Breach(gg.Start(), gg.End())
	fmt.Printf("walls to open: %d\n", walls)
	fmt.Println(path)
	// Output:
	// walls to open: 1
	// [(0,0) (0,1) (0,2) (1,2) (2,2)]
}
