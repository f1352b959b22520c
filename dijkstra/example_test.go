// Package dijkstra_test provides examples demonstrating how to use Dijkstra.
// Each example is runnable via “go test -run Example”.
package dijkstra_test

import (
	"fmt"

	"github.com/katalvlaran/gridpath/dijkstra"
	"github.com/katalvlaran/gridpath/gridgraph"
)

// ExampleDijkstra finds the cheapest route through a small maze.
func ExampleDijkstra() {
	g, err := gridgraph.Parse(
		"S.#\n"+
			".##\n"+
			"..E",
		gridgraph.DefaultGridOptions(),
	)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	res, err := dijkstra.Dijkstra(g)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println("path:", res.Path)
	fmt.Printf("cost: %.0f, expanded: %d\n", res.Cost, len(res.ExpandedNodes))
	// Output:
	// path: [(0,0) (1,0) (2,0) (2,1) (2,2)]
	// cost: 4, expanded: 6
}

// ExampleDijkstra_diagonal shows direction-dependent step costs under Conn8.
func ExampleDijkstra_diagonal() {
	opts := gridgraph.DefaultGridOptions()
	opts.Conn = gridgraph.Conn8
	opts.DiagonalCost = 1.5
	g, _ := gridgraph.Parse("S..\n...\n..E", opts)

	res, _ := dijkstra.Dijkstra(g)
	fmt.Println(res.Path, res.Cost)
	// Output: [(0,0) (1,1) (2,2)] 3
}
