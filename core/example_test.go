package core_test

import (
	"fmt"

	"github.com/katalvlaran/gridpath/core"
)

// ExampleReconstruct rebuilds a start→end path from a predecessor map.
func ExampleReconstruct() {
	prev := map[core.Cell]core.Cell{
		core.At(0, 1): core.At(0, 0),
		core.At(1, 1): core.At(0, 1),
	}
	fmt.Println(core.Reconstruct(prev, core.At(1, 1)))
	// An unreached end yields the one-cell sentinel path.
	fmt.Println(core.Reconstruct(prev, core.At(4, 4)))
	// Output:
	// [(0,0) (0,1) (1,1)]
	// [(4,4)]
}
