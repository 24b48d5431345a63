package core_test

import (
	"fmt"

	"github.com/katalvlaran/prodgraph/core"
)

// ExampleGraph_AddEdge shows how repeated demand between two items merges.
func ExampleGraph_AddEdge() {
	g := core.NewGraph()

	// Two consumers ask the smelter line for ore.
	_, _ = g.AddEdge("ore", "bar", 10)
	_, _ = g.AddEdge("ore", "bar", 5)

	fmt.Println(g.Vertices(), g.EdgeCount(), g.TotalWeight())

	// Output:
	// [bar ore] 1 15
}
