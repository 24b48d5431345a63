package demand_test

import (
	"fmt"

	"github.com/katalvlaran/prodgraph/catalog"
	"github.com/katalvlaran/prodgraph/demand"
)

// ExampleResolve resolves ten bars per minute from a single smelter recipe.
func ExampleResolve() {
	cat := &catalog.Catalog{Buildings: []catalog.Building{
		{ID: "smelter", Name: "Smelter", Recipes: []catalog.Recipe{
			{Output: catalog.ItemRate{Item: "bar", Rate: 1}, Inputs: []catalog.ItemRate{{Item: "ore", Rate: 1}}},
		}},
	}}
	g, err := demand.Resolve(cat, []demand.Target{{Item: "bar", Rate: 10}})
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	for _, n := range g.Nodes() {
		fmt.Printf("%s %s %.0f\n", n.Item, n.Building, n.Required)
	}
	for _, e := range g.Edges() {
		fmt.Printf("%s -> %s %.0f\n", e.Source, e.Target, e.Value)
	}
	// Output:
	// bar smelter 10
	// ore raw 10
	// ore -> bar 10
}
