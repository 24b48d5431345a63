// Package flow computes maximum flow and minimum cuts on a *core.Graph with
// the Edmonds–Karp algorithm.
//
// Edge weights are capacities; parallel contributions are already merged by
// core. With FlowOptions.Undirected each edge may carry flow either way, which
// makes Cut.Value the cheapest total weight whose removal separates source
// from sink. That is the least cross-cluster flow any partition keeping the
// two apart can achieve.
//
// Determinism:
//
//	Neighbors are scanned in lexicographic order, so the augmenting sequence
//	and the returned cut are reproducible.
//
// Complexity:
//
//	O(V · E²) time, O(V + E) memory.
//
// Example:
//
//	g := core.NewGraph()
//	_, _ = g.AddEdge("ore", "bar", 3)
//	_, _ = g.AddEdge("bar", "plate", 2)
//	cut, _ := flow.EdmondsKarp(ctx, g, "ore", "plate", nil)
//	// cut.Value == 2, cut.Source == [bar ore]
package flow
