// Package core provides a thread-safe in-memory Graph with accumulating,
// float-weighted edges, used as the owned table behind every production
// flow graph.
//
// The Graph G = (V,E) supports:
//
//   - Directed (default) vs. undirected edges (WithDirected)
//   - Self-loops (WithLoops)
//   - One edge per endpoint pair: AddEdge on an existing pair sums the new
//     weight into the stored edge, so repeated demand contributions between
//     the same two items merge into a single edge
//   - Constant-time edge lookups via adjacencyList[from][to] = edgeID
//
// Determinism:
//
//   - Vertices() is sorted lexicographically.
//   - Edges() is sorted by creation order ("e1", "e2", ...).
//   - Neighbors(id) is sorted by creation order.
//
// Concurrency:
//
//	muVert guards the vertex catalog, muEdgeAdj guards edges and adjacency.
//	Locks are always taken in that order.
//
// Example:
//
//	g := core.NewGraph()
//	_, _ = g.AddEdge("ore", "bar", 10)
//	_, _ = g.AddEdge("ore", "bar", 5) // merged: weight 15
package core
