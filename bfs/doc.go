// Package bfs provides breadth-first search over a core.Graph, returning
// hop distances, parent links, and visit order.
//
// What
//
//   - Explore vertices in non-decreasing distance (edge count) from a start vertex.
//   - Result carries Order, Depth and Parent; PathTo rebuilds a fewest-hop path.
//   - WithReverse follows edges head to tail. On a production flow graph
//     that turns "what does this item feed" into "what does this item need".
//   - WithMaxDepth limits the frontier; WithOnVisit may abort the walk.
//
// Determinism
//
//	Neighbors are expanded in lexicographic order in both directions, so the
//	visit sequence is reproducible.
//
// Complexity
//
//	O(V + E) time and O(V) memory.
package bfs
