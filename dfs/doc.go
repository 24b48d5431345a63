// Package dfs implements depth-first cycle detection and topological sort on
// a core.Graph.
//
// What:
//
//   - DetectCycles: enumerates the simple cycles of a directed graph using
//     vertex coloring (White, Gray, Black) and canonical rotation dedup.
//   - TopologicalSort: linear order of a directed acyclic graph, returning
//     ErrCycleDetected if a cycle exists.
//
// Why:
//
//   - Recipe catalogs are dependency graphs; a production loop (A needs B
//     which needs A) makes demand resolution diverge, so catalogs are checked
//     with DetectCycles before use.
//   - Resolved flow graphs are ordered raw-materials-first with TopologicalSort.
//
// Complexity:
//
//   - DetectCycles:    Time O(V+E + C·L), Memory O(V+L_max)
//   - TopologicalSort: Time O(V+E), Memory O(V)
//
// Errors:
//
//   - ErrGraphNil             graph pointer is nil
//   - ErrCycleDetected        cycle discovered by TopologicalSort
//   - ErrNeighborFetch        adjacency lookup failed
//   - context.Canceled        traversal canceled via context
package dfs
