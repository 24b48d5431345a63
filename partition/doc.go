// Package partition holds what the clustering optimizers share: the
// index-based problem view of a flow graph, the cross-cluster transport
// score, a deterministic random source, and assembly of the final result.
//
// Assignments are index-aligned with demand.Graph.Nodes(): assign[i] is the
// cluster id of node i, in [0, k).
//
// Cross-cluster transport cost:
//
//	CrossFlow(a, L) = Σ { l.Value : l ∈ L, a[l.Source] ≠ a[l.Target] }
//
// CrossFlow is pure; kmeans, genetic and Assemble all call the same function
// so the score a search optimizes is the score the result reports.
package partition
