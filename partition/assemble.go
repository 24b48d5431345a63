package partition

import (
	"fmt"

	"github.com/katalvlaran/prodgraph/demand"
)

// Assemble packages g with the final assignment.
//
// An empty assign means no clustering: every node gets a nil Cluster and the
// grouping is empty. Otherwise nodes are grouped by cluster id and
// TotalCrossFlow is recomputed from g's edges and assign.
//
// Errors:
//   - ErrAssignmentMismatch if len(assign) ≠ g.Len().
//   - ErrNegativeCluster if any entry is negative.
//
// Complexity: O(V + E).
func Assemble(g *demand.Graph, assign Assignment) (*Result, error) {
	res := &Result{
		Nodes:    []ResultNode{},
		Edges:    []demand.Edge{},
		Clusters: map[int][]ResultNode{},
	}
	if g == nil {
		if len(assign) > 0 {
			return nil, fmt.Errorf("%w: %d entries for 0 nodes", ErrAssignmentMismatch, len(assign))
		}
		return res, nil
	}

	nodes := g.Nodes()
	if len(assign) > 0 && len(assign) != len(nodes) {
		return nil, fmt.Errorf("%w: %d entries for %d nodes", ErrAssignmentMismatch, len(assign), len(nodes))
	}
	for i, c := range assign {
		if c < 0 {
			return nil, fmt.Errorf("%w: node %d has %d", ErrNegativeCluster, i, c)
		}
	}

	res.Edges = g.Edges()
	res.Nodes = make([]ResultNode, len(nodes))
	for i, n := range nodes {
		rn := ResultNode{Node: n}
		if len(assign) > 0 {
			c := assign[i]
			rn.Cluster = &c
			res.Clusters[c] = append(res.Clusters[c], rn)
		}
		res.Nodes[i] = rn
	}
	if len(assign) == 0 {
		return res, nil
	}

	links := make([]Link, len(res.Edges))
	for i, e := range res.Edges {
		links[i] = Link{Source: g.Index(e.Source), Target: g.Index(e.Target), Value: e.Value}
	}
	res.Stats.TotalCrossFlow = CrossFlow(assign, links)
	res.Stats.Clusters = len(res.Clusters)

	return res, nil
}
