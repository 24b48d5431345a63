package partition

import "github.com/katalvlaran/prodgraph/demand"

// Problem is the index-based view of a flow graph that optimizers consume.
type Problem struct {
	// Items lists item ids; position i is node i.
	Items []string

	// Links are the flow edges by node index.
	Links []Link

	// Colocate and Split are constraint pairs by node index.
	Colocate [][2]int
	Split    [][2]int

	// Dropped lists constraint pairs naming items absent from the graph.
	Dropped []Pair
}

// NewProblem indexes g and resolves constraint pairs to node indices.
// Pairs referring to items outside g, or naming one item twice, are skipped
// and listed in Dropped.
//
// Complexity: O(V + E + C).
func NewProblem(g *demand.Graph, colocate, split []Pair) *Problem {
	p := &Problem{}
	if g == nil {
		p.Dropped = append(p.Dropped, colocate...)
		p.Dropped = append(p.Dropped, split...)
		return p
	}

	nodes := g.Nodes()
	p.Items = make([]string, len(nodes))
	for i, n := range nodes {
		p.Items[i] = n.Item
	}

	edges := g.Edges()
	p.Links = make([]Link, 0, len(edges))
	for _, e := range edges {
		p.Links = append(p.Links, Link{Source: g.Index(e.Source), Target: g.Index(e.Target), Value: e.Value})
	}

	p.Colocate = p.indexPairs(g, colocate)
	p.Split = p.indexPairs(g, split)

	return p
}

// Len returns the node count.
func (p *Problem) Len() int { return len(p.Items) }

func (p *Problem) indexPairs(g *demand.Graph, pairs []Pair) [][2]int {
	out := make([][2]int, 0, len(pairs))
	for _, pr := range pairs {
		a, b := g.Index(pr.A), g.Index(pr.B)
		if a < 0 || b < 0 || a == b {
			p.Dropped = append(p.Dropped, pr)
			continue
		}
		out = append(out, [2]int{a, b})
	}

	return out
}
