package flow

import (
	"sort"

	"github.com/katalvlaran/prodgraph/core"
)

// residual holds capacities capMap[u][v] plus a sorted neighbor list per
// vertex covering both directions, so reverse residual arcs are reachable.
type residual struct {
	capMap map[string]map[string]float64
	adj    map[string][]string
}

// buildResidual aggregates the edge weights of g into a capacity map.
// Self-loops are ignored. Under Undirected each edge adds its weight to both
// u→v and v→u.
//
// Complexity: O(V + E log d_max).
func buildResidual(g *core.Graph, opts FlowOptions) *residual {
	r := &residual{
		capMap: make(map[string]map[string]float64),
		adj:    make(map[string][]string),
	}
	add := func(u, v string, c float64) {
		if r.capMap[u] == nil {
			r.capMap[u] = make(map[string]float64)
		}
		r.capMap[u][v] += c
	}
	for _, e := range g.Edges() {
		if e.From == e.To {
			continue
		}
		add(e.From, e.To, e.Weight)
		add(e.To, e.From, 0)
		if opts.Undirected {
			add(e.To, e.From, e.Weight)
		}
	}
	for u, inner := range r.capMap {
		nbrs := make([]string, 0, len(inner))
		for v := range inner {
			nbrs = append(nbrs, v)
		}
		sort.Strings(nbrs)
		r.adj[u] = nbrs
	}

	return r
}
