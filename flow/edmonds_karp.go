package flow

import (
	"context"
	"math"
	"sort"

	"github.com/katalvlaran/prodgraph/core"
)

// EdmondsKarp computes the maximum flow from source to sink using shortest
// augmenting paths, and returns it together with the source side of a
// minimum cut.
//
// Steps:
//  1. Validate endpoints and normalize options.
//  2. Build the residual capacity map (parallel capacities summed).
//  3. Repeatedly BFS for an augmenting path; push its bottleneck.
//  4. When no path remains, the vertices reached by the last BFS form the
//     source side of the cut.
//
// Errors: ErrGraphNil, ErrSourceNotFound, ErrSinkNotFound, ErrSameEndpoints,
// or ctx.Err() on cancellation.
//
// Complexity: O(V · E²).
// Memory:     O(V + E).
func EdmondsKarp(ctx context.Context, g *core.Graph, source, sink string, opts *FlowOptions) (Cut, error) {
	// 1) Validate
	if g == nil {
		return Cut{}, ErrGraphNil
	}
	if !g.HasVertex(source) {
		return Cut{}, ErrSourceNotFound
	}
	if !g.HasVertex(sink) {
		return Cut{}, ErrSinkNotFound
	}
	if source == sink {
		return Cut{}, ErrSameEndpoints
	}
	o := DefaultOptions()
	if opts != nil {
		o = *opts
	}
	o.normalize()

	// 2) Residual network
	r := buildResidual(g, o)

	// 3) Augment
	var total float64
	for {
		if err := ctx.Err(); err != nil {
			return Cut{}, err
		}
		parent, bottle := r.augmentingPath(source, sink, o.Epsilon)
		if bottle <= o.Epsilon {
			// 4) Cut side
			side := make([]string, 0, len(parent))
			for v := range parent {
				side = append(side, v)
			}
			sort.Strings(side)

			return Cut{Value: total, Source: side}, nil
		}
		total += bottle
		for v := sink; v != source; {
			u := parent[v]
			r.capMap[u][v] -= bottle
			r.capMap[v][u] += bottle
			v = u
		}
	}
}

// augmentingPath runs BFS over arcs with capacity > eps. It returns the BFS
// parent map (keys are every reached vertex, the source maps to itself) and
// the bottleneck to sink, or 0 if sink is unreachable.
func (r *residual) augmentingPath(source, sink string, eps float64) (map[string]string, float64) {
	parent := map[string]string{source: source}
	bottle := map[string]float64{source: math.Inf(1)}
	queue := []string{source}
	for len(queue) > 0 {
		u := queue[0]
		queue = queue[1:]
		for _, v := range r.adj[u] {
			if _, seen := parent[v]; seen {
				continue
			}
			c := r.capMap[u][v]
			if c <= eps {
				continue
			}
			parent[v] = u
			bottle[v] = math.Min(bottle[u], c)
			if v == sink {
				return parent, bottle[v]
			}
			queue = append(queue, v)
		}
	}

	return parent, 0
}
