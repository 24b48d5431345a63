package partition

import (
	"context"
	"fmt"

	"github.com/katalvlaran/prodgraph/demand"
	"github.com/katalvlaran/prodgraph/flow"
)

// CrossFlowBound returns the largest undirected minimum cut between the two
// items of any split pair. Pairs naming items outside g, or an item twice,
// are ignored. Without usable pairs the bound is 0.
//
// Complexity: O(S · V · E²) for S split pairs.
func CrossFlowBound(ctx context.Context, g *demand.Graph, split []Pair) (float64, error) {
	if g == nil {
		return 0, nil
	}
	opts := &flow.FlowOptions{Undirected: true}
	var bound float64
	for _, pr := range split {
		if pr.A == pr.B || g.Index(pr.A) < 0 || g.Index(pr.B) < 0 {
			continue
		}
		cut, err := flow.EdmondsKarp(ctx, g.Flow(), pr.A, pr.B, opts)
		if err != nil {
			return 0, fmt.Errorf("partition: cut %q/%q: %w", pr.A, pr.B, err)
		}
		if cut.Value > bound {
			bound = cut.Value
		}
	}

	return bound, nil
}
