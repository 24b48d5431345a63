// Package dfs provides topological sorting of directed graphs.
//
// TopologicalSort computes a linear ordering of vertices such that for every
// directed edge u→v, u appears before v. If the graph contains a cycle,
// ErrCycleDetected is returned.
//
// Complexity:
//
//   - Time:   O(V + E)
//   - Memory: O(V)
package dfs

import (
	"context"
	"fmt"

	"github.com/katalvlaran/prodgraph/core"
)

// TopoOption configures optional behavior for TopologicalSort.
type TopoOption func(*topoOptions)

// topoOptions holds settings for TopologicalSort, currently only cancellation.
type topoOptions struct {
	ctx context.Context
}

// WithCancelContext sets the cancellation context. A nil context is ignored.
func WithCancelContext(ctx context.Context) TopoOption {
	return func(o *topoOptions) {
		if ctx != nil {
			o.ctx = ctx
		}
	}
}

// topoSorter encapsulates state for one topological sort.
type topoSorter struct {
	graph *core.Graph
	opts  topoOptions
	state map[string]int
	order []string
}

// TopologicalSort returns a topological ordering of all vertices in g.
// Vertices are seeded in lexicographic order, so the result is deterministic.
//
// Errors:
//   - ErrGraphNil, ErrCycleDetected, ErrNeighborFetch, ctx.Err().
//   - an error for undirected graphs.
func TopologicalSort(g *core.Graph, options ...TopoOption) ([]string, error) {
	// 1. Validate
	if g == nil {
		return nil, ErrGraphNil
	}
	if !g.Directed() {
		return nil, fmt.Errorf("dfs: TopologicalSort requires directed graph")
	}

	// 2. Options
	opts := topoOptions{ctx: context.Background()}
	for _, opt := range options {
		opt(&opts)
	}

	// 3. Drive DFS from every unvisited vertex
	verts := g.Vertices()
	t := &topoSorter{
		graph: g,
		opts:  opts,
		state: make(map[string]int, len(verts)),
		order: make([]string, 0, len(verts)),
	}
	for _, v := range verts {
		if t.state[v] == White {
			if err := t.visit(v); err != nil {
				return nil, err
			}
		}
	}

	// 4. Reverse post-order
	for i, j := 0, len(t.order)-1; i < j; i, j = i+1, j-1 {
		t.order[i], t.order[j] = t.order[j], t.order[i]
	}

	return t.order, nil
}

// visit performs the post-order DFS step for id.
func (t *topoSorter) visit(id string) error {
	if err := t.opts.ctx.Err(); err != nil {
		return err
	}
	switch t.state[id] {
	case Gray:
		return ErrCycleDetected
	case Black:
		return nil
	}
	t.state[id] = Gray

	nbrs, err := t.graph.NeighborIDs(id)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrNeighborFetch, err)
	}
	for _, nb := range nbrs {
		if err = t.visit(nb); err != nil {
			return err
		}
	}

	t.state[id] = Black
	t.order = append(t.order, id)

	return nil
}
