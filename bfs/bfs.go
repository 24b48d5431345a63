package bfs

import (
	"context"
	"fmt"
	"sort"

	"github.com/katalvlaran/prodgraph/core"
)

// queueItem pairs a vertex ID with its BFS depth and its parent's ID.
type queueItem struct {
	id     string
	depth  int
	parent string // empty for root
}

// walker encapsulates mutable BFS state.
type walker struct {
	next    func(id string) ([]string, error)
	opts    Options
	ctx     context.Context
	queue   []queueItem
	visited map[string]bool
	res     *Result
}

// BFS runs breadth-first search on g starting from startID. Neighbors are
// expanded in lexicographic order, so Order is deterministic.
//
// Errors: ErrGraphNil, ErrStartVertexNotFound, ErrOptionViolation, context
// errors, or a wrapped OnVisit error.
//
// Complexity: O(V + E), plus O(E) once to index predecessors under WithReverse.
func BFS(g *core.Graph, startID string, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if !g.HasVertex(startID) {
		return nil, ErrStartVertexNotFound
	}

	n := g.VertexCount()
	w := &walker{
		next:    g.NeighborIDs,
		opts:    o,
		ctx:     o.Ctx,
		queue:   make([]queueItem, 0, n),
		visited: make(map[string]bool, n),
		res: &Result{
			Order:  make([]string, 0, n),
			Depth:  make(map[string]int, n),
			Parent: make(map[string]string, n),
		},
	}
	if o.Reverse {
		w.next = predecessors(g)
	}

	w.enqueue(startID, 0, "")

	return w.res, w.loop()
}

// predecessors indexes incoming edges once and serves them sorted.
func predecessors(g *core.Graph) func(string) ([]string, error) {
	in := make(map[string][]string)
	for _, e := range g.Edges() {
		in[e.To] = append(in[e.To], e.From)
	}
	for _, ids := range in {
		sort.Strings(ids)
	}

	return func(id string) ([]string, error) { return in[id], nil }
}

func (w *walker) enqueue(id string, d int, parent string) {
	w.visited[id] = true
	w.res.Depth[id] = d
	if parent != "" {
		w.res.Parent[id] = parent
	}
	w.queue = append(w.queue, queueItem{id: id, depth: d, parent: parent})
}

// loop processes the queue until empty, error, or cancellation.
func (w *walker) loop() error {
	for len(w.queue) > 0 {
		select {
		case <-w.ctx.Done():
			return w.ctx.Err()
		default:
		}

		item := w.queue[0]
		w.queue = w.queue[1:]

		w.res.Order = append(w.res.Order, item.id)
		if err := w.opts.OnVisit(item.id, item.depth); err != nil {
			return fmt.Errorf("bfs: OnVisit error at %q: %w", item.id, err)
		}

		if w.opts.MaxDepth > 0 && item.depth >= w.opts.MaxDepth {
			continue
		}
		nbrs, err := w.next(item.id)
		if err != nil {
			return fmt.Errorf("bfs: neighbors of %q: %w", item.id, err)
		}
		for _, nbr := range nbrs {
			if !w.visited[nbr] {
				w.enqueue(nbr, item.depth+1, item.id)
			}
		}
	}

	return nil
}
