package demand

import (
	"fmt"
	"math"

	"github.com/katalvlaran/prodgraph/catalog"
)

// Option customises Resolve.
type Option func(*Options)

// Options holds resolver parameters.
type Options struct {
	// MaxDepth bounds the resolution stack; 0 means unlimited.
	MaxDepth int
}

// DefaultOptions returns unlimited depth.
func DefaultOptions() Options { return Options{} }

// WithMaxDepth fails resolution with ErrDepthExceeded past limit levels.
// Non-positive limits mean unlimited.
func WithMaxDepth(limit int) Option {
	return func(o *Options) {
		if limit > 0 {
			o.MaxDepth = limit
		}
	}
}

// resolver carries the state of one Resolve call.
type resolver struct {
	cat   *catalog.Catalog
	opts  Options
	graph *Graph
	stack []string
	open  map[string]bool // items currently on the stack
}

// Resolve propagates each target's rate through the catalog and returns the
// resulting flow graph.
//
// For every item the first recipe in catalog order producing it is used. Each
// visit adds its rate to the item's Required; items with no recipe are raw and
// end propagation. Each recipe input receives rate·input.Rate/output.Rate,
// merged by sum into the (input → item) edge, and is resolved in turn.
//
// Errors:
//   - ErrEmptyItem, ErrBadRate for malformed targets (checked before any work).
//   - ErrBadRecipe if a used recipe has a non-positive or non-finite rate.
//   - *CycleError (errors.Is ErrCycle) if an item is re-entered while still
//     being resolved.
//   - ErrDepthExceeded if WithMaxDepth is set and exceeded.
//
// Complexity: O(paths). Diamonds are re-walked once per path since each path
// contributes its own demand.
func Resolve(cat *catalog.Catalog, targets []Target, opts ...Option) (*Graph, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	for i, t := range targets {
		if t.Item == "" {
			return nil, fmt.Errorf("target %d: %w", i, ErrEmptyItem)
		}
		if !validRate(t.Rate) {
			return nil, fmt.Errorf("target %q rate %v: %w", t.Item, t.Rate, ErrBadRate)
		}
	}

	if cat == nil {
		cat = &catalog.Catalog{}
	}
	r := &resolver{
		cat:   cat,
		opts:  o,
		graph: newGraph(),
		open:  make(map[string]bool),
	}
	for _, t := range targets {
		if err := r.resolve(t.Item, t.Rate); err != nil {
			return nil, err
		}
	}

	return r.graph, nil
}

func (r *resolver) resolve(item string, rate float64) error {
	if r.open[item] {
		return r.cycle(item)
	}
	if r.opts.MaxDepth > 0 && len(r.stack) >= r.opts.MaxDepth {
		return fmt.Errorf("%w at %q (limit %d)", ErrDepthExceeded, item, r.opts.MaxDepth)
	}

	// 1) First-match recipe lookup.
	recipe, building, found := r.cat.Lookup(item)

	// 2) Node on first visit; accumulate on every visit.
	node, err := r.graph.visit(item, func() *Node {
		if !found {
			return &Node{Item: item, Building: RawBuilding, BuildingName: RawBuildingName, Raw: true}
		}
		return &Node{
			Item:         item,
			Building:     building.ID,
			BuildingName: building.Name,
			MachineRate:  recipe.Output.Rate,
		}
	})
	if err != nil {
		return fmt.Errorf("demand: node %q: %w", item, err)
	}
	node.Required += rate

	// 3) Raw material.
	if !found {
		return nil
	}
	if !validRate(recipe.Output.Rate) {
		return fmt.Errorf("%w: %q output rate %v", ErrBadRecipe, item, recipe.Output.Rate)
	}

	// 4) Propagate to inputs.
	ratio := rate / recipe.Output.Rate
	r.open[item] = true
	r.stack = append(r.stack, item)
	defer func() {
		r.stack = r.stack[:len(r.stack)-1]
		delete(r.open, item)
	}()

	for _, in := range recipe.Inputs {
		if !validRate(in.Rate) {
			return fmt.Errorf("%w: %q input %q rate %v", ErrBadRecipe, item, in.Item, in.Rate)
		}
		if r.open[in.Item] {
			return r.cycle(in.Item)
		}
		inputRate := in.Rate * ratio
		if _, err := r.graph.flow.AddEdge(in.Item, item, inputRate); err != nil {
			return fmt.Errorf("demand: edge %q→%q: %w", in.Item, item, err)
		}
		if err := r.resolve(in.Item, inputRate); err != nil {
			return err
		}
	}

	return nil
}

// validRate reports whether v is positive and finite.
func validRate(v float64) bool { return v > 0 && !math.IsInf(v, 0) }

// cycle builds the closed path from the first occurrence of item on the stack.
func (r *resolver) cycle(item string) error {
	start := 0
	for i, id := range r.stack {
		if id == item {
			start = i
			break
		}
	}
	path := make([]string, 0, len(r.stack)-start+1)
	path = append(path, r.stack[start:]...)
	path = append(path, item)

	return &CycleError{Path: path}
}
