package catalog

import (
	"errors"
	"fmt"
	"math"
	"sort"

	"github.com/katalvlaran/prodgraph/core"
	"github.com/katalvlaran/prodgraph/dfs"
)

// Lookup returns the first recipe, in building then recipe order, whose output
// is item, together with the building running it. Later recipes producing the
// same item are never consulted.
func (c *Catalog) Lookup(item string) (Recipe, Building, bool) {
	if c == nil {
		return Recipe{}, Building{}, false
	}
	for _, b := range c.Buildings {
		for _, r := range b.Recipes {
			if r.Output.Item == item {
				return r, b, true
			}
		}
	}

	return Recipe{}, Building{}, false
}

// Building returns the building with the given id.
func (c *Catalog) Building(id string) (Building, bool) {
	if c == nil {
		return Building{}, false
	}
	for _, b := range c.Buildings {
		if b.ID == id {
			return b, true
		}
	}

	return Building{}, false
}

// Items returns every item id mentioned by any recipe, sorted.
func (c *Catalog) Items() []string {
	if c == nil {
		return nil
	}
	set := make(map[string]struct{})
	for _, b := range c.Buildings {
		for _, r := range b.Recipes {
			set[r.Output.Item] = struct{}{}
			for _, in := range r.Inputs {
				set[in.Item] = struct{}{}
			}
		}
	}
	out := make([]string, 0, len(set))
	for id := range set {
		out = append(out, id)
	}
	sort.Strings(out)

	return out
}

// Shadowed lists recipes hidden by an earlier recipe with the same output.
func (c *Catalog) Shadowed() []Shadow {
	if c == nil {
		return nil
	}
	winner := make(map[string]string)
	var out []Shadow
	for _, b := range c.Buildings {
		for _, r := range b.Recipes {
			if w, ok := winner[r.Output.Item]; ok {
				out = append(out, Shadow{Item: r.Output.Item, Winner: w, Shadowed: b.ID})
				continue
			}
			winner[r.Output.Item] = b.ID
		}
	}

	return out
}

// DependencyGraph builds the graph resolution actually walks: for every item
// its first-match recipe contributes edges input→output weighted by the input
// rate per unit of output. Shadowed recipes are ignored.
func (c *Catalog) DependencyGraph() (*core.Graph, error) {
	g := core.NewGraph(core.WithLoops())
	if c == nil {
		return g, nil
	}
	for _, item := range c.Items() {
		if err := g.AddVertex(item); err != nil {
			return nil, err
		}
		r, _, ok := c.Lookup(item)
		if !ok || r.Output.Rate <= 0 {
			continue
		}
		for _, in := range r.Inputs {
			if _, err := g.AddEdge(in.Item, item, in.Rate/r.Output.Rate); err != nil {
				return nil, fmt.Errorf("catalog: edge %q→%q: %w", in.Item, item, err)
			}
		}
	}

	return g, nil
}

// Validate checks identifiers and rates of every recipe and reports production
// cycles among first-match recipes. All problems are joined into one error;
// cycles unwrap to *CycleError and match ErrCycle.
func (c *Catalog) Validate() error {
	if c == nil {
		return nil
	}
	var errs []error
	for bi, b := range c.Buildings {
		if b.ID == "" {
			errs = append(errs, fmt.Errorf("building #%d: %w", bi, ErrEmptyID))
		}
		for ri, r := range b.Recipes {
			where := fmt.Sprintf("building %q recipe #%d", b.ID, ri)
			if err := checkItemRate(r.Output); err != nil {
				errs = append(errs, fmt.Errorf("%s output: %w", where, err))
			}
			for ii, in := range r.Inputs {
				if err := checkItemRate(in); err != nil {
					errs = append(errs, fmt.Errorf("%s input #%d: %w", where, ii, err))
				}
			}
		}
	}
	if len(errs) > 0 {
		// A malformed catalog cannot produce a meaningful dependency graph.
		return errors.Join(errs...)
	}

	g, err := c.DependencyGraph()
	if err != nil {
		return err
	}
	has, cycles, err := dfs.DetectCycles(g)
	if err != nil {
		return fmt.Errorf("catalog: cycle check: %w", err)
	}
	if !has {
		return nil
	}
	for _, cyc := range cycles {
		errs = append(errs, &CycleError{Cycle: cyc})
	}

	return errors.Join(errs...)
}

// checkItemRate validates one (item, rate) pair.
func checkItemRate(ir ItemRate) error {
	if ir.Item == "" {
		return ErrEmptyID
	}
	if ir.Rate <= 0 || math.IsNaN(ir.Rate) || math.IsInf(ir.Rate, 0) {
		return fmt.Errorf("%w: %q has %g", ErrBadRate, ir.Item, ir.Rate)
	}

	return nil
}
