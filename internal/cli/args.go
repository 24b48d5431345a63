package cli

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/katalvlaran/prodgraph/catalog"
	"github.com/katalvlaran/prodgraph/demand"
	"github.com/katalvlaran/prodgraph/partition"
)

var (
	// ErrBadTarget indicates a -t value not of the form item=rate.
	ErrBadTarget = errors.New("cli: target must be item=rate")

	// ErrBadPair indicates a pair value not of the form a:b.
	ErrBadPair = errors.New("cli: pair must be itemA:itemB")

	// ErrNoCatalog indicates neither an argument nor config named a catalog.
	ErrNoCatalog = errors.New("cli: no catalog given")
)

// parseTargets reads item=rate values. Rates are validated later by the planner.
func parseTargets(raw []string) ([]demand.Target, error) {
	out := make([]demand.Target, 0, len(raw))
	for _, r := range raw {
		i := strings.LastIndex(r, "=")
		if i <= 0 || i == len(r)-1 {
			return nil, fmt.Errorf("%w: %q", ErrBadTarget, r)
		}
		rate, err := strconv.ParseFloat(strings.TrimSpace(r[i+1:]), 64)
		if err != nil {
			return nil, fmt.Errorf("%w: %q: %v", ErrBadTarget, r, err)
		}
		out = append(out, demand.Target{Item: strings.TrimSpace(r[:i]), Rate: rate})
	}

	return out, nil
}

// parsePairs reads a:b values.
func parsePairs(raw []string) ([]partition.Pair, error) {
	out := make([]partition.Pair, 0, len(raw))
	for _, r := range raw {
		a, b, ok := strings.Cut(r, ":")
		a, b = strings.TrimSpace(a), strings.TrimSpace(b)
		if !ok || a == "" || b == "" {
			return nil, fmt.Errorf("%w: %q", ErrBadPair, r)
		}
		out = append(out, partition.Pair{A: a, B: b})
	}

	return out, nil
}

// loadCatalog picks the catalog path from args or config and loads it.
func loadCatalog(app *appContext, args []string) (*catalog.Catalog, error) {
	path := app.Config.Catalog
	if len(args) > 0 {
		path = args[0]
	}
	if path == "" {
		return nil, ErrNoCatalog
	}

	return catalog.Load(path)
}
