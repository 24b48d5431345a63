// Package catalog defines the recipe catalog contract consumed by demand
// resolution: buildings, the recipes they run, and item rates.
package catalog

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrEmptyID indicates a building or item with an empty identifier.
	ErrEmptyID = errors.New("catalog: empty identifier")

	// ErrBadRate indicates a non-positive or non-finite rate.
	ErrBadRate = errors.New("catalog: rate must be positive and finite")

	// ErrCycle indicates that recipes form a production loop.
	ErrCycle = errors.New("catalog: production cycle")

	// ErrUnsupportedFormat indicates a catalog file extension Load cannot parse.
	ErrUnsupportedFormat = errors.New("catalog: unsupported file format")
)

// ItemRate is an item id with a rate per unit time.
type ItemRate struct {
	Item string  `json:"item" yaml:"item"`
	Rate float64 `json:"rate" yaml:"rate"`
}

// Recipe turns Inputs into one Output. Input order carries no meaning.
type Recipe struct {
	Output ItemRate   `json:"output" yaml:"output"`
	Inputs []ItemRate `json:"inputs,omitempty" yaml:"inputs,omitempty"`
}

// Building is an immutable catalog entry able to run zero or more recipes.
type Building struct {
	ID      string   `json:"id" yaml:"id"`
	Name    string   `json:"name" yaml:"name"`
	Recipes []Recipe `json:"recipes,omitempty" yaml:"recipes,omitempty"`
}

// Catalog is the ordered list of buildings. Order matters: Lookup returns the
// first recipe producing an item.
type Catalog struct {
	Buildings []Building `json:"buildings" yaml:"buildings"`
}

// CycleError reports a production loop found in the catalog.
// Cycle is closed: its first item is repeated at the end.
type CycleError struct {
	Cycle []string
}

func (e *CycleError) Error() string {
	return fmt.Sprintf("catalog: production cycle %s", strings.Join(e.Cycle, " → "))
}

// Unwrap lets errors.Is(err, ErrCycle) match.
func (e *CycleError) Unwrap() error { return ErrCycle }

// Shadow records a recipe that Lookup never returns because an earlier recipe
// already produces the same item.
type Shadow struct {
	Item     string `json:"item" yaml:"item"`
	Winner   string `json:"winner" yaml:"winner"`     // building id of the first recipe
	Shadowed string `json:"shadowed" yaml:"shadowed"` // building id of the ignored recipe
}
