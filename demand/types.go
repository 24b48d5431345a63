// Package demand defines the flow graph produced by resolving production
// targets against a recipe catalog.
package demand

import (
	"errors"
	"fmt"
	"strings"
)

const (
	// RawBuilding is the category of items no recipe produces.
	RawBuilding = "raw"

	// RawBuildingName is the display name of the raw category.
	RawBuildingName = "Source"
)

var (
	// ErrEmptyItem indicates a target with an empty item id.
	ErrEmptyItem = errors.New("demand: empty item id")

	// ErrBadRate indicates a non-positive or non-finite target rate.
	ErrBadRate = errors.New("demand: rate must be positive and finite")

	// ErrBadRecipe indicates a recipe rate that cannot carry demand.
	ErrBadRecipe = errors.New("demand: recipe rates must be positive and finite")

	// ErrCycle indicates that resolution re-entered an item still being resolved.
	ErrCycle = errors.New("demand: production cycle")

	// ErrDepthExceeded indicates resolution went deeper than the configured limit.
	ErrDepthExceeded = errors.New("demand: resolution depth exceeded")

	// ErrUnknownItem indicates a query for an item not in the graph.
	ErrUnknownItem = errors.New("demand: item not in graph")
)

// Target is a requested production rate for one item.
type Target struct {
	Item string  `json:"item" yaml:"item" validate:"required"`
	Rate float64 `json:"rate" yaml:"rate" validate:"gt=0,finite"`
}

// Node is one distinct item reachable from the targets.
type Node struct {
	// Item is the item id.
	Item string `json:"item" yaml:"item"`

	// Building is the producing building id, or RawBuilding.
	Building string `json:"building" yaml:"building"`

	// BuildingName is the producing building display name, or RawBuildingName.
	BuildingName string `json:"buildingName" yaml:"buildingName"`

	// MachineRate is the output rate of one machine; zero for raw items.
	MachineRate float64 `json:"machineRate,omitempty" yaml:"machineRate,omitempty"`

	// Raw reports that no recipe produces Item.
	Raw bool `json:"raw" yaml:"raw"`

	// Required is the aggregate rate demanded of Item.
	Required float64 `json:"required" yaml:"required"`
}

// Machines returns how many machines are needed to meet Required.
// Raw items need none.
func (n Node) Machines() float64 {
	if n.Raw || n.MachineRate <= 0 {
		return 0
	}

	return n.Required / n.MachineRate
}

// Edge is the accumulated flow of Source items into the production of Target.
type Edge struct {
	Source string  `json:"source" yaml:"source"`
	Target string  `json:"target" yaml:"target"`
	Value  float64 `json:"value" yaml:"value"`
}

// CycleError reports the resolution stack that re-entered an item.
// Path is closed: the repeated item appears first and last.
type CycleError struct {
	Path []string
}

func (e *CycleError) Error() string {
	return fmt.Sprintf("demand: production cycle %s", strings.Join(e.Path, " → "))
}

// Unwrap lets errors.Is(err, ErrCycle) match.
func (e *CycleError) Unwrap() error { return ErrCycle }
