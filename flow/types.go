package flow

import "errors"

var (
	// ErrSourceNotFound is returned when the specified source vertex is missing.
	ErrSourceNotFound = errors.New("flow: source vertex not found")

	// ErrSinkNotFound is returned when the specified sink vertex is missing.
	ErrSinkNotFound = errors.New("flow: sink vertex not found")

	// ErrSameEndpoints is returned when source and sink coincide.
	ErrSameEndpoints = errors.New("flow: source equals sink")

	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("flow: graph is nil")
)

// FlowOptions configures max-flow computation.
//   - Epsilon: treat capacities ≤ Epsilon as zero (default 1e-9).
//   - Undirected: every edge carries its weight in both directions.
type FlowOptions struct {
	Epsilon    float64
	Undirected bool
}

// DefaultOptions returns FlowOptions with Epsilon 1e-9, directed.
func DefaultOptions() FlowOptions {
	return FlowOptions{Epsilon: 1e-9}
}

func (o *FlowOptions) normalize() {
	if o.Epsilon <= 0 {
		o.Epsilon = 1e-9
	}
}

// Cut is the outcome of a max-flow run.
//   - Value: the maximum flow, equal to the minimum cut capacity.
//   - Source: vertices still reachable from the source in the final residual
//     network, sorted. Every edge leaving this set is saturated.
type Cut struct {
	Value  float64
	Source []string
}
