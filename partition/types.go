package partition

import (
	"errors"

	"github.com/katalvlaran/prodgraph/demand"
)

var (
	// ErrAssignmentMismatch indicates an assignment whose length differs from
	// the node count.
	ErrAssignmentMismatch = errors.New("partition: assignment length does not match node count")

	// ErrNegativeCluster indicates an assignment entry below zero.
	ErrNegativeCluster = errors.New("partition: negative cluster id")
)

// Assignment maps node index to cluster id.
type Assignment []int

// Valid reports whether every entry lies in [0, k).
func (a Assignment) Valid(k int) bool {
	for _, c := range a {
		if c < 0 || c >= k {
			return false
		}
	}

	return true
}

// Clone returns an independent copy.
func (a Assignment) Clone() Assignment {
	if a == nil {
		return nil
	}
	out := make(Assignment, len(a))
	copy(out, a)

	return out
}

// Link is a flow edge between node indices.
type Link struct {
	Source int
	Target int
	Value  float64
}

// Pair names two items for a co-location or split constraint.
type Pair struct {
	A string `json:"a" yaml:"a" validate:"required"`
	B string `json:"b" yaml:"b" validate:"required"`
}

// ResultNode is a resolved node with its final cluster. Cluster is nil when
// no clustering was performed.
type ResultNode struct {
	demand.Node `yaml:",inline"`
	Cluster     *int `json:"cluster,omitempty" yaml:"cluster,omitempty"`
}

// Stats summarises a result.
type Stats struct {
	// TotalCrossFlow is recomputed from the returned edges and assignment.
	TotalCrossFlow float64 `json:"totalCrossFlow" yaml:"totalCrossFlow"`

	// Clusters counts non-empty clusters.
	Clusters int `json:"clusters" yaml:"clusters"`

	// Method names the optimizer, empty when none ran.
	Method string `json:"method,omitempty" yaml:"method,omitempty"`

	// Score is the optimizer's own objective for the returned assignment.
	Score float64 `json:"score,omitempty" yaml:"score,omitempty"`

	// CrossFlowBound is the largest minimum cut over the split pairs: no
	// assignment honouring them can have less cross flow.
	CrossFlowBound float64 `json:"crossFlowBound,omitempty" yaml:"crossFlowBound,omitempty"`
}

// Result is the packaged optimization output.
type Result struct {
	Nodes    []ResultNode         `json:"nodes" yaml:"nodes"`
	Edges    []demand.Edge        `json:"edges" yaml:"edges"`
	Clusters map[int][]ResultNode `json:"clusters" yaml:"clusters"`
	Stats    Stats                `json:"stats" yaml:"stats"`
}
