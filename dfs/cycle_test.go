package dfs_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/prodgraph/core"
	"github.com/katalvlaran/prodgraph/dfs"
)

// TestDetectCycles_NilGraph verifies DetectCycles handles nil input without error.
func TestDetectCycles_NilGraph(t *testing.T) {
	has, cycles, err := dfs.DetectCycles(nil)
	assert.NoError(t, err)
	assert.False(t, has)
	assert.Nil(t, cycles)
}

// TestDetectCycles_NoCycle ensures a production chain DAG reports nothing.
func TestDetectCycles_NoCycle(t *testing.T) {
	g := core.NewGraph()
	// ore -> bar -> plate
	//  \-> wire -/
	_, _ = g.AddEdge("ore", "bar", 1)
	_, _ = g.AddEdge("bar", "plate", 1)
	_, _ = g.AddEdge("ore", "wire", 1)
	_, _ = g.AddEdge("wire", "plate", 1)

	has, cycles, err := dfs.DetectCycles(g)
	assert.NoError(t, err)
	assert.False(t, has)
	assert.Empty(t, cycles)
}

// TestDetectCycles_TwoNodeCycle covers canonical rotation of a 2-cycle.
func TestDetectCycles_TwoNodeCycle(t *testing.T) {
	g := core.NewGraph()
	_, _ = g.AddEdge("B", "A", 1)
	_, _ = g.AddEdge("A", "B", 1)

	has, cycles, err := dfs.DetectCycles(g)
	require.NoError(t, err)
	assert.True(t, has)
	assert.Equal(t, [][]string{{"A", "B", "A"}}, cycles)
}

// TestDetectCycles_SelfLoop covers an item that consumes itself.
func TestDetectCycles_SelfLoop(t *testing.T) {
	g := core.NewGraph(core.WithLoops())
	_, _ = g.AddEdge("seed", "seed", 1)

	has, cycles, err := dfs.DetectCycles(g)
	require.NoError(t, err)
	assert.True(t, has)
	assert.Equal(t, [][]string{{"seed", "seed"}}, cycles)
}

// TestDetectCycles_TwoDisjointCycles verifies deterministic ordering.
func TestDetectCycles_TwoDisjointCycles(t *testing.T) {
	g := core.NewGraph()
	_, _ = g.AddEdge("z", "y", 1)
	_, _ = g.AddEdge("y", "x", 1)
	_, _ = g.AddEdge("x", "z", 1)
	_, _ = g.AddEdge("b", "c", 1)
	_, _ = g.AddEdge("c", "b", 1)

	has, cycles, err := dfs.DetectCycles(g)
	require.NoError(t, err)
	assert.True(t, has)
	assert.Equal(t, [][]string{{"b", "c", "b"}, {"x", "z", "y", "x"}}, cycles)
}

// TestDetectCycles_Undirected rejects undirected graphs.
func TestDetectCycles_Undirected(t *testing.T) {
	g := core.NewGraph(core.WithDirected(false))
	_, _ = g.AddEdge("a", "b", 1)
	_, _, err := dfs.DetectCycles(g)
	assert.Error(t, err)
}

// TestMinimalRotation checks Booth's algorithm on a few sequences.
func TestMinimalRotation(t *testing.T) {
	assert.Equal(t, []string{"a", "b", "c"}, dfs.MinimalRotation([]string{"b", "c", "a"}))
	assert.Equal(t, []string{"a", "a", "b"}, dfs.MinimalRotation([]string{"a", "b", "a"}))
	assert.Nil(t, dfs.MinimalRotation(nil))
}
