package flow_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/prodgraph/core"
	"github.com/katalvlaran/prodgraph/flow"
)

type arc struct {
	u, v string
	w    float64
}

func build(t *testing.T, edges ...arc) *core.Graph {
	t.Helper()
	g := core.NewGraph()
	for _, e := range edges {
		_, err := g.AddEdge(e.u, e.v, e.w)
		require.NoError(t, err)
	}
	return g
}

func TestEdmondsKarp_Chain(t *testing.T) {
	g := build(t, arc{"ore", "bar", 3}, arc{"bar", "plate", 2})

	cut, err := flow.EdmondsKarp(context.Background(), g, "ore", "plate", nil)
	require.NoError(t, err)
	assert.InDelta(t, 2.0, cut.Value, 1e-9)
	assert.Equal(t, []string{"bar", "ore"}, cut.Source)
}

func TestEdmondsKarp_Direction(t *testing.T) {
	g := build(t, arc{"ore", "bar", 3}, arc{"bar", "plate", 2})

	cut, err := flow.EdmondsKarp(context.Background(), g, "plate", "ore", nil)
	require.NoError(t, err)
	assert.Zero(t, cut.Value)
	assert.Equal(t, []string{"plate"}, cut.Source)

	cut, err = flow.EdmondsKarp(context.Background(), g, "plate", "ore", &flow.FlowOptions{Undirected: true})
	require.NoError(t, err)
	assert.InDelta(t, 2.0, cut.Value, 1e-9)
	assert.Equal(t, []string{"plate"}, cut.Source)
}

func TestEdmondsKarp_Diamond(t *testing.T) {
	g := build(t,
		arc{"s", "x", 3}, arc{"s", "y", 2},
		arc{"x", "t", 2}, arc{"y", "t", 3},
		arc{"x", "y", 1},
	)

	cut, err := flow.EdmondsKarp(context.Background(), g, "s", "t", nil)
	require.NoError(t, err)
	assert.InDelta(t, 5.0, cut.Value, 1e-9)
	assert.Equal(t, []string{"s"}, cut.Source)
}

func TestEdmondsKarp_Errors(t *testing.T) {
	g := build(t, arc{"a", "b", 1})
	ctx := context.Background()

	_, err := flow.EdmondsKarp(ctx, nil, "a", "b", nil)
	assert.ErrorIs(t, err, flow.ErrGraphNil)
	_, err = flow.EdmondsKarp(ctx, g, "x", "b", nil)
	assert.ErrorIs(t, err, flow.ErrSourceNotFound)
	_, err = flow.EdmondsKarp(ctx, g, "a", "x", nil)
	assert.ErrorIs(t, err, flow.ErrSinkNotFound)
	_, err = flow.EdmondsKarp(ctx, g, "a", "a", nil)
	assert.ErrorIs(t, err, flow.ErrSameEndpoints)

	cancelled, cancel := context.WithCancel(ctx)
	cancel()
	_, err = flow.EdmondsKarp(cancelled, g, "a", "b", nil)
	assert.ErrorIs(t, err, context.Canceled)
}
