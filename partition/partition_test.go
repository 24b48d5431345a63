package partition_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/prodgraph/catalog"
	"github.com/katalvlaran/prodgraph/demand"
	"github.com/katalvlaran/prodgraph/partition"
)

// chainGraph resolves ore → bar → plate at 2 plates per minute.
func chainGraph(t *testing.T) *demand.Graph {
	t.Helper()
	cat := &catalog.Catalog{Buildings: []catalog.Building{
		{ID: "smelter", Name: "Smelter", Recipes: []catalog.Recipe{
			{Output: catalog.ItemRate{Item: "bar", Rate: 1}, Inputs: []catalog.ItemRate{{Item: "ore", Rate: 1}}},
		}},
		{ID: "press", Name: "Press", Recipes: []catalog.Recipe{
			{Output: catalog.ItemRate{Item: "plate", Rate: 1}, Inputs: []catalog.ItemRate{{Item: "bar", Rate: 2}}},
		}},
	}}
	g, err := demand.Resolve(cat, []demand.Target{{Item: "plate", Rate: 2}})
	require.NoError(t, err)

	return g
}

func TestCrossFlow(t *testing.T) {
	links := []partition.Link{
		{Source: 0, Target: 1, Value: 3},
		{Source: 1, Target: 2, Value: 5},
		{Source: 2, Target: 9, Value: 100}, // out of range: ignored
	}
	assert.Zero(t, partition.CrossFlow(partition.Assignment{0, 0, 0}, links))
	assert.Equal(t, 5.0, partition.CrossFlow(partition.Assignment{0, 0, 1}, links))
	assert.Equal(t, 8.0, partition.CrossFlow(partition.Assignment{0, 1, 0}, links))
	assert.Zero(t, partition.CrossFlow(nil, links))
}

func TestClampKAndSizes(t *testing.T) {
	assert.Equal(t, 0, partition.ClampK(3, 0))
	assert.Equal(t, 1, partition.ClampK(0, 5))
	assert.Equal(t, 5, partition.ClampK(9, 5))
	assert.Equal(t, 3, partition.ClampK(3, 5))

	assert.Equal(t, []int{2, 0, 1}, partition.Sizes(partition.Assignment{0, 2, 0}, 3))
	assert.Equal(t, 1, partition.SharedPairs(partition.Assignment{0, 2, 0}, [][2]int{{0, 2}, {0, 1}}))
}

func TestAssignmentValid(t *testing.T) {
	assert.True(t, partition.Assignment{0, 1, 2}.Valid(3))
	assert.False(t, partition.Assignment{0, 3}.Valid(3))
	assert.False(t, partition.Assignment{-1}.Valid(3))

	a := partition.Assignment{1, 2}
	b := a.Clone()
	b[0] = 9
	assert.Equal(t, 1, a[0])
}

func TestNewProblem(t *testing.T) {
	g := chainGraph(t)
	p := partition.NewProblem(g,
		[]partition.Pair{{A: "ore", B: "plate"}, {A: "ore", B: "gold"}},
		[]partition.Pair{{A: "bar", B: "plate"}},
	)
	assert.Equal(t, []string{"plate", "bar", "ore"}, p.Items)
	assert.Equal(t, 3, p.Len())
	assert.Equal(t, []partition.Link{
		{Source: 1, Target: 0, Value: 4},
		{Source: 2, Target: 1, Value: 4},
	}, p.Links)
	assert.Equal(t, [][2]int{{2, 0}}, p.Colocate)
	assert.Equal(t, [][2]int{{1, 0}}, p.Split)
	assert.Equal(t, []partition.Pair{{A: "ore", B: "gold"}}, p.Dropped)
}

func TestNewProblem_SelfPairDropped(t *testing.T) {
	g := chainGraph(t)
	p := partition.NewProblem(g, nil, []partition.Pair{{A: "bar", B: "bar"}, {A: "ore", B: "bar"}})
	assert.Equal(t, [][2]int{{2, 1}}, p.Split)
	assert.Equal(t, []partition.Pair{{A: "bar", B: "bar"}}, p.Dropped)
	assert.Zero(t, partition.SharedPairs(partition.Assignment{0, 0, 1}, p.Split))
}

func TestRandDeterminism(t *testing.T) {
	a, b := partition.NewRand(42), partition.NewRand(42)
	assert.Equal(t, a.Perm(10), b.Perm(10))

	zero, one := partition.NewRand(0), partition.NewRand(partition.DefaultSeed)
	assert.Equal(t, zero.Int63(), one.Int63(), "seed 0 maps to DefaultSeed")

	c1 := partition.DeriveRand(partition.NewRand(7), 1)
	c2 := partition.DeriveRand(partition.NewRand(7), 1)
	c3 := partition.DeriveRand(partition.NewRand(7), 2)
	v1, v2, v3 := c1.Int63(), c2.Int63(), c3.Int63()
	assert.Equal(t, v1, v2)
	assert.NotEqual(t, v1, v3)

	assert.NotNil(t, partition.OrDefault(nil))
}

func TestAssemble(t *testing.T) {
	g := chainGraph(t)
	res, err := partition.Assemble(g, partition.Assignment{0, 0, 1})
	require.NoError(t, err)

	require.Len(t, res.Nodes, 3)
	require.NotNil(t, res.Nodes[2].Cluster)
	assert.Equal(t, 1, *res.Nodes[2].Cluster)
	assert.Equal(t, "ore", res.Nodes[2].Item)
	assert.Len(t, res.Clusters[0], 2)
	assert.Len(t, res.Clusters[1], 1)
	assert.Equal(t, 2, res.Stats.Clusters)
	assert.Equal(t, 4.0, res.Stats.TotalCrossFlow, "only ore→bar crosses")
	assert.Equal(t, g.Edges(), res.Edges)
}

// TestAssemble_CrossFlowMatchesEdges recomputes the statistic by hand.
func TestAssemble_CrossFlowMatchesEdges(t *testing.T) {
	g := chainGraph(t)
	for _, assign := range []partition.Assignment{{0, 1, 2}, {1, 1, 1}, {0, 1, 0}} {
		res, err := partition.Assemble(g, assign)
		require.NoError(t, err)

		cluster := make(map[string]int)
		for _, n := range res.Nodes {
			cluster[n.Item] = *n.Cluster
		}
		var want float64
		for _, e := range res.Edges {
			if cluster[e.Source] != cluster[e.Target] {
				want += e.Value
			}
		}
		assert.Equal(t, want, res.Stats.TotalCrossFlow)
	}
}

func TestAssemble_NoClustering(t *testing.T) {
	g := chainGraph(t)
	res, err := partition.Assemble(g, nil)
	require.NoError(t, err)
	for _, n := range res.Nodes {
		assert.Nil(t, n.Cluster)
	}
	assert.Empty(t, res.Clusters)
	assert.Zero(t, res.Stats.TotalCrossFlow)

	empty, err := partition.Assemble(nil, nil)
	require.NoError(t, err)
	assert.Empty(t, empty.Nodes)
}

func TestAssemble_Errors(t *testing.T) {
	g := chainGraph(t)
	_, err := partition.Assemble(g, partition.Assignment{0, 1})
	assert.ErrorIs(t, err, partition.ErrAssignmentMismatch)

	_, err = partition.Assemble(g, partition.Assignment{0, -1, 0})
	assert.ErrorIs(t, err, partition.ErrNegativeCluster)
}

func TestCrossFlowBound(t *testing.T) {
	g := chainGraph(t)
	ctx := context.Background()

	bound, err := partition.CrossFlowBound(ctx, g, []partition.Pair{{A: "ore", B: "plate"}})
	require.NoError(t, err)
	assert.InDelta(t, 4.0, bound, 1e-9)

	bound, err = partition.CrossFlowBound(ctx, g, []partition.Pair{
		{A: "plate", B: "ore"},
		{A: "ore", B: "gold"},
		{A: "bar", B: "bar"},
	})
	require.NoError(t, err)
	assert.InDelta(t, 4.0, bound, 1e-9)

	bound, err = partition.CrossFlowBound(ctx, g, nil)
	require.NoError(t, err)
	assert.Zero(t, bound)

	cancelled, cancel := context.WithCancel(ctx)
	cancel()
	_, err = partition.CrossFlowBound(cancelled, g, []partition.Pair{{A: "ore", B: "plate"}})
	assert.ErrorIs(t, err, context.Canceled)
}
