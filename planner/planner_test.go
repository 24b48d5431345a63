package planner_test

import (
	"context"
	"errors"
	"math"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/katalvlaran/prodgraph/catalog"
	"github.com/katalvlaran/prodgraph/demand"
	"github.com/katalvlaran/prodgraph/genetic"
	"github.com/katalvlaran/prodgraph/internal/logging"
	"github.com/katalvlaran/prodgraph/partition"
	"github.com/katalvlaran/prodgraph/planner"
)

func twoChainCatalog() *catalog.Catalog {
	return &catalog.Catalog{Buildings: []catalog.Building{
		{ID: "smelter", Name: "Smelter", Recipes: []catalog.Recipe{
			{Output: catalog.ItemRate{Item: "bar", Rate: 1}, Inputs: []catalog.ItemRate{{Item: "ore", Rate: 2}}},
		}},
		{ID: "kiln", Name: "Kiln", Recipes: []catalog.Recipe{
			{Output: catalog.ItemRate{Item: "glass", Rate: 1}, Inputs: []catalog.ItemRate{{Item: "sand", Rate: 3}}},
		}},
	}}
}

var chainTargets = []demand.Target{{Item: "bar", Rate: 5}, {Item: "glass", Rate: 5}}

type reports struct {
	mu   sync.Mutex
	list []planner.RunReport
}

func (r *reports) ObserveRun(rep planner.RunReport) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.list = append(r.list, rep)
}

func (r *reports) all() []planner.RunReport {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]planner.RunReport(nil), r.list...)
}

type panicRand struct{}

func (panicRand) Int63() int64                { panic("rand exhausted") }
func (panicRand) Intn(int) int                { panic("rand exhausted") }
func (panicRand) Float64() float64            { panic("rand exhausted") }
func (panicRand) Perm(int) []int              { panic("rand exhausted") }
func (panicRand) Shuffle(int, func(i, j int)) { panic("rand exhausted") }

func crossFlowOf(res *partition.Result) float64 {
	cluster := make(map[string]int, len(res.Nodes))
	for _, n := range res.Nodes {
		cluster[n.Item] = *n.Cluster
	}
	var sum float64
	for _, e := range res.Edges {
		if cluster[e.Source] != cluster[e.Target] {
			sum += e.Value
		}
	}
	return sum
}

func TestRun_KMeans(t *testing.T) {
	p := planner.New(twoChainCatalog())
	res, err := p.Run(context.Background(), planner.Request{
		Targets: chainTargets,
		Method:  planner.MethodKMeans,
		KMeans:  planner.KMeansParams{K: 2, Attempts: 5},
		Seed:    42,
	})
	require.NoError(t, err)
	require.Len(t, res.Nodes, 4)
	for _, n := range res.Nodes {
		require.NotNil(t, n.Cluster)
		assert.Less(t, *n.Cluster, 2)
	}
	assert.Equal(t, "kmeans", res.Stats.Method)
	assert.Equal(t, crossFlowOf(res), res.Stats.TotalCrossFlow)
}

func TestRun_SplitBound(t *testing.T) {
	p := planner.New(twoChainCatalog())
	res, err := p.Run(context.Background(), planner.Request{
		Targets: chainTargets,
		Method:  planner.MethodKMeans,
		KMeans: planner.KMeansParams{
			K:        2,
			Attempts: 5,
			Split:    []partition.Pair{{A: "ore", B: "bar"}, {A: "ore", B: "nickel"}},
		},
		Seed: 42,
	})
	require.NoError(t, err)
	assert.InDelta(t, 10.0, res.Stats.CrossFlowBound, 1e-9)
}

func TestRun_KMeansDeterministic(t *testing.T) {
	p := planner.New(twoChainCatalog())
	req := planner.Request{
		Targets: chainTargets,
		Method:  planner.MethodKMeans,
		KMeans:  planner.KMeansParams{K: 3, Attempts: 4},
		Seed:    9,
	}
	a, err := p.Run(context.Background(), req)
	require.NoError(t, err)
	b, err := p.Run(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestRun_Genetic(t *testing.T) {
	p := planner.New(twoChainCatalog())
	params := planner.DefaultGeneticParams()
	params.K = 2
	params.PopulationSize = 40
	params.Generations = 60
	params.MutationRate = 0.1
	params.Weights = genetic.Weights{Transport: 1}

	res, err := p.Run(context.Background(), planner.Request{
		Targets: chainTargets,
		Method:  planner.MethodGenetic,
		Genetic: params,
		Seed:    7,
	})
	require.NoError(t, err)
	assert.Zero(t, res.Stats.TotalCrossFlow)
	assert.Equal(t, 2, res.Stats.Clusters)
	assert.Equal(t, "genetic", res.Stats.Method)
}

func TestRun_NoClustering(t *testing.T) {
	res, err := planner.New(twoChainCatalog()).Run(context.Background(), planner.Request{Targets: chainTargets})
	require.NoError(t, err)
	require.Len(t, res.Nodes, 4)
	for _, n := range res.Nodes {
		assert.Nil(t, n.Cluster)
	}
	assert.Empty(t, res.Clusters)
}

func TestRun_EmptyTargets(t *testing.T) {
	res, err := planner.New(twoChainCatalog()).Run(context.Background(), planner.Request{
		Method: planner.MethodKMeans,
		KMeans: planner.DefaultKMeansParams(),
	})
	require.NoError(t, err)
	assert.Empty(t, res.Nodes)
	assert.Empty(t, res.Edges)
	assert.Zero(t, res.Stats.TotalCrossFlow)
}

func TestRun_InvalidRequests(t *testing.T) {
	p := planner.New(twoChainCatalog())
	noAttempts := planner.DefaultGeneticParams()
	noAttempts.Attempts = 0
	inverted := planner.DefaultGeneticParams()
	inverted.MinSize, inverted.MaxSize = 4, 2

	cases := map[string]planner.Request{
		"UnknownMethod":   {Targets: chainTargets, Method: "annealing"},
		"ZeroK":           {Targets: chainTargets, Method: planner.MethodKMeans, KMeans: planner.KMeansParams{K: 0, Attempts: 1}},
		"NegativeRate":    {Targets: []demand.Target{{Item: "bar", Rate: -1}}},
		"InfiniteRate":    {Targets: []demand.Target{{Item: "bar", Rate: math.Inf(1)}}},
		"NaNRate":         {Targets: []demand.Target{{Item: "bar", Rate: math.NaN()}}},
		"EmptyItem":       {Targets: []demand.Target{{Item: "", Rate: 1}}},
		"GeneticAttempts": {Targets: chainTargets, Method: planner.MethodGenetic, Genetic: noAttempts},
		"SizeBounds":      {Targets: chainTargets, Method: planner.MethodGenetic, Genetic: inverted},
		"EmptyPair": {Targets: chainTargets, Method: planner.MethodKMeans, KMeans: planner.KMeansParams{
			K: 2, Attempts: 1, Split: []partition.Pair{{A: "bar"}},
		}},
	}
	for name, req := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := p.Run(context.Background(), req)
			assert.ErrorIs(t, err, planner.ErrInvalidRequest)
		})
	}
}

func TestRun_CycleSurfaces(t *testing.T) {
	cat := &catalog.Catalog{Buildings: []catalog.Building{{ID: "loop", Recipes: []catalog.Recipe{
		{Output: catalog.ItemRate{Item: "a", Rate: 1}, Inputs: []catalog.ItemRate{{Item: "b", Rate: 1}}},
		{Output: catalog.ItemRate{Item: "b", Rate: 1}, Inputs: []catalog.ItemRate{{Item: "a", Rate: 1}}},
	}}}}
	_, err := planner.New(cat).Run(context.Background(), planner.Request{Targets: []demand.Target{{Item: "a", Rate: 1}}})
	assert.ErrorIs(t, err, demand.ErrCycle)
}

func TestRun_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := planner.New(twoChainCatalog()).Run(ctx, planner.Request{Targets: chainTargets})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestRun_LogsAndRecords(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	rec := &reports{}
	p := planner.New(twoChainCatalog(),
		planner.WithLogger(logging.NewLoggerFromCore(core)),
		planner.WithMetrics(rec),
	)
	_, err := p.Run(context.Background(), planner.Request{
		Targets: chainTargets,
		Method:  planner.MethodKMeans,
		KMeans:  planner.KMeansParams{K: 2, Attempts: 2},
		Seed:    1,
	})
	require.NoError(t, err)

	got := rec.all()
	require.Len(t, got, 1)
	assert.Equal(t, planner.StatusOK, got[0].Status)
	assert.Equal(t, 4, got[0].Nodes)
	assert.NotEmpty(t, got[0].RunID)

	finished := logs.FilterMessage("run finished").All()
	require.Len(t, finished, 1)
	assert.Equal(t, got[0].RunID, finished[0].ContextMap()["run_id"])
	assert.Equal(t, "planner", finished[0].LoggerName)
}

func TestStart_CompletesOnce(t *testing.T) {
	release := make(chan struct{})
	rec := &reports{}
	p := planner.New(twoChainCatalog(),
		planner.WithMetrics(rec),
		planner.WithRandFactory(func(seed int64) partition.Rand {
			<-release
			return partition.NewRand(seed)
		}),
	)
	job := p.Start(context.Background(), planner.Request{
		Targets: chainTargets,
		Method:  planner.MethodKMeans,
		KMeans:  planner.KMeansParams{K: 2, Attempts: 2},
		Seed:    3,
	})

	_, err := job.Result()
	assert.ErrorIs(t, err, planner.ErrPending)

	short, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()
	_, err = job.Wait(short)
	assert.ErrorIs(t, err, context.DeadlineExceeded)

	close(release)
	res, err := job.Wait(context.Background())
	require.NoError(t, err)
	assert.Len(t, res.Nodes, 4)

	<-job.Done()
	again, err := job.Result()
	require.NoError(t, err)
	assert.Same(t, res, again)

	got := rec.all()
	require.Len(t, got, 1)
	assert.Equal(t, job.ID(), got[0].RunID)
}

func TestStart_PanicIsFatal(t *testing.T) {
	rec := &reports{}
	p := planner.New(twoChainCatalog(),
		planner.WithMetrics(rec),
		planner.WithRandFactory(func(int64) partition.Rand { return panicRand{} }),
	)
	job := p.Start(context.Background(), planner.Request{
		Targets: chainTargets,
		Method:  planner.MethodGenetic,
		Genetic: planner.DefaultGeneticParams(),
	})
	res, err := job.Wait(context.Background())
	assert.Nil(t, res)
	require.Error(t, err)
	assert.True(t, errors.Is(err, planner.ErrFatal))
	assert.Contains(t, err.Error(), "rand exhausted")

	got := rec.all()
	require.Len(t, got, 1)
	assert.Equal(t, planner.StatusFatal, got[0].Status)
}
