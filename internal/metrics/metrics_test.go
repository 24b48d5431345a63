package metrics_test

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/prodgraph/internal/metrics"
	"github.com/katalvlaran/prodgraph/planner"
)

func TestObserveRun(t *testing.T) {
	m, err := metrics.New("")
	require.NoError(t, err)

	m.ObserveRun(planner.RunReport{Method: planner.MethodKMeans, Status: planner.StatusOK, Duration: 20 * time.Millisecond, Nodes: 4, CrossFlow: 7.5})
	m.ObserveRun(planner.RunReport{Method: planner.MethodKMeans, Status: planner.StatusInvalid})
	m.ObserveRun(planner.RunReport{Method: planner.MethodNone, Status: planner.StatusOK, Nodes: 2})

	families, err := m.Registry().Gather()
	require.NoError(t, err)
	names := make(map[string]bool)
	for _, mf := range families {
		names[mf.GetName()] = true
	}
	for _, want := range []string{
		"prodgraph_runs_total",
		"prodgraph_run_duration_seconds",
		"prodgraph_cross_flow",
		"prodgraph_graph_nodes",
	} {
		assert.True(t, names[want], want)
	}

	var buf bytes.Buffer
	require.NoError(t, m.WriteText(&buf))
	text := buf.String()
	assert.Contains(t, text, `prodgraph_runs_total{method="kmeans",status="ok"} 1`)
	assert.Contains(t, text, `prodgraph_runs_total{method="kmeans",status="invalid"} 1`)
	assert.Contains(t, text, `prodgraph_runs_total{method="none",status="ok"} 1`)
	assert.Contains(t, text, `prodgraph_cross_flow{method="kmeans"} 7.5`)
	assert.Contains(t, text, "prodgraph_graph_nodes 2")
}

func TestCustomNamespace(t *testing.T) {
	m, err := metrics.New("factory")
	require.NoError(t, err)
	m.ObserveRun(planner.RunReport{Method: planner.MethodGenetic, Status: planner.StatusFatal})

	var buf bytes.Buffer
	require.NoError(t, m.WriteText(&buf))
	assert.Contains(t, buf.String(), `factory_runs_total{method="genetic",status="fatal"} 1`)
	assert.NotContains(t, buf.String(), "factory_cross_flow{", "failed runs leave the gauge unset")
}
