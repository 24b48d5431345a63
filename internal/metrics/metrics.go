// Package metrics records planner runs in a private Prometheus registry and
// renders it in the text exposition format.
package metrics

import (
	"bytes"
	"fmt"
	"io"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"

	"github.com/katalvlaran/prodgraph/planner"
)

// DefaultNamespace prefixes every metric name.
const DefaultNamespace = "prodgraph"

// DurationBuckets spans sub-millisecond resolves to multi-minute searches.
var DurationBuckets = []float64{.001, .005, .01, .05, .1, .5, 1, 5, 10, 30, 120}

// Metrics implements planner.Recorder.
type Metrics struct {
	registry *prometheus.Registry

	runsTotal   *prometheus.CounterVec
	runDuration *prometheus.HistogramVec
	crossFlow   *prometheus.GaugeVec
	graphNodes  prometheus.Gauge
}

var _ planner.Recorder = (*Metrics)(nil)

// New registers the run metrics under namespace (DefaultNamespace if empty).
func New(namespace string) (*Metrics, error) {
	if namespace == "" {
		namespace = DefaultNamespace
	}
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		runsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "runs_total",
			Help:      "Planner runs by method and status.",
		}, []string{"method", "status"}),
		runDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "run_duration_seconds",
			Help:      "Wall time of planner runs.",
			Buckets:   DurationBuckets,
		}, []string{"method"}),
		crossFlow: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "cross_flow",
			Help:      "Cross-cluster transport of the last successful run.",
		}, []string{"method"}),
		graphNodes: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "graph_nodes",
			Help:      "Node count of the last successful run.",
		}),
	}
	for _, c := range []prometheus.Collector{m.runsTotal, m.runDuration, m.crossFlow, m.graphNodes} {
		if err := m.registry.Register(c); err != nil {
			return nil, fmt.Errorf("metrics: register: %w", err)
		}
	}

	return m, nil
}

// methodLabel names the no-clustering method explicitly.
func methodLabel(m planner.Method) string {
	if m == planner.MethodNone {
		return "none"
	}

	return string(m)
}

// ObserveRun records one finished run.
func (m *Metrics) ObserveRun(r planner.RunReport) {
	method := methodLabel(r.Method)
	m.runsTotal.WithLabelValues(method, r.Status).Inc()
	m.runDuration.WithLabelValues(method).Observe(r.Duration.Seconds())
	if r.Status == planner.StatusOK {
		m.crossFlow.WithLabelValues(method).Set(r.CrossFlow)
		m.graphNodes.Set(float64(r.Nodes))
	}
}

// Registry exposes the underlying registry, e.g. for promhttp.
func (m *Metrics) Registry() *prometheus.Registry { return m.registry }

// WriteText writes all metrics in the Prometheus text format.
func (m *Metrics) WriteText(w io.Writer) error {
	families, err := m.registry.Gather()
	if err != nil {
		return fmt.Errorf("metrics: gather: %w", err)
	}
	var buf bytes.Buffer
	for _, mf := range families {
		if _, err := expfmt.MetricFamilyToText(&buf, mf); err != nil {
			return fmt.Errorf("metrics: encode %s: %w", mf.GetName(), err)
		}
	}
	_, err = w.Write(buf.Bytes())

	return err
}
