// Package prom implements the observability hooks with Prometheus collectors.
//
//	reg := prometheus.NewRegistry()
//	hooks := prom.New(reg)
//	observability.SetPipelineHooks(hooks)
//	observability.SetCatalogHooks(hooks)
package prom

import (
	"context"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/matzehuels/pipegrid/pkg/observability"
)

const namespace = "pipegrid"

// Hooks records pipeline and catalog events as Prometheus metrics.
type Hooks struct {
	loads        *prometheus.CounterVec
	loadDuration prometheus.Histogram
	computations prometheus.Counter
	computeTime  prometheus.Histogram
	visits       prometheus.Counter
	faults       prometheus.Counter
	depth        prometheus.Gauge
	totalFlow    prometheus.Gauge
	catalogs     *prometheus.CounterVec
}

// New creates hooks and registers their collectors with reg. A nil reg uses
// prometheus.DefaultRegisterer.
func New(reg prometheus.Registerer) *Hooks {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	h := &Hooks{
		loads: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "diagram_loads_total",
			Help:      "Diagram files loaded, by result.",
		}, []string{"result"}),
		loadDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "diagram_load_seconds",
			Help:      "Time spent reading and validating diagrams.",
			Buckets:   prometheus.ExponentialBuckets(0.0001, 4, 8),
		}),
		computations: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "computations_total",
			Help:      "Flow computations completed.",
		}),
		computeTime: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "compute_seconds",
			Help:      "Time spent computing flows.",
			Buckets:   prometheus.ExponentialBuckets(0.00001, 4, 10),
		}),
		visits: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "part_visits_total",
			Help:      "Parts entered across all source walks.",
		}),
		faults: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "faults_total",
			Help:      "Local faults reported by flow computations.",
		}),
		depth: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "last_max_depth",
			Help:      "Deepest recursion reached by the last computation.",
		}),
		totalFlow: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "last_total_flow",
			Help:      "Sum of all flows recorded by the last computation.",
		}),
		catalogs: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "catalog_loads_total",
			Help:      "Part catalog files loaded, by result.",
		}, []string{"result"}),
	}
	reg.MustRegister(
		h.loads, h.loadDuration,
		h.computations, h.computeTime, h.visits, h.faults, h.depth, h.totalFlow,
		h.catalogs,
	)
	return h
}

func result(err error) string {
	if err != nil {
		return "error"
	}
	return "ok"
}

// OnLoadStart implements observability.PipelineHooks.
func (h *Hooks) OnLoadStart(context.Context, string) {}

// OnLoadComplete implements observability.PipelineHooks.
func (h *Hooks) OnLoadComplete(_ context.Context, _ string, _ int, d time.Duration, err error) {
	h.loads.WithLabelValues(result(err)).Inc()
	h.loadDuration.Observe(d.Seconds())
}

// OnComputeStart implements observability.PipelineHooks.
func (h *Hooks) OnComputeStart(context.Context, string, int) {}

// OnComputeComplete implements observability.PipelineHooks.
func (h *Hooks) OnComputeComplete(_ context.Context, _ string, s observability.ComputeSummary, d time.Duration) {
	h.computations.Inc()
	h.computeTime.Observe(d.Seconds())
	h.visits.Add(float64(s.Visits))
	h.faults.Add(float64(s.Faults))
	h.depth.Set(float64(s.MaxDepth))
	h.totalFlow.Set(s.Total)
}

// OnCatalogLoad implements observability.CatalogHooks.
func (h *Hooks) OnCatalogLoad(_ context.Context, _ string, _ int, err error) {
	h.catalogs.WithLabelValues(result(err)).Inc()
}

var (
	_ observability.PipelineHooks = (*Hooks)(nil)
	_ observability.CatalogHooks  = (*Hooks)(nil)
)
