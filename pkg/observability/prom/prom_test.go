package prom

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"

	"github.com/matzehuels/pipegrid/pkg/observability"
)

func TestComputeMetrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	h := New(reg)
	ctx := context.Background()

	h.OnComputeStart(ctx, "run-1", 4)
	h.OnComputeComplete(ctx, "run-1", observability.ComputeSummary{
		Parts: 4, Sources: 1, Visits: 4, MaxDepth: 3, Faults: 1, Total: 7.5,
	}, time.Millisecond)
	h.OnComputeComplete(ctx, "run-2", observability.ComputeSummary{Visits: 2, MaxDepth: 2}, time.Millisecond)

	if got := testutil.ToFloat64(h.computations); got != 2 {
		t.Errorf("computations = %v, want 2", got)
	}
	if got := testutil.ToFloat64(h.visits); got != 6 {
		t.Errorf("visits = %v, want 6", got)
	}
	if got := testutil.ToFloat64(h.faults); got != 1 {
		t.Errorf("faults = %v, want 1", got)
	}
	if got := testutil.ToFloat64(h.depth); got != 2 {
		t.Errorf("depth = %v, want last value 2", got)
	}
	if got := testutil.ToFloat64(h.totalFlow); got != 0 {
		t.Errorf("totalFlow = %v, want last value 0", got)
	}
}

func TestLoadMetrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	h := New(reg)
	ctx := context.Background()

	h.OnLoadComplete(ctx, "a.json", 3, time.Millisecond, nil)
	h.OnLoadComplete(ctx, "b.json", 0, time.Millisecond, errors.New("boom"))
	h.OnCatalogLoad(ctx, "c.toml", 2, nil)

	if got := testutil.ToFloat64(h.loads.WithLabelValues("ok")); got != 1 {
		t.Errorf("loads{ok} = %v, want 1", got)
	}
	if got := testutil.ToFloat64(h.loads.WithLabelValues("error")); got != 1 {
		t.Errorf("loads{error} = %v, want 1", got)
	}
	if got := testutil.ToFloat64(h.catalogs.WithLabelValues("ok")); got != 1 {
		t.Errorf("catalogs{ok} = %v, want 1", got)
	}
	if n := testutil.CollectAndCount(h.loadDuration); n != 1 {
		t.Errorf("loadDuration series = %d, want 1", n)
	}
}

func TestRegistersAllCollectors(t *testing.T) {
	reg := prometheus.NewRegistry()
	New(reg)
	mfs, err := reg.Gather()
	if err != nil {
		t.Fatalf("Gather() = %v", err)
	}
	// Vectors without observed labels are not reported.
	if len(mfs) != 7 {
		t.Errorf("gathered %d families, want 7", len(mfs))
	}
}
