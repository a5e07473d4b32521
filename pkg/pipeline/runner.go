package pipeline

import (
	"context"
	"fmt"
	"runtime"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/matzehuels/pipegrid/pkg/diagram"
	"github.com/matzehuels/pipegrid/pkg/flow"
	"github.com/matzehuels/pipegrid/pkg/observability"
	"github.com/matzehuels/pipegrid/pkg/parts"
)

// Runner executes the pipeline against one part catalog.
//
// The Runner holds no per-run state; multiple goroutines can safely use the
// same Runner with different options.
type Runner struct {
	Catalog *parts.Catalog
	Logger  *log.Logger
}

// NewRunner creates a runner resolving part types through catalog.
// If catalog is nil, the built-in catalog is used.
func NewRunner(catalog *parts.Catalog, logger *log.Logger) *Runner {
	if catalog == nil {
		catalog = parts.Builtin()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{
		Catalog: catalog,
		Logger:  logger,
	}
}

// Execute loads the diagram named by opts and computes its flows.
func (r *Runner) Execute(ctx context.Context, opts Options) (*Result, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}

	loadStart := time.Now()
	d, err := r.Load(ctx, opts.DiagramPath)
	if err != nil {
		return nil, fmt.Errorf("load: %w", err)
	}
	loadTime := time.Since(loadStart)

	res, err := r.Compute(ctx, d, opts)
	if err != nil {
		return nil, err
	}
	res.Stats.LoadTime = loadTime
	return res, nil
}

// Load reads and validates a diagram file.
func (r *Runner) Load(ctx context.Context, path string) (*diagram.Diagram, error) {
	hooks := observability.Pipeline()
	hooks.OnLoadStart(ctx, path)

	start := time.Now()
	d, err := diagram.ReadFile(path)
	n := 0
	if d != nil {
		n = len(d.Parts)
	}
	hooks.OnLoadComplete(ctx, path, n, time.Since(start), err)
	if err != nil {
		return nil, err
	}

	r.Logger.Debug("loaded diagram", "name", d.Name, "parts", n)
	return d, nil
}

// Compute computes the flows of an already loaded diagram. Faults found
// during the computation are reported in the result, not as an error.
func (r *Runner) Compute(ctx context.Context, d *diagram.Diagram, opts Options) (*Result, error) {
	if err := opts.ValidateForCompute(); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	runID := uuid.NewString()
	logger := r.Logger
	if opts.Logger != nil {
		logger = opts.Logger
	}
	logger = logger.With("run", runID[:8])
	hooks := observability.Pipeline()
	hooks.OnComputeStart(ctx, runID, len(d.Parts))

	start := time.Now()
	engine := flow.NewEngine(r.Catalog, flow.Options{
		BoundaryPressure: opts.BoundaryPressure,
		Logger:           logger,
	})
	fr := engine.Compute(d.FlowParts())
	elapsed := time.Since(start)

	hooks.OnComputeComplete(ctx, runID, observability.ComputeSummary{
		Parts:    fr.Stats.Parts,
		Sources:  fr.Stats.Sources,
		Visits:   fr.Stats.Visits,
		MaxDepth: fr.Stats.MaxDepth,
		Faults:   len(fr.Faults),
		Total:    fr.Total(),
	}, elapsed)

	res := &Result{
		RunID:   runID,
		Diagram: d,
		Flow:    fr,
		Stats:   Stats{ComputeTime: elapsed},
	}

	logger.Info("computed flows",
		"diagram", d.Name,
		"parts", fr.Stats.Parts,
		"sources", fr.Stats.Sources,
		"faults", len(fr.Faults),
		"duration", elapsed)
	for _, f := range fr.Faults {
		logger.Warn("flow fault", "part", f.Part, "code", f.Code(), "msg", f.Err.Message)
	}
	return res, nil
}

// ComputeAll computes several diagrams concurrently. Results are returned in
// input order. The first error cancels the remaining computations.
func (r *Runner) ComputeAll(ctx context.Context, diagrams []*diagram.Diagram, opts Options) ([]*Result, error) {
	if err := opts.ValidateForCompute(); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}

	results := make([]*Result, len(diagrams))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i, d := range diagrams {
		g.Go(func() error {
			res, err := r.Compute(ctx, d, opts)
			if err != nil {
				return fmt.Errorf("diagram %d (%s): %w", i, d.Name, err)
			}
			results[i] = res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
