// Package pipeline provides the load → compute pipeline shared by the CLI and
// library callers.
//
// # Architecture
//
// The pipeline has two stages:
//
//  1. Load: read a diagram file (JSON or TOML) and validate it
//  2. Compute: resolve part types against a catalog and compute flows
//
// Each stage can be run independently or through [Runner.Execute].
//
// # Usage
//
//	catalog, err := pipeline.LoadCatalogs(ctx, []string{"brewery.toml"}, logger)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	runner := pipeline.NewRunner(catalog, logger)
//	result, err := runner.Execute(ctx, pipeline.Options{DiagramPath: "mash.json"})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	for _, p := range result.Flow.Parts {
//	    fmt.Println(p.Identity(), p.Flow)
//	}
package pipeline

import (
	"fmt"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/pipegrid/pkg/diagram"
	"github.com/matzehuels/pipegrid/pkg/errors"
	"github.com/matzehuels/pipegrid/pkg/flow"
)

// =============================================================================
// Default Values
// =============================================================================

// DefaultBoundaryPressure is the driving pressure used when Options leaves it unset.
const DefaultBoundaryPressure = flow.DefaultBoundaryPressure

// EnvCatalog names an environment variable holding the path of an extra
// catalog loaded by the CLI.
const EnvCatalog = "PIPEGRID_CATALOG"

// =============================================================================
// Options - Pipeline Configuration
// =============================================================================

// Options contains the configuration of one pipeline run.
type Options struct {
	// DiagramPath is the diagram file read by Execute.
	DiagramPath string `json:"diagram_path,omitempty"`

	// BoundaryPressure is the driving pressure at every source.
	BoundaryPressure float64 `json:"boundary_pressure,omitempty"`

	// Logger overrides the runner's logger for this run. Runtime only.
	Logger *log.Logger `json:"-"`

	// validated tracks whether ValidateAndSetDefaults has been called.
	validated bool
}

// ValidateAndSetDefaults checks required fields and applies defaults.
// This method is idempotent - calling it multiple times has the same effect as calling it once.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}
	if o.DiagramPath == "" {
		return errors.New(errors.ErrCodeInvalidInput, "diagram path is required")
	}
	if err := errors.ValidatePath(o.DiagramPath); err != nil {
		return err
	}
	if err := o.ValidateForCompute(); err != nil {
		return err
	}
	o.validated = true
	return nil
}

// ValidateForCompute validates and sets defaults for the compute stage only.
func (o *Options) ValidateForCompute() error {
	if o.BoundaryPressure < 0 {
		return errors.New(errors.ErrCodeInvalidInput, "boundary pressure must not be negative, got %g", o.BoundaryPressure)
	}
	if o.BoundaryPressure == 0 {
		o.BoundaryPressure = DefaultBoundaryPressure
	}
	return nil
}

// =============================================================================
// Result
// =============================================================================

// Result contains the outputs of a pipeline run.
type Result struct {
	// RunID identifies this computation in logs and hooks.
	RunID string

	// Diagram is the diagram that was computed.
	Diagram *diagram.Diagram

	// Flow is the annotated diagram with faults and traversal statistics.
	Flow *flow.Result

	// Stats contains timing information.
	Stats Stats
}

// Stats contains pipeline execution statistics.
type Stats struct {
	LoadTime    time.Duration
	ComputeTime time.Duration
}

// Summary returns a one-line description of the result for logs.
func (r *Result) Summary() string {
	return fmt.Sprintf("%d parts, %d sources, %d faults, total flow %.3g",
		r.Flow.Stats.Parts, r.Flow.Stats.Sources, len(r.Flow.Faults), r.Flow.Total())
}
