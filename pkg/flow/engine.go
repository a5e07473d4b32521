package flow

import (
	"io"
	"maps"

	"github.com/charmbracelet/log"

	pgerrors "github.com/matzehuels/pipegrid/pkg/errors"
	"github.com/matzehuels/pipegrid/pkg/parts"
)

// DefaultBoundaryPressure is the driving pressure assumed at every source.
const DefaultBoundaryPressure = 10.0

// Options configures an [Engine].
type Options struct {
	// BoundaryPressure is the pressure sources drive with. Zero means
	// DefaultBoundaryPressure.
	BoundaryPressure float64

	// Logger receives debug traces of each walk. Nil discards them.
	Logger *log.Logger
}

// Engine computes flows for diagrams whose part types resolve through a
// registry.
type Engine struct {
	registry parts.Registry
	boundary float64
	logger   *log.Logger
}

// NewEngine creates an engine resolving part types through reg.
func NewEngine(reg parts.Registry, opts Options) *Engine {
	if opts.BoundaryPressure == 0 {
		opts.BoundaryPressure = DefaultBoundaryPressure
	}
	if opts.Logger == nil {
		opts.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
	return &Engine{
		registry: reg,
		boundary: opts.BoundaryPressure,
		logger:   opts.Logger,
	}
}

// BoundaryPressure returns the pressure sources drive with.
func (e *Engine) BoundaryPressure() float64 { return e.boundary }

// Compute returns in annotated with the flow at every exit reached from a
// source. Flow values already present on the input parts are ignored, so the
// result only depends on positions, types and rotations. The input slice and
// its maps are never modified.
func (e *Engine) Compute(in []Part) *Result {
	a := newArena(e.registry, in)
	res := &Result{
		Faults: a.faults,
	}
	for i, c := range a.canon {
		if c == i {
			res.Stats.Parts++
		}
	}

	total := make([]Flows, len(in))
	for _, src := range a.sources {
		w := newWalk(a, e.boundary)
		w.visit(src, 0, 0, 1)

		for i, f := range w.flows {
			if f == nil {
				continue
			}
			if total[i] == nil {
				total[i] = make(Flows, len(f))
			}
			for angle, v := range f {
				total[i].add(angle, v)
			}
		}

		res.Faults = append(res.Faults, w.faults...)
		res.Stats.Sources++
		res.Stats.Visits += w.visits
		res.Stats.MaxDepth = max(res.Stats.MaxDepth, w.maxDepth)
		e.logger.Debug("walked source",
			"source", a.ids[src],
			"visits", w.visits,
			"depth", w.maxDepth)
		if e.logger.GetLevel() <= log.DebugLevel {
			for i, from := range w.trace {
				if len(from) > 0 {
					e.logger.Debug("entered part", "part", a.ids[i], "from", from)
				}
			}
		}
	}

	res.Parts = make([]Part, len(in))
	for i, p := range in {
		p.Flow = maps.Clone(total[a.canon[i]])
		res.Parts[i] = p
	}
	res.Faults = dedupeFaults(res.Faults)
	return res
}

// Compute computes flows with default options.
func Compute(reg parts.Registry, in []Part) *Result {
	return NewEngine(reg, Options{}).Compute(in)
}

func dedupeFaults(faults []Fault) []Fault {
	type key struct {
		id    Identity
		angle int
		code  pgerrors.Code
	}
	seen := make(map[key]bool, len(faults))
	out := faults[:0:0]
	for _, f := range faults {
		k := key{f.Part, f.Angle, f.Code()}
		if !seen[k] {
			seen[k] = true
			out = append(out, f)
		}
	}
	return out
}
