package flow

import (
	"errors"
	"fmt"

	pgerrors "github.com/matzehuels/pipegrid/pkg/errors"
)

// Fault is a problem found at one part while computing flows. Faults are
// local: the rest of the diagram is still computed.
type Fault struct {
	Part  Identity
	Angle int // exit angle, or -1 when the fault concerns the whole part
	Err   *pgerrors.Error
}

// Error implements the error interface.
func (f Fault) Error() string {
	if f.Angle < 0 {
		return fmt.Sprintf("part %s: %v", f.Part, f.Err)
	}
	return fmt.Sprintf("part %s exit %d: %v", f.Part, f.Angle, f.Err)
}

// Unwrap exposes the coded error to errors.Is/As and [pgerrors.Is].
func (f Fault) Unwrap() error { return f.Err }

// Code returns the fault's error code.
func (f Fault) Code() pgerrors.Code { return f.Err.Code }

// Stats describes the work done by one computation.
type Stats struct {
	Parts    int // distinct parts in the diagram
	Sources  int // source walks performed
	Visits   int // parts entered, summed over all walks
	MaxDepth int // deepest recursion reached by any walk
}

// Result is the outcome of [Engine.Compute].
type Result struct {
	// Parts holds the input parts in input order, each annotated with the
	// flows recorded at its exits.
	Parts []Part

	// Faults lists local problems, in the order they were found.
	Faults []Fault

	Stats Stats
}

// Err returns all faults joined into one error, or nil when there are none.
func (r *Result) Err() error {
	if len(r.Faults) == 0 {
		return nil
	}
	errs := make([]error, len(r.Faults))
	for i, f := range r.Faults {
		errs[i] = f
	}
	return errors.Join(errs...)
}

// Find returns the annotated part with the given identity.
func (r *Result) Find(id Identity) (Part, bool) {
	for _, p := range r.Parts {
		if p.Identity() == id {
			return p, true
		}
	}
	return Part{}, false
}

// FlowAt returns the flow recorded at angle on the part identified by id.
func (r *Result) FlowAt(id Identity, angle int) float64 {
	p, _ := r.Find(id)
	return p.Flow.At(angle)
}

// Total returns the sum of every recorded flow over distinct parts.
func (r *Result) Total() float64 {
	seen := make(map[Identity]bool, len(r.Parts))
	var sum float64
	for _, p := range r.Parts {
		if id := p.Identity(); !seen[id] {
			seen[id] = true
			sum += p.Flow.Total()
		}
	}
	return sum
}
