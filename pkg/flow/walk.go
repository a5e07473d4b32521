package flow

import (
	"maps"

	pgerrors "github.com/matzehuels/pipegrid/pkg/errors"
	"github.com/matzehuels/pipegrid/pkg/grid"
	"github.com/matzehuels/pipegrid/pkg/parts"
)

// arena indexes the parts of one computation. Duplicate identities share the
// index of their first occurrence (canon), and only canonical indices are
// walked.
type arena struct {
	ids     []Identity
	types   []parts.Type
	tables  []grid.RoutingTable // world-frame routing tables
	canon   []int
	at      map[grid.Point][]int
	sources []int
	faults  []Fault
}

func newArena(reg parts.Registry, in []Part) *arena {
	a := &arena{
		ids:    make([]Identity, len(in)),
		types:  make([]parts.Type, len(in)),
		tables: make([]grid.RoutingTable, len(in)),
		canon:  make([]int, len(in)),
		at:     make(map[grid.Point][]int),
	}
	first := make(map[Identity]int, len(in))
	for i, p := range in {
		id := p.Identity()
		a.ids[i] = id
		if j, dup := first[id]; dup {
			a.canon[i] = j
			continue
		}
		first[id] = i
		a.canon[i] = i
		a.at[p.Point()] = append(a.at[p.Point()], i)

		t, ok := reg.Lookup(p.Type)
		if !ok {
			a.faults = append(a.faults, Fault{
				Part:  id,
				Angle: -1,
				Err:   pgerrors.New(pgerrors.ErrCodeUnknownPartType, "unknown part type %q", p.Type),
			})
			continue
		}
		a.types[i] = t
		a.tables[i] = t.Routes.Rotate(p.Rotation)
		if t.IsSource {
			a.sources = append(a.sources, i)
		}
	}
	return a
}

// neighbor returns the first part next to i in direction angle that accepts
// fluid from the opposite side.
func (a *arena) neighbor(i, angle int) (int, bool) {
	p := grid.Neighbor(grid.Point{X: a.ids[i].X, Y: a.ids[i].Y}, angle)
	from := grid.Reverse(angle)
	for _, j := range a.at[p] {
		if a.tables[j].Accepts(from) {
			return j, true
		}
	}
	return 0, false
}

// entry returns the side fluid effectively enters part i from. Sources
// always emit from the single entry of their unrotated table.
func (a *arena) entry(i, in int) int {
	if e, ok := a.types[i].SourceEntry(); ok {
		return e
	}
	return in
}

// exits returns the world-frame exits of part i when entered from in.
func (a *arena) exits(i, in int) []grid.Exit {
	return a.tables[i].Exits(a.entry(i, in))
}

// walk is the scratch state of one source's traversal.
type walk struct {
	a        *arena
	boundary float64

	flows   []Flows
	visited []bool
	trace   [][]int // entry angles per part, in order of entry

	faults   []Fault
	visits   int
	maxDepth int
}

func newWalk(a *arena, boundary float64) *walk {
	return &walk{
		a:        a,
		boundary: boundary,
		flows:    make([]Flows, len(a.ids)),
		visited:  make([]bool, len(a.ids)),
		trace:    make([][]int, len(a.ids)),
	}
}

// visit enters part i from side in with friction acc accumulated so far, and
// records the flow at each of its exits.
func (w *walk) visit(i, in int, acc float64, depth int) {
	w.visited[i] = true
	w.trace[i] = append(w.trace[i], in)
	w.visits++
	w.maxDepth = max(w.maxDepth, depth)

	existing := maps.Clone(w.flows[i])

	for _, exit := range w.a.exits(i, in) {
		value := existing.At(exit.Out)
		friction := acc + exit.Friction

		if pressure, ok := exit.Bounded(); ok {
			if pressure < w.boundary {
				if friction == 0 {
					w.faults = append(w.faults, Fault{
						Part:  w.a.ids[i],
						Angle: exit.Out,
						Err: pgerrors.New(pgerrors.ErrCodeZeroFriction,
							"no friction between source and pressure %g", pressure),
					})
				} else {
					value += (w.boundary - pressure) / friction
				}
			}
		} else if next, ok := w.a.neighbor(i, exit.Out); ok && !w.visited[next] {
			from := grid.Reverse(exit.Out)
			w.visit(next, from, friction, depth+1)
			value = w.exitFlow(next, from)
		}

		w.record(i, exit.Out, value)
	}
}

// exitFlow sums the flows recorded on part i at the exits reachable from in.
func (w *walk) exitFlow(i, in int) float64 {
	var sum float64
	for _, exit := range w.a.exits(i, in) {
		sum += w.flows[i].At(exit.Out)
	}
	return sum
}

func (w *walk) record(i, angle int, v float64) {
	if w.flows[i] == nil {
		w.flows[i] = make(Flows)
	}
	w.flows[i].add(angle, v)
}
