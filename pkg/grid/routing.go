package grid

import (
	"errors"
	"fmt"
	"slices"
)

var (
	// ErrNonCardinalAngle is returned by [RoutingTable.Validate] when an entry
	// or exit angle is not one of the four cardinal directions.
	ErrNonCardinalAngle = errors.New("angle is not cardinal")

	// ErrNegativeFriction is returned by [RoutingTable.Validate] when an exit
	// declares a friction below zero.
	ErrNegativeFriction = errors.New("friction must not be negative")

	// ErrAngleCollision is returned by [RoutingTable.Validate] when two entry
	// angles normalize to the same direction and one would shadow the other.
	ErrAngleCollision = errors.New("entry angles collide")
)

// Exit is one way out of a part for a given entry side.
//
// An exit with a Pressure is a fixed boundary: flow through it is driven by
// the difference between the boundary pressure and Pressure, divided by the
// friction accumulated along the path. An exit without a Pressure connects to
// whatever neighbor sits on the Out side.
type Exit struct {
	Out      int      `json:"out" toml:"out"`
	Friction float64  `json:"friction,omitempty" toml:"friction,omitempty"`
	Pressure *float64 `json:"pressure,omitempty" toml:"pressure,omitempty"`
}

// Bounded returns the exit's fixed pressure and whether it has one.
func (e Exit) Bounded() (float64, bool) {
	if e.Pressure == nil {
		return 0, false
	}
	return *e.Pressure, true
}

// Pressure is a convenience for building exits with a fixed pressure.
func Pressure(v float64) *float64 { return &v }

// RoutingTable maps an entry angle to the ordered exits reachable from it.
type RoutingTable map[int][]Exit

// Rotate returns a copy of t with every entry angle and exit angle turned by
// offset degrees. Friction and pressure are copied unchanged. The receiver is
// not modified.
func (t RoutingTable) Rotate(offset int) RoutingTable {
	out := make(RoutingTable, len(t))
	for in, exits := range t {
		rotated := make([]Exit, len(exits))
		for i, e := range exits {
			rotated[i] = Exit{
				Out:      Rotated(e.Out, offset),
				Friction: e.Friction,
				Pressure: e.Pressure,
			}
		}
		out[Rotated(in, offset)] = rotated
	}
	return out
}

// Exits returns the exits for entry angle in, or nil when the table has none.
func (t RoutingTable) Exits(in int) []Exit {
	return t[in]
}

// Accepts reports whether fluid can enter from angle in.
func (t RoutingTable) Accepts(in int) bool {
	_, ok := t[in]
	return ok
}

// Entries returns the entry angles in ascending order.
func (t RoutingTable) Entries() []int {
	keys := make([]int, 0, len(t))
	for k := range t {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}

// Validate checks that every angle in t is cardinal, that no two entry angles
// normalize to the same direction, and that frictions are non-negative.
// All problems are reported, joined into one error.
func (t RoutingTable) Validate() error {
	var errs []error
	seen := make(map[int]int, len(t))
	for _, in := range t.Entries() {
		if !IsCardinal(in) {
			errs = append(errs, fmt.Errorf("entry %d: %w", in, ErrNonCardinalAngle))
		}
		norm := Rotated(in, 0)
		if prev, ok := seen[norm]; ok {
			errs = append(errs, fmt.Errorf("entries %d and %d: %w", prev, in, ErrAngleCollision))
		}
		seen[norm] = in
		for _, e := range t[in] {
			if !IsCardinal(e.Out) {
				errs = append(errs, fmt.Errorf("entry %d exit %d: %w", in, e.Out, ErrNonCardinalAngle))
			}
			if e.Friction < 0 {
				errs = append(errs, fmt.Errorf("entry %d exit %d: %w", in, e.Out, ErrNegativeFriction))
			}
		}
	}
	return errors.Join(errs...)
}
