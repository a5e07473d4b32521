package flow

import (
	"fmt"
	"maps"
	"slices"

	"github.com/matzehuels/pipegrid/pkg/grid"
)

// Flows maps an exit angle to the flow recorded there. A nil Flows reads as
// zero everywhere.
type Flows map[int]float64

// At returns the flow at angle, or 0 when none is recorded.
func (f Flows) At(angle int) float64 { return f[angle] }

// Angles returns the recorded angles in ascending order.
func (f Flows) Angles() []int {
	return slices.Sorted(maps.Keys(f))
}

// Total returns the sum of all recorded flows.
func (f Flows) Total() float64 {
	var sum float64
	for _, v := range f {
		sum += v
	}
	return sum
}

// add accumulates v onto angle, creating the key even when v is 0.
func (f Flows) add(angle int, v float64) {
	f[angle] += v
}

// Part is a part instance placed on the diagram.
type Part struct {
	X        int
	Y        int
	Type     string
	Rotation int
	Flow     Flows
}

// Point returns the part's grid position.
func (p Part) Point() grid.Point { return grid.Point{X: p.X, Y: p.Y} }

// Identity returns the key that identifies p across snapshots.
func (p Part) Identity() Identity {
	return Identity{X: p.X, Y: p.Y, Type: p.Type, Rotation: p.Rotation}
}

// Identity distinguishes parts: two parts are the same part when position,
// type and rotation all agree.
type Identity struct {
	X        int
	Y        int
	Type     string
	Rotation int
}

// String formats the identity as "Type@(x,y)/rotation".
func (id Identity) String() string {
	return fmt.Sprintf("%s@(%d,%d)/%d", id.Type, id.X, id.Y, id.Rotation)
}
