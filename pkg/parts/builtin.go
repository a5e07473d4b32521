package parts

import "github.com/matzehuels/pipegrid/pkg/grid"

// Built-in part type names.
const (
	StraightTube = "StraightTube"
	ElbowTube    = "ElbowTube"
	TeeTube      = "TeeTube"
	CrossTube    = "CrossTube"
	OpenValve    = "OpenValve"
	ClosedValve  = "ClosedValve"
	CheckValve   = "CheckValve"
	Pump         = "Pump"
	LiquidSource = "LiquidSource"
	KettleOutlet = "KettleOutlet"
	KettleInlet  = "KettleInlet"
	Drain        = "Drain"
)

const (
	tubeFriction  = 1
	valveFriction = 2
	pumpFriction  = 0.5
)

// Builtin returns a new catalog with the standard part types. Each call
// returns an independent catalog that callers may extend.
func Builtin() *Catalog {
	return NewCatalog(builtinTypes()...)
}

func builtinTypes() []Type {
	const (
		up    = grid.Up
		right = grid.Right
		down  = grid.Down
		left  = grid.Left
	)
	through := func(friction float64, sides ...int) grid.RoutingTable {
		t := make(grid.RoutingTable, len(sides))
		for _, in := range sides {
			for _, out := range sides {
				if out != in {
					t[in] = append(t[in], grid.Exit{Out: out, Friction: friction})
				}
			}
		}
		return t
	}

	return []Type{
		{Name: StraightTube, Routes: through(tubeFriction, left, right)},
		{Name: ElbowTube, Routes: through(tubeFriction, right, down)},
		{Name: TeeTube, Routes: through(tubeFriction, right, down, left)},
		{Name: CrossTube, Routes: through(tubeFriction, up, right, down, left)},
		{Name: OpenValve, Routes: through(valveFriction, left, right)},
		{Name: ClosedValve, Routes: grid.RoutingTable{}},
		{Name: CheckValve, Routes: grid.RoutingTable{
			left: {{Out: right, Friction: valveFriction}},
		}},
		{Name: Pump, Routes: grid.RoutingTable{
			left: {{Out: right, Friction: pumpFriction}},
		}},
		{Name: LiquidSource, IsSource: true, Routes: grid.RoutingTable{
			right: {{Out: right}},
		}},
		{Name: KettleOutlet, IsSource: true, Routes: grid.RoutingTable{
			down: {{Out: down}},
		}},
		{Name: KettleInlet, Routes: grid.RoutingTable{
			down: {{Out: up, Friction: tubeFriction, Pressure: grid.Pressure(2)}},
		}},
		{Name: Drain, Routes: grid.RoutingTable{
			left: {{Out: down, Friction: tubeFriction, Pressure: grid.Pressure(0)}},
		}},
	}
}
