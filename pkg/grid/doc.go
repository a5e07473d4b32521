// Package grid provides the geometry of a process diagram: cardinal angles,
// rotation of part-local routing tables into the world frame, and neighbor
// lookup on the integer grid.
//
// # Angles
//
// Angles are integer degrees measured clockwise from "up". Only the four
// cardinal angles (0, 90, 180, 270) address neighbors:
//
//	0   -> (x, y-1)
//	90  -> (x+1, y)
//	180 -> (x, y+1)
//	270 -> (x-1, y)
//
// [Rotated] always returns an angle in [0, 360), including for negative inputs.
//
// # Routing Tables
//
// A [RoutingTable] maps the side a fluid enters a part from to the ordered list
// of [Exit]s it may leave through. Tables are authored in the part's own frame
// and turned into world angles with [RoutingTable.Rotate]:
//
//	elbow := grid.RoutingTable{
//	    90:  {{Out: 180, Friction: 1}},
//	    180: {{Out: 90, Friction: 1}},
//	}
//	world := elbow.Rotate(90) // {180: [{Out: 270}], 270: [{Out: 180}]}
//
// Rotation composes: Rotate(a).Rotate(b) equals Rotate(a+b).
package grid
