package grid

import "fmt"

// Point is an integer grid coordinate. Y grows downward.
type Point struct {
	X int `json:"x" toml:"x"`
	Y int `json:"y" toml:"y"`
}

// String formats the point as "(x,y)".
func (p Point) String() string { return fmt.Sprintf("(%d,%d)", p.X, p.Y) }

// Neighbor returns the coordinate adjacent to p in direction angle.
// Non-cardinal angles fall through to the up neighbor.
func Neighbor(p Point, angle int) Point {
	switch angle {
	case Right:
		return Point{X: p.X + 1, Y: p.Y}
	case Down:
		return Point{X: p.X, Y: p.Y + 1}
	case Left:
		return Point{X: p.X - 1, Y: p.Y}
	default:
		return Point{X: p.X, Y: p.Y - 1}
	}
}
