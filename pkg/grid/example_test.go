package grid_test

import (
	"fmt"

	"github.com/matzehuels/pipegrid/pkg/grid"
)

func ExampleRotated() {
	fmt.Println(grid.Rotated(270, 180))
	fmt.Println(grid.Rotated(-90, 0))
	// Output:
	// 90
	// 270
}

func ExampleNeighbor() {
	p := grid.Point{X: 2, Y: 2}
	fmt.Println(grid.Neighbor(p, grid.Right))
	fmt.Println(grid.Neighbor(p, grid.Up))
	// Output:
	// (3,2)
	// (2,1)
}

func ExampleRoutingTable_Rotate() {
	straight := grid.RoutingTable{
		grid.Left:  {{Out: grid.Right, Friction: 1}},
		grid.Right: {{Out: grid.Left, Friction: 1}},
	}
	vertical := straight.Rotate(90)
	fmt.Println(vertical.Entries())
	fmt.Println(vertical.Exits(grid.Up)[0].Out)
	// Output:
	// [0 180]
	// 180
}
