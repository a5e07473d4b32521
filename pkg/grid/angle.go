package grid

// Cardinal angles in degrees, clockwise from up.
const (
	Up    = 0
	Right = 90
	Down  = 180
	Left  = 270
)

// Rotations lists the rotations a part may be placed with.
var Rotations = []int{Up, Right, Down, Left}

// Rotated returns (angle + offset) mod 360, normalized into [0, 360).
func Rotated(angle, offset int) int {
	r := (angle + offset) % 360
	if r < 0 {
		r += 360
	}
	return r
}

// Reverse returns the opposite direction of angle.
func Reverse(angle int) int { return Rotated(angle, 180) }

// IsCardinal reports whether angle is one of 0, 90, 180 or 270 after
// normalization.
func IsCardinal(angle int) bool {
	return Rotated(angle, 0)%90 == 0
}

// IsRotation reports whether r is a valid part rotation. Unlike [IsCardinal],
// r must already be normalized.
func IsRotation(r int) bool {
	switch r {
	case Up, Right, Down, Left:
		return true
	}
	return false
}
