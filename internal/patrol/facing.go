package patrol

// Facing is the guard's cardinal direction of travel.
type Facing uint8

const (
	North Facing = iota
	East
	South
	West
)

// TurnRight rotates the facing clockwise: N, E, S, W, N. The guard
// never turns any other way.
func (f Facing) TurnRight() Facing {
	return (f + 1) % 4
}

func (f Facing) String() string {
	switch f {
	case North:
		return "N"
	case East:
		return "E"
	case South:
		return "S"
	case West:
		return "W"
	}
	return "?"
}

// parseFacing maps a guard marker to the guard's initial facing.
func parseFacing(b byte) (Facing, bool) {
	switch b {
	case '^':
		return North, true
	case '>':
		return East, true
	case 'V':
		return South, true
	case '<':
		return West, true
	}
	return 0, false
}
