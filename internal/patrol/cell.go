// Package patrol simulates a guard walking a mapped area under the
// turn-right rule and searches for single obstruction placements that
// trap the guard in a permanent cycle.
package patrol

// Cell is the state of one square of the mapped area.
type Cell uint8

const (
	Clear Cell = iota
	Obstructed
)

func (c Cell) String() string {
	if c == Obstructed {
		return "#"
	}
	return "."
}

// parseCell accepts the board alphabet. Guard markers stand on clear
// ground.
func parseCell(b byte) (Cell, bool) {
	switch b {
	case '#':
		return Obstructed, true
	case '.', '^', '>', 'V', '<':
		return Clear, true
	}
	return 0, false
}
