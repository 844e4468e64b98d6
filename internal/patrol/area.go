package patrol

import (
	"fmt"
	"strings"
)

// Departed is the guard position after it has walked off the board.
const Departed = -1

// Guard is a linear position plus a facing. It is comparable, so a
// (position, facing) pair can key a map during cycle detection.
type Guard struct {
	Index  int
	Facing Facing
}

type ActionKind uint8

const (
	Advance ActionKind = iota
	Rotate
	Leave
)

// Action describes the outcome of evaluating one simulation step.
// Index is meaningful only for Advance.
type Action struct {
	Kind  ActionKind
	Index int
}

// Area is the combined grid-plus-guard state being simulated.
type Area struct {
	Grid  Grid
	Guard Guard
}

// ParseArea reads a rectangular character grid: '.' clear, '#'
// obstructed, and exactly one of '^', '>', 'V', '<' marking the
// guard's starting cell and initial facing.
func ParseArea(input string) (*Area, error) {
	lines := strings.Split(strings.TrimRight(input, "\n"), "\n")

	cols := len(lines[0])
	if cols == 0 {
		return nil, ErrEmptyInput
	}

	var (
		cells = make([]Cell, 0, len(lines)*cols)
		guard = Guard{Index: Departed}
	)
	for row, line := range lines {
		if len(line) != cols {
			return nil, fmt.Errorf("%w: row %d is %d wide, want %d",
				ErrNotRectangular, row, len(line), cols)
		}
		for col := 0; col < cols; col++ {
			b := line[col]
			cell, ok := parseCell(b)
			if !ok {
				return nil, fmt.Errorf("%w: %q at row %d col %d",
					ErrBadCharacter, b, row, col)
			}
			if facing, isGuard := parseFacing(b); isGuard {
				if guard.Index != Departed {
					return nil, fmt.Errorf("%w: second marker at row %d col %d",
						ErrExtraGuard, row, col)
				}
				guard = Guard{Index: row*cols + col, Facing: facing}
			}
			cells = append(cells, cell)
		}
	}
	if guard.Index == Departed {
		return nil, ErrNoGuard
	}

	return &Area{
		Grid:  Grid{rows: len(lines), cols: cols, cells: cells},
		Guard: guard,
	}, nil
}

// NextAction evaluates one step of the patrol rule without mutating
// the area: Leave past the boundary, Rotate into an obstruction,
// Advance onto clear ground.
//
// panics [AssertionError]
func (a *Area) NextAction() Action {
	next, ok := a.Grid.Step(a.Guard.Index, a.Guard.Facing)
	if !ok {
		return Action{Kind: Leave}
	}
	cell, ok := a.Grid.At(next)
	if !ok {
		panic(AssertionError{fmt.Sprintf("step produced out-of-range index %d", next)})
	}
	if cell == Obstructed {
		return Action{Kind: Rotate}
	}
	return Action{Kind: Advance, Index: next}
}

// Apply runs an action against the guard.
func (a *Area) Apply(act Action) {
	switch act.Kind {
	case Advance:
		a.Guard.Index = act.Index
	case Rotate:
		a.Guard.Facing = a.Guard.Facing.TurnRight()
	case Leave:
		a.Guard.Index = Departed
	}
}

// Step advances the simulation by one action and reports it.
func (a *Area) Step() Action {
	act := a.NextAction()
	a.Apply(act)
	return act
}

// Clone yields a fully isolated copy; simulating one copy never
// touches another.
func (a *Area) Clone() *Area {
	return &Area{Grid: *a.Grid.Clone(), Guard: a.Guard}
}
