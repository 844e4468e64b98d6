package patrol

import (
	"errors"
	"testing"
)

func TestParseAreaErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  error
	}{
		{"Empty", "", ErrEmptyInput},
		{"OnlyNewline", "\n", ErrEmptyInput},
		{"Ragged", "..#\n..\n...", ErrNotRectangular},
		{"NoGuard", "...\n.#.\n...", ErrNoGuard},
		{"TwoGuards", "^..\n..>\n...", ErrExtraGuard},
		{"BadCharacter", "..x\n^..\n...", ErrBadCharacter},
		{"LowercaseMarker", "..v\n...\n...", ErrBadCharacter},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()
			_, err := ParseArea(test.input)
			if !errors.Is(err, test.want) {
				t.Errorf("ParseArea(%q) error = %v, want %v", test.input, err, test.want)
			}
		})
	}
}

func TestParseAreaGuard(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		input  string
		index  int
		facing Facing
	}{
		{"Up", "...\n.^.\n...", 4, North},
		{"Right", ">..\n...\n...", 0, East},
		{"Down", "...\n...\n..V", 8, South},
		{"Left", "...\n...\n<..", 6, West},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()
			area, err := ParseArea(test.input)
			if err != nil {
				t.Fatalf("ParseArea: %v", err)
			}
			if area.Guard.Index != test.index {
				t.Errorf("guard index = %d, want %d", area.Guard.Index, test.index)
			}
			if area.Guard.Facing != test.facing {
				t.Errorf("guard facing = %v, want %v", area.Guard.Facing, test.facing)
			}
		})
	}
}

func TestTurnRightIsAFourCycle(t *testing.T) {
	t.Parallel()

	for _, start := range []Facing{North, East, South, West} {
		f := start
		for i := range 4 {
			f = f.TurnRight()
			if i < 3 && f == start {
				t.Errorf("turn right returned to %v after %d turns", start, i+1)
			}
		}
		if f != start {
			t.Errorf("four right turns from %v ended at %v", start, f)
		}
	}
}

func TestFirstActionIsLeaveAtBoundary(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
	}{
		{"TopEdgeFacingNorth", "^..\n...\n..."},
		{"RightEdgeFacingEast", "...\n..>\n..."},
		{"BottomEdgeFacingSouth", "...\n...\n.V."},
		{"LeftEdgeFacingWest", "...\n<..\n..."},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()
			area, err := ParseArea(test.input)
			if err != nil {
				t.Fatalf("ParseArea: %v", err)
			}
			if act := area.Step(); act.Kind != Leave {
				t.Errorf("first action = %+v, want Leave", act)
			}
			if area.Guard.Index != Departed {
				t.Errorf("guard index after Leave = %d, want Departed", area.Guard.Index)
			}
		})
	}
}

func TestConsecutiveObstructionsRotateTwice(t *testing.T) {
	t.Parallel()

	// The guard faces an obstruction to the north and another to the
	// east, so it must rotate twice before advancing south.
	area, err := ParseArea(".#.\n.^#\n...")
	if err != nil {
		t.Fatalf("ParseArea: %v", err)
	}

	if act := area.Step(); act.Kind != Rotate {
		t.Fatalf("first action = %+v, want Rotate", act)
	}
	if area.Guard.Facing != East {
		t.Fatalf("facing after first rotate = %v, want E", area.Guard.Facing)
	}
	if act := area.Step(); act.Kind != Rotate {
		t.Fatalf("second action = %+v, want Rotate", act)
	}
	if act := area.Step(); act.Kind != Advance {
		t.Fatalf("third action = %+v, want Advance", act)
	}
	if area.Guard.Index != 7 {
		t.Errorf("guard index after advance = %d, want 7", area.Guard.Index)
	}
}

func TestGridStepBoundaries(t *testing.T) {
	t.Parallel()

	area, err := ParseArea("^..\n...\n...")
	if err != nil {
		t.Fatalf("ParseArea: %v", err)
	}
	g := &area.Grid

	// Index 2 sits at the end of the first row: stepping east must not
	// wrap into index 3 on the next row.
	if next, ok := g.Step(2, East); ok {
		t.Errorf("Step(2, E) = %d, want no neighbor", next)
	}
	if next, ok := g.Step(3, West); ok {
		t.Errorf("Step(3, W) = %d, want no neighbor", next)
	}
	if next, ok := g.Step(4, South); !ok || next != 7 {
		t.Errorf("Step(4, S) = %d, %t, want 7, true", next, ok)
	}
	if next, ok := g.Step(4, North); !ok || next != 1 {
		t.Errorf("Step(4, N) = %d, %t, want 1, true", next, ok)
	}
}

func TestCloneIsolation(t *testing.T) {
	t.Parallel()

	area, err := ParseArea("...\n.^.\n...")
	if err != nil {
		t.Fatalf("ParseArea: %v", err)
	}

	clone := area.Clone()
	clone.Grid.Set(0, Obstructed)
	clone.Guard.Index = Departed

	if cell, _ := area.Grid.At(0); cell != Clear {
		t.Error("mutating a clone's grid leaked into the original")
	}
	if area.Guard.Index != 4 {
		t.Error("mutating a clone's guard leaked into the original")
	}
}
