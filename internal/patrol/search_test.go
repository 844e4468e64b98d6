package patrol

import (
	"sync/atomic"
	"testing"
)

func TestCountPossibleLoopsExample(t *testing.T) {
	t.Parallel()

	got, err := CountPossibleLoops(exampleBoard)
	if err != nil {
		t.Fatalf("CountPossibleLoops: %v", err)
	}
	if got != 6 {
		t.Errorf("CountPossibleLoops = %d, want 6", got)
	}
}

func TestFueledSearchMatchesExact(t *testing.T) {
	t.Parallel()

	area, err := ParseArea(exampleBoard)
	if err != nil {
		t.Fatalf("ParseArea: %v", err)
	}
	candidates := area.Clone().Patrol()

	exact := area.CountLoops(candidates, SearchConfig{})
	fueled := area.CountLoops(candidates, SearchConfig{Fuel: 6000})
	if exact != fueled {
		t.Errorf("exact search found %d loops, fueled search %d", exact, fueled)
	}
}

func TestLoopClassificationIsIdempotent(t *testing.T) {
	t.Parallel()

	area, err := ParseArea(exampleBoard)
	if err != nil {
		t.Fatalf("ParseArea: %v", err)
	}

	for i := range area.Clone().Patrol() {
		first := area.Loops(i, 0)
		for range 3 {
			if area.Loops(i, 0) != first {
				t.Fatalf("classification of obstruction at %d changed between runs", i)
			}
		}
	}
}

func TestLoopCountNeverExceedsVisited(t *testing.T) {
	t.Parallel()

	area, err := ParseArea(exampleBoard)
	if err != nil {
		t.Fatalf("ParseArea: %v", err)
	}
	candidates := area.Clone().Patrol()

	loops := area.CountLoops(candidates, SearchConfig{})
	if loops > len(candidates) {
		t.Errorf("found %d loops among %d candidates", loops, len(candidates))
	}
}

func TestSearchLeavesOriginalAreaIntact(t *testing.T) {
	t.Parallel()

	area, err := ParseArea(exampleBoard)
	if err != nil {
		t.Fatalf("ParseArea: %v", err)
	}
	guard := area.Guard

	area.CountLoops(area.Clone().Patrol(), SearchConfig{Workers: 4})

	if area.Guard != guard {
		t.Error("loop search moved the original guard")
	}
	for i := 0; i < area.Grid.Len(); i++ {
		want, _ := ParseArea(exampleBoard)
		got, _ := area.Grid.At(i)
		cell, _ := want.Grid.At(i)
		if got != cell {
			t.Fatalf("loop search mutated the original grid at %d", i)
		}
	}
}

func TestSearchProgressCoversEveryTrial(t *testing.T) {
	t.Parallel()

	area, err := ParseArea(exampleBoard)
	if err != nil {
		t.Fatalf("ParseArea: %v", err)
	}
	candidates := area.Clone().Patrol()

	var calls atomic.Int64
	area.CountLoops(candidates, SearchConfig{
		Workers: 2,
		Progress: func(done, total int) {
			calls.Add(1)
			if total != len(candidates) {
				t.Errorf("progress total = %d, want %d", total, len(candidates))
			}
		},
	})

	if int(calls.Load()) != len(candidates) {
		t.Errorf("progress fired %d times, want %d", calls.Load(), len(candidates))
	}
}

func TestWorkerCountDoesNotChangeTheAnswer(t *testing.T) {
	t.Parallel()

	area, err := ParseArea(exampleBoard)
	if err != nil {
		t.Fatalf("ParseArea: %v", err)
	}
	candidates := area.Clone().Patrol()

	want := area.CountLoops(candidates, SearchConfig{Workers: 1})
	for _, workers := range []int{2, 4, 8} {
		if got := area.CountLoops(candidates, SearchConfig{Workers: workers}); got != want {
			t.Errorf("workers=%d found %d loops, workers=1 found %d", workers, got, want)
		}
	}
}
