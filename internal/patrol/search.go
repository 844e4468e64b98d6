package patrol

import (
	"runtime"
	"sync/atomic"

	"golang.org/x/sync/errgroup"
)

// SearchConfig tunes the obstruction loop search. The zero value asks
// for exact cycle detection across every available CPU.
type SearchConfig struct {
	// Fuel bounds a single trial's step count: a trial that has not
	// left the area within Fuel steps counts as a loop. Zero selects
	// exact (position, facing) cycle detection instead of a budget.
	Fuel int
	// Workers caps the number of concurrent trials. Zero means
	// GOMAXPROCS.
	Workers int
	// Progress, when set, receives the number of finished trials out
	// of the total. It is called from worker goroutines and must be
	// safe for concurrent use.
	Progress func(done, total int)
}

// Loops reports whether obstructing the cell at index i traps the
// guard in a cycle. The receiver is left untouched; the trial replays
// on a clone.
//
// With fuel > 0 the answer is heuristic: leaving within the budget
// proves an escape, but exhausting it only suggests a loop. With fuel
// <= 0 the trial records every (position, facing) pair it passes
// through and a repeat proves the cycle outright.
func (a *Area) Loops(i int, fuel int) bool {
	trial := a.Clone()
	trial.Grid.Set(i, Obstructed)

	if fuel > 0 {
		for range fuel {
			if trial.Step().Kind == Leave {
				return false
			}
		}
		return true
	}

	seen := map[Guard]struct{}{trial.Guard: {}}
	for {
		if trial.Step().Kind == Leave {
			return false
		}
		if _, ok := seen[trial.Guard]; ok {
			return true
		}
		seen[trial.Guard] = struct{}{}
	}
}

// CountLoops evaluates every candidate position and counts the ones
// whose obstruction forces a permanent cycle. Candidates come from an
// unobstructed patrol over the same board; obstructions anywhere else
// can never intercept the guard. Each trial owns an isolated clone, so
// trials fan out across workers with no locking and reduce to a single
// order-independent count.
func (a *Area) CountLoops(candidates map[int]struct{}, cfg SearchConfig) int {
	workers := cfg.Workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	var (
		g     errgroup.Group
		loops atomic.Int64
		done  atomic.Int64
		total = len(candidates)
	)
	g.SetLimit(workers)

	for i := range candidates {
		g.Go(func() error {
			if a.Loops(i, cfg.Fuel) {
				loops.Add(1)
			}
			if cfg.Progress != nil {
				cfg.Progress(int(done.Add(1)), total)
			}
			return nil
		})
	}
	g.Wait() // trials never return an error

	return int(loops.Load())
}

// CountPossibleLoops solves part 2: the number of single-obstruction
// placements on the guard's own path that trap it in a cycle.
func CountPossibleLoops(input string) (int, error) {
	area, err := ParseArea(input)
	if err != nil {
		return 0, err
	}
	candidates := area.Clone().Patrol()
	return area.CountLoops(candidates, SearchConfig{}), nil
}
