// Package puzzle registers the daily puzzle solvers and dispatches
// (day, part) requests to them.
package puzzle

import (
	"errors"
	"fmt"
	"slices"
)

// SolveFunc parses one puzzle input and computes its numeric answer.
type SolveFunc func(input string) (int64, error)

var ErrUnknownPuzzle = errors.New("puzzle: no solver registered for that day and part")

type key struct {
	day, part int
}

var solvers = map[key]SolveFunc{}

func register(day, part int, fn SolveFunc) {
	solvers[key{day, part}] = fn
}

// Known reports whether a solver is registered for day and part.
func Known(day, part int) bool {
	_, ok := solvers[key{day, part}]
	return ok
}

// Solve runs the registered solver for day and part over input.
func Solve(day, part int, input string) (int64, error) {
	fn, ok := solvers[key{day, part}]
	if !ok {
		return 0, fmt.Errorf("%w: day %d part %d", ErrUnknownPuzzle, day, part)
	}
	return fn(input)
}

// Days lists the registered days in ascending order.
func Days() []int {
	var days []int
	for k := range solvers {
		if !slices.Contains(days, k.day) {
			days = append(days, k.day)
		}
	}
	slices.Sort(days)
	return days
}
