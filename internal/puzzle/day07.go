package puzzle

import (
	"fmt"
	"strconv"
	"strings"
)

func init() {
	register(7, 1, totalCalibrationResult)
	register(7, 2, totalCalibrationResultWithConcatenation)
}

type equation struct {
	value int64
	args  []int64
}

func parseEquations(input string) ([]equation, error) {
	var eqns []equation
	for _, line := range strings.Split(strings.TrimSpace(input), "\n") {
		if line == "" {
			continue
		}
		rawValue, rawArgs, found := strings.Cut(line, ": ")
		if !found {
			return nil, fmt.Errorf("day 7: equation %q is missing a test value", line)
		}
		value, err := strconv.ParseInt(rawValue, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("day 7: %w", err)
		}
		fields := strings.Fields(rawArgs)
		if len(fields) == 0 {
			return nil, fmt.Errorf("day 7: equation %q has no operands", line)
		}
		args := make([]int64, len(fields))
		for i, f := range fields {
			args[i], err = strconv.ParseInt(f, 10, 64)
			if err != nil {
				return nil, fmt.Errorf("day 7: %w", err)
			}
		}
		eqns = append(eqns, equation{value: value, args: args})
	}
	return eqns, nil
}

// solvable undoes operators right to left, since the equations
// evaluate left to right: subtraction undoes addition, division
// undoes multiplication, and digit stripping undoes concatenation.
func solvable(value int64, args []int64, concat bool) bool {
	last := args[len(args)-1]
	if len(args) == 1 {
		return value == last
	}
	rest := args[:len(args)-1]

	if last <= value && solvable(value-last, rest, concat) {
		return true
	}
	if last > 0 && value%last == 0 && solvable(value/last, rest, concat) {
		return true
	}
	if concat {
		pow := pow10(last)
		if value%pow == last && solvable(value/pow, rest, concat) {
			return true
		}
	}
	return false
}

// pow10 returns the smallest power of ten above n, i.e. the factor
// concatenating n onto another number multiplies that number by.
func pow10(n int64) int64 {
	p := int64(10)
	for n >= 10 {
		n /= 10
		p *= 10
	}
	return p
}

// totalCalibrationResult solves part 1: the sum of test values of the
// equations solvable with addition and multiplication alone.
func totalCalibrationResult(input string) (int64, error) {
	eqns, err := parseEquations(input)
	if err != nil {
		return 0, err
	}
	var sum int64
	for _, eqn := range eqns {
		if solvable(eqn.value, eqn.args, false) {
			sum += eqn.value
		}
	}
	return sum, nil
}

// totalCalibrationResultWithConcatenation solves part 2, which also
// admits the digit concatenation operator.
func totalCalibrationResultWithConcatenation(input string) (int64, error) {
	eqns, err := parseEquations(input)
	if err != nil {
		return 0, err
	}
	var sum int64
	for _, eqn := range eqns {
		if solvable(eqn.value, eqn.args, true) {
			sum += eqn.value
		}
	}
	return sum, nil
}
