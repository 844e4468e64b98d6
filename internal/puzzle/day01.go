package puzzle

import (
	"fmt"
	"slices"
	"strconv"
	"strings"
)

func init() {
	register(1, 1, totalDistance)
}

// totalDistance pairs up the two location lists, sorts each, and sums
// the absolute differences between matched entries.
func totalDistance(input string) (int64, error) {
	fields := strings.Fields(input)
	if len(fields) == 0 || len(fields)%2 != 0 {
		return 0, fmt.Errorf("day 1: input holds %d values, want a positive even count", len(fields))
	}

	var (
		left  = make([]int64, 0, len(fields)/2)
		right = make([]int64, 0, len(fields)/2)
	)
	for i := 0; i < len(fields); i += 2 {
		l, err := strconv.ParseInt(fields[i], 10, 64)
		if err != nil {
			return 0, fmt.Errorf("day 1: %w", err)
		}
		r, err := strconv.ParseInt(fields[i+1], 10, 64)
		if err != nil {
			return 0, fmt.Errorf("day 1: %w", err)
		}
		left = append(left, l)
		right = append(right, r)
	}

	slices.Sort(left)
	slices.Sort(right)

	var total int64
	for i := range left {
		if d := left[i] - right[i]; d < 0 {
			total -= d
		} else {
			total += d
		}
	}
	return total, nil
}
