package puzzle

import (
	"fmt"
	"strconv"
	"strings"
)

func init() {
	register(2, 1, countSafeReports)
}

// countSafeReports counts reports whose first differences keep a
// single sign and stay within 1..3 in magnitude.
func countSafeReports(input string) (int64, error) {
	var safe int64
	for _, line := range strings.Split(input, "\n") {
		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}
		levels := make([]int, len(fields))
		for i, f := range fields {
			n, err := strconv.Atoi(f)
			if err != nil {
				return 0, fmt.Errorf("day 2: %w", err)
			}
			levels[i] = n
		}
		if safeReport(levels) {
			safe++
		}
	}
	return safe, nil
}

func safeReport(levels []int) bool {
	if len(levels) < 2 {
		return false
	}
	sign := 0
	for i := 1; i < len(levels); i++ {
		d := levels[i] - levels[i-1]
		switch {
		case d == 0 || d < -3 || d > 3:
			return false
		case d > 0:
			if sign < 0 {
				return false
			}
			sign = 1
		default:
			if sign > 0 {
				return false
			}
			sign = -1
		}
	}
	return true
}
