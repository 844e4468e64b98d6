package puzzle

import (
	"fmt"
	"regexp"
	"strconv"
)

func init() {
	register(3, 1, uncorruptedMulSum)
}

var mulPattern = regexp.MustCompile(`mul\(([0-9]+),([0-9]+)\)`)

// uncorruptedMulSum scans the corrupted memory dump for well-formed
// mul(a,b) instructions and sums their products. Everything between
// instructions is junk and skipped.
func uncorruptedMulSum(input string) (int64, error) {
	var sum int64
	for _, m := range mulPattern.FindAllStringSubmatch(input, -1) {
		lhs, err := strconv.ParseInt(m[1], 10, 64)
		if err != nil {
			return 0, fmt.Errorf("day 3: %w", err)
		}
		rhs, err := strconv.ParseInt(m[2], 10, 64)
		if err != nil {
			return 0, fmt.Errorf("day 3: %w", err)
		}
		sum += lhs * rhs
	}
	return sum, nil
}
