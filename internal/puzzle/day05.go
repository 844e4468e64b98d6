package puzzle

import (
	"fmt"
	"strconv"
	"strings"
)

func init() {
	register(5, 1, sumOfMiddlePageNumbers)
}

// sumOfMiddlePageNumbers checks each update against the successor
// rules and sums the middle pages of the correctly ordered updates.
func sumOfMiddlePageNumbers(input string) (int64, error) {
	rawRules, rawUpdates, found := strings.Cut(input, "\n\n")
	if !found {
		return 0, fmt.Errorf("day 5: input is missing the blank line between rules and updates")
	}

	successors := make(map[int]map[int]struct{})
	for _, line := range strings.Split(strings.TrimSpace(rawRules), "\n") {
		lhs, rhs, found := strings.Cut(line, "|")
		if !found {
			return 0, fmt.Errorf("day 5: rule %q is missing a bar", line)
		}
		first, err := strconv.Atoi(lhs)
		if err != nil {
			return 0, fmt.Errorf("day 5: %w", err)
		}
		second, err := strconv.Atoi(rhs)
		if err != nil {
			return 0, fmt.Errorf("day 5: %w", err)
		}
		set, ok := successors[first]
		if !ok {
			set = make(map[int]struct{})
			successors[first] = set
		}
		set[second] = struct{}{}
	}

	var sum int64
	for _, line := range strings.Split(strings.TrimSpace(rawUpdates), "\n") {
		if line == "" {
			continue
		}
		raw := strings.Split(line, ",")
		pages := make([]int, len(raw))
		for i, s := range raw {
			page, err := strconv.Atoi(s)
			if err != nil {
				return 0, fmt.Errorf("day 5: %w", err)
			}
			pages[i] = page
		}
		ordered := true
		for i := 1; i < len(pages); i++ {
			if _, ok := successors[pages[i-1]][pages[i]]; !ok {
				ordered = false
				break
			}
		}
		if ordered {
			sum += int64(pages[len(pages)/2])
		}
	}
	return sum, nil
}
