package puzzle

import (
	"strings"
)

func init() {
	register(4, 1, countXmasOccurrences)
}

// N, NE, E, SE, S, SW, W, NW as (row, col) unit steps.
var xmasDirections = [8][2]int{
	{-1, 0}, {-1, 1}, {0, 1}, {1, 1}, {1, 0}, {1, -1}, {0, -1}, {-1, -1},
}

// countXmasOccurrences counts XMAS spelled out in any of the eight
// directions from each X on the letter grid.
func countXmasOccurrences(input string) (int64, error) {
	rows := strings.Fields(input)

	const word = "XMAS"
	var total int64
	for r := range rows {
		for c := range rows[r] {
			if rows[r][c] != word[0] {
				continue
			}
			for _, d := range xmasDirections {
				rr, cc := r, c
				found := true
				for k := 1; k < len(word); k++ {
					rr += d[0]
					cc += d[1]
					if rr < 0 || rr >= len(rows) ||
						cc < 0 || cc >= len(rows[rr]) ||
						rows[rr][cc] != word[k] {
						found = false
						break
					}
				}
				if found {
					total++
				}
			}
		}
	}
	return total, nil
}
