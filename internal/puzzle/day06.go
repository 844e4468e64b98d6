package puzzle

import (
	"github.com/vancomm/patrol-server/internal/patrol"
)

func init() {
	register(6, 1, func(input string) (int64, error) {
		n, err := patrol.CountDistinctPatrolPositions(input)
		return int64(n), err
	})
	register(6, 2, func(input string) (int64, error) {
		n, err := patrol.CountPossibleLoops(input)
		return int64(n), err
	})
}
