package patrol

// Patrol walks the guard from its current state until it leaves the
// area and returns every distinct position it occupied, the starting
// cell included. The caller guarantees the unobstructed configuration
// terminates; obstructed replays belong to the loop search, which
// bounds them itself.
func (a *Area) Patrol() map[int]struct{} {
	visited := make(map[int]struct{})
	for {
		visited[a.Guard.Index] = struct{}{}
		if a.Step().Kind == Leave {
			return visited
		}
	}
}

// CountDistinctPatrolPositions solves part 1: the number of distinct
// cells an unobstructed patrol passes through before leaving the area.
func CountDistinctPatrolPositions(input string) (int, error) {
	area, err := ParseArea(input)
	if err != nil {
		return 0, err
	}
	return len(area.Patrol()), nil
}
