package patrol

import "errors"

// Sentinel errors for board parsing. A malformed board has no
// simulation semantics, so parsing fails outright and nothing is
// recovered.
var (
	ErrEmptyInput     = errors.New("patrol: input holds no grid rows")
	ErrNotRectangular = errors.New("patrol: all grid rows must have the same length")
	ErrNoGuard        = errors.New("patrol: no guard marker in input")
	ErrExtraGuard     = errors.New("patrol: more than one guard marker in input")
	ErrBadCharacter   = errors.New("patrol: unrecognized character in input")
)

// AssertionError reports a broken internal invariant, such as a
// simulation step escaping the grid outside the boundary-leave rule.
type AssertionError struct {
	message string
}

// [AssertionError] implements [error]
func (e AssertionError) Error() string {
	return e.message
}
