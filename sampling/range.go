package sampling

import (
	"encoding/json"
	"errors"
	"fmt"
)

// Sentinel errors for sampling operations.
var (
	// ErrInvalidRange indicates a range with Lo > Hi was consumed by a draw.
	ErrInvalidRange = errors.New("sampling: range lower bound exceeds upper bound")
	// ErrEmptyDistribution indicates SplitIndex was asked to split over Lo+Hi <= 0.
	ErrEmptyDistribution = errors.New("sampling: distribution range must have a positive sum")
)

// Range is a closed integer interval [Lo, Hi].
// Its JSON form is the two-element array [lo, hi], matching the instance
// schema consumed by the external scheduler.
type Range struct {
	Lo int
	Hi int
}

// NewRange constructs a Range without validating bounds; malformed ranges
// surface as ErrInvalidRange from the first primitive that consumes them.
func NewRange(lo, hi int) Range {
	return Range{Lo: lo, Hi: hi}
}

// Span returns the number of integers in the closed interval, Hi-Lo+1.
// Negative for malformed ranges.
func (r Range) Span() int {
	return r.Hi - r.Lo + 1
}

// MarshalJSON renders the range as [lo, hi].
func (r Range) MarshalJSON() ([]byte, error) {
	return json.Marshal([2]int{r.Lo, r.Hi})
}

// UnmarshalJSON accepts the [lo, hi] array form.
func (r *Range) UnmarshalJSON(data []byte) error {
	var pair [2]int
	if err := json.Unmarshal(data, &pair); err != nil {
		return fmt.Errorf("sampling: range must be a two-element array: %w", err)
	}
	r.Lo, r.Hi = pair[0], pair[1]
	return nil
}
