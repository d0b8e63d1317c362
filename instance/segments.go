// Package instance - contiguous segment layout along the shared axis.
package instance

import (
	"math"
	"math/rand"

	"github.com/slslab/slsgen/sampling"
)

// GenerateSegments lays out NLocks+1 segments contiguously, starting at
// position 0. For segment p the length is drawn from SegmentLengthMRange,
// then the cursor advances by that length plus the intervening lock's
// footprint converted to meters: round(lockLengths[p]/100). The terminal
// footprint is 0, so no gap follows the final segment.
//
// Invariant: Left[p+1] == Right[p] + round(lockLengths[p]/100); equality
// Left[p+1] == Right[p] occurs exactly when the rounded footprint is 0.
//
// Complexity: O(segments).
func GenerateSegments(cfg Config, rng *rand.Rand, lockLengths []int) (Segments, error) {
	var (
		n   = cfg.NSegments()
		seg = Segments{
			Left:  make([]int, n),
			Right: make([]int, n),
		}
		pos    = 0
		length int
		err    error
	)
	for p := 0; p < n; p++ {
		if length, err = sampling.UniformInt(rng, cfg.SegmentLengthMRange); err != nil {
			return Segments{}, err
		}
		seg.Left[p] = pos
		seg.Right[p] = pos + length
		pos += length + int(math.Round(float64(lockLengths[p])/segmentUnitDivisorCM))
	}
	return seg, nil
}

// Length returns segment p's extent along the axis, in meters.
func (s Segments) Length(p int) int {
	return s.Right[p] - s.Left[p]
}
