// Package instance - per-ship duration synthesis: lock entry/exit times
// and per-segment transit bounds.
package instance

import (
	"math"
	"math/rand"

	"github.com/slslab/slsgen/sampling"
)

// jitterRange is the 0-or-1 additive jitter applied to every entry/exit base.
var jitterRange = sampling.NewRange(0, 1)

// enterLeaveBase derives the size-based base durations (minutes) for a ship
// entering and leaving a chamber: 2 plus one minute per started 40 m of
// length, entry additionally one per started 8 m of width. The additions
// are clamped at 0 so degenerate (non-positive) ship sizes cannot pull a
// duration below the base.
func enterLeaveBase(lengthCM, widthCM int) (enter, leave int) {
	const base = 2
	addLen := max(0, lengthCM/4000)
	addWid := max(0, widthCM/800)
	return base + addLen + addWid, base + addLen
}

// GenerateLockDurations synthesizes entry and exit durations for every
// (ship, lock) pair: the ship's size-based base plus an independent 0/1
// jitter per cell, entry drawn before exit. Shapes [ShipCount][NLocks];
// every value is ≥ 2.
//
// Complexity: O(ships·locks).
func GenerateLockDurations(cfg Config, rng *rand.Rand, shipLengths, shipWidths []int) (entering, leaving [][]int, err error) {
	entering = make([][]int, cfg.ShipCount)
	leaving = make([][]int, cfg.ShipCount)

	var jitter int
	for s := 0; s < cfg.ShipCount; s++ {
		enterBase, leaveBase := enterLeaveBase(shipLengths[s], shipWidths[s])
		enterRow := make([]int, cfg.NLocks)
		leaveRow := make([]int, cfg.NLocks)
		for l := 0; l < cfg.NLocks; l++ {
			if jitter, err = sampling.UniformInt(rng, jitterRange); err != nil {
				return nil, nil, err
			}
			enterRow[l] = enterBase + jitter
			if jitter, err = sampling.UniformInt(rng, jitterRange); err != nil {
				return nil, nil, err
			}
			leaveRow[l] = leaveBase + jitter
		}
		entering[s] = enterRow
		leaving[s] = leaveRow
	}
	return entering, leaving, nil
}

// GenerateSegmentDurations synthesizes transit-duration bounds for every
// (ship, segment) pair. The speed range follows the ship's direction
// (SpeedUpRange downstream, SpeedDownRange upstream); a factor is drawn via
// ScaledFactor, then min = round(60·lengthM/(1000·factor)) minutes and
// max = DurationFactor·min. A zero-length segment yields min 0, which is
// valid: the only guarantee is max ≥ min ≥ 0.
//
// Shapes [ShipCount][NLocks+1]. Complexity: O(ships·segments).
func GenerateSegmentDurations(cfg Config, rng *rand.Rand, seg Segments, directions []int) (minDurs, maxDurs [][]int, err error) {
	var (
		n      = cfg.NSegments()
		factor float64
	)
	minDurs = make([][]int, cfg.ShipCount)
	maxDurs = make([][]int, cfg.ShipCount)

	for s := 0; s < cfg.ShipCount; s++ {
		speedRange := cfg.SpeedUpRange
		if directions[s] == Upstream {
			speedRange = cfg.SpeedDownRange
		}

		minRow := make([]int, n)
		maxRow := make([]int, n)
		for p := 0; p < n; p++ {
			if factor, err = sampling.ScaledFactor(rng, speedRange); err != nil {
				return nil, nil, err
			}
			// Minutes from meters at km/h: 60·m / (1000·kmh).
			minRow[p] = int(math.Round(60.0 * float64(seg.Length(p)) / (1000.0 * factor)))
			maxRow[p] = cfg.DurationFactor * minRow[p]
		}
		minDurs[s] = minRow
		maxDurs[s] = maxRow
	}
	return minDurs, maxDurs, nil
}
