// Package instance - the canonical generation pipeline and assembly.
package instance

import (
	"fmt"

	"github.com/slslab/slsgen/sampling"
)

// Generate runs the full pipeline and assembles the Instance record.
//
// Stage order is a determinism contract: every draw flows through one
// stream seeded from cfg.Seed, consumed strictly in the order ship sizes →
// chamber geometry/timing → segment lengths → arrivals → entry/exit jitter
// → speed factors. Two runs with the same Config produce bit-identical
// instances.
//
// Either the whole pipeline completes and a fully populated Instance is
// returned, or an error is returned before any output exists — never a
// partial instance.
//
// Complexity: O(locks·chambers·ships + ships·segments).
func Generate(cfg Config) (*Instance, error) {
	// Stage 1 - fail fast on counts, before any randomness is consumed.
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	rng := sampling.New(cfg.Seed)

	// Stage 2 - ship sizes.
	shipLengths, err := GenerateShipLengths(cfg, rng)
	if err != nil {
		return nil, err
	}
	shipWidths, err := GenerateShipWidths(cfg, rng)
	if err != nil {
		return nil, err
	}

	// Stage 3 - chamber geometry/timing, then the fit ratchet.
	chambers, err := GenerateChambers(cfg, rng)
	if err != nil {
		return nil, err
	}
	if cfg.AutoScaleChambers {
		ScaleChambersForShips(cfg, &chambers, shipLengths, shipWidths)
	}

	// Stage 4 - segment layout over the scaled lock footprints.
	segments, err := GenerateSegments(cfg, rng, chambers.LockLengths)
	if err != nil {
		return nil, err
	}

	// Stage 5 - direction split (no draws) and arrivals.
	directions, err := GenerateDirections(cfg)
	if err != nil {
		return nil, err
	}
	etas, err := GenerateETAs(cfg, rng)
	if err != nil {
		return nil, err
	}

	// Stage 6 - durations.
	entering, leaving, err := GenerateLockDurations(cfg, rng, shipLengths, shipWidths)
	if err != nil {
		return nil, err
	}
	minDurs, maxDurs, err := GenerateSegmentDurations(cfg, rng, segments, directions)
	if err != nil {
		return nil, err
	}

	// Stage 7 - horizon and assembly.
	horizon := Horizon(cfg, chambers, etas, entering, leaving, maxDurs)

	return &Instance{
		IsMaster:        cfg.IsMaster,
		IsSophisticated: cfg.IsSophisticated,
		IsFCFS:          cfg.IsFCFS,
		IsExtObj:        cfg.IsExtObj,
		IsLaTeX:         false,
		IsJSON:          true,

		RawMaxHorizon:       horizon,
		RawBufferTime:       cfg.BufferTimeMin,
		RawSecurityDistance: cfg.SecurityDistanceCM,

		Locations:         enumerate([]string{"S", "T"}),
		Segments:          numbered("SEG", cfg.NSegments()),
		RawLeftPositions:  segments.Left,
		RawRightPositions: segments.Right,

		Locks:                numbered("LOCK", cfg.NLocks),
		NumOfChambers:        cfg.ChambersPerLock,
		MaxNumOfLockings:     maxLockings(cfg.ShipCount),
		RawLengthsOfChambers: chambers.Lengths,
		RawWidthsOfChambers:  chambers.Widths,
		RawTimesForFilling:   chambers.FillTimes,
		RawTimesForEmptying:  chambers.EmptyTimes,

		Ships:                   numbered("SHIP", cfg.ShipCount),
		Directions:              directions,
		RawLengthsOfShips:       shipLengths,
		RawWidthsOfShips:        shipWidths,
		RawDurationsForEntering: entering,
		RawDurationsForLeaving:  leaving,
		RawEtas:                 etas,
		EtaRange:                cfg.EtaRange,
		RawMinDurs:              minDurs,
		RawMaxDurs:              maxDurs,

		MaxDelayWeight:       cfg.DelayWeight,
		MaxWaitingTimeWeight: cfg.WaitWeight,

		ShipDistributionRange: cfg.ShipDistributionRange,
		ShipLengthCMRange:     cfg.ShipLengthCMRange,
		ShipWidthCMRange:      cfg.ShipWidthCMRange,
		Seed:                  cfg.Seed,
	}, nil
}

// Horizon returns the planning horizon in minutes. The default policy is
// the fixed DefaultHorizonMinutes constant, independent of the synthesized
// data; consumers rely on that. With cfg.AdaptiveHorizon the horizon is
// instead derived from the latest arrival, the longest route under max
// transit durations, and the worst per-lock operation overhead, plus a
// two-hour slack.
func Horizon(cfg Config, ch Chambers, etas []int, entering, leaving, maxDurs [][]int) int {
	if !cfg.AdaptiveHorizon {
		return DefaultHorizonMinutes
	}

	var longestRoute int
	for _, row := range maxDurs {
		total := 0
		for _, d := range row {
			total += d
		}
		if total > longestRoute {
			longestRoute = total
		}
	}

	perLockOverhead := matrixMax(ch.FillTimes) + matrixMax(ch.EmptyTimes) +
		matrixMax(entering) + matrixMax(leaving) + 2*cfg.BufferTimeMin

	return sliceMax(etas) + longestRoute + cfg.NLocks*perLockOverhead + 120
}

// maxLockings bounds the number of locking operations the scheduler may plan.
func maxLockings(shipCount int) int {
	if shipCount+5 < 1 {
		return 1
	}
	return shipCount + 5
}

// enumerate wraps names as {"e": name} records.
func enumerate(names []string) []Enum {
	out := make([]Enum, len(names))
	for i, name := range names {
		out[i] = Enum{E: name}
	}
	return out
}

// numbered builds the 1-based name list PREFIX-1 .. PREFIX-n.
func numbered(prefix string, n int) []Enum {
	out := make([]Enum, n)
	for i := 0; i < n; i++ {
		out[i] = Enum{E: fmt.Sprintf("%s-%d", prefix, i+1)}
	}
	return out
}

func sliceMax(xs []int) int {
	best := 0
	for _, x := range xs {
		if x > best {
			best = x
		}
	}
	return best
}

func matrixMax(m [][]int) int {
	best := 0
	for _, row := range m {
		for _, x := range row {
			if x > best {
				best = x
			}
		}
	}
	return best
}
