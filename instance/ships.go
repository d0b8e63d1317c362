// Package instance - ship synthesis: sizes, direction split, arrivals.
package instance

import (
	"math/rand"

	"github.com/slslab/slsgen/sampling"
)

// GenerateShipLengths draws ShipCount ship lengths (centimeters) from
// ShipLengthCMRange. First draw of the pipeline; consumes exactly
// ShipCount values from the stream.
//
// Complexity: O(ships).
func GenerateShipLengths(cfg Config, rng *rand.Rand) ([]int, error) {
	return drawSeries(rng, cfg.ShipLengthCMRange, cfg.ShipCount)
}

// GenerateShipWidths draws ShipCount ship widths (centimeters) from
// ShipWidthCMRange.
//
// Complexity: O(ships).
func GenerateShipWidths(cfg Config, rng *rand.Rand) ([]int, error) {
	return drawSeries(rng, cfg.ShipWidthCMRange, cfg.ShipCount)
}

// drawSeries draws n independent values from r.
func drawSeries(rng *rand.Rand, r sampling.Range, n int) ([]int, error) {
	var (
		out = make([]int, n)
		err error
	)
	for i := 0; i < n; i++ {
		if out[i], err = sampling.UniformInt(rng, r); err != nil {
			return nil, err
		}
	}
	return out, nil
}

// GenerateDirections partitions ships over the two directions as a prefix
// split: ships with index < SplitIndex(ShipDistributionRange, ShipCount)
// travel Downstream (+1), the rest Upstream (-1). Deterministic and
// side-effect-free: it consumes no randomness and may be recomputed
// identically wherever the split is needed.
//
// Complexity: O(ships).
func GenerateDirections(cfg Config) ([]int, error) {
	split, err := sampling.SplitIndex(cfg.ShipDistributionRange, cfg.ShipCount)
	if err != nil {
		return nil, err
	}

	directions := make([]int, cfg.ShipCount)
	for i := 0; i < cfg.ShipCount; i++ {
		if i < split {
			directions[i] = Downstream
		} else {
			directions[i] = Upstream
		}
	}
	return directions, nil
}

// GenerateETAs synthesizes estimated arrival times. Two independent running
// totals, one per direction group, both start at 0; processing ships in
// index order, each ship receives its group's current total, then the total
// advances by a draw from EtaRange. Within each group arrivals are
// non-decreasing and start at 0; the two groups' scales are independent.
//
// Complexity: O(ships).
func GenerateETAs(cfg Config, rng *rand.Rand) ([]int, error) {
	split, err := sampling.SplitIndex(cfg.ShipDistributionRange, cfg.ShipCount)
	if err != nil {
		return nil, err
	}

	var (
		etas = make([]int, cfg.ShipCount)
		down = 0 // running total, downstream group
		up   = 0 // running total, upstream group
		gap  int
	)
	for s := 0; s < cfg.ShipCount; s++ {
		if gap, err = sampling.UniformInt(rng, cfg.EtaRange); err != nil {
			return nil, err
		}
		if s < split {
			etas[s] = down
			down += gap
		} else {
			etas[s] = up
			up += gap
		}
	}
	return etas, nil
}
