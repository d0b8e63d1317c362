// Package instance - chamber/lock model synthesis and auto-scaling.
package instance

import (
	"math/rand"

	"github.com/slslab/slsgen/sampling"
)

// GenerateChambers samples geometry and timing for every chamber of every
// lock. Per chamber the draw order is fixed: length, width, fill time,
// empty time. A lock's footprint is the max chamber length within it; one
// synthetic terminal entry with footprint 0 represents "no lock after the
// final segment", keeping LockLengths aligned with the segment array.
//
// Complexity: O(locks·chambers).
func GenerateChambers(cfg Config, rng *rand.Rand) (Chambers, error) {
	ch := Chambers{
		Lengths:     make([][]int, cfg.NLocks),
		Widths:      make([][]int, cfg.NLocks),
		FillTimes:   make([][]int, cfg.NLocks),
		EmptyTimes:  make([][]int, cfg.NLocks),
		LockLengths: make([]int, 0, cfg.NLocks+1),
	}

	var (
		length, width, fill, empty int
		err                        error
	)
	for l := 0; l < cfg.NLocks; l++ {
		var (
			maxLength = 0
			lengths   = make([]int, cfg.ChambersPerLock)
			widths    = make([]int, cfg.ChambersPerLock)
			fills     = make([]int, cfg.ChambersPerLock)
			empties   = make([]int, cfg.ChambersPerLock)
		)
		for c := 0; c < cfg.ChambersPerLock; c++ {
			if length, err = sampling.UniformInt(rng, cfg.ChamberLengthCMRange); err != nil {
				return Chambers{}, err
			}
			if width, err = sampling.UniformInt(rng, cfg.ChamberWidthCMRange); err != nil {
				return Chambers{}, err
			}
			if fill, err = sampling.UniformInt(rng, cfg.FillTimeRange); err != nil {
				return Chambers{}, err
			}
			if empty, err = sampling.UniformInt(rng, cfg.EmptyTimeRange); err != nil {
				return Chambers{}, err
			}
			lengths[c], widths[c], fills[c], empties[c] = length, width, fill, empty
			if length > maxLength {
				maxLength = length
			}
		}
		ch.Lengths[l], ch.Widths[l] = lengths, widths
		ch.FillTimes[l], ch.EmptyTimes[l] = fills, empties
		ch.LockLengths = append(ch.LockLengths, maxLength)
	}
	// Terminal pseudo-lock after the last segment.
	ch.LockLengths = append(ch.LockLengths, 0)

	return ch, nil
}

// ScaleChambersForShips ratchets chamber dimensions upward until every ship
// fits into every chamber of every lock: a chamber's length is raised to
// ship length + SecurityDistanceCM where that exceeds it (the lock footprint
// follows its max chamber), and its width to the ship width (no margin).
// Values only grow, and the fixed point is max(original, max requirement),
// so the ship scan order cannot change the outcome.
//
// Mutates ch in place. Complexity: O(locks·chambers·ships).
func ScaleChambersForShips(cfg Config, ch *Chambers, shipLengths, shipWidths []int) {
	for l := 0; l < cfg.NLocks; l++ {
		for c := 0; c < cfg.ChambersPerLock; c++ {
			usableLen := ch.Lengths[l][c]
			usableWid := ch.Widths[l][c]
			for s := 0; s < cfg.ShipCount; s++ {
				if need := shipLengths[s] + cfg.SecurityDistanceCM; need > usableLen {
					ch.Lengths[l][c] = need
					usableLen = need
					if ch.LockLengths[l] < need {
						ch.LockLengths[l] = need
					}
				}
				if shipWidths[s] > usableWid {
					ch.Widths[l][c] = shipWidths[s]
					usableWid = shipWidths[s]
				}
			}
		}
	}
}
