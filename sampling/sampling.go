// Package sampling - draw primitives shared by all generation stages.
//
// This file centralizes the three draw semantics the pipeline depends on.
// The exact interval shapes (closed for UniformInt, half-open (Lo, Hi] for
// ScaledFactor) are a contract: downstream stages and their tests assume
// them, and reproducibility across runs requires them to never drift.
package sampling

import (
	"math"
	"math/rand"
)

// New returns the deterministic *rand.Rand stream for a generation run.
// The seed is used verbatim; same seed ⇒ identical draw sequence.
//
// Complexity: O(1).
func New(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}

// UniformInt draws an integer uniformly from the closed interval [r.Lo, r.Hi].
// Returns ErrInvalidRange when r.Lo > r.Hi.
//
// Complexity: O(1).
func UniformInt(rng *rand.Rand, r Range) (int, error) {
	if r.Lo > r.Hi {
		return 0, ErrInvalidRange
	}
	return r.Lo + rng.Intn(r.Span()), nil
}

// SplitIndex computes round(Lo·n/(Lo+Hi)): the count of ships assigned to
// the downstream group when n ships are distributed over the two directions
// in the ratio Lo:Hi. Deterministic — consumes no randomness — so it can be
// recomputed identically wherever the split is needed.
// Returns ErrEmptyDistribution when Lo+Hi <= 0.
//
// Complexity: O(1).
func SplitIndex(r Range, n int) (int, error) {
	var sum = r.Lo + r.Hi
	if sum <= 0 {
		return 0, ErrEmptyDistribution
	}
	return int(math.Round(float64(r.Lo*n) / float64(sum))), nil
}

// ScaledFactor draws a factor uniformly from the half-open interval (Lo, Hi]:
// Lo + (Hi-Lo)·(1-U) with U ∈ [0,1). Because U never reaches 1 the result
// never equals Lo; because U can be exactly 0 the result can equal Hi.
// Returns ErrInvalidRange when r.Lo > r.Hi.
//
// Complexity: O(1).
func ScaledFactor(rng *rand.Rand, r Range) (float64, error) {
	if r.Lo > r.Hi {
		return 0, ErrInvalidRange
	}
	return float64(r.Lo) + float64(r.Hi-r.Lo)*(1.0-rng.Float64()), nil
}
