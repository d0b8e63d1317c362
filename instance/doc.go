// Package instance synthesizes self-consistent, randomized test instances
// for a maritime lock-scheduling problem: ships traversing a chain of canal
// locks (each with one or more parallel chambers) along a linear sequence
// of navigable segments.
//
// What:
//
//   - Config holds every generation parameter (counts, integer ranges,
//     scalar knobs, mode flags); DefaultConfig returns the reference set.
//   - Generate runs the canonical pipeline and returns an assembled
//     *Instance, ready for serialization.
//   - Each pipeline stage (ship sizes, chamber geometry, auto-scaling,
//     segment layout, direction split, arrivals, lock and transit
//     durations, horizon) is an independently callable pure function
//     threading (Config, *rand.Rand) — no hidden cross-call state.
//
// Guarantees (hold for every generated Instance):
//
//  1. With auto-scaling enabled, every chamber of every lock fits every
//     ship (security margin applied to length only).
//  2. Segments are contiguous and non-overlapping: Right[p] plus the
//     rounded lock footprint equals Left[p+1].
//  3. The direction partition is a deterministic prefix split over ship
//     index, never randomized.
//  4. Arrivals within each direction group are non-decreasing, starting
//     at 0 for the group's first ship.
//  5. For every ship and segment, max transit ≥ min transit ≥ 0.
//  6. Same Config (seed included) ⇒ bit-identical Instance. All draws
//     flow through one *rand.Rand in a fixed stage order.
//
// Errors:
//
//   - ErrNoLocks, ErrNoShips, ErrNoChambers: rejected before any draw.
//   - sampling.ErrInvalidRange / sampling.ErrEmptyDistribution: a
//     malformed range reached the first primitive that consumes it;
//     ranges are deliberately not validated up front.
//
// Complexity: O(locks·chambers + ships·segments) time and space.
package instance
