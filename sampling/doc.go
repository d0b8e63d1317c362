// Package sampling provides the numeric primitives every generation stage
// of slsgen draws from: closed integer ranges, uniform integer draws,
// a deterministic prefix-split index, and a half-open scaled factor.
//
// What:
//
//   - Range is a closed integer interval [Lo, Hi] that serializes as the
//     two-element JSON array [lo, hi].
//   - UniformInt draws uniformly from [Lo, Hi].
//   - SplitIndex computes round(Lo·n/(Lo+Hi)) — deterministic, no draw.
//   - ScaledFactor draws uniformly from the half-open interval (Lo, Hi].
//   - New builds the single *rand.Rand stream for a generation run.
//
// Why:
//
//   - Determinism: the same seed must reproduce a byte-identical instance,
//     so every primitive takes an explicit *rand.Rand — no package-level
//     generator, no time-based sources hidden anywhere.
//   - Encapsulation: all randomness in the module flows through this
//     package, which pins the exact draw semantics the pipeline depends on.
//
// Concurrency:
//
//   - math/rand.Rand is NOT goroutine-safe. A generation run owns its
//     stream and consumes it strictly sequentially.
//
// Errors:
//
//   - ErrInvalidRange: a range with Lo > Hi was consumed.
//   - ErrEmptyDistribution: SplitIndex on a range with Lo+Hi ≤ 0.
package sampling
