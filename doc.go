// Package slsgen synthesizes self-consistent, randomized test instances
// for ship & lock scheduling: ships with sizes, directions, and arrivals
// traversing a chain of canal locks along contiguous waterway segments.
//
// What slsgen provides:
//
//   - sampling/    — deterministic draw primitives over integer ranges
//   - instance/    — the generation pipeline: chamber/lock geometry with
//     auto-scaling, contiguous segment layout, direction split, arrivals,
//     lock and transit durations, horizon, and assembly into one record
//   - compactjson/ — a JSON renderer keeping objects indented and arrays
//     on single compact lines, plus an atomic file writer
//   - cmd/slsgen/  — the command-line generator writing instances for the
//     downstream scheduling solver
//
// Guarantees:
//
//   - Deterministic: one seeded stream, fixed draw order; the same
//     configuration reproduces a byte-identical instance.
//   - Geometrically consistent: with auto-scaling every ship fits every
//     chamber; segments chain contiguously with lock-footprint gaps.
//   - All-or-nothing: generation either returns a fully populated
//     instance or an error, never a partial one; file output is written
//     atomically.
//
// Quick start:
//
//	cfg := instance.DefaultConfig()
//	cfg.ShipCount = 12
//	cfg.Seed = 7
//
//	inst, err := instance.Generate(cfg)
//	if err != nil {
//	    // handle configuration or range errors
//	}
//	if err := compactjson.WriteFile("instance.json", inst, 0o644); err != nil {
//	    // handle serialization/IO errors
//	}
package slsgen
