// Package display is the orchestration core of the parameter engine: it
// owns the canonical display-state registry and the rhythmic preset
// registry, and combines the waveform, trajectory and coords packages
// into the three headline operations.
//
// 🚀 What lives here?
//
//	Seven canonical display states — named, curated points in the
//	five-axis aesthetic space (luxury_isolation, theatrical_drama,
//	abundance_wall, editorial_minimal, immersive_spectacle,
//	curated_collection, narrative_journey) — and five rhythmic presets
//	that pair two states with a waveform configuration.
//
// ✨ Operations:
//   - Sequence: oscillate between two named states along a configured
//     waveform, optionally starting mid-cycle via a phase offset.
//   - ApplyPreset: run a curated preset end to end.
//   - StateDistance / VectorDistance: per-axis differences and the
//     Euclidean separation of two states.
//
// ⚙️ Usage:
//
//	res, err := display.Sequence("luxury_isolation", "theatrical_drama",
//	    display.WithPattern(waveform.Sinusoidal),
//	    display.WithCycles(3),
//	    display.WithStepsPerCycle(24),
//	)
//
// All registries are immutable and every call validates its inputs in
// full before computing, so a result is either complete or absent —
// never partial. Determinism is bit-exact: identical inputs produce
// identical results across calls and processes.
package display
