// Package vitrine is a deterministic engine for shop window display
// aesthetics — a five-axis parameter space with canonical states,
// oscillating trajectories between them, and geometric staging rules.
//
// 🚀 What is vitrine?
//
//	A pure-computation library that brings together:
//		• Coordinates: the 5-axis unit hypercube (compositional tension, depth
//		  complexity, lighting drama, viewing intimacy, negative space ratio)
//		• Waveforms: sinusoidal, triangular, square oscillation with phase rotation
//		• Trajectories: per-axis interpolation between states + keyframe sampling
//		• Vocabulary: nearest visual archetype with strength-gated keywords
//		• Display: 7 canonical states, 5 curated rhythmic presets, state distances
//		• Taxonomy: composition, depth staging, lighting, sight-line registries
//		• Geometry: golden-ratio focal placement, viewing cones, staging blueprints
//		• Prompts: keyword and geometric image-generation prompt rendering
//
// ✨ Why choose vitrine?
//
//   - Deterministic – same inputs, bit-identical outputs; all floats
//     stabilized to 4 decimals at package boundaries
//   - Immutable registries – every lookup returns copies, never aliases
//   - Explicit errors – sentinel per failure class, wrapped with context
//   - Composable – each layer is useful alone; higher layers only add
//
// Under the hood, everything is organized by layer:
//
//	coords/     — Axis enum, Vector, distance/diff/lerp primitives
//	waveform/   — oscillation pattern generation & phase rotation
//	trajectory/ — interpolated paths & keyframe extraction
//	vocab/      — visual archetype registry & vocabulary extraction
//	display/    — canonical states, presets, sequences, distances
//	taxonomy/   — composition/depth/lighting/sight-line tables
//	geometry/   — viewing cones & parameter → blueprint mapping
//	prompt/     — display, composite, and sequence prompt rendering
//	tool/       — wire-named tool registry with envelope dispatch
//
// The cmd/vitrinectl binary exposes all of it as a CLI and a
// line-delimited JSON tool server over stdio.
//
// Quick sketch of the parameter space:
//
//	luxury_isolation ──────► abundance_wall
//	    (sparse, still)   (dense, packed)
//
//	one axis of the five; a preset oscillates a display between two
//	such states over a configured number of cycles.
//
//	go get github.com/vitrinelab/vitrine
package vitrine
