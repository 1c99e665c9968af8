// Package waveform generates the deterministic periodic phase sequences
// that drive rhythmic blending between display states.
//
// A phase sequence is an ordered slice of scalars in [0,1]: element i is
// the blend weight α at step i. Three patterns are recognized:
//
//   - sinusoidal: 0.5·(1 + sin θ) — smooth ease through the cycle.
//   - triangular: linear ramp 0→1→0 per cycle.
//   - square:     hard cut, exactly 0 for the first half-cycle and
//     exactly 1 for the second.
//
// where θ = 2π·cycles·i/steps and the in-cycle position is u = (θ/2π) mod 1.
//
// Sequences can be cyclically rotated to start mid-cycle (Rotate). All
// inputs are validated before any computation: unrecognized patterns,
// non-positive step/cycle counts, and phase offsets outside [0,1) fail
// with a sentinel error, never with a silent fallback.
//
// Everything here is pure: no global state, no randomness, O(n) time.
package waveform
