// Package trajectory blends two display-state vectors along a phase
// sequence and samples the result down to keyframes.
//
// Overview:
//
//   - Interpolate walks a phase sequence (typically produced by package
//     waveform) and emits one Point per step: the step index, the phase
//     value, and the component-wise blend a·(1−α) + b·α of the two
//     endpoint vectors. Every emitted number is stabilized to 4 decimals,
//     so repeated identical calls are bit-identical.
//   - Keyframes reduces a trajectory to a small ordered subset at evenly
//     spaced indices, for callers that want a handful of representative
//     frames instead of the full sequence.
//
// When to use:
//
//   - Rhythmic oscillation between two aesthetic states over N steps.
//   - Extracting a storyboard (4–8 frames) from a longer oscillation.
//
// Both operations are pure and allocation-bounded: Interpolate is O(n)
// over the phase sequence, Keyframes is O(count), and neither mutates
// its inputs.
package trajectory
