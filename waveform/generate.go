// SPDX-License-Identifier: MIT
// Package: vitrine/waveform
//
// generate.go — deterministic periodic phase-sequence generator.
//
// Purpose (single responsibility):
//   • Produce the ordered α-sequence that blends two display states.
//   • Shape controls: sinusoidal, triangular, or square, over a fractional
//     number of cycles spread evenly across the step count.
//
// Contract:
//   • Generate(steps, cycles, pattern) returns exactly `steps` values in
//     [0,1], or a sentinel error; never a partially built sequence.
//   • Strict determinism per (steps, cycles, pattern); no global state.
//   • O(steps) time and memory; one trig call per sinusoidal sample.
//
// AI-Hints (practical):
//   • For non-sinusoidal shapes, the in-cycle position u = mod(θ/2π, 1)
//     avoids trig entirely; branch on u < 0.5.
//   • cycles is a float on purpose: fractional cycle counts are valid and
//     simply end the sequence mid-cycle.

package waveform

import (
	"fmt"
	"math"
)

const (
	tau       = 2.0 * math.Pi // one full cycle in radians
	halfCycle = 0.5           // in-cycle position where ramps and cuts turn
	triSlope  = 2.0           // triangular rise/fall rate per cycle half
)

// sampler returns the scalar waveform function for p, or nil when p is
// not a recognized pattern.
func sampler(p Pattern) func(theta float64) float64 {
	switch p {
	case Sinusoidal:
		return func(theta float64) float64 {
			return halfCycle * (1.0 + math.Sin(theta))
		}
	case Triangular:
		return func(theta float64) float64 {
			u := math.Mod(theta/tau, 1.0)
			if u < halfCycle {
				return triSlope * u
			}
			return triSlope * (1.0 - u)
		}
	case Square:
		return func(theta float64) float64 {
			if math.Mod(theta/tau, 1.0) < halfCycle {
				return 0.0
			}
			return 1.0
		}
	default:
		return nil
	}
}

// errCycleConfig wraps ErrInvalidCycleConfig with the offending values.
func errCycleConfig(steps int, cycles float64) error {
	return fmt.Errorf("%w: steps=%d, cycles=%g", ErrInvalidCycleConfig, steps, cycles)
}

// Generate produces the phase sequence for `steps` samples spanning
// `cycles` full oscillations of the given pattern.
//
// Sample i carries θ = 2π·cycles·i/steps, so the sequence starts at the
// beginning of a cycle (α = 0.5 for sinusoidal, 0 for triangular and
// square) and never repeats the terminal sample of the last cycle.
//
// Errors: ErrInvalidCycleConfig when steps ≤ 0 or cycles ≤ 0;
// ErrInvalidPattern when the pattern is unrecognized.
func Generate(steps int, cycles float64, pattern Pattern) ([]float64, error) {
	if steps <= 0 || cycles <= 0 {
		return nil, errCycleConfig(steps, cycles)
	}
	sample := sampler(pattern)
	if sample == nil {
		_, err := ParsePattern(string(pattern))
		return nil, err
	}

	seq := make([]float64, steps)
	for i := range seq {
		theta := tau * cycles * float64(i) / float64(steps)
		seq[i] = sample(theta)
	}
	return seq, nil
}
