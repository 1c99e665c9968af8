// SPDX-License-Identifier: MIT
// Package: vitrine/display
//
// sequence.go — rhythmic oscillation between two canonical states.
//
// Purpose:
//   • Resolve two named states, generate the configured phase sequence,
//     apply the optional phase rotation, and interpolate the trajectory.
//
// Contract:
//   • All inputs (state identifiers, pattern, cycle configuration, phase
//     offset) are validated before any computation; the call either
//     returns a complete SequenceResult or a single sentinel-rooted
//     error — never a partial trajectory.
//   • Deterministic: identical inputs yield bit-identical results.
//   • O(total_steps) time and memory.

package display

import (
	"fmt"

	"github.com/vitrinelab/vitrine/trajectory"
	"github.com/vitrinelab/vitrine/waveform"
)

// Sequence oscillates between two canonical states along a waveform.
// Defaults (sinusoidal, 3 cycles, 20 steps per cycle, no offset) apply
// unless overridden by options; total steps = NumCycles × StepsPerCycle.
//
// Errors: ErrUnknownState for either identifier,
// waveform.ErrInvalidPattern, waveform.ErrInvalidCycleConfig, and
// waveform.ErrInvalidPhaseOffset for bad configuration.
func Sequence(stateA, stateB string, opts ...Option) (*SequenceResult, error) {
	o := DefaultSequenceOptions()
	for _, opt := range opts {
		opt(&o)
	}

	a, err := StateByName(stateA)
	if err != nil {
		return nil, err
	}
	b, err := StateByName(stateB)
	if err != nil {
		return nil, err
	}
	if err = validateConfig(o); err != nil {
		return nil, err
	}

	totalSteps := o.NumCycles * o.StepsPerCycle
	alphas, err := waveform.Generate(totalSteps, float64(o.NumCycles), o.Pattern)
	if err != nil {
		return nil, err
	}
	alphas, err = waveform.Rotate(alphas, o.PhaseOffset, o.StepsPerCycle)
	if err != nil {
		return nil, err
	}

	return &SequenceResult{
		StateA:        a.Name,
		StateB:        b.Name,
		Pattern:       o.Pattern,
		NumCycles:     o.NumCycles,
		StepsPerCycle: o.StepsPerCycle,
		TotalSteps:    totalSteps,
		Period:        o.StepsPerCycle,
		PhaseOffset:   o.PhaseOffset,
		Sequence:      trajectory.Interpolate(a.Coords, b.Coords, alphas),
	}, nil
}

// validateConfig rejects an ill-formed waveform configuration up front,
// before any sequence memory is allocated.
func validateConfig(o SequenceOptions) error {
	if !o.Pattern.Valid() {
		return fmt.Errorf("%w: %q (want one of %v)",
			waveform.ErrInvalidPattern, o.Pattern, waveform.Patterns())
	}
	if o.NumCycles <= 0 || o.StepsPerCycle <= 0 {
		return fmt.Errorf("%w: num_cycles=%d, steps_per_cycle=%d",
			waveform.ErrInvalidCycleConfig, o.NumCycles, o.StepsPerCycle)
	}
	if o.PhaseOffset < 0 || o.PhaseOffset >= 1 {
		return fmt.Errorf("%w: %g", waveform.ErrInvalidPhaseOffset, o.PhaseOffset)
	}
	return nil
}
