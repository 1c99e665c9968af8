package waveform

import "fmt"

// Rotate returns a copy of seq cyclically rotated left by
// ⌊offset·stepsPerCycle⌋ positions: elements removed from the front are
// appended at the back. A zero offset still returns a fresh copy, so the
// result never aliases the input.
//
// offset is the starting phase as a fraction of one cycle and must lie
// in [0,1); anything else fails with ErrInvalidPhaseOffset.
// stepsPerCycle must be positive (ErrInvalidCycleConfig otherwise).
func Rotate(seq []float64, offset float64, stepsPerCycle int) ([]float64, error) {
	if offset < 0 || offset >= 1 {
		return nil, fmt.Errorf("%w: %g", ErrInvalidPhaseOffset, offset)
	}
	if stepsPerCycle <= 0 {
		return nil, fmt.Errorf("%w: steps_per_cycle=%d", ErrInvalidCycleConfig, stepsPerCycle)
	}
	if len(seq) == 0 {
		return []float64{}, nil
	}

	// With offset < 1 the shift is below stepsPerCycle; the modulo keeps
	// rotation well-defined even when one cycle exceeds the sequence.
	k := int(offset*float64(stepsPerCycle)) % len(seq)

	out := make([]float64, 0, len(seq))
	out = append(out, seq[k:]...)
	out = append(out, seq[:k]...)
	return out, nil
}
