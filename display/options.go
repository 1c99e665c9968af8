package display

import "github.com/vitrinelab/vitrine/waveform"

// Default waveform configuration applied by Sequence when options are
// omitted.
const (
	DefaultPattern       = waveform.Sinusoidal
	DefaultNumCycles     = 3
	DefaultStepsPerCycle = 20
	DefaultPhaseOffset   = 0.0
)

// SequenceOptions configures a rhythmic sequence run.
//
//   - Pattern       : waveform shape blending state A toward state B.
//   - NumCycles     : complete A→B→A oscillations in the sequence.
//   - StepsPerCycle : samples per oscillation (the sequence period).
//   - PhaseOffset   : starting phase in [0,1); 0 starts at pure A,
//     0.5 half a cycle in.
//
// Values are recorded as given; Sequence validates the assembled
// configuration before computing anything.
type SequenceOptions struct {
	Pattern       waveform.Pattern
	NumCycles     int
	StepsPerCycle int
	PhaseOffset   float64
}

// DefaultSequenceOptions returns the documented defaults: sinusoidal,
// 3 cycles, 20 steps per cycle, no phase offset.
func DefaultSequenceOptions() SequenceOptions {
	return SequenceOptions{
		Pattern:       DefaultPattern,
		NumCycles:     DefaultNumCycles,
		StepsPerCycle: DefaultStepsPerCycle,
		PhaseOffset:   DefaultPhaseOffset,
	}
}

// Option mutates SequenceOptions before a sequence run.
type Option func(*SequenceOptions)

// WithPattern selects the waveform shape.
func WithPattern(p waveform.Pattern) Option {
	return func(o *SequenceOptions) {
		o.Pattern = p
	}
}

// WithCycles sets the number of complete oscillations.
func WithCycles(n int) Option {
	return func(o *SequenceOptions) {
		o.NumCycles = n
	}
}

// WithStepsPerCycle sets the samples per oscillation.
func WithStepsPerCycle(n int) Option {
	return func(o *SequenceOptions) {
		o.StepsPerCycle = n
	}
}

// WithPhaseOffset sets the starting phase as a fraction of one cycle.
func WithPhaseOffset(offset float64) Option {
	return func(o *SequenceOptions) {
		o.PhaseOffset = offset
	}
}
