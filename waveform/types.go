package waveform

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidPattern is returned when a pattern string matches none of
	// the recognized waveform patterns.
	ErrInvalidPattern = errors.New("waveform: unrecognized pattern")

	// ErrInvalidCycleConfig is returned when step or cycle counts are not
	// strictly positive.
	ErrInvalidCycleConfig = errors.New("waveform: non-positive cycle configuration")

	// ErrInvalidPhaseOffset is returned when a phase offset lies outside
	// the half-open interval [0,1).
	ErrInvalidPhaseOffset = errors.New("waveform: phase offset outside [0,1)")
)

// Pattern names one of the recognized periodic waveforms.
type Pattern string

const (
	Sinusoidal Pattern = "sinusoidal"
	Triangular Pattern = "triangular"
	Square     Pattern = "square"
)

// Patterns returns the recognized patterns in their documented order.
func Patterns() []Pattern {
	return []Pattern{Sinusoidal, Triangular, Square}
}

// Valid reports whether p names a recognized pattern.
func (p Pattern) Valid() bool {
	return sampler(p) != nil
}

// ParsePattern validates a raw pattern string, returning ErrInvalidPattern
// for anything but the three recognized names.
func ParsePattern(s string) (Pattern, error) {
	p := Pattern(s)
	if !p.Valid() {
		return "", fmt.Errorf("%w: %q (want one of %v)", ErrInvalidPattern, s, Patterns())
	}
	return p, nil
}
