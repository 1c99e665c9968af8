package display

import (
	"errors"

	"github.com/vitrinelab/vitrine/coords"
	"github.com/vitrinelab/vitrine/trajectory"
	"github.com/vitrinelab/vitrine/waveform"
)

var (
	// ErrUnknownState is returned when a state identifier is absent from
	// the canonical registry.
	ErrUnknownState = errors.New("display: unknown state")

	// ErrUnknownPreset is returned when a preset identifier is absent
	// from the preset registry.
	ErrUnknownPreset = errors.New("display: unknown preset")
)

// State is a named canonical point in the aesthetic parameter space.
type State struct {
	Name   string        `json:"name"`
	Coords coords.Vector `json:"coords"`
}

// Preset pairs two canonical states with a complete waveform
// configuration and a human-readable description.
type Preset struct {
	Name          string           `json:"name"`
	StateA        string           `json:"state_a"`
	StateB        string           `json:"state_b"`
	Pattern       waveform.Pattern `json:"pattern"`
	NumCycles     int              `json:"num_cycles"`
	StepsPerCycle int              `json:"steps_per_cycle"`
	Description   string           `json:"description"`
}

// SequenceResult is the complete outcome of a rhythmic sequence run.
// Every input is echoed back alongside the derived counts so the result
// is self-describing.
type SequenceResult struct {
	StateA        string             `json:"state_a"`
	StateB        string             `json:"state_b"`
	Pattern       waveform.Pattern   `json:"pattern"`
	NumCycles     int                `json:"num_cycles"`
	StepsPerCycle int                `json:"steps_per_cycle"`
	TotalSteps    int                `json:"total_steps"`
	Period        int                `json:"period"`
	PhaseOffset   float64            `json:"phase_offset"`
	Sequence      []trajectory.Point `json:"sequence"`
}

// PresetResult is the outcome of running a preset: the preset metadata
// plus its full interpolated trajectory.
type PresetResult struct {
	Preset      string             `json:"preset"`
	Description string             `json:"description"`
	StateA      string             `json:"state_a"`
	StateB      string             `json:"state_b"`
	Pattern     waveform.Pattern   `json:"pattern"`
	Period      int                `json:"period"`
	NumCycles   int                `json:"num_cycles"`
	TotalSteps  int                `json:"total_steps"`
	Trajectory  []trajectory.Point `json:"trajectory"`
}

// DistanceResult reports the separation of two states: the per-axis
// signed differences (b − a) and the Euclidean norm over the unrounded
// differences, each stabilized to 4 decimals.
type DistanceResult struct {
	StateA      string        `json:"state_a,omitempty"`
	StateB      string        `json:"state_b,omitempty"`
	Euclidean   float64       `json:"euclidean_distance"`
	Differences coords.Vector `json:"parameter_differences"`
}
