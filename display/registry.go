package display

import (
	"fmt"

	"github.com/vitrinelab/vitrine/coords"
	"github.com/vitrinelab/vitrine/waveform"
)

// states is the canonical display-state registry. Order is the curated
// presentation order; lookups go through the index map.
var states = []State{
	{Name: "luxury_isolation", Coords: coords.Vector{0.10, 0.40, 0.35, 0.85, 0.90}},
	{Name: "theatrical_drama", Coords: coords.Vector{0.55, 0.85, 0.90, 0.50, 0.40}},
	{Name: "abundance_wall", Coords: coords.Vector{0.95, 0.10, 0.15, 0.20, 0.10}},
	{Name: "editorial_minimal", Coords: coords.Vector{0.15, 0.15, 0.50, 0.80, 0.85}},
	{Name: "immersive_spectacle", Coords: coords.Vector{0.75, 0.95, 0.95, 0.45, 0.25}},
	{Name: "curated_collection", Coords: coords.Vector{0.45, 0.60, 0.35, 0.55, 0.55}},
	{Name: "narrative_journey", Coords: coords.Vector{0.60, 0.70, 0.65, 0.50, 0.35}},
}

// presets is the rhythmic preset registry, in curated order.
var presets = []Preset{
	{
		Name:          "seasonal_transition",
		StateA:        "editorial_minimal",
		StateB:        "theatrical_drama",
		Pattern:       waveform.Sinusoidal,
		NumCycles:     3,
		StepsPerCycle: 24,
		Description:   "Smooth seasonal arc from restrained editorial to theatrical grandeur and back",
	},
	{
		Name:          "day_night_cycle",
		StateA:        "curated_collection",
		StateB:        "immersive_spectacle",
		Pattern:       waveform.Sinusoidal,
		NumCycles:     4,
		StepsPerCycle: 20,
		Description:   "Daylight curation dissolving into night-time spectacle lighting",
	},
	{
		Name:          "intimacy_sweep",
		StateA:        "abundance_wall",
		StateB:        "luxury_isolation",
		Pattern:       waveform.Triangular,
		NumCycles:     2,
		StepsPerCycle: 30,
		Description:   "Linear ramp from packed abundance to solitary luxury focus",
	},
	{
		Name:          "drama_pulse",
		StateA:        "curated_collection",
		StateB:        "immersive_spectacle",
		Pattern:       waveform.Sinusoidal,
		NumCycles:     5,
		StepsPerCycle: 16,
		Description:   "Rapid rhythmic pulse between restrained curation and full spectacle",
	},
	{
		Name:          "narrative_shift",
		StateA:        "editorial_minimal",
		StateB:        "narrative_journey",
		Pattern:       waveform.Square,
		NumCycles:     4,
		StepsPerCycle: 12,
		Description:   "Hard cuts between minimal editorial and storytelling progression",
	},
}

var (
	stateIndex  = make(map[string]int, len(states))
	presetIndex = make(map[string]int, len(presets))
)

func init() {
	for i, s := range states {
		stateIndex[s.Name] = i
	}
	for i, p := range presets {
		presetIndex[p.Name] = i
	}
}

// States returns the canonical states in curated order.
func States() []State {
	return append([]State(nil), states...)
}

// StateNames returns the canonical state identifiers in curated order.
func StateNames() []string {
	names := make([]string, len(states))
	for i, s := range states {
		names[i] = s.Name
	}
	return names
}

// StateByName resolves a canonical state identifier.
// Unknown identifiers fail with ErrUnknownState.
func StateByName(name string) (State, error) {
	i, ok := stateIndex[name]
	if !ok {
		return State{}, fmt.Errorf("%w: %q (available: %v)", ErrUnknownState, name, StateNames())
	}
	return states[i], nil
}

// Presets returns the rhythmic presets in curated order.
func Presets() []Preset {
	return append([]Preset(nil), presets...)
}

// PresetNames returns the preset identifiers in curated order.
func PresetNames() []string {
	names := make([]string, len(presets))
	for i, p := range presets {
		names[i] = p.Name
	}
	return names
}

// PresetByName resolves a preset identifier.
// Unknown identifiers fail with ErrUnknownPreset.
func PresetByName(name string) (Preset, error) {
	i, ok := presetIndex[name]
	if !ok {
		return Preset{}, fmt.Errorf("%w: %q (available: %v)", ErrUnknownPreset, name, PresetNames())
	}
	return presets[i], nil
}
