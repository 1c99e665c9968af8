package prompt

import (
	"fmt"
	"strings"

	"github.com/vitrinelab/vitrine/coords"
	"github.com/vitrinelab/vitrine/display"
	"github.com/vitrinelab/vitrine/trajectory"
	"github.com/vitrinelab/vitrine/vocab"
)

// fullStrength keeps every keyword of the nearest archetype; attenuation
// is an extraction concern, not a rendering one.
const fullStrength = 1.0

// Composite renders a single keyword prompt for one point in parameter
// space. Source precedence: a non-empty Custom map wins, then Name as a
// canonical state, then Name as a preset (its trajectory midpoint
// supplies the state). When nothing resolves, ErrNoSource.
func Composite(req CompositeRequest) (*CompositePrompt, error) {
	state, source, err := resolveSource(req)
	if err != nil {
		return nil, err
	}
	ext := vocab.Extract(state, fullStrength)
	return &CompositePrompt{
		Mode:       "composite",
		Source:     source,
		Prompt:     keywordPrompt(req.Style, ext.Keywords),
		Vocabulary: ext,
	}, nil
}

func resolveSource(req CompositeRequest) (coords.Vector, string, error) {
	if len(req.Custom) > 0 {
		return coords.FromMap(req.Custom), "custom_state", nil
	}
	if st, err := display.StateByName(req.Name); err == nil {
		return st.Coords, "canonical_state:" + req.Name, nil
	}
	if res, err := display.ApplyPreset(req.Name); err == nil {
		mid := res.Trajectory[len(res.Trajectory)/2]
		return mid.State, "preset_midpoint:" + req.Name, nil
	}
	return coords.Vector{}, "", fmt.Errorf(
		"%w: %q matches no state or preset (states: %s; presets: %s)",
		ErrNoSource, req.Name,
		strings.Join(display.StateNames(), ", "),
		strings.Join(display.PresetNames(), ", "))
}

// Sequence renders one keyword prompt per keyframe of a preset
// trajectory: a storyboard of the oscillation.
func Sequence(presetName string, keyframeCount int, style string) (*SequencePrompt, error) {
	res, err := display.ApplyPreset(presetName)
	if err != nil {
		return nil, err
	}
	frames, err := trajectory.Keyframes(res.Trajectory, keyframeCount)
	if err != nil {
		return nil, err
	}

	keyframes := make([]Keyframe, len(frames))
	for i, f := range frames {
		ext := vocab.Extract(f.State, fullStrength)
		keyframes[i] = Keyframe{
			Step:       f.Step,
			State:      f.State,
			Vocabulary: ext,
			Prompt:     keywordPrompt(style, ext.Keywords),
		}
	}

	return &SequencePrompt{
		Mode:          "sequence",
		Preset:        presetName,
		Description:   res.Description,
		Period:        res.Period,
		KeyframeCount: len(keyframes),
		Keyframes:     keyframes,
	}, nil
}

// keywordPrompt joins an optional style prefix, the standard lead, and
// the archetype keywords into one comma-separated prompt line.
func keywordPrompt(style string, keywords []string) string {
	parts := make([]string, 0, len(keywords)+2)
	if style != "" {
		parts = append(parts, style)
	}
	parts = append(parts, promptLead)
	parts = append(parts, keywords...)
	return strings.Join(parts, ", ")
}
