package tool

import (
	"encoding/json"
	"fmt"
	"sort"

	"github.com/vitrinelab/vitrine/coords"
	"github.com/vitrinelab/vitrine/display"
	"github.com/vitrinelab/vitrine/geometry"
	"github.com/vitrinelab/vitrine/prompt"
	"github.com/vitrinelab/vitrine/taxonomy"
	"github.com/vitrinelab/vitrine/vocab"
	"github.com/vitrinelab/vitrine/waveform"
)

// ServerName and Version identify the engine in get_server_info
// envelopes.
const (
	ServerName = "vitrine"
	Version    = "0.2.0"
)

const serverDescription = "Shop window display composition, lighting, and aesthetic dynamics vocabulary"

// defaultKeyframeCount matches the sequence-prompt tools' historical
// default.
const defaultKeyframeCount = 4

func (r *Registry) register() {
	r.add("list_display_states",
		"Canonical display states with coordinates and axis semantics.",
		handleListStates)
	r.add("list_display_rhythmic_presets",
		"Curated oscillation presets with periods, patterns, and state pairs.",
		handleListPresets)
	r.add("generate_display_rhythmic_sequence",
		"Oscillating trajectory between two canonical states.",
		handleSequence)
	r.add("apply_display_rhythmic_preset",
		"Full trajectory for one curated preset.",
		handleApplyPreset)
	r.add("extract_display_visual_vocabulary",
		"Nearest visual archetype and strength-gated keywords for a state.",
		handleExtractVocabulary)
	r.add("compute_display_state_distance",
		"Euclidean distance and per-axis differences between two states.",
		handleDistance)
	r.add("generate_display_attractor_prompt",
		"Keyword prompt from a state, preset midpoint, or custom vector.",
		handleAttractorPrompt)
	r.add("generate_display_sequence_prompts",
		"Keyframe prompts extracted from a preset trajectory.",
		handleSequencePrompts)
	r.add("list_composition_types",
		"Composition families with eye movement and retail contexts.",
		handleListCompositions)
	r.add("get_composition_specifications",
		"Full specification for one composition family.",
		handleCompositionSpec)
	r.add("list_lighting_frameworks",
		"Lighting frameworks with angles, ratios, and shadow qualities.",
		handleListLighting)
	r.add("get_sight_line_geometry",
		"Viewing angles, distances, and focal placement for one viewer context.",
		handleSightLine)
	r.add("map_display_parameters",
		"Deterministic geometric blueprint for a window configuration.",
		handleMapParameters)
	r.add("generate_display_prompt",
		"Complete geometric image prompt for a window scene.",
		handleDisplayPrompt)
	r.add("get_server_info",
		"Engine build, registry inventory, and registered tools.",
		r.handleServerInfo)
}

// StatesResult lists the canonical states in curated order plus the
// axis vocabulary they are expressed in.
type StatesResult struct {
	DisplayStates      []display.State   `json:"display_states"`
	ParameterNames     []string          `json:"parameter_names"`
	ParameterSemantics map[string]string `json:"parameter_semantics"`
	Count              int               `json:"count"`
}

// PresetSummary is the one-line view of a preset used by list and info
// tools.
type PresetSummary struct {
	Name        string           `json:"name"`
	Period      int              `json:"period"`
	TotalSteps  int              `json:"total_steps"`
	Pattern     waveform.Pattern `json:"pattern"`
	States      string           `json:"states"`
	Description string           `json:"description"`
}

// PresetsResult lists the curated presets.
type PresetsResult struct {
	Presets           []PresetSummary    `json:"presets"`
	Count             int                `json:"count"`
	AvailablePatterns []waveform.Pattern `json:"available_patterns"`
}

// CompositionsResult lists the composition families in curated order.
type CompositionsResult struct {
	CompositionTypes []taxonomy.Composition `json:"composition_types"`
	Count            int                    `json:"count"`
}

// CompositionSpec echoes the requested family with its specification.
type CompositionSpec struct {
	CompositionType string               `json:"composition_type"`
	Specifications  taxonomy.Composition `json:"specifications"`
}

// LightingResult lists the lighting frameworks in curated order.
type LightingResult struct {
	LightingFrameworks []taxonomy.Lighting `json:"lighting_frameworks"`
	Count              int                 `json:"count"`
}

// SightLineResult echoes the requested viewer context with its geometry.
type SightLineResult struct {
	ViewerContext string             `json:"viewer_context"`
	Geometry      taxonomy.SightLine `json:"geometry"`
}

// ServerInfo inventories the engine: version, registries, and tools.
type ServerInfo struct {
	Name                string          `json:"name"`
	Version             string          `json:"version"`
	Description         string          `json:"description"`
	ParameterNames      []string        `json:"parameter_names"`
	CanonicalStates     []string        `json:"canonical_states"`
	RhythmicPresets     []PresetSummary `json:"rhythmic_presets"`
	PresetPeriods       []int           `json:"preset_periods"`
	VisualTypes         []string        `json:"visual_types"`
	PromptModes         []string        `json:"prompt_modes"`
	CompositionTypes    []string        `json:"composition_types"`
	LightingFrameworks  []string        `json:"lighting_frameworks"`
	DepthStagingOptions []string        `json:"depth_staging_options"`
	ViewerContexts      []string        `json:"viewer_contexts"`
	Tools               []string        `json:"tools"`
}

func handleListStates(json.RawMessage) (any, error) {
	names := make([]string, 0, coords.AxisCount)
	semantics := make(map[string]string, coords.AxisCount)
	for _, a := range coords.Axes() {
		names = append(names, a.String())
		semantics[a.String()] = a.Semantic()
	}
	states := display.States()
	return StatesResult{
		DisplayStates:      states,
		ParameterNames:     names,
		ParameterSemantics: semantics,
		Count:              len(states),
	}, nil
}

func handleListPresets(json.RawMessage) (any, error) {
	presets := display.Presets()
	summaries := make([]PresetSummary, len(presets))
	for i, p := range presets {
		summaries[i] = summarize(p)
	}
	return PresetsResult{
		Presets:           summaries,
		Count:             len(summaries),
		AvailablePatterns: waveform.Patterns(),
	}, nil
}

func summarize(p display.Preset) PresetSummary {
	return PresetSummary{
		Name:        p.Name,
		Period:      p.StepsPerCycle,
		TotalSteps:  p.NumCycles * p.StepsPerCycle,
		Pattern:     p.Pattern,
		States:      p.StateA + " ↔ " + p.StateB,
		Description: p.Description,
	}
}

type sequenceParams struct {
	StateAID      string   `json:"state_a_id"`
	StateBID      string   `json:"state_b_id"`
	Pattern       string   `json:"oscillation_pattern"`
	NumCycles     *int     `json:"num_cycles"`
	StepsPerCycle *int     `json:"steps_per_cycle"`
	PhaseOffset   *float64 `json:"phase_offset"`
}

func handleSequence(raw json.RawMessage) (any, error) {
	var p sequenceParams
	if err := decode(raw, &p); err != nil {
		return nil, err
	}
	opts := make([]display.Option, 0, 4)
	if p.Pattern != "" {
		opts = append(opts, display.WithPattern(waveform.Pattern(p.Pattern)))
	}
	if p.NumCycles != nil {
		opts = append(opts, display.WithCycles(*p.NumCycles))
	}
	if p.StepsPerCycle != nil {
		opts = append(opts, display.WithStepsPerCycle(*p.StepsPerCycle))
	}
	if p.PhaseOffset != nil {
		opts = append(opts, display.WithPhaseOffset(*p.PhaseOffset))
	}
	return display.Sequence(p.StateAID, p.StateBID, opts...)
}

type presetParams struct {
	PresetName string `json:"preset_name"`
}

func handleApplyPreset(raw json.RawMessage) (any, error) {
	var p presetParams
	if err := decode(raw, &p); err != nil {
		return nil, err
	}
	return display.ApplyPreset(p.PresetName)
}

type vocabParams struct {
	State    map[string]float64 `json:"state"`
	Strength *float64           `json:"strength"`
}

func handleExtractVocabulary(raw json.RawMessage) (any, error) {
	var p vocabParams
	if err := decode(raw, &p); err != nil {
		return nil, err
	}
	if p.State == nil {
		return nil, fmt.Errorf("%w: state is required", ErrBadParams)
	}
	strength := 1.0
	if p.Strength != nil {
		strength = *p.Strength
	}
	return vocab.Extract(coords.FromMap(p.State), strength), nil
}

type distanceParams struct {
	StateAID string `json:"state_a_id"`
	StateBID string `json:"state_b_id"`
}

func handleDistance(raw json.RawMessage) (any, error) {
	var p distanceParams
	if err := decode(raw, &p); err != nil {
		return nil, err
	}
	return display.StateDistance(p.StateAID, p.StateBID)
}

type attractorParams struct {
	PresetName    string             `json:"preset_name"`
	CustomState   map[string]float64 `json:"custom_state"`
	Mode          string             `json:"mode"`
	StyleModifier string             `json:"style_modifier"`
	KeyframeCount *int               `json:"keyframe_count"`
}

func handleAttractorPrompt(raw json.RawMessage) (any, error) {
	var p attractorParams
	if err := decode(raw, &p); err != nil {
		return nil, err
	}
	if p.Mode == "sequence" {
		return prompt.Sequence(p.PresetName, countOrDefault(p.KeyframeCount), p.StyleModifier)
	}
	return prompt.Composite(prompt.CompositeRequest{
		Name:   p.PresetName,
		Custom: p.CustomState,
		Style:  p.StyleModifier,
	})
}

type sequencePromptParams struct {
	PresetName    string `json:"preset_name"`
	KeyframeCount *int   `json:"keyframe_count"`
	StyleModifier string `json:"style_modifier"`
}

func handleSequencePrompts(raw json.RawMessage) (any, error) {
	var p sequencePromptParams
	if err := decode(raw, &p); err != nil {
		return nil, err
	}
	return prompt.Sequence(p.PresetName, countOrDefault(p.KeyframeCount), p.StyleModifier)
}

func countOrDefault(n *int) int {
	if n == nil {
		return defaultKeyframeCount
	}
	return *n
}

func handleListCompositions(json.RawMessage) (any, error) {
	comps := taxonomy.Compositions()
	return CompositionsResult{CompositionTypes: comps, Count: len(comps)}, nil
}

type compositionParams struct {
	CompositionType string `json:"composition_type"`
}

func handleCompositionSpec(raw json.RawMessage) (any, error) {
	var p compositionParams
	if err := decode(raw, &p); err != nil {
		return nil, err
	}
	c, err := taxonomy.CompositionByName(p.CompositionType)
	if err != nil {
		return nil, err
	}
	return CompositionSpec{CompositionType: c.Name, Specifications: c}, nil
}

func handleListLighting(json.RawMessage) (any, error) {
	frameworks := taxonomy.Lightings()
	return LightingResult{LightingFrameworks: frameworks, Count: len(frameworks)}, nil
}

type sightLineParams struct {
	ViewerContext string `json:"viewer_context"`
}

func handleSightLine(raw json.RawMessage) (any, error) {
	var p sightLineParams
	if err := decode(raw, &p); err != nil {
		return nil, err
	}
	s, err := taxonomy.SightLineByName(p.ViewerContext)
	if err != nil {
		return nil, err
	}
	return SightLineResult{ViewerContext: s.Name, Geometry: s}, nil
}

type mapParams struct {
	WindowWidthFt     float64 `json:"window_width_ft"`
	WindowHeightFt    float64 `json:"window_height_ft"`
	CompositionType   string  `json:"composition_type"`
	DepthStaging      string  `json:"depth_staging"`
	LightingFramework string  `json:"lighting_framework"`
	ViewerContext     string  `json:"viewer_context"`
}

func handleMapParameters(raw json.RawMessage) (any, error) {
	var p mapParams
	if err := decode(raw, &p); err != nil {
		return nil, err
	}
	return geometry.MapParameters(p.WindowWidthFt, p.WindowHeightFt,
		p.CompositionType, p.DepthStaging, p.LightingFramework, p.ViewerContext)
}

type displayPromptParams struct {
	mapParams
	SubjectDescription string `json:"subject_description"`
	StyleModifier      string `json:"style_modifier"`
}

func handleDisplayPrompt(raw json.RawMessage) (any, error) {
	var p displayPromptParams
	if err := decode(raw, &p); err != nil {
		return nil, err
	}
	return prompt.Display(prompt.DisplayRequest{
		WidthFt:       p.WindowWidthFt,
		HeightFt:      p.WindowHeightFt,
		Composition:   p.CompositionType,
		DepthStaging:  p.DepthStaging,
		Lighting:      p.LightingFramework,
		ViewerContext: p.ViewerContext,
		Subject:       p.SubjectDescription,
		Style:         p.StyleModifier,
	})
}

func (r *Registry) handleServerInfo(json.RawMessage) (any, error) {
	axisNames := make([]string, 0, coords.AxisCount)
	for _, a := range coords.Axes() {
		axisNames = append(axisNames, a.String())
	}

	presets := display.Presets()
	summaries := make([]PresetSummary, len(presets))
	periodSet := make(map[int]struct{}, len(presets))
	for i, p := range presets {
		summaries[i] = summarize(p)
		periodSet[p.StepsPerCycle] = struct{}{}
	}
	periods := make([]int, 0, len(periodSet))
	for period := range periodSet {
		periods = append(periods, period)
	}
	sort.Ints(periods)

	archetypes := vocab.Archetypes()
	visualTypes := make([]string, len(archetypes))
	for i, a := range archetypes {
		visualTypes[i] = a.Name
	}

	return ServerInfo{
		Name:                ServerName,
		Version:             Version,
		Description:         serverDescription,
		ParameterNames:      axisNames,
		CanonicalStates:     display.StateNames(),
		RhythmicPresets:     summaries,
		PresetPeriods:       periods,
		VisualTypes:         visualTypes,
		PromptModes:         []string{"composite", "sequence"},
		CompositionTypes:    taxonomy.CompositionNames(),
		LightingFrameworks:  taxonomy.LightingNames(),
		DepthStagingOptions: taxonomy.DepthStagingNames(),
		ViewerContexts:      taxonomy.SightLineNames(),
		Tools:               r.Names(),
	}, nil
}
