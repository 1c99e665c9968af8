package prompt

import (
	"errors"

	"github.com/vitrinelab/vitrine/coords"
	"github.com/vitrinelab/vitrine/geometry"
	"github.com/vitrinelab/vitrine/vocab"
)

// ErrNoSource is returned by Composite when the request names no usable
// state source: no custom vector, and a name matching neither a
// canonical state nor a rhythmic preset.
var ErrNoSource = errors.New("prompt: no state source")

// DisplayRequest describes one physical window scene to render as a
// geometric prompt. Dimensions are in feet; the four framework names
// must exist in their respective taxonomy registries.
type DisplayRequest struct {
	WidthFt       float64
	HeightFt      float64
	Composition   string
	DepthStaging  string
	Lighting      string
	ViewerContext string

	// Subject is the merchandise description spliced into the opening
	// clause. Style, when non-empty, adds a "Style: ..." clause right
	// after it.
	Subject string
	Style   string
}

// DisplayPrompt is the rendered geometric prompt plus the blueprint it
// was assembled from.
type DisplayPrompt struct {
	Prompt     string              `json:"prompt"`
	Parameters *geometry.Blueprint `json:"parameters_used"`
	Subject    string              `json:"subject"`
	Style      string              `json:"style_modifier,omitempty"`
}

// CompositeRequest selects the state a composite prompt is built from.
// A non-empty Custom map wins; otherwise Name is tried first as a
// canonical state, then as a preset whose trajectory midpoint supplies
// the state.
type CompositeRequest struct {
	Name   string
	Custom map[string]float64
	Style  string
}

// CompositePrompt is one keyword prompt for a single point in parameter
// space. Source records which branch of the precedence chain supplied
// the state.
type CompositePrompt struct {
	Mode       string           `json:"mode"`
	Source     string           `json:"source"`
	Prompt     string           `json:"prompt"`
	Vocabulary vocab.Extraction `json:"vocabulary"`
}

// Keyframe is one rendered step of a sequence prompt.
type Keyframe struct {
	Step       int              `json:"step"`
	State      coords.Vector    `json:"state"`
	Vocabulary vocab.Extraction `json:"vocabulary"`
	Prompt     string           `json:"prompt"`
}

// SequencePrompt is the full keyframe storyboard for one preset.
type SequencePrompt struct {
	Mode          string     `json:"mode"`
	Preset        string     `json:"preset"`
	Description   string     `json:"description"`
	Period        int        `json:"period"`
	KeyframeCount int        `json:"keyframe_count"`
	Keyframes     []Keyframe `json:"keyframes"`
}
