package taxonomy

import "errors"

var (
	ErrUnknownComposition  = errors.New("taxonomy: unknown composition type")
	ErrUnknownDepthStaging = errors.New("taxonomy: unknown depth staging")
	ErrUnknownLighting     = errors.New("taxonomy: unknown lighting framework")
	ErrUnknownSightLine    = errors.New("taxonomy: unknown viewer context")
)

// Composition describes one structural arrangement family: how elements
// are placed and how the eye travels across them.
type Composition struct {
	Name           string             `json:"name"`
	Description    string             `json:"description"`
	EyeMovement    string             `json:"eye_movement"`
	Stability      string             `json:"stability"`
	TypicalRatios  map[string]float64 `json:"typical_ratios"`
	RetailContexts []string           `json:"retail_contexts"`
}

// DepthStaging describes how the display uses the depth axis between
// glass and back wall.
type DepthStaging struct {
	Name               string  `json:"name"`
	Description        string  `json:"description"`
	DepthZones         int     `json:"depth_zones"`
	ViewingDistance    string  `json:"viewing_distance"`
	SpatialCompression float64 `json:"spatial_compression"`
}

// Lighting describes one lighting framework. A negative key angle means
// the key light sits below the horizontal (uplighting).
type Lighting struct {
	Name              string  `json:"name"`
	Description       string  `json:"description"`
	KeyAngle          float64 `json:"key_angle"`
	KeyIntensityRatio float64 `json:"key_intensity_ratio"`
	FillRatio         float64 `json:"fill_ratio"`
	ColorTemperature  int     `json:"color_temperature"`
	ShadowQuality     string  `json:"shadow_quality"`
}

// SightLine describes a viewer situation: where the eyes are and at what
// angle and distance they meet the glass. A negative viewing angle looks
// down at the display.
type SightLine struct {
	Name               string  `json:"name"`
	Description        string  `json:"description"`
	ViewingAngle       float64 `json:"viewing_angle"`
	ViewingDistanceFt  float64 `json:"viewing_distance_ft"`
	EyeHeightIn        float64 `json:"eye_height_in"`
	OptimalFocalHeight float64 `json:"optimal_focal_height"`
}
