package geometry

import "errors"

// ErrWindowSize is returned when a window dimension is not strictly
// positive.
var ErrWindowSize = errors.New("geometry: window dimensions must be positive")

// FocalZone is the central region of the window where focal content
// reads best, in absolute feet from the bottom-left corner.
type FocalZone struct {
	LeftFt   float64 `json:"left_ft"`
	RightFt  float64 `json:"right_ft"`
	BottomFt float64 `json:"bottom_ft"`
	TopFt    float64 `json:"top_ft"`
}

// Cone describes what a viewer actually sees: the foreshortened window
// height, the horizontal field of view, the focal zone, and whether the
// viewing angle compresses the composition.
type Cone struct {
	EffectiveHeightFt float64   `json:"effective_height_ft"`
	HorizontalFOVDeg  float64   `json:"horizontal_fov_deg"`
	FocalZone         FocalZone `json:"focal_zone_coords"`
	AngleImpact       string    `json:"viewing_angle_impact"`
}

// Dimensions echoes the window size with its derived aspect ratio.
type Dimensions struct {
	WidthFt     float64 `json:"width_ft"`
	HeightFt    float64 `json:"height_ft"`
	AspectRatio float64 `json:"aspect_ratio"`
}

// FocalPoint places the primary focal point both in absolute feet and
// as window-normalized fractions (origin bottom-left).
type FocalPoint struct {
	XFt         float64 `json:"x_ft"`
	YFt         float64 `json:"y_ft"`
	XNormalized float64 `json:"x_normalized"`
	YNormalized float64 `json:"y_normalized"`
}

// CompositionPlan is the composition half of a blueprint.
type CompositionPlan struct {
	Type               string     `json:"type"`
	PrimaryFocalPoint  FocalPoint `json:"primary_focal_point"`
	EyeMovementPattern string     `json:"eye_movement_pattern"`
	NegativeSpaceRatio float64    `json:"negative_space_ratio"`
}

// Zone is one depth plane: its distance behind the glass and the scale
// elements on it should take relative to the foreground.
type Zone struct {
	DistanceFt float64 `json:"distance_ft"`
	Scale      float64 `json:"scale"`
}

// DepthPlan is the depth-staging half of a blueprint.
type DepthPlan struct {
	Strategy           string          `json:"strategy"`
	Zones              map[string]Zone `json:"zones"`
	SpatialCompression float64         `json:"spatial_compression"`
}

// LightingPlan carries the selected framework's photometric numbers.
type LightingPlan struct {
	Framework         string  `json:"framework"`
	KeyLightAngleDeg  float64 `json:"key_light_angle_deg"`
	IntensityRatio    float64 `json:"intensity_ratio"`
	FillRatio         float64 `json:"fill_ratio"`
	ColorTemperatureK int     `json:"color_temperature_k"`
	ShadowQuality     string  `json:"shadow_quality"`
}

// ViewingPlan carries the selected sight line and its computed cone.
type ViewingPlan struct {
	ViewerContext     string  `json:"viewer_context"`
	ViewingAngleDeg   float64 `json:"viewing_angle_deg"`
	ViewingDistanceFt float64 `json:"viewing_distance_ft"`
	EyeHeightIn       float64 `json:"eye_height_in"`
	Cone              Cone    `json:"viewing_cone"`
}

// Blueprint is the complete geometric specification for one display.
type Blueprint struct {
	Window      Dimensions      `json:"window_dimensions"`
	Composition CompositionPlan `json:"composition"`
	Depth       DepthPlan       `json:"depth_staging"`
	Lighting    LightingPlan    `json:"lighting"`
	Viewing     ViewingPlan     `json:"viewing_geometry"`
}
