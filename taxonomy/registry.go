package taxonomy

import "fmt"

var compositions = []Composition{
	{
		Name:           "pyramidal",
		Description:    "Stable hierarchical arrangement with apex focal point",
		EyeMovement:    "upward_convergent",
		Stability:      "high",
		TypicalRatios:  map[string]float64{"base_width": 1.0, "apex_height": 0.618},
		RetailContexts: []string{"luxury", "aspirational", "hero_product"},
	},
	{
		Name:           "step_progression",
		Description:    "Zigzag or stair-step creating guided left-to-right scan",
		EyeMovement:    "sequential_horizontal",
		Stability:      "medium",
		TypicalRatios:  map[string]float64{"step_height": 0.15, "step_depth": 0.20},
		RetailContexts: []string{"storytelling", "product_range", "seasonal_narrative"},
	},
	{
		Name:           "radial",
		Description:    "Elements emanating from central focal point",
		EyeMovement:    "outward_from_center",
		Stability:      "dynamic",
		TypicalRatios:  map[string]float64{"center_zone": 0.25, "radiation_angle": 45},
		RetailContexts: []string{"celebration", "abundance", "variety"},
	},
	{
		Name:           "isolation",
		Description:    "Single element in negative space for maximum impact",
		EyeMovement:    "immediate_focal_lock",
		Stability:      "very_high",
		TypicalRatios:  map[string]float64{"negative_space": 0.70, "focal_offset": 0.382},
		RetailContexts: []string{"ultra_luxury", "museum_quality", "iconic_statement"},
	},
	{
		Name:           "repetition",
		Description:    "Rhythmic pattern creating visual momentum",
		EyeMovement:    "scanning_rhythm",
		Stability:      "medium",
		TypicalRatios:  map[string]float64{"unit_spacing": 0.12, "pattern_repeat": 5},
		RetailContexts: []string{"mass_appeal", "variety", "abundance"},
	},
	{
		Name:           "triangular_cluster",
		Description:    "Three focal points forming stable triangle composition",
		EyeMovement:    "triangular_scan",
		Stability:      "high",
		TypicalRatios:  map[string]float64{"spacing": 0.30, "vertex_angle": 60},
		RetailContexts: []string{"collection", "coordinated_set", "balanced_variety"},
	},
}

var depthStagings = []DepthStaging{
	{
		Name:               "compressed_2d",
		Description:        "Flat graphic composition maximizing window glass plane",
		DepthZones:         1,
		ViewingDistance:    "close_inspection",
		SpatialCompression: 0.95,
	},
	{
		Name:               "theatrical_depth",
		Description:        "Strong foreground/midground/background separation",
		DepthZones:         3,
		ViewingDistance:    "street_level_15ft",
		SpatialCompression: 0.30,
	},
	{
		Name:               "forced_perspective",
		Description:        "Exaggerated depth using scale manipulation",
		DepthZones:         4,
		ViewingDistance:    "dramatic_distance_20ft",
		SpatialCompression: 0.15,
	},
	{
		Name:               "shallow_focus",
		Description:        "Photography-style depth with clear focal plane",
		DepthZones:         2,
		ViewingDistance:    "intimate_6ft",
		SpatialCompression: 0.60,
	},
}

var lightings = []Lighting{
	{
		Name:              "accent_dramatic",
		Description:       "High-contrast accent spots creating sculptural shadows",
		KeyAngle:          35,
		KeyIntensityRatio: 4.0,
		FillRatio:         0.25,
		ColorTemperature:  3200,
		ShadowQuality:     "hard_defined",
	},
	{
		Name:              "soft_luxury",
		Description:       "Even diffuse lighting with subtle modeling",
		KeyAngle:          45,
		KeyIntensityRatio: 2.0,
		FillRatio:         0.60,
		ColorTemperature:  4500,
		ShadowQuality:     "soft_graduated",
	},
	{
		Name:              "theatrical_uplight",
		Description:       "Low-angle uplighting for drama and monumentality",
		KeyAngle:          -25,
		KeyIntensityRatio: 5.0,
		FillRatio:         0.15,
		ColorTemperature:  2900,
		ShadowQuality:     "theatrical_elongated",
	},
	{
		Name:              "cool_modern",
		Description:       "Daylight-balanced cross-lighting for dimensionality",
		KeyAngle:          55,
		KeyIntensityRatio: 3.0,
		FillRatio:         0.40,
		ColorTemperature:  5600,
		ShadowQuality:     "crisp_natural",
	},
	{
		Name:              "ambient_even",
		Description:       "Shadowless illumination for pure color and form",
		KeyAngle:          0,
		KeyIntensityRatio: 1.2,
		FillRatio:         0.90,
		ColorTemperature:  4000,
		ShadowQuality:     "minimal",
	},
}

var sightLines = []SightLine{
	{
		Name:               "street_pedestrian",
		Description:        "Typical adult walking at sidewalk distance",
		ViewingAngle:       25,
		ViewingDistanceFt:  8,
		EyeHeightIn:        64,
		OptimalFocalHeight: 0.55,
	},
	{
		Name:               "passing_vehicle",
		Description:        "Driver or passenger in moving car",
		ViewingAngle:       15,
		ViewingDistanceFt:  20,
		EyeHeightIn:        52,
		OptimalFocalHeight: 0.50,
	},
	{
		Name:               "close_inspection",
		Description:        "Stopped viewer examining details",
		ViewingAngle:       45,
		ViewingDistanceFt:  3,
		EyeHeightIn:        64,
		OptimalFocalHeight: 0.60,
	},
	{
		Name:               "elevated_view",
		Description:        "Second-floor or elevated walkway perspective",
		ViewingAngle:       -20,
		ViewingDistanceFt:  15,
		EyeHeightIn:        120,
		OptimalFocalHeight: 0.35,
	},
}

// Compositions returns the composition families in curated order.
// Ratio maps and context slices are copied.
func Compositions() []Composition {
	out := make([]Composition, len(compositions))
	for i, c := range compositions {
		out[i] = copyComposition(c)
	}
	return out
}

// CompositionByName resolves a composition family identifier.
func CompositionByName(name string) (Composition, error) {
	for _, c := range compositions {
		if c.Name == name {
			return copyComposition(c), nil
		}
	}
	return Composition{}, fmt.Errorf("%w: %q", ErrUnknownComposition, name)
}

// CompositionNames returns the composition identifiers in curated order.
func CompositionNames() []string {
	names := make([]string, len(compositions))
	for i, c := range compositions {
		names[i] = c.Name
	}
	return names
}

func copyComposition(c Composition) Composition {
	ratios := make(map[string]float64, len(c.TypicalRatios))
	for k, v := range c.TypicalRatios {
		ratios[k] = v
	}
	c.TypicalRatios = ratios
	c.RetailContexts = append([]string(nil), c.RetailContexts...)
	return c
}

// DepthStagings returns the depth strategies in curated order.
func DepthStagings() []DepthStaging {
	return append([]DepthStaging(nil), depthStagings...)
}

// DepthStagingNames returns the depth staging identifiers in curated
// order.
func DepthStagingNames() []string {
	names := make([]string, len(depthStagings))
	for i, d := range depthStagings {
		names[i] = d.Name
	}
	return names
}

// DepthStagingByName resolves a depth staging identifier.
func DepthStagingByName(name string) (DepthStaging, error) {
	for _, d := range depthStagings {
		if d.Name == name {
			return d, nil
		}
	}
	return DepthStaging{}, fmt.Errorf("%w: %q", ErrUnknownDepthStaging, name)
}

// Lightings returns the lighting frameworks in curated order.
func Lightings() []Lighting {
	return append([]Lighting(nil), lightings...)
}

// LightingByName resolves a lighting framework identifier.
func LightingByName(name string) (Lighting, error) {
	for _, l := range lightings {
		if l.Name == name {
			return l, nil
		}
	}
	return Lighting{}, fmt.Errorf("%w: %q", ErrUnknownLighting, name)
}

// LightingNames returns the lighting framework identifiers in curated
// order.
func LightingNames() []string {
	names := make([]string, len(lightings))
	for i, l := range lightings {
		names[i] = l.Name
	}
	return names
}

// SightLines returns the viewer contexts in curated order.
func SightLines() []SightLine {
	return append([]SightLine(nil), sightLines...)
}

// SightLineNames returns the viewer context identifiers in curated
// order.
func SightLineNames() []string {
	names := make([]string, len(sightLines))
	for i, s := range sightLines {
		names[i] = s.Name
	}
	return names
}

// SightLineByName resolves a viewer context identifier.
func SightLineByName(name string) (SightLine, error) {
	for _, s := range sightLines {
		if s.Name == name {
			return s, nil
		}
	}
	return SightLine{}, fmt.Errorf("%w: %q", ErrUnknownSightLine, name)
}
