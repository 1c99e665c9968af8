// SPDX-License-Identifier: MIT
// Package: vitrine/geometry
//
// blueprint.go — taxonomy selections → concrete staging measurements.
//
// Purpose:
//   • Resolve the four taxonomy identifiers, place the focal point per
//     the composition's placement rule, budget negative space, lay out
//     depth zones, and echo lighting/viewing numbers with the computed
//     viewing cone.
//
// Contract:
//   • Dimensions and all identifiers validated before computation;
//     complete Blueprint or one sentinel-rooted error.
//   • Focal placement rules: pyramidal centers x and lifts y to the apex
//     ratio; isolation and triangular_cluster push x to the golden
//     offset; radial dead-centers; everything else centers x at the
//     sight line's optimal focal height.
//   • Rounding: feet 2 decimals, normalized fractions 3, FOV 1.

package geometry

import (
	"fmt"

	"github.com/vitrinelab/vitrine/taxonomy"
)

// Negative-space budget per composition family. Isolation reads its own
// ratio from the taxonomy table; these cover the rest.
const (
	negativeSpaceRepetition = 0.20
	negativeSpaceDefault    = 0.40
)

// centerFraction places a focal coordinate mid-dimension.
const centerFraction = 0.50

// triangularClusterFocalHeight lifts the cluster focal point slightly
// above center.
const triangularClusterFocalHeight = 0.55

// MapParameters derives the full geometric Blueprint for a window.
//
// Errors: ErrWindowSize for non-positive dimensions, and the taxonomy
// sentinels (ErrUnknownComposition, ErrUnknownDepthStaging,
// ErrUnknownLighting, ErrUnknownSightLine) for unknown identifiers.
func MapParameters(widthFt, heightFt float64, composition, depthStaging, lighting, viewerContext string) (*Blueprint, error) {
	if widthFt <= 0 || heightFt <= 0 {
		return nil, fmt.Errorf("%w: %g × %g ft", ErrWindowSize, widthFt, heightFt)
	}

	comp, err := taxonomy.CompositionByName(composition)
	if err != nil {
		return nil, err
	}
	depth, err := taxonomy.DepthStagingByName(depthStaging)
	if err != nil {
		return nil, err
	}
	light, err := taxonomy.LightingByName(lighting)
	if err != nil {
		return nil, err
	}
	sight, err := taxonomy.SightLineByName(viewerContext)
	if err != nil {
		return nil, err
	}

	focalX, focalY := focalPoint(widthFt, heightFt, comp, sight)
	cone := ViewingCone(widthFt, heightFt, sight.ViewingDistanceFt, sight.ViewingAngle)

	return &Blueprint{
		Window: Dimensions{
			WidthFt:     widthFt,
			HeightFt:    heightFt,
			AspectRatio: round2(widthFt / heightFt),
		},
		Composition: CompositionPlan{
			Type: comp.Name,
			PrimaryFocalPoint: FocalPoint{
				XFt:         round2(focalX),
				YFt:         round2(focalY),
				XNormalized: round3(focalX / widthFt),
				YNormalized: round3(focalY / heightFt),
			},
			EyeMovementPattern: comp.EyeMovement,
			NegativeSpaceRatio: negativeSpace(comp),
		},
		Depth: DepthPlan{
			Strategy:           depth.Name,
			Zones:              depthZones(depth.DepthZones),
			SpatialCompression: depth.SpatialCompression,
		},
		Lighting: LightingPlan{
			Framework:         light.Name,
			KeyLightAngleDeg:  light.KeyAngle,
			IntensityRatio:    light.KeyIntensityRatio,
			FillRatio:         light.FillRatio,
			ColorTemperatureK: light.ColorTemperature,
			ShadowQuality:     light.ShadowQuality,
		},
		Viewing: ViewingPlan{
			ViewerContext:     sight.Name,
			ViewingAngleDeg:   sight.ViewingAngle,
			ViewingDistanceFt: sight.ViewingDistanceFt,
			EyeHeightIn:       sight.EyeHeightIn,
			Cone:              cone,
		},
	}, nil
}

// focalPoint applies the per-composition placement rule.
func focalPoint(w, h float64, comp taxonomy.Composition, sight taxonomy.SightLine) (x, y float64) {
	switch comp.Name {
	case "pyramidal":
		return w * centerFraction, h * comp.TypicalRatios["apex_height"]
	case "isolation":
		return w * GoldenOffset(1.0), h * sight.OptimalFocalHeight
	case "radial":
		return w * centerFraction, h * centerFraction
	case "triangular_cluster":
		return w * GoldenOffset(1.0), h * triangularClusterFocalHeight
	default:
		return w * centerFraction, h * sight.OptimalFocalHeight
	}
}

// negativeSpace budgets breathing room per composition family.
func negativeSpace(comp taxonomy.Composition) float64 {
	switch comp.Name {
	case "isolation":
		return comp.TypicalRatios["negative_space"]
	case "repetition":
		return negativeSpaceRepetition
	default:
		return negativeSpaceDefault
	}
}

// depthZones lays out the named planes for a zone count. Three zones map
// to the classic foreground/midground/background split and two to a
// focal plane with backdrop; any other count collapses onto a single
// plane at the glass.
func depthZones(count int) map[string]Zone {
	switch count {
	case 3:
		return map[string]Zone{
			"foreground": {DistanceFt: 1.0, Scale: 1.0},
			"midground":  {DistanceFt: 3.5, Scale: 0.75},
			"background": {DistanceFt: 6.0, Scale: 0.50},
		}
	case 2:
		return map[string]Zone{
			"focal_plane": {DistanceFt: 2.0, Scale: 1.0},
			"background":  {DistanceFt: 5.0, Scale: 0.70},
		}
	default:
		return map[string]Zone{
			"single_plane": {DistanceFt: 0.5, Scale: 1.0},
		}
	}
}
