package geometry_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vitrinelab/vitrine/geometry"
	"github.com/vitrinelab/vitrine/taxonomy"
)

func TestGoldenOffset(t *testing.T) {
	assert.InDelta(t, 0.618033988749895, geometry.GoldenOffset(1.0), 1e-12)
	assert.InDelta(t, 6.18033988749895, geometry.GoldenOffset(10), 1e-12)
	assert.Equal(t, 0.0, geometry.GoldenOffset(0))
}

func TestGoldenOffsetMinorMatchesMajor(t *testing.T) {
	// 1/φ = φ−1: the reciprocal and conjugate forms are the same number.
	for _, d := range []float64{0, 1, 8, 12.5, 144} {
		assert.InDelta(t, geometry.GoldenOffset(d), geometry.GoldenOffsetMinor(d), 1e-12)
	}
	assert.InDelta(t, 0.618033988749895, geometry.GoldenOffsetMinor(1.0), 1e-12)
}

func TestViewingCone_StreetPedestrian(t *testing.T) {
	cone := geometry.ViewingCone(10, 8, 8, 25)

	assert.Equal(t, 7.25, cone.EffectiveHeightFt, "8ft × cos(25°)")
	assert.Equal(t, 64.0, cone.HorizontalFOVDeg, "2·atan(10/16) in degrees")
	assert.Equal(t, geometry.FocalZone{
		LeftFt:   3.0,
		RightFt:  7.0,
		BottomFt: 2.8,
		TopFt:    5.2,
	}, cone.FocalZone)
	assert.Equal(t, "natural", cone.AngleImpact)
}

func TestViewingCone_SteepAngleCompresses(t *testing.T) {
	cone := geometry.ViewingCone(10, 8, 3, 45)
	assert.Equal(t, 5.66, cone.EffectiveHeightFt)
	assert.Equal(t, 118.1, cone.HorizontalFOVDeg, "3ft viewing distance opens a very wide cone")
	assert.Equal(t, "compressed", cone.AngleImpact)
}

func TestViewingCone_NegativeAngle(t *testing.T) {
	cone := geometry.ViewingCone(10, 8, 15, -20)
	assert.Equal(t, 7.52, cone.EffectiveHeightFt, "cos is even: looking down foreshortens the same way")
	assert.Equal(t, "natural", cone.AngleImpact)
}

func TestMapParameters_IsolationGoldenPlacement(t *testing.T) {
	bp, err := geometry.MapParameters(10, 8,
		"isolation", "shallow_focus", "soft_luxury", "close_inspection")
	require.NoError(t, err)

	assert.Equal(t, 1.25, bp.Window.AspectRatio)

	fp := bp.Composition.PrimaryFocalPoint
	assert.Equal(t, 6.18, fp.XFt, "golden offset of the width")
	assert.Equal(t, 0.618, fp.XNormalized)
	assert.Equal(t, 4.8, fp.YFt, "height × close_inspection optimal focal height")
	assert.Equal(t, 0.6, fp.YNormalized)

	assert.Equal(t, 0.70, bp.Composition.NegativeSpaceRatio, "isolation reads its own ratio")
	assert.Equal(t, "immediate_focal_lock", bp.Composition.EyeMovementPattern)

	require.Len(t, bp.Depth.Zones, 2)
	assert.Equal(t, geometry.Zone{DistanceFt: 2.0, Scale: 1.0}, bp.Depth.Zones["focal_plane"])
	assert.Equal(t, geometry.Zone{DistanceFt: 5.0, Scale: 0.70}, bp.Depth.Zones["background"])
	assert.Equal(t, 0.60, bp.Depth.SpatialCompression)

	assert.Equal(t, "soft_luxury", bp.Lighting.Framework)
	assert.Equal(t, 45.0, bp.Lighting.KeyLightAngleDeg)
	assert.Equal(t, 4500, bp.Lighting.ColorTemperatureK)

	assert.Equal(t, "close_inspection", bp.Viewing.ViewerContext)
	assert.Equal(t, "compressed", bp.Viewing.Cone.AngleImpact)
}

func TestMapParameters_PyramidalApex(t *testing.T) {
	bp, err := geometry.MapParameters(12, 9,
		"pyramidal", "theatrical_depth", "accent_dramatic", "street_pedestrian")
	require.NoError(t, err)

	fp := bp.Composition.PrimaryFocalPoint
	assert.Equal(t, 6.0, fp.XFt, "pyramidal centers horizontally")
	assert.Equal(t, 0.5, fp.XNormalized)
	assert.Equal(t, 5.56, fp.YFt, "apex at the golden height ratio")
	assert.Equal(t, 0.618, fp.YNormalized)

	assert.Equal(t, 0.40, bp.Composition.NegativeSpaceRatio)
	assert.Equal(t, 1.33, bp.Window.AspectRatio)

	require.Len(t, bp.Depth.Zones, 3)
	assert.Equal(t, geometry.Zone{DistanceFt: 1.0, Scale: 1.0}, bp.Depth.Zones["foreground"])
	assert.Equal(t, geometry.Zone{DistanceFt: 3.5, Scale: 0.75}, bp.Depth.Zones["midground"])
	assert.Equal(t, geometry.Zone{DistanceFt: 6.0, Scale: 0.50}, bp.Depth.Zones["background"])

	assert.Equal(t, 8.16, bp.Viewing.Cone.EffectiveHeightFt)
	assert.Equal(t, 73.7, bp.Viewing.Cone.HorizontalFOVDeg)
}

func TestMapParameters_FocalRulesPerComposition(t *testing.T) {
	// passing_vehicle puts the optimal focal height at 0.5, so the
	// sight-line y of isolation and of the default-rule compositions
	// (step_progression, repetition) reads as centered here.
	tests := []struct {
		composition string
		wantXNorm   float64
		wantYNorm   float64
	}{
		{"pyramidal", 0.5, 0.618},
		{"step_progression", 0.5, 0.5},
		{"radial", 0.5, 0.5},
		{"isolation", 0.618, 0.5},
		{"repetition", 0.5, 0.5},
		{"triangular_cluster", 0.618, 0.55},
	}
	for _, tc := range tests {
		t.Run(tc.composition, func(t *testing.T) {
			bp, err := geometry.MapParameters(10, 10,
				tc.composition, "compressed_2d", "ambient_even", "passing_vehicle")
			require.NoError(t, err)
			assert.Equal(t, tc.wantXNorm, bp.Composition.PrimaryFocalPoint.XNormalized)
			assert.Equal(t, tc.wantYNorm, bp.Composition.PrimaryFocalPoint.YNormalized)
		})
	}
}

func TestMapParameters_NegativeSpaceRules(t *testing.T) {
	for comp, want := range map[string]float64{
		"isolation":  0.70,
		"repetition": 0.20,
		"radial":     0.40,
	} {
		bp, err := geometry.MapParameters(10, 8,
			comp, "compressed_2d", "ambient_even", "street_pedestrian")
		require.NoError(t, err)
		assert.Equal(t, want, bp.Composition.NegativeSpaceRatio, comp)
	}
}

func TestMapParameters_SinglePlaneFallback(t *testing.T) {
	// forced_perspective declares 4 zones; anything that is not 2 or 3
	// collapses onto the single glass plane.
	bp, err := geometry.MapParameters(10, 8,
		"radial", "forced_perspective", "ambient_even", "street_pedestrian")
	require.NoError(t, err)

	require.Len(t, bp.Depth.Zones, 1)
	assert.Equal(t, geometry.Zone{DistanceFt: 0.5, Scale: 1.0}, bp.Depth.Zones["single_plane"])
	assert.Equal(t, 0.15, bp.Depth.SpatialCompression)
}

func TestMapParameters_Validation(t *testing.T) {
	t.Run("bad_width", func(t *testing.T) {
		_, err := geometry.MapParameters(0, 8, "radial", "compressed_2d", "ambient_even", "street_pedestrian")
		assert.ErrorIs(t, err, geometry.ErrWindowSize)
	})
	t.Run("bad_height", func(t *testing.T) {
		_, err := geometry.MapParameters(10, -2, "radial", "compressed_2d", "ambient_even", "street_pedestrian")
		assert.ErrorIs(t, err, geometry.ErrWindowSize)
	})
	t.Run("unknown_composition", func(t *testing.T) {
		_, err := geometry.MapParameters(10, 8, "spiral", "compressed_2d", "ambient_even", "street_pedestrian")
		assert.ErrorIs(t, err, taxonomy.ErrUnknownComposition)
	})
	t.Run("unknown_depth", func(t *testing.T) {
		_, err := geometry.MapParameters(10, 8, "radial", "warped", "ambient_even", "street_pedestrian")
		assert.ErrorIs(t, err, taxonomy.ErrUnknownDepthStaging)
	})
	t.Run("unknown_lighting", func(t *testing.T) {
		_, err := geometry.MapParameters(10, 8, "radial", "compressed_2d", "strobe", "street_pedestrian")
		assert.ErrorIs(t, err, taxonomy.ErrUnknownLighting)
	})
	t.Run("unknown_sightline", func(t *testing.T) {
		_, err := geometry.MapParameters(10, 8, "radial", "compressed_2d", "ambient_even", "drone")
		assert.ErrorIs(t, err, taxonomy.ErrUnknownSightLine)
	})
}

func TestMapParameters_Deterministic(t *testing.T) {
	first, err := geometry.MapParameters(14, 10, "triangular_cluster", "theatrical_depth", "cool_modern", "elevated_view")
	require.NoError(t, err)
	second, err := geometry.MapParameters(14, 10, "triangular_cluster", "theatrical_depth", "cool_modern", "elevated_view")
	require.NoError(t, err)
	assert.Equal(t, first, second)
}
