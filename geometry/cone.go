package geometry

import "math"

// phi is the golden ratio; GoldenOffset scales by its conjugate φ−1,
// the classic ≈0.618 placement fraction.
const phi = 1.618033988749895

// Focal zone bounds as fractions of the window: the center band between
// 30–70% of the width and 35–65% of the height.
const (
	focalZoneLeft   = 0.30
	focalZoneRight  = 0.70
	focalZoneBottom = 0.35
	focalZoneTop    = 0.65
)

// compressionAngleDeg is the absolute viewing angle beyond which the
// composition reads as compressed rather than natural.
const compressionAngleDeg = 30.0

func radians(deg float64) float64 { return deg * math.Pi / 180 }
func degrees(rad float64) float64 { return rad * 180 / math.Pi }

func round1(x float64) float64 { return math.Round(x*10) / 10 }
func round2(x float64) float64 { return math.Round(x*100) / 100 }
func round3(x float64) float64 { return math.Round(x*1000) / 1000 }

// GoldenOffset returns the golden-ratio placement offset along a
// dimension: dimension · (φ−1) ≈ dimension · 0.618.
func GoldenOffset(dimension float64) float64 {
	return dimension * (phi - 1)
}

// GoldenOffsetMinor returns the reciprocal form dimension / φ. The
// golden ratio satisfies 1/φ = φ−1, so this agrees with GoldenOffset
// to the last bit.
func GoldenOffsetMinor(dimension float64) float64 {
	return dimension * (1 / phi)
}

// ViewingCone computes what a viewer at distanceFt and angleDeg sees of
// a widthFt × heightFt window: the foreshortened effective height
// (h·cos angle), the horizontal field of view (2·atan(w/2d)), the
// center focal zone, and the compressed/natural impact label.
//
// distanceFt must be positive for a meaningful cone; callers resolving
// sight lines from the taxonomy registry always satisfy that.
func ViewingCone(widthFt, heightFt, distanceFt, angleDeg float64) Cone {
	effectiveHeight := heightFt * math.Cos(radians(angleDeg))
	fov := degrees(2 * math.Atan(widthFt/(2*distanceFt)))

	impact := "natural"
	if math.Abs(angleDeg) > compressionAngleDeg {
		impact = "compressed"
	}

	return Cone{
		EffectiveHeightFt: round2(effectiveHeight),
		HorizontalFOVDeg:  round1(fov),
		FocalZone: FocalZone{
			LeftFt:   round2(widthFt * focalZoneLeft),
			RightFt:  round2(widthFt * focalZoneRight),
			BottomFt: round2(heightFt * focalZoneBottom),
			TopFt:    round2(heightFt * focalZoneTop),
		},
		AngleImpact: impact,
	}
}
