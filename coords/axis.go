// SPDX-License-Identifier: MIT
// Package: vitrine/coords
// File: coords/axis.go
//
// Purpose:
//   Enumerate the five aesthetic axes in their canonical order and provide
//   string round-tripping for map-based and JSON-based inputs.
//
// Contract:
//   • Axis values are dense ints in [0, AxisCount); iteration over Axes()
//     always yields the same order.
//   • String() returns the snake_case wire name; ParseAxis inverts it.
//
// AI-Hints:
//   • The canonical order is load-bearing: Vector indexing, JSON field
//     order and per-axis diff reports all follow it. Never reorder.

package coords

import "fmt"

// Axis identifies one dimension of the aesthetic parameter space.
type Axis int

// The five axes, in canonical order.
const (
	CompositionalTension Axis = iota // sparse ↔ dense arrangement energy
	DepthComplexity                  // flat plane ↔ layered staging
	LightingDrama                    // ambient even ↔ theatrical accent
	ViewingIntimacy                  // distant glance ↔ close inspection
	NegativeSpaceRatio               // packed ↔ open breathing room

	// AxisCount is the dimensionality of the space.
	AxisCount = 5
)

// Neutral is the midpoint value substituted for axes absent from
// partial input.
const Neutral = 0.5

var axisNames = [AxisCount]string{
	"compositional_tension",
	"depth_complexity",
	"lighting_drama",
	"viewing_intimacy",
	"negative_space_ratio",
}

var axisSemantics = [AxisCount]string{
	"0.0 = sparse isolation, 1.0 = dense dynamic",
	"0.0 = flat 2D plane, 1.0 = deep theatrical staging",
	"0.0 = soft ambient even, 1.0 = harsh theatrical accent",
	"0.0 = distant/passing, 1.0 = close/detailed",
	"0.0 = packed/filled, 1.0 = open/breathable",
}

// Axes returns all axes in canonical order.
func Axes() [AxisCount]Axis {
	return [AxisCount]Axis{
		CompositionalTension,
		DepthComplexity,
		LightingDrama,
		ViewingIntimacy,
		NegativeSpaceRatio,
	}
}

// String returns the snake_case name of the axis, or "axis(N)" for
// out-of-range values.
func (a Axis) String() string {
	if a < 0 || a >= AxisCount {
		return fmt.Sprintf("axis(%d)", int(a))
	}
	return axisNames[a]
}

// Semantic describes what the extremes of the axis mean, for listings
// and generated documentation.
func (a Axis) Semantic() string {
	if a < 0 || a >= AxisCount {
		return ""
	}
	return axisSemantics[a]
}

// ParseAxis maps a snake_case axis name back to its Axis value.
// Unknown names return ErrUnknownAxis.
func ParseAxis(name string) (Axis, error) {
	for i, n := range axisNames {
		if n == name {
			return Axis(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownAxis, name)
}
