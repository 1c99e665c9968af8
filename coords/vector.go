package coords

import (
	"encoding/json"
	"errors"
)

// ErrUnknownAxis is returned by ParseAxis when a name matches no axis.
var ErrUnknownAxis = errors.New("coords: unknown axis")

// Vector is a point in the five-dimensional aesthetic space, indexed by
// Axis in canonical order. The zero Vector is all zeros; use NewNeutral
// for the all-0.5 midpoint.
type Vector [AxisCount]float64

// NewNeutral returns the vector with every axis at the neutral midpoint.
func NewNeutral() Vector {
	var v Vector
	for i := range v {
		v[i] = Neutral
	}
	return v
}

// FromMap builds a Vector from a partial axis→value map. Axes absent
// from m receive Neutral; keys that name no axis are ignored. Values
// are taken as-is (no clamping).
func FromMap(m map[string]float64) Vector {
	v := NewNeutral()
	for name, val := range m {
		if a, err := ParseAxis(name); err == nil {
			v[a] = val
		}
	}
	return v
}

// Map returns the vector as an axis-name→value map.
func (v Vector) Map() map[string]float64 {
	m := make(map[string]float64, AxisCount)
	for _, a := range Axes() {
		m[a.String()] = v[a]
	}
	return m
}

// At returns the value of axis a. Out-of-range axes read as Neutral.
func (v Vector) At(a Axis) float64 {
	if a < 0 || a >= AxisCount {
		return Neutral
	}
	return v[a]
}

// Lerp linearly interpolates component-wise between a and b:
// a·(1−t) + b·t. No rounding is applied; callers stabilize results
// at their own boundaries.
func Lerp(a, b Vector, t float64) Vector {
	var out Vector
	for i := range out {
		out[i] = a[i]*(1-t) + b[i]*t
	}
	return out
}

// MarshalJSON emits the vector as a JSON object with snake_case axis
// keys in canonical order.
func (v Vector) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		CT  float64 `json:"compositional_tension"`
		DC  float64 `json:"depth_complexity"`
		LD  float64 `json:"lighting_drama"`
		VI  float64 `json:"viewing_intimacy"`
		NSR float64 `json:"negative_space_ratio"`
	}{
		CT:  v[CompositionalTension],
		DC:  v[DepthComplexity],
		LD:  v[LightingDrama],
		VI:  v[ViewingIntimacy],
		NSR: v[NegativeSpaceRatio],
	})
}

// UnmarshalJSON accepts a JSON object of axis names to values. Missing
// axes default to Neutral and unknown keys are ignored, mirroring
// FromMap semantics.
func (v *Vector) UnmarshalJSON(data []byte) error {
	var m map[string]float64
	if err := json.Unmarshal(data, &m); err != nil {
		return err
	}
	*v = FromMap(m)
	return nil
}
