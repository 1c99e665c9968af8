package trajectory

import (
	"errors"

	"github.com/vitrinelab/vitrine/coords"
)

var (
	// ErrKeyframeCount is returned when a keyframe count is not strictly
	// positive.
	ErrKeyframeCount = errors.New("trajectory: keyframe count must be positive")

	// ErrEmptyTrajectory is returned when keyframes are requested from a
	// trajectory with no points.
	ErrEmptyTrajectory = errors.New("trajectory: empty trajectory")
)

// Point is one step of an interpolated trajectory: the step index, the
// blend phase α ∈ [0,1] at that step, and the blended state vector.
// Points are ephemeral values; they are produced per call and never
// shared or cached.
type Point struct {
	Step  int           `json:"step"`
	Phase float64       `json:"phase"`
	State coords.Vector `json:"state"`
}
