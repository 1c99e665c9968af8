package trajectory

import "github.com/vitrinelab/vitrine/coords"

// Interpolate blends a toward b once per phase value: point i carries
// step index i, the phase alphas[i], and the vector a·(1−α) + b·α.
//
// All emitted values — the echoed phase and every vector component —
// are rounded to 4 decimals, making the output stable under repeated
// calls. An empty phase sequence yields an empty trajectory.
func Interpolate(a, b coords.Vector, alphas []float64) []Point {
	points := make([]Point, len(alphas))
	for i, alpha := range alphas {
		points[i] = Point{
			Step:  i,
			Phase: coords.Round4(alpha),
			State: coords.Round4Vec(coords.Lerp(a, b, alpha)),
		}
	}
	return points
}
