package trajectory

import "fmt"

// Keyframes samples count points from the trajectory at evenly spaced
// indices: stride = max(1, len/count), index_i = min(i·stride, len−1).
//
// The result always holds exactly count points. When count exceeds the
// trajectory length the terminal point repeats — the clamped duplication
// is deliberate, defined output, so downstream consumers can rely on a
// fixed frame count.
//
// Errors: ErrKeyframeCount when count < 1, ErrEmptyTrajectory when the
// trajectory has no points.
func Keyframes(points []Point, count int) ([]Point, error) {
	if count < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrKeyframeCount, count)
	}
	if len(points) == 0 {
		return nil, ErrEmptyTrajectory
	}

	stride := len(points) / count
	if stride < 1 {
		stride = 1
	}

	frames := make([]Point, count)
	for i := range frames {
		idx := i * stride
		if idx > len(points)-1 {
			idx = len(points) - 1
		}
		frames[i] = points[idx]
	}
	return frames, nil
}
