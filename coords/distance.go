package coords

import "math"

// round4Scale fixes the decimal precision used for stabilized values.
const round4Scale = 1e4

// Round4 rounds x to 4 decimal places, half away from zero. All values
// that cross a result boundary (diffs, distances, interpolated frames)
// pass through Round4 exactly once.
func Round4(x float64) float64 {
	return math.Round(x*round4Scale) / round4Scale
}

// Round4Vec applies Round4 to every component of v.
func Round4Vec(v Vector) Vector {
	for i := range v {
		v[i] = Round4(v[i])
	}
	return v
}

// Diff returns the per-axis signed difference b−a, each component
// rounded to 4 decimals.
func Diff(a, b Vector) Vector {
	var d Vector
	for i := range d {
		d[i] = Round4(b[i] - a[i])
	}
	return d
}

// Distance returns the Euclidean distance between a and b, computed on
// unrounded per-axis differences. The result is raw; callers round it
// at their own output boundary.
func Distance(a, b Vector) float64 {
	var sum float64
	for i := range a {
		d := b[i] - a[i]
		sum += d * d
	}
	return math.Sqrt(sum)
}
