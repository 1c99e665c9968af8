package display

import "github.com/vitrinelab/vitrine/coords"

// StateDistance measures the separation of two canonical states: signed
// per-axis differences (b − a) and the Euclidean norm, all rounded to 4
// decimals. Distance is symmetric in magnitude; only the difference
// signs flip when the arguments swap.
//
// Errors: ErrUnknownState for either identifier.
func StateDistance(stateA, stateB string) (*DistanceResult, error) {
	a, err := StateByName(stateA)
	if err != nil {
		return nil, err
	}
	b, err := StateByName(stateB)
	if err != nil {
		return nil, err
	}

	res := VectorDistance(a.Coords, b.Coords)
	res.StateA = a.Name
	res.StateB = b.Name
	return res, nil
}

// VectorDistance is the ad hoc form of StateDistance for raw vectors.
// The Euclidean norm is computed over unrounded differences; rounding
// applies only to the reported numbers.
func VectorDistance(a, b coords.Vector) *DistanceResult {
	return &DistanceResult{
		Euclidean:   coords.Round4(coords.Distance(a, b)),
		Differences: coords.Diff(a, b),
	}
}
