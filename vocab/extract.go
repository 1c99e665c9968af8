package vocab

import (
	"math"

	"github.com/vitrinelab/vitrine/coords"
)

// Strength bands controlling how much of the keyword list Extract
// returns. Strength below the low band keeps only the leading phrases;
// below the mid band keeps a medium cut; everything else keeps all.
const (
	lowStrengthBand = 0.2
	midStrengthBand = 0.5

	lowBandKeywords = 3
	midBandKeywords = 5
)

// Nearest classifies state against the archetype registry and returns
// the closest archetype by Euclidean distance. The scan runs in
// definition order with strict improvement, so an exact tie resolves to
// the archetype defined first. The reported distance is rounded to 4
// decimals; an exact coordinate hit therefore reads 0.
func Nearest(state coords.Vector) Match {
	bestDist := math.Inf(1)
	var bestName string
	for _, a := range archetypes {
		if d := coords.Distance(state, a.Coords); d < bestDist {
			bestDist, bestName = d, a.Name
		}
	}
	return Match{Name: bestName, Distance: coords.Round4(bestDist)}
}

// Extract classifies state and returns its keyword vocabulary, gated by
// strength: under 0.2 only the three leading phrases, under 0.5 five,
// otherwise the full importance-ordered list. Out-of-range strengths
// are not an error — anything ≥ 0.5 simply reads as full strength and
// anything negative as minimal.
//
// The returned keyword slice is always a fresh copy.
func Extract(state coords.Vector, strength float64) Extraction {
	m := Nearest(state)

	var full []string
	for _, a := range archetypes {
		if a.Name == m.Name {
			full = a.Keywords
			break
		}
	}

	cut := len(full)
	switch {
	case strength < lowStrengthBand:
		cut = lowBandKeywords
	case strength < midStrengthBand:
		cut = midBandKeywords
	}
	if cut > len(full) {
		cut = len(full)
	}

	return Extraction{
		NearestType: m.Name,
		Distance:    m.Distance,
		Keywords:    append([]string(nil), full[:cut]...),
		Strength:    strength,
		State:       state,
	}
}
