package vocab

import "github.com/vitrinelab/vitrine/coords"

// Archetype is one canonical visual identity: a name, its anchor point
// in parameter space, and its keyword phrases in importance order.
type Archetype struct {
	Name     string        `json:"name"`
	Coords   coords.Vector `json:"coords"`
	Keywords []string      `json:"keywords"`
}

// Match is the outcome of nearest-neighbor classification.
type Match struct {
	Name     string  `json:"nearest_type"`
	Distance float64 `json:"distance"` // Euclidean, rounded to 4 decimals
}

// Extraction is the full vocabulary-mapping result: the winning
// archetype, its strength-gated keywords, and an echo of the inputs.
type Extraction struct {
	NearestType string        `json:"nearest_type"`
	Distance    float64       `json:"distance"`
	Keywords    []string      `json:"keywords"`
	Strength    float64       `json:"strength"`
	State       coords.Vector `json:"state"`
}
