package vocab

import "github.com/vitrinelab/vitrine/coords"

// archetypes holds the five canonical visual identities. Definition
// order is significant: Nearest scans it top to bottom and keeps the
// first archetype on equal distance.
var archetypes = []Archetype{
	{
		Name:   "luxury_restraint",
		Coords: coords.Vector{0.10, 0.30, 0.35, 0.85, 0.90},
		Keywords: []string{
			"single hero product in vast negative space",
			"soft directional key light with graduated shadows",
			"neutral matte backdrop",
			"precise golden-ratio placement",
			"intimate close-inspection viewing distance",
			"museum-quality isolation pedestal",
			"restrained monochromatic palette",
		},
	},
	{
		Name:   "theatrical_grandeur",
		Coords: coords.Vector{0.60, 0.85, 0.90, 0.50, 0.35},
		Keywords: []string{
			"dramatic three-zone depth staging foreground midground background",
			"high-contrast accent spotlights with hard-edged shadows",
			"sculptural uplighting from below at 25 degrees",
			"rich warm color temperature 3200K tungsten glow",
			"pyramidal composition rising to apex focal point",
			"theatrical curtain framing at window edges",
			"street-level pedestrian viewing geometry",
		},
	},
	{
		Name:   "abundance_energy",
		Coords: coords.Vector{0.95, 0.10, 0.15, 0.20, 0.10},
		Keywords: []string{
			"dense repetitive product grid filling entire window plane",
			"flat compressed 2D graphic composition",
			"bright even shadowless ambient illumination",
			"rhythmic scanning eye movement pattern",
			"maximum visual density minimal negative space",
			"bold pop-art color saturation",
			"passing-vehicle scale legibility",
		},
	},
	{
		Name:   "editorial_cool",
		Coords: coords.Vector{0.15, 0.15, 0.50, 0.80, 0.85},
		Keywords: []string{
			"minimal editorial composition with deliberate asymmetry",
			"crisp daylight-balanced cross-lighting at 5600K",
			"clean white or pale grey backdrop",
			"precise typographic-scale spatial intervals",
			"shallow depth single focal plane",
			"gallery-like negative space surrounding subject",
			"close-inspection detail-revealing perspective",
		},
	},
	{
		Name:   "spectacle_immersion",
		Coords: coords.Vector{0.75, 0.95, 0.95, 0.45, 0.25},
		Keywords: []string{
			"radial composition emanating from luminous center",
			"forced-perspective exaggerated depth staging",
			"theatrical uplighting creating monumental scale",
			"warm-to-cool color temperature gradient",
			"immersive wraparound environmental staging",
			"dynamic outward-from-center eye movement",
			"multiple overlapping depth planes",
		},
	},
}

// Archetypes returns the registry in definition order. Keyword slices
// are copied so callers cannot mutate the registry.
func Archetypes() []Archetype {
	out := make([]Archetype, len(archetypes))
	for i, a := range archetypes {
		out[i] = Archetype{
			Name:     a.Name,
			Coords:   a.Coords,
			Keywords: append([]string(nil), a.Keywords...),
		}
	}
	return out
}
