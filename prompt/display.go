// SPDX-License-Identifier: MIT
//
// Package: vitrine/prompt — geometric prompt rendering.
//
// Purpose:
//   Turn a geometry.Blueprint into one deterministic English prompt: six
//   sentence clauses (subject, composition, depth, lighting, viewing,
//   negative space) joined by single spaces, with an optional style
//   clause spliced in after the subject.
//
// Contract:
//   - The blueprint is computed first; any dimension or registry error
//     aborts before text assembly starts.
//   - Identical requests yield byte-identical prompts.
//   - Registry identifiers appear in prose form (underscores become
//     spaces); numbers use fixed precisions (focal %.2f, intensity %.1f,
//     fractions as whole percents).
//
// AI-Hints:
//   - Clause builders are tiny pure functions over blueprint halves;
//     extend the vocabulary there, not in Display.
//   - Uplight phrasing triggers on negative key angles only; zero reads
//     as "above horizontal".

package prompt

import (
	"fmt"
	"math"
	"strings"

	"github.com/vitrinelab/vitrine/geometry"
)

// promptLead opens every rendered prompt, in all three modes, so
// downstream consumers can recognize engine output at a glance.
const promptLead = "Shop window display photograph:"

// Display assembles the geometric instruction prompt for one window
// scene.
func Display(req DisplayRequest) (*DisplayPrompt, error) {
	bp, err := geometry.MapParameters(req.WidthFt, req.HeightFt,
		req.Composition, req.DepthStaging, req.Lighting, req.ViewerContext)
	if err != nil {
		return nil, err
	}

	parts := make([]string, 0, 7)
	parts = append(parts, fmt.Sprintf("%s %s.", promptLead, req.Subject))
	if req.Style != "" {
		parts = append(parts, fmt.Sprintf("Style: %s.", req.Style))
	}
	parts = append(parts,
		compositionClause(bp.Composition)+".",
		depthClause(bp.Depth)+".",
		lightingClause(bp.Lighting)+".",
		viewingClause(bp.Viewing)+".",
		negativeSpaceClause(bp.Composition)+".",
	)

	return &DisplayPrompt{
		Prompt:     strings.Join(parts, " "),
		Parameters: bp,
		Subject:    req.Subject,
		Style:      req.Style,
	}, nil
}

func compositionClause(c geometry.CompositionPlan) string {
	fp := c.PrimaryFocalPoint
	return fmt.Sprintf(
		"%s composition with primary focal point at %.2f horizontal × %.2f vertical (measured from bottom-left)",
		spaced(c.Type), fp.XNormalized, fp.YNormalized)
}

// depthClause keeps hand-tuned phrasing for the three strategies whose
// zone layout deserves more than a compression figure; anything else
// falls back to the generic template.
func depthClause(d geometry.DepthPlan) string {
	switch d.Strategy {
	case "theatrical_depth":
		return "strong foreground/midground/background separation with 30% spatial compression, " +
			"foreground at 1.0× scale, midground at 0.75× scale, background at 0.50× scale"
	case "compressed_2d":
		return "flat composition maximizing window glass plane, minimal depth cues"
	case "shallow_focus":
		return "photography-style depth with clear focal plane at 2ft, background at 5ft with 70% scale"
	default:
		return fmt.Sprintf("%s with %s compression", spaced(d.Strategy), percent(d.SpatialCompression))
	}
}

func lightingClause(l geometry.LightingPlan) string {
	direction := fmt.Sprintf("key light from %g° above horizontal", l.KeyLightAngleDeg)
	if l.KeyLightAngleDeg < 0 {
		direction = fmt.Sprintf("uplighting from %g° below horizontal", math.Abs(l.KeyLightAngleDeg))
	}
	return fmt.Sprintf("%s, %.1f:1 intensity ratio to ambient fill, %dK color temperature, %s shadows",
		direction, l.IntensityRatio, l.ColorTemperatureK, spaced(l.ShadowQuality))
}

func viewingClause(v geometry.ViewingPlan) string {
	return fmt.Sprintf(
		"composed for %s perspective at %g° viewing angle from %gft distance, eye height %gin",
		spaced(v.ViewerContext), v.ViewingAngleDeg, v.ViewingDistanceFt, v.EyeHeightIn)
}

func negativeSpaceClause(c geometry.CompositionPlan) string {
	return fmt.Sprintf("%s negative space ratio, %s eye movement pattern",
		percent(c.NegativeSpaceRatio), spaced(c.EyeMovementPattern))
}

// spaced turns registry identifiers into prose: "step_progression"
// becomes "step progression".
func spaced(s string) string { return strings.ReplaceAll(s, "_", " ") }

// percent renders a [0,1] fraction as a whole-number percentage.
func percent(x float64) string { return fmt.Sprintf("%.0f%%", x*100) }
