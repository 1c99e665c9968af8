// Package geometry derives concrete staging measurements from window
// dimensions and taxonomy selections.
//
// 🚀 What does it compute?
//
//	Given a window (width × height in feet), a composition type, a depth
//	staging strategy, a lighting framework, and a viewer context,
//	MapParameters produces a Blueprint: focal point placement (absolute
//	feet and normalized fractions), negative-space budget, named depth
//	zones with distances and scale factors, the lighting numbers, and
//	the viewing cone for the selected sight line.
//
// ✨ The primitives are exported separately:
//   - GoldenOffset — golden-ratio placement along a dimension.
//   - ViewingCone — effective height, horizontal field of view and the
//     center focal zone for a viewer at a given distance and angle.
//
// ⚙️ All arithmetic is deterministic and every reported number is
// stabilized: feet to 2 decimals, normalized fractions to 3, field of
// view to 1. Identifier and dimension validation happens before any
// computation.
package geometry
