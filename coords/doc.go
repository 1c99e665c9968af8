// Package coords defines the five-dimensional normalized parameter space
// underlying display aesthetics, and the vector arithmetic every other
// package builds on.
//
// 🚀 What is the parameter space?
//
//	Every display configuration is a point in [0,1]⁵, one value per axis:
//	  • compositional_tension — sparse isolation → dense dynamic arrangement
//	  • depth_complexity      — flat 2D plane → deep theatrical staging
//	  • lighting_drama        — soft ambient even → harsh theatrical accent
//	  • viewing_intimacy      — distant/passing → close/detailed inspection
//	  • negative_space_ratio  — packed/filled → open/breathable
//
// ✨ Key guarantees:
//   - Axis order is fixed and significant; Vector is a value type ([5]float64)
//     so copies are cheap and aliasing is impossible.
//   - Partial input is welcome: FromMap fills absent axes with the documented
//     neutral value 0.5 and ignores unrecognized keys.
//   - All arithmetic is deterministic; Round4 stabilizes values for
//     comparison and serialization exactly once, at result boundaries.
//
// ⚙️ Usage:
//
//	v := coords.FromMap(map[string]float64{"lighting_drama": 0.9})
//	d := coords.Distance(v, coords.Vector{0.1, 0.4, 0.35, 0.85, 0.9})
//	fmt.Println(coords.Round4(d))
package coords
