// Package prompt renders engine output into image-generation prompt
// text.
//
// Three renderers cover the three source shapes:
//
//   - Display: a full geometric instruction set assembled from a
//     geometry.Blueprint — composition and focal placement, depth
//     staging, lighting direction (including uplight phrasing for
//     negative key angles), viewing geometry, and negative space.
//   - Composite: a single keyword prompt for one point in parameter
//     space, sourced from a custom vector, a canonical state, or the
//     midpoint of a preset trajectory.
//   - Sequence: one keyword prompt per keyframe of a preset trajectory,
//     for storyboards and animation specs.
//
// Text assembly is pure string work over deterministic inputs: the same
// request always yields byte-identical prompts. Styling is additive — a
// non-empty style modifier inserts one clause and never reorders the
// rest.
package prompt
