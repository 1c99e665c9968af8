// Package taxonomy holds the fixed classification tables of display
// design language: composition structures, depth staging strategies,
// lighting frameworks, and viewer sight-line geometry.
//
// The tables are pure reference data — no computation happens here.
// Each family exposes a listing accessor (curated order, copied) and a
// by-name lookup that fails with a family-specific sentinel error for
// unknown identifiers. Package geometry consumes these records to derive
// staging blueprints; package prompt renders them into generation text.
package taxonomy
