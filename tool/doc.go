// Package tool exposes the engine as a registry of named, wire-callable
// tools.
//
// # Overview
//
// Every capability of the engine — state and preset listing, rhythmic
// sequence generation, vocabulary extraction, distance computation,
// geometric blueprints, and prompt rendering — is registered under a
// stable wire name. Dispatch decodes raw JSON parameters, runs the
// handler, and wraps the outcome in a uniform Envelope carrying an
// invocation ID, the elapsed wall time, and exactly one of a result or
// a structured fault.
//
// Faults carry a stable machine-readable kind ("unknown_state",
// "invalid_pattern", "bad_params", …) derived from the engine's sentinel
// errors, so callers can branch without parsing message text. A failed
// invocation never carries partial results.
//
// The registry is immutable after construction and safe for concurrent
// dispatch from multiple goroutines.
package tool
