// Package vocab maps points in the display parameter space onto the
// nearest canonical visual archetype and extracts its image-generation
// keyword vocabulary.
//
// The archetype registry is a fixed table of five entries, each anchored
// at a coordinate vector and carrying seven keyword phrases ordered by
// importance. Nearest performs Euclidean nearest-neighbor classification
// over the registry in definition order (strict improvement wins, so
// ties keep the earlier archetype); Extract additionally gates how many
// keywords are returned by a strength scalar.
//
// The registry never changes at runtime and all accessors return copies,
// so the package is safe for concurrent use without locks.
package vocab
