// Package scene defines the immutable scene description consumed by
// the proxy layer: free shapes, named reusable objects, their
// placements, and the bounds invariants tying them together.
//
// A Description is produced by an external scene parser, never mutated
// after construction, and shared read-only by every proxy derived from
// it. All bounds are set at construction time; nothing in this package
// recomputes them implicitly.
package scene
