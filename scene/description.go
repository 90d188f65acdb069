package scene

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/gogpu/rtscene"
)

// Object is a named, reusable group of shapes. Bounds are the
// precomputed union of the object-space-transformed bounds of its
// shapes (each shape's bounds under that shape's own transform).
type Object struct {
	Name   string
	Bounds rtscene.Bounds3
}

// ObjectInstance is a placement of an Object. Bounds equal the
// referenced object's bounds; WorldBounds applies the instance
// transform. Multiple instances may reference the same object, each
// with an independent transform.
type ObjectInstance struct {
	Name      string
	Transform mgl32.Mat4
	Bounds    rtscene.Bounds3
}

// WorldBounds returns the instance bounds under the instance transform.
func (in *ObjectInstance) WorldBounds() rtscene.Bounds3 {
	return in.Bounds.Transformed(in.Transform)
}

// Description is the aggregate root of a parsed scene. It is immutable
// once constructed and shared read-only by all proxies derived from it.
//
// Invariant: Bounds equals the union of the world-transformed bounds
// of every free shape and every instance (ComputeBounds returns that
// value; construction is expected to store it).
type Description struct {
	FreeShapes      []Shape
	Objects         map[string]Object
	ObjectShapes    map[string][]Shape
	ObjectInstances []ObjectInstance
	InstanceCounts  map[string]int
	Bounds          rtscene.Bounds3
}

// Validate checks the data invariants enforced at proxy-creation time:
// the scene has at least one top-level element, and every instance
// references a known object with a shape list.
func (d *Description) Validate() error {
	if len(d.FreeShapes) == 0 && len(d.ObjectInstances) == 0 {
		return rtscene.ErrEmptyScene
	}
	for i := range d.ObjectInstances {
		name := d.ObjectInstances[i].Name
		if _, ok := d.Objects[name]; !ok {
			return fmt.Errorf("%w: %q", rtscene.ErrUnknownObject, name)
		}
		if len(d.ObjectShapes[name]) == 0 {
			return fmt.Errorf("%w: %q has no shapes", rtscene.ErrUnknownObject, name)
		}
	}
	return nil
}

// ComputeBounds returns the union of the world-transformed bounds of
// all free shapes and all instances. Construction code uses it to fill
// Bounds; tests use it to check the invariant.
func (d *Description) ComputeBounds() rtscene.Bounds3 {
	b := rtscene.EmptyBounds()
	for i := range d.FreeShapes {
		b = b.Union(d.FreeShapes[i].WorldBounds())
	}
	for i := range d.ObjectInstances {
		b = b.Union(d.ObjectInstances[i].WorldBounds())
	}
	return b
}

// InstanceShapes returns the shape list of the object referenced by
// instance i, or nil when either index or name does not resolve.
func (d *Description) InstanceShapes(i int) []Shape {
	if i < 0 || i >= len(d.ObjectInstances) {
		return nil
	}
	return d.ObjectShapes[d.ObjectInstances[i].Name]
}
