// Package geometry provides the build cache that realizes acceleration
// structures for shapes and objects, and the geometry-instance value
// the proxy layer hands to the top-level scene structure.
//
// The actual GPU build and device allocation live behind the Builder
// collaborator; this package owns keying, memoization, and build
// concurrency: for structurally equal keys at most one build executes,
// even under concurrent access.
package geometry

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/gogpu/rtscene"
)

// CacheEntry is the realized result of one acceleration-structure
// build: the traversable handle, the device buffer backing it, the
// optional per-vertex normal/UV device buffers (zero unless the source
// shape supplies them), the ordered material-group boundaries, and the
// primitive kind actually built.
//
// For shape entries the structure is object-space: the caller supplies
// the shape's cumulative world transform as placement. For object
// entries each member shape's own transform is baked in: placement is
// only the enclosing instance transform.
type CacheEntry struct {
	AccelBuffer rtscene.DevicePtr
	Traversable rtscene.TraversableHandle

	DevNormals rtscene.DevicePtr
	DevUVs     rtscene.DevicePtr

	// PrimitiveGroupEnds holds, per material group in order, the index
	// of the last primitive belonging to that group.
	PrimitiveGroupEnds []uint32

	Primitive rtscene.PrimitiveKind
}

// Instance is a fully formed geometry instance, ready for insertion
// into the top-level scene structure.
type Instance struct {
	AccelBuffer rtscene.DevicePtr
	Traversable rtscene.TraversableHandle
	Primitive   rtscene.PrimitiveKind

	// Transform is the placement transform: the shape's cumulative
	// world transform for per-shape builds, or the enclosing instance
	// transform for combined object builds.
	Transform mgl32.Mat4

	// HitGroup is the shader-binding-table offset, chosen purely from
	// the primitive kind.
	HitGroup       rtscene.HitGroupIndex
	VisibilityMask uint8

	DevNormals rtscene.DevicePtr
	DevUVs     rtscene.DevicePtr

	// Groups maps primitive index ranges to materials, in order.
	Groups []rtscene.MaterialGroup
}
