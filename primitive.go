package rtscene

// PrimitiveKind identifies the geometric primitive type built into an
// acceleration structure. Mesh-from-file shapes build as triangles.
type PrimitiveKind uint8

const (
	// PrimitiveTriangle is a triangle-mesh primitive.
	PrimitiveTriangle PrimitiveKind = iota
	// PrimitiveSphere is an analytic sphere primitive.
	PrimitiveSphere
)

func (k PrimitiveKind) String() string {
	switch k {
	case PrimitiveTriangle:
		return "triangle"
	case PrimitiveSphere:
		return "sphere"
	}
	return "unknown"
}

// HitGroupIndex is the shader-binding-table offset of a geometry
// instance. It is chosen purely from the primitive kind: material
// variation travels in per-group data, never in the binding offset,
// because every built batch is homogeneous in material signature.
type HitGroupIndex uint32

const (
	// HitGroupTriangle selects the triangle-mesh hit programs.
	HitGroupTriangle HitGroupIndex = iota
	// HitGroupSphere selects the analytic-sphere hit programs.
	HitGroupSphere
)

// HitGroupFor returns the shader-binding-table offset for a primitive
// kind.
func HitGroupFor(k PrimitiveKind) HitGroupIndex {
	if k == PrimitiveSphere {
		return HitGroupSphere
	}
	return HitGroupTriangle
}

// VisibilityAll is the instance visibility mask that makes geometry
// visible to every ray type.
const VisibilityAll uint8 = 0xFF
