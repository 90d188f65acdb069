package scene

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/gogpu/rtscene"
)

// ShapeKind identifies the source representation of a shape.
type ShapeKind uint8

const (
	// ShapeTriangleMesh is an in-memory indexed triangle mesh.
	ShapeTriangleMesh ShapeKind = iota
	// ShapeSphere is an analytic sphere.
	ShapeSphere
	// ShapeMeshFile is an indexed mesh loaded on demand from an
	// external file through a MeshLoader collaborator.
	ShapeMeshFile
)

func (k ShapeKind) String() string {
	switch k {
	case ShapeTriangleMesh:
		return "trianglemesh"
	case ShapeSphere:
		return "sphere"
	case ShapeMeshFile:
		return "meshfile"
	}
	return "unknown"
}

// PrimitiveKind maps the shape representation to the primitive kind it
// builds as. File meshes build as triangles.
func (k ShapeKind) PrimitiveKind() rtscene.PrimitiveKind {
	if k == ShapeSphere {
		return rtscene.PrimitiveSphere
	}
	return rtscene.PrimitiveTriangle
}

// TriangleMeshData is the payload of an in-memory triangle mesh.
// Normals and UVs are optional; when absent the built geometry carries
// no per-vertex normal/UV device buffers.
type TriangleMeshData struct {
	Indices []uint32
	Points  []mgl32.Vec3
	Normals []mgl32.Vec3
	UVs     []mgl32.Vec2
}

// SphereData is the payload of an analytic sphere: radius, z clipping
// range, and maximum sweep angle in degrees.
type SphereData struct {
	Radius float32
	ZMin   float32
	ZMax   float32
	PhiMax float32
}

// MeshFileData is the payload of a file-referenced mesh. The loader is
// the external collaborator that supplies buffers on demand; this
// package only carries the reference.
type MeshFileData struct {
	FileName string
	Loader   MeshLoader
}

// Shape is a single piece of geometry: a primitive representation, a
// local-to-world transform, a material, object-space bounds, and the
// kind-specific payload. Exactly one payload field matching Kind is
// non-nil.
//
// Bounds are always set at construction and never recomputed.
type Shape struct {
	Kind      ShapeKind
	Transform mgl32.Mat4
	Material  rtscene.Material
	Bounds    rtscene.Bounds3

	Mesh   *TriangleMeshData
	Sphere *SphereData
	File   *MeshFileData
}

// WorldBounds returns the shape's bounds under its own transform.
func (s *Shape) WorldBounds() rtscene.Bounds3 {
	return s.Bounds.Transformed(s.Transform)
}

// PrimitiveKind returns the primitive kind the shape builds as.
func (s *Shape) PrimitiveKind() rtscene.PrimitiveKind {
	return s.Kind.PrimitiveKind()
}

// MaterialFlags returns the shape's material signature.
func (s *Shape) MaterialFlags() rtscene.MaterialFlags {
	return s.Material.Flags()
}
