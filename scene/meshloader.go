package scene

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/gogpu/rtscene"
)

// MeshInfo summarizes a file-referenced mesh without materializing its
// buffers.
type MeshInfo struct {
	NumVertices  int
	NumTriangles int
	HasNormals   bool
	HasUVs       bool
}

// MeshData holds the buffers of a loaded mesh. Normals and UVs are
// optional.
type MeshData struct {
	Indices []uint32
	Points  []mgl32.Vec3
	Normals []mgl32.Vec3
	UVs     []mgl32.Vec2
}

// Info derives a MeshInfo from loaded buffers.
func (d *MeshData) Info() MeshInfo {
	return MeshInfo{
		NumVertices:  len(d.Points),
		NumTriangles: len(d.Indices) / 3,
		HasNormals:   len(d.Normals) > 0,
		HasUVs:       len(d.UVs) > 0,
	}
}

// Bounds returns the object-space bounds enclosing all points.
func (d *MeshData) Bounds() rtscene.Bounds3 {
	b := rtscene.EmptyBounds()
	for _, p := range d.Points {
		b = b.UnionPoint(p)
	}
	return b
}

// MeshLoader supplies mesh payload for file-referenced shapes. It is an
// external collaborator: implementations own file IO and format
// handling (see the meshio package for a glTF-backed one).
type MeshLoader interface {
	// Info reports mesh dimensions without necessarily retaining
	// buffers.
	Info() (MeshInfo, error)
	// Load materializes the mesh buffers.
	Load() (*MeshData, error)
}
