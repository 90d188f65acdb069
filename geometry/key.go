package geometry

import (
	"encoding/binary"
	"hash/fnv"
	"math"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/gogpu/rtscene"
	"github.com/gogpu/rtscene/cache"
	"github.com/gogpu/rtscene/scene"
)

// objectKey identifies one combined-object build: object identity plus
// the (primitive kind, material signature) cell it covers.
type objectKey struct {
	name  string
	kind  rtscene.PrimitiveKind
	flags rtscene.MaterialFlags
}

func objectHasher(k objectKey) uint64 {
	return cache.StringHasher(k.name) ^ uint64(k.kind)<<8 ^ uint64(k.flags)
}

// shapeKey computes a 64-bit FNV-1a content hash over the full shape
// identity: kind, transform, material, and geometry payload. Two
// shapes are cache-equal iff all of these compare equal; the hash
// stands in for that structural comparison.
func shapeKey(s *scene.Shape) uint64 {
	h := fnv.New64a()
	var buf [8]byte

	writeU32 := func(v uint32) {
		binary.LittleEndian.PutUint32(buf[:4], v)
		_, _ = h.Write(buf[:4])
	}
	writeF32 := func(v float32) { writeU32(math.Float32bits(v)) }
	writeVec3 := func(v mgl32.Vec3) {
		writeF32(v.X())
		writeF32(v.Y())
		writeF32(v.Z())
	}
	writeStr := func(v string) {
		writeU32(uint32(len(v)))
		_, _ = h.Write([]byte(v))
	}

	writeU32(uint32(s.Kind))
	for _, v := range s.Transform {
		writeF32(v)
	}
	writeVec3(s.Material.Ka)
	writeVec3(s.Material.Kd)
	writeVec3(s.Material.Ks)
	writeStr(s.Material.AlphaMapFileName)
	writeStr(s.Material.DiffuseMapFileName)

	switch s.Kind {
	case scene.ShapeTriangleMesh:
		if m := s.Mesh; m != nil {
			writeU32(uint32(len(m.Indices)))
			for _, i := range m.Indices {
				writeU32(i)
			}
			writeU32(uint32(len(m.Points)))
			for _, p := range m.Points {
				writeVec3(p)
			}
			writeU32(uint32(len(m.Normals)))
			for _, n := range m.Normals {
				writeVec3(n)
			}
			writeU32(uint32(len(m.UVs)))
			for _, uv := range m.UVs {
				writeF32(uv.X())
				writeF32(uv.Y())
			}
		}
	case scene.ShapeSphere:
		if sp := s.Sphere; sp != nil {
			writeF32(sp.Radius)
			writeF32(sp.ZMin)
			writeF32(sp.ZMax)
			writeF32(sp.PhiMax)
		}
	case scene.ShapeMeshFile:
		// The file name stands for the payload; the loader is an
		// opaque collaborator and two shapes naming the same file
		// share one build.
		if f := s.File; f != nil {
			writeStr(f.FileName)
		}
	}
	return h.Sum64()
}
