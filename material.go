package rtscene

import (
	"strings"

	"github.com/go-gl/mathgl/mgl32"
)

// MaterialFlags is the material signature of a shape: the set of
// texture-presence flags that distinguish shading variants needing
// separate shader bindings. Shapes differing in signature cannot share
// one combined acceleration-structure build.
type MaterialFlags uint8

const (
	// MaterialAlphaMap is set when the material references an
	// alpha-mask texture file.
	MaterialAlphaMap MaterialFlags = 1 << iota
	// MaterialDiffuseMap is set when the material references a
	// diffuse-map texture file.
	MaterialDiffuseMap
)

// MaterialNone is the signature of an untextured material.
const MaterialNone MaterialFlags = 0

// Has reports whether all bits of o are set in f.
func (f MaterialFlags) Has(o MaterialFlags) bool { return f&o == o }

func (f MaterialFlags) String() string {
	if f == MaterialNone {
		return "none"
	}
	var parts []string
	if f.Has(MaterialAlphaMap) {
		parts = append(parts, "alpha")
	}
	if f.Has(MaterialDiffuseMap) {
		parts = append(parts, "diffuse")
	}
	return strings.Join(parts, "|")
}

// Material is the shading description attached to a shape: Phong color
// terms plus optional texture file references. The file references are
// opaque to this module; texture loading belongs to an external
// collaborator.
type Material struct {
	Ka mgl32.Vec3
	Kd mgl32.Vec3
	Ks mgl32.Vec3

	AlphaMapFileName   string
	DiffuseMapFileName string
}

// Flags derives the material signature from the presence of texture
// file references.
func (m Material) Flags() MaterialFlags {
	f := MaterialNone
	if m.AlphaMapFileName != "" {
		f |= MaterialAlphaMap
	}
	if m.DiffuseMapFileName != "" {
		f |= MaterialDiffuseMap
	}
	return f
}

// MaterialGroup is a contiguous run of primitives within one built
// acceleration structure sharing one material. PrimitiveIndexEnd is the
// index of the last primitive belonging to the group, so shading can
// map a primitive index back to its material.
type MaterialGroup struct {
	Material          Material
	Flags             MaterialFlags
	PrimitiveIndexEnd uint32
}
