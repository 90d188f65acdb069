// Package meshio loads external mesh files referenced by scene shapes.
// Loaders are lazy: nothing is read until the first Info or Load call,
// and the decoded result is cached for the loader's lifetime so a
// shape's payload is paid for once.
package meshio

import (
	"errors"
	"fmt"
	"sync"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/qmuntal/gltf"
	"github.com/qmuntal/gltf/modeler"

	"github.com/gogpu/rtscene/scene"
)

// ErrNoTriangleMesh indicates the file decoded successfully but held no
// indexed triangle primitives.
var ErrNoTriangleMesh = errors.New("meshio: no triangle mesh in file")

type gltfLoader struct {
	fileName string

	once sync.Once
	data *scene.MeshData
	err  error
}

// GLTF returns a loader for a glTF 2.0 file (.gltf or .glb). All
// indexed triangle primitives across the document's meshes are merged
// into a single indexed mesh; normals and texture coordinates are kept
// only when every primitive supplies them, so the per-vertex arrays
// stay aligned with the position array.
func GLTF(fileName string) scene.MeshLoader {
	return &gltfLoader{fileName: fileName}
}

func (l *gltfLoader) Info() (scene.MeshInfo, error) {
	data, err := l.Load()
	if err != nil {
		return scene.MeshInfo{}, err
	}
	return data.Info(), nil
}

func (l *gltfLoader) Load() (*scene.MeshData, error) {
	l.once.Do(func() { l.data, l.err = l.decode() })
	return l.data, l.err
}

func (l *gltfLoader) decode() (*scene.MeshData, error) {
	doc, err := gltf.Open(l.fileName)
	if err != nil {
		return nil, fmt.Errorf("meshio: open %q: %w", l.fileName, err)
	}

	out := &scene.MeshData{}
	haveNormals := true
	haveUVs := true
	found := false

	for _, mesh := range doc.Meshes {
		for _, prim := range mesh.Primitives {
			if prim.Mode != gltf.PrimitiveTriangles || prim.Indices == nil {
				continue
			}
			posIndex, ok := prim.Attributes["POSITION"]
			if !ok {
				continue
			}
			found = true
			base := uint32(len(out.Points))

			positions, err := modeler.ReadPosition(doc, doc.Accessors[posIndex], nil)
			if err != nil {
				return nil, fmt.Errorf("meshio: %q positions: %w", l.fileName, err)
			}
			for _, p := range positions {
				out.Points = append(out.Points, mgl32.Vec3(p))
			}

			indices, err := modeler.ReadIndices(doc, doc.Accessors[*prim.Indices], nil)
			if err != nil {
				return nil, fmt.Errorf("meshio: %q indices: %w", l.fileName, err)
			}
			for _, i := range indices {
				out.Indices = append(out.Indices, base+i)
			}

			if normalIndex, ok := prim.Attributes["NORMAL"]; ok && haveNormals {
				normals, err := modeler.ReadNormal(doc, doc.Accessors[normalIndex], nil)
				if err != nil {
					return nil, fmt.Errorf("meshio: %q normals: %w", l.fileName, err)
				}
				for _, n := range normals {
					out.Normals = append(out.Normals, mgl32.Vec3(n))
				}
			} else {
				haveNormals = false
			}

			if uvIndex, ok := prim.Attributes["TEXCOORD_0"]; ok && haveUVs {
				uvs, err := modeler.ReadTextureCoord(doc, doc.Accessors[uvIndex], nil)
				if err != nil {
					return nil, fmt.Errorf("meshio: %q texture coords: %w", l.fileName, err)
				}
				for _, uv := range uvs {
					out.UVs = append(out.UVs, mgl32.Vec2(uv))
				}
			} else {
				haveUVs = false
			}
		}
	}

	if !found {
		return nil, fmt.Errorf("%w: %q", ErrNoTriangleMesh, l.fileName)
	}
	if !haveNormals {
		out.Normals = nil
	}
	if !haveUVs {
		out.UVs = nil
	}
	return out, nil
}
