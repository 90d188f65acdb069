package proxy

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/gogpu/rtscene"
	"github.com/gogpu/rtscene/geometry"
	"github.com/gogpu/rtscene/scene"
)

// proxyKind discriminates the closed set of proxy variants.
type proxyKind uint8

const (
	kindScene proxyKind = iota
	kindShape
	kindInstance
	kindInstanceShape
	kindInstancePrimitive
)

func (k proxyKind) String() string {
	switch k {
	case kindScene:
		return "scene"
	case kindShape:
		return "shape"
	case kindInstance:
		return "instance"
	case kindInstanceShape:
		return "instanceShape"
	case kindInstancePrimitive:
		return "instancePrimitive"
	}
	return fmt.Sprintf("proxyKind(%d)", uint8(k))
}

// Proxy is one registered stand-in for a region of the scene. A proxy
// is immutable after creation; resolving it goes through exactly one of
// Decompose or CreateGeometry depending on IsDecomposable.
type Proxy struct {
	kind        proxyKind
	pageID      rtscene.PageID
	bounds      rtscene.Bounds3
	desc        *scene.Description
	cache       GeometryCache
	granularity rtscene.Granularity

	shapeIndex    int
	instanceIndex int

	primitive rtscene.PrimitiveKind
	flags     rtscene.MaterialFlags
}

// PageID returns the page identifier assigned when the proxy was
// registered.
func (p *Proxy) PageID() rtscene.PageID { return p.pageID }

// Bounds returns the proxy's world-space bounds, fixed at creation.
func (p *Proxy) Bounds() rtscene.Bounds3 { return p.bounds }

func (p *Proxy) String() string {
	return fmt.Sprintf("%s proxy page %d %s", p.kind, p.pageID, p.bounds.String())
}

// IsDecomposable reports whether the proxy splits into finer proxies.
// Shape, instance-shape, and instance-primitive proxies are terminal.
// A whole-scene proxy over a single leaf element is itself terminal; a
// whole-scene proxy over a single multi-shape instance follows the
// instance rules. An instance proxy always splits at fine granularity;
// at coarse granularity it splits only when its shapes are
// heterogeneous in (primitive kind, material signature).
func (p *Proxy) IsDecomposable() bool {
	switch p.kind {
	case kindScene:
		if len(p.desc.FreeShapes)+len(p.desc.ObjectInstances) > 1 {
			return true
		}
		if len(p.desc.ObjectInstances) == 1 {
			return p.instanceDecomposable(0)
		}
		return false
	case kindInstance:
		return p.instanceDecomposable(p.instanceIndex)
	}
	return false
}

func (p *Proxy) instanceDecomposable(instanceIndex int) bool {
	shapes := p.desc.InstanceShapes(instanceIndex)
	if len(shapes) < 2 {
		return false
	}
	if p.granularity == rtscene.GranularityFine {
		return true
	}
	return heterogeneous(shapes)
}

// Decompose replaces the proxy with finer proxies, each freshly
// registered with the paging registry of the factory that creates
// them. The caller is expected to retire this proxy's page afterwards.
// Calling Decompose on a terminal proxy returns ErrNotDecomposable.
//
// A whole-scene proxy yields one child per object instance, in
// instance order, followed by one child per free shape, in shape
// order. An instance proxy yields per-shape children at fine
// granularity, and per-(primitive kind, material signature) children
// in first-occurrence order at coarse granularity.
func (p *Proxy) Decompose(f *Factory) ([]*Proxy, error) {
	if !p.IsDecomposable() {
		return nil, fmt.Errorf("%w: %s", rtscene.ErrNotDecomposable, p.kind)
	}
	switch p.kind {
	case kindScene:
		if len(p.desc.FreeShapes) == 0 && len(p.desc.ObjectInstances) == 1 {
			return p.decomposeInstance(f, 0)
		}
		children := make([]*Proxy, 0, len(p.desc.ObjectInstances)+len(p.desc.FreeShapes))
		for i := range p.desc.ObjectInstances {
			child, err := f.SceneInstance(p.desc, i)
			if err != nil {
				return nil, err
			}
			children = append(children, child)
		}
		for i := range p.desc.FreeShapes {
			child, err := f.SceneShape(p.desc, i)
			if err != nil {
				return nil, err
			}
			children = append(children, child)
		}
		return children, nil
	case kindInstance:
		return p.decomposeInstance(f, p.instanceIndex)
	}
	return nil, fmt.Errorf("%w: %s", rtscene.ErrNotDecomposable, p.kind)
}

func (p *Proxy) decomposeInstance(f *Factory, instanceIndex int) ([]*Proxy, error) {
	shapes := p.desc.InstanceShapes(instanceIndex)
	if p.granularity == rtscene.GranularityFine {
		children := make([]*Proxy, 0, len(shapes))
		for i := range shapes {
			child, err := f.SceneInstanceShape(p.desc, instanceIndex, i)
			if err != nil {
				return nil, err
			}
			children = append(children, child)
		}
		return children, nil
	}
	var children []*Proxy
	for _, cell := range materialCells(shapes) {
		child, err := f.SceneInstancePrimitive(p.desc, instanceIndex, cell.kind, cell.flags)
		if err != nil {
			return nil, err
		}
		children = append(children, child)
	}
	return children, nil
}

// CreateGeometry realizes the proxy's geometry through the build cache
// and returns an instance ready for the top-level scene structure.
// Calling it on a decomposable proxy returns ErrDecomposable.
func (p *Proxy) CreateGeometry(ctx rtscene.DeviceContext, stream rtscene.Stream) (geometry.Instance, error) {
	if p.IsDecomposable() {
		return geometry.Instance{}, fmt.Errorf("%w: %s", rtscene.ErrDecomposable, p.kind)
	}
	switch p.kind {
	case kindScene:
		// A terminal whole-scene proxy wraps exactly one leaf element.
		if len(p.desc.FreeShapes) == 1 {
			return p.shapeGeometry(ctx, stream, mgl32.Ident4(), &p.desc.FreeShapes[0])
		}
		shapes := p.desc.InstanceShapes(0)
		if len(shapes) == 1 {
			return p.shapeGeometry(ctx, stream, p.desc.ObjectInstances[0].Transform, &shapes[0])
		}
		// Coarse, homogeneous multi-shape instance: one combined build.
		return p.objectGeometry(ctx, stream, 0, shapes[0].PrimitiveKind(), shapes[0].MaterialFlags())
	case kindShape:
		return p.shapeGeometry(ctx, stream, mgl32.Ident4(), &p.desc.FreeShapes[p.shapeIndex])
	case kindInstance:
		shapes := p.desc.InstanceShapes(p.instanceIndex)
		return p.objectGeometry(ctx, stream, p.instanceIndex, shapes[0].PrimitiveKind(), shapes[0].MaterialFlags())
	case kindInstanceShape:
		inst := &p.desc.ObjectInstances[p.instanceIndex]
		shapes := p.desc.InstanceShapes(p.instanceIndex)
		return p.shapeGeometry(ctx, stream, inst.Transform, &shapes[p.shapeIndex])
	case kindInstancePrimitive:
		return p.objectGeometry(ctx, stream, p.instanceIndex, p.primitive, p.flags)
	}
	return geometry.Instance{}, fmt.Errorf("%w: %s", rtscene.ErrDecomposable, p.kind)
}

// shapeGeometry realizes one shape. The cached structure is
// object-space, so placement composes the enclosing transform with the
// shape's own transform.
func (p *Proxy) shapeGeometry(ctx rtscene.DeviceContext, stream rtscene.Stream,
	enclosing mgl32.Mat4, shape *scene.Shape) (geometry.Instance, error) {
	entry, err := p.cache.GetShape(ctx, stream, shape)
	if err != nil {
		return geometry.Instance{}, err
	}
	var end uint32
	if len(entry.PrimitiveGroupEnds) > 0 {
		end = entry.PrimitiveGroupEnds[0]
	}
	return geometry.Instance{
		AccelBuffer:    entry.AccelBuffer,
		Traversable:    entry.Traversable,
		Primitive:      entry.Primitive,
		Transform:      enclosing.Mul4(shape.Transform),
		HitGroup:       rtscene.HitGroupFor(entry.Primitive),
		VisibilityMask: rtscene.VisibilityAll,
		DevNormals:     entry.DevNormals,
		DevUVs:         entry.DevUVs,
		Groups: []rtscene.MaterialGroup{{
			Material:          shape.Material,
			Flags:             shape.MaterialFlags(),
			PrimitiveIndexEnd: end,
		}},
	}, nil
}

// objectGeometry realizes one combined build covering the shapes of an
// instance's object that match the given cell. Member transforms are
// baked into the structure, so placement is only the instance
// transform. Material groups zip the matching shapes, in shape order,
// with the entry's group boundaries.
func (p *Proxy) objectGeometry(ctx rtscene.DeviceContext, stream rtscene.Stream,
	instanceIndex int, kind rtscene.PrimitiveKind, flags rtscene.MaterialFlags) (geometry.Instance, error) {
	inst := &p.desc.ObjectInstances[instanceIndex]
	shapes := p.desc.InstanceShapes(instanceIndex)
	entry, err := p.cache.GetObject(ctx, stream, p.desc.Objects[inst.Name], shapes, kind, flags)
	if err != nil {
		return geometry.Instance{}, err
	}
	var groups []rtscene.MaterialGroup
	for i := range shapes {
		if shapes[i].PrimitiveKind() != kind || shapes[i].MaterialFlags() != flags {
			continue
		}
		var end uint32
		if n := len(groups); n < len(entry.PrimitiveGroupEnds) {
			end = entry.PrimitiveGroupEnds[n]
		}
		groups = append(groups, rtscene.MaterialGroup{
			Material:          shapes[i].Material,
			Flags:             flags,
			PrimitiveIndexEnd: end,
		})
	}
	return geometry.Instance{
		AccelBuffer:    entry.AccelBuffer,
		Traversable:    entry.Traversable,
		Primitive:      entry.Primitive,
		Transform:      inst.Transform,
		HitGroup:       rtscene.HitGroupFor(entry.Primitive),
		VisibilityMask: rtscene.VisibilityAll,
		DevNormals:     entry.DevNormals,
		DevUVs:         entry.DevUVs,
		Groups:         groups,
	}, nil
}

// materialCell is one distinct (primitive kind, material signature)
// pairing present in an object's shape list.
type materialCell struct {
	kind  rtscene.PrimitiveKind
	flags rtscene.MaterialFlags
}

// materialCells lists the distinct cells in first-occurrence order.
func materialCells(shapes []scene.Shape) []materialCell {
	var cells []materialCell
	for i := range shapes {
		cell := materialCell{kind: shapes[i].PrimitiveKind(), flags: shapes[i].MaterialFlags()}
		seen := false
		for _, c := range cells {
			if c == cell {
				seen = true
				break
			}
		}
		if !seen {
			cells = append(cells, cell)
		}
	}
	return cells
}

func heterogeneous(shapes []scene.Shape) bool {
	return len(materialCells(shapes)) > 1
}
