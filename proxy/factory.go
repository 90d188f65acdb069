// Package proxy implements the proxy factory and the decomposition
// state machine: bounded stand-ins for scene regions that, on demand,
// either realize geometry through the build cache or split into finer
// proxies, each independently registered with the demand-paging
// mechanism.
package proxy

import (
	"fmt"

	"github.com/gogpu/rtscene"
	"github.com/gogpu/rtscene/geometry"
	"github.com/gogpu/rtscene/scene"
)

// PageRegistry is the demand-paging collaborator. Add registers a
// world-space bounded region and returns its page identifier. The
// factory calls Add exactly once per proxy it creates, before the
// creation call returns.
type PageRegistry interface {
	Add(bounds rtscene.Bounds3) (rtscene.PageID, error)
}

// GeometryCache is the build-cache contract the proxy layer consumes
// (satisfied by geometry.Cache). Entries are opaque values; the cache
// owns build concurrency and device-resource lifetime.
type GeometryCache interface {
	GetShape(ctx rtscene.DeviceContext, stream rtscene.Stream, shape *scene.Shape) (geometry.CacheEntry, error)
	GetObject(ctx rtscene.DeviceContext, stream rtscene.Stream, object scene.Object,
		shapes []scene.Shape, kind rtscene.PrimitiveKind, flags rtscene.MaterialFlags) (geometry.CacheEntry, error)
}

// Factory creates scene proxies. Granularity is fixed at construction;
// statistics reset only on construction.
type Factory struct {
	opts     rtscene.Options
	registry PageRegistry
	cache    GeometryCache
	stats    counters
}

// NewFactory creates a proxy factory from a configuration, a paging
// registry, and a geometry build cache.
func NewFactory(opts rtscene.Options, registry PageRegistry, cache GeometryCache) *Factory {
	return &Factory{opts: opts, registry: registry, cache: cache}
}

// Scene creates the single top-level proxy representing the whole
// scene and registers the scene bounds with the paging registry.
// It rejects descriptions with no top-level elements and instances
// referencing unknown objects; a registry failure propagates.
func (f *Factory) Scene(desc *scene.Description) (*Proxy, error) {
	if err := desc.Validate(); err != nil {
		return nil, err
	}
	pageID, err := f.registry.Add(desc.Bounds)
	if err != nil {
		return nil, err
	}
	f.stats.scene.Add(1)
	f.stats.total.Add(1)
	rtscene.Logger().Debug("created scene proxy", "page", pageID, "bounds", desc.Bounds.String())
	return f.newProxy(kindScene, pageID, desc.Bounds, desc), nil
}

// SceneShape creates a leaf proxy for one free shape.
func (f *Factory) SceneShape(desc *scene.Description, shapeIndex int) (*Proxy, error) {
	if shapeIndex < 0 || shapeIndex >= len(desc.FreeShapes) {
		return nil, fmt.Errorf("%w: free shape %d", rtscene.ErrIndexRange, shapeIndex)
	}
	bounds := desc.FreeShapes[shapeIndex].WorldBounds()
	pageID, err := f.registry.Add(bounds)
	if err != nil {
		return nil, err
	}
	f.stats.shape.Add(1)
	f.stats.total.Add(1)
	p := f.newProxy(kindShape, pageID, bounds, desc)
	p.shapeIndex = shapeIndex
	return p, nil
}

// SceneInstance creates a proxy scoped to exactly one object instance.
// An instance whose object holds a single shape collapses directly to
// an instance-shape leaf: single-shape instances are never
// decomposable.
func (f *Factory) SceneInstance(desc *scene.Description, instanceIndex int) (*Proxy, error) {
	inst, shapes, err := instanceShapes(desc, instanceIndex)
	if err != nil {
		return nil, err
	}
	if len(shapes) == 1 {
		return f.SceneInstanceShape(desc, instanceIndex, 0)
	}
	bounds := inst.WorldBounds()
	pageID, err := f.registry.Add(bounds)
	if err != nil {
		return nil, err
	}
	f.stats.instance.Add(1)
	f.stats.total.Add(1)
	p := f.newProxy(kindInstance, pageID, bounds, desc)
	p.instanceIndex = instanceIndex
	return p, nil
}

// SceneInstanceShape creates a leaf proxy scoped to one shape of one
// instance. Its bounds compose as
// instanceTransform(shapeTransform(shapeBounds)).
func (f *Factory) SceneInstanceShape(desc *scene.Description, instanceIndex, shapeIndex int) (*Proxy, error) {
	inst, shapes, err := instanceShapes(desc, instanceIndex)
	if err != nil {
		return nil, err
	}
	if shapeIndex < 0 || shapeIndex >= len(shapes) {
		return nil, fmt.Errorf("%w: instance shape %d", rtscene.ErrIndexRange, shapeIndex)
	}
	bounds := shapes[shapeIndex].WorldBounds().Transformed(inst.Transform)
	pageID, err := f.registry.Add(bounds)
	if err != nil {
		return nil, err
	}
	f.stats.instanceShape.Add(1)
	f.stats.total.Add(1)
	p := f.newProxy(kindInstanceShape, pageID, bounds, desc)
	p.instanceIndex = instanceIndex
	p.shapeIndex = shapeIndex
	return p, nil
}

// SceneInstancePrimitive creates a leaf proxy scoped to one
// (instance, primitive kind, material signature) cell. Its bounds are
// the union of the composed bounds of exactly the matching shapes.
func (f *Factory) SceneInstancePrimitive(desc *scene.Description, instanceIndex int,
	kind rtscene.PrimitiveKind, flags rtscene.MaterialFlags) (*Proxy, error) {
	inst, shapes, err := instanceShapes(desc, instanceIndex)
	if err != nil {
		return nil, err
	}
	bounds := rtscene.EmptyBounds()
	matched := false
	for i := range shapes {
		if shapes[i].PrimitiveKind() == kind && shapes[i].MaterialFlags() == flags {
			bounds = bounds.Union(shapes[i].WorldBounds().Transformed(inst.Transform))
			matched = true
		}
	}
	if !matched {
		return nil, fmt.Errorf("%w: %s/%s in %q", rtscene.ErrNoMatchingShapes, kind, flags, inst.Name)
	}
	pageID, err := f.registry.Add(bounds)
	if err != nil {
		return nil, err
	}
	f.stats.instancePrimitive.Add(1)
	f.stats.total.Add(1)
	p := f.newProxy(kindInstancePrimitive, pageID, bounds, desc)
	p.instanceIndex = instanceIndex
	p.primitive = kind
	p.flags = flags
	return p, nil
}

// Statistics returns a snapshot of the factory's creation counters.
func (f *Factory) Statistics() Statistics {
	return f.stats.snapshot()
}

func (f *Factory) newProxy(kind proxyKind, pageID rtscene.PageID, bounds rtscene.Bounds3, desc *scene.Description) *Proxy {
	return &Proxy{
		kind:        kind,
		pageID:      pageID,
		bounds:      bounds,
		desc:        desc,
		cache:       f.cache,
		granularity: f.opts.Granularity,
	}
}

func instanceShapes(desc *scene.Description, instanceIndex int) (*scene.ObjectInstance, []scene.Shape, error) {
	if instanceIndex < 0 || instanceIndex >= len(desc.ObjectInstances) {
		return nil, nil, fmt.Errorf("%w: instance %d", rtscene.ErrIndexRange, instanceIndex)
	}
	inst := &desc.ObjectInstances[instanceIndex]
	shapes := desc.ObjectShapes[inst.Name]
	if len(shapes) == 0 {
		return nil, nil, fmt.Errorf("%w: %q", rtscene.ErrUnknownObject, inst.Name)
	}
	return inst, shapes, nil
}
