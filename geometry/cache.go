package geometry

import (
	"sync/atomic"

	"github.com/gogpu/rtscene"
	"github.com/gogpu/rtscene/cache"
	"github.com/gogpu/rtscene/scene"
)

// Builder performs the actual acceleration-structure builds. It is the
// external collaborator owning GPU submission and device allocation;
// builds are asynchronous on the supplied stream, and callers must
// synchronize the stream before dereferencing returned handles.
type Builder interface {
	// BuildShape builds an object-space structure for one shape.
	BuildShape(ctx rtscene.DeviceContext, stream rtscene.Stream, shape *scene.Shape) (CacheEntry, error)

	// BuildObject builds one combined structure for the shapes of an
	// object matching the given primitive kind and material signature.
	// Each member shape's own transform is baked into the structure.
	BuildObject(ctx rtscene.DeviceContext, stream rtscene.Stream, object scene.Object,
		shapes []scene.Shape, kind rtscene.PrimitiveKind, flags rtscene.MaterialFlags) (CacheEntry, error)
}

// CacheStatistics counts builds and memoization traffic.
type CacheStatistics struct {
	ShapeBuilds  uint64
	ObjectBuilds uint64
	Hits         uint64
	Misses       uint64
}

// Cache memoizes acceleration-structure builds.
//
// Both entry points are idempotent: for structurally equal keys at
// most one underlying build occurs, and subsequent calls return the
// previously built entry. The guarantee holds under concurrent access;
// concurrent requests for one key serialize so a single build executes
// while the others wait for its result.
type Cache interface {
	// GetShape returns the entry for a shape, keyed by full shape
	// identity: kind, transform, material, and geometry payload.
	GetShape(ctx rtscene.DeviceContext, stream rtscene.Stream, shape *scene.Shape) (CacheEntry, error)

	// GetObject returns the combined entry for an object's
	// (primitive kind, material signature) cell, keyed by object
	// identity plus the cell.
	GetObject(ctx rtscene.DeviceContext, stream rtscene.Stream, object scene.Object,
		shapes []scene.Shape, kind rtscene.PrimitiveKind, flags rtscene.MaterialFlags) (CacheEntry, error)

	// Statistics returns a snapshot of build and traffic counters.
	Statistics() CacheStatistics
}

// memoCache is the default Cache: a Builder wrapped in per-key
// memoization tables.
type memoCache struct {
	builder Builder

	shapes  *cache.Memo[uint64, CacheEntry]
	objects *cache.Memo[objectKey, CacheEntry]

	shapeBuilds  atomic.Uint64
	objectBuilds atomic.Uint64
}

// NewCache wraps a Builder in a memoizing Cache.
func NewCache(b Builder) Cache {
	return &memoCache{
		builder: b,
		shapes:  cache.NewMemo[uint64, CacheEntry](cache.Uint64Hasher),
		objects: cache.NewMemo[objectKey, CacheEntry](objectHasher),
	}
}

func (c *memoCache) GetShape(ctx rtscene.DeviceContext, stream rtscene.Stream, shape *scene.Shape) (CacheEntry, error) {
	return c.shapes.Do(shapeKey(shape), func() (CacheEntry, error) {
		c.shapeBuilds.Add(1)
		rtscene.Logger().Debug("building shape geometry",
			"kind", shape.Kind.String(), "primitive", shape.PrimitiveKind().String())
		return c.builder.BuildShape(ctx, stream, shape)
	})
}

func (c *memoCache) GetObject(ctx rtscene.DeviceContext, stream rtscene.Stream, object scene.Object,
	shapes []scene.Shape, kind rtscene.PrimitiveKind, flags rtscene.MaterialFlags) (CacheEntry, error) {
	key := objectKey{name: object.Name, kind: kind, flags: flags}
	return c.objects.Do(key, func() (CacheEntry, error) {
		c.objectBuilds.Add(1)
		rtscene.Logger().Debug("building object geometry",
			"object", object.Name, "primitive", kind.String(), "flags", flags.String())
		return c.builder.BuildObject(ctx, stream, object, shapes, kind, flags)
	})
}

func (c *memoCache) Statistics() CacheStatistics {
	shapeStats := c.shapes.Stats()
	objectStats := c.objects.Stats()
	return CacheStatistics{
		ShapeBuilds:  c.shapeBuilds.Load(),
		ObjectBuilds: c.objectBuilds.Load(),
		Hits:         shapeStats.Hits + objectStats.Hits,
		Misses:       shapeStats.Misses + objectStats.Misses,
	}
}
