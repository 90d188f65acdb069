package proxy

import "sync/atomic"

// Statistics is a snapshot of the factory's monotonically increasing
// creation counters, one per proxy category plus the total. Counters
// reset only when a factory is constructed.
type Statistics struct {
	SceneProxies             uint64
	ShapeProxies             uint64
	InstanceProxies          uint64
	InstanceShapeProxies     uint64
	InstancePrimitiveProxies uint64
	GeometryProxies          uint64
}

// counters is the factory-owned mutable state behind Statistics.
type counters struct {
	scene             atomic.Uint64
	shape             atomic.Uint64
	instance          atomic.Uint64
	instanceShape     atomic.Uint64
	instancePrimitive atomic.Uint64
	total             atomic.Uint64
}

func (c *counters) snapshot() Statistics {
	return Statistics{
		SceneProxies:             c.scene.Load(),
		ShapeProxies:             c.shape.Load(),
		InstanceProxies:          c.instance.Load(),
		InstanceShapeProxies:     c.instanceShape.Load(),
		InstancePrimitiveProxies: c.instancePrimitive.Load(),
		GeometryProxies:          c.total.Load(),
	}
}
