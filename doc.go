// Package rtscene incrementally materializes renderable geometry for
// large, lazily loaded ray-traced scenes.
//
// Building GPU acceleration structures for every object of a large
// scene up front is wasteful: most of the scene may never be touched
// by a ray. rtscene instead represents the scene by coarse bounding
// proxies registered with a demand-paging mechanism. When the renderer
// reports that a proxy's region was actually hit, the proxy either
// produces real geometry (an acceleration structure plus per-primitive
// material bindings) or splits into a set of finer proxies, each
// independently paged.
//
// The module is organized as a foundation root plus focused
// subpackages:
//
//   - rtscene (this package): shared value types — bounds, primitive
//     kinds, the material model, opaque device handles — plus options
//     and logging.
//   - rtscene/scene: the immutable scene description consumed by the
//     proxy layer.
//   - rtscene/proxy: the proxy factory and the decomposition state
//     machine.
//   - rtscene/geometry: the memoizing geometry build cache.
//   - rtscene/cache: the generic in-flight memoization table backing
//     the geometry cache.
//   - rtscene/meshio: a glTF-backed mesh loader for file-referenced
//     shapes.
//
// The actual acceleration-structure build, device memory allocation,
// page-fault delivery, and texture loading are external collaborators
// reached through interfaces; rtscene owns only the decomposition
// policy and the build-sharing contract.
package rtscene
