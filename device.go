package rtscene

// Opaque device-side handles. The actual GPU API lives behind external
// collaborators; this module only carries these values through. The
// zero value always means "absent".

// DeviceContext identifies a GPU device context.
type DeviceContext uintptr

// Stream identifies an asynchronous execution stream. Device-side
// builds are asynchronous relative to their stream: callers must
// synchronize the stream before using a returned handle.
type Stream uintptr

// DevicePtr is a device memory address.
type DevicePtr uint64

// TraversableHandle references a built acceleration structure.
type TraversableHandle uint64

// PageID identifies a bounded region registered with the demand-paging
// mechanism.
type PageID uint32
