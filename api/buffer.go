// Package api
// Author: momentics
//
// Off-GC-heap memory buffers handed out by a BufferPool.

package api

// Buffer describes a resliceable native memory region.
type Buffer interface {
	// Bytes returns a view of the buffer memory. The slice is only valid
	// until Release.
	Bytes() []byte

	// Slice produces a sub-view sharing the parent's memory. Releasing a
	// sub-view is a no-op; only the root buffer owns the allocation.
	Slice(from, to int) Buffer

	// Release returns the memory to the allocator. Calling it twice is a no-op.
	Release()

	// Copy returns a deep copy of buffer contents as a standalone []byte.
	Copy() []byte
}

// BufferPool abstracts memory region management for buffers.
type BufferPool interface {
	// Get returns a buffer of exactly size bytes or ErrResourceExhausted.
	Get(size int) (Buffer, error)

	// Put releases b; b must not be used afterwards.
	Put(b Buffer)

	// Stats exposes allocation accounting for observability.
	Stats() BufferPoolStats
}

// BufferPoolStats aggregates buffer allocation stats.
type BufferPoolStats struct {
	TotalAlloc int64
	TotalFree  int64
	InUse      int64
	BytesInUse int64
	Failures   int64
}
