// File: pool/bufferpool.go
// Author: momentics <momentics@gmail.com>
//
// HeapBufferPool hands out api.Buffer values backed by native memory.

package pool

import (
	"sync/atomic"
	"unsafe"

	"github.com/momentics/hioload-alloc/api"
)

// nativeBuffer implements api.Buffer. Only the root buffer owns memory.
type nativeBuffer struct {
	data     []byte
	ptr      unsafe.Pointer
	layout   api.Layout
	pool     *HeapBufferPool
	root     bool
	released atomic.Bool
}

// Bytes returns the data slice.
func (b *nativeBuffer) Bytes() []byte { return b.data }

// Slice creates a sub-buffer sharing memory with b.
func (b *nativeBuffer) Slice(from, to int) api.Buffer {
	if from < 0 || to > len(b.data) || from > to {
		panic("slice bounds out of range")
	}
	return &nativeBuffer{data: b.data[from:to], pool: b.pool}
}

// Release returns the memory to the allocator once.
func (b *nativeBuffer) Release() {
	if !b.root || b.released.Swap(true) {
		return
	}
	b.pool.free(b)
}

// Copy returns a deep copy.
func (b *nativeBuffer) Copy() []byte {
	dst := make([]byte, len(b.data))
	copy(dst, b.data)
	return dst
}

// HeapBufferPool implements api.BufferPool over an api.GlobalAllocator.
type HeapBufferPool struct {
	cfg   config
	stats counters
}

var _ api.BufferPool = (*HeapBufferPool)(nil)

// NewHeapBufferPool creates a pool. Without options it allocates cache-line
// aligned buffers from DefaultAllocator.
func NewHeapBufferPool(opts ...Option) *HeapBufferPool {
	return &HeapBufferPool{cfg: buildConfig(opts)}
}

// Get allocates a buffer of exactly size bytes.
func (p *HeapBufferPool) Get(size int) (api.Buffer, error) {
	if size < 0 {
		return nil, api.NewError(api.ErrCodeInvalidArgument, "negative buffer size").
			WithContext("size", size)
	}
	if size == 0 {
		return &nativeBuffer{data: []byte{}, pool: p, root: true}, nil
	}
	layout, err := api.NewLayout(uintptr(size), p.cfg.align)
	if err != nil {
		return nil, err
	}
	ptr := allocate(p.cfg, layout)
	if ptr == nil {
		p.stats.failures.Add(1)
		return nil, api.NewError(api.ErrCodeResourceExhausted, "native allocation failed").
			WithContext("size", size).
			WithContext("align", p.cfg.align)
	}
	p.stats.alloc(size)
	return &nativeBuffer{
		data:   unsafe.Slice((*byte)(ptr), size),
		ptr:    ptr,
		layout: layout,
		pool:   p,
		root:   true,
	}, nil
}

// Put releases b if it was produced by this pool.
func (p *HeapBufferPool) Put(b api.Buffer) {
	if nb, ok := b.(*nativeBuffer); ok && nb.pool == p {
		nb.Release()
	}
}

// Stats returns allocation counters.
func (p *HeapBufferPool) Stats() api.BufferPoolStats {
	return p.stats.snapshot()
}

func (p *HeapBufferPool) free(b *nativeBuffer) {
	if b.ptr == nil {
		return
	}
	p.cfg.alloc.Dealloc(b.ptr, b.layout)
	p.stats.free(len(b.data))
	b.data = nil
	b.ptr = nil
}

func allocate(c config, layout api.Layout) unsafe.Pointer {
	if c.zeroed {
		return c.alloc.AllocZeroed(layout)
	}
	return c.alloc.Alloc(layout)
}
