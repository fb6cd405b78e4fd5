// File: pool/bytepool.go
// Author: momentics <momentics@gmail.com>

package pool

import (
	"unsafe"

	"github.com/momentics/hioload-alloc/api"
)

// BytePool implements api.BytePool. A slice's capacity is its allocation size,
// so callers must not reslice beyond len and hand the result back.
type BytePool struct {
	cfg   config
	stats counters
}

var _ api.BytePool = (*BytePool)(nil)

// NewBytePool creates a BytePool.
func NewBytePool(opts ...Option) *BytePool {
	return &BytePool{cfg: buildConfig(opts)}
}

// Acquire returns n bytes of native memory, or nil when the allocation fails.
// Acquire(0) returns an empty slice that owns nothing.
func (b *BytePool) Acquire(n int) []byte {
	if n < 0 {
		return nil
	}
	if n == 0 {
		return []byte{}
	}
	layout, err := api.NewLayout(uintptr(n), b.cfg.align)
	if err != nil {
		return nil
	}
	ptr := allocate(b.cfg, layout)
	if ptr == nil {
		b.stats.failures.Add(1)
		return nil
	}
	b.stats.alloc(n)
	return unsafe.Slice((*byte)(ptr), n)
}

// Release frees buf. Empty slices are ignored.
func (b *BytePool) Release(buf []byte) {
	if cap(buf) == 0 {
		return
	}
	buf = buf[:cap(buf)]
	b.cfg.alloc.Dealloc(unsafe.Pointer(&buf[0]), api.MustLayout(uintptr(len(buf)), b.cfg.align))
	b.stats.free(len(buf))
}

// Resize reallocates buf to n bytes preserving min(len, n) bytes. On failure
// it returns nil and buf is still owned by the caller.
func (b *BytePool) Resize(buf []byte, n int) []byte {
	if n < 0 {
		return nil
	}
	if cap(buf) == 0 {
		return b.Acquire(n)
	}
	if n == 0 {
		b.Release(buf)
		return []byte{}
	}
	full := buf[:cap(buf)]
	old := api.MustLayout(uintptr(len(full)), b.cfg.align)
	ptr := b.cfg.alloc.Realloc(unsafe.Pointer(&full[0]), old, uintptr(n))
	if ptr == nil {
		b.stats.failures.Add(1)
		return nil
	}
	b.stats.bytesInUse.Add(int64(n - len(full)))
	out := unsafe.Slice((*byte)(ptr), n)
	if b.cfg.zeroed && n > len(full) {
		clear(out[len(full):])
	}
	return out
}

// Stats returns allocation counters.
func (b *BytePool) Stats() api.BufferPoolStats {
	return b.stats.snapshot()
}
