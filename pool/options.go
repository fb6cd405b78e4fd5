// File: pool/options.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Functional options shared by HeapBufferPool and BytePool.

package pool

import (
	"unsafe"

	"github.com/momentics/hioload-alloc/api"
	"github.com/momentics/hioload-alloc/internal/align"
	"golang.org/x/sys/cpu"
)

// CacheLineSize is the default buffer alignment.
const CacheLineSize = unsafe.Sizeof(cpu.CacheLinePad{})

type config struct {
	alloc  api.GlobalAllocator
	align  uintptr
	zeroed bool
}

func defaultConfig() config {
	a := CacheLineSize
	if !align.IsPowerOfTwo(a) {
		a = 64
	}
	return config{alloc: DefaultAllocator(), align: a}
}

// Option customizes pool construction.
type Option func(*config)

// WithAllocator sets the allocator buffers are taken from.
func WithAllocator(a api.GlobalAllocator) Option {
	return func(c *config) {
		if a != nil {
			c.alloc = a
		}
	}
}

// WithAlignment overrides the buffer alignment. Values that are not a power of
// two are ignored.
func WithAlignment(a uintptr) Option {
	return func(c *config) {
		if align.IsPowerOfTwo(a) {
			c.align = a
		}
	}
}

// WithZeroed makes every new buffer start zero-filled.
func WithZeroed(zeroed bool) Option {
	return func(c *config) {
		c.zeroed = zeroed
	}
}

func buildConfig(opts []Option) config {
	c := defaultConfig()
	for _, opt := range opts {
		opt(&c)
	}
	return c
}
