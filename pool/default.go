package pool

import (
	"sync"

	"github.com/momentics/hioload-alloc/api"
	"github.com/momentics/hioload-alloc/heap"
)

var (
	defaultOnce sync.Once
	defaultPool *HeapBufferPool
)

// DefaultAllocator returns the process-wide allocator installed through
// api.Install, or the native heap adapter when none is installed.
func DefaultAllocator() api.GlobalAllocator {
	if g := api.Global(); g != nil {
		return g
	}
	return heap.LibcAlloc{}
}

// Default returns a process-wide HeapBufferPool so components share one set
// of counters.
func Default() *HeapBufferPool {
	defaultOnce.Do(func() {
		defaultPool = NewHeapBufferPool()
	})
	return defaultPool
}
