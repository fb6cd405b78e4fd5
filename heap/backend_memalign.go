//go:build cgo && linux && !hioload_posix_memalign

// File: heap/backend_memalign.go
// Author: momentics <momentics@gmail.com>
//
// memalign backend for Linux and Android: memalign, free. There is no
// alignment-preserving native resize, so Realloc always moves the block.

package heap

/*
#include <stdlib.h>
#include <malloc.h>
*/
import "C"

import (
	"unsafe"

	"github.com/momentics/hioload-alloc/api"
)

// Backend names the native allocator API in use.
const Backend = "memalign"

// Alloc returns layout.Size() bytes aligned to layout.Align(), or nil.
// memalign accepts any power of two, which the layout guarantees.
func (LibcAlloc) Alloc(layout api.Layout) unsafe.Pointer {
	return C.memalign(C.size_t(layout.Align()), C.size_t(layout.Size()))
}

// Dealloc releases ptr. The layout is not needed by free.
func (LibcAlloc) Dealloc(ptr unsafe.Pointer, _ api.Layout) {
	C.free(ptr)
}

// Realloc moves ptr into a fresh newSize block at the same alignment.
func (a LibcAlloc) Realloc(ptr unsafe.Pointer, layout api.Layout, newSize uintptr) unsafe.Pointer {
	return moveRealloc(ptr, layout, newSize, a.Alloc, a.Dealloc)
}
