//go:build cgo && unix && (!linux || hioload_posix_memalign)

// File: heap/backend_posix.go
// Author: momentics <momentics@gmail.com>
//
// POSIX backend: posix_memalign, realloc, free.

package heap

/*
#include <stdlib.h>
*/
import "C"

import (
	"unsafe"

	"github.com/momentics/hioload-alloc/api"
	"github.com/momentics/hioload-alloc/internal/align"
)

// Backend names the native allocator API in use.
const Backend = "posix_memalign"

// Alloc returns layout.Size() bytes aligned to layout.Align(), or nil.
//
// posix_memalign requires a power-of-two multiple of sizeof(void*). The layout
// guarantees the power of two; widening to at least the pointer size supplies
// the multiple and still satisfies the caller's weaker alignment.
func (LibcAlloc) Alloc(layout api.Layout) unsafe.Pointer {
	var p unsafe.Pointer
	a := align.Max(layout.Align(), align.PtrSize)
	// EINVAL is impossible given the widened alignment. ENOMEM, or any
	// other status, is reported as nil without further diagnosis.
	if C.posix_memalign(&p, C.size_t(a), C.size_t(layout.Size())) != 0 {
		return nil
	}
	return p
}

// Dealloc releases ptr. The layout is not needed by free.
func (LibcAlloc) Dealloc(ptr unsafe.Pointer, _ api.Layout) {
	C.free(ptr)
}

// Realloc resizes ptr to newSize bytes.
//
// Native realloc only guarantees MinAlign, so it is used when that already
// covers the block's alignment; otherwise the block is moved by hand. Both
// paths leave ptr intact when they return nil.
func (a LibcAlloc) Realloc(ptr unsafe.Pointer, layout api.Layout, newSize uintptr) unsafe.Pointer {
	if layout.Align() <= MinAlign && layout.Align() <= newSize {
		return C.realloc(ptr, C.size_t(newSize))
	}
	return moveRealloc(ptr, layout, newSize, a.Alloc, a.Dealloc)
}
