//go:build windows

// File: heap/backend_windows.go
// Author: momentics <momentics@gmail.com>
//
// Windows CRT backend: _aligned_malloc, _aligned_realloc, _aligned_free from
// msvcrt.dll, called through x/sys/windows without cgo.

package heap

import (
	"unsafe"

	"github.com/momentics/hioload-alloc/api"
	"golang.org/x/sys/windows"
)

// Backend names the native allocator API in use.
const Backend = "msvcrt_aligned"

var (
	msvcrt             = windows.NewLazySystemDLL("msvcrt.dll")
	procAlignedMalloc  = msvcrt.NewProc("_aligned_malloc")
	procAlignedRealloc = msvcrt.NewProc("_aligned_realloc")
	procAlignedFree    = msvcrt.NewProc("_aligned_free")
)

// Alloc returns layout.Size() bytes aligned to layout.Align(), or nil.
func (LibcAlloc) Alloc(layout api.Layout) unsafe.Pointer {
	r, _, _ := procAlignedMalloc.Call(minSize(layout.Size()), layout.Align())
	return toPointer(r)
}

// Dealloc releases ptr through _aligned_free; plain free would corrupt the heap.
func (LibcAlloc) Dealloc(ptr unsafe.Pointer, _ api.Layout) {
	procAlignedFree.Call(uintptr(ptr))
}

// Realloc delegates to _aligned_realloc with the block's original alignment.
// On failure the CRT leaves ptr untouched and returns NULL.
func (LibcAlloc) Realloc(ptr unsafe.Pointer, layout api.Layout, newSize uintptr) unsafe.Pointer {
	r, _, _ := procAlignedRealloc.Call(uintptr(ptr), minSize(newSize), layout.Align())
	return toPointer(r)
}

// minSize keeps requests non-zero: a zero-size _aligned_realloc frees the block.
func minSize(n uintptr) uintptr {
	if n == 0 {
		return 1
	}
	return n
}

// toPointer converts a CRT return value to a pointer without tripping vet.
func toPointer(r uintptr) unsafe.Pointer {
	return *(*unsafe.Pointer)(unsafe.Pointer(&r))
}
