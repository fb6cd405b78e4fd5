// File: heap/libcalloc.go
// Author: momentics <momentics@gmail.com>
//
// Platform-neutral part of the adapter. Alloc, Dealloc and Realloc live in the
// backend files selected at build time.

package heap

import (
	"unsafe"

	"github.com/momentics/hioload-alloc/api"
	"github.com/momentics/hioload-alloc/internal/align"
)

// MinAlign is the alignment the native malloc family guarantees for any block
// at least that large.
const MinAlign = 2 * align.PtrSize

// LibcAlloc is the global heap adapter. The zero value is ready to use.
type LibcAlloc struct{}

var _ api.GlobalAllocator = LibcAlloc{}

// AllocZeroed allocates like Alloc and zero-fills exactly layout.Size() bytes.
// The calloc family is not used because it does not honour over-alignment.
func (a LibcAlloc) AllocZeroed(layout api.Layout) unsafe.Pointer {
	p := a.Alloc(layout)
	if p != nil && layout.Size() > 0 {
		clear(unsafe.Slice((*byte)(p), layout.Size()))
	}
	return p
}

// BackendName returns the name of the native backend compiled into this binary.
func (LibcAlloc) BackendName() string { return Backend }
