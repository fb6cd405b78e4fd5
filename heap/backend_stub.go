//go:build !windows && !(cgo && unix)

// File: heap/backend_stub.go
// Author: momentics <momentics@gmail.com>
//
// Stub backend for targets without a reachable C heap (cgo disabled, js,
// plan9, wasip1). Every request reports allocation failure.

package heap

import (
	"unsafe"

	"github.com/momentics/hioload-alloc/api"
)

// Backend names the native allocator API in use.
const Backend = "unsupported"

// Alloc always fails.
func (LibcAlloc) Alloc(api.Layout) unsafe.Pointer { return nil }

// Dealloc does nothing; no pointer can originate from this backend.
func (LibcAlloc) Dealloc(unsafe.Pointer, api.Layout) {}

// Realloc always fails, leaving ptr as it was.
func (LibcAlloc) Realloc(unsafe.Pointer, api.Layout, uintptr) unsafe.Pointer { return nil }
