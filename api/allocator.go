// File: api/allocator.go
// Author: momentics <momentics@gmail.com>
//
// GlobalAllocator contract and the process-wide heap provider registry.

package api

import (
	"sync"
	"unsafe"
)

// GlobalAllocator is the contract a heap provider satisfies.
//
// Allocation failure is reported as a nil pointer, never as a panic.
// Passing a pointer or layout that does not match a live allocation from the
// same allocator is undefined behaviour and is not detected.
type GlobalAllocator interface {
	// Alloc returns layout.Size() bytes aligned to at least layout.Align().
	Alloc(layout Layout) unsafe.Pointer

	// AllocZeroed behaves like Alloc and zero-fills the block on success.
	AllocZeroed(layout Layout) unsafe.Pointer

	// Dealloc releases ptr, which was allocated with layout.
	Dealloc(ptr unsafe.Pointer, layout Layout)

	// Realloc resizes ptr to newSize bytes keeping layout.Align(). The first
	// min(layout.Size(), newSize) bytes are preserved. On failure it returns
	// nil and ptr remains valid and unchanged.
	Realloc(ptr unsafe.Pointer, layout Layout, newSize uintptr) unsafe.Pointer
}

var (
	globalMu sync.RWMutex
	global   GlobalAllocator
)

// Install registers a as the process-wide heap provider. Only the first call
// succeeds; later calls return ErrAlreadyExists.
func Install(a GlobalAllocator) error {
	if a == nil {
		return NewError(ErrCodeInvalidArgument, "nil allocator")
	}
	globalMu.Lock()
	defer globalMu.Unlock()
	if global != nil {
		return NewError(ErrCodeAlreadyExists, "global allocator already installed")
	}
	global = a
	return nil
}

// Global returns the installed heap provider, or nil when none is installed.
func Global() GlobalAllocator {
	globalMu.RLock()
	defer globalMu.RUnlock()
	return global
}
