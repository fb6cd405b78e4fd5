// File: heap/realloc.go
// Author: momentics <momentics@gmail.com>
//
// Move-based reallocation for backends whose native resize does not keep
// the block's alignment.

package heap

import (
	"unsafe"

	"github.com/momentics/hioload-alloc/api"
	"github.com/momentics/hioload-alloc/internal/align"
)

// moveRealloc allocates a new block of newSize at old.Align(), copies the
// common prefix and frees ptr. ptr is freed only after the replacement
// exists; if alloc fails, ptr is returned to the caller untouched via a nil
// result.
func moveRealloc(
	ptr unsafe.Pointer,
	old api.Layout,
	newSize uintptr,
	alloc func(api.Layout) unsafe.Pointer,
	free func(unsafe.Pointer, api.Layout),
) unsafe.Pointer {
	// A size that overflows once padded can never be satisfied.
	next, err := api.NewLayout(newSize, old.Align())
	if err != nil {
		return nil
	}
	np := alloc(next)
	if np == nil {
		return nil
	}
	if n := align.Min(old.Size(), newSize); n > 0 {
		copy(unsafe.Slice((*byte)(np), n), unsafe.Slice((*byte)(ptr), n))
	}
	free(ptr, old)
	return np
}
