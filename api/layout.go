// File: api/layout.go
// Author: momentics <momentics@gmail.com>
//
// Layout describes the size and alignment of a memory block.

package api

import (
	"fmt"
	"unsafe"

	"github.com/momentics/hioload-alloc/internal/align"
)

// Layout is a (size, alignment) pair. The alignment is always a non-zero
// power of two and the size rounded up to the alignment never overflows.
// Allocators rely on this and do not re-check it.
type Layout struct {
	size  uintptr
	align uintptr
}

// NewLayout validates size and alignment and returns the corresponding Layout.
func NewLayout(size, alignment uintptr) (Layout, error) {
	if !align.IsPowerOfTwo(alignment) {
		return Layout{}, NewError(ErrCodeInvalidLayout, "alignment is not a power of two").
			WithContext("align", alignment)
	}
	if _, ok := align.Up(size, alignment); !ok {
		return Layout{}, NewError(ErrCodeInvalidLayout, "size overflows when padded to alignment").
			WithContext("size", size).
			WithContext("align", alignment)
	}
	return Layout{size: size, align: alignment}, nil
}

// MustLayout is like NewLayout but panics on an invalid pair.
func MustLayout(size, alignment uintptr) Layout {
	l, err := NewLayout(size, alignment)
	if err != nil {
		panic(fmt.Sprintf("api: %v", err))
	}
	return l
}

// LayoutFor returns the layout of a single value of type T.
func LayoutFor[T any]() Layout {
	var zero T
	return Layout{size: unsafe.Sizeof(zero), align: unsafe.Alignof(zero)}
}

// Size returns the block size in bytes.
func (l Layout) Size() uintptr { return l.size }

// Align returns the block alignment in bytes.
func (l Layout) Align() uintptr { return l.align }

// WithSize returns a layout with the same alignment and a new size.
func (l Layout) WithSize(size uintptr) (Layout, error) {
	return NewLayout(size, l.align)
}

// PadToAlign returns the layout with its size rounded up to a multiple of the alignment.
func (l Layout) PadToAlign() Layout {
	size, _ := align.Up(l.size, l.align)
	return Layout{size: size, align: l.align}
}

func (l Layout) String() string {
	return fmt.Sprintf("Layout{size: %d, align: %d}", l.size, l.align)
}
