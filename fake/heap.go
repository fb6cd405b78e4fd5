// Author: momentics <momentics@gmail.com>
// SPDX-License-Identifier: MIT

// Package fake provides test doubles for hioload-alloc interfaces.
package fake

import (
	"sync"
	"unsafe"

	"github.com/momentics/hioload-alloc/api"
)

// Heap is an api.GlobalAllocator backed by Go memory. It verifies that every
// Dealloc matches a live block and layout, and can be told to fail.
// Fresh blocks are filled with Garbage so tests can tell zeroing apart.
type Heap struct {
	mu   sync.Mutex
	live map[unsafe.Pointer]api.Layout
	keep map[unsafe.Pointer][]byte
	fail bool
}

// Garbage is the byte fresh non-zeroed blocks are filled with.
const Garbage = 0xEE

var _ api.GlobalAllocator = (*Heap)(nil)

// NewHeap returns an empty fake heap.
func NewHeap() *Heap {
	return &Heap{
		live: make(map[unsafe.Pointer]api.Layout),
		keep: make(map[unsafe.Pointer][]byte),
	}
}

// SetFail makes every following allocation fail (or succeed again).
func (h *Heap) SetFail(fail bool) {
	h.mu.Lock()
	h.fail = fail
	h.mu.Unlock()
}

// Live returns the number of blocks not yet deallocated.
func (h *Heap) Live() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.live)
}

// Owns reports whether p is a live block.
func (h *Heap) Owns(p unsafe.Pointer) bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	_, ok := h.live[p]
	return ok
}

func (h *Heap) Alloc(l api.Layout) unsafe.Pointer {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.fail {
		return nil
	}
	buf := make([]byte, l.Size()+l.Align())
	for i := range buf {
		buf[i] = Garbage
	}
	base := unsafe.Pointer(&buf[0])
	mask := l.Align() - 1
	p := unsafe.Add(base, (l.Align()-uintptr(base)&mask)&mask)
	h.live[p] = l
	h.keep[p] = buf
	return p
}

func (h *Heap) AllocZeroed(l api.Layout) unsafe.Pointer {
	p := h.Alloc(l)
	if p != nil {
		clear(unsafe.Slice((*byte)(p), l.Size()))
	}
	return p
}

// Dealloc panics on an unknown pointer or a layout that differs from the
// one the block was allocated with.
func (h *Heap) Dealloc(p unsafe.Pointer, l api.Layout) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if got, ok := h.live[p]; !ok || got != l {
		panic("fake: dealloc of unknown block or mismatched layout")
	}
	delete(h.live, p)
	delete(h.keep, p)
}

// Realloc moves the block, leaving it untouched when the new allocation fails.
func (h *Heap) Realloc(p unsafe.Pointer, l api.Layout, n uintptr) unsafe.Pointer {
	nl, err := l.WithSize(n)
	if err != nil {
		return nil
	}
	np := h.Alloc(nl)
	if np == nil {
		return nil
	}
	copy(unsafe.Slice((*byte)(np), n), unsafe.Slice((*byte)(p), min(l.Size(), n)))
	h.Dealloc(p, l)
	return np
}
