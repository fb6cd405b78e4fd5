package heap

import (
	"testing"

	"github.com/momentics/hioload-alloc/api"
)

func BenchmarkAllocDealloc(b *testing.B) {
	requireNativeHeap(b)
	var a LibcAlloc
	l := api.MustLayout(256, 64)
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		p := a.Alloc(l)
		if p == nil {
			b.Fatal("allocation failed")
		}
		a.Dealloc(p, l)
	}
}

func BenchmarkAllocZeroed(b *testing.B) {
	requireNativeHeap(b)
	var a LibcAlloc
	l := api.MustLayout(4096, 64)
	b.SetBytes(int64(l.Size()))
	for i := 0; i < b.N; i++ {
		p := a.AllocZeroed(l)
		if p == nil {
			b.Fatal("allocation failed")
		}
		a.Dealloc(p, l)
	}
}

func BenchmarkReallocGrow(b *testing.B) {
	requireNativeHeap(b)
	var a LibcAlloc
	l := api.MustLayout(64, 8)
	for i := 0; i < b.N; i++ {
		p := a.Alloc(l)
		if p == nil {
			b.Fatal("allocation failed")
		}
		np := a.Realloc(p, l, 4096)
		if np == nil {
			b.Fatal("reallocation failed")
		}
		a.Dealloc(np, api.MustLayout(4096, 8))
	}
}
