package heap

import (
	"bytes"
	"sync"
	"testing"
	"unsafe"

	"github.com/momentics/hioload-alloc/api"
	"github.com/momentics/hioload-alloc/internal/align"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func requireNativeHeap(t testing.TB) {
	t.Helper()
	if Backend == "unsupported" {
		t.Skip("no native heap on this target")
	}
}

func view(p unsafe.Pointer, n uintptr) []byte {
	return unsafe.Slice((*byte)(p), n)
}

func fill(p unsafe.Pointer, n uintptr, b byte) {
	buf := view(p, n)
	for i := range buf {
		buf[i] = b
	}
}

func TestAllocReallocScenario(t *testing.T) {
	requireNativeHeap(t)
	var a LibcAlloc

	old := api.MustLayout(24, 8)
	p := a.Alloc(old)
	require.NotNil(t, p)
	assert.True(t, align.IsAligned(p, 8))
	fill(p, 24, 0xAB)

	np := a.Realloc(p, old, 48)
	require.NotNil(t, np)
	assert.Equal(t, bytes.Repeat([]byte{0xAB}, 24), view(np, 24))

	a.Dealloc(np, api.MustLayout(48, 8))
}

func TestAllocZeroedScenario(t *testing.T) {
	requireNativeHeap(t)
	var a LibcAlloc

	l := api.MustLayout(16, 16)
	p := a.AllocZeroed(l)
	require.NotNil(t, p)
	assert.True(t, align.IsAligned(p, 16))
	assert.Equal(t, make([]byte, 16), view(p, 16))
	a.Dealloc(p, l)
}

func TestAllocAlignment(t *testing.T) {
	requireNativeHeap(t)
	var a LibcAlloc

	for _, al := range []uintptr{1, 2, 4, 8, 16, 32, 64, 128, 256, 4096} {
		for _, size := range []uintptr{1, 7, 24, 100, 4096, 1 << 16} {
			l := api.MustLayout(size, al)
			p := a.Alloc(l)
			require.NotNil(t, p, "%v", l)
			assert.True(t, align.IsAligned(p, al), "%v at %p", l, p)
			fill(p, size, 0x5A)
			a.Dealloc(p, l)
		}
	}
}

func TestAllocZeroedOverwritesGarbage(t *testing.T) {
	requireNativeHeap(t)
	var a LibcAlloc

	// Dirty a block and free it so the next same-sized request is likely
	// to reuse it.
	l := api.MustLayout(256, 64)
	p := a.Alloc(l)
	require.NotNil(t, p)
	fill(p, 256, 0xFF)
	a.Dealloc(p, l)

	for i := 0; i < 8; i++ {
		z := a.AllocZeroed(l)
		require.NotNil(t, z)
		assert.True(t, align.IsAligned(z, 64))
		assert.Equal(t, make([]byte, 256), view(z, 256))
		a.Dealloc(z, l)
	}
}

func TestAllocZeroSize(t *testing.T) {
	requireNativeHeap(t)
	var a LibcAlloc

	l := api.MustLayout(0, 8)
	p := a.AllocZeroed(l)
	if p != nil {
		assert.True(t, align.IsAligned(p, 8))
		a.Dealloc(p, l)
	}
}

func TestDeallocThenAllocate(t *testing.T) {
	requireNativeHeap(t)
	var a LibcAlloc

	for i := 0; i < 1000; i++ {
		l := api.MustLayout(uintptr(i%97+1), 16)
		p := a.Alloc(l)
		require.NotNil(t, p)
		a.Dealloc(p, l)
	}
	l := api.MustLayout(32, 8)
	p := a.Alloc(l)
	require.NotNil(t, p)
	a.Dealloc(p, l)
}

func TestReallocGrowShrink(t *testing.T) {
	requireNativeHeap(t)
	var a LibcAlloc

	for _, al := range []uintptr{1, 8, 16, 64, 4096} {
		l := api.MustLayout(100, al)
		p := a.Alloc(l)
		require.NotNil(t, p)
		want := make([]byte, 100)
		for i := range want {
			want[i] = byte(i)
		}
		copy(view(p, 100), want)

		grown := a.Realloc(p, l, 1000)
		require.NotNil(t, grown, "align=%d", al)
		assert.True(t, align.IsAligned(grown, al))
		assert.Equal(t, want, view(grown, 100))

		gl := api.MustLayout(1000, al)
		shrunk := a.Realloc(grown, gl, 10)
		require.NotNil(t, shrunk, "align=%d", al)
		assert.True(t, align.IsAligned(shrunk, al))
		assert.Equal(t, want[:10], view(shrunk, 10))

		a.Dealloc(shrunk, api.MustLayout(10, al))
	}
}

func TestReallocFailureKeepsOriginal(t *testing.T) {
	requireNativeHeap(t)
	if align.PtrSize < 8 {
		t.Skip("an unsatisfiable size needs a 64-bit address space")
	}
	var a LibcAlloc

	for _, al := range []uintptr{8, 64} {
		l := api.MustLayout(64, al)
		p := a.Alloc(l)
		require.NotNil(t, p)
		fill(p, 64, 0xC3)

		np := a.Realloc(p, l, ^uintptr(0)>>1)
		assert.Nil(t, np, "align=%d", al)
		assert.Equal(t, bytes.Repeat([]byte{0xC3}, 64), view(p, 64))

		a.Dealloc(p, l)
	}
}

func TestAllocHugeFails(t *testing.T) {
	requireNativeHeap(t)
	if align.PtrSize < 8 {
		t.Skip("an unsatisfiable size needs a 64-bit address space")
	}
	var a LibcAlloc
	l := api.MustLayout(^uintptr(0)>>1, 8)
	assert.Nil(t, a.Alloc(l))
	assert.Nil(t, a.AllocZeroed(l))
}

func TestConcurrentDisjointHandles(t *testing.T) {
	requireNativeHeap(t)
	var a LibcAlloc

	var wg sync.WaitGroup
	for g := 0; g < 8; g++ {
		wg.Add(1)
		go func(tag byte) {
			defer wg.Done()
			for i := 0; i < 500; i++ {
				l := api.MustLayout(uintptr(16+i%64), 32)
				p := a.Alloc(l)
				if p == nil {
					t.Error("allocation failed")
					return
				}
				fill(p, l.Size(), tag)
				np := a.Realloc(p, l, l.Size()*2)
				if np == nil {
					t.Error("reallocation failed")
					a.Dealloc(p, l)
					return
				}
				if !bytes.Equal(view(np, l.Size()), bytes.Repeat([]byte{tag}, int(l.Size()))) {
					t.Errorf("goroutine %d: content lost", tag)
				}
				a.Dealloc(np, api.MustLayout(l.Size()*2, 32))
			}
		}(byte(g + 1))
	}
	wg.Wait()
}

func TestInstancesInterchangeable(t *testing.T) {
	requireNativeHeap(t)
	l := api.MustLayout(40, 8)
	p := LibcAlloc{}.Alloc(l)
	require.NotNil(t, p)
	var other LibcAlloc
	other.Dealloc(p, l)

	assert.Zero(t, unsafe.Sizeof(LibcAlloc{}))
	assert.Equal(t, Backend, LibcAlloc{}.BackendName())
}

func TestMinAlign(t *testing.T) {
	assert.Equal(t, 2*unsafe.Sizeof(uintptr(0)), MinAlign)
	assert.True(t, align.IsPowerOfTwo(MinAlign))
}
