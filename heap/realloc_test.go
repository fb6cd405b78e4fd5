package heap

import (
	"bytes"
	"testing"

	"github.com/momentics/hioload-alloc/api"
	"github.com/momentics/hioload-alloc/fake"
	"github.com/momentics/hioload-alloc/internal/align"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMoveReallocGrow(t *testing.T) {
	h := fake.NewHeap()
	old := api.MustLayout(24, 8)
	p := h.Alloc(old)
	fill(p, 24, 0xAB)

	np := moveRealloc(p, old, 48, h.Alloc, h.Dealloc)
	require.NotNil(t, np)
	assert.True(t, align.IsAligned(np, 8))
	assert.Equal(t, bytes.Repeat([]byte{0xAB}, 24), view(np, 24))
	assert.False(t, h.Owns(p))
	assert.True(t, h.Owns(np))
	assert.Equal(t, 1, h.Live())
}

func TestMoveReallocShrink(t *testing.T) {
	h := fake.NewHeap()
	old := api.MustLayout(64, 32)
	p := h.Alloc(old)
	for i, b := 0, view(p, 64); i < len(b); i++ {
		b[i] = byte(i)
	}

	np := moveRealloc(p, old, 5, h.Alloc, h.Dealloc)
	require.NotNil(t, np)
	assert.True(t, align.IsAligned(np, 32))
	assert.Equal(t, []byte{0, 1, 2, 3, 4}, view(np, 5))
	h.Dealloc(np, api.MustLayout(5, 32))
	assert.Zero(t, h.Live())
}

func TestMoveReallocFailureLeavesOriginal(t *testing.T) {
	h := fake.NewHeap()
	old := api.MustLayout(32, 16)
	p := h.Alloc(old)
	fill(p, 32, 0x7E)

	h.SetFail(true)
	np := moveRealloc(p, old, 4096, h.Alloc, h.Dealloc)
	assert.Nil(t, np)
	assert.True(t, h.Owns(p))
	assert.Equal(t, bytes.Repeat([]byte{0x7E}, 32), view(p, 32))

	h.SetFail(false)
	h.Dealloc(p, old)
	assert.Zero(t, h.Live())
}

func TestMoveReallocUnrepresentableSize(t *testing.T) {
	h := fake.NewHeap()
	old := api.MustLayout(8, 16)
	p := h.Alloc(old)

	assert.Nil(t, moveRealloc(p, old, ^uintptr(0), h.Alloc, h.Dealloc))
	assert.True(t, h.Owns(p))
}

func TestMoveReallocZeroSize(t *testing.T) {
	h := fake.NewHeap()
	old := api.MustLayout(8, 8)
	p := h.Alloc(old)

	np := moveRealloc(p, old, 0, h.Alloc, h.Dealloc)
	require.NotNil(t, np)
	assert.False(t, h.Owns(p))
}
