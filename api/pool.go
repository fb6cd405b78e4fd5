// File: api/pool.go
// Author: momentics <momentics@gmail.com>
//
// Slice-oriented allocation API over native memory.

package api

// BytePool hands out []byte views over native memory.
type BytePool interface {
	// Acquire returns a slice of exactly n bytes, or nil if memory is exhausted.
	Acquire(n int) []byte

	// Release returns a slice obtained from Acquire or Resize.
	Release(buf []byte)

	// Resize grows or shrinks buf preserving its prefix. On failure it
	// returns nil and buf stays valid.
	Resize(buf []byte, n int) []byte
}
