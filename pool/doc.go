// Package pool
// Author: momentics <momentics@gmail.com>
//
// Off-GC-heap byte buffers over an api.GlobalAllocator.
//
// Every Get/Acquire is one native allocation and every Release one native
// deallocation; nothing is cached or reused here, the native heap does that.
// Buffers are aligned to the CPU cache line unless configured otherwise.
// See bufferpool.go and bytepool.go for the two flavours of the API.
package pool
