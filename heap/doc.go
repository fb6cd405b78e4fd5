// Package heap
// Author: momentics <momentics@gmail.com>
//
// Global heap adapter over the host C runtime allocator.
//
// LibcAlloc implements api.GlobalAllocator by forwarding every request to the
// platform's native heap. It allocates nothing itself: there is no free-list,
// arena or size classing, and no table of live blocks. All state lives in the
// native heap, so LibcAlloc is an empty struct and any number of values are
// interchangeable without synchronization.
//
// Exactly one backend is compiled in, chosen by build constraints:
//
//	backend_posix.go     posix_memalign / realloc / free    (darwin, BSDs, other cgo unix)
//	backend_memalign.go  memalign / free                    (linux, android)
//	backend_windows.go   _aligned_malloc / _aligned_realloc / _aligned_free (msvcrt.dll)
//	backend_stub.go      every request fails               (no cgo, js, plan9, wasip1)
//
// Build with -tags hioload_posix_memalign to use the POSIX backend on Linux,
// and with -tags hioload_global_heap to install LibcAlloc as the process-wide
// provider returned by api.Global.
//
// Memory returned by LibcAlloc is not scanned by the Go garbage collector and
// must not hold the only reference to Go-allocated objects.
package heap
