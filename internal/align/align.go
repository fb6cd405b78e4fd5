// File: internal/align/align.go
// Author: momentics <momentics@gmail.com>
//
// Power-of-two and overflow-checked alignment arithmetic shared by api and heap.

package align

import "unsafe"

// PtrSize is the size of a native pointer on the target.
const PtrSize = unsafe.Sizeof(uintptr(0))

// IsPowerOfTwo reports whether n is a non-zero power of two.
func IsPowerOfTwo(n uintptr) bool {
	return n != 0 && n&(n-1) == 0
}

// Up rounds n up to the next multiple of a. The second result is false when the
// rounding overflows uintptr. a must be a power of two.
func Up(n, a uintptr) (uintptr, bool) {
	mask := a - 1
	if n > ^uintptr(0)-mask {
		return 0, false
	}
	return (n + mask) &^ mask, true
}

// Max returns the larger of a and b.
func Max(a, b uintptr) uintptr {
	if a > b {
		return a
	}
	return b
}

// Min returns the smaller of a and b.
func Min(a, b uintptr) uintptr {
	if a < b {
		return a
	}
	return b
}

// IsAligned reports whether p is a multiple of a. a must be a power of two.
func IsAligned(p unsafe.Pointer, a uintptr) bool {
	return uintptr(p)&(a-1) == 0
}
