//go:build !hioload_global_heap

package heap

// InstalledAsGlobal reports whether this binary was built with hioload_global_heap.
const InstalledAsGlobal = false
