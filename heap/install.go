//go:build hioload_global_heap

// File: heap/install.go
// Author: momentics <momentics@gmail.com>
//
// Installs LibcAlloc as the process-wide heap provider.

package heap

import "github.com/momentics/hioload-alloc/api"

// InstalledAsGlobal reports whether this binary was built with hioload_global_heap.
const InstalledAsGlobal = true

func init() {
	if err := api.Install(LibcAlloc{}); err != nil {
		panic("heap: " + err.Error())
	}
}
