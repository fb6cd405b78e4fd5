//go:build linux

// control/platform_linux.go
// Author: momentics <momentics@gmail.com>
//
// Linux platform probes: page size and physical memory from sysinfo(2).

package control

import (
	"runtime"

	"golang.org/x/sys/unix"
)

// RegisterPlatformProbes sets Linux-specific debug probes.
func RegisterPlatformProbes(dp *DebugProbes) {
	dp.RegisterProbe("platform.cpus", func() any {
		return runtime.NumCPU()
	})
	dp.RegisterProbe("platform.pagesize", func() any {
		return unix.Getpagesize()
	})
	dp.RegisterProbe("platform.mem_total", func() any {
		var info unix.Sysinfo_t
		if err := unix.Sysinfo(&info); err != nil {
			return uint64(0)
		}
		unit := uint64(info.Unit)
		if unit == 0 {
			unit = 1
		}
		return uint64(info.Totalram) * unit
	})
}
