//go:build windows

// control/platform_windows.go
// Author: momentics <momentics@gmail.com>
//
// Windows platform probes: page size and physical memory from
// GlobalMemoryStatusEx.

package control

import (
	"runtime"
	"unsafe"

	"golang.org/x/sys/windows"
)

var (
	kernel32                 = windows.NewLazySystemDLL("kernel32.dll")
	procGlobalMemoryStatusEx = kernel32.NewProc("GlobalMemoryStatusEx")
)

// memoryStatusEx mirrors MEMORYSTATUSEX.
type memoryStatusEx struct {
	Length               uint32
	MemoryLoad           uint32
	TotalPhys            uint64
	AvailPhys            uint64
	TotalPageFile        uint64
	AvailPageFile        uint64
	TotalVirtual         uint64
	AvailVirtual         uint64
	AvailExtendedVirtual uint64
}

// RegisterPlatformProbes sets Windows-specific debug probes.
func RegisterPlatformProbes(dp *DebugProbes) {
	dp.RegisterProbe("platform.cpus", func() any {
		return runtime.NumCPU()
	})
	dp.RegisterProbe("platform.pagesize", func() any {
		return windows.Getpagesize()
	})
	dp.RegisterProbe("platform.mem_total", func() any {
		ms := memoryStatusEx{Length: uint32(unsafe.Sizeof(memoryStatusEx{}))}
		r, _, _ := procGlobalMemoryStatusEx.Call(uintptr(unsafe.Pointer(&ms)))
		if r == 0 {
			return uint64(0)
		}
		return ms.TotalPhys
	})
}
