//go:build !unix && !windows

package control

import "runtime"

// RegisterPlatformProbes sets the probes available everywhere.
func RegisterPlatformProbes(dp *DebugProbes) {
	dp.RegisterProbe("platform.cpus", func() any {
		return runtime.NumCPU()
	})
}
