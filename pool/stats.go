// File: pool/stats.go
// Author: momentics <momentics@gmail.com>
//
// Lock-free allocation counters.

package pool

import (
	"sync/atomic"

	"github.com/momentics/hioload-alloc/api"
)

type counters struct {
	totalAlloc atomic.Int64
	totalFree  atomic.Int64
	bytesInUse atomic.Int64
	failures   atomic.Int64
}

func (c *counters) alloc(n int) {
	c.totalAlloc.Add(1)
	c.bytesInUse.Add(int64(n))
}

func (c *counters) free(n int) {
	c.totalFree.Add(1)
	c.bytesInUse.Add(-int64(n))
}

func (c *counters) snapshot() api.BufferPoolStats {
	totalAlloc := c.totalAlloc.Load()
	totalFree := c.totalFree.Load()
	return api.BufferPoolStats{
		TotalAlloc: totalAlloc,
		TotalFree:  totalFree,
		InUse:      totalAlloc - totalFree,
		BytesInUse: c.bytesInUse.Load(),
		Failures:   c.failures.Load(),
	}
}
