// Package adapters
// Author: momentics <momentics@gmail.com>
//
// Control adapter implementing api.Control over the control package and a
// traced heap allocator.

package adapters

import (
	"github.com/momentics/hioload-alloc/api"
	"github.com/momentics/hioload-alloc/control"
	"github.com/momentics/hioload-alloc/heap"
	"go.uber.org/zap"
)

// ControlAdapter bundles configuration, metrics, debug probes and a Tracer.
type ControlAdapter struct {
	config  *control.ConfigStore
	metrics *control.MetricsRegistry
	debug   *control.DebugProbes
	tracer  *control.Tracer
}

var _ api.Control = (*ControlAdapter)(nil)

// NewControlAdapter traces next. A nil next means the native heap adapter.
func NewControlAdapter(next api.GlobalAllocator) *ControlAdapter {
	if next == nil {
		next = heap.LibcAlloc{}
	}
	cfg := control.NewConfigStore()
	adapter := &ControlAdapter{
		config:  cfg,
		metrics: control.NewMetricsRegistry(),
		debug:   control.NewDebugProbes(),
		tracer:  control.NewTracer(next, cfg),
	}
	control.RegisterPlatformProbes(adapter.debug)
	adapter.tracer.RegisterProbes(adapter.debug)
	adapter.debug.RegisterProbe("heap.backend", func() any { return heap.Backend })
	adapter.debug.RegisterProbe("heap.global", func() any { return heap.InstalledAsGlobal })
	control.Logger().Debug("control adapter ready", zap.String("backend", heap.Backend))
	return adapter
}

// Allocator returns the traced allocator callers should allocate through.
func (c *ControlAdapter) Allocator() api.GlobalAllocator {
	return c.tracer
}

func (c *ControlAdapter) GetConfig() map[string]any {
	return c.config.GetSnapshot()
}

func (c *ControlAdapter) SetConfig(cfg map[string]any) error {
	return c.config.SetConfig(cfg)
}

// Stats merges published metrics with debug probe output under "debug.".
func (c *ControlAdapter) Stats() map[string]any {
	c.tracer.Publish(c.metrics)
	stats := c.metrics.GetSnapshot()
	debugStats := c.debug.DumpState()
	combined := make(map[string]any, len(stats)+len(debugStats))
	for k, v := range stats {
		combined[k] = v
	}
	for k, v := range debugStats {
		combined["debug."+k] = v
	}
	return combined
}

func (c *ControlAdapter) OnReload(fn func()) {
	c.config.OnReload(fn)
}

func (c *ControlAdapter) SetMetric(key string, value any) {
	c.metrics.Set(key, value)
}

func (c *ControlAdapter) RegisterDebugProbe(name string, fn func() any) {
	c.debug.RegisterProbe(name, fn)
}
